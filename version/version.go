// Package version implements parsing and total ordering of event schema
// version strings.
//
// A schema version is a dot-separated sequence of non-negative integers,
// such as "1.0" or "2.1.3". Ordering is numeric and lexicographic over the
// parsed segments, so "1.10" sorts after "1.9" (unlike a plain string sort).
package version

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Version is a parsed schema version, one element per dot-separated segment.
type Version []uint64

// ErrParse is returned when a version string cannot be parsed as a
// dot-separated sequence of non-negative integers. Passing a malformed
// version string to the comparison logic is a caller error.
type ErrParse struct {
	Input   string
	Segment string
}

func (err ErrParse) Error() string {
	return fmt.Sprintf(
		"version.Parse: malformed version string '%s', invalid segment '%s'",
		err.Input,
		err.Segment,
	)
}

// Parse parses a version string into its numeric segments.
//
// An ErrParse instance is returned if the string is empty or any segment
// is not a non-negative integer.
func Parse(s string) (Version, error) {
	if s == "" {
		return nil, ErrParse{Input: s, Segment: s}
	}

	segments := strings.Split(s, ".")
	parsed := make(Version, 0, len(segments))

	for _, segment := range segments {
		n, err := strconv.ParseUint(segment, 10, 64)
		if err != nil {
			return nil, ErrParse{Input: s, Segment: segment}
		}

		parsed = append(parsed, n)
	}

	return parsed, nil
}

// Compare returns -1, 0 or 1 if the receiver sorts before, equal to or
// after the other Version.
//
// Comparison is lexicographic over the numeric segments; when one version
// is a strict prefix of the other, the shorter one sorts first
// (e.g. "1.0" < "1.0.1").
func (v Version) Compare(other Version) int {
	for i := 0; i < len(v) && i < len(other); i++ {
		switch {
		case v[i] < other[i]:
			return -1
		case v[i] > other[i]:
			return 1
		}
	}

	switch {
	case len(v) < len(other):
		return -1
	case len(v) > len(other):
		return 1
	default:
		return 0
	}
}

// String renders the Version back to its dot-separated form.
func (v Version) String() string {
	segments := make([]string, len(v))
	for i, n := range v {
		segments[i] = strconv.FormatUint(n, 10)
	}

	return strings.Join(segments, ".")
}

// Compare parses both version strings and compares them numerically,
// returning -1, 0 or 1.
//
// An ErrParse instance is returned if either string is malformed.
func Compare(a, b string) (int, error) {
	parsedA, err := Parse(a)
	if err != nil {
		return 0, err
	}

	parsedB, err := Parse(b)
	if err != nil {
		return 0, err
	}

	return parsedA.Compare(parsedB), nil
}

// Sort sorts the provided version strings in place, in ascending numeric
// order.
//
// An ErrParse instance is returned, and the slice left untouched, if any
// of the strings is malformed.
func Sort(versions []string) error {
	parsed := make(map[string]Version, len(versions))

	for _, s := range versions {
		v, err := Parse(s)
		if err != nil {
			return err
		}

		parsed[s] = v
	}

	sort.Slice(versions, func(i, j int) bool {
		return parsed[versions[i]].Compare(parsed[versions[j]]) < 0
	})

	return nil
}
