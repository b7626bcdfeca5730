package event

import "fmt"

// ErrValidation is returned when a metadata field or a payload field fails
// its shape, type or constraint checks.
//
// Field carries the path of the offending field (e.g. "metadata.event_id"
// or "items[0].quantity"), so callers can report failures precisely.
type ErrValidation struct {
	Field    string
	Expected string
	Actual   string
}

func (err ErrValidation) Error() string {
	return fmt.Sprintf(
		"event: invalid field '%s', expected %s, actual %s",
		err.Field,
		err.Expected,
		err.Actual,
	)
}
