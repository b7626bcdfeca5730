package logger

import "testing"

var _ Logger = Test{}

// Test is a Logger implementation backed by a testing.T instance,
// so that component logs end up in the test output.
type Test struct{ t *testing.T }

// NewTest returns a Logger that writes through the provided testing.T.
func NewTest(t *testing.T) Test {
	return Test{t: t}
}

// Debug uses t.Logf to print a debug message.
func (t Test) Debug(msg string, fields ...Field) {
	t.t.Logf("[debug] %s {fields: %+v}\n", msg, fields)
}

// Info uses t.Logf to print an info message.
func (t Test) Info(msg string, fields ...Field) {
	t.t.Logf("[info] %s {fields: %+v}\n", msg, fields)
}

// Warn uses t.Logf to print a warning message.
func (t Test) Warn(msg string, fields ...Field) {
	t.t.Logf("[warn] %s {fields: %+v}\n", msg, fields)
}

// Error uses t.Logf to print an error message.
func (t Test) Error(msg string, fields ...Field) {
	t.t.Logf("[error] %s {fields: %+v}\n", msg, fields)
}
