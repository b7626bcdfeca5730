// Package logger exposes the structured logging contract used by the
// eventschema components.
//
// Components accept a Logger as an optional dependency: a nil Logger is
// valid and disables logging, which is why call sites should go through the
// package-level helpers instead of calling the interface directly.
package logger

// Field is a single structured attribute attached to a log entry.
type Field struct {
	Key   string
	Value interface{}
}

// With builds a Field in a functional way.
func With(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Logger is the structured logging contract accepted by eventschema
// components.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Debug logs a debug message through the provided Logger, if not nil.
func Debug(l Logger, msg string, fields ...Field) {
	if l != nil {
		l.Debug(msg, fields...)
	}
}

// Info logs an info message through the provided Logger, if not nil.
func Info(l Logger, msg string, fields ...Field) {
	if l != nil {
		l.Info(msg, fields...)
	}
}

// Warn logs a warning message through the provided Logger, if not nil.
func Warn(l Logger, msg string, fields ...Field) {
	if l != nil {
		l.Warn(msg, fields...)
	}
}

// Error logs an error message through the provided Logger, if not nil.
func Error(l Logger, msg string, fields ...Field) {
	if l != nil {
		l.Error(msg, fields...)
	}
}
