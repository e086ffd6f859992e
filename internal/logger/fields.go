package logger

import (
	"github.com/xraph/go-utils/log"
)

// Field constructors that return wrapped fields.
var (
	// String creates a string field.
	String = log.String
	// Int creates an int field.
	Int = log.Int
	// Int64 creates an int64 field.
	Int64 = log.Int64
	// Float64 creates a float64 field.
	Float64 = log.Float64
	// Bool creates a bool field.
	Bool = log.Bool

	// Time creates a time field.
	Time = log.Time
	// Duration creates a duration field.
	Duration = log.Duration

	// Error creates an error field.
	Error = log.Error

	// Stringer creates a field from a Stringer.
	Stringer = log.Stringer

	Any = log.Any

	// HTTP fields
	HTTPMethod = log.HTTPMethod
	HTTPStatus = log.HTTPStatus
	HTTPPath   = log.HTTPPath

	// Context fields
	RequestID = log.RequestID
)
