package logsink

import (
	"errors"
	"fmt"
)

// ErrorKind classifies an Error.
type ErrorKind int

const (
	// KindInvalid means the configuration cannot produce a valid
	// builder; it is reported at dispatch or construct time, never
	// deferred to the first write.
	KindInvalid ErrorKind = iota

	// KindOther wraps an underlying I/O or environment failure.
	KindOther
)

// Error is the error type of this package.
type Error struct {
	Kind  ErrorKind
	Msg   string
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Msg + ": " + e.Cause.Error()
	}
	return e.Msg
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsInvalid reports whether err is an Error of kind KindInvalid.
func IsInvalid(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindInvalid
}

func invalidf(format string, args ...interface{}) *Error {
	return &Error{
		Kind: KindInvalid,
		Msg:  fmt.Sprintf(format, args...),
	}
}

func wrapOther(msg string, cause error) *Error {
	var e *Error
	if errors.As(cause, &e) {
		return e
	}

	return &Error{
		Kind:  KindOther,
		Msg:   msg,
		Cause: cause,
	}
}
