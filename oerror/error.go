package oerror

import "fmt"

// Error is the error type returned by groundwork packages.
type Error struct {
	Err string
}

// New returns a new error with the message formatted from the given format and arguments.
func New(format string, args ...any) *Error {
	return &Error{Err: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return e.Err
}
