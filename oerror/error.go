package oerror

import "fmt"

// OomphError is the error type returned by loading and configuration paths.
type OomphError struct {
	Err string
}

func NewOomphError(err string) *OomphError {
	return &OomphError{Err: err}
}

// New formats an OomphError from the format string and arguments passed.
func New(format string, args ...interface{}) *OomphError {
	return &OomphError{Err: fmt.Sprintf(format, args...)}
}

func (e *OomphError) Error() string {
	return e.Err
}
