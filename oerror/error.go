package oerror

import "fmt"

// OomphError is the error type returned and panicked with across the simulation packages.
type OomphError struct {
	Err string
}

// New returns an error formatted with the given arguments.
func New(format string, args ...any) *OomphError {
	if len(args) == 0 {
		return &OomphError{Err: format}
	}
	return &OomphError{Err: fmt.Sprintf(format, args...)}
}

func (e *OomphError) Error() string {
	return e.Err
}
