// Package interr holds the error values that collkit packages panic with
// when a caller violates an operation's contract.
package interr

import (
	"errors"
	"fmt"
)

const (
	// ErrNotSorted is raised when an operation that requires its input to be
	// already sorted under the supplied comparator detects an order violation.
	ErrNotSorted Error = "ErrNotSorted"
	// ErrLengthMismatch is raised when paired sequences differ in length.
	ErrLengthMismatch Error = "ErrLengthMismatch"
	// ErrNotOK is raised when an `(V, bool)` style result had its ok flag down,
	// but the caller's contract required a value to be present.
	ErrNotOK Error = "ErrNotOK"
)

type Error string

// Error implement the error interface
func (err Error) Error() string { return string(err) }

// Wrap will bundle together another error value with this Error,
// and return an error value that contains both of them.
func (err Error) Wrap(oth error) error {
	if oth == nil {
		return err
	}
	return wrapper{Owner: err, Wrapped: oth}
}

// F will format the error value
func (err Error) F(format string, a ...any) error { return err.Wrap(fmt.Errorf(format, a...)) }

type wrapper struct {
	Owner   error
	Wrapped error // must be not nil
}

func (w wrapper) Error() string {
	return fmt.Sprintf("[%s] %s", w.Owner, w.Wrapped.Error())
}

func (w wrapper) As(target any) bool {
	return errors.As(w.Owner, target) || errors.As(w.Wrapped, target)
}

func (w wrapper) Is(target error) bool {
	return errors.Is(w.Owner, target) || errors.Is(w.Wrapped, target)
}
