package lineup

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientLineup matches any *InsufficientError.
	ErrInsufficientLineup = errors.New("insufficient lineup")

	// ErrLineupRead matches any *ReadError.
	ErrLineupRead = errors.New("lineup read failed")
)

// InsufficientError reports a lineup too short to form an assignment.
type InsufficientError struct {
	Count int
}

func (e *InsufficientError) Error() string {
	return fmt.Sprintf("%s: need at least 2 names, found %d", ErrInsufficientLineup, e.Count)
}

func (e *InsufficientError) Is(target error) bool {
	return target == ErrInsufficientLineup
}

// ReadError reports a lineup file that is missing or unreadable.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read lineup %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

func (e *ReadError) Is(target error) bool {
	return target == ErrLineupRead
}
