package catalog

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when an operation receives a required value
// that is absent, such as inserting a nil record.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrNotFound is returned when a removal target does not exist in the tree.
var ErrNotFound = errors.New("artwork not found in catalog")

// NotFoundError reports the candidate record that could not be located.
// It matches ErrNotFound with errors.Is.
type NotFoundError struct {
	Target Record
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no artwork found matching %s", e.Target)
}

// Unwrap allows errors.Is(err, ErrNotFound).
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}
