package arraylist

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidArgument is returned when a list is requested with a non-positive capacity.
	ErrInvalidArgument = errors.New("arraylist: invalid argument")

	// ErrIndexOutOfBounds is returned when an index falls outside the valid range of an operation.
	ErrIndexOutOfBounds = errors.New("arraylist: index out of bounds")
)

func invalidCapacity(capacity int) error {
	return errors.Wrapf(ErrInvalidArgument, "capacity must be greater than 0, got %d", capacity)
}

func outOfBounds(index, size int) error {
	return errors.Wrapf(ErrIndexOutOfBounds, "index: %d, size: %d", index, size)
}
