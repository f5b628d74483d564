package sequence

import "errors"

var (
	// ErrInvalidCount indicates an element count outside [MinCount, MaxCount].
	ErrInvalidCount = errors.New("sequence: invalid number of elements")

	// ErrValueOutOfRange indicates a loaded value outside [MinValue, MaxValue].
	ErrValueOutOfRange = errors.New("sequence: value out of range")

	// ErrIndexOutOfRange indicates a position outside the current sequence.
	ErrIndexOutOfRange = errors.New("sequence: index out of range")
)
