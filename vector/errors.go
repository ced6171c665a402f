package vector

import "errors"

var (
	// ErrIndexOutOfRange is the value Get and Set panic with when the
	// index is negative or not less than the vector length.
	ErrIndexOutOfRange = errors.New("vector: index out of range")

	// ErrEmptyVector is the value Pop panics with on an empty vector.
	ErrEmptyVector = errors.New("vector: pop of an empty vector")
)
