package algofourier

import "errors"

// Sentinel errors returned by plan construction and execution.
var (
	// ErrInvalidLength is returned by NewPlan when the transform size is
	// less than 1.
	ErrInvalidLength = errors.New("algofourier: invalid transform length")

	// ErrNilSlice is returned when a nil slice is passed to a transform
	// method.
	ErrNilSlice = errors.New("algofourier: nil slice")

	// ErrLengthMismatch is returned when an input/output slice does not
	// match the Plan's size.
	ErrLengthMismatch = errors.New("algofourier: slice length mismatch")

	// ErrInvalidTransform is returned when the transform variant is outside
	// the recognized enumeration.
	ErrInvalidTransform = errors.New("algofourier: invalid transform variant")
)
