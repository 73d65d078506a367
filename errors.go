package ang

import (
	"errors"
	"fmt"
)

var (
	// ErrCast is matched by every *CastError.
	ErrCast = errors.New("ang: value not representable")

	// ErrEmptySequence is returned by MeanAngle when the input yields no angles.
	ErrEmptySequence = errors.New("ang: mean of empty sequence")

	// ErrSyntax is returned by Parse for input without a unit suffix.
	ErrSyntax = errors.New("ang: invalid syntax")
)

// CastError reports a float64 intermediate that could not be converted
// into the payload kind of an angle.
type CastError struct {
	Value float64
	Kind  string
}

func (e *CastError) Error() string {
	return fmt.Sprintf("ang: cannot represent %v as %s", e.Value, e.Kind)
}

func (e *CastError) Is(target error) bool {
	return target == ErrCast
}

func kindName[T Scalar](value T) string {
	return fmt.Sprintf("%T", value)
}
