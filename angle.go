package ang

import "math"

// Angle is a value in either radians or degrees.
//
// The unit an angle was constructed with is kept for its whole life.
// Operations between angles convert between units as needed, so
// callers never have to track which unit a value is in.
//
// The zero value is an angle of 0 radians.
type Angle[T Scalar] struct {
	unit  Unit
	value T
}

type Angle32 = Angle[float32]
type Angle64 = Angle[float64]

// Radians creates an angle with the given value in radians.
func Radians[T Scalar](value T) Angle[T] {
	return Angle[T]{unit: UnitRadians, value: value}
}

// Degrees creates an angle with the given value in degrees.
func Degrees[T Scalar](value T) Angle[T] {
	return Angle[T]{unit: UnitDegrees, value: value}
}

// Unit returns the unit the angle was constructed with.
func (a Angle[T]) Unit() Unit {
	return a.unit
}

// Value returns the raw payload, in the angle's own unit.
func (a Angle[T]) Value() T {
	return a.value
}

// InRadians returns the value of the angle in radians.
// This method panics with a *CastError if the converted value
// can not be represented in T.
func (a Angle[T]) InRadians() T {
	v, err := a.TryInRadians()
	if err != nil {
		panic(err)
	}

	return v
}

// InDegrees returns the value of the angle in degrees.
// This method panics with a *CastError if the converted value
// can not be represented in T.
func (a Angle[T]) InDegrees() T {
	v, err := a.TryInDegrees()
	if err != nil {
		panic(err)
	}

	return v
}

// TryInRadians returns the value of the angle in radians.
func (a Angle[T]) TryInRadians() (T, error) {
	if a.unit == UnitRadians {
		return a.value, nil
	}

	return cast[T](float64(a.value) / 180 * math.Pi)
}

// TryInDegrees returns the value of the angle in degrees.
func (a Angle[T]) TryInDegrees() (T, error) {
	if a.unit == UnitDegrees {
		return a.value, nil
	}

	return cast[T](float64(a.value) / math.Pi * 180)
}

func (a Angle[T]) ToRadians() Angle[T] {
	return Radians(a.InRadians())
}

func (a Angle[T]) ToDegrees() Angle[T] {
	return Degrees(a.InDegrees())
}

// Eighth returns an angle of 45°.
func Eighth[T Scalar]() Angle[T] {
	return Degrees(mustCast[T](45))
}

// Quarter returns a right angle, 90°.
func Quarter[T Scalar]() Angle[T] {
	return Degrees(mustCast[T](90))
}

// Half returns a straight angle, 180°.
func Half[T Scalar]() Angle[T] {
	return Degrees(mustCast[T](180))
}

// Full returns a full turn, 360°.
func Full[T Scalar]() Angle[T] {
	return Degrees(mustCast[T](360))
}

// Zero returns an angle of 0 radians. This is the same as the zero value.
func Zero[T Scalar]() Angle[T] {
	return Angle[T]{}
}

// IsZero reports whether the payload is zero, regardless of the unit.
func (a Angle[T]) IsZero() bool {
	return a.value == 0
}
