package ang

import "cmp"

// Equal reports whether two angles describe the same value. Two angles
// in degrees are compared directly, every other pair is compared in radians.
func (a Angle[T]) Equal(b Angle[T]) bool {
	if a.unit == UnitDegrees && b.unit == UnitDegrees {
		return a.value == b.value
	}

	return a.InRadians() == b.InRadians()
}

// Compare returns -1, 0 or +1 depending on whether a is less than, equal to
// or greater than b. Two angles in radians are compared directly, every other
// pair is compared in degrees.
//
// NaN values are ordered as by cmp.Compare, which makes Compare usable
// with slices.SortFunc.
func (a Angle[T]) Compare(b Angle[T]) int {
	x, y := a.orderingOperands(b)
	return cmp.Compare(x, y)
}

// Less reports whether a is less than b, selecting the unit as Compare does.
// Less is false if either value is NaN.
func (a Angle[T]) Less(b Angle[T]) bool {
	x, y := a.orderingOperands(b)
	return x < y
}

func (a Angle[T]) orderingOperands(b Angle[T]) (T, T) {
	if a.unit == UnitRadians && b.unit == UnitRadians {
		return a.value, b.value
	}

	return a.InDegrees(), b.InDegrees()
}

// Abs returns the angle with the absolute value of its payload.
func (a Angle[T]) Abs() Angle[T] {
	a.value = abs(a.value)
	return a
}

// Signum returns an angle in the same unit holding the sign of the value.
//
// For float payloads this is 1 for positive values, +0 and +Inf, -1 for
// negative values, -0 and -Inf, and NaN for NaN. For integer payloads the
// sign of zero is 0.
func (a Angle[T]) Signum() Angle[T] {
	a.value = signum(a.value)
	return a
}

// IsPositive reports whether the value is positive. For float payloads
// this follows the sign bit, so +0 is positive and NaN is neither
// positive nor negative.
func (a Angle[T]) IsPositive() bool {
	return isPositive(a.value)
}

// IsNegative reports whether the value is negative. For float payloads
// this follows the sign bit, so -0 is negative.
func (a Angle[T]) IsNegative() bool {
	return isNegative(a.value)
}
