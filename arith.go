package ang

// Add returns the sum of two angles. If both angles are in degrees, the
// sum is computed and returned in degrees. In every other case both
// angles are converted to radians first and the sum is in radians.
func (a Angle[T]) Add(b Angle[T]) Angle[T] {
	if a.unit == UnitDegrees && b.unit == UnitDegrees {
		return Degrees(a.value + b.value)
	}

	return Radians(a.InRadians() + b.InRadians())
}

// Sub returns the difference of two angles. The unit of the result
// is selected the same way as for Add.
func (a Angle[T]) Sub(b Angle[T]) Angle[T] {
	if a.unit == UnitDegrees && b.unit == UnitDegrees {
		return Degrees(a.value - b.value)
	}

	return Radians(a.InRadians() - b.InRadians())
}

// AddAssign sets a to a.Add(b).
func (a *Angle[T]) AddAssign(b Angle[T]) {
	*a = a.Add(b)
}

// SubAssign sets a to a.Sub(b).
func (a *Angle[T]) SubAssign(b Angle[T]) {
	*a = a.Sub(b)
}

// Mul scales the angle by a factor, keeping its unit.
func (a Angle[T]) Mul(factor T) Angle[T] {
	a.value *= factor
	return a
}

// Div divides the angle by a divisor, keeping its unit.
func (a Angle[T]) Div(divisor T) Angle[T] {
	a.value /= divisor
	return a
}

func (a *Angle[T]) MulAssign(factor T) {
	a.value *= factor
}

func (a *Angle[T]) DivAssign(divisor T) {
	a.value /= divisor
}

// ScalarMul multiplies a scalar by an angle, keeping the angle's unit.
func ScalarMul[T Scalar](factor T, a Angle[T]) Angle[T] {
	a.value = factor * a.value
	return a
}

// ScalarDiv divides a scalar by the value of an angle, keeping the angle's unit.
func ScalarDiv[T Scalar](dividend T, a Angle[T]) Angle[T] {
	a.value = dividend / a.value
	return a
}

// Neg returns the angle with its value negated.
func (a Angle[T]) Neg() Angle[T] {
	a.value = -a.value
	return a
}
