package ang

import "math"

// Normalized maps the angle into one turn of its unit, [0, 2π) for radians
// and [0, 360) for degrees. The unit is kept. Values already in range are
// returned unchanged.
//
// A tiny negative float may round up to exactly the period when the full
// turn is added, so Radians(-1e-17).Normalized() is 2π.
//
// For integer payloads a full turn in radians is truncated to 6.
func (a Angle[T]) Normalized() Angle[T] {
	period := a.period()

	v := a.value
	if v >= 0 && v < period {
		return a
	}

	v = rem(v, period)
	if v < 0 {
		v += period
	}

	a.value = v
	return a
}

func (a Angle[T]) period() T {
	if a.unit == UnitRadians {
		return mustCast[T](2 * math.Pi)
	}

	return mustCast[T](360)
}
