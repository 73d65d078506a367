package ang

import "math"

// Sin returns the sine of the angle.
func Sin[T Float](a Angle[T]) T {
	return sin(a.InRadians())
}

// Cos returns the cosine of the angle.
func Cos[T Float](a Angle[T]) T {
	return cos(a.InRadians())
}

// Tan returns the tangent of the angle.
func Tan[T Float](a Angle[T]) T {
	return tan(a.InRadians())
}

// SinCos returns Sin(a), Cos(a).
func SinCos[T Float](a Angle[T]) (sin, cos T) {
	return sinCos(a.InRadians())
}

// Asin returns the arcsine of x in the range [-π/2, π/2] rad.
// ok is false if x is outside of [-1, 1].
func Asin[T Float](x T) (angle Angle[T], ok bool) {
	v := asin(x)
	if isNaN(v) {
		return Angle[T]{}, false
	}

	return Radians(v), true
}

// Acos returns the arccosine of x in the range [0, π] rad.
// ok is false if x is outside of [-1, 1].
func Acos[T Float](x T) (angle Angle[T], ok bool) {
	v := acos(x)
	if isNaN(v) {
		return Angle[T]{}, false
	}

	return Radians(v), true
}

// Atan returns the arctangent of x in the range [-π/2, π/2] rad.
func Atan[T Float](x T) Angle[T] {
	return Radians(atan(x))
}

// Atan2 returns the four quadrant arctangent of y and x in radians.
func Atan2[T Float](y, x T) Angle[T] {
	return Radians(atan2(y, x))
}

// MinDist returns the smallest unsigned distance between two angles
// along the circle, in the range [0, π] rad.
func MinDist[T Float](a, b Angle[T]) Angle[T] {
	piValue, twoPiValue := math.Pi, 2*math.Pi
	pi, twoPi := T(piValue), T(twoPiValue)

	x := a.InRadians()
	y := b.InRadians()

	d := abs(x - y)

	// both angles normalized, no need to fold the difference
	if x >= 0 && x < twoPi && y >= 0 && y < twoPi {
		return Radians(min(d, twoPi-d))
	}

	return Radians(pi - abs(rem(d, twoPi)-pi))
}
