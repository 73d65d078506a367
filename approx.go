package ang

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// DefaultMaxULPs is the ULP distance used by ApproxEqual-style comparisons
// when the caller has no better bound.
const DefaultMaxULPs uint = 4

// DefaultEpsilon returns the machine epsilon of T.
func DefaultEpsilon[T Float]() T {
	if bitSize[T]() == 32 {
		eps := 0x1p-23
		return T(eps)
	}

	eps := 0x1p-52
	return T(eps)
}

// approxOperands selects the unit approximate comparisons are done in.
// Two angles in radians are compared directly, every other pair in degrees.
func approxOperands[T Float](a, b Angle[T]) (float64, float64) {
	if a.unit == UnitRadians && b.unit == UnitRadians {
		return float64(a.value), float64(b.value)
	}

	return float64(a.InDegrees()), float64(b.InDegrees())
}

// AbsDiffEq reports whether two angles differ by at most epsilon.
func AbsDiffEq[T Float](a, b Angle[T], epsilon T) bool {
	x, y := approxOperands(a, b)
	return scalar.EqualWithinAbs(x, y, float64(epsilon))
}

// RelativeEq reports whether two angles differ by at most epsilon, or by at
// most maxRelative relative to the larger of the two values.
func RelativeEq[T Float](a, b Angle[T], epsilon, maxRelative T) bool {
	x, y := approxOperands(a, b)
	if math.IsInf(x, 0) || math.IsInf(y, 0) {
		return x == y
	}

	return scalar.EqualWithinAbsOrRel(x, y, float64(epsilon), float64(maxRelative))
}

// UlpsEq reports whether two angles differ by at most epsilon, or are at
// most maxULPs representable values of T apart.
func UlpsEq[T Float](a, b Angle[T], epsilon T, maxULPs uint) bool {
	x, y := approxOperands(a, b)
	if scalar.EqualWithinAbs(x, y, float64(epsilon)) {
		return true
	}

	// values of opposite sign are never close in ULPs
	if math.Signbit(x) != math.Signbit(y) {
		return x == y
	}

	if bitSize[T]() == 32 {
		return equalWithinULP32(float32(x), float32(y), maxULPs)
	}

	return scalar.EqualWithinULP(x, y, maxULPs)
}

// ApproxEqual is RelativeEq with the machine epsilon of T for both tolerances.
func ApproxEqual[T Float](a, b Angle[T]) bool {
	eps := DefaultEpsilon[T]()
	return RelativeEq(a, b, eps, eps)
}

// equalWithinULP32 counts the ULP distance of two float32 values of the same sign.
func equalWithinULP32(a, b float32, ulp uint) bool {
	if a == b {
		return true
	}

	if math.IsNaN(float64(a)) || math.IsNaN(float64(b)) {
		return false
	}

	if math.Signbit(float64(a)) != math.Signbit(float64(b)) {
		return false
	}

	ua, ub := math.Float32bits(a), math.Float32bits(b)
	if ua > ub {
		return uint(ua-ub) <= ulp
	}

	return uint(ub-ua) <= ulp
}
