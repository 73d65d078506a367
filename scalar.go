package ang

import (
	"math"
	"unsafe"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Scalar is the set of numeric kinds an Angle can carry.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Float is the set of scalar kinds that support trigonometry.
type Float interface {
	constraints.Float
}

func isFloat[T Scalar]() bool {
	half := 0.5
	return T(half) != 0
}

func isSigned[T Scalar]() bool {
	var zero T
	return zero-1 < zero
}

func bitSize[T Scalar]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// cast converts a float64 intermediate into T. Conversions into float kinds
// always succeed, conversions into integer kinds truncate towards zero and
// fail if the truncated value does not fit.
func cast[T Scalar](value float64) (T, error) {
	if isFloat[T]() {
		return T(value), nil
	}

	bits := bitSize[T]()

	truncated := math.Trunc(value)

	var lo, hi float64
	if isSigned[T]() {
		hi = math.Ldexp(1, bits-1)
		lo = -hi
	} else {
		hi = math.Ldexp(1, bits)
		lo = 0
	}

	// NaN fails both comparisons
	if !(truncated >= lo && truncated < hi) {
		var zero T
		return zero, &CastError{Value: value, Kind: kindName(zero)}
	}

	return T(truncated), nil
}

func mustCast[T Scalar](value float64) T {
	result, err := cast[T](value)
	if err != nil {
		panic(err)
	}

	return result
}

// rem computes the remainder of a truncating division, the way % does
// for integers and math.Mod does for floats.
func rem[T Scalar](a, b T) T {
	if isFloat[T]() {
		return T(math.Mod(float64(a), float64(b)))
	}

	return a - (a/b)*b
}

func abs[T Scalar](v T) T {
	if isFloat[T]() {
		return T(math.Abs(float64(v)))
	}

	if v < 0 {
		return -v
	}

	return v
}

func signum[T Scalar](v T) T {
	if isFloat[T]() {
		f := float64(v)
		switch {
		case math.IsNaN(f):
			return v
		case math.Signbit(f):
			minusOne := -1.0
			return T(minusOne)
		default:
			return 1
		}
	}

	switch {
	case v > 0:
		return 1
	case v < 0:
		// unsigned kinds never get here
		minusOne := -1
		return T(minusOne)
	default:
		return 0
	}
}

func isPositive[T Scalar](v T) bool {
	if isFloat[T]() {
		f := float64(v)
		return !math.IsNaN(f) && !math.Signbit(f)
	}

	return v > 0
}

func isNegative[T Scalar](v T) bool {
	if isFloat[T]() {
		f := float64(v)
		return !math.IsNaN(f) && math.Signbit(f)
	}

	return v < 0
}

func isNaN[T Scalar](v T) bool {
	return isFloat[T]() && math.IsNaN(float64(v))
}

// The float helpers below evaluate float32 payloads in single precision and
// everything else in double precision.

func sinCos[T Float](x T) (sin, cos T) {
	if v, ok := any(x).(float32); ok {
		s, c := math32.Sincos(v)
		return T(s), T(c)
	}

	s, c := math.Sincos(float64(x))
	return T(s), T(c)
}

func tan[T Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Tan(v))
	}

	return T(math.Tan(float64(x)))
}

func asin[T Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Asin(v))
	}

	return T(math.Asin(float64(x)))
}

func acos[T Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Acos(v))
	}

	return T(math.Acos(float64(x)))
}

func atan[T Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Atan(v))
	}

	return T(math.Atan(float64(x)))
}

func atan2[T Float](y, x T) T {
	if v, ok := any(y).(float32); ok {
		return T(math32.Atan2(v, float32(x)))
	}

	return T(math.Atan2(float64(y), float64(x)))
}

func sin[T Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Sin(v))
	}

	return T(math.Sin(float64(x)))
}

func cos[T Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Cos(v))
	}

	return T(math.Cos(float64(x)))
}
