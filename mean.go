package ang

import (
	"iter"
	"math"
	"slices"
)

// MeanAngle computes the circular mean of a sequence of angles by averaging
// their positions on the unit circle. The result is normalized to [0, 2π) rad.
//
// The sequence is consumed once and is not buffered. If it yields no angles,
// MeanAngle returns a NaN angle together with ErrEmptySequence.
func MeanAngle[T Float](angles iter.Seq[Angle[T]]) (Angle[T], error) {
	var x, y T
	var n int

	for angle := range angles {
		sin, cos := SinCos(angle)

		x += cos
		y += sin
		n++
	}

	if n == 0 {
		nan := math.NaN()
		return Radians(T(nan)), ErrEmptySequence
	}

	count := T(n)
	return Atan2(y/count, x/count).Normalized(), nil
}

// Mean is MeanAngle over its arguments.
func Mean[T Float](angles ...Angle[T]) (Angle[T], error) {
	return MeanAngle(slices.Values(angles))
}
