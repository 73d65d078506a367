package ang

import (
	"math/rand/v2"
)

// RandomIn returns a random value uniformly sampled from the given range, excluding max.
func RandomIn[T Float](min, max T) T {
	return T(rand.Float64()*(float64(max)-float64(min))) + min
}

// Random returns an angle in the given unit, uniformly sampled from one full turn.
func Random[T Float](unit Unit) Angle[T] {
	period := Angle[T]{unit: unit}.period()

	for {
		value := RandomIn(0, period)

		// rounding into a float32 may land exactly on the period
		if value < period {
			return Angle[T]{unit: unit, value: value}
		}
	}
}
