package ang

import (
	"cmp"
	"math"
	"slices"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

func TestAngle_Equal(t *testing.T) {
	require.True(t, Degrees(90.0).Equal(Degrees(90.0)))
	require.False(t, Degrees(90.0).Equal(Degrees(90.5)))

	require.True(t, Degrees(180.0).Equal(Radians(math.Pi)))
	require.True(t, Radians(math.Pi/2).Equal(Degrees(90.0)))
	require.True(t, Radians(1.0).Equal(Radians(1.0)))
	require.False(t, Radians(1.0).Equal(Degrees(1.0)))

	require.False(t, Degrees(math.NaN()).Equal(Degrees(math.NaN())))
}

func TestAngle_DegreesCompareDirectly(t *testing.T) {
	prop := func(x, y float64) bool {
		a, b := Degrees(x), Degrees(y)
		return a.Equal(b) == (x == y) &&
			a.Compare(b) == cmp.Compare(x, y) &&
			a.Less(b) == (x < y)
	}

	require.NoError(t, quick.Check(prop, nil))

	// a round trip through radians would not keep these apart
	x := 0.1
	y := math.Nextafter(x, 1)
	require.False(t, Degrees(x).Equal(Degrees(y)))
	require.Equal(t, -1, Degrees(x).Compare(Degrees(y)))
}

func TestAngle_Compare(t *testing.T) {
	require.Equal(t, 0, Radians(1.0).Compare(Radians(1.0)))
	require.Equal(t, -1, Radians(1.0).Compare(Radians(2.0)))
	require.Equal(t, 1, Radians(1.0).Compare(Degrees(57.0)))
	require.Equal(t, -1, Degrees(57.0).Compare(Radians(1.0)))
	require.Equal(t, 0, Degrees(180.0).Compare(Radians(math.Pi)))

	require.True(t, Degrees(10.0).Less(Radians(1.0)))
	require.False(t, Radians(1.0).Less(Degrees(10.0)))
}

func TestAngle_CompareNaN(t *testing.T) {
	nan := Radians(math.NaN())

	require.False(t, nan.Less(Radians(1.0)))
	require.False(t, Radians(1.0).Less(nan))

	require.Equal(t, -1, nan.Compare(Radians(1.0)))
	require.Equal(t, 0, nan.Compare(Degrees(math.NaN())))
}

func TestAngle_Sort(t *testing.T) {
	angles := []Angle64{
		Degrees(270.0),
		Radians(1.0),
		Degrees(10.0),
		Radians(math.Pi),
	}

	slices.SortFunc(angles, Angle64.Compare)

	require.Equal(t, []Angle64{
		Degrees(10.0),
		Radians(1.0),
		Radians(math.Pi),
		Degrees(270.0),
	}, angles)
}

func TestAngle_IntegerCompare(t *testing.T) {
	require.True(t, Degrees(180).Equal(Radians(3)))
	require.Equal(t, 0, Radians(3).Compare(Degrees(171)))
	require.Equal(t, 1, Radians(3).Compare(Degrees(170)))
}

func TestAngle_Sign(t *testing.T) {
	negZero := math.Copysign(0, -1)

	t.Run("abs", func(t *testing.T) {
		require.Equal(t, Degrees(90.0), Degrees(-90.0).Abs())
		require.Equal(t, Radians(1.5), Radians(1.5).Abs())
		require.Equal(t, Degrees(45), Degrees(-45).Abs())
		require.False(t, math.Signbit(Radians(negZero).Abs().Value()))
	})

	t.Run("signum", func(t *testing.T) {
		require.Equal(t, Degrees(-1.0), Degrees(-90.0).Signum())
		require.Equal(t, Radians(1.0), Radians(0.0).Signum())
		require.Equal(t, Radians(-1.0), Radians(negZero).Signum())
		require.Equal(t, Degrees(1.0), Degrees(math.Inf(1)).Signum())
		require.True(t, math.IsNaN(Degrees(math.NaN()).Signum().Value()))

		require.Equal(t, Degrees(0), Degrees(0).Signum())
		require.Equal(t, Degrees(-1), Degrees(-7).Signum())
		require.Equal(t, Radians[uint](1), Radians[uint](7).Signum())
	})

	t.Run("positive and negative", func(t *testing.T) {
		require.True(t, Degrees(1.0).IsPositive())
		require.False(t, Degrees(1.0).IsNegative())

		require.True(t, Radians(-1.0).IsNegative())
		require.False(t, Radians(-1.0).IsPositive())

		require.True(t, Radians(0.0).IsPositive())
		require.True(t, Radians(negZero).IsNegative())

		require.False(t, Radians(math.NaN()).IsPositive())
		require.False(t, Radians(math.NaN()).IsNegative())

		require.False(t, Degrees(0).IsPositive())
		require.False(t, Degrees(0).IsNegative())
		require.True(t, Degrees(-3).IsNegative())
	})
}
