package ang

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
)

// String renders the angle with its unit, "1.5rad" or "90°".
func (a Angle[T]) String() string {
	return formatScalar(a.value) + a.unit.String()
}

func (a Angle[T]) LogValue() slog.Value {
	return slog.StringValue(a.String())
}

func (a Angle[T]) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Angle[T]) UnmarshalText(text []byte) error {
	parsed, err := Parse[T](string(text))
	if err != nil {
		return err
	}

	*a = parsed
	return nil
}

// Parse reads an angle in the format produced by String. A value in degrees
// may use the suffix "deg" instead of "°". Surrounding whitespace and
// whitespace between the value and the unit is ignored.
func Parse[T Scalar](text string) (Angle[T], error) {
	s := strings.TrimSpace(text)

	var unit Unit
	switch {
	case strings.HasSuffix(s, "rad"):
		unit, s = UnitRadians, strings.TrimSuffix(s, "rad")
	case strings.HasSuffix(s, "°"):
		unit, s = UnitDegrees, strings.TrimSuffix(s, "°")
	case strings.HasSuffix(s, "deg"):
		unit, s = UnitDegrees, strings.TrimSuffix(s, "deg")
	default:
		return Angle[T]{}, fmt.Errorf("parse angle %q: missing unit: %w", text, ErrSyntax)
	}

	value, err := parseScalar[T](strings.TrimSpace(s))
	if err != nil {
		return Angle[T]{}, fmt.Errorf("parse angle %q: %w", text, err)
	}

	return Angle[T]{unit: unit, value: value}, nil
}

func formatScalar[T Scalar](value T) string {
	if !isFloat[T]() {
		if isSigned[T]() {
			return strconv.FormatInt(int64(value), 10)
		}

		return strconv.FormatUint(uint64(value), 10)
	}

	f := float64(value)
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	return strconv.FormatFloat(f, 'f', -1, bitSize[T]())
}

func parseScalar[T Scalar](s string) (T, error) {
	switch {
	case isFloat[T]():
		f, err := strconv.ParseFloat(s, bitSize[T]())
		return T(f), err

	case isSigned[T]():
		i, err := strconv.ParseInt(s, 10, bitSize[T]())
		return T(i), err

	default:
		u, err := strconv.ParseUint(s, 10, bitSize[T]())
		return T(u), err
	}
}
