package ang

// Unit tags the payload of an Angle.
type Unit uint8

const (
	UnitRadians Unit = iota
	UnitDegrees
)

func (u Unit) String() string {
	switch u {
	case UnitRadians:
		return "rad"
	case UnitDegrees:
		return "°"
	default:
		return "unknown"
	}
}
