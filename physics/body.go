// Package physics connects angles to bodies and vectors of the chipmunk
// physics engine, github.com/jakecoffman/cp/v2.
//
// Chipmunk stores rotations and angular velocities as plain float64 radians.
// The functions in this package read and write them as ang.Angle values, so
// simulation code can work with degrees or radians freely.
package physics

import (
	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/ang"
)

// BodyAngle returns the rotation of the body.
func BodyAngle(body *cp.Body) ang.Angle64 {
	return ang.Radians(body.Angle())
}

// SetBodyAngle sets the rotation of the body. This wakes the body up if it was sleeping.
func SetBodyAngle(body *cp.Body, angle ang.Angle64) {
	body.SetAngle(angle.InRadians())
}

// BodyAngularVelocity returns the angular velocity of the body as the angle it turns per second.
func BodyAngularVelocity(body *cp.Body) ang.Angle64 {
	return ang.Radians(body.AngularVelocity())
}

// SetBodyAngularVelocity sets the angle the body turns per second.
func SetBodyAngularVelocity(body *cp.Body, perSecond ang.Angle64) {
	body.SetAngularVelocity(perSecond.InRadians())
}

// Direction returns the unit vector pointing in the direction of the angle,
// measured counter clockwise from the positive x axis.
func Direction(angle ang.Angle64) cp.Vector {
	return cp.ForAngle(angle.InRadians())
}

// VectorAngle returns the direction of a vector. The result is in the range [-π, π].
func VectorAngle(vec cp.Vector) ang.Angle64 {
	return ang.Radians(vec.ToAngle())
}

// HeadingError returns the smallest unsigned angle the body has to turn
// to face the target heading.
func HeadingError(body *cp.Body, target ang.Angle64) ang.Angle64 {
	return ang.MinDist(BodyAngle(body), target)
}

// TurnDirection returns +1 if the body reaches the target faster by turning
// counter clockwise, -1 if clockwise, and 0 if it is already facing the target.
func TurnDirection(body *cp.Body, target ang.Angle64) float64 {
	delta := target.Sub(BodyAngle(body)).Normalized()
	if delta.IsZero() {
		return 0
	}

	if delta.Less(ang.Half[float64]()) {
		return 1
	}

	return -1
}
