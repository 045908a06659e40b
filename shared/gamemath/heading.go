package gamemath

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// YawRotation returns the rotation about the up axis that faces dir.
// The vertical component of dir is ignored; ok is false for a zero direction.
func YawRotation(dir mgl64.Vec3) (mgl64.Quat, bool) {
	flat := Flatten(dir)
	if flat.LenSqr() < Epsilon {
		return mgl64.QuatIdent(), false
	}
	return mgl64.QuatRotate(math.Atan2(flat.X(), flat.Z()), Up), true
}

// Yaw extracts the heading angle (radians, 0 = +Z) of a rotation.
func Yaw(q mgl64.Quat) float64 {
	f := q.Rotate(Forward)
	return math.Atan2(f.X(), f.Z())
}

// FacingOf returns the planar facing vector of a rotation.
func FacingOf(q mgl64.Quat) mgl64.Vec3 {
	return Flatten(q.Rotate(Forward))
}

// TurnTowards slerps current toward the heading of dir. The interpolation
// factor is dt*rate (clamped to 1), so the turn speed is independent of the
// movement speed.
func TurnTowards(current mgl64.Quat, dir mgl64.Vec3, dt time.Duration, rate float64) mgl64.Quat {
	target, ok := YawRotation(dir)
	if !ok {
		return current
	}
	t := ClampFloat(dt.Seconds()*rate, 0, 1)
	return mgl64.QuatSlerp(current, target, t).Normalize()
}

// AngleBetween returns the absolute planar angle between two headings.
func AngleBetween(a, b mgl64.Quat) float64 {
	d := math.Abs(Yaw(a) - Yaw(b))
	if d > math.Pi {
		d = 2*math.Pi - d
	}
	return d
}
