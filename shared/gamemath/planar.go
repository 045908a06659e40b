// Package gamemath holds the movement and heading helpers shared by the AI
// controllers and the hosts. Every range check is planar: the up (Y)
// component is zeroed so height differences never change a decision.
package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Epsilon is the squared length below which a direction is treated as zero.
const Epsilon = 0.0001

// Up is the world up axis.
var Up = mgl64.Vec3{0, 1, 0}

// Forward is the local facing axis of an unrotated actor.
var Forward = mgl64.Vec3{0, 0, 1}

// Flatten returns v with its vertical component zeroed.
func Flatten(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X(), 0, v.Z()}
}

// PlanarDistance is the distance between a and b ignoring height.
func PlanarDistance(a, b mgl64.Vec3) float64 {
	return Flatten(b.Sub(a)).Len()
}

// PlanarDirection returns the normalized horizontal direction from a to b
// and the planar distance. ok is false when the points overlap.
func PlanarDirection(a, b mgl64.Vec3) (dir mgl64.Vec3, dist float64, ok bool) {
	d := Flatten(b.Sub(a))
	dist = d.Len()
	if dist*dist < Epsilon {
		return mgl64.Vec3{}, dist, false
	}
	return d.Mul(1 / dist), dist, true
}

// MoveTowards steps current toward target by at most maxDelta and never
// overshoots.
func MoveTowards(current, target mgl64.Vec3, maxDelta float64) mgl64.Vec3 {
	delta := target.Sub(current)
	dist := delta.Len()
	if dist <= maxDelta || dist == 0 {
		return target
	}
	return current.Add(delta.Mul(maxDelta / dist))
}

// ClampFloat restricts v to [lo, hi].
func ClampFloat(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
