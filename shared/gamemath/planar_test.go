package gamemath

import (
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestPlanarDistanceIgnoresHeight(t *testing.T) {
	a := mgl64.Vec3{0, 0, 0}
	b := mgl64.Vec3{3, 10, 4}
	assert.InDelta(t, 5.0, PlanarDistance(a, b), 1e-9)
}

func TestPlanarDirection(t *testing.T) {
	dir, dist, ok := PlanarDirection(mgl64.Vec3{1, 0, 1}, mgl64.Vec3{1, 5, 3})
	assert.True(t, ok)
	assert.InDelta(t, 2.0, dist, 1e-9)
	assert.True(t, dir.ApproxEqual(mgl64.Vec3{0, 0, 1}))

	_, _, ok = PlanarDirection(mgl64.Vec3{1, 0, 1}, mgl64.Vec3{1, 4, 1})
	assert.False(t, ok)
}

func TestMoveTowards(t *testing.T) {
	tests := []struct {
		name     string
		from, to mgl64.Vec3
		step     float64
		want     mgl64.Vec3
	}{
		{"partial step", mgl64.Vec3{0, 0, 0}, mgl64.Vec3{10, 0, 0}, 2, mgl64.Vec3{2, 0, 0}},
		{"exact arrival", mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 0, 2}, 2, mgl64.Vec3{0, 0, 2}},
		{"no overshoot", mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}, 5, mgl64.Vec3{1, 0, 0}},
		{"already there", mgl64.Vec3{3, 0, 3}, mgl64.Vec3{3, 0, 3}, 1, mgl64.Vec3{3, 0, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MoveTowards(tt.from, tt.to, tt.step)
			assert.True(t, got.ApproxEqual(tt.want), "got %v want %v", got, tt.want)
		})
	}
}

func TestYawRotationFacesDirection(t *testing.T) {
	for _, dir := range []mgl64.Vec3{{1, 0, 0}, {0, 0, -1}, {-1, 3, 1}, {0.2, 0, 0.9}} {
		q, ok := YawRotation(dir)
		assert.True(t, ok)
		want := Flatten(dir).Normalize()
		got := FacingOf(q)
		for i := range 3 {
			assert.InDelta(t, want[i], got[i], 1e-9, "dir %v facing %v", dir, got)
		}
	}

	_, ok := YawRotation(mgl64.Vec3{0, 1, 0})
	assert.False(t, ok)
}

func TestTurnTowardsConverges(t *testing.T) {
	q := mgl64.QuatIdent()
	dir := mgl64.Vec3{1, 0, 0}
	prev := math.Pi
	for i := 0; i < 120; i++ {
		q = TurnTowards(q, dir, time.Second/60, 5)
		target, _ := YawRotation(dir)
		angle := AngleBetween(q, target)
		assert.LessOrEqual(t, angle, prev+1e-9)
		prev = angle
	}
	assert.InDelta(t, math.Pi/2, Yaw(q), 0.01)
}

func TestTurnTowardsFullStepSnaps(t *testing.T) {
	q := TurnTowards(mgl64.QuatIdent(), mgl64.Vec3{-1, 0, 0}, time.Second, 10)
	assert.InDelta(t, -math.Pi/2, Yaw(q), 1e-6)
}
