package ai

import (
	"math"
	"testing"
	"time"

	"github.com/automoto/mostro/config"
	"github.com/automoto/mostro/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type detectorHarness struct {
	det     *Detector
	body    *fakeBody
	player  *fakePlayer
	anim    *recordingAnimator
	detects int
	loses   int
}

func newDetectorHarness(t *testing.T) *detectorHarness {
	t.Helper()
	logger, _ := testLogger()
	h := &detectorHarness{
		body:   newFakeBody(mgl64.Vec3{}),
		player: &fakePlayer{pos: mgl64.Vec3{5, 0, 0}},
		anim:   newRecordingAnimator(),
	}
	h.det = NewDetector(config.DefaultMostroType().Detection, h.body, h.anim, logger)
	h.det.OnDetect(func() { h.detects++ })
	h.det.OnLose(func() { h.loses++ })
	h.det.Start(h.player)
	return h
}

func TestDetectorFirstEnterIsHonoured(t *testing.T) {
	h := newDetectorHarness(t)

	h.det.OnVolumeEnter(playerCollider)

	assert.True(t, h.det.InAlert())
	assert.Equal(t, 1, h.detects)
	assert.True(t, h.anim.bools[ParamAlert])
	assert.Zero(t, h.det.State().SinceTransition)
}

func TestDetectorIgnoresOtherColliders(t *testing.T) {
	h := newDetectorHarness(t)

	h.det.OnVolumeEnter(rockCollider)
	h.det.OnVolumeEnter(nil)

	assert.False(t, h.det.InAlert())
	assert.False(t, h.det.Inside())
	assert.Zero(t, h.detects)
}

func TestDetectorEventsInsideWindowAreIdempotent(t *testing.T) {
	h := newDetectorHarness(t)

	h.det.OnVolumeEnter(playerCollider)
	h.det.Tick(100 * time.Millisecond)
	h.det.OnVolumeExit(playerCollider)
	h.det.Tick(100 * time.Millisecond)
	h.det.OnVolumeEnter(playerCollider)
	h.det.OnVolumeEnter(playerCollider)
	h.det.Tick(40 * time.Millisecond)
	h.det.OnVolumeExit(playerCollider)

	assert.Equal(t, 1, h.detects)
	assert.Zero(t, h.loses)
	assert.True(t, h.det.InAlert())

	// the last raw exit settles once the window has passed
	h.det.Tick(10 * time.Millisecond)
	assert.False(t, h.det.InAlert())
	assert.Equal(t, 1, h.loses)
}

func TestDetectorExitAfterWindowFiresLose(t *testing.T) {
	h := newDetectorHarness(t)

	h.det.OnVolumeEnter(playerCollider)
	h.det.Tick(300 * time.Millisecond)
	h.det.OnVolumeExit(playerCollider)

	assert.False(t, h.det.InAlert())
	assert.Equal(t, 1, h.loses)
	assert.False(t, h.anim.bools[ParamAlert])
}

func TestDetectorDormantWithoutPlayer(t *testing.T) {
	logger, _ := testLogger()
	det := NewDetector(config.DefaultMostroType().Detection, newFakeBody(mgl64.Vec3{}), nil, logger)
	detected := false
	det.OnDetect(func() { detected = true })
	det.Start(nil)

	det.OnVolumeEnter(playerCollider)
	det.Tick(time.Second)

	assert.True(t, det.Dormant())
	assert.False(t, det.InAlert())
	assert.False(t, detected)
}

func TestDetectorEnteredAlertHooksRunBeforeObservers(t *testing.T) {
	h := newDetectorHarness(t)
	var order []string
	h.det.OnEnteredAlert(func() { order = append(order, "hook") })
	h.det.OnDetect(func() { order = append(order, "observer") })

	h.det.OnVolumeEnter(playerCollider)

	assert.Equal(t, []string{"hook", "observer"}, order)
}

func TestDetectorHoldsPatrolOnlyWhenAsked(t *testing.T) {
	h := newDetectorHarness(t)
	pauser := &countingPauser{}
	h.det.HoldPatrol(pauser)

	h.det.OnVolumeEnter(playerCollider)
	require.Equal(t, 1, pauser.pauses)

	h.det.Tick(time.Second)
	h.det.OnVolumeExit(playerCollider)
	assert.Equal(t, 1, pauser.resumes)

	// an exit with no pause taken must not resume
	h2 := newDetectorHarness(t)
	h2.det.OnVolumeEnter(playerCollider)
	h2.det.Tick(time.Second)
	h2.det.OnVolumeExit(playerCollider)
	assert.Equal(t, 1, pauser.resumes)
}

func TestDetectorTurnsTowardPlayerWhileAlert(t *testing.T) {
	h := newDetectorHarness(t)
	h.player.pos = mgl64.Vec3{5, 2, 0}

	h.det.Tick(time.Second)
	assert.InDelta(t, 0.0, gamemath.Yaw(h.body.rot), 1e-9, "no turning before alert")

	h.det.OnVolumeEnter(playerCollider)
	for range 200 {
		h.det.Tick(10 * time.Millisecond)
	}

	assert.InDelta(t, math.Pi/2, gamemath.Yaw(h.body.rot), 0.01)
	facing := gamemath.FacingOf(h.body.rot)
	assert.InDelta(t, 0.0, facing.Y(), 1e-9, "yaw only")
}
