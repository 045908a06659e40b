package ai

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimerFiresOnce(t *testing.T) {
	var tm Timer
	tm.Start(100 * time.Millisecond)

	assert.False(t, tm.Advance(60*time.Millisecond))
	assert.Equal(t, 40*time.Millisecond, tm.Remaining())
	assert.True(t, tm.Advance(40*time.Millisecond))
	assert.False(t, tm.Active())
	assert.False(t, tm.Advance(time.Second))
}

func TestTimerRestartDoesNotStack(t *testing.T) {
	var tm Timer
	tm.Start(100 * time.Millisecond)
	tm.Advance(90 * time.Millisecond)
	tm.Start(100 * time.Millisecond)

	assert.False(t, tm.Advance(50*time.Millisecond))
	assert.True(t, tm.Advance(50*time.Millisecond))
}

func TestTimerStopCancels(t *testing.T) {
	var tm Timer
	tm.Start(10 * time.Millisecond)
	tm.Stop()
	assert.False(t, tm.Advance(time.Second))
	assert.Zero(t, tm.Remaining())
}

func TestTimerZeroDurationFiresOnNextAdvance(t *testing.T) {
	var tm Timer
	tm.Start(0)
	assert.True(t, tm.Active())
	assert.True(t, tm.Advance(0))
}
