package ai

import (
	"testing"
	"time"

	"github.com/automoto/mostro/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHealth(t *testing.T) (*Health, *recordingAnimator) {
	t.Helper()
	logger, _ := testLogger()
	anim := newRecordingAnimator()
	return NewHealth(config.DefaultMostroType().Health, newFakeBody(mgl64.Vec3{2, 0, 3}), anim, logger), anim
}

func TestHealthDamageStartsInvulnerability(t *testing.T) {
	h, anim := newTestHealth(t)

	h.TakeDamage(1)
	assert.Equal(t, 2, h.Current())
	assert.True(t, h.Invulnerable())
	assert.Equal(t, 1, anim.triggers[ParamHurt])

	h.TakeDamage(1)
	assert.Equal(t, 2, h.Current(), "ignored while invulnerable")

	h.Tick(100 * time.Millisecond)
	assert.False(t, h.Invulnerable())
	h.TakeDamage(1)
	assert.Equal(t, 1, h.Current())
}

func TestHealthIgnoresNonPositiveDamage(t *testing.T) {
	h, anim := newTestHealth(t)
	h.TakeDamage(0)
	h.TakeDamage(-4)
	assert.Equal(t, 3, h.Current())
	assert.False(t, h.Invulnerable())
	assert.Zero(t, anim.triggers[ParamHurt])
}

func TestHealthDeathSequenceRunsOnce(t *testing.T) {
	h, anim := newTestHealth(t)
	var dying, deaths, removals int
	var order []string
	h.OnDying(func() { dying++ })
	h.OnDeath(func() { deaths++; order = append(order, "death") })
	h.OnRemove(func() { removals++; order = append(order, "remove") })

	h.TakeDamage(2)
	h.Tick(time.Second)
	require.Equal(t, 1, h.Current())

	h.TakeDamage(1)
	assert.True(t, h.Dead())
	assert.Equal(t, 0, h.Current())
	assert.Equal(t, 1, dying)
	assert.True(t, anim.bools[ParamDead])

	h.TakeDamage(1)
	h.TakeDamage(5)
	assert.Equal(t, 0, h.Current())
	assert.Equal(t, 1, dying)

	h.Tick(500 * time.Millisecond)
	assert.Zero(t, deaths, "death animation still playing")
	h.Tick(100 * time.Millisecond)
	assert.Equal(t, 1, deaths)
	assert.True(t, h.Removed())

	h.Tick(time.Second)
	assert.Equal(t, 1, deaths)
	assert.Equal(t, 1, removals)
	assert.Equal(t, []string{"death", "remove"}, order)
}

func TestHealthOverkillNeverGoesNegative(t *testing.T) {
	h, _ := newTestHealth(t)
	h.TakeDamage(10)
	assert.Equal(t, 0, h.Current())
	assert.True(t, h.Dead())
	assert.Equal(t, HealthState{Current: 0, Max: 3, Dead: true}, h.State())
}

func TestHealthSpawnsDeathEffect(t *testing.T) {
	h, _ := newTestHealth(t)
	spawner := &recordingSpawner{}
	h.SetDeathEffect(effect{name: "poof"}, spawner)

	h.TakeDamage(3)
	h.Tick(600 * time.Millisecond)

	require.Len(t, spawner.spawned, 1)
	assert.Equal(t, "poof", spawner.spawned[0].effect.Name())
	assert.Equal(t, mgl64.Vec3{2, 0, 3}, spawner.spawned[0].pos)
}

func TestHealthRefusesDamageableEffect(t *testing.T) {
	logger, buf := testLogger()
	h := NewHealth(config.DefaultMostroType().Health, newFakeBody(mgl64.Vec3{}), nil, logger)
	spawner := &recordingSpawner{}
	h.SetDeathEffect(damageableEffect{effect{name: "slime-prefab"}}, spawner)
	died := false
	h.OnDeath(func() { died = true })

	h.TakeDamage(3)
	h.Tick(time.Second)

	assert.Empty(t, spawner.spawned)
	assert.True(t, died, "the death event still fires")
	assert.Contains(t, buf.String(), "slime-prefab")
}

func TestHealthHealAndSetMax(t *testing.T) {
	h, _ := newTestHealth(t)
	h.TakeDamage(2)

	h.Heal(5)
	assert.Equal(t, 3, h.Current())

	h.SetMax(2)
	assert.Equal(t, 2, h.Max())
	assert.Equal(t, 2, h.Current())

	h.SetMax(6)
	assert.Equal(t, 2, h.Current())

	h.Tick(time.Second)
	h.TakeDamage(2)
	require.True(t, h.Dead())
	h.Heal(1)
	assert.Equal(t, 0, h.Current())
}

func TestHealthSetMaxFloorsAtOne(t *testing.T) {
	h, _ := newTestHealth(t)

	h.SetMax(0)
	assert.Equal(t, 1, h.Max())
	assert.Equal(t, 1, h.Current())
	assert.False(t, h.Dead())

	h.SetMax(-4)
	assert.Equal(t, 1, h.Max())
	assert.Equal(t, 1, h.Current())
}
