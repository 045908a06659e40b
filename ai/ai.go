// Package ai implements the mostro behaviour controllers: trigger-volume
// detection, waypoint patrol, the notice/pursue/attack state machine and
// health with a death sequence.
//
// The controllers are engine agnostic. A host drives them by calling Tick
// once per frame and feeds sensor overlaps through OnVolumeEnter and
// OnVolumeExit; everything they touch in the world goes through the small
// interfaces below.
package ai

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Animation parameter names pushed to the Animator.
const (
	ParamWalking  = "walking"
	ParamAlert    = "alert"
	ParamWatching = "watching"
	ParamAttack   = "attack"
	ParamDead     = "dead"
	ParamHurt     = "hurt"
)

// Transform is a read-only world position, used for the player.
type Transform interface {
	Position() mgl64.Vec3
}

// Body is the actor's own transform. Moves are direct writes, not forces.
type Body interface {
	Transform
	SetPosition(mgl64.Vec3)
	Rotation() mgl64.Quat
	SetRotation(mgl64.Quat)
}

// Tagged identifies the other collider of a trigger-volume event.
type Tagged interface {
	HasTags(tags ...string) bool
}

// PlayerLocator resolves the player transform by identity tag.
type PlayerLocator interface {
	FindByTag(tag string) (Transform, bool)
}

// Animator receives boolean parameters and one-shot triggers.
type Animator interface {
	SetBool(name string, value bool)
	SetTrigger(name string)
}

// DamageHook applies an attack to the player. Damage resolution is the
// host's concern.
type DamageHook func(amount int)

// DeathEffect is a visual effect resource spawned when an actor dies.
type DeathEffect interface {
	Name() string
}

// Damageable is anything that accepts damage. A DeathEffect that is also
// Damageable is a misconfigured actor prefab and is never spawned.
type Damageable interface {
	TakeDamage(amount int)
}

// EffectSpawner instantiates an effect in the world.
type EffectSpawner interface {
	SpawnEffect(effect DeathEffect, position mgl64.Vec3, rotation mgl64.Quat)
}

// NopAnimator discards every parameter.
type NopAnimator struct{}

func (NopAnimator) SetBool(string, bool) {}
func (NopAnimator) SetTrigger(string)    {}

// Pauser is the patrol hand-off used by the other controllers.
type Pauser interface {
	Pause()
	Resume()
}
