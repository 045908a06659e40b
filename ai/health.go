package ai

import (
	"time"

	"github.com/automoto/mostro/config"
	"github.com/charmbracelet/log"
)

// HealthState is a snapshot of the health component.
type HealthState struct {
	Current      int
	Max          int
	Invulnerable bool
	Dead         bool
}

// Health tracks hit points, the post-hit invulnerability window and the
// death sequence.
type Health struct {
	cfg     config.HealthConfig
	body    Body
	anim    Animator
	effect  DeathEffect
	spawner EffectSpawner
	logger  *log.Logger

	current int
	max     int
	invuln  Timer
	dead    bool
	dying   Timer
	removed bool

	onDying  []func()
	onDeath  []func()
	onRemove []func()
}

func NewHealth(cfg config.HealthConfig, body Body, anim Animator, logger *log.Logger) *Health {
	if anim == nil {
		anim = NopAnimator{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Health{
		cfg:     cfg,
		body:    body,
		anim:    anim,
		logger:  logger,
		current: cfg.Max,
		max:     cfg.Max,
	}
}

// SetDeathEffect configures the effect spawned when the death animation ends.
func (h *Health) SetDeathEffect(effect DeathEffect, spawner EffectSpawner) {
	h.effect = effect
	h.spawner = spawner
}

// OnDying registers a hook run when health reaches zero.
func (h *Health) OnDying(fn func()) {
	h.onDying = append(h.onDying, fn)
}

// OnDeath registers an observer run after the death delay.
func (h *Health) OnDeath(fn func()) {
	h.onDeath = append(h.onDeath, fn)
}

// OnRemove registers the host hook that removes the actor from the world.
func (h *Health) OnRemove(fn func()) {
	h.onRemove = append(h.onRemove, fn)
}

func (h *Health) Current() int       { return h.current }
func (h *Health) Max() int           { return h.max }
func (h *Health) Dead() bool         { return h.dead }
func (h *Health) Removed() bool      { return h.removed }
func (h *Health) Invulnerable() bool { return h.invuln.Active() }

func (h *Health) State() HealthState {
	return HealthState{
		Current:      h.current,
		Max:          h.max,
		Invulnerable: h.invuln.Active(),
		Dead:         h.dead,
	}
}

// TakeDamage is a no-op while dead or invulnerable.
func (h *Health) TakeDamage(amount int) {
	if h.dead || h.invuln.Active() || amount <= 0 {
		return
	}
	h.current = max(h.current-amount, 0)
	h.anim.SetTrigger(ParamHurt)
	h.logger.Debug("damaged", "amount", amount, "health", h.current)

	if h.current == 0 {
		h.die()
		return
	}
	h.invuln.Start(h.cfg.Invulnerability)
}

// Heal restores hit points up to Max. Dead actors stay dead.
func (h *Health) Heal(amount int) {
	if h.dead || amount <= 0 {
		return
	}
	h.current = min(h.current+amount, h.max)
}

// SetMax changes the maximum and clamps the current value into range.
// The maximum never drops below 1; a living actor always has a hit point
// to lose, so only TakeDamage starts the death sequence.
func (h *Health) SetMax(m int) {
	if h.dead {
		return
	}
	h.max = max(m, 1)
	h.current = min(max(h.current, 0), h.max)
}

func (h *Health) Tick(dt time.Duration) {
	h.invuln.Advance(dt)
	if h.dying.Advance(dt) {
		h.finish()
	}
}

func (h *Health) die() {
	h.dead = true
	h.invuln.Stop()
	h.anim.SetBool(ParamDead, true)
	h.logger.Info("died")
	for _, fn := range h.onDying {
		fn()
	}
	h.dying.Start(h.cfg.DeathDelay)
}

func (h *Health) finish() {
	if h.removed {
		return
	}
	h.spawnEffect()
	for _, fn := range h.onDeath {
		fn()
	}
	h.removed = true
	for _, fn := range h.onRemove {
		fn()
	}
}

func (h *Health) spawnEffect() {
	if h.effect == nil || h.spawner == nil || h.body == nil {
		return
	}
	if _, ok := h.effect.(Damageable); ok {
		h.logger.Error("death effect carries health, not spawning it", "effect", h.effect.Name())
		return
	}
	h.spawner.SpawnEffect(h.effect, h.body.Position(), h.body.Rotation())
}
