package ai

import (
	"math/rand/v2"
	"time"

	"github.com/automoto/mostro/config"
	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"
)

// Deps are the collaborators an Actor is wired with.
type Deps struct {
	Name        string
	Body        Body
	Locator     PlayerLocator
	Animator    Animator
	Waypoints   []mgl64.Vec3
	Damage      DamageHook
	Effects     EffectSpawner
	DeathEffect DeathEffect
	Rand        *rand.Rand
	Logger      *log.Logger
}

// Actor owns one mostro's four controllers.
type Actor struct {
	Name     string
	Type     config.MostroTypeConfig
	Detector *Detector
	Patrol   *Patroller
	Combat   *Combat
	Health   *Health

	locator PlayerLocator
	player  Transform
	warn    *warnings
	logger  *log.Logger
	started bool
}

func NewActor(cfg config.MostroTypeConfig, deps Deps) *Actor {
	logger := deps.Logger
	if logger == nil {
		logger = log.Default()
	}
	name := deps.Name
	if name == "" {
		name = cfg.Name
	}
	logger = logger.With("mostro", name)

	anim := deps.Animator
	if anim == nil {
		anim = NopAnimator{}
	}

	a := &Actor{
		Name:    name,
		Type:    cfg,
		locator: deps.Locator,
		warn:    newWarnings(logger),
		logger:  logger,
	}
	a.Detector = NewDetector(cfg.Detection, deps.Body, anim, logger)
	a.Patrol = NewPatroller(cfg.Patrol, deps.Body, deps.Waypoints, anim, deps.Rand, logger)

	var alert AlertSource
	if cfg.Combat.Policy == config.LossByTrigger {
		alert = a.Detector
		a.Detector.OnEnteredAlert(func() { a.Combat.Alert() })
	}
	a.Combat = NewCombat(cfg.Combat, deps.Body, a.Patrol, alert, anim, deps.Damage, logger)

	a.Health = NewHealth(cfg.Health, deps.Body, anim, logger)
	a.Health.SetDeathEffect(deps.DeathEffect, deps.Effects)
	a.Health.OnDying(a.halt)
	return a
}

// Start resolves the player once and starts the controllers.
func (a *Actor) Start() {
	if a.started {
		return
	}
	a.started = true

	if a.locator != nil {
		if p, ok := a.locator.FindByTag(a.Type.Detection.PlayerTag); ok {
			a.player = p
		}
	}
	if a.player == nil {
		a.warn.warn("player", "player not found, detection dormant", "tag", a.Type.Detection.PlayerTag)
	}

	a.Detector.Start(a.player)
	a.Combat.Start(a.player)
	a.Patrol.Start()
}

// Tick advances health, detection, combat and patrol in that order.
func (a *Actor) Tick(dt time.Duration) {
	a.Health.Tick(dt)
	if a.Health.Dead() {
		return
	}
	a.Detector.Tick(dt)
	a.Combat.Tick(dt)
	a.Patrol.Tick(dt)
}

func (a *Actor) OnVolumeEnter(other Tagged) {
	if a.Health.Dead() {
		return
	}
	a.Detector.OnVolumeEnter(other)
}

func (a *Actor) OnVolumeExit(other Tagged) {
	if a.Health.Dead() {
		return
	}
	a.Detector.OnVolumeExit(other)
}

func (a *Actor) TakeDamage(amount int) {
	a.Health.TakeDamage(amount)
}

func (a *Actor) Player() Transform {
	return a.player
}

func (a *Actor) halt() {
	a.Combat.Halt()
	a.Patrol.Pause()
}
