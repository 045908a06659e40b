package ai

import (
	"math"
	"time"

	"github.com/automoto/mostro/config"
	"github.com/automoto/mostro/shared/gamemath"
	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"
)

// State is a combat state.
type State int

const (
	StatePatrol State = iota
	StateWaiting
	StatePursuing
	StateAttacking
)

func (s State) String() string {
	switch s {
	case StatePatrol:
		return "Patrol"
	case StateWaiting:
		return "Waiting"
	case StatePursuing:
		return "Pursuing"
	case StateAttacking:
		return "Attacking"
	}
	return "Unknown"
}

// Engaged reports whether the state belongs to an encounter.
func (s State) Engaged() bool {
	return s != StatePatrol
}

// AlertSource reports the debounced sensor state for the trigger loss policy.
type AlertSource interface {
	InAlert() bool
}

// minStandoff keeps the stand-off point away from the player's centre.
const minStandoff = 0.05

// Combat drives the notice, pursue and attack cycle.
type Combat struct {
	cfg    config.CombatConfig
	policy config.LossPolicy
	body   Body
	patrol Pauser
	alert  AlertSource
	anim   Animator
	damage DamageHook
	logger *log.Logger
	warn   *warnings

	player Transform
	state  State
	halted bool

	notice  Timer
	lostFor time.Duration
	attack  attackLoop
	target  mgl64.Vec3

	observers []func(from, to State)
}

// attackLoop strikes immediately when started and then every interval.
type attackLoop struct {
	active  bool
	next    Timer
	strikes int
}

// NewCombat builds the state machine. patrol and alert may be nil; a trigger
// policy without an alert source falls back to distance checks.
func NewCombat(cfg config.CombatConfig, body Body, patrol Pauser, alert AlertSource, anim Animator, damage DamageHook, logger *log.Logger) *Combat {
	if anim == nil {
		anim = NopAnimator{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Combat{
		cfg:    cfg,
		policy: cfg.Policy,
		body:   body,
		patrol: patrol,
		alert:  alert,
		anim:   anim,
		damage: damage,
		logger: logger,
		warn:   newWarnings(logger),
	}
}

// Start hands over the player transform. A nil player keeps combat dormant.
func (c *Combat) Start(player Transform) {
	c.player = player
	if c.policy == config.LossByTrigger && c.alert == nil {
		c.warn.warn("policy", "trigger loss policy without a detector, using distance", "chase_distance", c.cfg.ChaseDistance)
		c.policy = config.LossByDistance
	}
}

// OnTransition registers an observer called after every state change.
func (c *Combat) OnTransition(fn func(from, to State)) {
	c.observers = append(c.observers, fn)
}

func (c *Combat) State() State {
	return c.state
}

// Policy returns the loss policy in effect after Start.
func (c *Combat) Policy() config.LossPolicy {
	return c.policy
}

// StandoffDistance is how far from the player the actor stops to attack.
func (c *Combat) StandoffDistance() float64 {
	return math.Max(minStandoff, c.cfg.AttackRange+c.cfg.AttackMargin)
}

// StandoffPoint is the last pursuit target.
func (c *Combat) StandoffPoint() mgl64.Vec3 {
	return c.target
}

func (c *Combat) LostFor() time.Duration {
	return c.lostFor
}

func (c *Combat) NoticeRemaining() time.Duration {
	return c.notice.Remaining()
}

func (c *Combat) AttackLoopActive() bool {
	return c.attack.active
}

func (c *Combat) Strikes() int {
	return c.attack.strikes
}

// Alert starts an encounter from Patrol. While engaged it only marks the
// player as seen.
func (c *Combat) Alert() {
	if c.halted || c.player == nil {
		return
	}
	if c.state.Engaged() {
		c.lostFor = 0
		return
	}
	c.enterWaiting()
}

// Halt cancels every timer and freezes the machine. Used when the actor dies.
func (c *Combat) Halt() {
	c.halted = true
	c.notice.Stop()
	c.stopAttack()
	c.anim.SetBool(ParamWalking, false)
}

func (c *Combat) Tick(dt time.Duration) {
	if c.halted || c.player == nil {
		return
	}
	playerPos := c.player.Position()
	dist := gamemath.PlanarDistance(c.body.Position(), playerPos)

	if c.state == StatePatrol {
		if c.policy == config.LossByDistance && dist <= c.cfg.ChaseDistance {
			c.enterWaiting()
		}
		return
	}

	if c.attack.active && c.attack.next.Advance(dt) {
		c.strike(dist)
	}

	if c.playerLost(dist) {
		c.lostFor += dt
		if c.lostFor >= c.cfg.GiveUpAfter {
			c.giveUp()
			return
		}
	} else {
		c.lostFor = 0
	}

	switch c.state {
	case StateWaiting:
		c.face(playerPos, dt)
		if c.notice.Advance(dt) {
			c.enterPursuing()
		}
	case StatePursuing:
		c.pursue(playerPos, dt)
	case StateAttacking:
		c.face(playerPos, dt)
		if dist > c.StandoffDistance()+c.cfg.RetreatSlack {
			c.enterPursuing()
		}
	}
}

func (c *Combat) playerLost(dist float64) bool {
	if c.policy == config.LossByTrigger {
		return !c.alert.InAlert()
	}
	return dist > c.cfg.ChaseDistance*c.cfg.LossRadiusFactor
}

func (c *Combat) pursue(playerPos mgl64.Vec3, dt time.Duration) {
	pos := c.body.Position()
	dir, _, ok := gamemath.PlanarDirection(pos, playerPos)
	if !ok {
		dir = gamemath.FacingOf(c.body.Rotation())
	}
	c.target = gamemath.Flatten(playerPos.Sub(dir.Mul(c.StandoffDistance())))
	c.target[1] = pos.Y()

	next := gamemath.MoveTowards(pos, c.target, c.cfg.Speed*dt.Seconds())
	c.body.SetPosition(next)
	c.body.SetRotation(gamemath.TurnTowards(c.body.Rotation(), dir, dt, c.cfg.TurnRate))

	if gamemath.PlanarDistance(next, c.target) <= c.cfg.ArrivalTolerance {
		c.enterAttacking(gamemath.PlanarDistance(next, playerPos))
	}
}

func (c *Combat) face(playerPos mgl64.Vec3, dt time.Duration) {
	dir, _, ok := gamemath.PlanarDirection(c.body.Position(), playerPos)
	if ok {
		c.body.SetRotation(gamemath.TurnTowards(c.body.Rotation(), dir, dt, c.cfg.TurnRate))
	}
}

func (c *Combat) enterWaiting() {
	c.stopAttack()
	c.lostFor = 0
	if c.patrol != nil {
		c.patrol.Pause()
	}
	c.anim.SetBool(ParamAlert, true)
	c.anim.SetBool(ParamWalking, false)
	c.notice.Start(c.cfg.NoticeDelay)
	c.setState(StateWaiting)
}

func (c *Combat) enterPursuing() {
	c.notice.Stop()
	c.stopAttack()
	c.anim.SetBool(ParamWalking, true)
	c.setState(StatePursuing)
}

func (c *Combat) enterAttacking(dist float64) {
	c.notice.Stop()
	c.anim.SetBool(ParamWalking, false)
	c.setState(StateAttacking)
	c.attack.active = true
	c.strike(dist)
}

func (c *Combat) giveUp() {
	c.notice.Stop()
	c.stopAttack()
	c.lostFor = 0
	c.anim.SetBool(ParamAlert, false)
	c.anim.SetBool(ParamWalking, false)
	c.setState(StatePatrol)
	if c.patrol != nil {
		c.patrol.Resume()
	}
}

// strike runs one iteration of the attack loop. The loop ends itself when
// the player has retreated past the stand-off threshold.
func (c *Combat) strike(dist float64) {
	if dist > c.StandoffDistance()+c.cfg.RetreatSlack {
		c.stopAttack()
		return
	}
	c.attack.strikes++
	c.anim.SetTrigger(ParamAttack)
	if c.damage != nil {
		c.damage(c.cfg.Damage)
	}
	c.attack.next.Start(c.cfg.AttackInterval)
}

func (c *Combat) stopAttack() {
	c.attack.active = false
	c.attack.next.Stop()
}

func (c *Combat) setState(to State) {
	from := c.state
	c.state = to
	c.logger.Debug("combat transition", "from", from, "to", to)
	for _, fn := range c.observers {
		fn(from, to)
	}
}
