package ai

import (
	"time"

	"github.com/automoto/mostro/config"
	"github.com/automoto/mostro/shared/gamemath"
	"github.com/charmbracelet/log"
)

// DetectionState is a snapshot of the debounced sensor.
type DetectionState struct {
	InAlert         bool
	SinceTransition time.Duration
}

// Detector turns raw trigger-volume overlaps into debounced alert and lose
// events. An alert flip is honoured only once DebounceWindow has passed
// since the previous one; a flip that arrives early is applied by Tick as
// soon as the window closes, if the overlap still disagrees.
type Detector struct {
	cfg    config.DetectionConfig
	body   Body
	anim   Animator
	logger *log.Logger

	player  Transform
	inside  bool
	inAlert bool
	since   time.Duration

	patrol       Pauser
	holdingPause bool

	enteredAlert []func()
	onDetect     []func()
	onLose       []func()
}

func NewDetector(cfg config.DetectionConfig, body Body, anim Animator, logger *log.Logger) *Detector {
	if anim == nil {
		anim = NopAnimator{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Detector{
		cfg:    cfg,
		body:   body,
		anim:   anim,
		logger: logger,
		since:  cfg.DebounceWindow,
	}
}

// Start hands the detector the player transform. A nil player leaves the
// detector dormant.
func (d *Detector) Start(player Transform) {
	d.player = player
	d.since = d.cfg.DebounceWindow
}

// HoldPatrol makes the detector pause p itself while alert. Only used when
// no combat controller owns the patrol hand-off.
func (d *Detector) HoldPatrol(p Pauser) {
	d.patrol = p
}

// OnEnteredAlert registers a hook that runs before the OnDetect observers.
func (d *Detector) OnEnteredAlert(fn func()) {
	d.enteredAlert = append(d.enteredAlert, fn)
}

func (d *Detector) OnDetect(fn func()) {
	d.onDetect = append(d.onDetect, fn)
}

func (d *Detector) OnLose(fn func()) {
	d.onLose = append(d.onLose, fn)
}

func (d *Detector) InAlert() bool {
	return d.inAlert
}

// Inside reports the raw, undebounced overlap.
func (d *Detector) Inside() bool {
	return d.inside
}

func (d *Detector) Dormant() bool {
	return d.player == nil
}

func (d *Detector) State() DetectionState {
	return DetectionState{InAlert: d.inAlert, SinceTransition: d.since}
}

func (d *Detector) OnVolumeEnter(other Tagged) {
	if !d.isPlayer(other) {
		return
	}
	d.inside = true
	d.reconcile()
}

func (d *Detector) OnVolumeExit(other Tagged) {
	if !d.isPlayer(other) {
		return
	}
	d.inside = false
	d.reconcile()
}

// Tick advances the debounce timer, settles a pending flip and, while alert,
// turns the body toward the player on the yaw axis.
func (d *Detector) Tick(dt time.Duration) {
	if d.player == nil {
		return
	}
	d.since += dt
	d.reconcile()

	if !d.inAlert || d.body == nil {
		return
	}
	dir, _, ok := gamemath.PlanarDirection(d.body.Position(), d.player.Position())
	if ok {
		d.body.SetRotation(gamemath.TurnTowards(d.body.Rotation(), dir, dt, d.cfg.TurnRate))
	}
}

func (d *Detector) isPlayer(other Tagged) bool {
	return d.player != nil && other != nil && other.HasTags(d.cfg.PlayerTag)
}

func (d *Detector) reconcile() {
	if d.inside == d.inAlert || d.since < d.cfg.DebounceWindow {
		return
	}
	if d.inside {
		d.enter()
	} else {
		d.exit()
	}
}

func (d *Detector) enter() {
	d.inAlert = true
	d.since = 0
	d.anim.SetBool(ParamAlert, true)
	d.logger.Debug("player detected")

	if d.patrol != nil && !d.holdingPause {
		d.patrol.Pause()
		d.holdingPause = true
	}
	for _, fn := range d.enteredAlert {
		fn()
	}
	for _, fn := range d.onDetect {
		fn()
	}
}

func (d *Detector) exit() {
	d.inAlert = false
	d.since = 0
	d.anim.SetBool(ParamAlert, false)
	d.logger.Debug("player lost")

	if d.holdingPause {
		d.holdingPause = false
		d.patrol.Resume()
	}
	for _, fn := range d.onLose {
		fn()
	}
}
