package ai

import (
	"math/rand/v2"
	"time"

	"github.com/automoto/mostro/config"
	"github.com/automoto/mostro/shared/gamemath"
	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"
)

// PatrolState is a snapshot of the patroller. Watching implies Paused.
type PatrolState struct {
	WaypointIndex int
	Paused        bool
	Watching      bool
}

// Patroller walks between randomly chosen waypoints and stops to watch at
// each one.
type Patroller struct {
	cfg       config.PatrolConfig
	body      Body
	waypoints []mgl64.Vec3
	anim      Animator
	rng       *rand.Rand
	warn      *warnings

	index    int
	held     bool
	watching bool
	watch    Timer
	started  bool
}

func NewPatroller(cfg config.PatrolConfig, body Body, waypoints []mgl64.Vec3, anim Animator, rng *rand.Rand, logger *log.Logger) *Patroller {
	if anim == nil {
		anim = NopAnimator{}
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Patroller{
		cfg:       cfg,
		body:      body,
		waypoints: waypoints,
		anim:      anim,
		rng:       rng,
		warn:      newWarnings(logger),
		index:     -1,
	}
}

// Start picks the first waypoint. With no waypoints the patroller stays idle.
func (p *Patroller) Start() {
	p.started = true
	if len(p.waypoints) == 0 {
		p.warn.warn("waypoints", "no waypoints configured, patrol idle")
		return
	}
	p.index = p.pickNext()
}

func (p *Patroller) Pause() {
	p.held = true
	p.anim.SetBool(ParamWalking, false)
}

// Resume clears an external pause. A watch in progress still runs to the
// end of its timer and the walking flag stays down until it does.
func (p *Patroller) Resume() {
	p.held = false
	if p.started && p.index >= 0 && !p.watching {
		p.anim.SetBool(ParamWalking, true)
	}
}

func (p *Patroller) Paused() bool {
	return p.held || p.watching
}

func (p *Patroller) Watching() bool {
	return p.watching
}

// Target returns the current waypoint.
func (p *Patroller) Target() (mgl64.Vec3, bool) {
	if p.index < 0 {
		return mgl64.Vec3{}, false
	}
	return p.waypoints[p.index], true
}

func (p *Patroller) Waypoints() []mgl64.Vec3 {
	return p.waypoints
}

func (p *Patroller) State() PatrolState {
	return PatrolState{WaypointIndex: p.index, Paused: p.Paused(), Watching: p.watching}
}

func (p *Patroller) Tick(dt time.Duration) {
	if !p.started || p.index < 0 {
		return
	}

	if p.watch.Advance(dt) {
		p.watching = false
		p.anim.SetBool(ParamWatching, false)
		p.index = p.pickNext()
	}
	if p.held || p.watching {
		return
	}

	pos := p.body.Position()
	target := p.waypoints[p.index]
	flatTarget := mgl64.Vec3{target.X(), pos.Y(), target.Z()}

	dir, dist, ok := gamemath.PlanarDirection(pos, target)
	if dist <= p.cfg.ArrivalDistance {
		p.arrive()
		return
	}

	next := gamemath.MoveTowards(pos, flatTarget, p.cfg.Speed*dt.Seconds())
	p.body.SetPosition(next)
	if ok {
		p.body.SetRotation(gamemath.TurnTowards(p.body.Rotation(), dir, dt, p.cfg.TurnRate))
	}
	p.anim.SetBool(ParamWalking, true)

	if gamemath.PlanarDistance(next, target) <= p.cfg.ArrivalDistance {
		p.arrive()
	}
}

func (p *Patroller) arrive() {
	p.watching = true
	p.watch.Start(p.cfg.WatchDuration)
	p.anim.SetBool(ParamWalking, false)
	p.anim.SetBool(ParamWatching, true)
}

// pickNext returns a uniformly random index different from the current one.
func (p *Patroller) pickNext() int {
	n := len(p.waypoints)
	switch {
	case n == 1:
		return 0
	case p.index < 0 || p.index >= n:
		return p.rng.IntN(n)
	}
	idx := p.rng.IntN(n - 1)
	if idx >= p.index {
		idx++
	}
	return idx
}
