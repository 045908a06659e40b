// Package sim runs mostro worlds without a window: a scripted player walks
// a scenario while every combat transition is recorded.
package sim

import (
	"math/rand/v2"
	"sort"
	"time"

	"github.com/automoto/mostro/ai"
	"github.com/automoto/mostro/components"
	cfg "github.com/automoto/mostro/config"
	"github.com/automoto/mostro/shared/leveldata"
	"github.com/automoto/mostro/systems"
	"github.com/automoto/mostro/systems/factory"
	"github.com/automoto/mostro/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Event kinds recorded in a report.
const (
	EventTransition = "transition"
	EventAlert      = "alert"
	EventClear      = "clear"
	EventStrike     = "strike"
	EventDefeated   = "defeated"
	EventHit        = "hit"
)

// Event is something a mostro did at a given tick.
type Event struct {
	Tick   int
	At     time.Duration
	Mostro string
	Kind   string
	From   string
	To     string
}

// World is one headless level with its own ECS.
type World struct {
	Scenario Scenario

	ecs     *ecs.ECS
	logger  *log.Logger
	events  []Event
	nextHit int
	tick    int
}

// NewWorld populates level and scripts the player from the scenario.
func NewWorld(sc Scenario, level *leveldata.Level, logger *log.Logger) (*World, error) {
	if logger == nil {
		logger = log.Default()
	}
	logger = logger.With("scenario", sc.Name)

	w := &World{
		Scenario: sc,
		logger:   logger,
	}

	e := ecs.NewECS(donburi.NewWorld())
	e.AddSystem(systems.UpdateLevelClock)
	e.AddSystem(systems.UpdatePlayer)
	e.AddSystem(systems.UpdateObjects)
	e.AddSystem(systems.UpdateSensors)
	e.AddSystem(systems.UpdateMostros)
	e.AddSystem(systems.UpdateCombat)
	e.AddSystem(systems.UpdateDeaths)
	e.AddSystem(systems.UpdateEffects)

	hits := append([]Hit(nil), sc.Hits...)
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].At < hits[j].At })
	w.Scenario.Hits = hits

	err := factory.PopulateLevel(e, level, factory.Options{
		Logger: logger,
		Rand:   rand.New(rand.NewPCG(sc.Seed, sc.Seed^0x9e3779b97f4a7c15)),
		Policy: sc.Policy,
	})
	if err != nil {
		return nil, err
	}
	w.ecs = e

	if len(sc.Path) > 0 {
		systems.SetPlayerPath(e, sc.PlayerPath(), sc.Loop)
	}
	w.observe()
	return w, nil
}

// observe hooks every actor so its transitions land in the event log.
func (w *World) observe() {
	components.Mostro.Each(w.ecs.World, func(e *donburi.Entry) {
		actor := components.Mostro.Get(e).Actor
		if actor == nil {
			return
		}
		name := actor.Name
		actor.Combat.OnTransition(func(from, to ai.State) {
			w.record(name, EventTransition, from.String(), to.String())
			w.logger.Debug("transition", "mostro", name, "from", from, "to", to)
		})
		actor.Detector.OnDetect(func() { w.record(name, EventAlert, "", "") })
		actor.Detector.OnLose(func() { w.record(name, EventClear, "", "") })
		actor.Health.OnDeath(func() { w.record(name, EventDefeated, "", "") })
	})
}

func (w *World) record(mostro, kind, from, to string) {
	w.events = append(w.events, Event{
		Tick:   w.tick,
		At:     w.Elapsed(),
		Mostro: mostro,
		Kind:   kind,
		From:   from,
		To:     to,
	})
}

// Step advances the world by one fixed tick.
func (w *World) Step() {
	strikes := w.strikes()
	w.tick++
	w.ecs.Update()
	w.applyHits()
	for name, n := range w.strikes() {
		for i := strikes[name]; i < n; i++ {
			w.record(name, EventStrike, "", "")
		}
	}
}

func (w *World) applyHits() {
	elapsed := w.Elapsed()
	for w.nextHit < len(w.Scenario.Hits) && w.Scenario.Hits[w.nextHit].At <= elapsed {
		hit := w.Scenario.Hits[w.nextHit]
		w.nextHit++
		if systems.HitNearestMostro(w.ecs, hit.Damage, cfg.Player.HitReach) {
			w.record("player", EventHit, "", "")
		} else {
			w.logger.Debug("hit missed", "at", hit.At)
		}
	}
}

func (w *World) strikes() map[string]int {
	out := make(map[string]int)
	components.Mostro.Each(w.ecs.World, func(e *donburi.Entry) {
		if actor := components.Mostro.Get(e).Actor; actor != nil {
			out[actor.Name] = actor.Combat.Strikes()
		}
	})
	return out
}

// Done reports whether the scenario duration has elapsed.
func (w *World) Done() bool {
	return w.Elapsed() >= w.Scenario.Duration
}

func (w *World) Elapsed() time.Duration {
	if e, ok := components.Level.First(w.ecs.World); ok {
		return components.Level.Get(e).Elapsed
	}
	return 0
}

func (w *World) Ticks() int {
	return w.tick
}

func (w *World) Events() []Event {
	return w.events
}

// ECS exposes the underlying world for inspection in tests.
func (w *World) ECS() *ecs.ECS {
	return w.ecs
}

// Report summarises the run so far.
func (w *World) Report() Report {
	r := Report{
		Scenario: w.Scenario.Name,
		Ticks:    w.tick,
		Elapsed:  w.Elapsed(),
		Events:   w.events,
	}
	for _, ev := range w.events {
		switch ev.Kind {
		case EventTransition:
			r.Transitions++
		case EventStrike:
			r.Strikes++
		case EventDefeated:
			r.Defeated++
		}
	}
	if e, ok := tags.Player.First(w.ecs.World); ok {
		player := components.Player.Get(e)
		r.PlayerHitsTaken = player.HitsTaken
		r.PlayerDowns = player.Downs
		r.PlayerHealth = components.Health.Get(e).Current
	}
	return r
}
