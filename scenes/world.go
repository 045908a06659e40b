package scenes

import (
	"image/color"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/automoto/mostro/archetypes"
	"github.com/automoto/mostro/components"
	cfg "github.com/automoto/mostro/config"
	"github.com/automoto/mostro/shared/leveldata"
	"github.com/automoto/mostro/systems"
	"github.com/automoto/mostro/systems/factory"
	"github.com/automoto/mostro/systems/input"
	"github.com/automoto/mostro/systems/render"
	"github.com/automoto/mostro/ui"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldScene runs one level with the player under keyboard control.
type WorldScene struct {
	ecs    *ecs.ECS
	level  *leveldata.Level
	panel  *ui.TuningPanel
	logger *log.Logger
	once   sync.Once

	// settings survive rebuilds; builtWith is the override the current
	// world was spawned with.
	settings  components.SettingsData
	builtWith cfg.LossPolicy
}

func NewWorldScene(level *leveldata.Level, saved *systems.SavedSettings, logger *log.Logger) *WorldScene {
	ws := &WorldScene{
		level:    level,
		logger:   logger,
		settings: components.SettingsData{ShowSensors: cfg.Debug.ShowSensors},
	}
	systems.ApplySavedSettings(&ws.settings, saved)
	return ws
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()
	ws.panel.Update()

	settings := systems.GetOrCreateSettings(ws.ecs)
	if settings.PolicyOverride != ws.builtWith {
		ws.settings = *settings
		ws.logger.Info("rebuilding level", "policy", systems.PolicyLabel(settings.PolicyOverride))
		ws.build()
		return
	}
	ws.refreshPanel(settings)
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
	ws.panel.Draw(screen)
}

func (ws *WorldScene) configure() {
	ws.panel = ui.NewTuningPanel(
		func() { systems.ToggleSensors(systems.GetOrCreateSettings(ws.ecs)) },
		func() { systems.CyclePolicy(systems.GetOrCreateSettings(ws.ecs)) },
		func() { systems.SaveCurrentSettings(systems.GetOrCreateSettings(ws.ecs)) },
	)
	ws.build()
}

// build creates a fresh world for the level using the current settings.
func (ws *WorldScene) build() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(input.Update)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.UpdateSettings)

	// Simulation systems wrapped with the pause check
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateLevelClock))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdatePlayerAttack))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateObjects))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateSensors))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateMostros))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCombat))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateDeaths))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateEffects))

	// Add renderers
	ecs.AddRenderer(archetypes.Default, render.DrawLevel)
	ecs.AddRenderer(archetypes.Default, render.DrawSensors)
	ecs.AddRenderer(archetypes.Default, render.DrawEffects)
	ecs.AddRenderer(archetypes.Default, render.DrawMostros)
	ecs.AddRenderer(archetypes.Default, render.DrawPlayer)
	ecs.AddRenderer(archetypes.Default, render.DrawHUD)
	ecs.AddRenderer(archetypes.Default, render.DrawPause)

	factory.CreateSettings(ecs)
	*systems.GetOrCreateSettings(ecs) = ws.settings

	err := factory.PopulateLevel(ecs, ws.level, factory.Options{
		Logger: ws.logger,
		Rand:   rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
		Policy: ws.settings.PolicyOverride,
	})
	if err != nil {
		panic(err)
	}

	ws.ecs = ecs
	ws.builtWith = ws.settings.PolicyOverride
}

func (ws *WorldScene) refreshPanel(settings *components.SettingsData) {
	rows := make([]ui.Row, 0, ui.MaxRows)
	components.Mostro.Each(ws.ecs.World, func(e *donburi.Entry) {
		actor := components.Mostro.Get(e).Actor
		if actor == nil {
			return
		}
		rows = append(rows, ui.Row{
			Name:    actor.Name,
			State:   actor.Combat.State().String(),
			Health:  actor.Health.Current(),
			Max:     actor.Health.Max(),
			Alert:   actor.Detector.InAlert(),
			Dormant: actor.Detector.Dormant(),
		})
	})
	ws.panel.SetRows(rows)
	ws.panel.SetPolicy(systems.PolicyLabel(settings.PolicyOverride), settings.Dirty)
}
