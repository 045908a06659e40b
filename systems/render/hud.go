package render

import (
	"fmt"
	"image/color"

	"github.com/automoto/mostro/components"
	cfg "github.com/automoto/mostro/config"
	"github.com/automoto/mostro/fonts"
	"github.com/automoto/mostro/systems"
	"github.com/automoto/mostro/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudBarWidth  = 130
	hudBarHeight = 13
	hudMargin    = 10
	hudLine      = 16
)

// DrawHUD renders the player's health bar, counters and the key hints in
// the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	hp := components.Health.Get(playerEntry)
	player := components.Player.Get(playerEntry)

	// Background (dark gray)
	vector.DrawFilledRect(screen,
		float32(hudMargin), float32(hudMargin),
		float32(hudBarWidth), float32(hudBarHeight),
		color.RGBA{40, 40, 40, 255}, false)

	// Current HP (green)
	ratio := float32(hp.Current) / float32(hp.Max)
	vector.DrawFilledRect(screen,
		float32(hudMargin), float32(hudMargin),
		float32(hudBarWidth)*ratio, float32(hudBarHeight),
		color.RGBA{40, 220, 40, 255}, false)

	face := fonts.Regular.Get()
	y := hudMargin + hudBarHeight + hudLine
	text.Draw(screen, fmt.Sprintf("hits %d  downs %d  mostros %d", player.HitsTaken, player.Downs, systems.LivingMostros(ecs)),
		face, hudMargin, y, cfg.White)

	settings := systems.GetOrCreateSettings(ecs)
	status := "policy: " + systems.PolicyLabel(settings.PolicyOverride)
	if settings.Dirty {
		status += "  (unsaved)"
	}
	text.Draw(screen, status, face, hudMargin, y+hudLine, cfg.White)

	if levelEntry, ok := components.Level.First(ecs.World); ok {
		level := components.Level.Get(levelEntry)
		text.Draw(screen, fmt.Sprintf("t %.1fs", level.Elapsed.Seconds()), face, hudMargin, y+2*hudLine, cfg.White)
	}

	hint := "WASD move  H hit  F1 sensors  F2 policy  F5 save  P pause"
	text.Draw(screen, hint, fonts.Small.Get(), hudMargin, screen.Bounds().Dy()-hudMargin, cfg.White)
}
