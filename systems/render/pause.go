package render

import (
	cfg "github.com/automoto/mostro/config"
	"github.com/automoto/mostro/fonts"
	"github.com/automoto/mostro/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawPause renders the pause overlay.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := systems.GetOrCreatePause(ecs)
	if !pause.IsPaused {
		return
	}

	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.BlackOverlay, false)

	title := "PAUSED"
	text.Draw(screen, title, fonts.Bold.Get(), (width-len(title)*11)/2, height/2, cfg.White)

	hint := "P: Resume   N: Step one tick"
	text.Draw(screen, hint, fonts.Small.Get(), (width-len(hint)*6)/2, height/2+24, cfg.White)
}
