package render

import (
	"image/color"

	"github.com/automoto/mostro/components"
	cfg "github.com/automoto/mostro/config"
	"github.com/automoto/mostro/shared/leveldata"
	"github.com/automoto/mostro/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var obstacleColor = color.RGBA{R: 70, G: 62, B: 52, A: 255}

func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}

	vector.DrawFilledRect(screen, 0, 0,
		float32(levelData.CurrentLevel.Width), float32(levelData.CurrentLevel.Height),
		cfg.Grass, false)

	tags.Obstacle.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		vector.DrawFilledRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), obstacleColor, false)
	})
}

// toScreen maps a world position to screen pixels. The level is drawn 1:1
// at the configured scale, so there is no camera.
func toScreen(p mgl64.Vec3) (float32, float32) {
	pt := leveldata.FromWorld(p, cfg.C.PixelsPerMetre)
	return float32(pt.X), float32(pt.Y)
}

func metresToPixels(m float64) float32 {
	return float32(m * cfg.C.PixelsPerMetre)
}
