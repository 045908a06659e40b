package render

import (
	"image/color"

	"github.com/automoto/mostro/ai"
	"github.com/automoto/mostro/components"
	cfg "github.com/automoto/mostro/config"
	"github.com/automoto/mostro/fonts"
	"github.com/automoto/mostro/shared/gamemath"
	"github.com/automoto/mostro/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	corpseColor = color.RGBA{R: 90, G: 90, B: 90, A: 200}
	playerColor = color.RGBA{R: 230, G: 200, B: 120, A: 255}
)

// DrawMostros renders each mostro as a tinted disc with a facing tick, its
// combat state and its health above it.
func DrawMostros(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Mostro.Each(ecs.World, func(e *donburi.Entry) {
		m := components.Mostro.Get(e)
		if m.Actor == nil {
			return
		}
		t := components.Transform.Get(e)
		anim := components.Animation.Get(e)
		x, y := toScreen(t.Position)
		r := metresToPixels(m.Actor.Type.BodyRadius)

		body := color.Color(m.Tint)
		switch {
		case m.Actor.Health.Dead():
			body = corpseColor
		case anim.Flashing(ai.ParamHurt):
			body = cfg.White
		}
		vector.DrawFilledCircle(screen, x, y, r, body, true)

		if anim.Flashing(ai.ParamAttack) {
			vector.StrokeCircle(screen, x, y, r+4, 2, cfg.Orange, true)
		}
		if m.Actor.Health.Dead() {
			return
		}

		facing := gamemath.FacingOf(t.Rotation)
		fx, fy := toScreen(t.Position.Add(facing.Mul(m.Actor.Type.BodyRadius * 1.4)))
		vector.StrokeLine(screen, x, y, fx, fy, 2, cfg.White, true)

		label := m.Actor.Combat.State().String()
		if m.Actor.Patrol.Watching() && m.Actor.Combat.State() == ai.StatePatrol {
			label = "watching"
		}
		labelColor := cfg.White
		if m.Actor.Detector.InAlert() {
			labelColor = cfg.Yellow
		}
		if m.Actor.Combat.State() == ai.StateAttacking {
			labelColor = cfg.Red
		}
		face := fonts.Small.Get()
		text.Draw(screen, label, face, int(x)-len(label)*3, int(y-r)-14, labelColor)

		drawHealthPips(screen, x, y-r-10, m.Actor.Health.Current(), m.Actor.Health.Max())
	})
}

func drawHealthPips(screen *ebiten.Image, cx, top float32, current, total int) {
	const pip, gap = 4, 2
	width := float32(total*(pip+gap) - gap)
	x := cx - width/2
	for i := 0; i < total; i++ {
		c := cfg.BlackOverlay
		if i < current {
			c = cfg.LightGreen
		}
		vector.DrawFilledRect(screen, x+float32(i*(pip+gap)), top, pip, pip, c, false)
	}
}

// DrawPlayer renders the player square, flashing while invulnerable.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		hp := components.Health.Get(e)
		c := color.Color(playerColor)
		if hp.Invuln > 0 && (hp.Invuln/cfg.TickDuration())%8 < 4 {
			c = cfg.White
		}
		vector.DrawFilledRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), c, false)
	})
}

// DrawEffects renders death rings from their tweened radius and alpha.
func DrawEffects(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Effect.Each(ecs.World, func(e *donburi.Entry) {
		fx := components.Effect.Get(e)
		if fx.Alpha <= 0 {
			return
		}
		x, y := toScreen(fx.Position)
		c := fx.Tint
		c.A = uint8(gamemath.ClampFloat(fx.Alpha, 0, 1) * 255)
		vector.StrokeCircle(screen, x, y, metresToPixels(fx.Radius), 3, premultiply(c), true)
	})
}

// premultiply scales the colour channels by alpha as ebiten expects.
func premultiply(c color.RGBA) color.RGBA {
	a := uint16(c.A)
	return color.RGBA{
		R: uint8(uint16(c.R) * a / 255),
		G: uint8(uint16(c.G) * a / 255),
		B: uint8(uint16(c.B) * a / 255),
		A: c.A,
	}
}
