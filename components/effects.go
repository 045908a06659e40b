package components

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// EffectData is a short-lived visual such as the death poof. The tweens
// drive the radius (metres) and opacity.
type EffectData struct {
	Name     string
	Position mgl64.Vec3
	Tint     color.RGBA
	Grow     *gween.Tween
	Fade     *gween.Tween
	Radius   float64
	Alpha    float64
	Done     bool
}

var Effect = donburi.NewComponentType[EffectData]()
