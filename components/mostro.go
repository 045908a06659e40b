package components

import (
	"image/color"

	"github.com/automoto/mostro/ai"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type MostroData struct {
	TypeName string
	Actor    *ai.Actor
	Tint     color.RGBA

	// Sensor is the square broad-phase box around the detection circle.
	Sensor *resolv.Object
	// Radius is the detection radius in metres.
	Radius float64
	// Overlap is the player collider currently inside the circle.
	Overlap *resolv.Object
}

var Mostro = donburi.NewComponentType[MostroData]()
