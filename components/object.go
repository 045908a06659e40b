package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

// CenterPixels returns the centre of the collision box in map pixels.
func (o *ObjectData) CenterPixels() (float64, float64) {
	return o.X + o.W/2, o.Y + o.H/2
}

// PlaceCenter moves the collision box so its centre sits on (x, y).
func (o *ObjectData) PlaceCenter(x, y float64) {
	o.X = x - o.W/2
	o.Y = y - o.H/2
}

var Object = donburi.NewComponentType[ObjectData]()
