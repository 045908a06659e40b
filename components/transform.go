package components

import (
	"github.com/automoto/mostro/ai"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// TransformData is a world pose in metres, Y up.
type TransformData struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

var Transform = donburi.NewComponentType[TransformData]()

// Body exposes an entry's Transform to the AI controllers. It looks the
// component up on every call so it stays valid when the entry changes
// archetype.
type Body struct {
	entry *donburi.Entry
}

var _ ai.Body = Body{}

func NewBody(e *donburi.Entry) Body {
	return Body{entry: e}
}

func (b Body) Position() mgl64.Vec3 {
	return Transform.Get(b.entry).Position
}

func (b Body) SetPosition(p mgl64.Vec3) {
	Transform.Get(b.entry).Position = p
}

func (b Body) Rotation() mgl64.Quat {
	return Transform.Get(b.entry).Rotation
}

func (b Body) SetRotation(q mgl64.Quat) {
	Transform.Get(b.entry).Rotation = q
}

// Valid reports whether the entry is still alive.
func (b Body) Valid() bool {
	return b.entry != nil && b.entry.Valid()
}
