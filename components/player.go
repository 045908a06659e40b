package components

import (
	"time"

	"github.com/automoto/mostro/ai"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// PathStep is a scripted destination and how long to stand there.
type PathStep struct {
	Target mgl64.Vec3
	Wait   time.Duration
}

// PlayerData drives the player either from input or from a scripted path.
type PlayerData struct {
	Speed float64 // metres per second
	Spawn mgl64.Vec3

	// Path is walked in order by UpdatePlayerPath when set.
	Path      []PathStep
	PathIndex int
	Loop      bool
	WaitLeft  time.Duration

	HitsTaken int
	Downs     int
}

var Player = donburi.NewComponentType[PlayerData]()

// PlayerLocator finds the player by the resolv tag on its collider.
type PlayerLocator struct {
	World donburi.World
}

var _ ai.PlayerLocator = PlayerLocator{}

func (l PlayerLocator) FindByTag(tag string) (ai.Transform, bool) {
	for e := range Player.Iter(l.World) {
		if !e.HasComponent(Object) || !e.HasComponent(Transform) {
			continue
		}
		if Object.Get(e).HasTags(tag) {
			return NewBody(e), true
		}
	}
	return nil, false
}
