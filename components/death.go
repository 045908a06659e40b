package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// DeathData marks an entity whose death sequence has finished. Remaining
// counts down each frame; when it reaches 0 the entity is removed from the
// world and the space.
type DeathData struct {
	Remaining time.Duration
}

var Death = donburi.NewComponentType[DeathData]()
