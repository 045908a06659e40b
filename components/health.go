package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// HealthData is the player's health. Mostros keep theirs in the actor.
type HealthData struct {
	Current int
	Max     int
	// Invuln is the remaining post-hit invulnerability.
	Invuln time.Duration
}

var Health = donburi.NewComponentType[HealthData]()
