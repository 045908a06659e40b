package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Mostro   = donburi.NewTag().SetName("Mostro")
	Obstacle = donburi.NewTag().SetName("Obstacle")
	Effect   = donburi.NewTag().SetName("Effect")
)

// Resolv tags for the collision space
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "Player"
	ResolvMostro = "Mostro"
	ResolvSensor = "sensor"
)
