package components

import (
	"time"

	"github.com/automoto/mostro/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *leveldata.Level
	Elapsed      time.Duration // simulated time
	Ticks        int
}

var Level = donburi.NewComponentType[LevelData]()
