package factory

import (
	"errors"
	"fmt"

	"github.com/automoto/mostro/archetypes"
	"github.com/automoto/mostro/components"
	cfg "github.com/automoto/mostro/config"
	"github.com/automoto/mostro/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var ErrNoPlayerSpawn = errors.New("no player spawn points defined in map")

func CreateLevel(ecs *ecs.ECS, level *leveldata.Level) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{CurrentLevel: level})
	return entry
}

// PopulateLevel creates the level entity, the collision space, obstacles,
// the player and every mostro spawn. The player comes first so each actor
// can resolve it when it starts.
func PopulateLevel(ecs *ecs.ECS, level *leveldata.Level, opts Options) error {
	if len(level.PlayerSpawns) == 0 {
		return fmt.Errorf("level %s: %w", level.Name, ErrNoPlayerSpawn)
	}
	logger := opts.logger()
	ppm := cfg.C.PixelsPerMetre

	CreateLevel(ecs, level)
	CreateSpace(ecs, level.Width, level.Height, spaceCellSize, spaceCellSize)

	for _, r := range level.Obstacles {
		CreateObstacle(ecs, r.X, r.Y, r.W, r.H)
	}

	CreatePlayer(ecs, level.PlayerSpawns[0].World(ppm))

	for _, spawn := range level.MostroSpawns {
		waypoints := level.Waypoints(spawn.Route, ppm)
		if waypoints == nil {
			logger.Warn("mostro route not found", "route", spawn.Route, "type", spawn.Type)
		}
		CreateMostro(ecs, spawn.World(ppm), spawn.Type, waypoints, opts)
	}

	logger.Info("level ready", "level", level.Name, "mostros", len(level.MostroSpawns))
	return nil
}
