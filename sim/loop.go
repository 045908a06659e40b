package sim

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// GameLoop steps a World at a fixed tick until its scenario ends or the
// context is cancelled. In realtime mode ticks are paced by a ticker;
// otherwise the loop runs as fast as it can.
type GameLoop struct {
	world    *World
	tickRate int
	realtime bool
	logger   *log.Logger
}

func NewGameLoop(world *World, tickRate int, realtime bool, logger *log.Logger) *GameLoop {
	if logger == nil {
		logger = log.Default()
	}
	return &GameLoop{
		world:    world,
		tickRate: tickRate,
		realtime: realtime,
		logger:   logger,
	}
}

func (g *GameLoop) Run(ctx context.Context) error {
	g.logger.Debug("game loop started", "scenario", g.world.Scenario.Name, "tps", g.tickRate, "realtime", g.realtime)

	if !g.realtime {
		for !g.world.Done() {
			if err := ctx.Err(); err != nil {
				return err
			}
			g.world.Step()
		}
		return nil
	}

	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	for !g.world.Done() {
		select {
		case <-ctx.Done():
			g.logger.Info("game loop stopped", "scenario", g.world.Scenario.Name, "ticks", g.world.Ticks())
			return ctx.Err()
		case <-ticker.C:
			g.world.Step()
		}
	}
	return nil
}
