package sim

import (
	"context"
	"fmt"

	cfg "github.com/automoto/mostro/config"
	"github.com/automoto/mostro/shared/leveldata"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

// LevelSource resolves scenario level names.
type LevelSource interface {
	LoadLevel(name string) (*leveldata.Level, error)
}

type Options struct {
	Realtime bool
	// Parallel caps concurrent worlds; zero means one per scenario.
	Parallel int
	Logger   *log.Logger
}

// Run plays a single scenario to completion.
func Run(ctx context.Context, sc Scenario, levels LevelSource, opts Options) (Report, error) {
	level, err := levels.LoadLevel(sc.Level)
	if err != nil {
		return Report{}, fmt.Errorf("scenario %s: %w", sc.Name, err)
	}
	world, err := NewWorld(sc, level, opts.Logger)
	if err != nil {
		return Report{}, fmt.Errorf("scenario %s: %w", sc.Name, err)
	}
	if err := NewGameLoop(world, cfg.C.TPS, opts.Realtime, opts.Logger).Run(ctx); err != nil {
		return world.Report(), err
	}
	return world.Report(), nil
}

// RunAll plays scenarios concurrently, each in its own world. Reports keep
// the order of scenarios. The first failure cancels the remaining runs.
func RunAll(ctx context.Context, scenarios []Scenario, levels LevelSource, opts Options) ([]Report, error) {
	reports := make([]Report, len(scenarios))

	g, ctx := errgroup.WithContext(ctx)
	if opts.Parallel > 0 {
		g.SetLimit(opts.Parallel)
	}
	for i, sc := range scenarios {
		g.Go(func() error {
			r, err := Run(ctx, sc, levels, opts)
			reports[i] = r
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return reports, err
	}
	return reports, nil
}
