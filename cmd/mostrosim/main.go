package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/automoto/mostro/assets"
	"github.com/automoto/mostro/config"
	"github.com/automoto/mostro/sim"
	"github.com/charmbracelet/log"
)

func main() {
	scenariosPath := flag.String("scenarios", "", "scenario YAML on disk (default: embedded)")
	configPath := flag.String("config", "", "YAML tuning overlay on disk (default: embedded)")
	levelsDir := flag.String("levels", "", "directory holding a levels/ folder of TMX files (default: embedded)")
	only := flag.String("only", "", "run a single scenario by name")
	realtime := flag.Bool("realtime", false, "pace ticks at the configured tick rate")
	parallel := flag.Int("parallel", 0, "max scenarios run at once (0 = all)")
	timeline := flag.Bool("timeline", false, "print every event after each run")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "mostrosim",
	})

	var err error
	if *configPath != "" {
		err = config.Load(os.DirFS(filepath.Dir(*configPath)), filepath.Base(*configPath))
	} else {
		err = config.Load(assets.FS(), assets.ConfigPath)
	}
	if err != nil {
		logger.Fatal("could not load config", "err", err)
	}
	if level, err := log.ParseLevel(config.C.LogLevel); err == nil {
		logger.SetLevel(level)
	}
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}
	log.SetDefault(logger)

	var scenarios []sim.Scenario
	if *scenariosPath != "" {
		scenarios, err = sim.LoadScenarios(os.DirFS(filepath.Dir(*scenariosPath)), filepath.Base(*scenariosPath))
	} else {
		scenarios, err = sim.LoadScenarios(assets.FS(), assets.ScenariosPath)
	}
	if err != nil {
		logger.Fatal("could not load scenarios", "err", err)
	}
	if *only != "" {
		scenarios = filterScenarios(scenarios, *only)
		if len(scenarios) == 0 {
			logger.Fatal("no such scenario", "name", *only)
		}
	}

	levels := assets.NewLevelLoader()
	if *levelsDir != "" {
		levels = assets.NewLevelLoaderFS(os.DirFS(*levelsDir))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("running scenarios", "count", len(scenarios), "tps", config.C.TPS, "realtime", *realtime)
	reports, err := sim.RunAll(ctx, scenarios, levels, sim.Options{
		Realtime: *realtime,
		Parallel: *parallel,
		Logger:   logger,
	})

	for _, r := range reports {
		if r.Scenario == "" {
			continue
		}
		logger.Info("scenario finished",
			"scenario", r.Scenario,
			"elapsed", r.Elapsed,
			"transitions", r.Transitions,
			"strikes", r.Strikes,
			"defeated", r.Defeated,
			"player_hits", r.PlayerHitsTaken,
			"player_downs", r.PlayerDowns,
		)
		if *timeline {
			if err := r.WriteTimeline(os.Stdout); err != nil {
				logger.Error("could not write timeline", "err", err)
			}
		}
	}
	if err != nil {
		logger.Fatal("simulation failed", "err", err)
	}
}

func filterScenarios(scenarios []sim.Scenario, name string) []sim.Scenario {
	for _, sc := range scenarios {
		if sc.Name == name {
			return []sim.Scenario{sc}
		}
	}
	return nil
}
