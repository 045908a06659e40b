package main

import (
	"flag"
	"image"
	"os"
	"path/filepath"

	"github.com/automoto/mostro/assets"
	"github.com/automoto/mostro/config"
	"github.com/automoto/mostro/fonts"
	"github.com/automoto/mostro/scenes"
	"github.com/automoto/mostro/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(scene Scene) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	levelName := flag.String("level", "clearing", "level to load")
	configPath := flag.String("config", "", "YAML tuning overlay on disk (default: embedded)")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "mostro",
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
	log.SetDefault(logger)

	if err := fonts.LoadDefaults(); err != nil {
		logger.Fatal("could not load fonts", "err", err)
	}

	level, err := assets.NewLevelLoader().LoadLevel(*levelName)
	if err != nil {
		logger.Fatal("could not load level", "err", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Mostro")
	ebiten.SetTPS(config.C.TPS)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		logger.Warn("settings will not be saved", "err", err)
	}
	saved, _ := systems.LoadSettings()

	if err := ebiten.RunGame(NewGame(scenes.NewWorldScene(level, saved, logger))); err != nil {
		logger.Fatal(err)
	}
}
