// Package assets embeds the levels, the tuning overlay and the simulator
// scenarios.
package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"github.com/automoto/mostro/shared/leveldata"
)

var (
	//go:embed all:levels all:config all:scenarios
	assetFS embed.FS
)

const (
	LevelsDir     = "levels"
	ConfigPath    = "config/mostro.yaml"
	ScenariosPath = "scenarios/clearing.yaml"
)

// FS exposes the embedded tree, for config.Load and tests.
func FS() fs.FS {
	return assetFS
}

type LevelLoader struct {
	fsys fs.FS
}

func NewLevelLoader() *LevelLoader {
	return &LevelLoader{fsys: assetFS}
}

// NewLevelLoaderFS loads levels from another tree, such as a directory on disk.
func NewLevelLoaderFS(fsys fs.FS) *LevelLoader {
	return &LevelLoader{fsys: fsys}
}

// MustLoadLevels loads every level, sorted by name.
func (l *LevelLoader) MustLoadLevels() []*leveldata.Level {
	byName, names, err := leveldata.LoadAll(l.fsys, LevelsDir)
	if err != nil {
		panic(fmt.Sprintf("Failed to load levels: %v", err))
	}
	if len(names) == 0 {
		panic("No level files found in assets/levels directory")
	}

	levels := make([]*leveldata.Level, 0, len(names))
	for _, name := range names {
		levels = append(levels, byName[name])
	}
	return levels
}

// LoadLevel loads a level by name, with or without the .tmx extension.
func (l *LevelLoader) LoadLevel(name string) (*leveldata.Level, error) {
	byName, names, err := leveldata.LoadAll(l.fsys, LevelsDir)
	if err != nil {
		return nil, err
	}
	if level, ok := byName[strings.TrimSuffix(name, ".tmx")]; ok {
		return level, nil
	}
	return nil, fmt.Errorf("level %q not found, have %v", name, names)
}
