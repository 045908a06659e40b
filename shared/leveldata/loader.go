package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group names read from the TMX file.
const (
	GroupPlayerSpawn = "PlayerSpawn"
	GroupMostroSpawn = "MostroSpawn"
	GroupRoutes      = "PatrolRoutes"
	GroupObstacles   = "Obstacles"
)

// Load parses a TMX file. It takes an fs.FS so callers can pass embed.FS
// (client) or os.DirFS (simulator).
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
		Routes: make(map[string][]Point),
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupPlayerSpawn:
			for _, o := range og.Objects {
				level.PlayerSpawns = append(level.PlayerSpawns, Point{X: o.X, Y: o.Y})
			}
		case GroupMostroSpawn:
			for _, o := range og.Objects {
				level.MostroSpawns = append(level.MostroSpawns, MostroSpawn{
					Point: Point{X: o.X, Y: o.Y},
					Type:  o.Properties.GetString("type"),
					Route: o.Properties.GetString("route"),
				})
			}
		case GroupRoutes:
			// A route is a polyline; each vertex is a waypoint.
			for _, o := range og.Objects {
				if len(o.PolyLines) == 0 || o.PolyLines[0].Points == nil {
					continue
				}
				points := make([]Point, 0, len(*o.PolyLines[0].Points))
				for _, pt := range *o.PolyLines[0].Points {
					points = append(points, Point{X: o.X + pt.X, Y: o.Y + pt.Y})
				}
				level.Routes[o.Name] = points
			}
		case GroupObstacles:
			for _, o := range og.Objects {
				level.Obstacles = append(level.Obstacles, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		}
	}

	// Sort spawns left-to-right for a stable order between runs
	sort.Slice(level.PlayerSpawns, func(i, j int) bool {
		return level.PlayerSpawns[i].X < level.PlayerSpawns[j].X
	})

	return level, nil
}

// LoadAll discovers all .tmx files in levelsDir within fsys and returns them
// keyed by stem name plus the sorted list of names.
func LoadAll(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		level, err := Load(fsys, path)
		if err != nil {
			return nil, nil, err
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
