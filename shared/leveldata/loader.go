package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// TMX layer and object group names the loader understands.
const (
	SolidLayer       = "solid"
	PlatformsGroup   = "Platforms"
	PlayerSpawnGroup = "PlayerSpawn"
)

// LoadLevelData parses a TMX file into level data. Solid tiles are merged into
// rectangles and come first, followed by the rectangles of the Platforms object
// group in document order. It takes an fs.FS so callers can pass embed.FS or
// os.DirFS.
func LoadLevelData(fsys fs.FS, tmxPath string) (*LevelData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &LevelData{
		Name:      strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}

	for _, layer := range levelMap.Layers {
		if layer.Name != SolidLayer {
			continue
		}
		if len(layer.Tiles) != levelMap.Width*levelMap.Height {
			return nil, fmt.Errorf("layer %q: %d tiles for a %dx%d map",
				layer.Name, len(layer.Tiles), levelMap.Width, levelMap.Height)
		}
		solid := make([]bool, len(layer.Tiles))
		for i, tile := range layer.Tiles {
			solid[i] = tile != nil && !tile.IsNil()
		}
		data.SolidRects = append(data.SolidRects, MergeSolidTiles(solid,
			levelMap.Width, levelMap.Height,
			float64(levelMap.TileWidth), float64(levelMap.TileHeight))...)
		break
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case PlatformsGroup:
			for _, o := range og.Objects {
				data.SolidRects = append(data.SolidRects, SolidRect{
					X: o.X, Y: o.Y, W: o.Width, H: o.Height,
				})
			}
		case PlayerSpawnGroup:
			for _, o := range og.Objects {
				data.SpawnPoints = append(data.SpawnPoints, SpawnPoint{X: o.X, Y: o.Y})
			}
		}
	}

	// Sort spawns left-to-right for consistent assignment
	sort.SliceStable(data.SpawnPoints, func(i, j int) bool {
		return data.SpawnPoints[i].X < data.SpawnPoints[j].X
	})

	return data, nil
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads each,
// and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*LevelData, []string, error) {
	pattern := path.Join(levelsDir, "*.tmx")
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*LevelData, len(matches))
	names := make([]string, 0, len(matches))

	for _, match := range matches {
		data, err := LoadLevelData(fsys, match)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", match, err)
		}
		levels[data.Name] = data
		names = append(names, data.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
