package factory

import (
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/automoto/scroller/archetypes"
	"github.com/automoto/scroller/components"
	"github.com/automoto/scroller/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LoadLevels gathers the built-in levels, laid out for viewportH, plus every
// .tmx file in tmxDir when it is set. TMX levels shadow built-ins of the
// same name.
func LoadLevels(tmxDir string, viewportH float64) (map[string]*leveldata.LevelData, []string, error) {
	levels := make(map[string]*leveldata.LevelData)
	var names []string

	for _, name := range leveldata.BuiltinNames() {
		data, err := leveldata.Builtin(name, viewportH)
		if err != nil {
			return nil, nil, err
		}
		levels[name] = data
		names = append(names, name)
	}

	if tmxDir != "" {
		loaded, loadedNames, err := leveldata.LoadAllLevels(os.DirFS(tmxDir), ".")
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load levels from %s: %w", tmxDir, err)
		}
		for _, name := range loadedNames {
			if _, ok := levels[name]; !ok {
				names = append(names, name)
			}
			levels[name] = loaded[name]
		}
		log.Printf("Loaded %d TMX levels from %s", len(loadedNames), tmxDir)
	}

	sort.Strings(names)
	return levels, names, nil
}

// CreateLevel spawns the level entity with startName selected. An unknown
// name falls back to the first level.
func CreateLevel(ecs *ecs.ECS, levels map[string]*leveldata.LevelData, names []string, startName string) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	index := 0
	for i, name := range names {
		if name == startName {
			index = i
			break
		}
	}
	if len(names) > 0 && names[index] != startName {
		log.Printf("Warning: level %q not found, starting with %q", startName, names[index])
	}

	components.Level.SetValue(level, components.LevelData{
		Levels:     levels,
		Names:      names,
		LevelIndex: index,
	})
	return level
}
