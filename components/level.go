package components

import (
	"github.com/automoto/scroller/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Levels     map[string]*leveldata.LevelData
	Names      []string // cycle order
	LevelIndex int
}

// CurrentName returns the name of the active level.
func (l *LevelData) CurrentName() string {
	if len(l.Names) == 0 {
		return ""
	}
	return l.Names[l.LevelIndex]
}

var Level = donburi.NewComponentType[LevelData]()
