package gamedata

import "github.com/samdwyer/stonefall/internal/world"

// LevelDef defines a level loaded from JSON.
type LevelDef struct {
	ID    string  `json:"id"`    // Unique identifier (e.g., "intro")
	Name  string  `json:"name"`  // Display name
	Tiles [][]int `json:"tiles"` // Rows of tile codes, top row first
}

// Build translates the level into a fresh grid.
func (l *LevelDef) Build(keys *world.KeyRegistry, rules world.Rules) (*world.Grid, error) {
	return world.NewGrid(l.Tiles, keys, rules)
}

// LevelsFile represents the structure of levels.json.
type LevelsFile struct {
	Levels []LevelDef `json:"levels"`
}

// LoadLevels loads level definitions from the embedded levels.json file.
func LoadLevels() ([]LevelDef, error) {
	file, err := Load[LevelsFile]("levels.json")
	if err != nil {
		return nil, err
	}
	return file.Levels, nil
}
