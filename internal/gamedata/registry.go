package gamedata

import (
	"errors"
	"fmt"
)

// LevelRegistry holds loaded level definitions in file order.
type LevelRegistry struct {
	levels []LevelDef
}

// NewLevelRegistry creates a registry from loaded level definitions.
// Level ids must be unique.
func NewLevelRegistry(levels []LevelDef) (*LevelRegistry, error) {
	seen := make(map[string]bool, len(levels))
	for _, l := range levels {
		if seen[l.ID] {
			return nil, fmt.Errorf("duplicate level id %q", l.ID)
		}
		seen[l.ID] = true
	}
	return &LevelRegistry{levels: levels}, nil
}

// LoadLevelRegistry loads and creates a registry from the embedded levels.json.
func LoadLevelRegistry() (*LevelRegistry, error) {
	levels, err := LoadLevels()
	if err != nil {
		return nil, err
	}
	if len(levels) == 0 {
		return nil, errors.New("no levels loaded from levels.json")
	}
	return NewLevelRegistry(levels)
}

// MustLoadLevelRegistry loads a registry, panicking on error.
func MustLoadLevelRegistry() *LevelRegistry {
	registry, err := LoadLevelRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the level with the given ID, or nil if not found.
func (r *LevelRegistry) GetByID(id string) *LevelDef {
	for i := range r.levels {
		if r.levels[i].ID == id {
			return &r.levels[i]
		}
	}
	return nil
}

// First returns the first level, or nil if the registry is empty.
func (r *LevelRegistry) First() *LevelDef {
	if len(r.levels) == 0 {
		return nil
	}
	return &r.levels[0]
}

// All returns all level definitions.
func (r *LevelRegistry) All() []LevelDef {
	return r.levels
}

// Count returns the number of levels in the registry.
func (r *LevelRegistry) Count() int {
	return len(r.levels)
}
