package gamedata

import (
	"fmt"

	"github.com/samdwyer/stonefall/internal/world"
)

// KeyDef defines a key/lock identity loaded from JSON.
type KeyDef struct {
	ID    int    `json:"id"`    // Lock id; level codes 8+2(id-1) and 9+2(id-1) use it
	Name  string `json:"name"`  // Display name (e.g., "yellow")
	Color string `json:"color"` // Hex color shared by the key and its doors
}

// KeysFile represents the structure of keys.json.
type KeysFile struct {
	Keys []KeyDef `json:"keys"`
}

// LoadKeyRegistry loads key definitions from the embedded keys.json file.
func LoadKeyRegistry() (*world.KeyRegistry, error) {
	file, err := Load[KeysFile]("keys.json")
	if err != nil {
		return nil, err
	}
	return NewKeyRegistry(file.Keys)
}

// NewKeyRegistry validates key definitions and builds a registry from them.
func NewKeyRegistry(defs []KeyDef) (*world.KeyRegistry, error) {
	configs := make([]world.KeyConfig, 0, len(defs))
	for _, d := range defs {
		if d.ID < 1 || d.ID > 255 {
			return nil, fmt.Errorf("key %q: id %d out of range", d.Name, d.ID)
		}
		if _, err := ParseHexColor(d.Color); err != nil {
			return nil, fmt.Errorf("key %q: %w", d.Name, err)
		}
		configs = append(configs, world.KeyConfig{
			ID:    world.LockID(d.ID),
			Name:  d.Name,
			Color: d.Color,
		})
	}
	return world.NewKeyRegistry(configs...)
}
