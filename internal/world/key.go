package world

import "fmt"

// KeyConfig describes one key/lock identity.
type KeyConfig struct {
	ID    LockID
	Name  string
	Color string // Hex color shared by the key and its doors
}

// Removes is the removal predicate run over the grid when the key is picked up.
func (k KeyConfig) Removes(t Tile) bool {
	return t.IsLock(k.ID)
}

// Base key configurations.
var (
	YellowKey = KeyConfig{ID: 1, Name: "yellow", Color: "#ffcc00"}
	TealKey   = KeyConfig{ID: 2, Name: "teal", Color: "#00ccff"}
)

// KeyRegistry holds the key identities known to a level.
type KeyRegistry struct {
	keys  map[LockID]KeyConfig
	order []LockID
}

// NewKeyRegistry creates a registry from key configurations.
// Ids must be unique and non-zero.
func NewKeyRegistry(configs ...KeyConfig) (*KeyRegistry, error) {
	r := &KeyRegistry{keys: make(map[LockID]KeyConfig, len(configs))}
	for _, c := range configs {
		if c.ID == 0 {
			return nil, fmt.Errorf("key %q: id must be non-zero", c.Name)
		}
		if _, dup := r.keys[c.ID]; dup {
			return nil, fmt.Errorf("key %q: duplicate id %d", c.Name, c.ID)
		}
		r.keys[c.ID] = c
		r.order = append(r.order, c.ID)
	}
	return r, nil
}

// DefaultKeys returns the yellow and teal keys.
func DefaultKeys() *KeyRegistry {
	r, _ := NewKeyRegistry(YellowKey, TealKey)
	return r
}

// Get returns the configuration for a lock id.
func (r *KeyRegistry) Get(id LockID) (KeyConfig, bool) {
	k, ok := r.keys[id]
	return k, ok
}

// All returns the configurations in registration order.
func (r *KeyRegistry) All() []KeyConfig {
	all := make([]KeyConfig, 0, len(r.order))
	for _, id := range r.order {
		all = append(all, r.keys[id])
	}
	return all
}

// Count returns the number of registered keys.
func (r *KeyRegistry) Count() int {
	return len(r.order)
}

// removeMatching replaces every tile satisfying the key's removal predicate
// with air and returns how many were removed.
func (g *Grid) removeMatching(k KeyConfig) int {
	removed := 0
	for y := range g.tiles {
		for x := range g.tiles[y] {
			if k.Removes(g.tiles[y][x]) {
				g.tiles[y][x] = Air()
				removed++
			}
		}
	}
	return removed
}
