package gamedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/stonefall/internal/world"
)

// PaletteFile represents the structure of palette.json.
type PaletteFile struct {
	Player string            `json:"player"` // Hex color of the player cell
	Tiles  map[string]string `json:"tiles"`  // Kind name to hex color
}

// Palette maps tiles to screen colors. Air has no color.
type Palette struct {
	player tcell.Color
	kinds  map[world.Kind]tcell.Color
	keys   map[world.LockID]tcell.Color
}

// LoadPalette loads tile colors from palette.json and key colors from the registry.
func LoadPalette(keys *world.KeyRegistry) (*Palette, error) {
	file, err := Load[PaletteFile]("palette.json")
	if err != nil {
		return nil, err
	}
	return NewPalette(file, keys)
}

// NewPalette builds a palette from decoded color definitions.
func NewPalette(file PaletteFile, keys *world.KeyRegistry) (*Palette, error) {
	player, err := ParseHexColor(file.Player)
	if err != nil {
		return nil, fmt.Errorf("player color: %w", err)
	}

	p := &Palette{
		player: player,
		kinds:  make(map[world.Kind]tcell.Color, len(file.Tiles)),
		keys:   make(map[world.LockID]tcell.Color),
	}

	for name, hex := range file.Tiles {
		kind, ok := kindByName(name)
		if !ok {
			return nil, fmt.Errorf("palette: unknown tile kind %q", name)
		}
		c, err := ParseHexColor(hex)
		if err != nil {
			return nil, fmt.Errorf("palette %s: %w", name, err)
		}
		p.kinds[kind] = c
	}

	if keys != nil {
		for _, k := range keys.All() {
			c, err := ParseHexColor(k.Color)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k.Name, err)
			}
			p.keys[k.ID] = c
		}
	}

	return p, nil
}

// ColorOf returns the fill color for a tile, or false if it is not drawn.
func (p *Palette) ColorOf(t world.Tile) (tcell.Color, bool) {
	switch t.Kind {
	case world.KindAir:
		return tcell.ColorDefault, false
	case world.KindPlayer:
		return p.player, true
	case world.KindKey, world.KindLockedDoor:
		c, ok := p.keys[t.Lock]
		return c, ok
	default:
		c, ok := p.kinds[t.Kind]
		return c, ok
	}
}

func kindByName(name string) (world.Kind, bool) {
	for k := world.KindAir; k <= world.KindLockedDoor; k++ {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}
