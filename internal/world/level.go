package world

import (
	"errors"
	"fmt"
)

// Level translation errors.
var (
	ErrUnknownTileCode = errors.New("unknown tile code")
	ErrMalformedLevel  = errors.New("malformed level")
)

// Code is the integer form of a tile in level data.
type Code int

const (
	CodeAir Code = iota
	CodeFlux
	CodeUnbreakable
	CodePlayer
	CodeStone
	CodeFallingStone
	CodeBox
	CodeFallingBox
	CodeKey1
	CodeLock1
	CodeKey2
	CodeLock2
)

// Key and lock codes continue in pairs past CodeLock2: 12 is key 3, 13 its lock.
const firstKeyCode = CodeKey1

// TileFromCode translates a level code into a tile.
// Key and lock codes are accepted only for ids present in keys.
func TileFromCode(c Code, keys *KeyRegistry) (Tile, error) {
	switch c {
	case CodeAir:
		return Air(), nil
	case CodeFlux:
		return Flux(), nil
	case CodeUnbreakable:
		return Unbreakable(), nil
	case CodePlayer:
		return Player(), nil
	case CodeStone:
		return Stone(Resting), nil
	case CodeFallingStone:
		return Stone(Falling), nil
	case CodeBox:
		return Box(Resting), nil
	case CodeFallingBox:
		return Box(Falling), nil
	}

	if c < firstKeyCode || keys == nil {
		return Tile{}, fmt.Errorf("%w: %d", ErrUnknownTileCode, c)
	}
	off := int(c - firstKeyCode)
	if off/2+1 > 255 {
		return Tile{}, fmt.Errorf("%w: %d", ErrUnknownTileCode, c)
	}
	id := LockID(off/2 + 1)
	if _, ok := keys.Get(id); !ok {
		return Tile{}, fmt.Errorf("%w: %d (no key with id %d)", ErrUnknownTileCode, c, id)
	}
	if off%2 == 0 {
		return Key(id), nil
	}
	return LockedDoor(id), nil
}

// NewGrid builds a grid from rows of level codes.
// The layout must be rectangular and hold exactly one player.
func NewGrid(codes [][]int, keys *KeyRegistry, rules Rules) (*Grid, error) {
	if len(codes) == 0 || len(codes[0]) == 0 {
		return nil, fmt.Errorf("%w: empty layout", ErrMalformedLevel)
	}
	if keys == nil {
		keys = DefaultKeys()
	}

	g := &Grid{
		Width:  len(codes[0]),
		Height: len(codes),
		tiles:  make([][]Tile, len(codes)),
		keys:   keys,
		rules:  rules,
	}

	players := 0
	for y, row := range codes {
		if len(row) != g.Width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedLevel, y, len(row), g.Width)
		}
		g.tiles[y] = make([]Tile, g.Width)
		for x, code := range row {
			t, err := TileFromCode(Code(code), keys)
			if err != nil {
				return nil, fmt.Errorf("cell (%d,%d): %w", x, y, err)
			}
			if t.IsPlayer() {
				players++
				g.player = Position{X: x, Y: y}
			}
			g.tiles[y][x] = t
		}
	}

	if players != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrPlayerCount, players)
	}
	return g, nil
}
