package world

import (
	"errors"
	"fmt"
	"strings"
)

// ErrPlayerCount is returned when a grid does not hold exactly one player.
var ErrPlayerCount = errors.New("grid must contain exactly one player")

// Rules holds level-independent behavior switches.
type Rules struct {
	// DigFlux lets the player walk into flux, clearing it.
	// When false flux blocks the player like a wall.
	DigFlux bool
}

// DefaultRules returns the standard rules: flux is diggable.
func DefaultRules() Rules {
	return Rules{DigFlux: true}
}

// Grid is the playing field. It owns every tile and tracks the player.
type Grid struct {
	Width  int
	Height int
	tiles  [][]Tile
	player Position
	keys   *KeyRegistry
	rules  Rules

	opened int // doors removed by key pickups since the last Step
}

// InBounds returns true if the position lies on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the tile at the given position.
// Positions off the grid read as unbreakable wall.
func (g *Grid) At(x, y int) Tile {
	if !g.InBounds(x, y) {
		return Unbreakable()
	}
	return g.tiles[y][x]
}

// set writes a tile, ignoring positions off the grid.
func (g *Grid) set(x, y int, t Tile) {
	if g.InBounds(x, y) {
		g.tiles[y][x] = t
	}
}

// Player returns the player position.
func (g *Grid) Player() Position {
	return g.player
}

// Keys returns the key registry the grid was built with.
func (g *Grid) Keys() *KeyRegistry {
	return g.keys
}

// Rules returns the grid's rules.
func (g *Grid) Rules() Rules {
	return g.rules
}

// MoveToTile relocates the player: air into the old cell, player into the
// new one, coordinates updated.
func (g *Grid) MoveToTile(x, y int) {
	if !g.InBounds(x, y) {
		return
	}
	g.set(g.player.X, g.player.Y, Air())
	g.set(x, y, Player())
	g.player = Position{X: x, Y: y}
}

// MoveHorizontal attempts to move the player dx columns (dx is -1 or 1).
// Reports whether the player moved.
func (g *Grid) MoveHorizontal(dx int) bool {
	target := g.player.Offset(dx, 0)
	t := g.At(target.X, target.Y)

	switch t.Kind {
	case KindAir:
		g.MoveToTile(target.X, target.Y)
		return true
	case KindFlux:
		return g.dig(target)
	case KindStone, KindBox:
		return g.push(t, dx)
	case KindKey:
		g.pickUp(t, target)
		return true
	case KindUnbreakable, KindPlayer, KindLockedDoor:
		return false
	default:
		return false
	}
}

// MoveVertical attempts to move the player dy rows (dy is -1 or 1).
// Stones and boxes cannot be pushed vertically.
func (g *Grid) MoveVertical(dy int) bool {
	target := g.player.Offset(0, dy)
	t := g.At(target.X, target.Y)

	switch t.Kind {
	case KindAir:
		g.MoveToTile(target.X, target.Y)
		return true
	case KindFlux:
		return g.dig(target)
	case KindKey:
		g.pickUp(t, target)
		return true
	case KindStone, KindBox, KindUnbreakable, KindPlayer, KindLockedDoor:
		return false
	default:
		return false
	}
}

func (g *Grid) dig(target Position) bool {
	if !g.rules.DigFlux {
		return false
	}
	g.MoveToTile(target.X, target.Y)
	return true
}

// pickUp opens every door matching the key, then moves the player onto it.
func (g *Grid) pickUp(key Tile, at Position) {
	cfg, ok := g.keys.Get(key.Lock)
	if !ok {
		cfg = KeyConfig{ID: key.Lock}
	}
	g.opened += g.removeMatching(cfg)
	g.MoveToTile(at.X, at.Y)
}

// Validate checks that exactly one cell holds the player and that it is the
// cell the grid tracks.
func (g *Grid) Validate() error {
	var found []Position
	for y := range g.tiles {
		for x := range g.tiles[y] {
			if g.tiles[y][x].IsPlayer() {
				found = append(found, Position{X: x, Y: y})
			}
		}
	}
	if len(found) != 1 {
		return fmt.Errorf("%w: found %d", ErrPlayerCount, len(found))
	}
	if found[0] != g.player {
		return fmt.Errorf("player tracked at %v but found at %v", g.player, found[0])
	}
	return nil
}

// String renders the grid one rune per cell, one line per row.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.Width + 1) * g.Height)
	for y := range g.tiles {
		for x := range g.tiles[y] {
			sb.WriteRune(g.tiles[y][x].Rune())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
