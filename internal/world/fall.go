package world

// FallState tracks whether a stone or box is in free fall.
type FallState uint8

const (
	// Resting tiles are supported from below and can be pushed.
	Resting FallState = iota
	// Falling tiles drop one row per tick and ignore pushes.
	Falling
)

// String returns a human-readable state name.
func (f FallState) String() string {
	switch f {
	case Resting:
		return "resting"
	case Falling:
		return "falling"
	default:
		return "unknown"
	}
}

// updateFallable recomputes the fall state of the tile at (x, y) from the
// cell below it and, if the tile is falling, drops it one row.
// Reports whether the tile moved.
func (g *Grid) updateFallable(x, y int) bool {
	t := g.tiles[y][x]
	if g.At(x, y+1).IsAir() {
		t.Fall = Falling
	} else {
		t.Fall = Resting
	}

	switch t.Fall {
	case Falling:
		g.set(x, y+1, t)
		g.set(x, y, Air())
		return true
	default:
		g.set(x, y, t)
		return false
	}
}

// push moves a fallable tile next to the player one cell in direction dx,
// with the player following into the vacated cell.
// The landing cell must be empty and the pushed tile must stand on something.
func (g *Grid) push(t Tile, dx int) bool {
	switch t.Fall {
	case Falling:
		return false
	case Resting:
		px, py := g.player.X, g.player.Y
		if !g.At(px+2*dx, py).IsAir() || g.At(px+dx, py+1).IsAir() {
			return false
		}
		g.set(px+2*dx, py, t)
		g.MoveToTile(px+dx, py)
		return true
	default:
		return false
	}
}
