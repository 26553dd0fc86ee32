package world

// Position is a cell coordinate on the grid.
type Position struct {
	X, Y int
}

// Offset returns the position shifted by the given delta.
func (p Position) Offset(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}
