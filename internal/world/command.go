package world

// Command is a directional move request from the player.
type Command uint8

const (
	Up Command = iota
	Down
	Left
	Right
)

// String returns a human-readable command name.
func (c Command) String() string {
	switch c {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Delta returns the unit step for the command.
func (c Command) Delta() (dx, dy int) {
	switch c {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

// Apply attempts the move against the tile next to the player.
// Reports whether the player moved.
func (g *Grid) Apply(c Command) bool {
	dx, dy := c.Delta()
	switch {
	case dx != 0:
		return g.MoveHorizontal(dx)
	case dy != 0:
		return g.MoveVertical(dy)
	default:
		return false
	}
}
