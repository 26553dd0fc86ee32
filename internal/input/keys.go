package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/stonefall/internal/world"
)

// FromKey maps a key event to a movement command.
// Arrow keys and WASD are recognized; everything else is not a command.
func FromKey(ev *tcell.EventKey) (world.Command, bool) {
	return fromKey(ev.Key(), ev.Rune())
}

func fromKey(key tcell.Key, r rune) (world.Command, bool) {
	switch key {
	case tcell.KeyUp:
		return world.Up, true
	case tcell.KeyDown:
		return world.Down, true
	case tcell.KeyLeft:
		return world.Left, true
	case tcell.KeyRight:
		return world.Right, true
	case tcell.KeyRune:
		switch r {
		case 'w':
			return world.Up, true
		case 's':
			return world.Down, true
		case 'a':
			return world.Left, true
		case 'd':
			return world.Right, true
		}
	}
	return 0, false
}
