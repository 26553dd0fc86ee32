// Package game provides the main game loop and session state.
package game

// State represents the current session state.
type State int

const (
	// StatePlaying runs the simulation every tick.
	StatePlaying State = iota
	// StatePaused keeps rendering but skips the simulation and drops input.
	StatePaused
	// StateStopped ends the game loop.
	StateStopped
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}
