package world

// StepResult summarizes what happened during one tick.
type StepResult struct {
	Commands    int // Commands applied
	Moves       int // Commands that moved the player
	Falls       int // Tiles that dropped a row
	LocksOpened int // Doors removed by key pickups
}

// Changed returns true if the tick altered the grid.
func (r StepResult) Changed() bool {
	return r.Moves > 0 || r.Falls > 0 || r.LocksOpened > 0
}

// Step runs one tick: every command in the order given, then a full update
// pass from the bottom row to the top row, left to right within a row.
//
// Lower rows must settle first so a tile never falls into a cell that is
// only vacated later in the same pass.
func (g *Grid) Step(cmds []Command) StepResult {
	g.opened = 0
	res := StepResult{Commands: len(cmds)}

	for _, c := range cmds {
		if g.Apply(c) {
			res.Moves++
		}
	}

	res.Falls = g.Update()
	res.LocksOpened = g.opened
	return res
}

// Update runs the per-tick update of every tile and returns how many tiles
// fell.
func (g *Grid) Update() int {
	falls := 0
	for y := g.Height - 1; y >= 0; y-- {
		for x := 0; x < g.Width; x++ {
			if g.updateTile(x, y) {
				falls++
			}
		}
	}
	return falls
}

func (g *Grid) updateTile(x, y int) bool {
	switch g.tiles[y][x].Kind {
	case KindStone, KindBox:
		return g.updateFallable(x, y)
	case KindAir, KindFlux, KindUnbreakable, KindPlayer, KindKey, KindLockedDoor:
		return false
	default:
		return false
	}
}
