package world

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveIntoAir(t *testing.T) {
	g := mustGrid(t,
		"###",
		"#@#",
		"# #",
	)

	res := g.Step([]Command{Down})

	assert.Equal(t, 1, res.Moves)
	assert.Equal(t, Position{X: 1, Y: 2}, g.Player())
	assert.True(t, g.At(1, 1).IsAir(), "old player cell should be air")
	assert.True(t, g.At(1, 2).IsPlayer())
	require.NoError(t, g.Validate())
}

func TestMoveBlocked(t *testing.T) {
	g := mustGrid(t,
		"#####",
		"#A@o#",
		"#.x.#",
		"#####",
	)

	tests := []struct {
		name string
		cmd  Command
	}{
		{"wall above", Up},
		{"locked door", Left},
		{"stone cannot be pushed into wall", Right},
		{"box cannot be pushed vertically", Down},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := g.String()
			assert.False(t, g.Apply(tt.cmd))
			assert.Equal(t, before, g.String())
			assert.Equal(t, Position{X: 2, Y: 1}, g.Player())
		})
	}
}

func TestDigFlux(t *testing.T) {
	rows := []string{
		"####",
		"#@.#",
		"####",
	}

	g := mustGrid(t, rows...)
	assert.True(t, g.Apply(Right))
	assert.Equal(t, layout("####", "# @#", "####"), g.String())

	noDig, err := NewGrid(codesFromRows(t, rows...), DefaultKeys(), Rules{DigFlux: false})
	require.NoError(t, err)
	assert.False(t, noDig.Apply(Right))
	assert.Equal(t, layout(rows...), noDig.String())
}

func TestStoneFalls(t *testing.T) {
	g := mustGrid(t,
		"#####",
		"#@o #",
		"#. .#",
		"#####",
	)

	res := g.Step(nil)

	assert.Equal(t, 1, res.Falls)
	assert.True(t, g.At(2, 1).IsAir())
	assert.Equal(t, KindStone, g.At(2, 2).Kind)
	assert.Equal(t, Falling, g.At(2, 2).Fall)

	// Landed on the wall: next tick it rests and stays put.
	res = g.Step(nil)
	assert.Equal(t, 0, res.Falls)
	assert.Equal(t, Stone(Resting), g.At(2, 2))
}

func TestStackFallsOneRowPerTick(t *testing.T) {
	g := mustGrid(t,
		"####",
		"#o@#",
		"#o #",
		"# ##",
		"# ##",
		"####",
	)

	res := g.Step(nil)
	assert.Equal(t, 2, res.Falls)
	assert.Equal(t, layout(
		"####",
		"# @#",
		"#O #",
		"#O##",
		"# ##",
		"####",
	), g.String())

	res = g.Step(nil)
	assert.Equal(t, 2, res.Falls)
	assert.Equal(t, layout(
		"####",
		"# @#",
		"#  #",
		"#O##",
		"#O##",
		"####",
	), g.String())

	res = g.Step(nil)
	assert.Equal(t, 0, res.Falls)
	assert.Equal(t, layout(
		"####",
		"# @#",
		"#  #",
		"#o##",
		"#o##",
		"####",
	), g.String())
}

func TestPushBox(t *testing.T) {
	g := mustGrid(t,
		"######",
		"#    #",
		"#    #",
		"# @x #",
		"#....#",
		"######",
	)
	require.Equal(t, Position{X: 2, Y: 3}, g.Player())

	res := g.Step([]Command{Right})

	assert.Equal(t, 1, res.Moves)
	assert.Equal(t, Position{X: 3, Y: 3}, g.Player())
	assert.Equal(t, Box(Resting), g.At(4, 3))
	assert.Equal(t, layout(
		"######",
		"#    #",
		"#    #",
		"#  @x#",
		"#....#",
		"######",
	), g.String())
}

func TestPushLeft(t *testing.T) {
	g := mustGrid(t,
		"#####",
		"# o@#",
		"#...#",
		"#####",
	)

	assert.True(t, g.Apply(Left))
	assert.Equal(t, layout(
		"#####",
		"#o@ #",
		"#...#",
		"#####",
	), g.String())
}

func TestPushRejected(t *testing.T) {
	tests := []struct {
		name string
		rows []string
	}{
		{
			name: "landing cell occupied",
			rows: []string{
				"######",
				"#@xo #",
				"#....#",
				"######",
			},
		},
		{
			name: "pushed tile unsupported",
			rows: []string{
				"#####",
				"#@x #",
				"#. .#",
				"#####",
			},
		},
		{
			name: "falling tile",
			rows: []string{
				"#####",
				"#@O #",
				"#...#",
				"#####",
			},
		},
		{
			name: "landing off the grid",
			rows: []string{
				"@x",
				"..",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustGrid(t, tt.rows...)
			assert.False(t, g.Apply(Right))
			assert.Equal(t, layout(tt.rows...), g.String())
		})
	}
}

func TestFallingTileBecomesPushableOnceSupported(t *testing.T) {
	g := mustGrid(t,
		"#####",
		"#@O #",
		"#...#",
		"#####",
	)

	require.False(t, g.Apply(Right))

	falls := g.Update()
	require.Equal(t, 0, falls)
	require.Equal(t, Resting, g.At(2, 1).Fall)

	assert.True(t, g.Apply(Right))
	assert.Equal(t, Position{X: 2, Y: 1}, g.Player())
	assert.Equal(t, KindStone, g.At(3, 1).Kind)
}

func TestKeyPickup(t *testing.T) {
	g := mustGrid(t,
		"#######",
		"#@1 A #",
		"#A  B #",
		"#######",
	)

	res := g.Step([]Command{Right})

	assert.Equal(t, 1, res.Moves)
	assert.Equal(t, 2, res.LocksOpened)
	assert.Equal(t, Position{X: 2, Y: 1}, g.Player())
	assert.Equal(t, layout(
		"#######",
		"# @   #",
		"#   B #",
		"#######",
	), g.String())
	require.NoError(t, g.Validate())
}

func TestKeyPickupVertical(t *testing.T) {
	g := mustGrid(t,
		"#####",
		"#@AB#",
		"#2  #",
		"#####",
	)

	res := g.Step([]Command{Down})

	assert.Equal(t, 1, res.LocksOpened)
	assert.Equal(t, layout(
		"#####",
		"# A #",
		"#@  #",
		"#####",
	), g.String())
}

func TestOffGridReadsAsWall(t *testing.T) {
	g := mustGrid(t,
		"@ ",
		" o",
	)

	assert.Equal(t, Unbreakable(), g.At(-1, 0))
	assert.Equal(t, Unbreakable(), g.At(0, 2))
	assert.False(t, g.Apply(Left))
	assert.False(t, g.Apply(Up))

	// A stone on the bottom row rests on the edge.
	assert.Equal(t, 0, g.Update())
	assert.Equal(t, Stone(Resting), g.At(1, 1))
}

func TestStepAppliesCommandsInGivenOrder(t *testing.T) {
	rows := []string{
		"#####",
		"#  ##",
		"##@ #",
		"#####",
	}

	g := mustGrid(t, rows...)
	g.Step([]Command{Up, Right, Left})
	assert.Equal(t, Position{X: 1, Y: 1}, g.Player())

	g = mustGrid(t, rows...)
	g.Step([]Command{Left, Right, Up})
	assert.Equal(t, Position{X: 3, Y: 2}, g.Player())
}

func TestSinglePlayerInvariant(t *testing.T) {
	g := mustGrid(t,
		"########",
		"#@ ..# #",
		"#o#x.# #",
		"#1o...2#",
		"#o....A#",
		"#.B  ..#",
		"########",
	)
	rng := rand.New(rand.NewSource(12345))
	cmds := []Command{Up, Down, Left, Right}

	for tick := 0; tick < 500; tick++ {
		batch := make([]Command, rng.Intn(4))
		for i := range batch {
			batch[i] = cmds[rng.Intn(len(cmds))]
		}
		g.Step(batch)
		require.NoErrorf(t, g.Validate(), "tick %d\n%s", tick, g)
	}
}
