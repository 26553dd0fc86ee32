package world

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// legend maps the runes used in test layouts to level codes.
// It matches Tile.Rune for freshly built tiles.
var legend = map[rune]Code{
	' ': CodeAir,
	'.': CodeFlux,
	'#': CodeUnbreakable,
	'@': CodePlayer,
	'o': CodeStone,
	'O': CodeFallingStone,
	'x': CodeBox,
	'X': CodeFallingBox,
	'1': CodeKey1,
	'A': CodeLock1,
	'2': CodeKey2,
	'B': CodeLock2,
}

func codesFromRows(t *testing.T, rows ...string) [][]int {
	t.Helper()
	codes := make([][]int, len(rows))
	for y, row := range rows {
		for _, r := range row {
			c, ok := legend[r]
			require.Truef(t, ok, "unknown rune %q in row %d", r, y)
			codes[y] = append(codes[y], int(c))
		}
	}
	return codes
}

func mustGrid(t *testing.T, rows ...string) *Grid {
	t.Helper()
	g, err := NewGrid(codesFromRows(t, rows...), DefaultKeys(), DefaultRules())
	require.NoError(t, err)
	return g
}

func layout(rows ...string) string {
	return strings.Join(rows, "\n") + "\n"
}
