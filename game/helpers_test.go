package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/they4kman/sweepcore/grid"
)

// minefieldFromRows builds a minefield from one string per row:
// '#' covered, 'O' mine, 'F' flagged mine, 'f' flag, '.' revealed,
// 'x' non-playable. The first guess is left pending.
func minefieldFromRows(t *testing.T, rows ...string) *Minefield {
	t.Helper()
	mf, err := NewMinefield(len(rows[0]), len(rows))
	require.NoError(t, err)

	for y, row := range rows {
		require.Len(t, row, mf.Width(), "row %d", y)
		for x, c := range row {
			var state CellState
			switch c {
			case '#':
			case 'O':
				state = Mine
			case 'F':
				state = Mine | Flag
			case 'f':
				state = Flag
			case '.':
				state = Revealed
			case 'x':
				state = NonPlayable
			default:
				t.Fatalf("unknown cell %q", c)
			}
			mf.cells.Put(grid.Point{X: x, Y: y}, state)
		}
	}
	mf.UpdateAdjacency()
	return mf
}

// identityShuffler leaves the order untouched, so placement is row-major.
type identityShuffler struct{}

func (identityShuffler) Shuffle(int, func(i, j int)) {}

func pointsWith(mf *Minefield, state CellState) []grid.Point {
	var points []grid.Point
	for p, s := range mf.cells.EnumerateRowMajor() {
		if s.Contains(state) {
			points = append(points, p)
		}
	}
	return points
}
