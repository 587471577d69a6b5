package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/they4kman/sweepcore/grid"
	"github.com/they4kman/sweepcore/rng"
)

func TestPlaceInitialMines(t *testing.T) {
	mf := minefieldFromRows(t,
		"x####",
		"#####",
		"####x",
	)
	placed := PlaceInitialMines(mf, rng.New(3), 6)
	assert.Equal(t, 6, placed)
	assert.Equal(t, 6, mf.NumMines())
	assert.Equal(t, 2, mf.Count(NonPlayable))
	require.NoError(t, mf.Validate())
}

func TestPlaceInitialMinesRowMajorWithoutShuffle(t *testing.T) {
	mf := minefieldFromRows(t, "x###", "####")
	PlaceInitialMines(mf, identityShuffler{}, 3)
	assert.Equal(t, []grid.Point{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}}, pointsWith(mf, Mine))

	adjacency, _ := mf.Adjacency(grid.Point{X: 2, Y: 1})
	assert.Equal(t, uint8(3), adjacency)
}

func TestPlaceInitialMinesCapsAtEligibleCells(t *testing.T) {
	mf := minefieldFromRows(t, "O#x", "###")
	placed := PlaceInitialMines(mf, rng.New(1), 100)
	assert.Equal(t, 4, placed)
	assert.Equal(t, 5, mf.NumMines())
}

func TestPlaceInitialMinesRequiresPositiveCount(t *testing.T) {
	mf := minefieldFromRows(t, "###")
	assert.Panics(t, func() { PlaceInitialMines(mf, rng.New(1), 0) })
}

func TestMoveMinesClearsSafeZone(t *testing.T) {
	sizes := [][2]int{{5, 5}, {8, 6}, {10, 10}, {4, 30}}
	for _, size := range sizes {
		for seed := uint64(1); seed <= 15; seed++ {
			mf, err := NewMinefield(size[0], size[1])
			require.NoError(t, err)
			r := rng.New(seed)
			mines := PlaceInitialMines(mf, r, size[0]*size[1]-9)

			safe := grid.Point{X: r.Intn(size[0]), Y: r.Intn(size[1])}
			MoveMines(mf, r, safe)

			for p := range mf.Extents().NeighboursIncludingSelf(safe, grid.All) {
				require.False(t, mf.cells.At(p).Contains(Mine), "size %v seed %d: mine at %v near %v", size, seed, p, safe)
			}
			require.Equal(t, mines, mf.NumMines(), "size %v seed %d", size, seed)
		}
	}
}

func TestMoveMinesRecomputesAdjacency(t *testing.T) {
	mf := minefieldFromRows(t,
		"O####",
		"#####",
		"#####",
	)
	moved := MoveMines(mf, identityShuffler{}, grid.Point{X: 0, Y: 0})
	assert.Equal(t, 1, moved)

	// The first eligible cell in row-major order is (2, 0).
	assert.Equal(t, []grid.Point{{X: 2, Y: 0}}, pointsWith(mf, Mine))
	adjacency, _ := mf.Adjacency(grid.Point{X: 1, Y: 1})
	assert.Equal(t, uint8(1), adjacency)
	adjacency, _ = mf.Adjacency(grid.Point{X: 0, Y: 0})
	assert.Zero(t, adjacency)
}

func TestMoveMinesSkipsNonPlayable(t *testing.T) {
	mf := minefieldFromRows(t,
		"O##x",
		"###x",
		"####",
	)
	MoveMines(mf, identityShuffler{}, grid.Point{X: 0, Y: 0})
	assert.Equal(t, []grid.Point{{X: 2, Y: 0}}, pointsWith(mf, Mine))
	assert.Equal(t, 2, mf.Count(NonPlayable))
}

func TestMoveMinesWithoutRoomPanics(t *testing.T) {
	mf := minefieldFromRows(t,
		"###",
		"#O#",
		"###",
	)
	assert.Panics(t, func() { MoveMines(mf, rng.New(1), grid.Point{X: 1, Y: 1}) })
}
