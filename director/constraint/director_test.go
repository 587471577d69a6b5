package constraint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/they4kman/sweepcore/game"
	"github.com/they4kman/sweepcore/grid"
	"github.com/they4kman/sweepcore/util/collections"
)

func newGame(t *testing.T, config game.GameConfig) *game.Game {
	t.Helper()
	g, err := game.NewGame(config)
	require.NoError(t, err)
	return g
}

func TestDeducesMineThenWins(t *testing.T) {
	config := game.NewGameConfig()
	config.Seed = 7
	config.Snapshot = &game.BoardSnapshot{SerializedBoard: "O#O\n###\n###"}
	g := newGame(t, config)

	g.Guess(grid.Point{X: 1, Y: 2})

	director := &Director{}
	director.Init(g)
	require.True(t, director.Act())
	state, _ := g.Minefield().State(grid.Point{X: 2, Y: 0})
	assert.True(t, state.Contains(game.Flag))

	game.Play(g, director, 0)
	assert.Equal(t, game.Win, g.Status())

	state, _ = g.Minefield().State(grid.Point{X: 1, Y: 0})
	assert.True(t, state.Contains(game.Revealed))
}

func TestPlaysToCompletion(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		config := game.NewGameConfig()
		config.Seed = seed
		g := newGame(t, config)

		acts := game.Play(g, &Director{}, 0)
		assert.Positive(t, acts, "seed %d", seed)
		assert.True(t, g.Status().IsTerminal(), "seed %d", seed)

		for p := range g.Minefield().Extents().PositionsRowMajor() {
			state, _ := g.Minefield().State(p)
			if state.Contains(game.Flag) {
				assert.True(t, state.Contains(game.Mine), "seed %d: flag on safe cell %v", seed, p)
			}
		}
	}
}

func TestActAfterGameEnds(t *testing.T) {
	config := game.NewGameConfig()
	config.Seed = 3
	config.Snapshot = &game.BoardSnapshot{SerializedBoard: "O#"}
	g := newGame(t, config)
	g.Guess(grid.Point{X: 0, Y: 0})
	require.Equal(t, game.Loss, g.Status())

	director := &Director{}
	director.Init(g)
	assert.False(t, director.Act())
}

func TestObservation(t *testing.T) {
	origin := grid.Point{X: 1, Y: 1}
	cells := collections.NewSet[grid.Point]()
	cells.Add(grid.Point{X: 2, Y: 0})
	cells.Add(grid.Point{X: 0, Y: 1})
	cells.Add(grid.Point{X: 0, Y: 0})
	cells.Add(grid.Point{X: 1, Y: 0})

	observation := Observation{origin: &origin, numMines: 1, cells: cells}
	assert.Equal(t, 0.25, observation.MineProbability())
	assert.Equal(t, []grid.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 1}}, sortedPoints(cells))
	assert.Contains(t, observation.String(), "1 ε (0, 0), (1, 0), (2, 0), (0, 1)")

	observation.origin = nil
	assert.Contains(t, observation.String(), "?")
}
