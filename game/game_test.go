package game

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/they4kman/sweepcore/grid"
)

func snapshotGame(t *testing.T, board string) *Game {
	t.Helper()
	config := NewGameConfig()
	config.Seed = 1
	config.Snapshot = &BoardSnapshot{Seed: 1, SerializedBoard: board}
	g, err := NewGame(config)
	require.NoError(t, err)
	return g
}

func TestNewGame(t *testing.T) {
	config := NewGameConfig()
	config.Seed = 12345
	g, err := NewGame(config)
	require.NoError(t, err)

	assert.Equal(t, 30, g.Minefield().Width())
	assert.Equal(t, 16, g.Minefield().Height())
	assert.Equal(t, 99, g.NumMines())
	assert.Equal(t, 99, g.Minefield().NumMines())
	assert.Equal(t, InProgress, g.Status())
	assert.True(t, g.Minefield().IsFirstGuess())
	assert.Equal(t, int64(12345), g.Seed())
}

func TestNewGameIsReproducible(t *testing.T) {
	config := NewGameConfig()
	config.Seed = 99
	a, err := NewGame(config)
	require.NoError(t, err)
	b, err := NewGame(config)
	require.NoError(t, err)

	assert.Equal(t, a.Snapshot(), b.Snapshot())
}

func TestNewGameErrors(t *testing.T) {
	config := NewGameConfig()
	_, err := NewGame(config)
	assert.ErrorIs(t, err, ErrZeroSeed)

	config.Seed = 1
	config.Width, config.Height, config.NumMines = 3, 3, 1
	_, err = NewGame(config)
	assert.ErrorIs(t, err, ErrBoardTooSmall)
}

func TestFirstGuessIsSafe(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		config := NewGameConfig()
		config.Seed = seed
		g, err := NewGame(config)
		require.NoError(t, err)

		g.Guess(grid.Point{X: 15, Y: 8})
		require.NotEqual(t, Loss, g.Status(), "seed %d", seed)
		require.Equal(t, 99, g.Minefield().NumMines(), "seed %d", seed)
		require.False(t, g.Minefield().IsFirstGuess())
	}
}

func TestFlagCounters(t *testing.T) {
	g := snapshotGame(t, "O#\n##")
	assert.Equal(t, 1, g.RemainingMines())

	g.Flag(grid.Point{X: 0, Y: 0})
	g.Flag(grid.Point{X: 1, Y: 1})
	assert.Equal(t, 2, g.NumFlags())
	assert.Equal(t, -1, g.RemainingMines())

	g.Flag(grid.Point{X: 1, Y: 1})
	assert.Equal(t, 1, g.NumFlags())
	assert.Equal(t, 0, g.RemainingMines())

	g.Flag(grid.Point{X: 5, Y: 5})
	assert.Equal(t, 1, g.NumFlags())
}

func TestWinningGameEndsOnce(t *testing.T) {
	g := snapshotGame(t, "O#\n##")
	ends := 0
	g.OnEnd = func(*Game) { ends++ }

	g.Guess(grid.Point{X: 1, Y: 1})
	g.Guess(grid.Point{X: 1, Y: 0})
	assert.Equal(t, InProgress, g.Status())
	g.Guess(grid.Point{X: 0, Y: 1})
	assert.Equal(t, Win, g.Status())
	assert.Equal(t, 1, ends)

	g.Guess(grid.Point{X: 0, Y: 0})
	assert.Equal(t, Win, g.Status())
	assert.Equal(t, 1, ends)
	assert.Equal(t, "O.\n..", g.Snapshot().SerializedBoard)

	_, lost := g.LosingMine()
	assert.False(t, lost)
}

func TestLosingGameRecordsMine(t *testing.T) {
	g := snapshotGame(t, "O#\n##")
	var ended *Game
	g.OnEnd = func(g *Game) { ended = g }

	g.Guess(grid.Point{X: 0, Y: 0})
	assert.Equal(t, Loss, g.Status())
	assert.Same(t, g, ended)

	mine, ok := g.LosingMine()
	require.True(t, ok)
	assert.Equal(t, grid.Point{X: 0, Y: 0}, mine)
	assert.Equal(t, "*#\n##", g.Snapshot().SerializedBoard)

	assert.Empty(t, g.Guess(grid.Point{X: 1, Y: 1}).Revealed)
	assert.False(t, g.Flag(grid.Point{X: 1, Y: 1}).Changed)
}

func TestGameChord(t *testing.T) {
	g := snapshotGame(t, "O##\n###\n###")
	g.Guess(grid.Point{X: 1, Y: 1})
	g.Flag(grid.Point{X: 0, Y: 0})

	result := g.Chord(grid.Point{X: 1, Y: 1})
	assert.Len(t, result.Revealed, 7)
	assert.Equal(t, Win, g.Status())
	assert.Equal(t, "F..\n...\n...", g.Snapshot().SerializedBoard)
}

func TestSaveSnapshot(t *testing.T) {
	g := snapshotGame(t, "O#\n#x")
	g.Guess(grid.Point{X: 1, Y: 0})
	g.Guess(grid.Point{X: 0, Y: 1})
	require.Equal(t, Win, g.Status())

	dir := filepath.Join(t.TempDir(), "snapshots")
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	path, err := SaveSnapshot(dir, g, at)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "20240102_030405_win.yaml"), path)

	loaded, err := LoadSnapshotFile(path)
	require.NoError(t, err)
	assert.Equal(t, int64(1), loaded.Seed)
	assert.Equal(t, "O.\n.x", loaded.SerializedBoard)
}

func TestSaveSnapshotRejectsFile(t *testing.T) {
	g := snapshotGame(t, "O#\n##")
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0666))

	_, err := SaveSnapshot(file, g, time.Now())
	assert.Error(t, err)
}

func TestReplayFilename(t *testing.T) {
	at := time.Date(2023, 12, 31, 23, 59, 58, 0, time.UTC)

	g := snapshotGame(t, "O#\n##")
	assert.Equal(t, "20231231_235958_other.yaml", generateReplayFilename(g, at))

	g.Guess(grid.Point{X: 0, Y: 0})
	assert.Equal(t, "20231231_235958_loss.yaml", generateReplayFilename(g, at))
}
