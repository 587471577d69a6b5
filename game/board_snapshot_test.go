package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/they4kman/sweepcore/grid"
)

func TestSnapshotMinefield(t *testing.T) {
	snapshot := &BoardSnapshot{SerializedBoard: "*F#\nf.x\nO##\n"}
	mf, err := snapshot.Minefield()
	require.NoError(t, err)

	assert.False(t, mf.IsFirstGuess())
	assert.Equal(t, 3, mf.Width())
	assert.Equal(t, 3, mf.Height())
	assert.Equal(t, []grid.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 2}}, pointsWith(mf, Mine))
	assert.Equal(t, []grid.Point{{X: 2, Y: 1}}, pointsWith(mf, NonPlayable))
	assert.Empty(t, pointsWith(mf, Revealed))
	assert.Empty(t, pointsWith(mf, Flag))

	adjacency, _ := mf.Adjacency(grid.Point{X: 1, Y: 1})
	assert.Equal(t, uint8(3), adjacency)
}

func TestSnapshotMinefieldErrors(t *testing.T) {
	for name, board := range map[string]string{
		"empty":        "",
		"ragged rows":  "###\n##",
		"unknown cell": "#?#",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := (&BoardSnapshot{SerializedBoard: board}).Minefield()
			assert.Error(t, err)
		})
	}
}

func TestSnapshotYAML(t *testing.T) {
	snapshot, err := LoadSnapshot("seed: 42\nboard: |-\n  O#\n  ##\n")
	require.NoError(t, err)
	assert.Equal(t, int64(42), snapshot.Seed)
	assert.Equal(t, "O#\n##", snapshot.SerializedBoard)

	reloaded, err := LoadSnapshot(snapshot.Serialize())
	require.NoError(t, err)
	assert.Equal(t, snapshot, reloaded)

	_, err = LoadSnapshot("seed: [")
	assert.Error(t, err)
}

func TestSerializeCell(t *testing.T) {
	tests := []struct {
		state    CellState
		losing   bool
		expected byte
	}{
		{Mine, true, '*'},
		{Mine | Flag, false, 'F'},
		{Mine, false, 'O'},
		{Flag, false, 'f'},
		{Revealed, false, '.'},
		{NoFlags, false, '#'},
		{NonPlayable, false, 'x'},
	}
	for _, tc := range tests {
		assert.Equal(t, string(tc.expected), string(serializeCell(tc.state, tc.losing)), "state %v", tc.state)
	}
}
