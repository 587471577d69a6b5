package game

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/they4kman/sweepcore/grid"
)

// BoardSnapshot records a board layout, one line per row and one character
// per cell.
type BoardSnapshot struct {
	Seed            int64  `yaml:"seed"`
	SerializedBoard string `yaml:"board"`
}

func (snapshot *BoardSnapshot) Serialize() string {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		panic(err)
	}

	return string(out)
}

// Minefield builds a fresh minefield from the snapshot's layout. Revealed and
// flag marks are dropped, and the first guess is treated as already made so
// the layout is kept as recorded.
func (snapshot *BoardSnapshot) Minefield() (*Minefield, error) {
	rows := strings.Split(strings.TrimRight(snapshot.SerializedBoard, "\n"), "\n")

	height := len(rows)
	width := len(rows[0])
	extents, err := grid.NewExtents(width, height)
	if err != nil {
		return nil, fmt.Errorf("empty snapshot board: %w", err)
	}

	states := make([]CellState, 0, extents.Area())
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("snapshot row %d has %d cells, expected %d", y, len(row), width)
		}
		for x, c := range row {
			state, ok := deserializeCell(c)
			if !ok {
				return nil, fmt.Errorf("invalid snapshot cell %q at (%d, %d)", c, x, y)
			}
			states = append(states, state)
		}
	}

	cells, err := grid.FromRowMajor(extents, states)
	if err != nil {
		return nil, err
	}
	minefield := &Minefield{
		cells:     cells,
		adjacency: grid.New[uint8](extents),
	}
	minefield.UpdateAdjacency()
	return minefield, nil
}

func LoadSnapshot(in string) (*BoardSnapshot, error) {
	var snapshot BoardSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func LoadSnapshotFile(path string) (*BoardSnapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", path, err)
	}
	snapshot, err := LoadSnapshot(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse snapshot %s: %w", path, err)
	}
	return snapshot, nil
}

func (game *Game) Snapshot() *BoardSnapshot {
	var board strings.Builder
	losing, hasLosing := game.LosingMine()

	for y := 0; y < game.minefield.Height(); y++ {
		if y > 0 {
			board.WriteByte('\n')
		}
		for x := 0; x < game.minefield.Width(); x++ {
			p := grid.Point{X: x, Y: y}
			board.WriteByte(serializeCell(game.minefield.cells.At(p), hasLosing && p == losing))
		}
	}

	return &BoardSnapshot{
		Seed:            game.seed,
		SerializedBoard: board.String(),
	}
}

// SaveSnapshot writes the game's snapshot into dir, creating it if needed, and
// returns the path written.
func SaveSnapshot(dir string, game *Game, t time.Time) (string, error) {
	stat, err := os.Stat(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			return "", err
		}
		if err := os.MkdirAll(dir, 0777); err != nil {
			return "", err
		}
	} else if !stat.Mode().IsDir() {
		return "", fmt.Errorf("%s is not a directory; cannot save snapshots to it", dir)
	}

	path := filepath.Join(dir, generateReplayFilename(game, t))
	if err := os.WriteFile(path, []byte(game.Snapshot().Serialize()), 0666); err != nil {
		return "", err
	}
	return path, nil
}

func generateReplayFilename(game *Game, t time.Time) string {
	filenameBuilder := strings.Builder{}

	filenameBuilder.WriteString(t.Format("20060102_150405_"))

	var stateStr string
	switch game.Status() {
	case Win:
		stateStr = "win"
	case Loss:
		stateStr = "loss"
	default:
		stateStr = "other"
	}
	filenameBuilder.WriteString(stateStr)

	filenameBuilder.WriteString(".yaml")

	return filenameBuilder.String()
}
