package game

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/they4kman/sweepcore/grid"
)

// Minefield holds the per-cell state flags, the adjacency counts derived from
// mine placement, and whether the first guess is still pending.
type Minefield struct {
	cells      *grid.Grid[CellState]
	adjacency  *grid.Grid[uint8]
	firstGuess bool
}

func NewMinefield(width, height int) (*Minefield, error) {
	extents, err := grid.NewExtents(width, height)
	if err != nil {
		return nil, err
	}
	return MinefieldFromExtents(extents), nil
}

func MinefieldFromExtents(extents grid.Extents) *Minefield {
	return &Minefield{
		cells:      grid.New[CellState](extents),
		adjacency:  grid.New[uint8](extents),
		firstGuess: true,
	}
}

func (mf *Minefield) Extents() grid.Extents {
	return mf.cells.Extents()
}

func (mf *Minefield) Width() int {
	return mf.cells.Width()
}

func (mf *Minefield) Height() int {
	return mf.cells.Height()
}

// Cells exposes the state grid. Callers that change Mine flags must call
// UpdateAdjacency afterwards.
func (mf *Minefield) Cells() *grid.Grid[CellState] {
	return mf.cells
}

func (mf *Minefield) State(p grid.Point) (CellState, bool) {
	return mf.cells.Get(p.X, p.Y)
}

func (mf *Minefield) Adjacency(p grid.Point) (uint8, bool) {
	return mf.adjacency.Get(p.X, p.Y)
}

func (mf *Minefield) IsFirstGuess() bool {
	return mf.firstGuess
}

// MarkNonPlayable excludes p from play, dropping any other flag it had.
func (mf *Minefield) MarkNonPlayable(p grid.Point) error {
	return mf.cells.Set(p.X, p.Y, NonPlayable)
}

// Clear resets every cell to no flags and every adjacency count to zero.
func (mf *Minefield) Clear() {
	mf.cells.Fill(NoFlags)
	mf.adjacency.Fill(0)
}

// Count returns the number of cells carrying all bits of state.
func (mf *Minefield) Count(state CellState) int {
	n := 0
	for cell := range mf.cells.RowMajor() {
		if cell.Contains(state) {
			n++
		}
	}
	return n
}

func (mf *Minefield) NumMines() int {
	return mf.Count(Mine)
}

// UpdateAdjacency recomputes every adjacency count from the current Mine flags.
// It must be called once after any batch of mine changes.
func (mf *Minefield) UpdateAdjacency() {
	extents := mf.Extents()
	for p := range extents.PositionsRowMajor() {
		count := 0
		for neighbour := range extents.Neighbours(p, adjacencyMask) {
			if mf.cells.At(neighbour).Contains(Mine) {
				count++
			}
		}
		if count > 8 {
			log.Panicf("adjacency count %d at %v exceeds 8", count, p)
		}
		mf.adjacency.Put(p, uint8(count))
	}
}

// Validate checks the cell-state invariants: a NonPlayable cell carries no
// other flag, and a flagged cell is never revealed.
func (mf *Minefield) Validate() error {
	for p, state := range mf.cells.EnumerateRowMajor() {
		if state.Contains(NonPlayable) && state.count() != 1 {
			return fmt.Errorf("non-playable cell %v has extra flags: %v", p, state)
		}
		if state.Contains(Flag | Revealed) {
			return fmt.Errorf("cell %v is both flagged and revealed", p)
		}
	}
	return nil
}

// isCovered reports whether p is a playable cell that is neither revealed
// nor flagged.
func (mf *Minefield) isCovered(p grid.Point) bool {
	state, ok := mf.State(p)
	return ok && !state.Intersects(Revealed|NonPlayable|Flag)
}
