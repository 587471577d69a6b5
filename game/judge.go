package game

import (
	log "github.com/sirupsen/logrus"

	"github.com/they4kman/sweepcore/grid"
)

// WinLossStrategy previews guesses and tracks the game's win status.
type WinLossStrategy interface {
	// CheckGuess classifies a guess at p without changing anything.
	CheckGuess(mf *Minefield, p grid.Point) PreviewResult
	// CheckChord succeeds when p is revealed and its flagged neighbours are
	// exactly its mined neighbours.
	CheckChord(mf *Minefield, p grid.Point) PreviewResult
	HandleGuess(mf *Minefield, preview LogicPreview)
	PostReveal(mf *Minefield)
	Status() WinStatus
}

type ClassicWinLoss struct {
	status WinStatus
}

func (judge *ClassicWinLoss) CheckGuess(mf *Minefield, p grid.Point) PreviewResult {
	state, ok := mf.State(p)
	switch {
	case !ok || state.Intersects(Revealed|NonPlayable|Flag):
		return PreviewNothing
	case state.Contains(Mine):
		return PreviewFail
	default:
		return PreviewSuccess
	}
}

func (judge *ClassicWinLoss) CheckChord(mf *Minefield, p grid.Point) PreviewResult {
	state, ok := mf.State(p)
	if !ok || !state.Contains(Revealed) {
		return PreviewNothing
	}
	for neighbour := range mf.Extents().Neighbours(p, grid.All) {
		n := mf.cells.At(neighbour)
		if n.Contains(Flag) != n.Contains(Mine) {
			return PreviewNothing
		}
	}
	return PreviewSuccess
}

func (judge *ClassicWinLoss) HandleGuess(mf *Minefield, preview LogicPreview) {
	if judge.status.IsTerminal() {
		return
	}
	if preview.Result == PreviewFail {
		judge.transition(Loss, preview.Pos)
	}
}

func (judge *ClassicWinLoss) PostReveal(mf *Minefield) {
	if judge.status.IsTerminal() {
		return
	}
	if err := mf.Validate(); err != nil {
		log.Panicf("corrupted minefield: %v", err)
	}
	if isWon(mf) {
		judge.transition(Win, grid.Point{})
	}
}

func (judge *ClassicWinLoss) Status() WinStatus {
	return judge.status
}

func (judge *ClassicWinLoss) transition(status WinStatus, at grid.Point) {
	log.WithFields(log.Fields{
		"from": judge.status,
		"to":   status,
		"at":   at,
	}).Debug("game status changed")
	judge.status = status
}

// isWon reports whether every cell that is neither a mine nor non-playable
// has been revealed.
func isWon(mf *Minefield) bool {
	for state := range mf.cells.RowMajor() {
		if !state.Intersects(Mine|NonPlayable) && !state.Contains(Revealed) {
			return false
		}
	}
	return true
}
