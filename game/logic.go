package game

import (
	log "github.com/sirupsen/logrus"

	"github.com/they4kman/sweepcore/grid"
)

// LogicPreview describes what an action at Pos would do. It is computed
// without side effects and must still match a fresh preview when committed.
type LogicPreview struct {
	Pos    grid.Point
	Kind   PreviewKind
	Result PreviewResult
}

// GuessResult lists the positions revealed by a committed guess or chord.
type GuessResult struct {
	Pos      grid.Point
	Revealed []grid.Point
}

type FlagResult struct {
	Pos     grid.Point
	Changed bool
}

// FirstGuessStrategy prepares the minefield for the first guess at p.
type FirstGuessStrategy interface {
	Prepare(mf *Minefield, r Shuffler, p grid.Point)
	// Safe reports whether the first guess can never hit a mine.
	Safe() bool
}

// RelocateFirstGuess moves any mine out of the first guess and its neighbours.
type RelocateFirstGuess struct{}

func (RelocateFirstGuess) Prepare(mf *Minefield, r Shuffler, p grid.Point) {
	MoveMines(mf, r, p)
}

func (RelocateFirstGuess) Safe() bool { return true }

// PlainFirstGuess leaves the mines where they are.
type PlainFirstGuess struct{}

func (PlainFirstGuess) Prepare(*Minefield, Shuffler, grid.Point) {}

func (PlainFirstGuess) Safe() bool { return false }

// Logic composes the reveal, win/loss and first guess rules into the player
// verbs. Every Do* method takes a preview that the caller derived immediately
// before committing; a stale preview panics.
type Logic struct {
	reveal     RevealStrategy
	judge      WinLossStrategy
	firstGuess FirstGuessStrategy
}

func NewLogic(reveal RevealStrategy, judge WinLossStrategy, firstGuess FirstGuessStrategy) *Logic {
	return &Logic{
		reveal:     reveal,
		judge:      judge,
		firstGuess: firstGuess,
	}
}

func NewClassicLogic(mode Mode) *Logic {
	var firstGuess FirstGuessStrategy = RelocateFirstGuess{}
	if mode == ModeClassic {
		firstGuess = PlainFirstGuess{}
	}
	return NewLogic(ClassicReveal{}, &ClassicWinLoss{}, firstGuess)
}

func (logic *Logic) Status() WinStatus {
	return logic.judge.Status()
}

func (logic *Logic) PreviewGuess(mf *Minefield, p grid.Point) LogicPreview {
	kind := KindGuess
	if mf.firstGuess {
		kind = KindFirstGuess
	}
	return LogicPreview{
		Pos:    p,
		Kind:   kind,
		Result: logic.judge.CheckGuess(mf, p),
	}
}

func (logic *Logic) PreviewFlag(mf *Minefield, p grid.Point) LogicPreview {
	result := PreviewSuccess
	if state, ok := mf.State(p); !ok || state.Intersects(Revealed|NonPlayable) {
		result = PreviewNothing
	}
	return LogicPreview{Pos: p, Kind: KindFlag, Result: result}
}

func (logic *Logic) PreviewChord(mf *Minefield, p grid.Point) LogicPreview {
	return LogicPreview{
		Pos:    p,
		Kind:   KindChord,
		Result: logic.judge.CheckChord(mf, p),
	}
}

func (logic *Logic) DoFirstGuess(mf *Minefield, r Shuffler, preview LogicPreview) GuessResult {
	logic.mustBeFresh(preview, KindFirstGuess, logic.PreviewGuess(mf, preview.Pos))

	result := GuessResult{Pos: preview.Pos}
	if preview.Result == PreviewNothing {
		return result
	}

	logic.firstGuess.Prepare(mf, r, preview.Pos)
	mf.firstGuess = false

	// The guessed cell may no longer hold a mine.
	preview = logic.PreviewGuess(mf, preview.Pos)
	logic.judge.HandleGuess(mf, preview)
	if logic.firstGuess.Safe() && logic.judge.Status() == Loss {
		log.Panicf("first guess at %v lost after clearing the safe zone", preview.Pos)
	}

	result.Revealed = logic.reveal.Reveal(mf, preview.Pos)
	logic.judge.PostReveal(mf)
	return result
}

func (logic *Logic) DoGuess(mf *Minefield, preview LogicPreview) GuessResult {
	logic.mustBeFresh(preview, KindGuess, logic.PreviewGuess(mf, preview.Pos))

	result := GuessResult{Pos: preview.Pos}
	if preview.Result == PreviewNothing {
		return result
	}

	logic.judge.HandleGuess(mf, preview)
	result.Revealed = logic.reveal.Reveal(mf, preview.Pos)
	logic.judge.PostReveal(mf)
	return result
}

func (logic *Logic) DoFlag(mf *Minefield, preview LogicPreview) FlagResult {
	logic.mustBeFresh(preview, KindFlag, logic.PreviewFlag(mf, preview.Pos))

	if preview.Result == PreviewNothing {
		return FlagResult{Pos: preview.Pos}
	}
	mf.cells.Ptr(preview.Pos.X, preview.Pos.Y).Toggle(Flag)
	return FlagResult{Pos: preview.Pos, Changed: true}
}

// DoChord reveals every covered neighbour of a revealed cell whose flags
// account for all of its adjacent mines.
func (logic *Logic) DoChord(mf *Minefield, preview LogicPreview) GuessResult {
	logic.mustBeFresh(preview, KindChord, logic.PreviewChord(mf, preview.Pos))

	result := GuessResult{Pos: preview.Pos}
	if preview.Result == PreviewNothing {
		return result
	}

	for neighbour := range mf.Extents().Neighbours(preview.Pos, grid.All) {
		result.Revealed = append(result.Revealed, logic.reveal.Reveal(mf, neighbour)...)
	}
	logic.judge.PostReveal(mf)
	return result
}

func (logic *Logic) mustBeFresh(preview LogicPreview, kind PreviewKind, current LogicPreview) {
	if preview.Kind != kind {
		log.Panicf("%v preview passed where %v was expected", preview.Kind, kind)
	}
	if preview != current {
		log.WithFields(log.Fields{
			"preview": preview,
			"current": current,
		}).Panic("stale preview")
	}
}
