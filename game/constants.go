package game

import "github.com/they4kman/sweepcore/grid"

// WinStatus moves from InProgress to Win or Loss, and never back.
type WinStatus int

const (
	InProgress WinStatus = iota
	Win
	Loss
)

func (status WinStatus) String() string {
	switch status {
	case InProgress:
		return "in progress"
	case Win:
		return "win"
	case Loss:
		return "loss"
	default:
		return "unknown"
	}
}

func (status WinStatus) IsTerminal() bool {
	return status == Win || status == Loss
}

type PreviewKind int

const (
	KindFirstGuess PreviewKind = iota
	KindGuess
	KindFlag
	KindChord
)

func (kind PreviewKind) String() string {
	switch kind {
	case KindFirstGuess:
		return "first guess"
	case KindGuess:
		return "guess"
	case KindFlag:
		return "flag"
	case KindChord:
		return "chord"
	default:
		return "unknown"
	}
}

type PreviewResult int

const (
	PreviewNothing PreviewResult = iota
	PreviewSuccess
	PreviewFail
)

func (result PreviewResult) String() string {
	switch result {
	case PreviewNothing:
		return "nothing"
	case PreviewSuccess:
		return "success"
	case PreviewFail:
		return "fail"
	default:
		return "unknown"
	}
}

// Neighbourhoods used by the rules. Adjacency always counts all eight.
const (
	adjacencyMask = grid.All
	revealMask    = grid.All
)
