package game

import (
	"math/bits"
	"strings"
)

// CellState is the bitset of flags carried by one cell.
type CellState uint8

const (
	Mine CellState = 1 << iota
	Revealed
	// NonPlayable cells are outside the playing field. They carry no other flag.
	NonPlayable
	Flag
)

const NoFlags CellState = 0

// Contains reports whether every bit of other is set.
func (state CellState) Contains(other CellState) bool {
	return state&other == other
}

func (state CellState) Intersects(other CellState) bool {
	return state&other != 0
}

func (state *CellState) Insert(other CellState) {
	*state |= other
}

func (state *CellState) Remove(other CellState) {
	*state &^= other
}

func (state *CellState) Toggle(other CellState) {
	*state ^= other
}

func (state CellState) count() int {
	return bits.OnesCount8(uint8(state))
}

func (state CellState) String() string {
	if state == NoFlags {
		return "None"
	}
	var names []string
	for _, flag := range []struct {
		state CellState
		name  string
	}{
		{Mine, "Mine"},
		{Revealed, "Revealed"},
		{NonPlayable, "NonPlayable"},
		{Flag, "Flag"},
	} {
		if state.Contains(flag.state) {
			names = append(names, flag.name)
		}
	}
	return strings.Join(names, "|")
}

// Snapshot characters, one per cell.
const (
	charLosingMine  = '*'
	charFlaggedMine = 'F'
	charMine        = 'O'
	charFlag        = 'f'
	charRevealed    = '.'
	charCovered     = '#'
	charNonPlayable = 'x'
)

func serializeCell(state CellState, isLosingMine bool) byte {
	switch {
	case state.Contains(NonPlayable):
		return charNonPlayable
	case state.Contains(Mine):
		switch {
		case isLosingMine:
			return charLosingMine
		case state.Contains(Flag):
			return charFlaggedMine
		default:
			return charMine
		}
	case state.Contains(Flag):
		return charFlag
	case state.Contains(Revealed):
		return charRevealed
	default:
		return charCovered
	}
}

// deserializeCell returns the layout part of a snapshot character: whether it
// is a mine or non-playable. Revealed and flag marks are dropped.
func deserializeCell(c rune) (CellState, bool) {
	switch c {
	case charLosingMine, charFlaggedMine, charMine:
		return Mine, true
	case charFlag, charRevealed, charCovered:
		return NoFlags, true
	case charNonPlayable:
		return NonPlayable, true
	default:
		return NoFlags, false
	}
}
