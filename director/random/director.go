package random

import (
	"github.com/they4kman/sweepcore/game"
	"github.com/they4kman/sweepcore/grid"
	"github.com/they4kman/sweepcore/rng"
)

// seedSalt keeps the director's stream apart from the game's own RNG.
const seedSalt = 0x5deece66d

// Director guesses covered cells in a random order fixed at Init.
type Director struct {
	game  *game.Game
	cells []grid.Point
	next  int
}

func (director *Director) Init(g *game.Game) {
	director.game = g
	director.next = 0
	director.cells = director.cells[:0]
	for p := range g.Minefield().Extents().PositionsRowMajor() {
		director.cells = append(director.cells, p)
	}

	seed := uint64(g.Seed()) ^ seedSalt
	if seed == 0 {
		seed = seedSalt
	}
	rng.ShuffleSlice(rng.New(seed), director.cells)
}

func (director *Director) Act() bool {
	if !director.game.CanPlay() {
		return false
	}
	for ; director.next < len(director.cells); director.next++ {
		p := director.cells[director.next]
		if director.game.PreviewGuess(p).Result != game.PreviewNothing {
			director.next++
			director.game.Guess(p)
			return true
		}
	}
	return false
}
