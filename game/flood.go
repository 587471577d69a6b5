package game

import (
	"github.com/gammazero/deque"
	log "github.com/sirupsen/logrus"

	"github.com/they4kman/sweepcore/grid"
)

// RevealStrategy uncovers cells starting from one position and returns every
// newly revealed position.
type RevealStrategy interface {
	Reveal(mf *Minefield, start grid.Point) []grid.Point
}

// ClassicReveal reveals start and, while the revealed cell has no adjacent
// mines, floods outward through its eight neighbours. Mines, revealed, flagged
// and non-playable cells stop the flood.
type ClassicReveal struct{}

func (ClassicReveal) Reveal(mf *Minefield, start grid.Point) []grid.Point {
	var revealed []grid.Point
	var visitQueue deque.Deque[grid.Point]
	extents := mf.Extents()

	visitQueue.PushBack(start)
	for visitQueue.Len() > 0 {
		p := visitQueue.PopFront()

		state := mf.cells.Ptr(p.X, p.Y)
		if state == nil || state.Intersects(Mine|Revealed|NonPlayable|Flag) {
			continue
		}
		state.Insert(Revealed)
		revealed = append(revealed, p)

		if mf.adjacency.At(p) == 0 {
			for neighbour := range extents.Neighbours(p, revealMask) {
				if mf.isCovered(neighbour) {
					visitQueue.PushBack(neighbour)
				}
			}
		}
	}

	if len(revealed) > 1 {
		log.WithFields(log.Fields{
			"start":    start,
			"revealed": len(revealed),
		}).Debug("reveal cascade")
	}
	return revealed
}
