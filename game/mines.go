package game

import (
	log "github.com/sirupsen/logrus"

	"github.com/they4kman/sweepcore/grid"
)

// Shuffler permutes n elements through swap. *rng.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

func shufflePoints(r Shuffler, points []grid.Point) {
	r.Shuffle(len(points), func(i, j int) {
		points[i], points[j] = points[j], points[i]
	})
}

// PlaceInitialMines puts count mines on random cells that are neither mines
// nor non-playable, capped at the number of such cells. It returns the number
// placed.
func PlaceInitialMines(mf *Minefield, r Shuffler, count int) int {
	if count <= 0 {
		log.Panicf("mine count must be positive, got %d", count)
	}

	var eligible []grid.Point
	for p, state := range mf.cells.EnumerateRowMajor() {
		if !state.Intersects(Mine | NonPlayable) {
			eligible = append(eligible, p)
		}
	}
	shufflePoints(r, eligible)

	placed := min(count, len(eligible))
	for _, p := range eligible[:placed] {
		mf.cells.Ptr(p.X, p.Y).Insert(Mine)
	}
	mf.UpdateAdjacency()

	log.WithFields(log.Fields{
		"requested": count,
		"placed":    placed,
		"width":     mf.Width(),
		"height":    mf.Height(),
	}).Debug("placed initial mines")

	return placed
}

// MoveMines clears every mine from safe and its neighbours and places the
// same number of mines on cells at onion distance > 1 from safe. It returns
// the number of mines moved.
func MoveMines(mf *Minefield, r Shuffler, safe grid.Point) int {
	extents := mf.Extents()

	unsafeMines := 0
	for p := range extents.NeighboursIncludingSelf(safe, grid.All) {
		state := mf.cells.Ptr(p.X, p.Y)
		if state.Contains(Mine) {
			state.Remove(Mine)
			unsafeMines++
		}
	}

	var valid []grid.Point
	for p, state := range mf.cells.EnumerateRowMajor() {
		if state.Intersects(Mine|NonPlayable) || grid.OnionDistance(p, safe) <= 1 {
			continue
		}
		valid = append(valid, p)
	}
	if len(valid) < unsafeMines {
		log.Panicf("cannot relocate %d mines away from %v: only %d free cells", unsafeMines, safe, len(valid))
	}

	shufflePoints(r, valid)
	for _, p := range valid[:unsafeMines] {
		mf.cells.Ptr(p.X, p.Y).Insert(Mine)
	}
	mf.UpdateAdjacency()

	for p := range extents.NeighboursIncludingSelf(safe, grid.All) {
		if mf.cells.At(p).Contains(Mine) {
			log.Panicf("mine left at %v inside the safe zone of %v", p, safe)
		}
	}

	log.WithFields(log.Fields{
		"safe":  safe,
		"moved": unsafeMines,
	}).Debug("relocated mines for first guess")

	return unsafeMines
}
