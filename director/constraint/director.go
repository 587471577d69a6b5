package constraint

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/gammazero/deque"
	log "github.com/sirupsen/logrus"

	"github.com/they4kman/sweepcore/director/random"
	"github.com/they4kman/sweepcore/game"
	"github.com/they4kman/sweepcore/grid"
	"github.com/they4kman/sweepcore/util/collections"
)

// maxObservations bounds the observations derived in a single Act.
const maxObservations = 4096

// Director deduces safe cells and mines from the revealed numbers. When
// nothing is certain it guesses the cell least likely to be a mine, and with
// no information at all it falls back to random guessing.
type Director struct {
	game   *game.Game
	random random.Director
}

// Observation states that exactly numMines of cells are mines.
type Observation struct {
	origin   *grid.Point
	numMines int
	cells    collections.Set[grid.Point]
}

func (observation Observation) String() string {
	points := sortedPoints(observation.cells)
	cellsRepr := make([]string, len(points))
	for i, p := range points {
		cellsRepr[i] = p.String()
	}

	originRepr := "?"
	if observation.origin != nil {
		originRepr = observation.origin.String()
	}

	return fmt.Sprintf("Obs[%8s, %d ε %s]", originRepr, observation.numMines, strings.Join(cellsRepr, ", "))
}

func (observation Observation) MineProbability() float64 {
	return float64(observation.numMines) / float64(len(observation.cells))
}

type action struct {
	pos  grid.Point
	flag bool
}

func (director *Director) Init(g *game.Game) {
	director.game = g
	director.random.Init(g)
}

func (director *Director) Act() bool {
	if !director.game.CanPlay() {
		return false
	}

	observations := director.observe()
	if act, ok := director.actDeliberate(observations); ok {
		log.WithFields(log.Fields{
			"pos":  act.pos,
			"flag": act.flag,
		}).Debug("deliberate action")

		if act.flag {
			director.game.Flag(act.pos)
		} else {
			director.game.Guess(act.pos)
		}
		return true
	}

	if p, ok := director.actLowestProbability(observations); ok {
		log.WithField("pos", p).Debug("lowest probability guess")
		director.game.Guess(p)
		return true
	}

	return director.random.Act()
}

// observe builds one observation per revealed number bordering covered cells,
// in row-major order.
func (director *Director) observe() []*Observation {
	minefield := director.game.Minefield()
	extents := minefield.Extents()

	var observations []*Observation
	for p := range extents.PositionsRowMajor() {
		state, _ := minefield.State(p)
		if !state.Contains(game.Revealed) {
			continue
		}
		adjacency, _ := minefield.Adjacency(p)
		origin := p
		observation := &Observation{
			origin:   &origin,
			numMines: int(adjacency),
			cells:    collections.NewSet[grid.Point](),
		}

		for neighbour := range extents.Neighbours(p, grid.All) {
			neighbourState, _ := minefield.State(neighbour)
			switch {
			case neighbourState.Contains(game.Flag):
				observation.numMines--
			case !neighbourState.Intersects(game.Revealed | game.NonPlayable):
				observation.cells.Add(neighbour)
			}
		}

		if observation.cells.Len() > 0 {
			observations = append(observations, observation)
		}
	}
	return observations
}

// actDeliberate looks for a certain action, deriving new observations by
// subtracting observations that are subsets of others.
func (director *Director) actDeliberate(observations []*Observation) (action, bool) {
	known := append([]*Observation(nil), observations...)

	var queue deque.Deque[*Observation]
	for _, observation := range observations {
		queue.PushBack(observation)
	}

	for queue.Len() > 0 {
		observation := queue.PopFront()

		switch {
		case observation.numMines == observation.cells.Len():
			return action{pos: sortedPoints(observation.cells)[0], flag: true}, true
		case observation.numMines == 0:
			return action{pos: sortedPoints(observation.cells)[0]}, true
		}

		for _, other := range known {
			if len(known) >= maxObservations {
				break
			}
			if other == observation || other.cells.Equal(observation.cells) || !observation.cells.IsSubset(other.cells) {
				continue
			}

			split := &Observation{
				numMines: other.numMines - observation.numMines,
				cells:    other.cells.Difference(observation.cells),
			}
			if isDuplicate(known, split) {
				continue
			}
			known = append(known, split)
			queue.PushBack(split)
		}
	}
	return action{}, false
}

func (director *Director) actLowestProbability(observations []*Observation) (grid.Point, bool) {
	var best *Observation
	for _, observation := range observations {
		if best == nil || observation.MineProbability() < best.MineProbability() {
			best = observation
		}
	}
	if best == nil || best.MineProbability() >= 1 {
		return grid.Point{}, false
	}
	return sortedPoints(best.cells)[0], true
}

func isDuplicate(known []*Observation, observation *Observation) bool {
	for _, other := range known {
		if other.cells.Equal(observation.cells) {
			return true
		}
	}
	return false
}

// sortedPoints orders points row by row.
func sortedPoints(set collections.Set[grid.Point]) []grid.Point {
	points := make([]grid.Point, 0, set.Len())
	for p := range set.All() {
		points = append(points, p)
	}
	slices.SortFunc(points, func(a, b grid.Point) int {
		if a.Y != b.Y {
			return cmp.Compare(a.Y, b.Y)
		}
		return cmp.Compare(a.X, b.X)
	})
	return points
}
