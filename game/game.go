package game

import (
	"errors"

	log "github.com/sirupsen/logrus"

	"github.com/they4kman/sweepcore/grid"
	"github.com/they4kman/sweepcore/rng"
)

var ErrZeroSeed = errors.New("seed must be non-zero")

type GameConfig struct {
	Width    int  `yaml:"width"`
	Height   int  `yaml:"height"`
	NumMines int  `yaml:"mines"`
	Mode     Mode `yaml:"mode"`

	Seed int64 `yaml:"seed"`

	// Snapshot to load the mine layout from, instead of placing mines
	Snapshot *BoardSnapshot `yaml:"-"`

	// Path to directory where final snapshots of boards should be saved
	SavedSnapshotsDir string `yaml:"snapshots_dir"`
}

func NewGameConfig() GameConfig {
	return GameConfig{
		Width:    30,
		Height:   16,
		NumMines: 99,
		Mode:     ModeWin7,
	}
}

// Game is a single play session: one minefield, its rules and its RNG. It is
// not safe for concurrent use.
type Game struct {
	minefield *Minefield
	logic     *Logic
	rand      *rng.Rand
	seed      int64

	numMines   int
	numFlags   int
	losingMine *grid.Point
	ended      bool

	// OnEnd runs once, when the game is won or lost.
	OnEnd func(*Game)
}

func NewGame(config GameConfig) (*Game, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if config.Seed == 0 {
		return nil, ErrZeroSeed
	}

	var minefield *Minefield
	if config.Snapshot != nil {
		var err error
		if minefield, err = config.Snapshot.Minefield(); err != nil {
			return nil, err
		}
	} else {
		var err error
		if minefield, err = NewMinefield(config.Width, config.Height); err != nil {
			return nil, err
		}
	}

	game := &Game{
		minefield: minefield,
		logic:     NewClassicLogic(config.Mode),
		rand:      rng.New(uint64(config.Seed)),
		seed:      config.Seed,
	}
	if config.Snapshot == nil {
		game.numMines = PlaceInitialMines(minefield, game.rand, config.NumMines)
	} else {
		game.numMines = minefield.NumMines()
	}

	log.WithFields(log.Fields{
		"width":  minefield.Width(),
		"height": minefield.Height(),
		"mines":  game.numMines,
		"mode":   config.Mode,
		"seed":   config.Seed,
	}).Info("new game")

	return game, nil
}

func (game *Game) Minefield() *Minefield {
	return game.minefield
}

func (game *Game) Status() WinStatus {
	return game.logic.Status()
}

func (game *Game) CanPlay() bool {
	return !game.Status().IsTerminal()
}

func (game *Game) Seed() int64 {
	return game.seed
}

func (game *Game) NumMines() int {
	return game.numMines
}

func (game *Game) NumFlags() int {
	return game.numFlags
}

// RemainingMines is the mine count minus the flags placed. It goes negative
// when the player over-flags.
func (game *Game) RemainingMines() int {
	return game.numMines - game.numFlags
}

// LosingMine returns the mine that lost the game, if any.
func (game *Game) LosingMine() (grid.Point, bool) {
	if game.losingMine == nil {
		return grid.Point{}, false
	}
	return *game.losingMine, true
}

func (game *Game) PreviewGuess(p grid.Point) LogicPreview {
	return game.logic.PreviewGuess(game.minefield, p)
}

func (game *Game) PreviewFlag(p grid.Point) LogicPreview {
	return game.logic.PreviewFlag(game.minefield, p)
}

func (game *Game) PreviewChord(p grid.Point) LogicPreview {
	return game.logic.PreviewChord(game.minefield, p)
}

// Guess previews and commits a guess at p. Does nothing once the game ended.
func (game *Game) Guess(p grid.Point) GuessResult {
	if !game.CanPlay() {
		return GuessResult{Pos: p}
	}

	preview := game.PreviewGuess(p)
	var result GuessResult
	if preview.Kind == KindFirstGuess {
		result = game.logic.DoFirstGuess(game.minefield, game.rand, preview)
	} else {
		result = game.logic.DoGuess(game.minefield, preview)
	}

	if game.Status() == Loss && game.losingMine == nil {
		game.losingMine = &p
	}
	game.checkEnd()
	return result
}

func (game *Game) Flag(p grid.Point) FlagResult {
	if !game.CanPlay() {
		return FlagResult{Pos: p}
	}

	result := game.logic.DoFlag(game.minefield, game.PreviewFlag(p))
	if result.Changed {
		if game.minefield.cells.At(p).Contains(Flag) {
			game.numFlags++
		} else {
			game.numFlags--
		}
	}
	return result
}

func (game *Game) Chord(p grid.Point) GuessResult {
	if !game.CanPlay() {
		return GuessResult{Pos: p}
	}

	result := game.logic.DoChord(game.minefield, game.PreviewChord(p))
	game.checkEnd()
	return result
}

func (game *Game) checkEnd() {
	if game.ended || !game.Status().IsTerminal() {
		return
	}
	game.ended = true

	log.WithFields(log.Fields{
		"status": game.Status(),
		"seed":   game.seed,
	}).Info("game over")

	if game.OnEnd != nil {
		game.OnEnd(game)
	}
}
