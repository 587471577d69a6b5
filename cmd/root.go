package cmd

import (
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/they4kman/sweepcore/director/constraint"
	"github.com/they4kman/sweepcore/director/random"
	"github.com/they4kman/sweepcore/game"
)

var gameConfig = game.NewGameConfig()

var (
	configPath   string
	snapshotPath string
	directorName string
	actDelay     time.Duration
	logLevel     string
)

var rootCmd = &cobra.Command{
	Use:   "gosweep",
	Short: "Play manual or computer-driven Minesweeper",
	Long: `gosweep is a Minesweeper game which supports human- or
computer-driven playing.

Run with no arguments to play manually in the console
	gosweep

Commands are read one per line:
	g X Y    guess the cell at column X, row Y
	f X Y    toggle a flag
	c X Y    chord: reveal around a satisfied number
	q        quit

Use the director flag to make the computer play for you
	gosweep --director constraint
`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		log.SetLevel(level)
		log.SetOutput(cmd.ErrOrStderr())
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := resolveConfig(cmd)
		if err != nil {
			return err
		}

		g, err := game.NewGame(config)
		if err != nil {
			return err
		}
		g.OnEnd = func(g *game.Game) {
			saveSnapshot(config.SavedSnapshotsDir, g)
		}

		out := cmd.OutOrStdout()
		if directorName != "" {
			director, err := newDirector(directorName)
			if err != nil {
				return err
			}
			runDirector(out, g, director, actDelay)
			return nil
		}
		return playConsole(cmd.InOrStdin(), out, g, isInteractive())
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// resolveConfig layers the config file, the snapshot and any explicitly set
// flags over the defaults.
func resolveConfig(cmd *cobra.Command) (game.GameConfig, error) {
	config := game.NewGameConfig()
	if configPath != "" {
		var err error
		if config, err = game.LoadConfig(configPath); err != nil {
			return config, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		config.Width = gameConfig.Width
	}
	if flags.Changed("height") {
		config.Height = gameConfig.Height
	}
	if flags.Changed("mines") {
		config.NumMines = gameConfig.NumMines
	}
	if flags.Changed("mode") {
		config.Mode = gameConfig.Mode
	}
	if flags.Changed("seed") {
		config.Seed = gameConfig.Seed
	}
	if flags.Changed("snapshots-dir") {
		config.SavedSnapshotsDir = gameConfig.SavedSnapshotsDir
	}

	if snapshotPath != "" {
		snapshot, err := game.LoadSnapshotFile(snapshotPath)
		if err != nil {
			return config, err
		}
		config.Snapshot = snapshot
		if !flags.Changed("seed") && snapshot.Seed != 0 {
			config.Seed = snapshot.Seed
		}
	} else {
		config.Clamp()
	}

	for config.Seed == 0 {
		config.Seed = time.Now().UnixNano()
	}
	return config, nil
}

func newDirector(name string) (game.Director, error) {
	switch name {
	case "random":
		return &random.Director{}, nil
	case "constraint":
		return &constraint.Director{}, nil
	default:
		return nil, fmt.Errorf("unknown director %q (want random or constraint)", name)
	}
}

func saveSnapshot(dir string, g *game.Game) {
	if dir == "" {
		return
	}
	path, err := game.SaveSnapshot(dir, g, time.Now())
	if err != nil {
		log.WithError(err).Error("could not save snapshot")
		return
	}
	log.WithField("path", path).Info("saved snapshot")
}

type gameModeValue game.Mode

func newGameModeValue(val game.Mode, p *game.Mode) *gameModeValue {
	*p = val
	return (*gameModeValue)(p)
}

func (modeVal *gameModeValue) String() string {
	return game.Mode(*modeVal).String()
}

func (modeVal *gameModeValue) Set(value string) error {
	mode, err := game.ParseMode(value)
	if err != nil {
		return err
	}
	*modeVal = gameModeValue(mode)
	return nil
}

func (modeVal *gameModeValue) Type() string {
	return "game.Mode"
}

func init() {
	// Define our root -help without a shorthand, as we'll use -h for --height
	// Ref: https://github.com/spf13/cobra/issues/291
	rootCmd.PersistentFlags().Bool("help", false, "Help for this command")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (panic, fatal, error, warn, info, debug, trace)")

	rootCmd.Flags().IntVarP(&gameConfig.Width, "width", "w", 30, "Width of game board, in cells")
	rootCmd.Flags().IntVarP(&gameConfig.Height, "height", "h", 16, "Height of game board, in cells")
	rootCmd.Flags().IntVarP(&gameConfig.NumMines, "mines", "m", 99, "Number of mines to place in the game board")
	rootCmd.Flags().Var(newGameModeValue(game.ModeWin7, &gameConfig.Mode), "mode", `Game mode, controlling behaviour of first click.
win7: all cells surrounding the first-clicked cell are cleared of mines (first click never loses)
classic: mines are left as is (first click can lose the game)`)
	rootCmd.Flags().Int64Var(&gameConfig.Seed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&gameConfig.SavedSnapshotsDir, "snapshots-dir", "", "Directory where final board snapshots are saved")
	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML game config")
	rootCmd.Flags().StringVar(&snapshotPath, "snapshot", "", "Path to a board snapshot to play")
	rootCmd.Flags().StringVarP(&directorName, "director", "d", "", "Make the computer play (random or constraint)")
	rootCmd.Flags().DurationVar(&actDelay, "delay", 0, "Pause between director actions, printing the board each time")

	rootCmd.AddCommand(replayCmd)
}
