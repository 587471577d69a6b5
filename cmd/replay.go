package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/they4kman/sweepcore/game"
)

var replayCmd = &cobra.Command{
	Use:   "replay <snapshot.yaml>",
	Short: "Print a saved board snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		snapshot, err := game.LoadSnapshotFile(args[0])
		if err != nil {
			return err
		}
		minefield, err := snapshot.Minefield()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "seed: %d\nsize: %dx%d, mines: %d\n",
			snapshot.Seed, minefield.Width(), minefield.Height(), minefield.NumMines())
		fmt.Fprintln(out, snapshot.SerializedBoard)
		return nil
	},
}
