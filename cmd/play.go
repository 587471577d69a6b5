package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/they4kman/sweepcore/game"
	"github.com/they4kman/sweepcore/grid"
)

type verb int

const (
	verbGuess verb = iota
	verbFlag
	verbChord
	verbQuit
)

type command struct {
	verb verb
	pos  grid.Point
}

func parseCommand(line string) (command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return command{}, fmt.Errorf("empty command")
	}

	var cmd command
	switch strings.ToLower(fields[0]) {
	case "q", "quit":
		return command{verb: verbQuit}, nil
	case "g", "guess":
		cmd.verb = verbGuess
	case "f", "flag":
		cmd.verb = verbFlag
	case "c", "chord":
		cmd.verb = verbChord
	default:
		return command{}, fmt.Errorf("unknown command %q", fields[0])
	}

	if len(fields) != 3 {
		return command{}, fmt.Errorf("usage: %s X Y", fields[0])
	}
	x, err := strconv.Atoi(fields[1])
	if err != nil {
		return command{}, fmt.Errorf("invalid column %q", fields[1])
	}
	y, err := strconv.Atoi(fields[2])
	if err != nil {
		return command{}, fmt.Errorf("invalid row %q", fields[2])
	}
	cmd.pos = grid.Point{X: x, Y: y}
	return cmd, nil
}

func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// playConsole reads commands from in until the game ends, input runs out or
// the player quits.
func playConsole(in io.Reader, out io.Writer, g *game.Game, prompt bool) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprintln(out, renderBoard(g))

	for g.CanPlay() {
		if prompt {
			fmt.Fprint(out, "> ")
		}
		if !scanner.Scan() {
			return scanner.Err()
		}

		cmd, err := parseCommand(scanner.Text())
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}

		switch cmd.verb {
		case verbQuit:
			return nil
		case verbGuess:
			result := g.Guess(cmd.pos)
			log.WithFields(log.Fields{"pos": cmd.pos, "revealed": len(result.Revealed)}).Debug("guess")
		case verbFlag:
			g.Flag(cmd.pos)
		case verbChord:
			result := g.Chord(cmd.pos)
			log.WithFields(log.Fields{"pos": cmd.pos, "revealed": len(result.Revealed)}).Debug("chord")
		}
		fmt.Fprintln(out, renderBoard(g))
	}
	return nil
}

func runDirector(out io.Writer, g *game.Game, director game.Director, delay time.Duration) {
	var acts int
	if delay <= 0 {
		acts = game.Play(g, director, 0)
	} else {
		director.Init(g)
		for g.CanPlay() && director.Act() {
			acts++
			fmt.Fprintln(out, renderBoard(g))
			time.Sleep(delay)
		}
	}

	log.WithFields(log.Fields{
		"acts":   acts,
		"status": g.Status(),
	}).Info("director finished")
	fmt.Fprintln(out, renderBoard(g))
}
