package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/they4kman/sweepcore/game"
	"github.com/they4kman/sweepcore/grid"
)

var (
	coveredStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	flagStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	wrongFlagStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Strikethrough(true)
	mineStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	losingStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("1"))
	axisStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	winStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	lossStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)

	numberStyles = [9]lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
)

// cellGlyph renders one cell. Mines and wrong flags only show once the game
// is over.
func cellGlyph(g *game.Game, p grid.Point) string {
	minefield := g.Minefield()
	state, _ := minefield.State(p)
	ended := !g.CanPlay()

	switch {
	case state.Contains(game.NonPlayable):
		return " "
	case state.Contains(game.Flag):
		if ended && !state.Contains(game.Mine) {
			return wrongFlagStyle.Render("F")
		}
		return flagStyle.Render("F")
	case state.Contains(game.Mine) && ended:
		if losing, ok := g.LosingMine(); ok && losing == p {
			return losingStyle.Render("*")
		}
		return mineStyle.Render("*")
	case state.Contains(game.Revealed):
		adjacency, _ := minefield.Adjacency(p)
		if adjacency == 0 {
			return numberStyles[0].Render(".")
		}
		return numberStyles[adjacency].Render(fmt.Sprint(adjacency))
	default:
		return coveredStyle.Render("#")
	}
}

func renderBoard(g *game.Game) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%03d", g.RemainingMines())
	switch g.Status() {
	case game.Win:
		b.WriteString("   " + winStyle.Render("WIN!"))
	case game.Loss:
		b.WriteString("   " + lossStyle.Render("LOSE :("))
	}
	b.WriteByte('\n')

	minefield := g.Minefield()
	for y := 0; y < minefield.Height(); y++ {
		b.WriteString(axisStyle.Render(fmt.Sprintf("%3d ", y)))
		for x := 0; x < minefield.Width(); x++ {
			b.WriteString(cellGlyph(g, grid.Point{X: x, Y: y}))
		}
		if y < minefield.Height()-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
