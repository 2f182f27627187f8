package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/twisty"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	solvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// recentMoves formats at most the last limit moves, with a leading
// ellipsis when some were cut.
func recentMoves(moves []twisty.Move, limit int) string {
	if len(moves) <= limit {
		return twisty.FormatMoves(moves)
	}
	return "... " + twisty.FormatMoves(moves[len(moves)-limit:])
}
