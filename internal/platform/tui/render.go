package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/termtris/internal/core"
	"github.com/vovakirdan/termtris/internal/games/tetris"
)

// colorStyles maps the game palette to lipgloss styles, so the text printed
// after a game uses the same colors as the panels drawn during it.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorFuchsia: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
}

func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorWhite]
}

// RenderSummary formats the report printed once the terminal is restored.
// best is the best recorded score including this game; a negative best
// means no score database is available.
func RenderSummary(stats tetris.Stats, best int) string {
	label := styleFor(core.ColorGreen).Bold(true)
	value := lipgloss.NewStyle().Bold(true)

	line := func(name string, v int) string {
		return label.Render(fmt.Sprintf("%-7s", name)) + " " + value.Render(fmt.Sprintf("%d", v))
	}

	rows := []string{
		styleFor(core.ColorYellow).Bold(true).Render("GAME OVER"),
		"",
		line("Score:", stats.Score),
		line("Lines:", stats.Lines),
		line("Level:", stats.Level),
	}
	if best >= 0 {
		rows = append(rows, line("Best:", best))
		if stats.Score > 0 && stats.Score >= best {
			rows = append(rows, "", styleFor(core.ColorFuchsia).Bold(true).Render("New high score!"))
		}
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 2)
	return box.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
