package ui

import (
	"github.com/charmbracelet/lipgloss"

	"tuisearch/internal/domain"
	"tuisearch/searchbar"
)

var detailStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// entryRow shows the term and, dimmed, its detail
type entryRow struct {
	entry domain.Entry
	color lipgloss.TerminalColor
}

func (r entryRow) View() string {
	term := searchbar.TextRow{Text: r.entry.Term, Color: r.color}.View()
	if r.entry.Detail == "" {
		return term
	}
	return term + "  " + detailStyle.Render(r.entry.Detail)
}

func entryRows(e domain.Entry, textColor lipgloss.TerminalColor) searchbar.Row {
	return entryRow{entry: e, color: textColor}
}
