package searchbar

import tea "github.com/charmbracelet/bubbletea"

// Source tells how a search term was picked
type Source int

const (
	// SourceKeyboard means the text was submitted from the field
	SourceKeyboard Source = iota
	// SourceRecent means an item of the recents section was picked
	SourceRecent
	// SourceResult means an item of the results section was picked
	SourceResult
)

func (s Source) String() string {
	switch s {
	case SourceKeyboard:
		return "keyboard"
	case SourceRecent:
		return "recent"
	case SourceResult:
		return "result"
	default:
		return "unknown"
	}
}

// SelectedMsg is sent after a term was written to the view model with SetSelectedSearchTerm
type SelectedMsg struct {
	Term   string
	Source Source
}

// CancelledMsg is sent after the Cancel button reset the search bar
type CancelledMsg struct{}

func selectedCmd(term string, source Source) tea.Cmd {
	return func() tea.Msg {
		return SelectedMsg{Term: term, Source: source}
	}
}

func cancelledCmd() tea.Msg {
	return CancelledMsg{}
}
