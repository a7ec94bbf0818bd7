package searchbar

import "github.com/charmbracelet/lipgloss"

// Item is a value shown in the results list.
// Items are compared for identity, so they must be comparable.
type Item interface {
	comparable
	// SearchTerm is the text written back to the view model when the item is picked
	SearchTerm() string
}

// Text is the default Item for plain string results
type Text string

// SearchTerm returns the text itself
func (t Text) SearchTerm() string {
	return string(t)
}

// Texts converts plain strings into Text items
func Texts(terms ...string) []Text {
	items := make([]Text, len(terms))
	for i, term := range terms {
		items[i] = Text(term)
	}
	return items
}

// ViewModel is the object controlling the search bar.
// It owns the search text and the results; the search bar only reads them,
// clears the text when it finishes and reports picks through SetSelectedSearchTerm.
type ViewModel[I Item] interface {
	// SearchTerm returns the current bound search text
	SearchTerm() string
	// SetSearchTerm requests a change of the bound search text
	SetSearchTerm(term string)
	// SearchResults returns the results for the current search text
	SearchResults() []I
	// RecentSearchSelections returns recently picked items, most relevant first
	RecentSearchSelections() []I
	// SetSelectedSearchTerm is called when the user picks an item or submits the text
	SetSelectedSearchTerm(term string)
}

// NoRecents can be embedded by view models that don't track recent selections
type NoRecents[I Item] struct{}

// RecentSearchSelections always returns an empty list
func (NoRecents[I]) RecentSearchSelections() []I {
	return nil
}

// Row is one rendered entry of the results list
type Row interface {
	View() string
}

// RowFunc builds the row for an item. textColor is nil when no override is configured.
type RowFunc[I Item] func(item I, textColor lipgloss.TerminalColor) Row

// TextRow is the default text-only row
type TextRow struct {
	Text  string
	Color lipgloss.TerminalColor
}

// View renders the row text, tinted when a color was given
func (r TextRow) View() string {
	if r.Color == nil {
		return r.Text
	}
	return lipgloss.NewStyle().Foreground(r.Color).Render(r.Text)
}

// TextRows is the default RowFunc, rendering the item's search term
func TextRows[I Item](item I, textColor lipgloss.TerminalColor) Row {
	return TextRow{Text: item.SearchTerm(), Color: textColor}
}
