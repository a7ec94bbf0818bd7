package searchbar

import (
	"math"

	"github.com/charmbracelet/lipgloss"
)

// Fixed display strings
const (
	CancelLabel         = "Cancel"
	DefaultRecentsTitle = "Recents"
	DefaultResultsTitle = "Results"
)

// Unlimited is the default MaxResults
const Unlimited = math.MaxInt

// DefaultMaxRecents is the default MaxRecents
const DefaultMaxRecents = 3

// Style holds the optional overrides for a search bar.
// It is a value type: every modifier returns a copy with one field replaced and
// leaves the receiver untouched, so styles can be shared and chained freely.
//
//	style := searchbar.NewStyle().
//		Placeholder("Search...").
//		MaxRecents(5).
//		DisableDismissOnSelection()
type Style struct {
	placeholder               *string
	recentsSectionTitle       *string
	resultsSectionTitle       *string
	searchTextColor           lipgloss.TerminalColor
	searchTextBackgroundColor lipgloss.TerminalColor
	searchBarBackgroundColor  lipgloss.TerminalColor
	recentsTextColor          lipgloss.TerminalColor
	recentsBackgroundColor    lipgloss.TerminalColor
	resultsTextColor          lipgloss.TerminalColor
	resultsBackgroundColor    lipgloss.TerminalColor
	cancelButtonColor         lipgloss.TerminalColor
	maxRecents                int
	maxResults                int
	verticalPadding           int
	dismissOnSelection        bool
}

// NewStyle returns a style with every field at its default
func NewStyle() Style {
	return Style{
		maxRecents:         DefaultMaxRecents,
		maxResults:         Unlimited,
		dismissOnSelection: true,
	}
}

// Placeholder sets the placeholder text shown in the empty search field
func (s Style) Placeholder(placeholder string) Style {
	s.placeholder = &placeholder
	return s
}

// RecentsSectionTitle sets the title of the recents section, "Recents" if unused
func (s Style) RecentsSectionTitle(title string) Style {
	s.recentsSectionTitle = &title
	return s
}

// ResultsSectionTitle sets the title of the results section, "Results" if unused
func (s Style) ResultsSectionTitle(title string) Style {
	s.resultsSectionTitle = &title
	return s
}

// SearchTextColor sets the color of the text in the search field
func (s Style) SearchTextColor(c lipgloss.TerminalColor) Style {
	s.searchTextColor = c
	return s
}

// SearchTextBackgroundColor sets the background of the search field
func (s Style) SearchTextBackgroundColor(c lipgloss.TerminalColor) Style {
	s.searchTextBackgroundColor = c
	return s
}

// SearchBarBackgroundColor sets the background of the area around the search field
func (s Style) SearchBarBackgroundColor(c lipgloss.TerminalColor) Style {
	s.searchBarBackgroundColor = c
	return s
}

// RecentsTextColor sets the text color of recent items
func (s Style) RecentsTextColor(c lipgloss.TerminalColor) Style {
	s.recentsTextColor = c
	return s
}

// RecentsBackgroundColor sets the row background of the recents section
func (s Style) RecentsBackgroundColor(c lipgloss.TerminalColor) Style {
	s.recentsBackgroundColor = c
	return s
}

// ResultsTextColor sets the text color of result items
func (s Style) ResultsTextColor(c lipgloss.TerminalColor) Style {
	s.resultsTextColor = c
	return s
}

// ResultsBackgroundColor sets the row background of the results section
func (s Style) ResultsBackgroundColor(c lipgloss.TerminalColor) Style {
	s.resultsBackgroundColor = c
	return s
}

// CancelButtonColor sets the color of the Cancel button
func (s Style) CancelButtonColor(c lipgloss.TerminalColor) Style {
	s.cancelButtonColor = c
	return s
}

// MaxRecents sets the maximum number of rows in the recents section, 3 if unused
func (s Style) MaxRecents(n int) Style {
	s.maxRecents = n
	return s
}

// MaxResults sets the maximum number of rows in the results section, unlimited if unused
func (s Style) MaxResults(n int) Style {
	s.maxResults = n
	return s
}

// VerticalPadding adds blank rows above and below the search field
func (s Style) VerticalPadding(rows int) Style {
	s.verticalPadding = rows
	return s
}

// DisableDismissOnSelection keeps the list open and the field editing after an
// item is picked. Cancel is then the only way to close the list.
func (s Style) DisableDismissOnSelection() Style {
	s.dismissOnSelection = false
	return s
}

// GetPlaceholder returns the placeholder and whether one was set
func (s Style) GetPlaceholder() (string, bool) {
	if s.placeholder == nil {
		return "", false
	}
	return *s.placeholder, true
}

// GetRecentsSectionTitle returns the effective recents title
func (s Style) GetRecentsSectionTitle() string {
	if s.recentsSectionTitle == nil {
		return DefaultRecentsTitle
	}
	return *s.recentsSectionTitle
}

// GetResultsSectionTitle returns the effective results title
func (s Style) GetResultsSectionTitle() string {
	if s.resultsSectionTitle == nil {
		return DefaultResultsTitle
	}
	return *s.resultsSectionTitle
}

// GetSearchTextColor returns the effective search text color
func (s Style) GetSearchTextColor() lipgloss.TerminalColor {
	return orDefault(s.searchTextColor, LabelColor)
}

// GetSearchTextBackgroundColor returns the effective search field background
func (s Style) GetSearchTextBackgroundColor() lipgloss.TerminalColor {
	return orDefault(s.searchTextBackgroundColor, FieldBackgroundColor)
}

// GetSearchBarBackgroundColor returns the effective bar background
func (s Style) GetSearchBarBackgroundColor() lipgloss.TerminalColor {
	return orDefault(s.searchBarBackgroundColor, SystemBackgroundColor)
}

// GetRecentsTextColor returns the effective recents text color
func (s Style) GetRecentsTextColor() lipgloss.TerminalColor {
	return orDefault(s.recentsTextColor, LabelColor)
}

// GetRecentsBackgroundColor returns the effective recents row background
func (s Style) GetRecentsBackgroundColor() lipgloss.TerminalColor {
	return orDefault(s.recentsBackgroundColor, SystemBackgroundColor)
}

// GetResultsTextColor returns the effective results text color
func (s Style) GetResultsTextColor() lipgloss.TerminalColor {
	return orDefault(s.resultsTextColor, LabelColor)
}

// GetResultsBackgroundColor returns the effective results row background
func (s Style) GetResultsBackgroundColor() lipgloss.TerminalColor {
	return orDefault(s.resultsBackgroundColor, SystemBackgroundColor)
}

// GetCancelButtonColor returns the effective Cancel button color
func (s Style) GetCancelButtonColor() lipgloss.TerminalColor {
	return orDefault(s.cancelButtonColor, LinkColor)
}

// GetMaxRecents returns the configured recents cap
func (s Style) GetMaxRecents() int {
	return s.maxRecents
}

// GetMaxResults returns the configured results cap
func (s Style) GetMaxResults() int {
	return s.maxResults
}

// GetVerticalPadding returns the configured vertical padding
func (s Style) GetVerticalPadding() int {
	return s.verticalPadding
}

// GetDismissOnSelection reports whether picking an item closes the list
func (s Style) GetDismissOnSelection() bool {
	return s.dismissOnSelection
}

// placeholderColor is the placeholder tint: the text color at 30% over the field
func (s Style) placeholderColor() lipgloss.TerminalColor {
	return Fade(s.GetSearchTextColor(), s.GetSearchTextBackgroundColor(), placeholderOpacity)
}

// fieldButtonColor tints the magnifier and the clear button
func (s Style) fieldButtonColor() lipgloss.TerminalColor {
	if s.searchTextColor == nil {
		return SecondaryLabelColor
	}
	return Fade(s.searchTextColor, s.GetSearchTextBackgroundColor(), placeholderOpacity)
}

func orDefault(c, def lipgloss.TerminalColor) lipgloss.TerminalColor {
	if c == nil {
		return def
	}
	return c
}

// prefix returns at most n leading items; negative n counts as zero
func prefix[I any](items []I, n int) []I {
	if n <= 0 {
		return nil
	}
	if n >= len(items) {
		return items
	}
	return items[:n]
}
