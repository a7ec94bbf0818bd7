package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"tuisearch/searchbar"
)

// Color is a color as written in the config file: "#rrggbb", an ANSI code
// from "0" to "255", or "light|dark" for a color that follows the terminal background
type Color string

// TerminalColor converts c to a lipgloss color. The empty color is nil.
func (c Color) TerminalColor() lipgloss.TerminalColor {
	if c == "" {
		return nil
	}
	if light, dark, ok := strings.Cut(string(c), "|"); ok {
		return lipgloss.AdaptiveColor{Light: strings.TrimSpace(light), Dark: strings.TrimSpace(dark)}
	}
	return lipgloss.Color(strings.TrimSpace(string(c)))
}

func (c Color) validate() error {
	if c == "" {
		return nil
	}
	parts := strings.Split(string(c), "|")
	if len(parts) > 2 {
		return fmt.Errorf("color %q: expected at most one '|'", c)
	}
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if strings.HasPrefix(p, "#") {
			if _, err := colorful.Hex(p); err != nil {
				return fmt.Errorf("color %q: %w", c, err)
			}
			continue
		}
		if n, err := strconv.Atoi(p); err != nil || n < 0 || n > 255 {
			return fmt.Errorf("color %q: want #rrggbb or an ANSI code 0-255", c)
		}
	}
	return nil
}

// StyleConfig mirrors the search bar style options. Unset options keep the
// search bar defaults.
type StyleConfig struct {
	Placeholder               *string `toml:"placeholder,omitempty"`
	RecentsSectionTitle       *string `toml:"recents_section_title,omitempty"`
	ResultsSectionTitle       *string `toml:"results_section_title,omitempty"`
	SearchTextColor           Color   `toml:"search_text_color,omitempty"`
	SearchTextBackgroundColor Color   `toml:"search_text_background_color,omitempty"`
	SearchBarBackgroundColor  Color   `toml:"search_bar_background_color,omitempty"`
	RecentsTextColor          Color   `toml:"recents_text_color,omitempty"`
	RecentsBackgroundColor    Color   `toml:"recents_background_color,omitempty"`
	ResultsTextColor          Color   `toml:"results_text_color,omitempty"`
	ResultsBackgroundColor    Color   `toml:"results_background_color,omitempty"`
	CancelButtonColor         Color   `toml:"cancel_button_color,omitempty"`
	MaxRecents                *int    `toml:"max_recents,omitempty"`
	MaxResults                *int    `toml:"max_results,omitempty"` // unset is unlimited
	VerticalPadding           *int    `toml:"vertical_padding,omitempty"`
	DismissOnSelection        *bool   `toml:"dismiss_on_selection,omitempty"`
}

func (sc StyleConfig) colors() map[string]Color {
	return map[string]Color{
		"search_text_color":            sc.SearchTextColor,
		"search_text_background_color": sc.SearchTextBackgroundColor,
		"search_bar_background_color":  sc.SearchBarBackgroundColor,
		"recents_text_color":           sc.RecentsTextColor,
		"recents_background_color":     sc.RecentsBackgroundColor,
		"results_text_color":           sc.ResultsTextColor,
		"results_background_color":     sc.ResultsBackgroundColor,
		"cancel_button_color":          sc.CancelButtonColor,
	}
}

func (sc StyleConfig) validate() error {
	for name, c := range sc.colors() {
		if err := c.validate(); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

// Apply runs the modifiers for every configured option on s
func (sc StyleConfig) Apply(s searchbar.Style) searchbar.Style {
	if sc.Placeholder != nil {
		s = s.Placeholder(*sc.Placeholder)
	}
	if sc.RecentsSectionTitle != nil {
		s = s.RecentsSectionTitle(*sc.RecentsSectionTitle)
	}
	if sc.ResultsSectionTitle != nil {
		s = s.ResultsSectionTitle(*sc.ResultsSectionTitle)
	}

	colors := []struct {
		value  Color
		modify func(searchbar.Style, lipgloss.TerminalColor) searchbar.Style
	}{
		{sc.SearchTextColor, searchbar.Style.SearchTextColor},
		{sc.SearchTextBackgroundColor, searchbar.Style.SearchTextBackgroundColor},
		{sc.SearchBarBackgroundColor, searchbar.Style.SearchBarBackgroundColor},
		{sc.RecentsTextColor, searchbar.Style.RecentsTextColor},
		{sc.RecentsBackgroundColor, searchbar.Style.RecentsBackgroundColor},
		{sc.ResultsTextColor, searchbar.Style.ResultsTextColor},
		{sc.ResultsBackgroundColor, searchbar.Style.ResultsBackgroundColor},
		{sc.CancelButtonColor, searchbar.Style.CancelButtonColor},
	}
	for _, c := range colors {
		if c.value != "" {
			s = c.modify(s, c.value.TerminalColor())
		}
	}

	if sc.MaxRecents != nil {
		s = s.MaxRecents(*sc.MaxRecents)
	}
	if sc.MaxResults != nil {
		s = s.MaxResults(*sc.MaxResults)
	}
	if sc.VerticalPadding != nil {
		s = s.VerticalPadding(*sc.VerticalPadding)
	}
	if sc.DismissOnSelection != nil && !*sc.DismissOnSelection {
		s = s.DisableDismissOnSelection()
	}
	return s
}
