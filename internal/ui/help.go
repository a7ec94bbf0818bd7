package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

var errNoProgram = errors.New("program not set")

// helpSection is a titled group of bindings in the help page
type helpSection struct {
	title    string
	bindings []key.Binding
}

func helpSections(keys footerKeys) []helpSection {
	s := keys.search
	a := keys.app
	return []helpSection{
		{"Search", []key.Binding{s.Focus, s.Submit, s.Cancel, s.Clear}},
		{"Results", []key.Binding{s.Up, s.Down}},
		{"Other", []key.Binding{a.ClearRecents, a.Help, a.Quit}},
	}
}

// renderHelpContent builds the help page shown in the pager. Bindings are
// listed whether or not they are enabled right now.
func renderHelpContent(keys footerKeys) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99"))

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39"))

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("tuisearch Help"))
	help.WriteString("\n\n")

	for _, section := range helpSections(keys) {
		help.WriteString(sectionStyle.Render(section.title))
		help.WriteString("\n")
		for _, b := range section.bindings {
			h := b.Help()
			help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render(fmt.Sprintf("%-8s", h.Key)), descStyle.Render(h.Desc)))
		}
		help.WriteString("\n")
	}

	tipStyle := lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241"))
	help.WriteString(tipStyle.Render("  Click the field, a row, ✕ or Cancel with the mouse."))

	return help.String()
}

// HelpOps shows the help page in the ov pager
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h == nil || h.program == nil {
		return errNoProgram
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return fmt.Errorf("failed to release terminal: %w", err)
	}

	defer func() {
		// Let ov finish with the terminal first
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return fmt.Errorf("failed to open pager: %w", err)
	}

	// Don't leave the help text behind on our screen
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
