package ui

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tuisearch/internal/catalog"
	"tuisearch/internal/config"
	"tuisearch/internal/domain"
	"tuisearch/internal/eventbus"
	"tuisearch/searchbar"
)

const headerHeight = 1

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	faintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	termStyle   = lipgloss.NewStyle().Bold(true)
)

// Model is the demo application: a header, the search bar and a footer with
// the last action and key help
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	vm     *catalog.ViewModel
	search searchbar.Model[domain.Entry]

	keys keyMap
	help help.Model

	width  int
	height int

	status      string
	err         error
	inPagerMode bool // tracks if we're currently in pager mode

	// Program reference for terminal management
	program *tea.Program
	helpOps *HelpOps
}

// NewModel creates the demo model around vm
func NewModel(cfg *config.Config, vm *catalog.ViewModel, bus eventbus.EventBus) *Model {
	style := cfg.Style.Apply(searchbar.NewStyle())

	search := searchbar.New[domain.Entry](vm, entryRows).WithStyle(style)
	search.SetPosition(0, headerHeight)

	m := &Model{
		bus:    bus,
		config: cfg,
		vm:     vm,
		search: search,
		keys:   defaultKeyMap(),
		help:   help.New(),
		status: "Press / to search",
	}
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return m.search.Init()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.search.SetSize(m.width, m.searchHeight())
		return m, nil

	case tea.KeyMsg:
		if m.inPagerMode {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.ForceQuit), key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			return m, m.fetchHelpPager(renderHelpContent(m.footerKeys()))
		case key.Matches(msg, m.keys.ClearRecents):
			m.vm.ClearRecents()
			m.setStatus("Recent searches forgotten")
			return m, nil
		}
		return m.updateSearch(msg)

	case searchbar.SelectedMsg:
		m.setStatus(m.describeSelection(msg))
		return m, nil

	case searchbar.CancelledMsg:
		m.setStatus("Search cancelled")
		return m, nil

	case EventMsg:
		m.handleEvent(msg.Event)
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			log.Printf("Help pager failed: %v", msg.err)
			m.err = msg.err
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, tea.ClearScreen
	}

	return m.updateSearch(msg)
}

func (m *Model) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.keys.setEditing(m.search.IsEditing())
	return m, cmd
}

// handleEvent applies domain events forwarded from the bus
func (m *Model) handleEvent(event eventbus.DomainEvent) {
	switch e := event.(type) {
	case eventbus.ErrorEvent:
		m.err = fmt.Errorf("%s: %w", e.Message, e.Err)
	case eventbus.QueryChangedEvent:
		// Counts for an older query or a finished search arrive late; drop them
		if !m.search.IsEditing() || e.Query != m.vm.SearchTerm() {
			return
		}
		m.setStatus(matchesStatus(e.Query, e.Results))
	case eventbus.CatalogLoadedEvent:
		m.setStatus(fmt.Sprintf("Loaded %d terms from %s", e.Entries, e.Source))
	case eventbus.RecentsChangedEvent:
		// recents live in the view model; the next render picks them up
	}
}

func matchesStatus(query string, n int) string {
	noun := "matches"
	if n == 1 {
		noun = "match"
	}
	if query == "" {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %s for %q", n, noun, query)
}

func (m *Model) setStatus(status string) {
	m.status = status
	m.err = nil
}

func (m *Model) describeSelection(msg searchbar.SelectedMsg) string {
	if msg.Term == "" {
		return "Nothing to search for"
	}
	if e, ok := m.vm.Lookup(msg.Term); ok && e.Detail != "" {
		return fmt.Sprintf("Selected %s (%s) from %s", e.Term, e.Detail, msg.Source)
	}
	return fmt.Sprintf("Searched for %q from %s", msg.Term, msg.Source)
}

func (m *Model) footerKeys() footerKeys {
	return footerKeys{app: m.keys, search: m.search.KeyMap}
}

func (m *Model) footerHeight() int {
	if m.config.UI.ShowHelp {
		return 2
	}
	return 1
}

func (m *Model) searchHeight() int {
	h := m.height - headerHeight - m.footerHeight()
	if h < 1 {
		h = 1
	}
	return h
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.inPagerMode {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Height(m.searchHeight()).MaxHeight(m.searchHeight()).Render(m.renderBody()))
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	if m.config.UI.ShowHelp {
		b.WriteString("\n")
		b.WriteString(m.help.View(m.footerKeys()))
	}
	return b.String()
}

func (m *Model) renderHeader() string {
	info := fmt.Sprintf("%d terms · %d recent", m.vm.Len(), len(m.vm.RecentSearchSelections()))
	return titleStyle.Render("tuisearch") + "  " + faintStyle.Render(info)
}

// renderBody is the search bar, with the last pick below it while the list is closed
func (m *Model) renderBody() string {
	body := m.search.View()
	if m.search.ListVisible() {
		return body
	}

	last := m.vm.LastSelected()
	if last == "" {
		return body
	}

	lines := []string{body, "", " " + faintStyle.Render("Last search")}
	lines = append(lines, " "+termStyle.Render(last))
	if e, ok := m.vm.Lookup(last); ok && e.Detail != "" {
		lines = append(lines, " "+e.Detail)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderStatus() string {
	if m.err != nil {
		return errorStyle.Render("Error: " + m.err.Error())
	}
	return statusStyle.Render(m.status)
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	if m.program == nil {
		return func() tea.Msg { return helpPagerMsg{err: errNoProgram} }
	}
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})

		err := m.helpOps.ShowHelpInPager(helpContent)

		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}
