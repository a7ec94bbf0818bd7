// Package searchbar provides a Bubble Tea search bar: a text field bound to a
// view model's search term and a dropdown list with a recents section and a
// results section.
//
// The search bar holds no search logic. The view model produces the results and
// tracks recents; the search bar renders them and reports what the user picked.
package searchbar

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ID identifies the search bar component
const ID = "SearchBar"

// Model is the search bar component.
// Like the bubbles components it is a value: Update returns the new model.
type Model[I Item] struct {
	// KeyMap can be replaced to change the bindings
	KeyMap KeyMap

	vm    ViewModel[I]
	rows  RowFunc[I]
	style Style
	input textinput.Model

	editing bool
	cursor  int // highlighted list entry, -1 when the field has the highlight
	offset  int // first visible list line

	x, y          int
	width, height int
}

// New creates a search bar bound to vm. A nil rows renders plain text rows.
func New[I Item](vm ViewModel[I], rows RowFunc[I]) Model[I] {
	if rows == nil {
		rows = TextRows[I]
	}

	ti := textinput.New()
	ti.Prompt = "" // the magnifier takes the prompt's place

	m := Model[I]{
		KeyMap: DefaultKeyMap(),
		vm:     vm,
		rows:   rows,
		input:  ti,
		cursor: -1,
	}
	m.KeyMap.setEditing(false)
	m.applyStyle(NewStyle())
	m.syncInput()
	return m
}

// ID returns the component identifier
func (m Model[I]) ID() string {
	return ID
}

// WithStyle returns a copy of the search bar using style
func (m Model[I]) WithStyle(style Style) Model[I] {
	m.applyStyle(style)
	return m
}

// Style returns the style in use
func (m Model[I]) Style() Style {
	return m.style
}

// SetSize sets the area the search bar may use. A height of 0 means unbounded.
func (m *Model[I]) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.ensureCursorVisible()
}

// SetPosition sets the screen position of the top-left corner, used to map
// mouse events onto the search bar
func (m *Model[I]) SetPosition(x, y int) {
	m.x = x
	m.y = y
}

// IsEditing reports whether the search field is being edited
func (m Model[I]) IsEditing() bool {
	return m.editing
}

// ListVisible reports whether the results list is shown.
// The list needs the field to be editing and at least one result.
func (m Model[I]) ListVisible() bool {
	return m.editing && len(m.vm.SearchResults()) > 0
}

// ClearVisible reports whether the clear button is shown
func (m Model[I]) ClearVisible() bool {
	return m.editing && m.vm.SearchTerm() != ""
}

// VisibleRecents returns the recent items currently rendered
func (m Model[I]) VisibleRecents() []I {
	if !m.ListVisible() {
		return nil
	}
	return prefix(m.vm.RecentSearchSelections(), m.style.maxRecents)
}

// VisibleResults returns the result items currently rendered
func (m Model[I]) VisibleResults() []I {
	if !m.ListVisible() {
		return nil
	}
	return prefix(m.vm.SearchResults(), m.style.maxResults)
}

// Cursor returns the highlighted list entry, -1 when none is highlighted.
// Recents come first, then results.
func (m Model[I]) Cursor() int {
	return m.cursor
}

// Focus starts editing, as tapping the field does
func (m *Model[I]) Focus() tea.Cmd {
	m.editing = true
	m.KeyMap.setEditing(true)
	return m.input.Focus()
}

// Clear empties the search text. It only acts while the clear button is shown.
func (m *Model[I]) Clear() tea.Cmd {
	if !m.ClearVisible() {
		return nil
	}
	m.vm.SetSearchTerm("")
	m.input.Reset()
	m.resetCursor()
	return nil
}

// Commit submits the current search text, as the keyboard search key does
func (m *Model[I]) Commit() tea.Cmd {
	if !m.editing {
		return nil
	}
	term := m.vm.SearchTerm()
	m.vm.SetSelectedSearchTerm(term)
	m.finish()
	return selectedCmd(term, SourceKeyboard)
}

// Cancel stops editing without selecting anything
func (m *Model[I]) Cancel() tea.Cmd {
	if !m.editing {
		return nil
	}
	m.finish()
	return cancelledCmd
}

// SelectRecent picks the i-th visible recent item
func (m *Model[I]) SelectRecent(i int) tea.Cmd {
	recents := m.VisibleRecents()
	if i < 0 || i >= len(recents) {
		return nil
	}
	return m.pick(recents[i].SearchTerm(), SourceRecent)
}

// SelectResult picks the i-th visible result item
func (m *Model[I]) SelectResult(i int) tea.Cmd {
	results := m.VisibleResults()
	if i < 0 || i >= len(results) {
		return nil
	}
	return m.pick(results[i].SearchTerm(), SourceResult)
}

// Init implements tea.Model
func (m Model[I]) Init() tea.Cmd {
	if m.editing {
		return textinput.Blink
	}
	return nil
}

// Update handles key, mouse and cursor blink messages
func (m Model[I]) Update(msg tea.Msg) (Model[I], tea.Cmd) {
	m.syncInput()

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	if !m.editing {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the search bar
func (m Model[I]) View() string {
	m.syncInput()
	return m.layout().String()
}

func (m Model[I]) handleKey(msg tea.KeyMsg) (Model[I], tea.Cmd) {
	if !m.editing {
		if key.Matches(msg, m.KeyMap.Focus) {
			return m, m.Focus()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.KeyMap.Cancel):
		return m, m.Cancel()
	case key.Matches(msg, m.KeyMap.Clear):
		return m, m.Clear()
	case key.Matches(msg, m.KeyMap.Up):
		m.moveCursor(-1)
		return m, nil
	case key.Matches(msg, m.KeyMap.Down):
		m.moveCursor(1)
		return m, nil
	case key.Matches(msg, m.KeyMap.Submit):
		if m.cursor >= 0 {
			return m, m.selectEntry(m.cursor)
		}
		return m, m.Commit()
	}

	// Everything else edits the text
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		m.vm.SetSearchTerm(after)
		m.resetCursor()
	}
	return m, cmd
}

func (m Model[I]) handleMouse(msg tea.MouseMsg) (Model[I], tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	hit, ok := m.layout().hitTest(msg.X-m.x, msg.Y-m.y)
	if !ok {
		return m, nil
	}

	switch hit.target {
	case targetField:
		if !m.editing {
			return m, m.Focus()
		}
	case targetClear:
		return m, m.Clear()
	case targetCancel:
		return m, m.Cancel()
	case targetRecent:
		return m, m.SelectRecent(hit.index)
	case targetResult:
		return m, m.SelectResult(hit.index)
	}
	return m, nil
}

// pick reports term to the view model and finishes unless dismissing is disabled
func (m *Model[I]) pick(term string, source Source) tea.Cmd {
	m.vm.SetSelectedSearchTerm(term)
	if m.style.dismissOnSelection {
		m.finish()
	}
	return selectedCmd(term, source)
}

// finish is the only way back to the idle state
func (m *Model[I]) finish() {
	m.vm.SetSearchTerm("")
	m.input.Reset()
	m.input.Blur()
	m.editing = false
	m.KeyMap.setEditing(false)
	m.resetCursor()
}

// selectEntry picks the n-th list entry, counting recents first
func (m *Model[I]) selectEntry(n int) tea.Cmd {
	recents := len(m.VisibleRecents())
	if n < recents {
		return m.SelectRecent(n)
	}
	return m.SelectResult(n - recents)
}

func (m *Model[I]) moveCursor(delta int) {
	total := len(m.VisibleRecents()) + len(m.VisibleResults())
	next := m.cursor + delta
	if next < -1 {
		next = -1
	}
	if next > total-1 {
		next = total - 1
	}
	m.cursor = next
	m.ensureCursorVisible()
}

func (m *Model[I]) resetCursor() {
	m.cursor = -1
	m.offset = 0
}

// syncInput copies the view model's search text into the text field.
// The view model owns the text and may change it between messages.
func (m *Model[I]) syncInput() {
	term := m.vm.SearchTerm()
	if m.input.Value() != term {
		m.input.SetValue(term)
		m.input.CursorEnd()
	}

	total := len(m.VisibleRecents()) + len(m.VisibleResults())
	if m.cursor > total-1 {
		m.cursor = total - 1
	}
}

func (m *Model[I]) applyStyle(style Style) {
	m.style = style

	placeholder, _ := style.GetPlaceholder()
	m.input.Placeholder = placeholder

	text := style.GetSearchTextColor()
	field := style.GetSearchTextBackgroundColor()
	m.input.TextStyle = m.input.TextStyle.Foreground(text).Background(field)
	m.input.PlaceholderStyle = m.input.PlaceholderStyle.Foreground(style.placeholderColor()).Background(field)
	m.input.Cursor.Style = m.input.Cursor.Style.Foreground(text)
	m.input.Cursor.TextStyle = m.input.Cursor.TextStyle.Background(field)
}
