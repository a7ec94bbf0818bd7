package searchbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	searchIcon    = "⌕"
	clearIcon     = "✕"
	cursorMarker  = "› "
	defaultWidth  = 80
	minInputWidth = 1
)

// target is what a screen cell belongs to
type target int

const (
	targetNone target = iota
	targetField
	targetClear
	targetCancel
	targetRecent
	targetResult
)

// region is a clickable span on one line
type region struct {
	y, x0, x1 int
	target    target
	index     int
}

// frame is a rendered search bar plus the clickable regions in it
type frame struct {
	lines   []string
	regions []region
}

func (f frame) String() string {
	return strings.Join(f.lines, "\n")
}

// hitTest finds the region under a cell relative to the search bar origin
func (f frame) hitTest(x, y int) (region, bool) {
	// Later regions sit on top of earlier ones
	for i := len(f.regions) - 1; i >= 0; i-- {
		r := f.regions[i]
		if r.y == y && x >= r.x0 && x < r.x1 {
			return r, true
		}
	}
	return region{}, false
}

// listLine is one line of the dropdown list
type listLine struct {
	header bool
	title  string
	target target
	index  int // index within the section
	entry  int // index across both sections, counting recents first
}

// layout renders the search bar and records where everything landed
func (m Model[I]) layout() frame {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}

	var f frame
	m.layoutBar(&f, width)
	if m.ListVisible() {
		m.layoutList(&f, width)
	}
	return f
}

func (m Model[I]) layoutBar(f *frame, width int) {
	s := m.style
	bar := lipgloss.NewStyle().Background(s.GetSearchBarBackgroundColor())
	field := lipgloss.NewStyle().
		Foreground(s.GetSearchTextColor()).
		Background(s.GetSearchTextBackgroundColor())
	icon := field.Foreground(s.fieldButtonColor())

	cancel := ""
	if m.editing {
		cancel = bar.Foreground(s.GetCancelButtonColor()).Render(" " + CancelLabel + " ")
	}
	cancelWidth := lipgloss.Width(cancel)

	// margin | pad icon space | input | space clear pad | cancel | margin
	inputWidth := width - 2 - 4 - 3 - cancelWidth
	if inputWidth < minInputWidth {
		inputWidth = minInputWidth
	}

	input := m.input
	input.Width = inputWidth - 1 // leave a cell for the cursor
	inputView := field.Width(inputWidth).Render(ansi.Truncate(input.View(), inputWidth, ""))

	clearGlyph := " "
	if m.ClearVisible() {
		clearGlyph = clearIcon
	}

	var b strings.Builder
	x := 0
	write := func(seg string) (int, int) {
		start := x
		b.WriteString(seg)
		x += lipgloss.Width(seg)
		return start, x
	}

	pad := s.GetVerticalPadding()
	if pad < 0 {
		pad = 0
	}
	y := len(f.lines) + pad

	write(bar.Render(" "))
	fieldStart, _ := write(field.Render(" ") + icon.Render(searchIcon) + field.Render(" "))
	write(inputView)
	clearStart, fieldEnd := write(field.Render(" ") + icon.Render(clearGlyph) + field.Render(" "))
	cancelStart, cancelEnd := write(cancel)
	if rest := width - x; rest > 0 {
		write(bar.Render(strings.Repeat(" ", rest)))
	}
	line := ansi.Truncate(b.String(), width, "")

	blank := bar.Render(strings.Repeat(" ", width))
	for i := 0; i < pad; i++ {
		f.regions = append(f.regions, region{y: len(f.lines), x0: fieldStart, x1: fieldEnd, target: targetField})
		f.lines = append(f.lines, blank)
	}

	f.regions = append(f.regions, region{y: y, x0: fieldStart, x1: fieldEnd, target: targetField})
	if m.ClearVisible() {
		f.regions = append(f.regions, region{y: y, x0: clearStart, x1: fieldEnd, target: targetClear})
	}
	if cancel != "" {
		f.regions = append(f.regions, region{y: y, x0: cancelStart, x1: cancelEnd, target: targetCancel})
	}
	f.lines = append(f.lines, line)

	for i := 0; i < pad; i++ {
		f.regions = append(f.regions, region{y: len(f.lines), x0: fieldStart, x1: fieldEnd, target: targetField})
		f.lines = append(f.lines, blank)
	}
}

func (m Model[I]) layoutList(f *frame, width int) {
	s := m.style
	lines := m.listLines()

	recentRow := lipgloss.NewStyle().Background(s.GetRecentsBackgroundColor())
	resultRow := lipgloss.NewStyle().Background(s.GetResultsBackgroundColor())
	header := lipgloss.NewStyle().Faint(true).Bold(true)

	recents := m.VisibleRecents()
	results := m.VisibleResults()

	start, end := m.listWindow(len(f.lines), len(lines))
	for _, l := range lines[start:end] {
		y := len(f.lines)
		if l.header {
			f.lines = append(f.lines, ansi.Truncate(header.Render(" "+l.title), width, ""))
			continue
		}

		var row Row
		rowStyle := resultRow
		switch l.target {
		case targetRecent:
			row = m.rows(recents[l.index], s.recentsTextColor)
			rowStyle = recentRow
		case targetResult:
			row = m.rows(results[l.index], s.resultsTextColor)
		}

		marker := "  "
		if l.entry == m.cursor {
			marker = lipgloss.NewStyle().Bold(true).Foreground(s.GetCancelButtonColor()).Render(cursorMarker)
		}
		content := ansi.Truncate(marker+row.View(), width, "…")
		f.lines = append(f.lines, rowStyle.Width(width).Render(content))
		f.regions = append(f.regions, region{y: y, x0: 0, x1: width, target: l.target, index: l.index})
	}

	// The list takes the remaining height
	if m.height > 0 {
		filler := resultRow.Render(strings.Repeat(" ", width))
		for len(f.lines) < m.height {
			f.lines = append(f.lines, filler)
		}
	}
}

// listLines flattens the visible sections into lines
func (m Model[I]) listLines() []listLine {
	recents := m.VisibleRecents()
	results := m.VisibleResults()

	lines := make([]listLine, 0, len(recents)+len(results)+2)
	entry := 0
	// The section follows the model's recents, even when the cap hides every row
	if len(m.vm.RecentSearchSelections()) > 0 {
		lines = append(lines, listLine{header: true, title: m.style.GetRecentsSectionTitle()})
		for i := range recents {
			lines = append(lines, listLine{target: targetRecent, index: i, entry: entry})
			entry++
		}
	}
	lines = append(lines, listLine{header: true, title: m.style.GetResultsSectionTitle()})
	for i := range results {
		lines = append(lines, listLine{target: targetResult, index: i, entry: entry})
		entry++
	}
	return lines
}

// barHeight is the number of lines above the list
func (m Model[I]) barHeight() int {
	pad := m.style.GetVerticalPadding()
	if pad < 0 {
		pad = 0
	}
	return 1 + 2*pad
}

// listWindow returns the range of list lines that fit below the bar
func (m Model[I]) listWindow(used, total int) (int, int) {
	if m.height <= 0 {
		return 0, total
	}
	avail := m.height - used
	if avail <= 0 {
		return 0, 0
	}
	if total <= avail {
		return 0, total
	}
	start := m.offset
	if start > total-avail {
		start = total - avail
	}
	if start < 0 {
		start = 0
	}
	return start, start + avail
}

// ensureCursorVisible scrolls the list so the highlighted line is shown
func (m *Model[I]) ensureCursorVisible() {
	if m.height <= 0 || !m.ListVisible() {
		m.offset = 0
		return
	}
	avail := m.height - m.barHeight()
	if avail <= 0 {
		return
	}
	if m.cursor < 0 {
		m.offset = 0
		return
	}

	lines := m.listLines()
	line := 0
	for i, l := range lines {
		if !l.header && l.entry == m.cursor {
			line = i
			break
		}
	}
	// Keep the section header in view when on the first row of a section
	top := line
	if line > 0 && lines[line-1].header {
		top = line - 1
	}
	if top < m.offset {
		m.offset = top
	}
	if line >= m.offset+avail {
		m.offset = line - avail + 1
	}
}
