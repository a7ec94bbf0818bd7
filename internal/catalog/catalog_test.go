package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tuisearch/internal/domain"
	"tuisearch/internal/eventbus"
)

var testEntries = []domain.Entry{
	{Term: "Amsterdam", Detail: "Netherlands"},
	{Term: "Rotterdam", Detail: "Netherlands"},
	{Term: "Madrid", Detail: "Spain"},
	{Term: "Damascus", Detail: "Syria"},
}

func terms(entries []domain.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Term
	}
	return out
}

func TestParse(t *testing.T) {
	input := `# cities
Oslo	Norway

  Lima  
Oslo	duplicate
	only detail
Kyoto	Japan	extra
`
	entries, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []domain.Entry{
		{Term: "Oslo", Detail: "Norway"},
		{Term: "Lima"},
		{Term: "only detail"},
		{Term: "Kyoto", Detail: "Japan\textra"},
	}, entries)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "terms.txt")
	require.NoError(t, os.WriteFile(path, []byte("a\nb\tsecond\n"), 0644))

	entries, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, terms(entries))

	_, err = Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSampleHasUniqueTerms(t *testing.T) {
	seen := map[string]bool{}
	for _, e := range Sample() {
		assert.False(t, seen[e.Term], e.Term)
		seen[e.Term] = true
	}
	assert.NotEmpty(t, seen)
}

func TestMatch(t *testing.T) {
	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"Amsterdam", "Rotterdam", "Madrid", "Damascus"}},
		{"   ", []string{"Amsterdam", "Rotterdam", "Madrid", "Damascus"}},
		{"dam", []string{"Damascus", "Amsterdam", "Rotterdam"}},
		{"AMS", []string{"Amsterdam"}},
		{"nether", []string{"Amsterdam", "Rotterdam"}},
		{"a", []string{"Amsterdam", "Rotterdam", "Madrid", "Damascus"}},
		{"xyz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := Match(testEntries, tt.query)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, terms(got))
		})
	}
}

func TestMatchDoesNotAliasCatalog(t *testing.T) {
	entries := append([]domain.Entry(nil), testEntries...)
	got := Match(entries, "")
	got[0].Term = "changed"
	assert.Equal(t, "Amsterdam", entries[0].Term)
}

func TestViewModelSearch(t *testing.T) {
	vm := NewViewModel(testEntries, nil, 3)

	assert.Len(t, vm.SearchResults(), 4, "everything matches the empty text")

	vm.SetSearchTerm("mad")
	assert.Equal(t, "mad", vm.SearchTerm())
	assert.Equal(t, []string{"Madrid"}, terms(vm.SearchResults()))

	vm.SetSearchTerm("zzz")
	assert.Empty(t, vm.SearchResults())
	assert.Equal(t, 4, vm.Len())
}

func TestViewModelRecents(t *testing.T) {
	vm := NewViewModel(testEntries, nil, 3)

	vm.SetSelectedSearchTerm("Madrid")
	vm.SetSelectedSearchTerm("free text")
	vm.SetSelectedSearchTerm("Rotterdam")
	vm.SetSelectedSearchTerm("Madrid")
	vm.SetSelectedSearchTerm("Damascus")
	vm.SetSelectedSearchTerm("   ")

	recents := vm.RecentSearchSelections()
	assert.Equal(t, []string{"Damascus", "Madrid", "Rotterdam"}, terms(recents))
	assert.Equal(t, "Syria", recents[0].Detail)
	assert.Equal(t, "Damascus", vm.LastSelected())

	vm.ClearRecents()
	assert.Empty(t, vm.RecentSearchSelections())
}

func TestViewModelSetRecents(t *testing.T) {
	vm := NewViewModel(testEntries, nil, 2)

	vm.SetRecents([]string{"Amsterdam", "Amsterdam", "typed", "Madrid"})

	recents := vm.RecentSearchSelections()
	assert.Equal(t, []domain.Entry{{Term: "Amsterdam", Detail: "Netherlands"}, {Term: "typed"}}, recents)

	e, ok := vm.Lookup("Madrid")
	assert.True(t, ok)
	assert.Equal(t, "Spain", e.Detail)
	_, ok = vm.Lookup("typed")
	assert.False(t, ok)
}

func TestViewModelPublishesEvents(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()

	selected := make(chan eventbus.TermSelectedEvent, 1)
	bus.Subscribe(eventbus.EventTermSelected, func(e eventbus.DomainEvent) {
		selected <- e.(eventbus.TermSelectedEvent)
	})
	queries := make(chan eventbus.QueryChangedEvent, 1)
	bus.Subscribe(eventbus.EventQueryChanged, func(e eventbus.DomainEvent) {
		queries <- e.(eventbus.QueryChangedEvent)
	})

	vm := NewViewModel(testEntries, bus, 0)
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	vm.now = func() time.Time { return at }

	vm.SetSearchTerm("dam")
	select {
	case q := <-queries:
		assert.Equal(t, eventbus.QueryChangedEvent{Query: "dam", Results: 3}, q)
	case <-time.After(time.Second):
		t.Fatal("no query event")
	}

	vm.SetSelectedSearchTerm("Rotterdam")
	select {
	case s := <-selected:
		assert.Equal(t, domain.Selection{Term: "Rotterdam", SelectedAt: at.UnixNano()}, s.Selection)
	case <-time.After(time.Second):
		t.Fatal("no selection event")
	}
}

func TestViewModelListen(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()

	vm := NewViewModel(testEntries, bus, 5)
	stop := vm.Listen()
	defer stop()

	bus.Publish(eventbus.RecentsChangedEvent{Terms: []string{"Madrid", "Amsterdam"}})

	require.Eventually(t, func() bool {
		return len(vm.RecentSearchSelections()) == 2
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{"Madrid", "Amsterdam"}, terms(vm.RecentSearchSelections()))
}
