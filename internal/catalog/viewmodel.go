// Package catalog is the view model behind the demo search bar: it owns the
// search text, matches it against a list of terms and tracks recent picks.
package catalog

import (
	"log"
	"strings"
	"sync"
	"time"

	"tuisearch/internal/domain"
	"tuisearch/internal/eventbus"
)

// DefaultRecentsLimit bounds the recents list when no limit is given
const DefaultRecentsLimit = 10

// ViewModel implements searchbar.ViewModel[domain.Entry]
type ViewModel struct {
	mu sync.RWMutex

	entries []domain.Entry
	byTerm  map[string]domain.Entry

	term    string
	results []domain.Entry
	recents []domain.Entry
	limit   int
	last    string

	bus eventbus.EventBus
	now func() time.Time
}

// NewViewModel creates a view model over entries. The bus may be nil.
func NewViewModel(entries []domain.Entry, bus eventbus.EventBus, recentsLimit int) *ViewModel {
	if recentsLimit <= 0 {
		recentsLimit = DefaultRecentsLimit
	}

	vm := &ViewModel{
		entries: entries,
		byTerm:  make(map[string]domain.Entry, len(entries)),
		limit:   recentsLimit,
		bus:     bus,
		now:     time.Now,
	}
	for _, e := range entries {
		vm.byTerm[e.Term] = e
	}
	vm.results = Match(entries, "")
	return vm
}

// Listen keeps the recents in sync with the history store. Call the returned
// function to stop listening.
func (vm *ViewModel) Listen() func() {
	if vm.bus == nil {
		return func() {}
	}
	return vm.bus.Subscribe(eventbus.EventRecentsChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.RecentsChangedEvent); ok {
			vm.SetRecents(event.Terms)
		}
	})
}

// SearchTerm returns the current search text
func (vm *ViewModel) SearchTerm() string {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return vm.term
}

// SetSearchTerm updates the search text and the results
func (vm *ViewModel) SetSearchTerm(term string) {
	vm.mu.Lock()
	if term == vm.term {
		vm.mu.Unlock()
		return
	}
	vm.term = term
	vm.results = Match(vm.entries, term)
	count := len(vm.results)
	vm.mu.Unlock()

	vm.publish(eventbus.QueryChangedEvent{Query: term, Results: count})
}

// SearchResults returns the entries matching the search text
func (vm *ViewModel) SearchResults() []domain.Entry {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return vm.results
}

// RecentSearchSelections returns recently picked entries, newest first
func (vm *ViewModel) RecentSearchSelections() []domain.Entry {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return vm.recents
}

// SetSelectedSearchTerm records a pick. Blank terms are ignored.
func (vm *ViewModel) SetSelectedSearchTerm(term string) {
	term = strings.TrimSpace(term)
	if term == "" {
		return
	}

	vm.mu.Lock()
	vm.last = term
	vm.recents = pushRecent(vm.recents, vm.entry(term), vm.limit)
	vm.mu.Unlock()

	log.Printf("Selected search term %q", term)
	vm.publish(eventbus.TermSelectedEvent{
		Selection: domain.Selection{Term: term, SelectedAt: vm.now().UnixNano()},
	})
}

// LastSelected returns the most recent pick, empty if there was none
func (vm *ViewModel) LastSelected() string {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return vm.last
}

// Lookup returns the catalog entry for term
func (vm *ViewModel) Lookup(term string) (domain.Entry, bool) {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	e, ok := vm.byTerm[term]
	return e, ok
}

// SetRecents replaces the recents, newest first
func (vm *ViewModel) SetRecents(terms []string) {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	recents := make([]domain.Entry, 0, min(len(terms), vm.limit))
	for _, t := range terms {
		recents = pushBack(recents, vm.entry(t), vm.limit)
	}
	vm.recents = recents
}

// ClearRecents forgets all recent picks
func (vm *ViewModel) ClearRecents() {
	vm.mu.Lock()
	vm.recents = nil
	vm.mu.Unlock()

	vm.publish(eventbus.RecentsClearedEvent{})
}

// Len returns the number of catalog entries
func (vm *ViewModel) Len() int {
	return len(vm.entries)
}

// entry returns the catalog entry for term, or a bare entry for free text.
// Callers hold the lock.
func (vm *ViewModel) entry(term string) domain.Entry {
	if e, ok := vm.byTerm[term]; ok {
		return e
	}
	return domain.Entry{Term: term}
}

func (vm *ViewModel) publish(event eventbus.DomainEvent) {
	if vm.bus != nil {
		vm.bus.Publish(event)
	}
}

// pushRecent puts e in front, dropping an older copy and anything past limit
func pushRecent(recents []domain.Entry, e domain.Entry, limit int) []domain.Entry {
	out := make([]domain.Entry, 0, min(len(recents)+1, limit))
	out = append(out, e)
	for _, r := range recents {
		if len(out) == limit {
			break
		}
		if r.Term != e.Term {
			out = append(out, r)
		}
	}
	return out
}

// pushBack appends e unless it is already present or the list is full
func pushBack(recents []domain.Entry, e domain.Entry, limit int) []domain.Entry {
	if len(recents) == limit {
		return recents
	}
	for _, r := range recents {
		if r.Term == e.Term {
			return recents
		}
	}
	return append(recents, e)
}
