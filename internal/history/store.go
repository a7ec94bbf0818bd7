// Package history keeps the terms the user picked so they can be offered as
// recent searches.
package history

import (
	"context"
	"sort"
	"sync"

	"tuisearch/internal/domain"
)

// Store persists recent selections. A term is kept once, with the time it was
// last picked.
type Store interface {
	Add(ctx context.Context, sel domain.Selection) error
	// Recent returns up to limit selections, newest first
	Recent(ctx context.Context, limit int) ([]domain.Selection, error)
	Clear(ctx context.Context) error
	Close() error
}

// MemoryStore is an in-memory implementation of Store
type MemoryStore struct {
	mu    sync.RWMutex
	terms map[string]int64
}

// NewMemoryStore creates an empty memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{terms: make(map[string]int64)}
}

func (s *MemoryStore) Add(_ context.Context, sel domain.Selection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if prev, ok := s.terms[sel.Term]; !ok || sel.SelectedAt >= prev {
		s.terms[sel.Term] = sel.SelectedAt
	}
	return nil
}

func (s *MemoryStore) Recent(_ context.Context, limit int) ([]domain.Selection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Selection, 0, len(s.terms))
	for term, at := range s.terms {
		out = append(out, domain.Selection{Term: term, SelectedAt: at})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SelectedAt != out[j].SelectedAt {
			return out[i].SelectedAt > out[j].SelectedAt
		}
		return out[i].Term < out[j].Term
	})
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *MemoryStore) Clear(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.terms = make(map[string]int64)
	return nil
}

func (s *MemoryStore) Close() error { return nil }
