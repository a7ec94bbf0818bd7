package history

import (
	"context"
	"log"
	"sync"

	"tuisearch/internal/eventbus"
)

// Recorder writes picked terms to a store and announces the updated recents
type Recorder struct {
	store Store
	bus   eventbus.EventBus
	limit int

	mu    sync.Mutex // serializes write then read
	unsub []func()
}

// NewRecorder subscribes a recorder to bus
func NewRecorder(store Store, bus eventbus.EventBus, limit int) *Recorder {
	r := &Recorder{store: store, bus: bus, limit: limit}
	r.unsub = append(r.unsub,
		bus.Subscribe(eventbus.EventTermSelected, r.onSelected),
		bus.Subscribe(eventbus.EventRecentsCleared, r.onCleared),
	)
	return r
}

// Publish announces the stored recents, used once at startup
func (r *Recorder) Publish(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.publish(ctx)
}

// Stop unsubscribes the recorder
func (r *Recorder) Stop() {
	for _, u := range r.unsub {
		u()
	}
	r.unsub = nil
}

func (r *Recorder) onSelected(e eventbus.DomainEvent) {
	event, ok := e.(eventbus.TermSelectedEvent)
	if !ok {
		return
	}
	ctx := context.Background()

	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.store.Add(ctx, event.Selection); err != nil {
		r.fail("Failed to save recent selection", err)
		return
	}
	if err := r.publish(ctx); err != nil {
		r.fail("Failed to load recent selections", err)
	}
}

func (r *Recorder) onCleared(eventbus.DomainEvent) {
	ctx := context.Background()

	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.store.Clear(ctx); err != nil {
		r.fail("Failed to clear recent selections", err)
		return
	}
	if err := r.publish(ctx); err != nil {
		r.fail("Failed to load recent selections", err)
	}
}

func (r *Recorder) publish(ctx context.Context) error {
	recent, err := r.store.Recent(ctx, r.limit)
	if err != nil {
		return err
	}
	terms := make([]string, len(recent))
	for i, sel := range recent {
		terms[i] = sel.Term
	}
	r.bus.Publish(eventbus.RecentsChangedEvent{Terms: terms})
	return nil
}

func (r *Recorder) fail(msg string, err error) {
	log.Printf("%s: %v", msg, err)
	r.bus.Publish(eventbus.ErrorEvent{Message: msg, Err: err})
}
