package repository

import (
	"sort"
	"sync"

	"SqueezeWatch/internal/domain/models"
	domrepo "SqueezeWatch/internal/domain/repository"
)

// MemoryEventStore is a mutex-guarded in-memory append log of cycle
// observations keyed by ticker. Entries only ever accumulate; retention is
// the caller's concern.
type MemoryEventStore struct {
	mu     sync.RWMutex
	events map[string][]models.CycleEvent
}

// NewMemoryEventStore creates an empty event store.
func NewMemoryEventStore() *MemoryEventStore {
	return &MemoryEventStore{events: make(map[string][]models.CycleEvent)}
}

// Append adds an event to the ticker's log.
func (s *MemoryEventStore) Append(ticker string, event models.CycleEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[ticker] = append(s.events[ticker], event)
}

// List returns a copy of the ticker's log in append order.
func (s *MemoryEventStore) List(ticker string) []models.CycleEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	events := s.events[ticker]
	out := make([]models.CycleEvent, len(events))
	copy(out, events)
	return out
}

// Tickers returns the tickers with at least one event, sorted.
func (s *MemoryEventStore) Tickers() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.events))
	for t := range s.events {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

var _ domrepo.EventStore = (*MemoryEventStore)(nil)
