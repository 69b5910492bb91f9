package activity

import (
	"context"
	"sync"
)

// Store keeps the activity log in memory, newest first.
type Store struct {
	mu      sync.RWMutex
	records []Record
}

func NewStore() *Store {
	return &Store{}
}

// Handle implements Handler by appending the record to the log.
func (s *Store) Handle(ctx context.Context, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append([]Record{rec}, s.records...)
	return nil
}

// List returns the logged records, newest first.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out, nil
}
