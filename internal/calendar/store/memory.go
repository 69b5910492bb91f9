package store

import (
	"context"
	"sort"
	"sync"

	"github.com/shandysiswandi/gotracker/internal/calendar/entity"
	"github.com/shandysiswandi/gotracker/internal/calendar/usecase"
	"github.com/shandysiswandi/gotracker/internal/pkg/pkgerror"
)

type InMemoryStore struct {
	mu     sync.RWMutex
	events map[int64]entity.Event
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		events: make(map[int64]entity.Event),
	}
}

func (s *InMemoryStore) Create(ctx context.Context, event entity.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.events[event.ID]; exists {
		return pkgerror.NewBusiness("event already exists", pkgerror.CodeConflict)
	}

	s.events[event.ID] = event

	return nil
}

func (s *InMemoryStore) Get(ctx context.Context, id int64) (entity.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	event, ok := s.events[id]
	if !ok {
		return entity.Event{}, pkgerror.ErrNotFound
	}

	return event, nil
}

func (s *InMemoryStore) List(ctx context.Context, filter usecase.Filter, page, pageSize int) ([]entity.Event, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]entity.Event, 0, len(s.events))
	for _, event := range s.events {
		if !filter.Matches(event) {
			continue
		}
		all = append(all, event)
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].StartsAt != all[j].StartsAt {
			return all[i].StartsAt < all[j].StartsAt
		}
		return all[i].ID < all[j].ID
	})

	total := len(all)

	// The division form bounds page before the multiplication, so an
	// arbitrarily large page is an empty page rather than an overflow.
	if page < 1 || pageSize < 1 || page-1 > (total-1)/pageSize {
		return []entity.Event{}, total, nil
	}

	start := (page - 1) * pageSize
	if start >= total {
		return []entity.Event{}, total, nil
	}

	end := start + pageSize
	if end > total {
		end = total
	}

	return all[start:end], total, nil
}
