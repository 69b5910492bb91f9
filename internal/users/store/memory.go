package store

import (
	"context"
	"sort"
	"sync"

	"github.com/shandysiswandi/gotracker/internal/pkg/pkgerror"
	"github.com/shandysiswandi/gotracker/internal/users/entity"
)

type InMemoryStore struct {
	mu       sync.RWMutex
	users    map[int64]entity.User
	settings map[int64]entity.Settings
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		users:    make(map[int64]entity.User),
		settings: make(map[int64]entity.Settings),
	}
}

func (s *InMemoryStore) Put(ctx context.Context, user entity.User, settings entity.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.ID]; exists {
		return pkgerror.NewBusiness("user already exists", pkgerror.CodeConflict)
	}

	settings.UserID = user.ID
	s.users[user.ID] = user
	s.settings[user.ID] = settings

	return nil
}

func (s *InMemoryStore) Get(ctx context.Context, id int64) (entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return entity.User{}, pkgerror.ErrNotFound
	}

	return user, nil
}

func (s *InMemoryStore) ListUsers(ctx context.Context) ([]entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.User, 0, len(s.users))
	for _, user := range s.users {
		out = append(out, user)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (s *InMemoryStore) ListSettings(ctx context.Context) ([]entity.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Settings, 0, len(s.settings))
	for _, settings := range s.settings {
		out = append(out, settings)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })

	return out, nil
}
