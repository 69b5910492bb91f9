package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/shandysiswandi/gotracker/internal/courses/entity"
	"github.com/shandysiswandi/gotracker/internal/pkg/pkgerror"
)

type InMemoryStore struct {
	mu      sync.RWMutex
	courses map[int64]entity.Course
	byCode  map[string]int64
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		courses: make(map[int64]entity.Course),
		byCode:  make(map[string]int64),
	}
}

func (s *InMemoryStore) Create(ctx context.Context, course entity.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.courses[course.ID]; exists {
		return pkgerror.NewBusiness("course already exists", pkgerror.CodeConflict)
	}

	code := strings.ToLower(course.Code)
	if _, exists := s.byCode[code]; exists {
		return pkgerror.NewBusiness("course code already taken", pkgerror.CodeConflict)
	}

	s.courses[course.ID] = course
	s.byCode[code] = course.ID

	return nil
}

func (s *InMemoryStore) Get(ctx context.Context, id int64) (entity.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	course, ok := s.courses[id]
	if !ok {
		return entity.Course{}, pkgerror.ErrNotFound
	}

	return course, nil
}

func (s *InMemoryStore) List(ctx context.Context) ([]entity.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Course, 0, len(s.courses))
	for _, course := range s.courses {
		out = append(out, course)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}
