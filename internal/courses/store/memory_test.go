package store

import (
	"context"
	"errors"
	"testing"

	"github.com/shandysiswandi/gotracker/internal/courses/entity"
	"github.com/shandysiswandi/gotracker/internal/pkg/pkgerror"
)

func TestCreateAndGet(t *testing.T) {
	s := NewInMemoryStore()
	ctx := context.Background()

	course := entity.Course{ID: 1, Code: "GO101", Title: "Intro to Go"}
	if err := s.Create(ctx, course); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := s.Get(ctx, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "Intro to Go" {
		t.Fatalf("unexpected title: %q", got.Title)
	}
}

func TestCreateConflicts(t *testing.T) {
	s := NewInMemoryStore()
	ctx := context.Background()

	if err := s.Create(ctx, entity.Course{ID: 1, Code: "GO101", Title: "Intro"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := s.Create(ctx, entity.Course{ID: 1, Code: "GO201", Title: "Other"}); err == nil {
		t.Fatalf("expected conflict on duplicate id")
	}
	if err := s.Create(ctx, entity.Course{ID: 2, Code: "go101", Title: "Other"}); err == nil {
		t.Fatalf("expected conflict on duplicate code")
	}
}

func TestGetMissing(t *testing.T) {
	s := NewInMemoryStore()

	_, err := s.Get(context.Background(), 99)
	if !errors.Is(err, pkgerror.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListSortedByID(t *testing.T) {
	s := NewInMemoryStore()
	ctx := context.Background()

	for _, c := range []entity.Course{
		{ID: 3, Code: "C3", Title: "Three"},
		{ID: 1, Code: "C1", Title: "One"},
		{ID: 2, Code: "C2", Title: "Two"},
	} {
		if err := s.Create(ctx, c); err != nil {
			t.Fatalf("create %d: %v", c.ID, err)
		}
	}

	courses, err := s.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(courses) != 3 {
		t.Fatalf("expected 3 courses, got %d", len(courses))
	}
	for i, want := range []int64{1, 2, 3} {
		if courses[i].ID != want {
			t.Fatalf("position %d: expected id %d, got %d", i, want, courses[i].ID)
		}
	}
}
