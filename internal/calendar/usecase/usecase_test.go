package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shandysiswandi/gotracker/internal/activity"
	"github.com/shandysiswandi/gotracker/internal/calendar/entity"
	"github.com/shandysiswandi/gotracker/internal/pkg/pkgerror"
)

type fakeStore struct {
	events map[int64]entity.Event
}

func newFakeStore() *fakeStore {
	return &fakeStore{events: make(map[int64]entity.Event)}
}

func (s *fakeStore) Create(_ context.Context, event entity.Event) error {
	if _, exists := s.events[event.ID]; exists {
		return pkgerror.NewBusiness("event already exists", pkgerror.CodeConflict)
	}
	s.events[event.ID] = event
	return nil
}

func (s *fakeStore) Get(_ context.Context, id int64) (entity.Event, error) {
	event, ok := s.events[id]
	if !ok {
		return entity.Event{}, pkgerror.ErrNotFound
	}
	return event, nil
}

func (s *fakeStore) List(_ context.Context, filter Filter, page, pageSize int) ([]entity.Event, int, error) {
	out := make([]entity.Event, 0, len(s.events))
	for _, event := range s.events {
		if filter.Matches(event) {
			out = append(out, event)
		}
	}
	return out, len(out), nil
}

type fakeCourses struct {
	known map[int64]bool
}

func (f fakeCourses) Exists(_ context.Context, id int64) (bool, error) {
	return f.known[id], nil
}

type seqID struct{ n int64 }

func (s *seqID) Generate() int64 { s.n++; return s.n }

type fixedUUID struct{}

func (fixedUUID) Generate() string { return "uuid-1" }

type fixedClock struct{}

func (fixedClock) Now() time.Time { return time.Unix(1700000000, 0) }

type capturePublisher struct {
	records []activity.Record
}

func (p *capturePublisher) Publish(_ context.Context, rec activity.Record) error {
	p.records = append(p.records, rec)
	return nil
}

func newUsecase(store Store, courses CourseFinder, pub Publisher) *Usecase {
	return New(Dependency{
		Store:   store,
		Courses: courses,
		Events:  pub,
		Clock:   fixedClock{},
		ID:      fixedUUID{},
		NumID:   &seqID{},
	})
}

func TestCreateEvent(t *testing.T) {
	store := newFakeStore()
	pub := &capturePublisher{}
	uc := newUsecase(store, nil, pub)

	event, err := uc.Create(context.Background(), CreateInput{
		Title:    " Lecture ",
		Location: "Room 4",
		StartsAt: 1700001000,
		EndsAt:   1700004600,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if event.ID != 1 {
		t.Fatalf("unexpected id: %d", event.ID)
	}
	if event.Title != "Lecture" {
		t.Fatalf("expected trimmed title, got %q", event.Title)
	}

	if len(pub.records) != 1 {
		t.Fatalf("expected 1 activity record, got %d", len(pub.records))
	}
	if pub.records[0].Kind != "event.created" {
		t.Fatalf("unexpected record kind: %q", pub.records[0].Kind)
	}
}

func TestCreateEventValidation(t *testing.T) {
	uc := newUsecase(newFakeStore(), nil, nil)
	ctx := context.Background()

	if _, err := uc.Create(ctx, CreateInput{StartsAt: 100}); err == nil {
		t.Fatalf("expected error for missing title")
	}
	if _, err := uc.Create(ctx, CreateInput{Title: "Lecture"}); err == nil {
		t.Fatalf("expected error for missing starts_at")
	}
	if _, err := uc.Create(ctx, CreateInput{Title: "Lecture", StartsAt: 200, EndsAt: 100}); err == nil {
		t.Fatalf("expected error for ends_at before starts_at")
	}
}

func TestCreateEventCourseCheck(t *testing.T) {
	courses := fakeCourses{known: map[int64]bool{10: true}}
	uc := newUsecase(newFakeStore(), courses, nil)
	ctx := context.Background()

	if _, err := uc.Create(ctx, CreateInput{Title: "Lecture", StartsAt: 100, CourseID: 10}); err != nil {
		t.Fatalf("create with known course: %v", err)
	}

	_, err := uc.Create(ctx, CreateInput{Title: "Lecture", StartsAt: 100, CourseID: 99})
	if err == nil {
		t.Fatalf("expected error for unknown course")
	}

	var gerr *pkgerror.Error
	if !errors.As(err, &gerr) || gerr.Code() != pkgerror.CodeInvalidInput {
		t.Fatalf("expected invalid input error, got %v", err)
	}
}

func TestDetail(t *testing.T) {
	store := newFakeStore()
	uc := newUsecase(store, nil, nil)
	ctx := context.Background()

	created, err := uc.Create(ctx, CreateInput{Title: "Lecture", StartsAt: 100})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	event, err := uc.Detail(ctx, created.ID)
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if event.Title != "Lecture" {
		t.Fatalf("unexpected title: %q", event.Title)
	}

	_, err = uc.Detail(ctx, 404)
	if !errors.Is(err, pkgerror.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	var gerr *pkgerror.Error
	if !errors.As(err, &gerr) || gerr.Code() != pkgerror.CodeNotFound {
		t.Fatalf("expected structured not found error, got %v", err)
	}
}

func TestFilterMatches(t *testing.T) {
	event := entity.Event{ID: 1, CourseID: 10}

	if !(Filter{}).Matches(event) {
		t.Fatalf("expected empty filter to match")
	}
	if !(Filter{CourseID: 10}).Matches(event) {
		t.Fatalf("expected matching course filter to match")
	}
	if (Filter{CourseID: 11}).Matches(event) {
		t.Fatalf("expected mismatched course filter to reject")
	}
}
