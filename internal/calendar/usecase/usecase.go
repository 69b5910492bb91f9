package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shandysiswandi/gotracker/internal/activity"
	"github.com/shandysiswandi/gotracker/internal/calendar/entity"
	"github.com/shandysiswandi/gotracker/internal/pkg/pkgerror"
	"github.com/shandysiswandi/gotracker/internal/pkg/pkguid"
)

type Store interface {
	Create(ctx context.Context, event entity.Event) error
	Get(ctx context.Context, id int64) (entity.Event, error)
	List(ctx context.Context, filter Filter, page, pageSize int) ([]entity.Event, int, error)
}

// CourseFinder answers whether a course id refers to a stored course. A nil
// finder disables the check, for deployments running without the courses
// module.
type CourseFinder interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type Publisher interface {
	Publish(ctx context.Context, rec activity.Record) error
}

type Clock interface {
	Now() time.Time
}

type Dependency struct {
	Store   Store
	Courses CourseFinder
	Events  Publisher
	Clock   Clock
	ID      pkguid.StringID
	NumID   pkguid.NumberID
}

type Usecase struct {
	store   Store
	courses CourseFinder
	events  Publisher
	clock   Clock
	id      pkguid.StringID
	numID   pkguid.NumberID
}

func New(dep Dependency) *Usecase {
	clock := dep.Clock
	if clock == nil {
		clock = realClock{}
	}

	return &Usecase{
		store:   dep.Store,
		courses: dep.Courses,
		events:  dep.Events,
		clock:   clock,
		id:      dep.ID,
		numID:   dep.NumID,
	}
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

func (u *Usecase) Create(ctx context.Context, in CreateInput) (entity.Event, error) {
	if u.store == nil || u.numID == nil {
		return entity.Event{}, pkgerror.NewServer(errors.New("missing dependency"))
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return entity.Event{}, pkgerror.NewInvalidInput(errors.New("title is required"))
	}
	if in.StartsAt <= 0 {
		return entity.Event{}, pkgerror.NewInvalidInput(errors.New("starts_at is required"))
	}
	if in.EndsAt != 0 && in.EndsAt < in.StartsAt {
		return entity.Event{}, pkgerror.NewInvalidInput(errors.New("ends_at must not be before starts_at"))
	}

	if in.CourseID != 0 && u.courses != nil {
		ok, err := u.courses.Exists(ctx, in.CourseID)
		if err != nil {
			return entity.Event{}, normalizeErr(err)
		}
		if !ok {
			return entity.Event{}, pkgerror.NewInvalidInput(fmt.Errorf("course %d does not exist", in.CourseID))
		}
	}

	event := entity.Event{
		ID:        u.numID.Generate(),
		Title:     title,
		Location:  strings.TrimSpace(in.Location),
		StartsAt:  in.StartsAt,
		EndsAt:    in.EndsAt,
		CourseID:  in.CourseID,
		CreatedAt: u.clock.Now().Unix(),
	}

	if err := u.store.Create(ctx, event); err != nil {
		return entity.Event{}, normalizeErr(err)
	}

	u.publish(ctx, activity.Record{
		Kind:    "event.created",
		Subject: event.Title,
		RefID:   event.ID,
	})

	return event, nil
}

// Detail returns the stored event for the given id. A well-typed id with no
// stored record resolves to a not-found error; deciding anything else here
// would hide data problems behind a fabricated response.
func (u *Usecase) Detail(ctx context.Context, id int64) (entity.Event, error) {
	if u.store == nil {
		return entity.Event{}, pkgerror.NewServer(errors.New("missing dependency"))
	}

	event, err := u.store.Get(ctx, id)
	if err != nil {
		return entity.Event{}, normalizeErr(err)
	}

	return event, nil
}

func (u *Usecase) List(ctx context.Context, filter Filter, page, pageSize int) (ListResult, error) {
	if u.store == nil {
		return ListResult{}, pkgerror.NewServer(errors.New("missing dependency"))
	}

	events, total, err := u.store.List(ctx, filter, page, pageSize)
	if err != nil {
		return ListResult{}, normalizeErr(err)
	}

	return ListResult{
		Events:   events,
		Page:     page,
		PageSize: pageSize,
		Total:    total,
	}, nil
}

func (u *Usecase) publish(ctx context.Context, rec activity.Record) {
	if u.events == nil {
		return
	}

	if u.id != nil {
		rec.ID = u.id.Generate()
	}
	rec.At = u.clock.Now().Unix()

	if err := u.events.Publish(ctx, rec); err != nil {
		slog.WarnContext(ctx, "failed to publish activity record", "kind", rec.Kind, "error", err)
	}
}

func normalizeErr(err error) error {
	var gerr *pkgerror.Error
	if errors.As(err, &gerr) {
		return err
	}
	if errors.Is(err, pkgerror.ErrNotFound) {
		return pkgerror.NewNotFound("event does not exist")
	}
	return pkgerror.NewServer(err)
}
