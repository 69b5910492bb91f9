package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/shandysiswandi/gotracker/internal/activity"
	"github.com/shandysiswandi/gotracker/internal/courses/entity"
	"github.com/shandysiswandi/gotracker/internal/pkg/pkgerror"
	"github.com/shandysiswandi/gotracker/internal/pkg/pkguid"
)

type Store interface {
	Create(ctx context.Context, course entity.Course) error
	Get(ctx context.Context, id int64) (entity.Course, error)
	List(ctx context.Context) ([]entity.Course, error)
}

type Publisher interface {
	Publish(ctx context.Context, rec activity.Record) error
}

type Clock interface {
	Now() time.Time
}

type Dependency struct {
	Store  Store
	Events Publisher
	Clock  Clock
	ID     pkguid.StringID
	NumID  pkguid.NumberID
}

type Usecase struct {
	store  Store
	events Publisher
	clock  Clock
	id     pkguid.StringID
	numID  pkguid.NumberID
}

func New(dep Dependency) *Usecase {
	clock := dep.Clock
	if clock == nil {
		clock = realClock{}
	}

	return &Usecase{
		store:  dep.Store,
		events: dep.Events,
		clock:  clock,
		id:     dep.ID,
		numID:  dep.NumID,
	}
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

type CreateInput struct {
	Code  string
	Title string
}

func (u *Usecase) Create(ctx context.Context, in CreateInput) (entity.Course, error) {
	if u.store == nil || u.numID == nil {
		return entity.Course{}, pkgerror.NewServer(errors.New("missing dependency"))
	}

	code := strings.TrimSpace(in.Code)
	title := strings.TrimSpace(in.Title)
	if code == "" {
		return entity.Course{}, pkgerror.NewInvalidInput(errors.New("code is required"))
	}
	if title == "" {
		return entity.Course{}, pkgerror.NewInvalidInput(errors.New("title is required"))
	}

	course := entity.Course{
		ID:        u.numID.Generate(),
		Code:      code,
		Title:     title,
		CreatedAt: u.clock.Now().Unix(),
	}

	if err := u.store.Create(ctx, course); err != nil {
		return entity.Course{}, normalizeErr(err)
	}

	u.publish(ctx, activity.Record{
		Kind:    "course.created",
		Subject: course.Title,
		RefID:   course.ID,
	})

	return course, nil
}

// Exists reports whether a course with the given id is stored.
func (u *Usecase) Exists(ctx context.Context, id int64) (bool, error) {
	if u.store == nil {
		return false, pkgerror.NewServer(errors.New("missing dependency"))
	}

	_, err := u.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, pkgerror.ErrNotFound) {
			return false, nil
		}
		return false, normalizeErr(err)
	}

	return true, nil
}

func (u *Usecase) List(ctx context.Context) ([]entity.Course, error) {
	if u.store == nil {
		return nil, pkgerror.NewServer(errors.New("missing dependency"))
	}

	courses, err := u.store.List(ctx)
	if err != nil {
		return nil, normalizeErr(err)
	}

	return courses, nil
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
		return pkgerror.NewNotFound("course does not exist")
	}
	return pkgerror.NewServer(err)
}
