package calendar

import (
	"context"

	"github.com/shandysiswandi/gotracker/internal/activity"
	"github.com/shandysiswandi/gotracker/internal/admin"
	"github.com/shandysiswandi/gotracker/internal/calendar/inbound"
	"github.com/shandysiswandi/gotracker/internal/calendar/store"
	"github.com/shandysiswandi/gotracker/internal/calendar/usecase"
	"github.com/shandysiswandi/gotracker/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/gotracker/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/gotracker/internal/pkg/pkguid"
)

type Dependency struct {
	Config  pkgconfig.Config
	Router  *pkgrouter.Router
	Admin   *admin.Registry
	Bus     *activity.Bus
	Courses usecase.CourseFinder
	Context context.Context
	ID      pkguid.StringID
	NumID   pkguid.NumberID
}

func New(dep Dependency) error {
	storage := store.NewInMemoryStore()

	if dep.ID == nil {
		dep.ID = pkguid.NewUUID()
	}

	uc := usecase.New(usecase.Dependency{
		Store:   storage,
		Courses: dep.Courses,
		Events:  dep.Bus,
		ID:      dep.ID,
		NumID:   dep.NumID,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	if dep.Admin != nil {
		err := dep.Admin.Register(admin.Registration{
			Model:        "events",
			Presentation: admin.DefaultPresentation("id", "title", "location", "starts_at", "course_id"),
			List: func(ctx context.Context) ([]admin.Row, error) {
				result, err := uc.List(ctx, usecase.Filter{}, 1, 100)
				if err != nil {
					return nil, err
				}

				rows := make([]admin.Row, 0, len(result.Events))
				for _, e := range result.Events {
					rows = append(rows, admin.Row{
						"id":        e.ID,
						"title":     e.Title,
						"location":  e.Location,
						"starts_at": e.StartsAt,
						"course_id": e.CourseID,
					})
				}
				return rows, nil
			},
		})
		if err != nil {
			return err
		}
	}

	return nil
}
