package courses

import (
	"context"

	"github.com/shandysiswandi/gotracker/internal/activity"
	"github.com/shandysiswandi/gotracker/internal/admin"
	"github.com/shandysiswandi/gotracker/internal/courses/inbound"
	"github.com/shandysiswandi/gotracker/internal/courses/store"
	"github.com/shandysiswandi/gotracker/internal/courses/usecase"
	"github.com/shandysiswandi/gotracker/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/gotracker/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/gotracker/internal/pkg/pkguid"
)

type Dependency struct {
	Config  pkgconfig.Config
	Router  *pkgrouter.Router
	Admin   *admin.Registry
	Bus     *activity.Bus
	Context context.Context
	ID      pkguid.StringID
	NumID   pkguid.NumberID
}

// New wires the courses module: store, usecase, HTTP endpoints, and the
// admin registration. The returned usecase is handed to modules that need
// course lookups.
func New(dep Dependency) (*usecase.Usecase, error) {
	storage := store.NewInMemoryStore()

	if dep.ID == nil {
		dep.ID = pkguid.NewUUID()
	}

	uc := usecase.New(usecase.Dependency{
		Store:  storage,
		Events: dep.Bus,
		ID:     dep.ID,
		NumID:  dep.NumID,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	if dep.Admin != nil {
		err := dep.Admin.Register(admin.Registration{
			Model:        "courses",
			Presentation: admin.DefaultPresentation("id", "code", "title", "created_at"),
			List: func(ctx context.Context) ([]admin.Row, error) {
				courses, err := uc.List(ctx)
				if err != nil {
					return nil, err
				}

				rows := make([]admin.Row, 0, len(courses))
				for _, c := range courses {
					rows = append(rows, admin.Row{
						"id":         c.ID,
						"code":       c.Code,
						"title":      c.Title,
						"created_at": c.CreatedAt,
					})
				}
				return rows, nil
			},
		})
		if err != nil {
			return nil, err
		}
	}

	return uc, nil
}
