package app

import (
	"log/slog"
	"os"

	"github.com/shandysiswandi/gotracker/internal/admin/inbound"
	"github.com/shandysiswandi/gotracker/internal/calendar"
	calendarusecase "github.com/shandysiswandi/gotracker/internal/calendar/usecase"
	"github.com/shandysiswandi/gotracker/internal/courses"
	"github.com/shandysiswandi/gotracker/internal/users"
)

func (a *App) initModules() {
	var courseFinder calendarusecase.CourseFinder

	if a.config.GetBool("modules.courses.enabled") {
		uc, err := courses.New(courses.Dependency{
			Config:  a.config,
			Router:  a.router,
			Admin:   a.adminRegistry,
			Bus:     a.activityBus,
			Context: a.ctx,
			ID:      a.uuid,
			NumID:   a.snowflake,
		})
		if err != nil {
			slog.Error("failed to init module courses", "error", err)
			os.Exit(1)
		}
		courseFinder = uc
	}

	if a.config.GetBool("modules.calendar.enabled") {
		err := calendar.New(calendar.Dependency{
			Config:  a.config,
			Router:  a.router,
			Admin:   a.adminRegistry,
			Bus:     a.activityBus,
			Courses: courseFinder,
			Context: a.ctx,
			ID:      a.uuid,
			NumID:   a.snowflake,
		})
		if err != nil {
			slog.Error("failed to init module calendar", "error", err)
			os.Exit(1)
		}
	}

	if a.config.GetBool("modules.users.enabled") {
		if _, err := users.New(users.Dependency{
			Config:  a.config,
			Admin:   a.adminRegistry,
			Context: a.ctx,
			NumID:   a.snowflake,
		}); err != nil {
			slog.Error("failed to init module users", "error", err)
			os.Exit(1)
		}
	}

	if a.config.GetBool("modules.admin.enabled") {
		inbound.RegisterHTTPEndpoint(a.router, a.adminRegistry)
	}
}
