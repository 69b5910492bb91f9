package inbound

import (
	"context"

	"github.com/shandysiswandi/gotracker/internal/calendar/entity"
	"github.com/shandysiswandi/gotracker/internal/calendar/usecase"
	"github.com/shandysiswandi/gotracker/internal/pkg/pkgrouter"
)

type uc interface {
	Create(ctx context.Context, in usecase.CreateInput) (entity.Event, error)
	Detail(ctx context.Context, id int64) (entity.Event, error)
	List(ctx context.Context, filter usecase.Filter, page, pageSize int) (usecase.ListResult, error)
}

func RegisterHTTPEndpoint(r *pkgrouter.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.GET("/", end.Calendar).Named("calendar")
	r.GET("/event/{event_id:int}/", end.EventDetail).Named("event_detail")

	r.POST("/events", end.CreateEvent).Named("event_create")
	r.GET("/events", end.Events).Named("event_list") // ?course_id=&page=&page_size=
}
