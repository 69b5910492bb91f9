package inbound

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/shandysiswandi/gotracker/internal/calendar/usecase"
	"github.com/shandysiswandi/gotracker/internal/pkg/pkgerror"
	"github.com/shandysiswandi/gotracker/internal/pkg/pkgrouter"
)

// LandingPayload is the plain-text body of the calendar landing view.
const LandingPayload = "Event calendar"

type HTTPEndpoint struct {
	uc uc
}

func (h *HTTPEndpoint) Calendar(context.Context, *http.Request) (any, error) {
	return LandingPayload, nil
}

// EventDetail renders the plain-text detail view for one event. The router
// already guarantees event_id parsed as an integer; an id with no stored
// event resolves to a 404 through the shared error path.
func (h *HTTPEndpoint) EventDetail(ctx context.Context, _ *http.Request) (any, error) {
	id, err := pkgrouter.GetIntParam(ctx, "event_id")
	if err != nil {
		return nil, pkgerror.NewServer(err)
	}

	event, err := h.uc.Detail(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := fmt.Sprintf("Details for event with id %d: %s", event.ID, event.Title)
	if event.Location != "" {
		detail += " at " + event.Location
	}

	return detail, nil
}

func (h *HTTPEndpoint) CreateEvent(ctx context.Context, r *http.Request) (any, error) {
	var req CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, pkgerror.NewInvalidFormat()
	}

	event, err := h.uc.Create(ctx, usecase.CreateInput{
		Title:    req.Title,
		Location: req.Location,
		StartsAt: req.StartsAt,
		EndsAt:   req.EndsAt,
		CourseID: req.CourseID,
	})
	if err != nil {
		return nil, err
	}

	return CreateEventResponse{ID: event.ID}, nil
}

func (h *HTTPEndpoint) Events(ctx context.Context, r *http.Request) (any, error) {
	query := r.URL.Query()

	filter := usecase.Filter{}
	if raw := query.Get("course_id"); raw != "" {
		courseID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || courseID < 1 {
			return nil, pkgerror.NewInvalidInput(errors.New("invalid course_id"))
		}
		filter.CourseID = courseID
	}

	page, pageSize, err := parsePagination(query.Get("page"), query.Get("page_size"))
	if err != nil {
		return nil, err
	}

	result, err := h.uc.List(ctx, filter, page, pageSize)
	if err != nil {
		return nil, err
	}

	events := make([]Event, 0, len(result.Events))
	for _, event := range result.Events {
		events = append(events, toHTTPEvent(event))
	}

	return EventsResponse{
		Events:   events,
		page:     result.Page,
		pageSize: result.PageSize,
		total:    result.Total,
	}, nil
}

func parsePagination(pageRaw, sizeRaw string) (int, int, error) {
	page := 1
	pageSize := 10

	if pageRaw != "" {
		value, err := strconv.Atoi(pageRaw)
		if err != nil || value < 1 {
			return 0, 0, pkgerror.NewInvalidInput(errors.New("invalid page"))
		}
		page = value
	}

	if sizeRaw != "" {
		value, err := strconv.Atoi(sizeRaw)
		if err != nil || value < 1 {
			return 0, 0, pkgerror.NewInvalidInput(errors.New("invalid page_size"))
		}
		if value > 100 {
			value = 100
		}
		pageSize = value
	}

	return page, pageSize, nil
}
