package inbound

import (
	"net/http"

	"github.com/shandysiswandi/gotracker/internal/calendar/entity"
)

type Event struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Location string `json:"location,omitempty"`
	StartsAt int64  `json:"starts_at"`
	EndsAt   int64  `json:"ends_at,omitempty"`
	CourseID int64  `json:"course_id,omitempty"`
}

func toHTTPEvent(event entity.Event) Event {
	return Event{
		ID:       event.ID,
		Title:    event.Title,
		Location: event.Location,
		StartsAt: event.StartsAt,
		EndsAt:   event.EndsAt,
		CourseID: event.CourseID,
	}
}

type CreateEventRequest struct {
	Title    string `json:"title"`
	Location string `json:"location"`
	StartsAt int64  `json:"starts_at"`
	EndsAt   int64  `json:"ends_at"`
	CourseID int64  `json:"course_id"`
}

type CreateEventResponse struct {
	ID int64 `json:"id"`
}

func (CreateEventResponse) StatusCode() int {
	return http.StatusCreated
}

func (CreateEventResponse) Message() string {
	return "event created"
}

type EventsResponse struct {
	Events   []Event `json:"events"`
	page     int
	pageSize int
	total    int
}

func (r EventsResponse) Meta() map[string]any {
	return map[string]any{
		"page":      r.page,
		"page_size": r.pageSize,
		"total":     r.total,
	}
}
