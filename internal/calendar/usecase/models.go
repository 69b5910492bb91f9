package usecase

import "github.com/shandysiswandi/gotracker/internal/calendar/entity"

type CreateInput struct {
	Title    string
	Location string
	StartsAt int64
	EndsAt   int64
	CourseID int64
}

type ListResult struct {
	Events   []entity.Event
	Page     int
	PageSize int
	Total    int
}

// Filter narrows event listings. A zero CourseID matches every event.
type Filter struct {
	CourseID int64
}

func (f Filter) Matches(event entity.Event) bool {
	if f.CourseID != 0 && event.CourseID != f.CourseID {
		return false
	}
	return true
}
