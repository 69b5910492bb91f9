package entity

// Event is a single calendar entry, optionally attached to a course.
type Event struct {
	ID        int64
	Title     string
	Location  string
	StartsAt  int64
	EndsAt    int64
	CourseID  int64 // 0 means the event is not attached to a course
	CreatedAt int64
}
