package activity

// Record describes one change applied to tracked data.
//
// ID is unique per change and is what the consumer dedupes on. Kind is a
// dotted verb such as "event.created" or "course.created". RefID is the
// numeric id of the affected entity.
type Record struct {
	ID      string
	Kind    string
	Subject string
	RefID   int64
	At      int64
}
