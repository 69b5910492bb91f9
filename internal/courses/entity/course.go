package entity

// Course is a taught course that events can be attached to.
type Course struct {
	ID        int64
	Code      string
	Title     string
	CreatedAt int64
}
