package entity

// User is an account known to the tracker.
type User struct {
	ID        int64
	Username  string
	Email     string
	FirstName string
	LastName  string
	IsStaff   bool
	JoinedAt  int64
}

// Settings holds the per-user preferences.
type Settings struct {
	UserID         int64
	Timezone       string
	Locale         string
	EmailReminders bool
}
