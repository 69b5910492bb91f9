package users

import (
	"context"
	"time"

	"github.com/shandysiswandi/gotracker/internal/admin"
	"github.com/shandysiswandi/gotracker/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/gotracker/internal/pkg/pkguid"
	"github.com/shandysiswandi/gotracker/internal/users/entity"
	"github.com/shandysiswandi/gotracker/internal/users/store"
)

type Dependency struct {
	Config  pkgconfig.Config
	Admin   *admin.Registry
	Context context.Context
	NumID   pkguid.NumberID
}

// New wires the users module. It has no HTTP surface of its own; it owns the
// user store and contributes the "users" and "user_settings" registrations
// to the management surface. Users get the extended presentation, settings
// the default one.
func New(dep Dependency) (*store.InMemoryStore, error) {
	storage := store.NewInMemoryStore()

	if err := seed(dep.Context, storage, dep.NumID); err != nil {
		return nil, err
	}

	if dep.Admin != nil {
		if err := registerAdmin(dep.Admin, storage); err != nil {
			return nil, err
		}
	}

	return storage, nil
}

func registerAdmin(registry *admin.Registry, storage *store.InMemoryStore) error {
	err := registry.Register(admin.Registration{
		Model: "users",
		Presentation: admin.Presentation{
			ListDisplay:  []string{"id", "username", "email", "first_name", "last_name", "is_staff"},
			SearchFields: []string{"username", "email", "first_name", "last_name"},
			Ordering:     "username",
			PerPage:      50,
		},
		List: func(ctx context.Context) ([]admin.Row, error) {
			users, err := storage.ListUsers(ctx)
			if err != nil {
				return nil, err
			}

			rows := make([]admin.Row, 0, len(users))
			for _, u := range users {
				rows = append(rows, admin.Row{
					"id":         u.ID,
					"username":   u.Username,
					"email":      u.Email,
					"first_name": u.FirstName,
					"last_name":  u.LastName,
					"is_staff":   u.IsStaff,
					"joined_at":  u.JoinedAt,
				})
			}
			return rows, nil
		},
	})
	if err != nil {
		return err
	}

	return registry.Register(admin.Registration{
		Model:        "user_settings",
		Presentation: admin.DefaultPresentation("user_id", "timezone", "locale", "email_reminders"),
		List: func(ctx context.Context) ([]admin.Row, error) {
			settings, err := storage.ListSettings(ctx)
			if err != nil {
				return nil, err
			}

			rows := make([]admin.Row, 0, len(settings))
			for _, s := range settings {
				rows = append(rows, admin.Row{
					"user_id":         s.UserID,
					"timezone":        s.Timezone,
					"locale":          s.Locale,
					"email_reminders": s.EmailReminders,
				})
			}
			return rows, nil
		},
	})
}

// seed fills the store with a small set of accounts so the management
// surface has data before any real user source is attached.
func seed(ctx context.Context, storage *store.InMemoryStore, numID pkguid.NumberID) error {
	if ctx == nil {
		ctx = context.Background()
	}

	nextID := func() int64 { return numID.Generate() }
	if numID == nil {
		var n int64
		nextID = func() int64 { n++; return n }
	}

	now := time.Now().Unix()

	seeds := []struct {
		user     entity.User
		settings entity.Settings
	}{
		{
			user: entity.User{
				ID: nextID(), Username: "admin", Email: "admin@example.com",
				FirstName: "Site", LastName: "Admin", IsStaff: true, JoinedAt: now,
			},
			settings: entity.Settings{Timezone: "UTC", Locale: "en", EmailReminders: true},
		},
		{
			user: entity.User{
				ID: nextID(), Username: "ana", Email: "ana@example.com",
				FirstName: "Ana", LastName: "Lima", JoinedAt: now,
			},
			settings: entity.Settings{Timezone: "America/Sao_Paulo", Locale: "pt", EmailReminders: true},
		},
		{
			user: entity.User{
				ID: nextID(), Username: "budi", Email: "budi@example.com",
				FirstName: "Budi", LastName: "Santoso", JoinedAt: now,
			},
			settings: entity.Settings{Timezone: "Asia/Jakarta", Locale: "id", EmailReminders: false},
		},
	}

	for _, s := range seeds {
		if err := storage.Put(ctx, s.user, s.settings); err != nil {
			return err
		}
	}

	return nil
}
