package app

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/rs/cors"
	"github.com/shandysiswandi/gotracker/internal/activity"
	"github.com/shandysiswandi/gotracker/internal/admin"
	"github.com/shandysiswandi/gotracker/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/gotracker/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/gotracker/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/gotracker/internal/pkg/pkguid"
)

func (a *App) initConfig() {
	path := "/config/config.yaml"
	if os.Getenv("LOCAL") == "true" {
		path = "./config/config.yaml"
	}

	cfg, err := pkgconfig.NewViper(path)
	if err != nil {
		slog.Error("failed to init config", "error", err)
		os.Exit(1)
	}

	//nolint:errcheck,gosec // ignore error
	os.Setenv("TZ", cfg.GetString("tz"))

	a.config = cfg
}

func (a *App) initLibraries() {
	a.goroutine = pkgroutine.NewManager(100)
	a.uuid = pkguid.NewUUID()

	snow, err := pkguid.NewSnowflake()
	if err != nil {
		slog.Error("failed to init snowflake generator", "error", err)
		os.Exit(1)
	}
	a.snowflake = snow
}

func (a *App) initHTTPServer() {
	a.router = pkgrouter.NewRouter(a.uuid)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	a.httpServer = &http.Server{
		Addr:              a.config.GetString("server.address.http"),
		Handler:           corsHandler.Handler(a.router),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func (a *App) initActivity() {
	a.adminRegistry = admin.NewRegistry()

	buffer := int(a.config.GetInt("activity.buffer"))
	a.activityBus = activity.NewBus(buffer)
	a.activityStore = activity.NewStore()

	consumer := activity.NewLogConsumer(a.activityBus, a.activityStore, activity.ConsumerConfig{
		Workers:     int(a.config.GetInt("activity.workers")),
		MaxRetries:  int(a.config.GetInt("activity.max_retries")),
		BaseBackoff: time.Duration(a.config.GetInt("activity.base_backoff_ms")) * time.Millisecond,
		Runner:      a.goroutine,
	})
	consumer.Start(a.ctx)

	if a.closerFn == nil {
		a.closerFn = map[string]func(context.Context) error{}
	}
	a.closerFn["Activity"] = consumer.Stop

	err := a.adminRegistry.Register(admin.Registration{
		Model:        "activity",
		Presentation: admin.DefaultPresentation("id", "kind", "subject", "ref_id", "at"),
		List: func(ctx context.Context) ([]admin.Row, error) {
			records, err := a.activityStore.List(ctx)
			if err != nil {
				return nil, err
			}

			rows := make([]admin.Row, 0, len(records))
			for _, rec := range records {
				rows = append(rows, admin.Row{
					"id":      rec.ID,
					"kind":    rec.Kind,
					"subject": rec.Subject,
					"ref_id":  rec.RefID,
					"at":      rec.At,
				})
			}
			return rows, nil
		},
	})
	if err != nil {
		slog.Error("failed to register activity model", "error", err)
		os.Exit(1)
	}
}

//nolint:unparam // is always nil
func (a *App) initClosers() {
	if a.closerFn == nil {
		a.closerFn = map[string]func(context.Context) error{}
	}

	a.closerFn["HTTP Server"] = func(ctx context.Context) error {
		return a.httpServer.Shutdown(ctx)
	}
	a.closerFn["Config"] = func(context.Context) error {
		return a.config.Close()
	}
}
