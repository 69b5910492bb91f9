package app

import (
	"context"
	"net/http"

	"github.com/shandysiswandi/gotracker/internal/activity"
	"github.com/shandysiswandi/gotracker/internal/admin"
	"github.com/shandysiswandi/gotracker/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/gotracker/internal/pkg/pkglog"
	"github.com/shandysiswandi/gotracker/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/gotracker/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/gotracker/internal/pkg/pkguid"
)

type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config pkgconfig.Config

	// libraries
	uuid      pkguid.StringID
	snowflake pkguid.NumberID
	goroutine *pkgroutine.Manager

	// resources
	activityBus   *activity.Bus
	activityStore *activity.Store
	adminRegistry *admin.Registry

	// server
	router     *pkgrouter.Router
	httpServer *http.Server

	//
	closerFn map[string]func(context.Context) error
}

func New() *App {
	pkglog.InitLogging()

	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initLibraries()
	app.initHTTPServer()
	app.initActivity()
	app.initModules()
	app.initClosers()

	return app
}
