package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/n1tr0xs/fire-danger-map/config"
	"github.com/n1tr0xs/fire-danger-map/debug"
	"github.com/n1tr0xs/fire-danger-map/observability"
	"github.com/n1tr0xs/fire-danger-map/ui/presenter"
	"github.com/n1tr0xs/fire-danger-map/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

const (
	tick          = 50 * time.Millisecond
	debugInterval = 5 * time.Second
)

type app struct {
	cfg          *config.Config
	logger       *slog.Logger
	c            *AppContainer
	loop         *presenter.Loop
	afterID      string
	settingsPath string
	metricsSrv   *observability.Server
	stopDebug    context.CancelFunc
}

// NewApp prepares the main window. Widgets are created in Start.
func NewApp(c *AppContainer) *app {
	a := &app{cfg: c.Config, logger: c.Logger, c: c}

	App.WmTitle(a.cfg.WindowTitle)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)

	path, err := config.SettingsPath(config.Organization, config.Application)
	if err != nil {
		a.logger.Warn("window settings location unavailable", "error", err)
	} else {
		a.settingsPath = path
	}
	return a
}

// Start builds the UI, starts the update loop and blocks until the window
// is closed.
func (a *app) Start() {
	theme.InitStyles()
	a.c.RootView.Build(a.c.RenderPresenter.Submit, a.c.RenderPresenter.Reveal)
	a.restoreGeometry()

	if a.cfg.MetricsAddr != "" {
		a.metricsSrv = observability.NewServer(a.cfg.MetricsAddr, nil, a.logger)
		a.metricsSrv.Start()
	}
	if a.cfg.Debug {
		ctx, cancel := context.WithCancel(context.Background())
		a.stopDebug = cancel
		debug.StartRuntimeLogger(ctx, debugInterval, a.logger)
	}

	a.loop = presenter.NewLoop(a.c.RenderPresenter, a.c.TimingPresenter, a.scheduleUpdate)
	a.scheduleUpdate()

	App.Wait()
}

func (a *app) restoreGeometry() {
	if a.settingsPath == "" {
		return
	}
	s, err := config.LoadWindowSettings(a.settingsPath)
	if err != nil {
		a.logger.Warn("window settings unreadable, using default geometry", "path", a.settingsPath, "error", err)
		return
	}
	if s.Geometry != "" {
		WmGeometry(App, s.Geometry)
	}
}

func (a *app) saveGeometry() {
	if a.settingsPath == "" {
		return
	}
	s := config.WindowSettings{Geometry: WmGeometry(App)}
	if err := s.Save(a.settingsPath); err != nil {
		a.logger.Warn("save window settings", "path", a.settingsPath, "error", err)
	}
}

func (a *app) exitHandler() {
	// Cancel scheduled after event if any.
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
	}
	a.saveGeometry()
	if a.stopDebug != nil {
		a.stopDebug()
	}
	if a.metricsSrv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := a.metricsSrv.Shutdown(ctx); err != nil {
			a.logger.Warn("metrics server shutdown", "error", err)
		}
		cancel()
	}
	if a.c.RenderPresenter.Rendering() {
		a.logger.Warn("closing while a render is in progress; the result is discarded")
	}
	Destroy(App)
}

func (a *app) scheduleUpdate() {
	// Schedule the next update using TclAfter to stay on Tk's event loop thread.
	a.afterID = TclAfter(tick, func() { a.loop.Tick() })
}
