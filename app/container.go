package app

import (
	"image"
	"log/slog"

	"github.com/jonboulle/clockwork"
	"golang.org/x/image/font"

	"github.com/n1tr0xs/fire-danger-map/config"
	"github.com/n1tr0xs/fire-danger-map/domain/output"
	"github.com/n1tr0xs/fire-danger-map/domain/registry"
	"github.com/n1tr0xs/fire-danger-map/domain/render"
	"github.com/n1tr0xs/fire-danger-map/domain/task"
	"github.com/n1tr0xs/fire-danger-map/observability"
	"github.com/n1tr0xs/fire-danger-map/ui/model"
	"github.com/n1tr0xs/fire-danger-map/ui/presenter"
	"github.com/n1tr0xs/fire-danger-map/ui/view"
)

// eventBuffer lets the runner queue a few frames ahead of the UI tick.
const eventBuffer = 4

// Inputs are the startup artefacts the container is built from.
type Inputs struct {
	Template    image.Image
	Registry    *registry.Registry
	Coordinates registry.Coordinates
	Face        font.Face
	Clock       clockwork.Clock // nil means the real clock
}

// AppContainer assembles models, services, presenters and the root view.
type AppContainer struct {
	Config   *config.Config
	Logger   *slog.Logger
	Metrics  *observability.Metrics
	Registry *registry.Registry

	Form   *model.FormModel
	Run    *model.RunModel
	Timing *model.TimingModel

	Renderer *render.Renderer
	Runner   *task.Runner
	Saver    *output.Saver
	Revealer output.Revealer

	RootView *view.RootView
	UI       view.UI

	// Presenters
	RenderPresenter *presenter.RenderPresenter
	TimingPresenter *presenter.TimingPresenter
}

// BuildContainer constructs all components. It creates no widgets; the root
// view is built by the app once the Tk theme is active.
func BuildContainer(cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics, in Inputs) *AppContainer {
	reg := in.Registry
	if reg == nil {
		reg = registry.Empty()
	}
	c := &AppContainer{Config: cfg, Logger: logger, Metrics: metrics, Registry: reg}
	c.Form = model.NewFormModel(reg.Names())
	c.Run = &model.RunModel{}
	c.Timing = model.NewTimingModel()

	c.Renderer = render.New(render.Options{
		Registry:    reg,
		Coordinates: in.Coordinates,
		Template:    in.Template,
		Face:        in.Face,
		Logger:      logger,
	})
	c.Runner = task.NewRunner(logger, metrics, eventBuffer)
	c.Saver = output.NewSaver(cfg.OutputDir, cfg.Title, in.Clock, logger)
	c.Revealer = output.SystemRevealer{Logger: logger}

	c.RootView = view.NewRootView(reg, in.Template, cfg.PreviewHeight, cfg.UIFontSize, logger)
	c.UI = c.RootView

	c.RenderPresenter = presenter.NewRenderPresenter(presenter.RenderDeps{
		Form:     c.Form,
		Run:      c.Run,
		Runner:   c.Runner,
		Render:   c.Renderer.Render,
		Saver:    c.Saver,
		Revealer: c.Revealer,
		Metrics:  metrics,
		View:     c.UI,
		Logger:   logger,
	})
	c.TimingPresenter = presenter.NewTimingPresenter(c.Timing, c.RenderPresenter, c.UI)
	return c
}
