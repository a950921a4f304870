package presenter

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/n1tr0xs/fire-danger-map/domain/render"
	"github.com/n1tr0xs/fire-danger-map/domain/task"
	"github.com/n1tr0xs/fire-danger-map/ui/model"
)

// RenderFunc paints the map for the given per-station values.
type RenderFunc func(values map[string]int, emit func(render.Frame)) (*image.RGBA, error)

// Submitter narrows the background runner to what the presenter needs.
type Submitter interface {
	Submit(work task.Work) (string, error)
	Events() <-chan task.Event
}

// Saver persists a finished map and reports where and how much was written.
type Saver interface {
	Save(img image.Image) (path string, bytes int64, err error)
}

// Revealer shows a saved file in the system file browser.
type Revealer interface {
	Reveal(path string) error
}

// SaveRecorder counts saved files. *observability.Metrics satisfies it.
type SaveRecorder interface {
	FileSaved()
}

// RenderView is the slice of the root view driven by RenderPresenter.
type RenderView interface {
	FieldText(station string) string
	SetSubmitEnabled(enabled bool)
	SetRevealEnabled(enabled bool)
	ShowPreview(img image.Image)
	ResetPreview()
	SetStatus(text string)
	ShowError(title, msg, detail string)
}

// RenderPresenter owns the submit -> render -> save -> reveal flow. All
// methods must be called from the UI thread; the runner goroutine only
// communicates through its event channel.
type RenderPresenter struct {
	form     *model.FormModel
	run      *model.RunModel
	runner   Submitter
	renderFn RenderFunc
	saver    Saver
	revealer Revealer
	metrics  SaveRecorder
	view     RenderView
	logger   *slog.Logger

	runID   string
	pending task.Work // accepted submit not yet taken by the runner
}

// RenderDeps groups RenderPresenter collaborators.
type RenderDeps struct {
	Form     *model.FormModel
	Run      *model.RunModel
	Runner   Submitter
	Render   RenderFunc
	Saver    Saver
	Revealer Revealer
	Metrics  SaveRecorder
	View     RenderView
	Logger   *slog.Logger
}

func NewRenderPresenter(d RenderDeps) *RenderPresenter {
	run := d.Run
	if run == nil {
		run = &model.RunModel{}
	}
	return &RenderPresenter{
		form:     d.Form,
		run:      run,
		runner:   d.Runner,
		renderFn: d.Render,
		saver:    d.Saver,
		revealer: d.Revealer,
		metrics:  d.Metrics,
		view:     d.View,
		logger:   d.Logger,
	}
}

// Rendering reports whether a run is in flight.
func (p *RenderPresenter) Rendering() bool {
	return p != nil && p.run.State() == model.StateRendering
}

// Submit snapshots the form and starts a render. It is a no-op while a
// render is already in flight.
func (p *RenderPresenter) Submit() {
	if p == nil || p.runner == nil || p.renderFn == nil || p.view == nil {
		return
	}
	if !p.run.BeginRender() {
		p.debug("submit ignored, render in progress")
		return
	}
	p.view.SetSubmitEnabled(false)

	for _, s := range p.form.Stations() {
		p.form.SetText(s, p.view.FieldText(s))
	}
	values := p.form.Values()
	renderFn := p.renderFn
	p.pending = func(emit func(render.Frame)) (*image.RGBA, error) {
		return renderFn(values, emit)
	}
	p.start()
	if p.logger != nil && p.runID != "" {
		p.logger.Info("render submitted", "run_id", p.runID, "stations", len(values))
	}
}

// start hands the pending work to the runner. The runner stays busy for a
// moment after queueing the previous run's final event; in that case the
// work stays pending and is retried on the next tick.
func (p *RenderPresenter) start() {
	runID, err := p.runner.Submit(p.pending)
	if errors.Is(err, task.ErrBusy) {
		p.debug("runner still busy, submit deferred", "error", err)
		p.view.SetStatus("Ожидание завершения предыдущей генерации...")
		return
	}
	p.pending = nil
	if err != nil {
		p.logError("submit render", err)
		p.run.EndRender("")
		p.view.SetSubmitEnabled(true)
		p.view.ShowError("Ошибка", "Не удалось запустить генерацию", err.Error())
		return
	}
	p.runID = runID
	p.view.SetStatus("Генерация...")
}

// Tick drains every event currently queued by the runner without blocking,
// then retries a deferred submit.
func (p *RenderPresenter) Tick(now time.Time) {
	if p == nil || p.runner == nil {
		return
	}
	events := p.runner.Events()
drain:
	for {
		select {
		case ev := <-events:
			p.handle(ev)
		default:
			break drain
		}
	}
	if p.pending != nil {
		p.start()
	}
}

func (p *RenderPresenter) handle(ev task.Event) {
	if ev.RunID != p.runID {
		p.debug("stale event dropped", "run_id", ev.RunID, "kind", ev.Kind.String())
		return
	}
	switch ev.Kind {
	case task.EventProgress:
		p.onProgress(ev.Frame)
	case task.EventDone:
		p.onDone(ev)
	}
}

func (p *RenderPresenter) onProgress(f render.Frame) {
	if p.view == nil {
		return
	}
	p.view.ShowPreview(f.Image)
	p.view.SetStatus(fmt.Sprintf("Район %d/%d: %s", f.Seq, f.Total, f.Region))
}

func (p *RenderPresenter) onDone(ev task.Event) {
	p.runID = ""
	if ev.Err != nil {
		p.fail("Ошибка генерации", ev.Err.Type+": "+ev.Err.Value, ev.Err.Trace)
		return
	}
	if ev.Result == nil {
		p.fail("Ошибка генерации", "пустой результат", "")
		return
	}
	p.view.ShowPreview(ev.Result)
	if p.saver == nil {
		p.fail("Ошибка сохранения", "не задан каталог сохранения", "")
		return
	}
	path, size, err := p.saver.Save(ev.Result)
	if err != nil {
		p.logError("save map", err)
		p.fail("Ошибка сохранения", err.Error(), "")
		return
	}
	if p.metrics != nil {
		p.metrics.FileSaved()
	}
	p.run.EndRender(path)
	p.view.SetRevealEnabled(true)
	p.view.SetSubmitEnabled(true)
	p.view.SetStatus(fmt.Sprintf("Сохранено: %s (%s)", path, humanize.Bytes(uint64(size))))
}

// fail returns to idle, puts the base map back in the preview and surfaces
// the problem. A previously saved file stays revealable.
func (p *RenderPresenter) fail(title, msg, detail string) {
	p.run.EndRender("")
	p.view.ResetPreview()
	p.view.SetSubmitEnabled(true)
	p.view.SetRevealEnabled(p.run.CanReveal())
	p.view.SetStatus(title)
	p.view.ShowError(title, msg, detail)
}

// Reveal opens the file browser at the last saved map.
func (p *RenderPresenter) Reveal() {
	if p == nil || p.revealer == nil || !p.run.CanReveal() {
		return
	}
	if err := p.revealer.Reveal(p.run.SavedPath()); err != nil {
		p.logError("reveal map", err)
		if p.view != nil {
			p.view.ShowError("Ошибка", "Не удалось открыть папку с картинкой", err.Error())
		}
	}
}

func (p *RenderPresenter) debug(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Debug(msg, args...)
	}
}

func (p *RenderPresenter) logError(msg string, err error) {
	if p.logger != nil {
		p.logger.Error(msg, "error", err)
	}
}
