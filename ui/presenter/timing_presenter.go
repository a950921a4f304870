package presenter

import (
	"time"

	"github.com/n1tr0xs/fire-danger-map/ui/model"
)

// RenderingSource reports whether a render is in flight.
type RenderingSource interface{ Rendering() bool }

// TimingView displays the current run duration and session totals.
type TimingView interface {
	SetTiming(run, total time.Duration, runs int)
}

// TimingPresenter feeds the timing model and pushes its values to the view.
type TimingPresenter struct {
	timing *model.TimingModel
	src    RenderingSource
	view   TimingView
}

func NewTimingPresenter(timing *model.TimingModel, src RenderingSource, view TimingView) *TimingPresenter {
	return &TimingPresenter{timing: timing, src: src, view: view}
}

// Tick advances the model and updates the view.
func (p *TimingPresenter) Tick(now time.Time) {
	if p == nil || p.timing == nil || p.src == nil || p.view == nil {
		return
	}
	p.timing.OnTick(p.src.Rendering(), now)
	p.view.SetTiming(p.timing.Values())
}
