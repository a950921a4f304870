package presenter

import "time"

// Loop aggregates presenters and drives periodic updates from the Tk event
// loop. The zero value is usable (methods are nil-safe).
type Loop struct {
	Render   *RenderPresenter
	Timing   *TimingPresenter
	Schedule func()
	now      func() time.Time
}

func NewLoop(render *RenderPresenter, timing *TimingPresenter, schedule func()) *Loop {
	return &Loop{Render: render, Timing: timing, Schedule: schedule, now: time.Now}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	now := time.Now()
	if l.now != nil {
		now = l.now()
	}
	// Events first so the timing reflects a run that just finished.
	if l.Render != nil {
		l.Render.Tick(now)
	}
	if l.Timing != nil {
		l.Timing.Tick(now)
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}
