package model

import (
	"time"
)

// TimingModel tracks the duration of the current (or last) render and the
// accumulated render time of the session. Presenters feed it on every tick.
// The zero value is ready to use.
type TimingModel struct {
	active      bool
	runStart    time.Time
	lastRun     time.Duration
	accumulated time.Duration
	runs        int
}

// NewTimingModel returns a pointer to a ready-to-use TimingModel.
func NewTimingModel() *TimingModel { return &TimingModel{} }

// OnTick updates the model using the current render state and timestamp.
func (m *TimingModel) OnTick(rendering bool, now time.Time) {
	if m == nil {
		return
	}
	if rendering {
		if !m.active { // transition idle -> rendering
			m.active = true
			m.runStart = now
			m.lastRun = 0
			m.runs++
		}
		m.lastRun = now.Sub(m.runStart)
	} else if m.active { // transition rendering -> idle
		m.lastRun = now.Sub(m.runStart)
		m.accumulated += m.lastRun
		m.active = false
	}
}

// Values returns the current run duration, the total render time (including
// an ongoing run) and the number of runs started.
func (m *TimingModel) Values() (run, total time.Duration, runs int) {
	if m == nil {
		return 0, 0, 0
	}
	run = m.lastRun
	total = m.accumulated
	if m.active {
		total += run
	}
	return run, total, m.runs
}
