package model

import "sync/atomic"

// RunState is the form's render state.
type RunState int32

const (
	StateIdle RunState = iota
	StateRendering
)

func (s RunState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRendering:
		return "rendering"
	default:
		return "unknown"
	}
}

// RunModel tracks whether a render is in flight and the last saved file of
// this session. The zero value is idle with nothing saved.
// State is atomic because the runner goroutine may be queried from tests.
type RunModel struct {
	state     atomic.Int32
	savedPath string
}

// State returns the current state.
func (m *RunModel) State() RunState {
	if m == nil {
		return StateIdle
	}
	return RunState(m.state.Load())
}

// BeginRender moves Idle -> Rendering. It reports false if already rendering.
func (m *RunModel) BeginRender() bool {
	if m == nil {
		return false
	}
	return m.state.CompareAndSwap(int32(StateIdle), int32(StateRendering))
}

// EndRender returns to Idle. A non-empty savedPath records a successful save.
func (m *RunModel) EndRender(savedPath string) {
	if m == nil {
		return
	}
	if savedPath != "" {
		m.savedPath = savedPath
	}
	m.state.Store(int32(StateIdle))
}

// SavedPath returns the last file saved this session, if any.
func (m *RunModel) SavedPath() string {
	if m == nil {
		return ""
	}
	return m.savedPath
}

// CanReveal reports whether the show-result action should be enabled.
func (m *RunModel) CanReveal() bool { return m.SavedPath() != "" }
