package presenter

import (
	"testing"
	"time"

	"github.com/n1tr0xs/fire-danger-map/domain/task"
	"github.com/n1tr0xs/fire-danger-map/ui/model"
)

type mockTimingView struct {
	run, total time.Duration
	runs       int
	calls      int
}

func (v *mockTimingView) SetTiming(run, total time.Duration, runs int) {
	v.run, v.total, v.runs = run, total, runs
	v.calls++
}

func TestLoop_TickDrivesPresentersAndReschedules(t *testing.T) {
	f := newFixture()
	tv := &mockTimingView{}
	timing := NewTimingPresenter(model.NewTimingModel(), f.p, tv)
	scheduled := 0
	l := NewLoop(f.p, timing, func() { scheduled++ })

	base := time.Unix(100, 0)
	current := base
	l.now = func() time.Time { return current }

	f.p.Submit()
	l.Tick()
	current = base.Add(3 * time.Second)
	f.runner.events <- task.Event{RunID: "run-1", Kind: task.EventDone, Err: &task.Failure{Type: "t", Value: "v"}}
	l.Tick()

	if scheduled != 2 || tv.calls != 2 {
		t.Fatalf("expected 2 ticks, scheduled=%d timing calls=%d", scheduled, tv.calls)
	}
	if f.p.Rendering() {
		t.Fatalf("expected run finished")
	}
	if tv.runs != 1 || tv.run != 3*time.Second || tv.total != 3*time.Second {
		t.Fatalf("unexpected timing run=%v total=%v runs=%d", tv.run, tv.total, tv.runs)
	}
}

func TestLoop_NilSafe(t *testing.T) {
	var l *Loop
	l.Tick()
	(&Loop{}).Tick()
}
