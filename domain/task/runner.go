package task

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"runtime/debug"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/n1tr0xs/fire-danger-map/domain/render"
	"github.com/n1tr0xs/fire-danger-map/observability"
)

// ErrBusy is returned by Submit while a run is still in flight.
var ErrBusy = errors.New("render already in progress")

// EventKind distinguishes progress events from the terminal event of a run.
type EventKind int

const (
	EventProgress EventKind = iota + 1
	EventDone
)

func (k EventKind) String() string {
	switch k {
	case EventProgress:
		return "progress"
	case EventDone:
		return "done"
	default:
		return "unknown"
	}
}

// Event is delivered on Runner.Events. For a given run, zero or more
// EventProgress events precede exactly one EventDone.
type Event struct {
	RunID  string
	Kind   EventKind
	Frame  render.Frame // EventProgress only
	Result *image.RGBA  // EventDone on success
	Err    *Failure     // EventDone on failure
}

// Failure captures what went wrong inside a run: the error (or panic value)
// type, its message and the goroutine stack at the point of capture.
type Failure struct {
	Type  string
	Value string
	Trace string
	Err   error
}

func (f *Failure) Error() string { return f.Type + ": " + f.Value }

func (f *Failure) Unwrap() error { return f.Err }

// Work is one unit of rendering. It may call emit any number of times before
// returning the finished raster.
type Work func(emit func(render.Frame)) (*image.RGBA, error)

// Runner executes at most one Work at a time on a background goroutine.
type Runner struct {
	logger  *slog.Logger
	metrics *observability.Metrics
	busy    atomic.Bool
	events  chan Event
}

// NewRunner creates a runner whose event channel holds up to buffer events
// before the worker blocks waiting for the consumer.
func NewRunner(logger *slog.Logger, metrics *observability.Metrics, buffer int) *Runner {
	if buffer < 1 {
		buffer = 1
	}
	return &Runner{logger: logger, metrics: metrics, events: make(chan Event, buffer)}
}

// Events returns the ordered event stream shared by all runs.
func (r *Runner) Events() <-chan Event { return r.events }

// Busy reports whether a run is in flight.
func (r *Runner) Busy() bool { return r.busy.Load() }

// Submit starts work unless a run is already in flight, in which case it
// returns ErrBusy and nothing is started.
func (r *Runner) Submit(work Work) (string, error) {
	if work == nil {
		return "", errors.New("nil work")
	}
	if !r.busy.CompareAndSwap(false, true) {
		r.metrics.RunRejected()
		return "", ErrBusy
	}
	runID := uuid.NewString()
	r.metrics.RunStarted()
	go r.run(runID, work)
	return runID, nil
}

func (r *Runner) run(runID string, work Work) {
	start := time.Now()
	done := Event{RunID: runID, Kind: EventDone}
	// The terminal event is queued before the busy flag clears, so a new run
	// can never emit ahead of the previous run's EventDone.
	defer func() {
		if p := recover(); p != nil {
			done.Result = nil
			done.Err = &Failure{
				Type:  fmt.Sprintf("%T", p),
				Value: fmt.Sprint(p),
				Trace: string(debug.Stack()),
			}
			if err, ok := p.(error); ok {
				done.Err.Err = err
			}
		}
		outcome := "success"
		if done.Err != nil {
			outcome = "failure"
			if r.logger != nil {
				r.logger.Error("render run failed", "run_id", runID, "type", done.Err.Type, "error", done.Err.Value, "trace", done.Err.Trace)
			}
		} else if r.logger != nil {
			r.logger.Info("render run finished", "run_id", runID, "duration", time.Since(start))
		}
		r.metrics.RunFinished(outcome, time.Since(start))
		r.events <- done
		r.busy.Store(false)
	}()

	if r.logger != nil {
		r.logger.Info("render run started", "run_id", runID)
	}
	img, err := work(func(f render.Frame) {
		r.metrics.RegionPainted()
		r.events <- Event{RunID: runID, Kind: EventProgress, Frame: f}
	})
	if err != nil {
		done.Err = &Failure{Type: fmt.Sprintf("%T", err), Value: err.Error(), Trace: string(debug.Stack()), Err: err}
		return
	}
	done.Result = img
}
