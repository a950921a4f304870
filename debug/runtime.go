package debug

// Periodic runtime logger, started only when config.Debug is true. Emits
// goroutine count, heap and stack usage and, where available, the process
// working set so render-time memory growth can be correlated with runs.

import (
	"context"
	"log/slog"
	"runtime"
	"runtime/metrics"
	"time"
)

// StartRuntimeLogger launches a goroutine that logs runtime stats every
// interval until ctx is done.
func StartRuntimeLogger(ctx context.Context, interval time.Duration, logger *slog.Logger) {
	if logger == nil {
		return
	}
	if interval <= 0 {
		interval = 2 * time.Second
	}
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		var rssErrLogged bool
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
			}
			attrs, err := Sample()
			if err != nil && !rssErrLogged {
				logger.Warn("runtime stats: rss unavailable", slog.String("err", err.Error()))
				rssErrLogged = true
			}
			logger.Info("runtime-stats", attrs...)
		}
	}()
}

// Sample reads the current runtime stats as slog attributes. The error, if
// any, concerns only the rss figure, which is then reported as 0.
func Sample() ([]any, error) {
	samples := []metrics.Sample{{Name: "/sched/goroutines:goroutines"}}
	metrics.Read(samples)
	var goroutines uint64
	if samples[0].Value.Kind() == metrics.KindUint64 {
		goroutines = samples[0].Value.Uint64()
	}
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	rss, err := processRSS()
	return []any{
		slog.Uint64("goroutines", goroutines),
		slog.Uint64("heap_alloc", ms.HeapAlloc),
		slog.Uint64("heap_inuse", ms.HeapInuse),
		slog.Uint64("stack_inuse", ms.StackInuse),
		slog.Uint64("next_gc", ms.NextGC),
		slog.Uint64("num_gc", uint64(ms.NumGC)),
		slog.Uint64("rss", rss),
	}, err
}
