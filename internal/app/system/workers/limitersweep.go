// internal/app/system/workers/limitersweep.go
package workers

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Sweeper forgets idle per-client state. ratelimit.Limiter implements it.
type Sweeper interface {
	Sweep() int
	Size() int
}

// LimiterSweep is a background worker that drops idle refresh-limit buckets.
type LimiterSweep struct {
	limiter  Sweeper
	log      *zap.Logger
	interval time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewLimiterSweep creates a new sweep worker.
//
// Parameters:
//   - limiter: the limiter whose idle buckets are dropped
//   - logger: zap logger for logging
//   - interval: how often to sweep (e.g., 1 minute)
func NewLimiterSweep(limiter Sweeper, logger *zap.Logger, interval time.Duration) *LimiterSweep {
	return &LimiterSweep{
		limiter:  limiter,
		log:      logger,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the background sweep loop.
func (w *LimiterSweep) Start() {
	w.wg.Add(1)
	go w.run()
	w.log.Info("limiter sweep worker started",
		zap.Duration("interval", w.interval))
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call more than once.
func (w *LimiterSweep) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		w.wg.Wait()
		w.log.Info("limiter sweep worker stopped")
	})
}

// Close is Stop, so the worker can be closed alongside the views.
func (w *LimiterSweep) Close() { w.Stop() }

func (w *LimiterSweep) run() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.sweep()
		}
	}
}

func (w *LimiterSweep) sweep() {
	if removed := w.limiter.Sweep(); removed > 0 {
		w.log.Debug("dropped idle refresh buckets",
			zap.Int("removed", removed),
			zap.Int("remaining", w.limiter.Size()))
	}
}
