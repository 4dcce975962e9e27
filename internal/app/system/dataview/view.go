// Package dataview holds the fetch-and-render state of one dashboard view.
//
// A View runs at most one fetch at a time. A Refresh that arrives while a
// fetch is in flight queues a single follow-up generation that starts when
// the current one settles; every caller arriving in the meantime joins that
// follow-up. In-flight fetches are only canceled by Close.
package dataview

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dalemusser/octofit/internal/app/system/observability"
	"github.com/dalemusser/octofit/internal/app/system/timeouts"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrClosed is returned by Wait when the view was closed before its
// current fetch settled.
var ErrClosed = errors.New("dataview: view closed")

// FetchFunc loads the full collection for a view.
type FetchFunc[T any] func(ctx context.Context) ([]T, error)

// View is the state machine idle -> loading -> {success, error} for one
// collection. It is safe for concurrent use.
type View[T any] struct {
	name  string
	fetch FetchFunc[T]
	log   *zap.Logger

	life context.Context
	stop context.CancelFunc

	mu     sync.Mutex
	snap   Snapshot[T]
	cur    *cycle[T]
	next   *cycle[T]
	closed bool
}

// cycle is one generation, either in flight (cur) or queued (next).
type cycle[T any] struct {
	gen     uint64
	id      string
	cancel  context.CancelFunc
	done    chan struct{}
	settled bool
	result  Snapshot[T]
	err     error
}

func newCycle[T any](gen uint64) *cycle[T] {
	return &cycle[T]{gen: gen, id: uuid.NewString(), done: make(chan struct{})}
}

// New creates an idle View. name labels logs and metrics.
func New[T any](name string, fetch FetchFunc[T], logger *zap.Logger) *View[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	life, stop := context.WithCancel(context.Background())
	return &View[T]{
		name:  name,
		fetch: fetch,
		log:   logger.With(zap.String("view", name)),
		life:  life,
		stop:  stop,
	}
}

// Name returns the view's label.
func (v *View[T]) Name() string { return v.name }

// Snapshot returns the current state without waiting.
func (v *View[T]) Snapshot() Snapshot[T] {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snap
}

// Refresh requests a generation that starts no earlier than this call and
// waits for it to settle. The returned snapshot is the one that generation
// produced. It returns ctx.Err() if ctx ends first and ErrClosed if the
// view is closed before the generation settles.
func (v *View[T]) Refresh(ctx context.Context) (Snapshot[T], error) {
	v.mu.Lock()
	c := v.requestLocked()
	v.mu.Unlock()

	if c == nil {
		return v.Wait(ctx)
	}
	return v.await(ctx, c)
}

// Start requests a generation without waiting for it and returns its
// number. If a fetch is in flight the generation is queued behind it. On a
// closed view Start does nothing.
func (v *View[T]) Start() uint64 {
	v.mu.Lock()
	defer v.mu.Unlock()

	if c := v.requestLocked(); c != nil {
		return c.gen
	}
	return v.snap.Generation
}

// requestLocked returns the generation a new request should wait on:
// a freshly started one when idle, otherwise the single queued follow-up.
func (v *View[T]) requestLocked() *cycle[T] {
	switch {
	case v.closed:
		return nil
	case v.cur == nil:
		c := newCycle[T](v.snap.Generation + 1)
		v.launchLocked(c)
		return c
	case v.next == nil:
		v.next = newCycle[T](v.cur.gen + 1)
		v.log.Debug("fetch queued",
			zap.Uint64("generation", v.next.gen),
			zap.Uint64("behind", v.cur.gen),
			zap.String("fetch_id", v.next.id))
	}
	return v.next
}

func (v *View[T]) launchLocked(c *cycle[T]) {
	ctx, cancel := timeouts.WithTimeout(v.life, timeouts.Medium(), v.log, "fetch "+v.name)
	c.cancel = cancel
	v.cur = c
	v.snap.State = StateLoading
	v.snap.Generation = c.gen

	v.log.Debug("fetch started",
		zap.Uint64("generation", c.gen),
		zap.String("fetch_id", c.id))

	go v.run(ctx, c)
}

// Wait blocks until the newest requested generation settles, including a
// queued one, and returns its snapshot. With nothing in flight it returns
// the current snapshot at once. It returns ctx.Err() if ctx ends first and
// ErrClosed if the view is closed while loading.
func (v *View[T]) Wait(ctx context.Context) (Snapshot[T], error) {
	v.mu.Lock()
	c := v.next
	if c == nil {
		c = v.cur
	}
	snap, closed := v.snap, v.closed
	v.mu.Unlock()

	if c == nil {
		if closed && snap.State == StateLoading {
			return snap, ErrClosed
		}
		return snap, nil
	}
	return v.await(ctx, c)
}

func (v *View[T]) await(ctx context.Context, c *cycle[T]) (Snapshot[T], error) {
	select {
	case <-c.done:
		return c.result, c.err
	case <-ctx.Done():
		return v.Snapshot(), ctx.Err()
	}
}

// Close cancels any in-flight fetch, drops a queued one and stops the view
// from starting new ones. It is safe to call more than once.
func (v *View[T]) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return
	}
	v.closed = true
	for _, c := range []*cycle[T]{v.cur, v.next} {
		if c == nil {
			continue
		}
		if c.cancel != nil {
			c.cancel()
		}
		c.err = ErrClosed
		v.settleLocked(c)
	}
	v.cur, v.next = nil, nil
	v.stop()
}

func (v *View[T]) run(ctx context.Context, c *cycle[T]) {
	defer c.cancel()

	start := time.Now()
	items, err := v.fetch(ctx)
	elapsed := time.Since(start)

	v.mu.Lock()
	defer v.mu.Unlock()

	if v.cur != c {
		v.log.Debug("discarding fetch of closed view",
			zap.Uint64("generation", c.gen),
			zap.String("fetch_id", c.id))
		observability.RecordFetch(v.name, observability.OutcomeDiscarded, elapsed)
		return
	}

	if err != nil {
		v.snap.State = StateError
		v.snap.Items = nil
		v.snap.Err = err.Error()
		v.log.Warn("fetch failed",
			zap.Uint64("generation", c.gen),
			zap.String("fetch_id", c.id),
			zap.Duration("elapsed", elapsed),
			zap.Error(err))
		observability.RecordFetch(v.name, observability.OutcomeError, elapsed)
	} else {
		if items == nil {
			items = []T{}
		}
		v.snap.State = StateSuccess
		v.snap.Items = items
		v.snap.Err = ""
		v.log.Debug("fetch finished",
			zap.Uint64("generation", c.gen),
			zap.String("fetch_id", c.id),
			zap.Duration("elapsed", elapsed),
			zap.Int("count", len(items)))
		observability.RecordFetch(v.name, observability.OutcomeSuccess, elapsed)
		observability.SetItems(v.name, len(items))
	}
	v.snap.FetchedAt = time.Now()
	v.cur = nil
	v.settleLocked(c)

	if n := v.next; n != nil {
		v.next = nil
		v.launchLocked(n)
	}
}

// settleLocked records the current snapshot as c's result and releases
// its waiters.
func (v *View[T]) settleLocked(c *cycle[T]) {
	if c.settled {
		return
	}
	c.settled = true
	c.result = v.snap
	close(c.done)
}
