// usage:
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{CorrectedEvery: 100})
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	h74 := mackay.NewHamming74(mackay.WithHooks(hooks))
//
// Events are dropped, not blocked on, when the queue is full. Dropped() reports
// how many.
package asynchook

import (
	"sync"
	"sync/atomic"

	"github.com/unkn0wn-root/mackay"
)

type Hooks struct {
	inner   mackay.Hooks
	q       chan func()
	wg      sync.WaitGroup
	once    sync.Once
	mu      sync.RWMutex
	closed  bool
	dropped atomic.Uint64
}

var _ mackay.Hooks = (*Hooks)(nil)

func New(inner mackay.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

// Close stops accepting events and waits for queued ones to run.
func (h *Hooks) Close() {
	h.once.Do(func() {
		h.mu.Lock()
		h.closed = true
		close(h.q)
		h.mu.Unlock()
		h.wg.Wait()
	})
}

// Dropped returns the number of events discarded because the queue was full or
// the hooks were closed.
func (h *Hooks) Dropped() uint64 { return h.dropped.Load() }

func (h *Hooks) try(f func()) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		h.dropped.Add(1)
		return
	}
	select {
	case h.q <- f:
	default:
		h.dropped.Add(1)
	}
}

func (h *Hooks) AlignmentMismatch(c string, n, b int) {
	h.try(func() { h.inner.AlignmentMismatch(c, n, b) })
}
func (h *Hooks) Corrected(c string, cw, pos int) { h.try(func() { h.inner.Corrected(c, cw, pos) }) }
func (h *Hooks) ParitySyndrome(c string, cw int, s uint8) {
	h.try(func() { h.inner.ParitySyndrome(c, cw, s) })
}
func (h *Hooks) MemoRejected(k, op string)            { h.try(func() { h.inner.MemoRejected(k, op) }) }
func (h *Hooks) MemoProviderError(op string, e error) { h.try(func() { h.inner.MemoProviderError(op, e) }) }
