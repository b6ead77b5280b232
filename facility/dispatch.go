package facility

import (
	"container/heap"
	"sync"
	"time"

	"github.com/eapache/queue"
)

// timerEvent is one scheduled timer registration. index is the event's
// position in the dispatcher heap, -1 while unscheduled.
type timerEvent struct {
	d        *dispatcher
	deadline time.Time
	interval time.Duration
	persist  bool
	cb       func()
	index    int
	active   bool
}

// Delete deregisters the event. Idempotent; safe from inside the
// event's own callback.
func (e *timerEvent) Delete() {
	if e == nil || !e.active {
		return
	}
	e.d.lock()
	e.active = false
	if e.index >= 0 {
		heap.Remove(&e.d.timers, e.index)
	}
	e.d.unlock()
}

// timerHeap orders events by deadline. container/heap keeps index
// fields current through swaps.
type timerHeap []*timerEvent

func (h timerHeap) Len() int            { return len(h) }
func (h timerHeap) Less(i, j int) bool  { return h[i].deadline.Before(h[j].deadline) }
func (h timerHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i]; h[i].index = i; h[j].index = j }
func (h *timerHeap) Push(x interface{}) { e := x.(*timerEvent); e.index = len(*h); *h = append(*h, e) }
func (h *timerHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*h = old[:n-1]
	return e
}

// dispatcher is the shared run loop behind both facility builds: a
// deadline heap drained by a single-threaded Dispatch. With persistOK
// unset, persist registrations are rejected.
type dispatcher struct {
	clock     Clock
	method    string
	persistOK bool
	timers    timerHeap
	exitAt    time.Time
	exiting   bool
	freed     bool

	// Present only when the caller did not promise single-threaded use
	// (BaseConfig.NoLock unset). Never held across a callback.
	mu *sync.Mutex
}

func newDispatcher(method string, persistOK bool, cfg *BaseConfig) *dispatcher {
	if cfg == nil {
		cfg = &BaseConfig{}
	}
	d := &dispatcher{
		clock:     cfg.Clock,
		method:    method,
		persistOK: persistOK,
	}
	if d.clock == nil {
		d.clock = SystemClock{}
	}
	if !cfg.NoLock {
		d.mu = &sync.Mutex{}
	}
	return d
}

func (d *dispatcher) lock() {
	if d.mu != nil {
		d.mu.Lock()
	}
}

func (d *dispatcher) unlock() {
	if d.mu != nil {
		d.mu.Unlock()
	}
}

func (d *dispatcher) Method() string {
	return d.method
}

func (d *dispatcher) AddTimer(interval time.Duration, persist bool, cb func()) (Event, error) {
	if cb == nil {
		return nil, ErrNilCallback
	}
	if persist && !d.persistOK {
		return nil, ErrPersistentUnsupported
	}
	if interval < 0 {
		interval = 0
	}
	d.lock()
	defer d.unlock()
	if d.freed {
		return nil, ErrBaseFreed
	}
	e := &timerEvent{
		d:        d,
		deadline: d.clock.Now().Add(interval),
		interval: interval,
		persist:  persist,
		cb:       cb,
		index:    -1,
		active:   true,
	}
	heap.Push(&d.timers, e)
	return e, nil
}

func (d *dispatcher) LoopExit(after time.Duration) {
	d.lock()
	d.exitAt = d.clock.Now().Add(after)
	d.exiting = true
	d.unlock()
}

func (d *dispatcher) Free() {
	d.lock()
	d.freed = true
	for _, e := range d.timers {
		e.active = false
		e.index = -1
	}
	d.timers = nil
	d.unlock()
}

// Dispatch runs scheduled events until the LoopExit deadline passes or
// nothing remains scheduled. Due events are drained into a FIFO before
// any callback runs, so a callback that adds or deletes timers cannot
// perturb the pass that is executing it.
func (d *dispatcher) Dispatch() error {
	if d.freed {
		return ErrBaseFreed
	}
	due := queue.New()
	for {
		now := d.clock.Now()
		if d.exiting && !now.Before(d.exitAt) {
			return nil
		}

		d.lock()
		if len(d.timers) == 0 {
			exiting, exitAt := d.exiting, d.exitAt
			d.unlock()
			if !exiting {
				return nil
			}
			d.sleepUntil(exitAt, now)
			continue
		}
		wake := d.timers[0].deadline
		if d.exiting && d.exitAt.Before(wake) {
			wake = d.exitAt
		}
		d.unlock()

		if wake.After(now) {
			d.sleepUntil(wake, now)
			now = d.clock.Now()
		}

		d.lock()
		for len(d.timers) > 0 && !d.timers[0].deadline.After(now) {
			due.Add(heap.Pop(&d.timers).(*timerEvent))
		}
		d.unlock()

		for due.Length() > 0 {
			e := due.Remove().(*timerEvent)
			if !e.active {
				continue
			}
			if e.persist {
				// Re-arm off the previous deadline, not the current
				// time, so firing cadence does not drift with callback
				// latency.
				d.lock()
				e.deadline = e.deadline.Add(e.interval)
				heap.Push(&d.timers, e)
				d.unlock()
			} else {
				e.active = false
			}
			e.cb()
			if d.freed {
				return nil
			}
		}
	}
}

func (d *dispatcher) sleepUntil(t, now time.Time) {
	wait := t.Sub(now)
	if wait <= 0 {
		return
	}
	timer := d.clock.NewTimer(wait)
	<-timer.C
}
