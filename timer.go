package evloop

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/evloop/facility"
)

// TimerCallback is invoked on every firing of a PeriodicTimer. data is
// the value passed at creation; its ownership stays with the caller.
type TimerCallback func(timer *PeriodicTimer, data interface{})

// PeriodicTimer fires its callback repeatedly at a fixed interval until
// stopped. On facilities with native persistent timers it is a single
// repeat-forever registration; otherwise it is emulated with one-shot
// timers that re-register themselves.
//
// A timer is either scheduled or stopped. Stopping is one-way: a
// stopped timer cannot be rescheduled, only recreated.
type PeriodicTimer struct {
	loop     *Loop
	event    facility.Event
	cb       TimerCallback
	data     interface{}
	interval time.Duration
	emulated bool
	stopped  bool
}

// NewPeriodicTimer creates and schedules a timer that runs cb every
// interval on this loop. A registration the facility rejects is
// recoverable: the error is returned, nothing is leaked, and the caller
// decides whether to retry or degrade.
func (l *Loop) NewPeriodicTimer(interval time.Duration, cb TimerCallback, data interface{}) (*PeriodicTimer, error) {
	if cb == nil {
		return nil, ErrNilCallback
	}

	t := &PeriodicTimer{
		loop:     l,
		cb:       cb,
		data:     data,
		interval: interval,
		emulated: !l.facility.SupportsPersistentTimers(),
	}

	event, err := l.base.AddTimer(interval, !t.emulated, t.fire)
	if err != nil {
		return nil, fmt.Errorf("registering periodic timer: %w", err)
	}
	t.event = event
	return t, nil
}

// fire runs on every firing of the underlying event.
func (t *PeriodicTimer) fire() {
	if t.stopped {
		return
	}
	if t.emulated {
		// Re-register before invoking the callback: a slow callback
		// then delays the next firing, but not the scheduling decision.
		// The resulting drift is an accepted approximation of true
		// periodicity.
		event, err := t.loop.base.AddTimer(t.interval, false, t.fire)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"interval": t.interval,
			}).WithError(err).Warn("could not reschedule emulated periodic timer")
			t.event = nil
		} else {
			t.event = event
		}
	}
	t.cb(t, t.data)
}

// Stop deregisters the timer and ends its firing. Idempotent, nil-safe,
// and safe to call from inside the timer's own callback; the user data
// is never touched.
func (t *PeriodicTimer) Stop() {
	if t == nil || t.stopped {
		return
	}
	t.stopped = true
	if t.event != nil {
		t.event.Delete()
		t.event = nil
	}
}

// DestroyPeriodicTimer stops t. A nil or already-stopped timer is a
// no-op, so cleanup call sites need no guards.
func DestroyPeriodicTimer(t *PeriodicTimer) {
	t.Stop()
}
