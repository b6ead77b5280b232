package facility

import (
	"errors"
	"time"

	"github.com/opd-ai/evloop/version"
)

var (
	// ErrBaseFreed indicates an operation on a base after Free.
	ErrBaseFreed = errors.New("event base has been freed")
	// ErrNilCallback indicates an event registration without a callback.
	ErrNilCallback = errors.New("event registration requires a callback")
	// ErrPersistentUnsupported indicates a persistent-timer registration
	// against a facility that only has one-shot timers.
	ErrPersistentUnsupported = errors.New("facility does not support persistent timers")
)

// Severity is a facility diagnostic level. The four values mirror the
// facility's own log levels.
type Severity int

const (
	SeverityDebug Severity = iota
	SeverityMessage
	SeverityWarn
	SeverityError
)

// LogCallback receives intercepted facility diagnostics. Messages may
// carry a trailing newline.
type LogCallback func(severity Severity, msg string)

// Facility is one build of the underlying event-notification library.
// Implementations differ in capabilities; callers must consult the
// Supports methods rather than assume.
type Facility interface {
	// Name identifies the facility build, for log fields.
	Name() string
	// Version returns the facility's human-readable version string.
	Version() string
	// VersionNumber returns the facility's numeric version, when the
	// build exposes one. Callers fall back to decoding Version.
	VersionNumber() (version.Tag, bool)
	// SupportsPersistentTimers reports whether AddTimer accepts
	// persist=true registrations.
	SupportsPersistentTimers() bool
	// SupportsLogCallback reports whether the build has a log hook.
	SupportsLogCallback() bool
	// SetLogCallback installs (or, with nil, removes) the diagnostic
	// interceptor. Returns false when the build has no hook; the call
	// is then a no-op.
	SetLogCallback(cb LogCallback) bool
	// NewBase creates an event base. A nil config gets defaults.
	NewBase(cfg *BaseConfig) (Base, error)
}

// Base is one event-notification context: a set of registered events
// plus the loop that drives them. Not safe for concurrent use.
type Base interface {
	// Method returns the name of the multiplexing backend the base
	// selected (for example "epoll" or "kqueue").
	Method() string
	// AddTimer registers a timer event. With persist=true the event
	// re-fires every interval without drift accumulation; facilities
	// without persistent-timer support return ErrPersistentUnsupported.
	// A failed registration leaks nothing.
	AddTimer(interval time.Duration, persist bool, cb func()) (Event, error)
	// Dispatch runs the loop until LoopExit's deadline passes or no
	// scheduled events remain.
	Dispatch() error
	// LoopExit arranges for Dispatch to return once the given duration
	// has elapsed.
	LoopExit(after time.Duration)
	// Free deregisters everything and releases the base.
	Free()
}

// Event is one scheduled registration against a Base.
type Event interface {
	// Delete deregisters the event. Safe to call more than once, and
	// safe to call from inside the event's own callback.
	Delete()
}

// BaseConfig carries base construction options.
type BaseConfig struct {
	// NoLock promises the base will only ever be used from a single
	// thread, letting the facility skip its internal synchronization
	// setup.
	NoLock bool
	// Clock overrides the dispatch clock. Nil means system time.
	Clock Clock
}

// Probe selects the most capable facility available at startup. The
// selection happens at run time, not compile time, so the legacy path
// can always be exercised by constructing a Legacy explicitly.
func Probe() Facility {
	m := NewModern()
	if m.SupportsPersistentTimers() {
		return m
	}
	return NewLegacy()
}
