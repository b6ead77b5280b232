package evloop

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/evloop/compat"
	"github.com/opd-ai/evloop/facility"
	"github.com/opd-ai/evloop/version"
)

// Options contains configuration options for creating a Loop.
type Options struct {
	// Facility selects the underlying event-notification facility. Nil
	// probes for the most capable build available.
	Facility facility.Facility
	// Clock overrides the dispatch clock. Nil means system time. Only
	// tests should need this.
	Clock facility.Clock
}

// NewOptions creates a new default Options.
func NewOptions() *Options {
	return &Options{}
}

// Loop owns one event base of the underlying facility and everything
// scheduled against it. Create it during single-threaded startup and
// drive it from one goroutine for the life of the process.
type Loop struct {
	facility   facility.Facility
	base       facility.Base
	method     string
	versionTag version.Tag
	suppress   string
}

// New creates a Loop. Platform workarounds are applied before the base
// is created, and the base is configured for single-threaded use (no
// internal facility locking). A facility that cannot produce a base is
// unrecoverable for most callers: there is no fallback facility. The
// singleton Initialize treats it as fatal; New reports it as an error
// so embedders and tests can decide.
func New(opts *Options) (*Loop, error) {
	if opts == nil {
		opts = NewOptions()
	}
	f := opts.Facility
	if f == nil {
		f = facility.Probe()
	}

	tag := facilityVersionTag(f)
	if applyPlatformWorkarounds(runtime.GOOS, facility.OSMajorRelease(), tag) {
		logrus.WithFields(logrus.Fields{
			"backend": "kqueue",
			"version": f.Version(),
		}).Debug("disabled known-unreliable backend before base creation")
	}

	base, err := f.NewBase(&facility.BaseConfig{NoLock: true, Clock: opts.Clock})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFacilityInit, err)
	}
	if base == nil {
		return nil, ErrFacilityInit
	}

	l := &Loop{
		facility:   f,
		base:       base,
		method:     base.Method(),
		versionTag: tag,
	}

	logrus.WithFields(logrus.Fields{
		"version": f.Version(),
		"method":  l.method,
	}).Info("initialized event facility")

	return l, nil
}

// BackendName returns the facility's reported multiplexing method,
// verbatim.
func (l *Loop) BackendName() string {
	return l.method
}

// Run drives the event loop until Exit's deadline passes or nothing
// remains scheduled.
func (l *Loop) Run() error {
	return l.base.Dispatch()
}

// Exit arranges for Run to return once the given duration has elapsed.
func (l *Loop) Exit(after time.Duration) {
	l.base.LoopExit(after)
}

// Close detaches the log bridge and releases the event base. The Loop
// must not be used afterwards.
func (l *Loop) Close() {
	l.facility.SetLogCallback(nil)
	l.base.Free()
}

// CheckVersionCompatibility compares the live facility version and
// backend against the known-bug table, logs any advisory, and returns
// it so the caller can apply policy (for example, refusing to run a
// server on a thread-unsafe combination). Never blocks startup itself.
func (l *Loop) CheckVersionCompatibility(server bool) *compat.Advisory {
	adv := compat.CheckTag(l.versionTag, l.facility.Version(), l.method, server, runtime.GOOS)
	if adv != nil {
		logrus.WithFields(logrus.Fields{
			"version": adv.VersionString,
			"method":  adv.Method,
			"badness": adv.Classification.Label(),
		}).Warn(adv.Message)
	}
	return adv
}

// facilityVersionTag prefers the facility's numeric version and falls
// back to decoding its version string.
func facilityVersionTag(f facility.Facility) version.Tag {
	if tag, ok := f.VersionNumber(); ok {
		return tag
	}
	return version.Decode(f.Version())
}

// applyPlatformWorkarounds force-disables backends known to be
// unreliable on this platform, via the facility's environment knobs,
// before any base exists to have chosen one. Returns whether the
// environment was changed.
//
// The one known case: kqueue on Mac OS X before 10.4 (Darwin release
// 8), and on any facility older than 1.1b regardless of OS release.
func applyPlatformWorkarounds(goos string, osMajorRelease int, tag version.Tag) bool {
	if goos != "darwin" {
		return false
	}
	if (osMajorRelease > 0 && osMajorRelease < 8) || tag < version.NewLegacy(1, 1, 'b') {
		os.Setenv("EVENT_NOKQUEUE", "1")
		return true
	}
	return false
}
