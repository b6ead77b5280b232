package evloop

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/evloop/compat"
)

// processLoop backs the package-level convenience API, matching the
// facility's one-base-per-process convention. Explicit Loops from New
// exist alongside it for embedders and tests.
var processLoop *Loop

// Initialize creates the process-wide Loop. Calling it twice is a
// programming error and panics. A facility that cannot produce a base
// is the one unrecoverable condition here: it is logged at fatal
// severity and the process terminates.
func Initialize() {
	if processLoop != nil {
		panic("evloop: Initialize called more than once")
	}
	l, err := New(nil)
	if err != nil {
		logrus.WithError(err).Fatal("unable to initialize event facility; cannot continue")
	}
	processLoop = l
}

// Current returns the process-wide Loop. Calling it before Initialize
// is a programming error and panics.
func Current() *Loop {
	if processLoop == nil {
		panic("evloop: Current called before Initialize")
	}
	return processLoop
}

// BackendName returns the process-wide loop's multiplexing method.
func BackendName() string {
	return Current().BackendName()
}

// CheckVersionCompatibility runs the known-bug check on the
// process-wide loop.
func CheckVersionCompatibility(server bool) *compat.Advisory {
	return Current().CheckVersionCompatibility(server)
}

// CheckHeaderRuntimeSkew runs the version-skew check on the
// process-wide loop.
func CheckHeaderRuntimeSkew() *SkewAdvisory {
	return Current().CheckHeaderRuntimeSkew()
}

// AttachLogBridge attaches the log bridge to the process-wide loop.
func AttachLogBridge() bool {
	return Current().AttachLogBridge()
}

// SetLogSuppression sets the suppression filter on the process-wide
// loop's log bridge.
func SetLogSuppression(substring string) {
	Current().SetLogSuppression(substring)
}

// CreatePeriodicTimer schedules a periodic timer on the process-wide
// loop.
func CreatePeriodicTimer(interval time.Duration, cb TimerCallback, data interface{}) (*PeriodicTimer, error) {
	return Current().NewPeriodicTimer(interval, cb, data)
}
