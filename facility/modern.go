package facility

import (
	"fmt"

	"github.com/opd-ai/evloop/version"
)

// modernVersion is the version string the modern build reports.
const modernVersion = "2.0.10-stable"

// Modern is the current facility build: persistent timers, a log
// interception hook, and a numeric version.
type Modern struct {
	logCB LogCallback
}

// NewModern returns a modern facility.
func NewModern() *Modern {
	return &Modern{}
}

func (m *Modern) Name() string {
	return "event2"
}

func (m *Modern) Version() string {
	return modernVersion
}

func (m *Modern) VersionNumber() (version.Tag, bool) {
	return version.New(2, 0, 10), true
}

func (m *Modern) SupportsPersistentTimers() bool {
	return true
}

func (m *Modern) SupportsLogCallback() bool {
	return true
}

func (m *Modern) SetLogCallback(cb LogCallback) bool {
	m.logCB = cb
	return true
}

func (m *Modern) NewBase(cfg *BaseConfig) (Base, error) {
	method := probeMethod()
	m.logf(SeverityDebug, "event base created using %s\n", method)
	return newDispatcher(method, true, cfg), nil
}

// logf routes an internal diagnostic through the installed log
// callback. Diagnostics are dropped until a callback is attached.
func (m *Modern) logf(sev Severity, format string, args ...interface{}) {
	if m.logCB == nil {
		return
	}
	m.logCB(sev, fmt.Sprintf(format, args...))
}
