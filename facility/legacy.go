package facility

import "github.com/opd-ai/evloop/version"

// legacyVersion is the version string the legacy build reports. Legacy
// builds predate numeric version reporting, so callers end up decoding
// this string.
const legacyVersion = "1.3e"

// Legacy is an old facility build: one-shot timers only, no log hook,
// no numeric version. It exists so the emulated-periodic code path can
// be exercised in the same binary as the modern one.
type Legacy struct{}

// NewLegacy returns a legacy facility.
func NewLegacy() *Legacy {
	return &Legacy{}
}

func (l *Legacy) Name() string {
	return "event1"
}

func (l *Legacy) Version() string {
	return legacyVersion
}

func (l *Legacy) VersionNumber() (version.Tag, bool) {
	return version.Ancient, false
}

func (l *Legacy) SupportsPersistentTimers() bool {
	return false
}

func (l *Legacy) SupportsLogCallback() bool {
	return false
}

// SetLogCallback is a no-op: legacy builds have no log hook.
func (l *Legacy) SetLogCallback(cb LogCallback) bool {
	return false
}

func (l *Legacy) NewBase(cfg *BaseConfig) (Base, error) {
	return newDispatcher(probeMethod(), false, cfg), nil
}
