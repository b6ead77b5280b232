package facility

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/evloop/version"
)

func TestModernCapabilities(t *testing.T) {
	m := NewModern()
	assert.Equal(t, "event2", m.Name())
	assert.True(t, m.SupportsPersistentTimers())
	assert.True(t, m.SupportsLogCallback())

	tag, ok := m.VersionNumber()
	require.True(t, ok)
	assert.Equal(t, version.New(2, 0, 10), tag)
	assert.Equal(t, tag, version.Decode(m.Version()), "numeric and string versions must agree")
}

func TestLegacyCapabilities(t *testing.T) {
	l := NewLegacy()
	assert.Equal(t, "event1", l.Name())
	assert.False(t, l.SupportsPersistentTimers())
	assert.False(t, l.SupportsLogCallback())

	_, ok := l.VersionNumber()
	assert.False(t, ok)
	assert.Equal(t, version.NewLegacy(1, 3, 'e'), version.Decode(l.Version()))

	assert.False(t, l.SetLogCallback(func(Severity, string) {}))
}

func TestLegacyRejectsPersistentTimers(t *testing.T) {
	base := newTestBase(t, NewLegacy(), newFakeClock())
	defer base.Free()

	ev, err := base.AddTimer(10, true, func() {})
	assert.ErrorIs(t, err, ErrPersistentUnsupported)
	assert.Nil(t, ev)

	// One-shot registrations still work.
	_, err = base.AddTimer(10, false, func() {})
	assert.NoError(t, err)
}

func TestProbeSelectsPersistentCapableFacility(t *testing.T) {
	f := Probe()
	require.NotNil(t, f)
	assert.True(t, f.SupportsPersistentTimers())
}

func TestModernLogCallback(t *testing.T) {
	m := NewModern()

	var got []string
	ok := m.SetLogCallback(func(sev Severity, msg string) {
		if sev == SeverityDebug {
			got = append(got, msg)
		}
	})
	require.True(t, ok)

	base, err := m.NewBase(nil)
	require.NoError(t, err)
	defer base.Free()

	require.Len(t, got, 1)
	assert.True(t, strings.HasSuffix(got[0], "\n"), "facility diagnostics carry a trailing newline")
	assert.Contains(t, got[0], base.Method())

	// Removing the callback silences the facility again.
	assert.True(t, m.SetLogCallback(nil))
}

func TestProbeMethodReportsRealBackend(t *testing.T) {
	method := probeMethod()
	assert.Contains(t, []string{"epoll", "kqueue", "poll", "select", "win32"}, method)
}

func TestBaseReportsMethod(t *testing.T) {
	base := newTestBase(t, NewModern(), newFakeClock())
	defer base.Free()
	assert.NotEmpty(t, base.Method())
	assert.Equal(t, probeMethod(), base.Method())
}
