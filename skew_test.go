package evloop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/evloop/facility"
)

func TestCheckVersionSkew(t *testing.T) {
	tests := []struct {
		name     string
		built    string
		linked   string
		severity SkewSeverity
		advisory bool
	}{
		{"Identical strings", "1.4.11-stable", "1.4.11-stable", 0, false},
		{"Patch difference within an era", "1.4.11-stable", "1.4.12-stable", SkewInfo, true},
		{"Different eras", "1.4.11-stable", "2.0.1", SkewSevere, true},
		{"Legacy against modern", "1.3e", "2.0.10-stable", SkewSevere, true},
		{"Unparseable runtime version", "2.0.10-stable", "garbage", SkewSevere, true},
		{"Unparseable built version", "garbage", "2.0.10-stable", SkewSevere, true},
		{"Both unparseable but different", "garbage", "other-garbage", SkewSevere, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adv := CheckVersionSkew(tt.built, tt.linked)
			if !tt.advisory {
				assert.Nil(t, adv)
				return
			}
			require.NotNil(t, adv)
			assert.Equal(t, tt.severity, adv.Severity)
			assert.Equal(t, tt.built, adv.BuiltVersion)
			assert.Equal(t, tt.linked, adv.RuntimeVersion)
			assert.NotEmpty(t, adv.Message)
		})
	}
}

func TestCheckVersionSkewSevereMessage(t *testing.T) {
	adv := CheckVersionSkew("1.4.11-stable", "2.0.1")
	require.NotNil(t, adv)
	assert.Contains(t, adv.Message, "almost certainly crash")

	adv = CheckVersionSkew("1.4.11-stable", "1.4.12-stable")
	require.NotNil(t, adv)
	assert.Contains(t, adv.Message, "binary-compatible")
}

func TestLoopCheckHeaderRuntimeSkew(t *testing.T) {
	// The modern facility reports exactly the version this library was
	// built against: no advisory.
	loop := newTestLoop(t, facility.NewModern(), newFakeClock())
	assert.Nil(t, loop.CheckHeaderRuntimeSkew())

	// The legacy facility's version string is in a different ABI era.
	loop = newTestLoop(t, facility.NewLegacy(), newFakeClock())
	adv := loop.CheckHeaderRuntimeSkew()
	require.NotNil(t, adv)
	assert.Equal(t, SkewSevere, adv.Severity)
	assert.Equal(t, BuiltAgainstVersion, adv.BuiltVersion)
	assert.Equal(t, "1.3e", adv.RuntimeVersion)
}
