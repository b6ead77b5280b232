package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected Tag
	}{
		{"Modern stable suffix", "1.4.11-stable", New(1, 4, 11)},
		{"Modern with stage letter", "1.4.14b-stable", New(1, 4, 14)},
		{"Modern underscore suffix", "2.0.3_alpha", New(2, 0, 3)},
		{"Modern bare triple", "2.0.1", New(2, 0, 1)},
		{"Modern bare separator", "1.4.11-", New(1, 4, 11)},
		{"Legacy lettered", "1.3e", NewLegacy(1, 3, 'e')},
		{"Legacy unlettered", "1.1", New(1, 1, 0)},
		{"Legacy first sub-patch", "1.0a", New(1, 0, 1)},
		{"Garbage", "garbage", Other},
		{"Empty", "", Other},
		{"Stage letter without separator", "1.4.14b", Other},
		{"Two trailing letters", "1.3ee", Other},
		{"Trailing dot", "1.4.", Other},
		{"Suffix without separator", "1.4.11stable", Other},
		{"Component too large", "1.4.1000-stable", Other},
		{"Whitespace after minor", "1.1 ", Other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Decode(tt.raw))
		})
	}
}

func TestDecodeLegacyOrdinals(t *testing.T) {
	// 'a' is sub-patch 1, 'b' is 2, and so on.
	require.Equal(t, New(1, 3, 5), Decode("1.3e"))
	require.Equal(t, New(1, 1, 2), Decode("1.1b"))
}

func TestTagOrdering(t *testing.T) {
	ordered := []string{"1.0a", "1.1", "1.3e", "1.3.9", "1.4.0", "1.4.14b-stable", "2.0.1"}
	for i := 1; i < len(ordered); i++ {
		a, b := Decode(ordered[i-1]), Decode(ordered[i])
		assert.Less(t, a, b, "%s should sort before %s", ordered[i-1], ordered[i])
	}
}

func TestSentinels(t *testing.T) {
	real := []Tag{New(1, 0, 0), New(1, 4, 11), New(2, 0, 1), New(255, 255, 255)}
	for _, tag := range real {
		assert.NotEqual(t, Other, tag)
		assert.Greater(t, Other, tag, "Other must sort above %s", tag)
		assert.Less(t, Ancient, tag, "Ancient must sort below %s", tag)
	}
}

func TestTagComponents(t *testing.T) {
	tag := New(1, 4, 14)
	assert.Equal(t, uint32(1), tag.Major())
	assert.Equal(t, uint32(4), tag.Minor())
	assert.Equal(t, uint32(14), tag.Patch())
	assert.Equal(t, "1.4.14", tag.String())
	assert.Equal(t, "unrecognized", Other.String())
	assert.Equal(t, "ancient", Ancient.String())
}

func TestCompatEra(t *testing.T) {
	tests := []struct {
		name     string
		tag      Tag
		expected Era
	}{
		{"Unrecognized", Other, EraOther},
		{"Ancient", Ancient, 1},
		{"Before 1.0c", NewLegacy(1, 0, 'b'), 1},
		{"At 1.0c", NewLegacy(1, 0, 'c'), 2},
		{"Late 1.3", NewLegacy(1, 3, 'e'), 2},
		{"At 1.4.0", New(1, 4, 0), 3},
		{"Late 1.4", New(1, 4, 14), 3},
		{"At 1.4.99", New(1, 4, 99), 4},
		{"2.0.0 is still pre-2.0.1", New(2, 0, 0), 4},
		{"At 2.0.1", New(2, 0, 1), 5},
		{"Far future", New(3, 2, 1), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CompatEra(tt.tag))
		})
	}
}

func TestCompatEraMonotonic(t *testing.T) {
	// Eras never decrease as versions increase.
	tags := []Tag{Ancient, NewLegacy(1, 0, 'b'), NewLegacy(1, 0, 'c'),
		New(1, 1, 0), NewLegacy(1, 3, 'b'), New(1, 4, 0), New(1, 4, 98),
		New(1, 4, 99), New(2, 0, 0), New(2, 0, 1), New(2, 1, 0)}
	for i := 1; i < len(tags); i++ {
		assert.GreaterOrEqual(t, CompatEra(tags[i]), CompatEra(tags[i-1]))
	}
}
