// Package version parses event-facility version strings into totally
// ordered numeric tags and buckets tags into binary-compatibility eras.
//
// Two version grammars are recognized: the modern dotted form
// ("1.4.11-stable", "1.4.14b-stable", "2.0.1") and the legacy lettered
// form ("1.3e", "1.1"), where a trailing letter denotes a sub-patch
// ('a' -> patch 1, 'b' -> patch 2, and so on). Anything else decodes to
// the Other sentinel, which is never equal to a real version and sorts
// above all of them.
package version

import (
	"fmt"
	"math"
)

// Tag is a numeric facility version. The first three bytes hold the
// major, minor, and patch levels respectively; the low byte is unused.
// Integer comparison of two parseable tags matches semantic version
// precedence.
type Tag uint32

const (
	// Ancient marks a facility too old to report any version at all.
	// It sorts below every real version.
	Ancient Tag = 0

	// Other marks a version string that matched neither grammar. It is
	// a fixed value distinct from and above every real version; bug and
	// era logic must special-case it rather than compare through it.
	Other Tag = Tag(math.MaxUint32)
)

// New builds a Tag from a modern major.minor.patch triple. Components
// outside 0..255 cannot be represented and are masked.
func New(major, minor, patch uint32) Tag {
	return Tag((major&0xff)<<24 | (minor&0xff)<<16 | (patch&0xff)<<8)
}

// NewLegacy builds a Tag from the legacy lettered scheme, where "1.0a"
// is equivalent to 1.0.1, "1.0b" to 1.0.2, and so on.
func NewLegacy(major, minor uint32, letter byte) Tag {
	return New(major, minor, uint32(letter-'a'+1))
}

// Major returns the major component of a real (non-sentinel) tag.
func (t Tag) Major() uint32 { return uint32(t) >> 24 }

// Minor returns the minor component of a real (non-sentinel) tag.
func (t Tag) Minor() uint32 { return (uint32(t) >> 16) & 0xff }

// Patch returns the patch component of a real (non-sentinel) tag.
func (t Tag) Patch() uint32 { return (uint32(t) >> 8) & 0xff }

// String renders the tag for diagnostics.
func (t Tag) String() string {
	switch t {
	case Other:
		return "unrecognized"
	case Ancient:
		return "ancient"
	default:
		return fmt.Sprintf("%d.%d.%d", t.Major(), t.Minor(), t.Patch())
	}
}

// Decode parses a human-readable facility version string into a Tag.
// Strings matching neither the modern nor the legacy grammar decode to
// Other. Decode is deterministic and has no side effects.
func Decode(raw string) Tag {
	if tag, ok := decodeModern(raw); ok {
		return tag
	}
	if tag, ok := decodeLegacy(raw); ok {
		return tag
	}
	return Other
}

// decodeModern recognizes MAJOR.MINOR.PATCH with an optional single
// release-stage letter and an optional '-' or '_' separated suffix
// ("1.4.11-stable", "1.4.14b-stable", "2.0.1"). A stage letter with no
// separator after it ("1.4.14b") is not a version we know how to read.
func decodeModern(s string) (Tag, bool) {
	major, s, ok := scanComponent(s)
	if !ok {
		return 0, false
	}
	s, ok = scanDot(s)
	if !ok {
		return 0, false
	}
	minor, s, ok := scanComponent(s)
	if !ok {
		return 0, false
	}
	s, ok = scanDot(s)
	if !ok {
		return 0, false
	}
	patch, s, ok := scanComponent(s)
	if !ok {
		return 0, false
	}
	if s == "" {
		return New(major, minor, patch), true
	}
	if isAlpha(s[0]) {
		s = s[1:]
		if s == "" {
			return 0, false
		}
	}
	if s[0] == '-' || s[0] == '_' {
		return New(major, minor, patch), true
	}
	return 0, false
}

// decodeLegacy recognizes MAJOR.MINOR with an optional final sub-patch
// letter ("1.3e", "1.1"). The letter must terminate the string.
func decodeLegacy(s string) (Tag, bool) {
	major, s, ok := scanComponent(s)
	if !ok {
		return 0, false
	}
	s, ok = scanDot(s)
	if !ok {
		return 0, false
	}
	minor, s, ok := scanComponent(s)
	if !ok {
		return 0, false
	}
	if s == "" {
		return New(major, minor, 0), true
	}
	if len(s) == 1 && s[0] >= 'a' && s[0] <= 'z' {
		return NewLegacy(major, minor, s[0]), true
	}
	return 0, false
}

// scanComponent consumes a run of decimal digits. Values above 255 do
// not fit the tag encoding and are rejected rather than silently
// wrapped.
func scanComponent(s string) (uint32, string, bool) {
	var n uint32
	i := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = n*10 + uint32(s[i]-'0')
		if n > 0xff {
			return 0, s, false
		}
	}
	if i == 0 {
		return 0, s, false
	}
	return n, s[i:], true
}

func scanDot(s string) (string, bool) {
	if len(s) == 0 || s[0] != '.' {
		return s, false
	}
	return s[1:], true
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// Era is a coarse bucket of mutually binary-compatible facility
// versions. Two versions in different eras are sure not to be binary
// compatible; two versions in the same era have a decent chance of
// being compatible.
type Era int

// EraOther is the era of an unrecognized version. It never equals the
// era of any parseable version.
const EraOther Era = 0

// CompatEra buckets a version tag into its binary-compatibility era.
// The function is a monotonic step over real tags; Other maps to
// EraOther.
func CompatEra(t Tag) Era {
	switch {
	case t == Other:
		return EraOther
	case t < NewLegacy(1, 0, 'c'):
		return 1
	case t < New(1, 4, 0):
		return 2
	case t < New(1, 4, 99):
		return 3
	case t < New(2, 0, 1):
		return 4
	default:
		// Everything 2.0 and later is expected to stay compatible.
		return 5
	}
}
