// Package compat classifies known-bad combinations of event-facility
// version, multiplexing backend, role, and host platform.
//
// The thresholds are a fixed table reproduced from the facility's bug
// history, not derived logic. The package only classifies; whether to
// refuse to start on a bad combination is the caller's policy.
package compat

import (
	"fmt"

	"github.com/opd-ai/evloop/version"
)

// Classification grades how badly a version/backend/role/platform
// combination is known to misbehave. Values are ordered by severity.
type Classification int

const (
	// None means no known problem.
	None Classification = iota
	// Slow means the backend works but performs poorly at server load.
	Slow
	// Iffy means the backend has known minor bugs at this version.
	Iffy
	// Buggy means the backend has serious known bugs at this version.
	Buggy
	// ThreadUnsafe means this version is known to crash servers on
	// platforms with user-space threading. It dominates every other
	// classification.
	ThreadUnsafe
)

// String returns the classification name used in advisories.
func (c Classification) String() string {
	switch c {
	case None:
		return "none"
	case Slow:
		return "slow"
	case Iffy:
		return "iffy"
	case Buggy:
		return "buggy"
	case ThreadUnsafe:
		return "thread-unsafe"
	default:
		return fmt.Sprintf("classification(%d)", int(c))
	}
}

// Label returns the short badness label reported to operators.
func (c Classification) Label() string {
	switch c {
	case ThreadUnsafe, Buggy:
		return "BROKEN"
	case Iffy:
		return "BUGGY"
	case Slow:
		return "SLOW"
	default:
		return ""
	}
}

// Advisory is the structured result of a compatibility check. Message
// is the operator-facing text; Classification is what policy decisions
// should key on.
type Advisory struct {
	Classification Classification
	Message        string
	Version        version.Tag
	VersionString  string
	Method         string
	Server         bool
	Platform       string
}

// threadUnsafeOS reports whether the platform family is one where old
// facility versions crash servers, and names the family for the
// advisory text.
func threadUnsafeOS(platform string) (string, bool) {
	switch platform {
	case "freebsd", "openbsd", "netbsd", "dragonfly":
		return "BSD variants", true
	case "darwin":
		return "Mac OS X", true
	default:
		return "", false
	}
}

// Classify maps a facility version tag plus the active backend method,
// server role, and host platform to the most severe triggered
// classification. Every condition is evaluated; only the worst one is
// surfaced.
func Classify(tag version.Tag, method string, server bool, platform string) Classification {
	var buggy, iffy, slow, threadUnsafe bool

	// Known-bad backend/version pairs. It would be better to disable a
	// known-buggy backend than to warn about it, but older facility
	// builds cannot change backends once initialized, and newer ones
	// fixed the bugs.
	switch method {
	case "kqueue":
		buggy = tag < version.NewLegacy(1, 1, 'b')
	case "epoll":
		iffy = tag < version.New(1, 1, 0)
	case "poll":
		buggy = tag < version.NewLegacy(1, 0, 'e')
		slow = tag < version.New(1, 1, 0)
	case "select":
		slow = tag < version.New(1, 1, 0)
	case "win32":
		buggy = tag < version.NewLegacy(1, 1, 'b')
	}

	// Versions before 1.3b do very badly on operating systems with
	// user-space threading implementations, regardless of backend.
	if _, bad := threadUnsafeOS(platform); bad && server && tag < version.NewLegacy(1, 3, 'b') {
		threadUnsafe = true
	}

	switch {
	case threadUnsafe:
		return ThreadUnsafe
	case buggy:
		return Buggy
	case iffy:
		return Iffy
	case slow && server:
		// Slowness only matters under server load.
		return Slow
	default:
		return None
	}
}

// CheckTag runs Classify and, when something triggered, builds the
// operator-facing advisory. versionStr is the facility's raw version
// string, kept verbatim in the message. Returns nil when nothing is
// known to be wrong.
func CheckTag(tag version.Tag, versionStr, method string, server bool, platform string) *Advisory {
	c := Classify(tag, method, server, platform)
	if c == None {
		return nil
	}

	adv := &Advisory{
		Classification: c,
		Version:        tag,
		VersionString:  versionStr,
		Method:         method,
		Server:         server,
		Platform:       platform,
	}

	switch c {
	case ThreadUnsafe:
		sadOS, _ := threadUnsafeOS(platform)
		adv.Message = fmt.Sprintf(
			"event facility version %s often crashes when running a server with %s; "+
				"please use version 1.3b or later", versionStr, sadOS)
	case Buggy:
		adv.Message = fmt.Sprintf(
			"there are serious bugs in using %s with event facility version %s; "+
				"please use the latest version", method, versionStr)
	case Iffy:
		adv.Message = fmt.Sprintf(
			"there are minor bugs in using %s with event facility version %s; "+
				"you may want to use the latest version", method, versionStr)
	case Slow:
		adv.Message = fmt.Sprintf(
			"event facility version %s can be very slow with %s; "+
				"when running a server, please use the latest version", versionStr, method)
	}
	return adv
}

// Check is CheckTag over a raw version string.
func Check(versionStr, method string, server bool, platform string) *Advisory {
	return CheckTag(version.Decode(versionStr), versionStr, method, server, platform)
}
