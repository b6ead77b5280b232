package evloop

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/evloop/version"
)

// BuiltAgainstVersion is the facility version this library was
// developed and tested against, compared at startup to whatever build
// is actually loaded.
const BuiltAgainstVersion = "2.0.10-stable"

// SkewSeverity grades a version-skew advisory.
type SkewSeverity int

const (
	// SkewInfo means the versions differ but look binary-compatible.
	SkewInfo SkewSeverity = iota
	// SkewSevere means the versions fall in different ABI eras; running
	// this way will almost certainly crash.
	SkewSevere
)

// SkewAdvisory reports a difference between the facility version this
// library was built against and the one actually running.
type SkewAdvisory struct {
	Severity       SkewSeverity
	BuiltVersion   string
	RuntimeVersion string
	Message        string
}

// CheckVersionSkew compares a built-against version string with the
// runtime-reported one. Identical strings produce no advisory. Strings
// that differ are judged by ABI era: different eras (including any
// unparseable string, whose era matches nothing) are severe, matching
// eras merely informational. Differing strings alone are never an
// error.
func CheckVersionSkew(builtVersion, runtimeVersion string) *SkewAdvisory {
	if builtVersion == runtimeVersion {
		return nil
	}

	builtEra := version.CompatEra(version.Decode(builtVersion))
	runtimeEra := version.CompatEra(version.Decode(runtimeVersion))

	adv := &SkewAdvisory{
		BuiltVersion:   builtVersion,
		RuntimeVersion: runtimeVersion,
	}
	if builtEra != runtimeEra || builtEra == version.EraOther {
		adv.Severity = SkewSevere
		adv.Message = fmt.Sprintf(
			"built against event facility version %s but running with version %s; "+
				"this will almost certainly crash", builtVersion, runtimeVersion)
	} else {
		adv.Severity = SkewInfo
		adv.Message = fmt.Sprintf(
			"built against event facility version %s but running with version %s; "+
				"these look binary-compatible", builtVersion, runtimeVersion)
	}
	return adv
}

// CheckHeaderRuntimeSkew runs the skew check against the attached
// facility's reported version and logs the result: warn for severe
// skew, info for a benign string difference.
func (l *Loop) CheckHeaderRuntimeSkew() *SkewAdvisory {
	adv := CheckVersionSkew(BuiltAgainstVersion, l.facility.Version())
	if adv == nil {
		return nil
	}
	entry := logrus.WithFields(logrus.Fields{
		"built":   adv.BuiltVersion,
		"runtime": adv.RuntimeVersion,
	})
	if adv.Severity == SkewSevere {
		entry.Warn(adv.Message)
	} else {
		entry.Info(adv.Message)
	}
	return adv
}
