package evloop

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/evloop/facility"
)

// logCategory tags every re-emitted facility diagnostic so operators
// can filter this traffic separately from the rest of the process logs.
const logCategory = "event-loop"

// AttachLogBridge intercepts the facility's internal diagnostics and
// re-emits them through logrus. Returns false when this facility build
// has no log hook; the bridge (and any suppression filter) is then
// silently inactive, which callers must tolerate.
func (l *Loop) AttachLogBridge() bool {
	if !l.facility.SetLogCallback(l.bridgeDiagnostic) {
		logrus.WithFields(logrus.Fields{
			"facility": l.facility.Name(),
			"category": logCategory,
		}).Debug("facility has no log hook; diagnostics will not be bridged")
		return false
	}
	return true
}

// SetLogSuppression drops any bridged diagnostic containing substring.
// An empty substring clears the filter.
func (l *Loop) SetLogSuppression(substring string) {
	l.suppress = substring
}

// bridgeDiagnostic maps one facility diagnostic onto the structured
// logger. The facility terminates lines with a newline; exactly one is
// trimmed.
func (l *Loop) bridgeDiagnostic(sev facility.Severity, msg string) {
	if l.suppress != "" && strings.Contains(msg, l.suppress) {
		return
	}
	msg = strings.TrimSuffix(msg, "\n")

	entry := logrus.WithFields(logrus.Fields{
		"facility": l.facility.Name(),
		"category": logCategory,
	})
	switch sev {
	case facility.SeverityDebug:
		entry.Debug(msg)
	case facility.SeverityMessage:
		entry.Info(msg)
	case facility.SeverityWarn:
		entry.Warn(msg)
	case facility.SeverityError:
		entry.Error(msg)
	default:
		entry.WithField("severity", int(sev)).Warn(msg)
	}
}
