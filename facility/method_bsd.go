//go:build darwin || freebsd || openbsd || netbsd || dragonfly

package facility

import (
	"os"

	"golang.org/x/sys/unix"
)

// probeMethod picks the backend method name the base will report. The
// EVENT_NOKQUEUE environment variable forces kqueue off; the platform
// workaround in the caller sets it on OS versions where kqueue is
// known unreliable.
func probeMethod() string {
	if os.Getenv("EVENT_NOKQUEUE") == "" {
		if fd, err := unix.Kqueue(); err == nil {
			unix.Close(fd)
			return "kqueue"
		}
	}
	return "poll"
}
