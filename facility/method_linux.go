//go:build linux

package facility

import (
	"os"

	"golang.org/x/sys/unix"
)

// probeMethod picks the backend method name the base will report,
// preferring the most capable mechanism the kernel offers. The
// EVENT_NO* environment variables force a backend off, matching the
// facility's own selection knobs.
func probeMethod() string {
	if os.Getenv("EVENT_NOEPOLL") == "" {
		if fd, err := unix.EpollCreate1(unix.EPOLL_CLOEXEC); err == nil {
			unix.Close(fd)
			return "epoll"
		}
	}
	return "poll"
}
