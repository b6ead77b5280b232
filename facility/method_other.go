//go:build !linux && !darwin && !freebsd && !openbsd && !netbsd && !dragonfly && !windows

package facility

func probeMethod() string {
	return "select"
}
