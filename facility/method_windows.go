//go:build windows

package facility

func probeMethod() string {
	return "win32"
}
