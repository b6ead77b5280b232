//go:build darwin

package facility

import "golang.org/x/sys/unix"

// OSMajorRelease returns the Darwin kernel major release (8 maps to
// Mac OS X 10.4). Returns 0 when the release cannot be determined.
func OSMajorRelease() int {
	release, err := unix.Sysctl("kern.osrelease")
	if err != nil {
		return 0
	}
	major := 0
	for i := 0; i < len(release) && release[i] >= '0' && release[i] <= '9'; i++ {
		major = major*10 + int(release[i]-'0')
	}
	return major
}
