//go:build !darwin

package facility

// OSMajorRelease is only meaningful on darwin, where the kqueue
// workaround needs the kernel release. Everywhere else it reports 0.
func OSMajorRelease() int {
	return 0
}
