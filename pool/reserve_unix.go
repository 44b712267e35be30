//go:build linux || darwin

package pool

import "golang.org/x/sys/unix"

// reserveArena maps an anonymous private region for the arena. The mapping is
// page-granular under the hood, but the returned slice is exactly size bytes,
// so the logical capacity exposed to callers stays exact.
func reserveArena(size int) ([]byte, error) {
	return unix.Mmap(
		-1,
		0,
		size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE,
	)
}

// releaseArena unmaps the arena.
func releaseArena(b []byte) error {
	return unix.Munmap(b)
}
