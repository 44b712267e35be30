//go:build !linux && !darwin

package pool

// reserveArena allocates the arena as a plain byte slice on platforms
// without the mmap path.
func reserveArena(size int) ([]byte, error) {
	return make([]byte, size), nil
}

// releaseArena is a no-op; the garbage collector reclaims the slice.
func releaseArena([]byte) error {
	return nil
}
