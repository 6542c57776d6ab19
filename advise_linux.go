//go:build linux

package dictidx

import "golang.org/x/sys/unix"

// adviseSequential hints to the kernel that the mapping is about to be
// scanned front to back (the build passes).
// Best-effort: errors are silently ignored.
func adviseSequential(data []byte) {
	if len(data) == 0 {
		return
	}
	_ = unix.Madvise(data, unix.MADV_SEQUENTIAL)
}

// adviseRandom hints to the kernel that lookups will touch pages in no
// particular order. Applied once the index is built.
// Best-effort: errors are silently ignored.
func adviseRandom(data []byte) {
	if len(data) == 0 {
		return
	}
	_ = unix.Madvise(data, unix.MADV_RANDOM)
}
