//go:build !linux

package dictidx

// madvise is not portable; on non-Linux platforms the hints are no-ops.

func adviseSequential(data []byte) {}

func adviseRandom(data []byte) {}
