package dictidx

import "github.com/zeebo/xxh3"

// HashFunc maps a full line, terminator included, to a 32-bit hash.
// The index remembers the function used at build time and applies the
// same one to every query; mixing functions between build and lookup
// breaks every lookup, not just some.
type HashFunc func(line []byte) uint32

// foldHash is the reference dictionary hash: seed 5381, multiplier 33,
// folding (b - 32) for every byte including the terminator. Bytes below
// 0x20 wrap around; the result stays deterministic, which is all bucket
// selection needs.
func foldHash(line []byte) uint32 {
	h := uint32(5381)
	for _, b := range line {
		h = h*33 + uint32(b) - 32
	}
	return h
}

// XXH3Hash returns a HashFunc backed by xxHash3 with the given seed.
// Use it via WithHashFunc when dictionary lines distribute poorly under
// the default fold hash (long shared prefixes, binary content).
func XXH3Hash(seed uint64) HashFunc {
	return func(line []byte) uint32 {
		return uint32(xxh3.HashSeed(line, seed))
	}
}
