package dictidx

import (
	"encoding/binary"
	"hash/fnv"
	randv2 "math/rand/v2"
	"testing"
)

// Named seeds for deterministic reproduction.
const (
	testSeed1 = 0x1234567890ABCDEF
	testSeed2 = 0xFEDCBA9876543210
)

func newTestRNG(t testing.TB) *randv2.Rand {
	t.Helper()
	h := fnv.New128a()
	h.Write([]byte(t.Name()))
	sum := h.Sum(nil)
	s1 := binary.LittleEndian.Uint64(sum[:8])
	s2 := binary.LittleEndian.Uint64(sum[8:])
	return randv2.New(randv2.NewPCG(testSeed1^s1, testSeed2^s2))
}

// generateWords returns n random lowercase words of 1..maxLen bytes.
// Duplicates are possible and fine: the index stores one entry per line
// regardless of content.
func generateWords(rng *randv2.Rand, n, maxLen int) [][]byte {
	words := make([][]byte, n)
	for i := range words {
		w := make([]byte, 1+rng.IntN(maxLen))
		for j := range w {
			w[j] = byte('a' + rng.IntN(26))
		}
		words[i] = w
	}
	return words
}

// buildDict concatenates words into a newline-terminated dictionary
// buffer and returns it along with each full line (terminator included).
func buildDict(words [][]byte) (dict []byte, lines [][]byte) {
	starts := make([]int, len(words)+1)
	for i, w := range words {
		starts[i] = len(dict)
		dict = append(dict, w...)
		dict = append(dict, lineTerminator)
	}
	starts[len(words)] = len(dict)

	lines = make([][]byte, len(words))
	for i := range lines {
		lines[i] = dict[starts[i]:starts[i+1]]
	}
	return dict, lines
}
