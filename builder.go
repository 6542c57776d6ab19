package dictidx

import (
	"math"

	dicterrors "github.com/dictidx/dictidx/errors"
)

// arenaNode is one link in a bucket's build-time collision chain.
// Chains are threaded through a flat arena by index instead of by
// pointer; index 0 is the nil sentinel, so live nodes start at 1.
type arenaNode struct {
	off  uint32
	len  uint32
	prev uint32
}

// entry is one compacted (offset, length) view into the dictionary
// buffer. Entries never own bytes.
type entry struct {
	off uint32
	len uint32
}

// build runs the two-pass construction over data.
//
// Pass 1 scans the dictionary once and prepends each line onto its
// bucket's arena chain: O(1) per line, no probing, no resizing, because
// the bucket count is fixed to the line count up front.
//
// Pass 2 walks buckets in increasing order and flattens every chain into
// one contiguous entry array, recording each bucket's start offset in
// table[i]. table[numBuckets] closes the last bucket's range, so every
// range is [table[i], table[i+1]) with no special case. The arena is
// unreachable once build returns; only the flat layout is ever served.
func build(data []byte, hash HashFunc) (table []uint32, entries []entry, err error) {
	if uint64(len(data)) > math.MaxUint32 {
		return nil, nil, dicterrors.ErrDictionaryTooLarge
	}
	numLines := uint64(CountLines(data))
	if numLines >= math.MaxUint32 {
		return nil, nil, dicterrors.ErrTooManyLines
	}
	numBuckets := uint32(numLines)

	// Pass 1: LIFO chain prepend into the arena.
	heads := make([]uint32, numBuckets)
	arena := make([]arenaNode, numLines+1) // slot 0 reserved as nil
	next := uint32(1)
	forEachLine(data, func(off, length uint32) {
		b := hash(data[off:off+length]) % numBuckets
		arena[next] = arenaNode{off: off, len: length, prev: heads[b]}
		heads[b] = next
		next++
	})

	// Pass 2: compact chains into the boundary table + entry array.
	table = make([]uint32, numBuckets+1)
	entries = make([]entry, 0, numLines)
	for b := uint32(0); b < numBuckets; b++ {
		table[b] = uint32(len(entries))
		for ptr := heads[b]; ptr != 0; ptr = arena[ptr].prev {
			entries = append(entries, entry{off: arena[ptr].off, len: arena[ptr].len})
		}
	}
	table[numBuckets] = uint32(len(entries))

	return table, entries, nil
}
