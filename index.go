package dictidx

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"github.com/edsrzf/mmap-go"
)

// Index is a read-only exact-membership index over a dictionary buffer.
//
// Thread Safety:
// - Contains, Stats, and the other read methods are safe for concurrent use
// - Close is NOT safe to call concurrently with lookups
// - Close must only be called after all lookups have completed
// - After Close returns, no methods may be called on the Index
type Index struct {
	// Memory map (nil when the index was built with New)
	mmap mmap.MMap
	data []byte

	// Bucket boundary table, length NumBuckets+1. table[i] is the start
	// of bucket i's range in entries; the last slot is the closing
	// sentinel equal to len(entries).
	table []uint32

	// Compacted entries, grouped contiguously by bucket. Within a bucket
	// the order is insertion-reversed, an artifact of chain prepending;
	// lookups never rely on it.
	entries []entry

	// Hash used at build time; lookups must use the same one.
	hash HashFunc

	closed atomic.Bool // Atomic for lock-free close idempotency
}

// Stats holds index statistics.
type Stats struct {
	NumLines     int
	NumBuckets   int
	MaxChainLen  int
	IndexBytes   int64
	BytesPerLine float64
}

// New builds an index over a caller-owned dictionary buffer. The buffer
// must stay alive and unmodified for as long as the Index is in use:
// entries are offset views into data, not copies. Close on a New-built
// index is a no-op.
func New(data []byte, opts ...Option) (*Index, error) {
	cfg := defaultBuildConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	table, entries, err := build(data, cfg.hash)
	if err != nil {
		return nil, err
	}

	return &Index{
		data:    data,
		table:   table,
		entries: entries,
		hash:    cfg.hash,
	}, nil
}

// Open memory-maps the dictionary file at path and builds an index over
// the mapping. The returned Index owns the mapping; Close unmaps it.
func Open(path string, opts ...Option) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()
	return OpenFile(f, opts...)
}

// OpenFile memory-maps the given dictionary file and builds an index
// over the mapping. The caller is responsible for closing f. Per POSIX
// mmap(2), f may be closed immediately after OpenFile returns.
func OpenFile(f *os.File, opts ...Option) (*Index, error) {
	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat dictionary: %w", err)
	}
	if stat.Size() == 0 {
		// Zero-length files cannot be mapped. An empty dictionary still
		// indexes a single empty line.
		return New(nil, opts...)
	}

	mm, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mmap dictionary: %w", err)
	}

	data := []byte(mm)
	adviseSequential(data) // build passes scan front to back

	idx, err := New(data, opts...)
	if err != nil {
		return nil, errors.Join(err, mm.Unmap())
	}
	idx.mmap = mm

	adviseRandom(data) // steady-state lookups touch pages in no order
	return idx, nil
}

// Contains reports whether q exactly matches an indexed line. The match
// requires equal length and full byte equality. Stored lengths include
// the line terminator, so queries must too: "apple\n" matches the
// dictionary line "apple\n", "apple" does not.
func (idx *Index) Contains(q []byte) bool {
	b := idx.hash(q) % uint32(len(idx.table)-1)
	start, end := idx.table[b], idx.table[b+1]
	for _, e := range idx.entries[start:end] {
		if uint32(len(q)) == e.len && bytes.Equal(q, idx.data[e.off:e.off+e.len]) {
			return true
		}
	}
	return false
}

// NumLines returns the total number of indexed lines.
func (idx *Index) NumLines() int {
	return len(idx.entries)
}

// NumBuckets returns the number of hash buckets. Always equal to
// NumLines; the bucket count is fixed at build time and never resized.
func (idx *Index) NumBuckets() int {
	return len(idx.table) - 1
}

// Checksum returns an xxHash64 digest of the bucket table and entry
// array. Rebuilding from identical bytes with the same hash function
// yields an identical digest, making this a cheap rebuild-determinism
// and corruption probe.
func (idx *Index) Checksum() uint64 {
	d := xxhash.New()
	var buf [8]byte
	for _, t := range idx.table {
		binary.LittleEndian.PutUint32(buf[:4], t)
		d.Write(buf[:4])
	}
	for _, e := range idx.entries {
		binary.LittleEndian.PutUint32(buf[0:4], e.off)
		binary.LittleEndian.PutUint32(buf[4:8], e.len)
		d.Write(buf[:])
	}
	return d.Sum64()
}

// Stats returns statistics for the index.
func (idx *Index) Stats() *Stats {
	maxChain := 0
	for b := 0; b < len(idx.table)-1; b++ {
		if n := int(idx.table[b+1] - idx.table[b]); n > maxChain {
			maxChain = n
		}
	}

	indexBytes := int64(len(idx.table))*4 + int64(len(idx.entries))*8

	bytesPerLine := float64(0)
	if len(idx.entries) > 0 {
		bytesPerLine = float64(indexBytes) / float64(len(idx.entries))
	}

	return &Stats{
		NumLines:     len(idx.entries),
		NumBuckets:   len(idx.table) - 1,
		MaxChainLen:  maxChain,
		IndexBytes:   indexBytes,
		BytesPerLine: bytesPerLine,
	}
}

// Close unmaps the dictionary when the index owns a mapping and releases
// nothing otherwise. Safe to call more than once.
func (idx *Index) Close() error {
	if idx.closed.Swap(true) {
		return nil // Already closed
	}

	if idx.mmap != nil {
		return idx.mmap.Unmap()
	}
	return nil
}
