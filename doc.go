// Package dictidx implements a compact exact-membership index over
// newline-delimited word lists.
//
// The index hashes every line of a static dictionary into as many buckets
// as there are lines, chains collisions through a temporary arena during a
// single build pass, then compacts the chains into one contiguous
// (offset, length) array plus a bucket-boundary table. Steady state costs
// 12 bytes per line regardless of line length; a lookup reads two table
// slots and linearly scans one bucket.
//
// # Basic Usage
//
// Building over bytes you already hold:
//
//	idx, err := dictidx.New(dict)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ok := idx.Contains([]byte("apple\n"))
//
// Memory-mapping a dictionary file:
//
//	idx, err := dictidx.Open("words.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer idx.Close()
//
//	if idx.Contains([]byte("apple\n")) {
//	    fmt.Println("present")
//	}
//
// Lines are stored terminator-included: a query must carry the same
// trailing newline the dictionary line does, or it misses by one byte.
//
// The built index is immutable. Contains is safe for arbitrarily many
// concurrent callers; Close is NOT safe to call concurrently with Contains
// and must only run after all lookups have completed.
//
// # Package Structure
//
//   - Public API: index.go (New, Open, OpenFile, Contains), options.go (Option, With* functions)
//   - Construction: builder.go (arena chains, compaction), lines.go (line enumeration)
//   - Hashing: hash.go (fold hash, XXH3Hash)
//   - Platform: advise_*.go (OS-specific mapping hints)
package dictidx
