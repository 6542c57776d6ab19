// Bench is a benchmarking tool for measuring dictidx build performance,
// query throughput, and memory usage.
//
// Usage:
//
//	go run ./cmd/bench -lines 10000000 -wordlen 12 -workers 8
//
// Flags:
//
//	-lines     Number of dictionary lines to generate (default: 10,000,000)
//	-wordlen   Maximum word length in bytes (default: 12)
//	-queries   Number of lookup queries per phase (default: 10,000,000)
//	-workers   Goroutines for the parallel query phase (default: GOMAXPROCS)
//	-xxh3      Use the xxHash3 bucket hash instead of the default fold hash
package main

import (
	"flag"
	"fmt"
	mrand "math/rand/v2"
	"runtime"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/spaolacci/murmur3"
	"golang.org/x/sync/errgroup"

	"github.com/dictidx/dictidx"
)

// getMaxRSS returns the maximum resident set size in bytes.
// Uses getrusage(RUSAGE_SELF) which tracks peak RSS since process start.
func getMaxRSS() uint64 {
	var rusage syscall.Rusage
	if err := syscall.Getrusage(syscall.RUSAGE_SELF, &rusage); err != nil {
		return 0
	}
	// On macOS, MaxRss is in bytes. On Linux, it's in kilobytes.
	maxRSS := uint64(rusage.Maxrss)
	if runtime.GOOS == "linux" {
		maxRSS *= 1024 // Convert KB to bytes on Linux
	}
	return maxRSS
}

// generateDict builds a newline-terminated dictionary buffer of numLines
// random lowercase words and returns the buffer plus each line's extent,
// terminator included.
func generateDict(rng *mrand.Rand, numLines, maxWordLen int) (dict []byte, lines [][]byte) {
	dict = make([]byte, 0, numLines*(maxWordLen/2+2))
	starts := make([]int, numLines+1)
	for i := 0; i < numLines; i++ {
		starts[i] = len(dict)
		wordLen := 1 + rng.IntN(maxWordLen)
		for j := 0; j < wordLen; j++ {
			dict = append(dict, byte('a'+rng.IntN(26)))
		}
		dict = append(dict, '\n')
	}
	starts[numLines] = len(dict)

	lines = make([][]byte, numLines)
	for i := range lines {
		lines[i] = dict[starts[i]:starts[i+1]]
	}
	return dict, lines
}

func main() {
	linesFlag := flag.Int("lines", 10_000_000, "number of dictionary lines")
	wordLenFlag := flag.Int("wordlen", 12, "maximum word length in bytes")
	queriesFlag := flag.Int("queries", 10_000_000, "number of lookup queries per phase")
	workersFlag := flag.Int("workers", runtime.GOMAXPROCS(0), "goroutines for the parallel query phase")
	xxh3Flag := flag.Bool("xxh3", false, "use the xxHash3 bucket hash")
	flag.Parse()

	numLines := *linesFlag
	numQueries := *queriesFlag
	workers := *workersFlag

	rng := mrand.New(mrand.NewPCG(0x1234567890abcdef, 0xfedcba9876543210))

	fmt.Println("Generating dictionary...")
	dict, lines := generateDict(rng, numLines, *wordLenFlag)
	fmt.Printf("  %d lines, %.1f MiB\n", numLines, float64(len(dict))/(1<<20))

	// Raw hash throughput baseline over the same lines.
	fmt.Println("Hashing lines (murmur3 baseline)...")
	hashStart := time.Now()
	seed := uint32(0x1234)
	for _, line := range lines {
		murmur3.Sum32WithSeed(line, seed)
	}
	hashDuration := time.Since(hashStart)
	fmt.Printf("  %.2fs (%.1f M lines/s)\n", hashDuration.Seconds(),
		float64(numLines)/hashDuration.Seconds()/1e6)

	var opts []dictidx.Option
	if *xxh3Flag {
		opts = append(opts, dictidx.WithHashFunc(dictidx.XXH3Hash(0x9e3779b97f4a7c15)))
	}

	fmt.Println("Building index...")
	buildStart := time.Now()
	idx, err := dictidx.New(dict, opts...)
	if err != nil {
		fmt.Println("build failed:", err)
		return
	}
	buildDuration := time.Since(buildStart)

	stats := idx.Stats()
	fmt.Printf("  build: %.2fs (%.1f M lines/s)\n", buildDuration.Seconds(),
		float64(numLines)/buildDuration.Seconds()/1e6)
	fmt.Printf("  index: %.1f MiB (%.1f bytes/line), max chain %d\n",
		float64(stats.IndexBytes)/(1<<20), stats.BytesPerLine, stats.MaxChainLen)
	fmt.Printf("  max RSS: %.1f MiB\n", float64(getMaxRSS())/(1<<20))

	fmt.Println("Querying (single goroutine)...")
	queryStart := time.Now()
	hits := 0
	for i := 0; i < numQueries; i++ {
		if idx.Contains(lines[rng.IntN(numLines)]) {
			hits++
		}
	}
	queryDuration := time.Since(queryStart)
	fmt.Printf("  %.2fs (%.0f ns/op, %d/%d hits)\n", queryDuration.Seconds(),
		float64(queryDuration.Nanoseconds())/float64(numQueries), hits, numQueries)

	fmt.Printf("Querying (%d goroutines)...\n", workers)
	var totalHits atomic.Uint64
	perWorker := numQueries / workers
	parallelStart := time.Now()
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			wrng := mrand.New(mrand.NewPCG(uint64(w), 0xabcdef))
			h := uint64(0)
			for i := 0; i < perWorker; i++ {
				if idx.Contains(lines[wrng.IntN(numLines)]) {
					h++
				}
			}
			totalHits.Add(h)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Println("parallel query failed:", err)
		return
	}
	parallelDuration := time.Since(parallelStart)
	total := perWorker * workers
	fmt.Printf("  %.2fs (%.1f M ops/s, %d/%d hits)\n", parallelDuration.Seconds(),
		float64(total)/parallelDuration.Seconds()/1e6, totalHits.Load(), total)
}
