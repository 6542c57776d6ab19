package dictidx

import (
	"testing"
)

func TestCountLines(t *testing.T) {
	cases := []struct {
		name string
		data string
		want int
	}{
		{"empty", "", 1},
		{"single terminator", "\n", 1},
		{"two terminators", "\n\n", 2},
		{"unterminated word", "apple", 1},
		{"terminated word", "apple\n", 1},
		{"three terminated", "apple\nbanana\ncherry\n", 3},
		{"unterminated tail", "apple\nbanana", 2},
		{"empty middle line", "a\n\nb\n", 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CountLines([]byte(tc.data)); got != tc.want {
				t.Errorf("CountLines(%q) = %d, want %d", tc.data, got, tc.want)
			}
		})
	}
}

type extent struct {
	off, len uint32
}

func collectLines(data []byte) []extent {
	var got []extent
	forEachLine(data, func(off, length uint32) {
		got = append(got, extent{off, length})
	})
	return got
}

func TestForEachLineExtents(t *testing.T) {
	cases := []struct {
		name string
		data string
		want []extent
	}{
		{"empty", "", []extent{{0, 0}}},
		{"three terminated", "apple\nbanana\ncherry\n", []extent{{0, 6}, {6, 7}, {13, 7}}},
		{"unterminated tail", "apple\nbanana", []extent{{0, 6}, {6, 6}}},
		{"lone terminator", "\n", []extent{{0, 1}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := collectLines([]byte(tc.data))
			if len(got) != len(tc.want) {
				t.Fatalf("forEachLine(%q): got %d lines, want %d", tc.data, len(got), len(tc.want))
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("line %d: got %+v, want %+v", i, got[i], tc.want[i])
				}
			}
		})
	}
}

// forEachLine and CountLines must agree for any input: the builder sizes
// its allocations from the count and fills them from the iteration.
func TestForEachLineAgreesWithCount(t *testing.T) {
	rng := newTestRNG(t)

	for trial := 0; trial < 100; trial++ {
		data := make([]byte, rng.IntN(512))
		for i := range data {
			if rng.IntN(6) == 0 {
				data[i] = lineTerminator
			} else {
				data[i] = byte(rng.IntN(256))
			}
		}

		want := CountLines(data)
		got := collectLines(data)
		if len(got) != want {
			t.Fatalf("trial %d: forEachLine emitted %d lines, CountLines = %d (data %q)",
				trial, len(got), want, data)
		}

		// Extents must tile the buffer exactly.
		pos := uint32(0)
		for i, e := range got {
			if e.off != pos {
				t.Fatalf("trial %d: line %d starts at %d, want %d", trial, i, e.off, pos)
			}
			pos += e.len
		}
		if pos != uint32(len(data)) {
			t.Fatalf("trial %d: extents cover %d bytes, buffer has %d", trial, pos, len(data))
		}

		// Every non-final line ends with the terminator.
		for i, e := range got[:len(got)-1] {
			if data[e.off+e.len-1] != lineTerminator {
				t.Fatalf("trial %d: line %d not terminated: %q", trial, i, data[e.off:e.off+e.len])
			}
		}
	}
}
