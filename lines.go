package dictidx

import "bytes"

// lineTerminator delimits lines. It is part of each stored line's length.
const lineTerminator = '\n'

// CountLines returns the number of lines in a dictionary buffer. Every
// terminated run counts once and a non-empty unterminated tail counts
// once more. Empty input counts as a single empty line, which the index
// stores like any other; callers get a useless but valid entry, not an
// error.
func CountLines(data []byte) int {
	if len(data) == 0 {
		return 1
	}
	n := bytes.Count(data, []byte{lineTerminator})
	if data[len(data)-1] != lineTerminator {
		n++
	}
	return n
}

// forEachLine calls fn with the (offset, length) of every line in data,
// in buffer order. Lengths include the terminator when one is present;
// an unterminated tail is passed without one. Emits exactly
// CountLines(data) calls.
func forEachLine(data []byte, fn func(off, length uint32)) {
	if len(data) == 0 {
		fn(0, 0)
		return
	}
	start := 0
	for start < len(data) {
		i := bytes.IndexByte(data[start:], lineTerminator)
		if i < 0 {
			fn(uint32(start), uint32(len(data)-start))
			return
		}
		fn(uint32(start), uint32(i+1))
		start += i + 1
	}
}
