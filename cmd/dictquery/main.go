// Dictquery answers exact-membership queries against a word list.
//
// Usage:
//
//	dictquery dictionary_file
//
// Each line read from standard input is looked up verbatim, trailing
// newline included, and answered with "<word>: YES" or "<word>: NO".
// The query "exit" terminates the loop.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/dictidx/dictidx"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s dictionary_file\n", os.Args[0])
		os.Exit(2)
	}

	idx, err := dictidx.Open(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer idx.Close()

	in := bufio.NewReader(os.Stdin)
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	for {
		line, readErr := in.ReadBytes('\n')
		if len(line) > 0 {
			word := strings.TrimSuffix(string(line), "\n")
			if word == "exit" {
				break
			}
			answer := "NO"
			// The stored length of a dictionary line includes its
			// newline, so the query keeps it too.
			if idx.Contains(line) {
				answer = "YES"
			}
			fmt.Fprintf(out, "%s: %s\n", word, answer)
		}
		if readErr != nil {
			break
		}
	}
}
