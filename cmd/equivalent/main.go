// Command equivalent reads tab-separated pattern pairs from stdin, one pair
// per line, and writes "equivalent" or "not equivalent" for each to stdout.
//
// A line missing its tab separator, or containing a pattern that fails to
// parse, is reported to stderr and does not stop processing of subsequent
// lines.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/ltregex/ltregex"
)

func main() {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()

		left, right, ok := strings.Cut(line, "\t")
		if !ok {
			fmt.Fprintln(os.Stderr, "format error: could not find tab separator")
			continue
		}

		re1, err := ltregex.Compile(left)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		re2, err := ltregex.Compile(right)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}

		if ltregex.Equivalent(re1, re2) {
			fmt.Println("equivalent")
		} else {
			fmt.Println("not equivalent")
		}
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "equivalent: reading stdin: %v\n", err)
		os.Exit(1)
	}
}
