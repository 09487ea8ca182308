// Command complement reads patterns from stdin, one per line, and writes
// each pattern's complement back to stdout in pattern syntax.
//
// A parse error for a line is reported to stderr in the
// "parse error: <tag> near '<context>'" format and does not stop processing
// of subsequent lines.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/ltregex/ltregex"
)

func main() {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()

		re, err := ltregex.Compile(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}

		fmt.Println(re.Complement().Decompile())
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "complement: reading stdin: %v\n", err)
		os.Exit(1)
	}
}
