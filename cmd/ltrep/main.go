// Command ltrep is a grep-style front end: it prints every line of a file
// containing a substring matched by a pattern.
//
// The file is mapped read-only via golang.org/x/sys/unix.Mmap rather than
// read into a buffer, and the pattern is compiled in partial-match mode
// (Regex.Partial) so a match anywhere within a line counts. When the
// pattern has an extractable required literal (a mandatory prefix or
// suffix), each line is first checked with an Aho-Corasick scan from the
// prefilter package; only lines containing a required literal are then
// confirmed against the DFA. Patterns with no extractable literal fall back
// to a byte-by-byte DFA walk over the whole file.
package main

import (
	"bufio"
	"bytes"
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"github.com/ltregex/ltregex"
	"github.com/ltregex/ltregex/dfa"
	"github.com/ltregex/ltregex/prefilter"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "usage: %s <regex> <file>\n", os.Args[0])
		os.Exit(1)
	}
	pattern, path := os.Args[1], os.Args[2]

	re, err := ltregex.Compile(pattern)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	data, closeData, err := mmapFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ltrep: %v\n", err)
		os.Exit(1)
	}
	defer closeData()

	partial := re.Partial().DFA()

	cfg := prefilter.DefaultConfig()
	prefix := prefilter.ExtractPrefix(re.DFA(), cfg)
	suffix := prefilter.ExtractSuffix(re.DFA(), cfg)
	scanner, ok := prefilter.NewScanner(prefilter.RequiredLiterals(prefix, suffix))

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	if ok {
		scanLinesWithPrefilter(data, partial, scanner, out)
	} else {
		scanLinesPlain(data, partial, out)
	}
}

// mmapFile maps path read-only and returns its contents along with a
// closer that unmaps and closes the underlying descriptor. An empty file
// maps to a nil slice with a no-op closer, since mmap of a zero-length
// region is undefined.
func mmapFile(path string) ([]byte, func(), error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, err
	}

	size := info.Size()
	if size == 0 {
		f.Close()
		return nil, func() {}, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		f.Close()
		return nil, nil, err
	}

	return data, func() {
		unix.Munmap(data)
		f.Close()
	}, nil
}

// scanLinesPlain walks d over data one byte at a time, checking for
// acceptance at every newline (and at end of file for a final line lacking
// a trailing newline), printing each accepting line as it's found.
func scanLinesPlain(data []byte, d *dfa.DFA, out *bufio.Writer) {
	state := d.Initial
	lineStart := 0

	for i, b := range data {
		state = d.States[state].Transitions[b]
		if b != '\n' {
			continue
		}
		if d.States[state].Accepting {
			out.Write(data[lineStart : i+1])
		}
		lineStart = i + 1
		state = d.Initial
	}

	if lineStart < len(data) && d.States[state].Accepting {
		out.Write(data[lineStart:])
	}
}

// scanLinesWithPrefilter splits data into lines and runs scanner over each;
// only lines containing an occurrence of one of scanner's required literals
// are confirmed against d, and printed if d accepts them.
func scanLinesWithPrefilter(data []byte, d *dfa.DFA, scanner *prefilter.Scanner, out *bufio.Writer) {
	pos := 0
	for pos < len(data) {
		nl := bytes.IndexByte(data[pos:], '\n')
		lineEnd := len(data)
		if nl != -1 {
			lineEnd = pos + nl
		}

		line := data[pos:lineEnd]
		if scanner.Find(line, 0) >= 0 && matchesPartial(d, line) {
			out.Write(line)
			if nl != -1 {
				out.WriteByte('\n')
			}
		}

		if nl == -1 {
			break
		}
		pos = lineEnd + 1
	}
}

func matchesPartial(d *dfa.DFA, line []byte) bool {
	state := d.Initial
	for _, b := range line {
		state = d.States[state].Transitions[b]
	}
	return d.States[state].Accepting
}
