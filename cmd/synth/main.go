// Command synth synthesizes a string accepted by a pattern by walking its
// DFA one transition at a time.
//
// At each state, if exactly one outgoing transition avoids every
// terminating (dead-end) state, that byte is forced and written
// automatically. If more than one transition is live, synth reads one byte
// from stdin to disambiguate which branch to take, and continues down that
// branch unconditionally (it does not re-check whether the chosen byte was
// itself a dead end — interactive use is expected to pick sensibly, and
// `stty -icanon -echo -nl` makes the best terminal for it). Synthesis stops
// when no outgoing transition is live; the exit status is 0 if the walk
// ended on an accepting state, 1 otherwise.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/ltregex/ltregex"
	"github.com/ltregex/ltregex/dfa"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: synth <pattern>")
		os.Exit(1)
	}

	re, err := ltregex.Compile(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	d := re.DFA()
	out := bufio.NewWriter(os.Stdout)
	in := bufio.NewReader(os.Stdin)

	state := d.Initial
	for {
		live := liveTransitions(d, state)
		if len(live) == 0 {
			break
		}

		var chr byte
		if len(live) == 1 {
			chr = live[0]
		} else {
			b, err := in.ReadByte()
			if err != nil {
				break
			}
			chr = b
		}

		if err := out.WriteByte(chr); err != nil {
			break
		}
		state = d.States[state].Transitions[chr]
	}

	out.Flush()
	if !d.States[state].Accepting {
		os.Exit(1)
	}
}

// liveTransitions returns every byte value whose transition out of state
// lands on a non-terminating state: one whose own eventual match/no-match
// answer isn't already decided, so continuing to extend the string there is
// still meaningful.
func liveTransitions(d *dfa.DFA, state dfa.StateID) []byte {
	var live []byte
	for chr := 0; chr < 256; chr++ {
		to := d.States[state].Transitions[chr]
		if !d.States[to].Terminating {
			live = append(live, byte(chr))
		}
	}
	return live
}
