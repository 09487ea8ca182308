// Package prefilter extracts literal requirements from a compiled automaton
// and uses them to skip over input that cannot possibly match before the
// full automaton ever runs.
//
// Unlike an AST-based extractor, this one walks the compiled dfa.DFA
// directly: a byte is a required prefix (or suffix) byte when, from the
// current state, every one of the 256 transitions funnels through a single
// target state on a single labeled byte. That is exactly the shape of a
// state machine built from a literal substring, and it falls out of the
// same dense, total transition table dfa.Compile already produces.
package prefilter

import (
	"github.com/ltregex/ltregex/dfa"
	"github.com/ltregex/ltregex/symset"
)

// Config bounds how much literal material ExtractPrefix and ExtractSuffix
// are willing to walk out of a DFA.
//
// MaxLen prevents unbounded walks over long chains of single-byte states
// (and, transitively, unbounded memory for the returned literal). Default:
// 64.
type Config struct {
	MaxLen int
}

// DefaultConfig returns the default extraction configuration.
func DefaultConfig() Config {
	return Config{MaxLen: 64}
}

// soleTransition reports whether state id in d has exactly one byte value
// that avoids the dead (non-accepting, terminating) reject sink: every
// other byte leads to certain non-acceptance. When true, that byte is
// required of any string matching from id onward, b is that byte, and to
// is the (live) state it leads to.
func soleTransition(d *dfa.DFA, id dfa.StateID) (b byte, to dfa.StateID, ok bool) {
	byTarget := map[dfa.StateID]symset.Set{}
	for chr := 0; chr < 256; chr++ {
		t := d.States[id].Transitions[chr]
		s := byTarget[t]
		s.Add(byte(chr))
		byTarget[t] = s
	}

	var liveTarget dfa.StateID
	liveCount := 0
	for t, s := range byTarget {
		if isDead(d, t) {
			continue
		}
		liveTarget = t
		liveCount += s.Count()
	}
	if liveCount != 1 {
		// Either no live continuation (dead end) or more than one byte
		// value can still lead to a match: no single byte is required.
		return 0, 0, false
	}

	s := byTarget[liveTarget]
	for chr := 0; chr < 256; chr++ {
		if s.Get(byte(chr)) {
			return byte(chr), liveTarget, true
		}
	}
	panic("unreachable: liveCount == 1 but no byte found")
}

// isDead reports whether id is a non-accepting terminating state: once
// entered, no further input can lead to a match.
func isDead(d *dfa.DFA, id dfa.StateID) bool {
	return d.States[id].Terminating && !d.States[id].Accepting
}

// ExtractPrefix returns the longest literal byte sequence that every string
// d accepts is guaranteed to start with. It returns nil if d's initial
// state already branches (no required prefix byte).
func ExtractPrefix(d *dfa.DFA, cfg Config) []byte {
	var lit []byte
	id := d.Initial
	for len(lit) < cfg.MaxLen {
		b, to, ok := soleTransition(d, id)
		if !ok {
			break
		}
		lit = append(lit, b)
		id = to
		if d.States[id].Accepting {
			// A match can end here; bytes beyond this point are optional,
			// not required, so the prefix stops growing.
			break
		}
	}
	return lit
}

// ExtractSuffix returns the longest literal byte sequence that every string
// d accepts is guaranteed to end with. It walks the same single-byte-chain
// shape as ExtractPrefix but over d's reverse transition relation.
func ExtractSuffix(d *dfa.DFA, cfg Config) []byte {
	preds := reverseEdges(d)

	accepting := acceptingStates(d)
	if len(accepting) != 1 {
		// Multiple accepting states (or none) means no single suffix chain
		// is shared by every accepted string.
		return nil
	}
	id := accepting[0]

	var rev []byte
	for len(rev) < cfg.MaxLen {
		b, from, ok := soleReversePredecessor(d, preds, id)
		if !ok {
			break
		}
		rev = append(rev, b)
		id = from
		if id == d.Initial {
			break
		}
	}

	lit := make([]byte, len(rev))
	for i, b := range rev {
		lit[len(rev)-1-i] = b
	}
	return lit
}

func acceptingStates(d *dfa.DFA) []dfa.StateID {
	var out []dfa.StateID
	for i := range d.States {
		if d.States[i].Accepting {
			out = append(out, dfa.StateID(i))
		}
	}
	return out
}

// reverseEdges builds, for each state, the set of (from, byte) pairs whose
// transition lands on it.
func reverseEdges(d *dfa.DFA) map[dfa.StateID][]struct {
	From dfa.StateID
	Byte byte
} {
	preds := map[dfa.StateID][]struct {
		From dfa.StateID
		Byte byte
	}{}
	for from := range d.States {
		for chr := 0; chr < 256; chr++ {
			to := d.States[from].Transitions[chr]
			preds[to] = append(preds[to], struct {
				From dfa.StateID
				Byte byte
			}{dfa.StateID(from), byte(chr)})
		}
	}
	return preds
}

// soleReversePredecessor reports whether id has exactly one live
// predecessor edge (ignoring self-loops and dead states), returning its
// byte and source state.
func soleReversePredecessor(d *dfa.DFA, preds map[dfa.StateID][]struct {
	From dfa.StateID
	Byte byte
}, id dfa.StateID) (b byte, from dfa.StateID, ok bool) {
	var found bool
	var foundByte byte
	var foundFrom dfa.StateID

	for _, e := range preds[id] {
		if e.From == id || isDead(d, e.From) {
			continue
		}
		if found {
			return 0, 0, false
		}
		found = true
		foundByte = e.Byte
		foundFrom = e.From
	}

	if !found {
		return 0, 0, false
	}
	return foundByte, foundFrom, true
}
