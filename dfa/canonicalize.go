package dfa

import "github.com/ltregex/ltregex/nfa"

// Canonicalize clears n's Complemented flag in place, if set, by routing
// n through the full compile-then-uncompile pipeline. This is needed before
// any routine that structurally mutates an NFA (quantifiers, Partial,
// IgnoreCase, alternation bridging), since those routines assume the
// graph itself denotes the language, with no outstanding lazy flags.
//
// Canonicalize panics if n.Reversed is set; no caller has needed to
// canonicalize a reversed NFA so far, and supporting it would require a
// separate reversed-uncompile path.
func Canonicalize(n *nfa.NFA) {
	if n.Reversed {
		panic("dfa: Canonicalize of a reversed NFA is not supported")
	}
	if !n.Complemented {
		return
	}

	d := Compile(n)
	canonicalized := Uncompile(d)
	*n = *canonicalized
}
