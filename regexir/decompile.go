package regexir

import "github.com/ltregex/ltregex/dfa"

// Decompile renders d as pattern syntax: GNFA state elimination followed by
// simplification and pretty-printing. The result, re-parsed and compiled,
// is equivalent to d (ltre_equivalent-style, not necessarily byte-for-byte
// the pattern d was originally compiled from).
func Decompile(d *dfa.DFA) string {
	return Format(Simplify(FromDFA(d)))
}
