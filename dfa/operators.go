package dfa

import (
	"github.com/ltregex/ltregex/nfa"
	"github.com/ltregex/ltregex/symset"
)

var anySet = symset.Full

// Partial rewrites n in place to match if any substring of the input
// (rather than the whole input) matches the original language: effectively
// n is surrounded by a pair of "any byte, any number of times" loops.
//
// Partial lives in this package, rather than in nfa, because it must first
// canonicalize n, which requires a full compile/uncompile round trip.
func Partial(n *nfa.NFA) {
	Canonicalize(n)
	n.PadInitial()
	n.PadFinal()

	n.States[n.Initial].Target = n.Initial
	n.States[n.Initial].Source = n.Initial
	n.States[n.Initial].Label = anySet

	n.States[n.Final].Target = n.Final
	n.States[n.Final].Source = n.Final
	n.States[n.Final].Label = anySet
}

// IgnoreCase rewrites n in place for case-insensitive matching: every byte
// labeling a transition also gains its swapped-case counterpart.
func IgnoreCase(n *nfa.NFA) {
	Canonicalize(n)
	for i := range n.States {
		label := n.States[i].Label
		for chr := 0; chr < 256; chr++ {
			if label.Get(byte(chr)) {
				n.States[i].Label.Add(byte(toLower(chr)))
				n.States[i].Label.Add(byte(toUpper(chr)))
			}
		}
	}
}

func toLower(chr int) int {
	if chr >= 'A' && chr <= 'Z' {
		return chr + ('a' - 'A')
	}
	return chr
}

func toUpper(chr int) int {
	if chr >= 'a' && chr <= 'z' {
		return chr - ('a' - 'A')
	}
	return chr
}
