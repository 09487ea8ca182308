package dfa

import "github.com/ltregex/ltregex/nfa"

// LazyMatcher matches against an NFA directly, building and caching DFA
// states on demand (the powerset construction run lazily) instead of
// precompiling the whole DFA up front. It amortizes well across repeated
// Matches calls against the same pattern, and avoids paying for DFA states
// a particular workload never visits.
type LazyMatcher struct {
	b *builder
}

// NewLazyMatcher returns a matcher for n with an empty state cache.
func NewLazyMatcher(n *nfa.NFA) *LazyMatcher {
	b := &builder{n: n, byBitset: map[string]StateID{}}

	var initialSeeds []nfa.StateID
	if !n.Reversed {
		initialSeeds = []nfa.StateID{n.Initial}
	} else {
		initialSeeds = []nfa.StateID{n.Final}
	}
	b.stateFor(closureUnion(n, initialSeeds, n.Reversed))

	return &LazyMatcher{b: b}
}

// Matches reports whether input belongs to the language m's NFA accepts,
// extending m's cached DFA state table as needed. Running time is linear
// in len(input).
func (m *LazyMatcher) Matches(input []byte) bool {
	s := StateID(0)
	for _, chr := range input {
		if m.b.states[s].Transitions[chr] == noState {
			m.b.states[s].Transitions[chr] = m.b.step(s, chr)
		}
		s = m.b.states[s].Transitions[chr]
	}
	return m.b.states[s].Accepting
}
