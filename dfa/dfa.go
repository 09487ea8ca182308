// Package dfa implements deterministic finite automata compiled from the
// nfa package's Thompson-construction NFAs via the powerset construction,
// followed by partition-style minimization.
//
// A DFA is dense and total: every state has exactly 256 outgoing
// transitions, one per possible input byte, so matching never needs to
// special-case "no transition". States additionally carry an Accepting
// flag and a Terminating flag (set when every one of a state's 256
// transitions loops back to itself, meaning the match result is already
// decided and the rest of the input need not be read).
package dfa

import (
	"github.com/ltregex/ltregex/internal/bitset"
	"github.com/ltregex/ltregex/nfa"
	"github.com/ltregex/ltregex/symset"
)

// StateID addresses a DFA state within a DFA's arena.
type StateID int

// noState marks a builder transition slot not yet computed, distinct from
// the (legitimate) StateID 0.
const noState StateID = -1

// State is a single dense DFA node.
type State struct {
	Transitions [256]StateID
	Accepting   bool
	Terminating bool
}

// DFA is a totally-defined deterministic automaton: States[Initial] is the
// start state.
type DFA struct {
	States  []State
	Initial StateID
}

// builder holds an in-progress powerset construction over the NFA n: the
// DFA states allocated so far, the NFA-state bitset of each, and an index
// from bitset to state id. Its step method computes the DFA state reached
// by consuming chr from state from, allocating a new DFA state the first
// time a given powerset is seen.
type builder struct {
	n        *nfa.NFA
	byBitset map[string]StateID
	states   []State
	bitsets  []bitset.Set
}

func closureUnion(n *nfa.NFA, seedIDs []nfa.StateID, reversed bool) bitset.Set {
	seen := bitset.New(n.Size())
	mark := func(id nfa.StateID) { seen.Add(int(id)) }
	has := func(id nfa.StateID) bool { return seen.Get(int(id)) }
	for _, id := range seedIDs {
		if reversed {
			n.DeltaClosure(id, has, mark)
		} else {
			n.EpsilonClosure(id, has, mark)
		}
	}
	return seen
}

func (b *builder) stateFor(bs bitset.Set) StateID {
	key := string(bs)
	if id, ok := b.byBitset[key]; ok {
		return id
	}

	finalState := b.n.Final
	if b.n.Reversed {
		finalState = b.n.Initial
	}
	accepting := bs.Get(int(finalState))
	if b.n.Complemented {
		accepting = !accepting
	}

	st := State{Accepting: accepting}
	for i := range st.Transitions {
		st.Transitions[i] = noState
	}

	id := StateID(len(b.states))
	b.states = append(b.states, st)
	b.bitsets = append(b.bitsets, bs)
	b.byBitset[key] = id
	return id
}

func (b *builder) step(from StateID, chr byte) StateID {
	bs := b.bitsets[from]
	var seeds []nfa.StateID
	if !b.n.Reversed {
		for id := 0; id < b.n.Size(); id++ {
			if bs.Get(id) && b.n.States[id].Label.Get(chr) {
				seeds = append(seeds, b.n.States[id].Target)
			}
		}
	} else {
		for id := 0; id < b.n.Size(); id++ {
			if bs.Get(id) {
				src := b.n.States[id].Source
				if src != nfa.None && b.n.States[src].Label.Get(chr) {
					seeds = append(seeds, src)
				}
			}
		}
	}
	closure := closureUnion(b.n, seeds, b.n.Reversed)
	return b.stateFor(closure)
}

// Compile performs the full powerset construction followed by
// distinguishability-based minimization, producing a dense total DFA
// equivalent to n.
func Compile(n *nfa.NFA) *DFA {
	b := &builder{n: n, byBitset: map[string]StateID{}}

	var initialSeeds []nfa.StateID
	if !n.Reversed {
		initialSeeds = []nfa.StateID{n.Initial}
	} else {
		initialSeeds = []nfa.StateID{n.Final}
	}
	initial := b.stateFor(closureUnion(n, initialSeeds, n.Reversed))

	for id := StateID(0); int(id) < len(b.states); id++ {
		for chr := 0; chr < 256; chr++ {
			b.states[id].Transitions[chr] = b.step(id, byte(chr))
		}
	}

	d := &DFA{States: b.states, Initial: initial}
	minimize(d)
	markTerminating(d)
	return d
}

// distinguishable computes, via fixed-point iteration, which pairs of
// states accept provably different languages.
func distinguishable(d *DFA) [][]bool {
	n := len(d.States)
	dis := make([][]bool, n)
	for i := range dis {
		dis[i] = make([]bool, n)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if d.States[i].Accepting != d.States[j].Accepting {
				dis[i][j], dis[j][i] = true, true
			}
		}
	}

	for changed := true; changed; {
		changed = false
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if dis[i][j] {
					continue
				}
				for chr := 0; chr < 256; chr++ {
					ti, tj := d.States[i].Transitions[chr], d.States[j].Transitions[chr]
					if ti != tj && dis[ti][tj] {
						dis[i][j], dis[j][i] = true, true
						changed = true
						break
					}
				}
			}
		}
	}

	return dis
}

// minimize merges indistinguishable states in place. The powerset
// construction never produces unreachable states, so no reachability
// pruning is needed afterward.
func minimize(d *DFA) {
	dis := distinguishable(d)
	n := len(d.States)

	// rep[i] is the surviving representative state id for state i.
	rep := make([]StateID, n)
	for i := range rep {
		rep[i] = StateID(i)
	}
	dead := make([]bool, n)

	for i := 0; i < n; i++ {
		if dead[i] {
			continue
		}
		for j := i + 1; j < n; j++ {
			if dead[j] || dis[i][j] {
				continue
			}
			dead[j] = true
			rep[j] = StateID(i)
		}
	}

	for i := range rep {
		for dead[rep[i]] {
			rep[i] = rep[rep[i]]
		}
	}

	// renumber surviving states densely.
	renumber := make([]StateID, n)
	var survivors []State
	for i := 0; i < n; i++ {
		if dead[i] {
			continue
		}
		renumber[i] = StateID(len(survivors))
		survivors = append(survivors, d.States[i])
	}

	for i := range survivors {
		for chr := 0; chr < 256; chr++ {
			survivors[i].Transitions[chr] = renumber[rep[survivors[i].Transitions[chr]]]
		}
	}

	d.States = survivors
	d.Initial = renumber[rep[d.Initial]]
}

func markTerminating(d *DFA) {
	for i := range d.States {
		term := true
		for chr := 0; chr < 256; chr++ {
			if d.States[i].Transitions[chr] != StateID(i) {
				term = false
				break
			}
		}
		d.States[i].Terminating = term
	}
}

// Matches reports whether input belongs to the language d accepts. Running
// time is linear in len(input), and stops early once a terminating state
// is reached.
func Matches(d *DFA, input []byte) bool {
	s := d.Initial
	for i := 0; i < len(input) && !d.States[s].Terminating; i++ {
		s = d.States[s].Transitions[input[i]]
	}
	return d.States[s].Accepting
}

// Equivalent reports whether a and b accept the same language. Every DFA
// produced by Compile is minimal, and minimal DFAs are unique up to
// renumbering, so this reduces to checking for an initial-state-preserving
// graph isomorphism.
func Equivalent(a, b *DFA) bool {
	if len(a.States) != len(b.States) {
		return false
	}

	n := len(a.States)
	mapping := make([]StateID, n)
	for i := range mapping {
		mapping[i] = -1
	}
	mapping[a.Initial] = b.Initial

	for i := 0; i < n; i++ {
		for chr := 0; chr < 256; chr++ {
			mapping[a.States[i].Transitions[chr]] = b.States[mapping[i]].Transitions[chr]
		}
	}

	if mapping[a.Initial] != b.Initial {
		return false
	}
	for i := 0; i < n; i++ {
		if mapping[i] == -1 {
			return false
		}
		if a.States[i].Accepting != b.States[mapping[i]].Accepting {
			return false
		}
		for chr := 0; chr < 256; chr++ {
			if mapping[a.States[i].Transitions[chr]] != b.States[mapping[i]].Transitions[chr] {
				return false
			}
		}
	}

	return true
}

// transitionClass groups target state ids by the symset of bytes that lead
// to them from state id in d.
func transitionClass(d *DFA, from StateID) map[StateID]symset.Set {
	out := map[StateID]symset.Set{}
	for chr := 0; chr < 256; chr++ {
		to := d.States[from].Transitions[chr]
		s := out[to]
		s.Add(byte(chr))
		out[to] = s
	}
	return out
}
