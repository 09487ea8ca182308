// Package nfa implements Thompson-construction nondeterministic finite
// automata over a byte alphabet.
//
// A State carries at most one labeled out-edge (Target) and at most two
// epsilon out-edges (Epsilon0, used for concatenation chaining, and
// Epsilon1, used for everything else), without loss of generality: any NFA
// can be rewritten into this shape. Each forward edge is mirrored by a dual
// backward edge (Source, Delta0, Delta1 respectively), maintained so that
// for every state s:
//
//	s.Target  != None  implies  States[s.Target].Source   == s
//	s.Epsilon0 != None implies  States[s.Epsilon0].Delta0  == s
//	s.Epsilon1 != None implies  States[s.Epsilon1].Delta1  == s
//
// The dual edges let an NFA be walked backward (as needed by reversal and by
// the DFA powerset construction operating on a reversed NFA) without a
// separate reverse-graph pass.
package nfa

import "github.com/ltregex/ltregex/symset"

// StateID addresses a State within an NFA's arena. The zero NFA has no
// states; valid ids start at 0.
type StateID int

// None is the sentinel StateID meaning "no edge".
const None StateID = -1

// State is a single NFA node.
type State struct {
	Label symset.Set // set of bytes labeling the Target transition

	Target, Source   StateID
	Epsilon0, Delta0 StateID
	Epsilon1, Delta1 StateID
}

func newState() State {
	return State{Target: None, Source: None, Epsilon0: None, Delta0: None, Epsilon1: None, Delta1: None}
}

// NFA is a Thompson-construction automaton: an arena of States plus an
// Initial and Final state id.
//
// Complemented and Reversed are lazy flags recording that the automaton
// denotes, respectively, the complement or the reversal of the language
// actually built up by its states. They are interpreted only when the NFA
// is compiled to a DFA (see the dfa package's powerset construction), which
// is far cheaper than eagerly rewriting the graph. Structural mutation
// (concatenation, quantifiers, ignorecase) requires Complemented to be
// false first; use dfa.Canonicalize to clear it.
type NFA struct {
	States  []State
	Initial StateID
	Final   StateID

	Complemented bool
	Reversed     bool
}

// New returns an empty NFA whose Initial and Final state is a single state
// with no outgoing transitions.
func New() *NFA {
	n := &NFA{Initial: 0, Final: 0}
	n.States = append(n.States, newState())
	return n
}

// Alloc appends a fresh, edgeless state to n and returns its id.
func (n *NFA) Alloc() StateID {
	n.States = append(n.States, newState())
	return StateID(len(n.States) - 1)
}

func (n *NFA) at(id StateID) *State {
	return &n.States[id]
}

// Clone returns an independent deep copy of n.
func (n *NFA) Clone() *NFA {
	out := &NFA{
		States:       make([]State, len(n.States)),
		Initial:      n.Initial,
		Final:        n.Final,
		Complemented: n.Complemented,
		Reversed:     n.Reversed,
	}
	copy(out.States, n.States)
	return out
}

// Concat appends other's graph onto n in place: n's final state is fused
// with other's initial state, and n's final state becomes other's final
// state. It performs a purely structural concatenation and ignores both
// NFAs' Complemented and Reversed flags; canonicalize both operands first
// if that matters.
func (n *NFA) Concat(other *NFA) {
	offset := StateID(len(n.States))

	if other.Initial == other.Final {
		// other contributes nothing but its final/initial fusion point;
		// nothing to append.
		return
	}

	if n.Initial == n.Final {
		n.States = append([]State(nil), other.States...)
		n.Initial = other.Initial
		n.Final = other.Final
		return
	}

	// Append other's states, shifting every internal id by offset, except
	// other's initial state which is fused into n's current final state.
	finalID := n.Final
	prev := n.States[finalID]
	remap := func(id StateID) StateID {
		if id == None {
			return None
		}
		if id == other.Initial {
			return finalID
		}
		return id + offset
	}

	n.States = append(n.States, make([]State, len(other.States))...)
	for i, s := range other.States {
		id := StateID(i) + offset
		if StateID(i) == other.Initial {
			id = finalID
		}
		n.States[id] = State{
			Label:    s.Label,
			Target:   remap(s.Target),
			Source:   remap(s.Source),
			Epsilon0: remap(s.Epsilon0),
			Delta0:   remap(s.Delta0),
			Epsilon1: remap(s.Epsilon1),
			Delta1:   remap(s.Delta1),
		}
	}

	// The fused state keeps the edges that already led into n's final state.
	fused := &n.States[finalID]
	if prev.Source != None {
		fused.Source = prev.Source
	}
	if prev.Delta0 != None {
		fused.Delta0 = prev.Delta0
	}
	if prev.Delta1 != None {
		fused.Delta1 = prev.Delta1
	}

	n.Final = remap(other.Final)
}

// PadInitial prepends a fresh epsilon-only state before n's current
// initial state, using the Epsilon0/Delta0 edge pair (the "concatenation"
// slot), and makes it the new initial state.
func (n *NFA) PadInitial() {
	initial := n.Alloc()
	n.at(initial).Epsilon0 = n.Initial
	n.at(n.Initial).Delta0 = initial
	n.Initial = initial
}

// PadFinal appends a fresh epsilon-only state after n's current final
// state, using the Epsilon0/Delta0 edge pair, and makes it the new final
// state.
func (n *NFA) PadFinal() {
	final := n.Alloc()
	n.at(n.Final).Epsilon0 = final
	n.at(final).Delta0 = n.Final
	n.Final = final
}

// FixedString returns an NFA matching exactly the literal byte sequence s.
// It never errors.
func FixedString(s string) *NFA {
	n := New()
	for i := 0; i < len(s); i++ {
		next := n.Alloc()
		n.at(n.Final).Target = next
		n.at(next).Source = n.Final
		n.at(n.Final).Label.Add(s[i])
		n.Final = next
	}
	return n
}

// Complement toggles the lazily-interpreted complement flag: the language
// an NFA with this flag set denotes is the complement of the language its
// graph would otherwise denote.
func (n *NFA) Complement() {
	n.Complemented = !n.Complemented
}

// Reverse toggles the lazily-interpreted reversal flag: the language an NFA
// with this flag set denotes is the reversal of the language its graph
// would otherwise denote.
func (n *NFA) Reverse() {
	n.Reversed = !n.Reversed
}

// Size returns the number of states in n.
func (n *NFA) Size() int {
	return len(n.States)
}

// EpsilonClosure marks, through mark, every state id reachable from id by
// following only Epsilon0/Epsilon1 edges (including id itself), skipping ids
// for which seen reports true. seen and mark are a bitset-like callback
// pair; see internal/bitset for the
// concrete type used by the dfa package's powerset construction.
func (n *NFA) EpsilonClosure(id StateID, seen func(StateID) bool, mark func(StateID)) {
	if id == None || seen(id) {
		return
	}
	mark(id)
	n.EpsilonClosure(n.at(id).Epsilon0, seen, mark)
	n.EpsilonClosure(n.at(id).Epsilon1, seen, mark)
}

// DeltaClosure is dual to EpsilonClosure: it follows Delta0/Delta1 edges,
// equivalent to an epsilon-closure under reversal.
func (n *NFA) DeltaClosure(id StateID, seen func(StateID) bool, mark func(StateID)) {
	if id == None || seen(id) {
		return
	}
	mark(id)
	n.DeltaClosure(n.at(id).Delta0, seen, mark)
	n.DeltaClosure(n.at(id).Delta1, seen, mark)
}
