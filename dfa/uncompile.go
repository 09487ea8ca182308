package dfa

import "github.com/ltregex/ltregex/nfa"

// Uncompile lifts a DFA back into an NFA that accepts the same language,
// with Complemented and Reversed both false.
//
// A dstate may have incoming and outgoing labeled transitions from and to
// several distinct states, but an nstate carries at most one incoming and
// one outgoing labeled transition. To bridge the gap, each DFA state maps
// not to a single NFA state but to the head of two chains of NFA states:
// one threaded forward through Epsilon0/Delta0 ("source chain", extended
// whenever a DFA state needs another outgoing labeled edge) and one
// leading back to the head through Epsilon1/Delta1 ("target chain",
// extended whenever it needs another incoming one).
func Uncompile(d *DFA) *nfa.NFA {
	out := &nfa.NFA{}
	anchor := out.Alloc() // pure bookkeeping state, becomes out.Initial

	n := len(d.States)
	origs := make([]nfa.StateID, n)  // first-allocated state per dstate
	heads := make([]nfa.StateID, n)  // current source-chain cursor per dstate
	tails := make([]nfa.StateID, n)  // current target-chain cursor per dstate
	for i := 0; i < n; i++ {
		id := out.Alloc()
		origs[i] = id
		heads[i] = id
		tails[i] = id
	}

	out.Initial = anchor
	out.States[anchor].Epsilon0 = origs[d.Initial]
	out.States[origs[d.Initial]].Delta0 = anchor

	for i := 0; i < n; i++ {
		classes := transitionClass(d, StateID(i))
		for to, label := range classes {
			src := heads[i]
			if out.States[src].Target != nfa.None {
				source := out.Alloc()
				out.States[src].Epsilon0 = source
				out.States[source].Delta0 = src
				src = source
				heads[i] = source
			}

			tgt := tails[to]
			if out.States[tgt].Source != nfa.None {
				target := out.Alloc()
				out.States[target].Epsilon1 = tgt
				out.States[tgt].Delta1 = target
				tgt = target
				tails[to] = target
			}

			out.States[src].Target = tgt
			out.States[tgt].Source = src
			out.States[src].Label = label
		}
	}

	// Waterfall accepting states into a shared final sink through an
	// Epsilon0 chain, each fed by the matching accepting state's Epsilon1.
	final := out.Alloc()
	out.Final = final
	for i := 0; i < n; i++ {
		if !d.States[i].Accepting {
			continue
		}
		out.States[origs[i]].Epsilon1 = out.Final
		out.States[out.Final].Delta1 = origs[i]
		out.PadFinal()
	}

	return out
}
