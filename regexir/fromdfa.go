package regexir

import (
	"github.com/ltregex/ltregex/dfa"
	"github.com/ltregex/ltregex/symset"
)

// FromDFA decompiles d into an equivalent Regex using the classic GNFA
// state-elimination algorithm: every DFA state becomes a GNFA state, two
// fresh states S and E are added as the unique start and end, and states
// are removed one at a time (each removal folding its incoming and
// outgoing arrows, plus any self-loop, into a single arrow between each of
// its neighbors) until only S and E remain, connected by one arrow, which
// is the answer.
//
// The result is not simplified; call Simplify before Format for readable
// output.
func FromDFA(d *dfa.DFA) *Regex {
	n := len(d.States)
	s, e := n, n+1
	size := n + 2

	arrows := make([][]*Regex, size)
	for i := range arrows {
		arrows[i] = make([]*Regex, size)
	}

	arrows[s][int(d.Initial)] = Epsilon()

	for i := 0; i < n; i++ {
		byTarget := groupTransitions(d, i)
		for to, set := range byTarget {
			arrow := NewSymset(set)
			if existing := arrows[i][to]; existing != nil {
				arrow = NewAlt(existing, arrow)
			}
			arrows[i][to] = arrow
		}
		if d.States[i].Accepting {
			arrow := Epsilon()
			if existing := arrows[i][e]; existing != nil {
				arrow = NewAlt(existing, arrow)
			}
			arrows[i][e] = arrow
		}
	}

	remaining := make([]bool, size)
	for i := 0; i < n; i++ {
		remaining[i] = true
	}

	for {
		k := pickElimination(arrows, remaining, size)
		if k == -1 {
			break
		}

		loop := arrows[k][k]
		for i := 0; i < size; i++ {
			if i == k || !isLive(remaining, i, size, s, e) || arrows[i][k] == nil {
				continue
			}
			for j := 0; j < size; j++ {
				if j == k || !isLive(remaining, j, size, s, e) || arrows[k][j] == nil {
					continue
				}

				through := arrows[i][k]
				if loop != nil {
					through = NewConcat(through, NewStar(loop))
				}
				through = NewConcat(through, arrows[k][j])

				if existing := arrows[i][j]; existing != nil {
					through = NewAlt(existing, through)
				}
				arrows[i][j] = through
			}
		}

		remaining[k] = false
	}

	if result := arrows[s][e]; result != nil {
		return result
	}
	return EmptyLanguage()
}

func isLive(remaining []bool, id, size, s, e int) bool {
	if id == s || id == e {
		return true
	}
	return remaining[id]
}

// pickElimination chooses the next state to remove: the still-live,
// non-S/E state minimizing (in-degree * out-degree), the standard GNFA
// heuristic for keeping intermediate expressions small.
func pickElimination(arrows [][]*Regex, remaining []bool, size int) int {
	n := size - 2 // S, E are the last two ids
	best, bestCost := -1, -1

	for k := 0; k < n; k++ {
		if !remaining[k] {
			continue
		}

		inDeg, outDeg := 0, 0
		for i := 0; i < size; i++ {
			if i == k {
				continue
			}
			if arrows[i][k] != nil {
				inDeg++
			}
			if arrows[k][i] != nil {
				outDeg++
			}
		}

		cost := inDeg * outDeg
		if best == -1 || cost < bestCost {
			best, bestCost = k, cost
		}
	}

	return best
}

func groupTransitions(d *dfa.DFA, from int) map[int]symset.Set {
	out := map[int]symset.Set{}
	for chr := 0; chr < 256; chr++ {
		to := int(d.States[from].Transitions[chr])
		s := out[to]
		s.Add(byte(chr))
		out[to] = s
	}
	return out
}
