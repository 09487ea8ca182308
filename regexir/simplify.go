package regexir

import (
	"sort"

	"github.com/ltregex/ltregex/symset"
)

// Simplify rewrites r into an equivalent, shorter form using a fixed set of
// rewrite rules, iterated to a fixed point: flattening nested Alt/Concat,
// dropping identity elements (epsilon inside a Concat, the empty language
// inside an Alt), deduplicating identical Alt branches, fusing quantifier
// nestings that are equivalent to a single quantifier (e.g. (r*)* and (r?)*
// both simplify to r*), fusing adjacent quantified branches within a Concat
// (r*r* = r*), and a handful of Alt-level factoring rules (distributing a
// shared leading/trailing branch out of a Concat pair, folding a bare
// epsilon branch into Opt, absorbing a starred branch into a sibling,
// merging SymSet branches, and lifting a quantifier out through an Alt).
//
// Simplify does not mutate r; it returns a new tree.
func Simplify(r *Regex) *Regex {
	for {
		next := simplifyOnce(r)
		if Equal(next, r) {
			return next
		}
		r = next
	}
}

func simplifyOnce(r *Regex) *Regex {
	switch r.Kind {
	case KindSymset:
		return NewSymset(r.Symset)

	case KindStar, KindPlus, KindOpt:
		return simplifyQuantifier(r.Kind, simplifyOnce(r.Child))

	case KindConcat:
		return simplifyConcat(r.Children)

	case KindAlt:
		return simplifyAlt(r.Children)
	}
	return r.Clone()
}

// simplifyQuantifier fuses a quantifier applied to an already-quantified
// child (x** = x*, x*? = x*, x+* = x*, x*+ = x*, x?* = x*, x+? = x*, x?+ =
// x*), collapses a quantifier over an identity element (()* = (), []* = (),
// ()+ = (), []+ = [], ()? = (), []? = ()), and lifts a starred or plussed
// branch out through an Alt child ((r*|s)* = (r|s)*, (r+|s)+ = (r|s)+,
// (r*|s)? = r*|s, and their mirror images).
func simplifyQuantifier(outer Kind, child *Regex) *Regex {
	if child.Kind == KindStar || child.Kind == KindPlus || child.Kind == KindOpt {
		inner := child.Child
		switch {
		case outer == KindStar:
			return NewStar(inner)
		case outer == KindPlus && child.Kind == KindStar:
			return NewStar(inner)
		case outer == KindPlus && child.Kind == KindPlus:
			return NewPlus(inner)
		case outer == KindPlus && child.Kind == KindOpt:
			return NewStar(inner)
		case outer == KindOpt && child.Kind == KindStar:
			return NewStar(inner)
		case outer == KindOpt && child.Kind == KindPlus:
			return NewStar(inner)
		case outer == KindOpt && child.Kind == KindOpt:
			return NewOpt(inner)
		}
	}

	// ()* = (), ()+ = (), ()? = ()
	if child.Kind == KindConcat && len(child.Children) == 0 {
		return Epsilon()
	}
	// []* = (), []+ = [], []? = ()
	if child.Kind == KindAlt && len(child.Children) == 0 {
		if outer == KindPlus {
			return EmptyLanguage()
		}
		return Epsilon()
	}

	// A Star/Plus branch nested directly inside an Alt that this quantifier
	// wraps can be absorbed, since it already covers every repetition count
	// the outer quantifier would add.
	if child.Kind == KindAlt {
		for i, branch := range child.Children {
			if branch.Kind != KindStar && branch.Kind != KindPlus {
				continue
			}
			rewritten := make([]*Regex, len(child.Children))
			copy(rewritten, child.Children)

			switch outer {
			case KindStar:
				// (r*|s)* = (r|s)*, (r+|s)* = (r|s)*
				rewritten[i] = branch.Child
				return NewStar(NewAlt(rewritten...))
			case KindPlus:
				// (r*|s)+ = (r|s)*, (r+|s)+ = (r|s)+
				rewritten[i] = branch.Child
				if branch.Kind == KindStar {
					return NewStar(NewAlt(rewritten...))
				}
				return NewPlus(NewAlt(rewritten...))
			case KindOpt:
				// (r*|s)? = r*|s, (r+|s)? = r*|s
				rewritten[i] = NewStar(branch.Child)
				return NewAlt(rewritten...)
			}
		}
	}

	switch outer {
	case KindStar:
		return NewStar(child)
	case KindPlus:
		return NewPlus(child)
	default:
		return NewOpt(child)
	}
}

// simplifyConcat flattens nested Concats, drops epsilon children (the
// identity element for concatenation), collapses to the single child (or
// epsilon) when possible, and fuses an adjacent pair of quantified branches
// that amount to a single quantifier (r*r* = r*, r*r+ = r+, r+r+ = rr+, and
// so on).
func simplifyConcat(children []*Regex) *Regex {
	var flat []*Regex
	for _, c := range children {
		c = simplifyOnce(c)
		if c.Kind == KindConcat {
			flat = append(flat, c.Children...)
			continue
		}
		if c.Kind == KindAlt && len(c.Children) == 0 {
			// concatenation with the empty language is the empty language
			return EmptyLanguage()
		}
		flat = append(flat, c)
	}

	var out []*Regex
	for _, c := range flat {
		if c.Kind == KindConcat && len(c.Children) == 0 {
			continue // drop epsilon
		}
		out = append(out, c)
	}

	if fused, ok := fuseAdjacent(out); ok {
		out = fused
	}

	if len(out) == 0 {
		return Epsilon()
	}
	if len(out) == 1 {
		return out[0]
	}
	return NewConcat(out...)
}

// fuseAdjacent looks for the first adjacent pair of children that a
// quantifier-fusion rule applies to and returns the full child list with
// that pair replaced.
func fuseAdjacent(children []*Regex) ([]*Regex, bool) {
	for i := 0; i+1 < len(children); i++ {
		if repl, ok := fuseAdjacentPair(children[i], children[i+1]); ok {
			out := make([]*Regex, 0, len(children)-1)
			out = append(out, children[:i]...)
			out = append(out, repl...)
			out = append(out, children[i+2:]...)
			return out, true
		}
	}
	return nil, false
}

// fuseAdjacentPair rewrites a pair of adjacent Concat children that can be
// folded into fewer repetitions of the same atom: r*r* = r*, r*r+ = r+,
// r*r? = r*, r+r* = r+, r+r? = r+, r?r* = r*, r?r+ = r+, r*r = rr* (a reorder
// that exposes rr* = r+ on the next pass), and r+r+ = rr+ (a cost reduction,
// not a further collapse: r+r+ and rr+ both require at least two copies of
// r, but the second loses one of the two Plus wrappers).
func fuseAdjacentPair(a, b *Regex) ([]*Regex, bool) {
	switch {
	case a.Kind == KindStar && b.Kind == KindStar && Equal(a.Child, b.Child):
		return []*Regex{NewStar(a.Child)}, true
	case a.Kind == KindStar && b.Kind == KindPlus && Equal(a.Child, b.Child):
		return []*Regex{NewPlus(a.Child)}, true
	case a.Kind == KindStar && b.Kind == KindOpt && Equal(a.Child, b.Child):
		return []*Regex{NewStar(a.Child)}, true
	case a.Kind == KindPlus && b.Kind == KindStar && Equal(a.Child, b.Child):
		return []*Regex{NewPlus(a.Child)}, true
	case a.Kind == KindPlus && b.Kind == KindOpt && Equal(a.Child, b.Child):
		return []*Regex{NewPlus(a.Child)}, true
	case a.Kind == KindOpt && b.Kind == KindStar && Equal(a.Child, b.Child):
		return []*Regex{NewStar(a.Child)}, true
	case a.Kind == KindOpt && b.Kind == KindPlus && Equal(a.Child, b.Child):
		return []*Regex{NewPlus(a.Child)}, true
	case a.Kind == KindPlus && b.Kind == KindPlus && Equal(a.Child, b.Child):
		return []*Regex{a.Child, NewPlus(a.Child)}, true
	case a.Kind == KindStar && Equal(a.Child, b):
		return []*Regex{b, a}, true
	case b.Kind == KindStar && Equal(a, b.Child):
		return []*Regex{NewPlus(a)}, true
	}
	return nil, false
}

// simplifyAlt flattens nested Alts, drops empty-language children (the
// identity element for alternation), deduplicates identical branches, and
// applies a handful of factoring rules once only the singleton case has
// been ruled out: a bare epsilon branch folds the rest of the alternation
// into Opt; a shared leading or trailing branch factors out of a Concat
// pair; a quantifier can be lifted out through the whole Alt; a Star/Plus
// branch absorbs an identical unquantified sibling; and SymSet branches
// merge into one.
func simplifyAlt(children []*Regex) *Regex {
	var flat []*Regex
	for _, c := range children {
		c = simplifyOnce(c)
		if c.Kind == KindAlt {
			flat = append(flat, c.Children...)
			continue
		}
		flat = append(flat, c)
	}

	var out []*Regex
	for _, c := range flat {
		if c.Kind == KindAlt && len(c.Children) == 0 {
			continue // drop the empty language
		}
		out = append(out, c)
	}

	out = sortDedupe(out)

	if len(out) == 0 {
		return EmptyLanguage()
	}
	if len(out) == 1 {
		return out[0]
	}

	// r|() = r?, ()|r = r?
	if rest, ok := extractEpsilon(out); ok {
		return NewOpt(NewAlt(rest...))
	}

	// rs|rt = r(s|t), rs|ts = (r|t)s, rs|r = r(s|), r|rt = r(|t),
	// sr|r = (s|)r, r|tr = (|t)r
	if factored, ok := distributeFactor(out); ok {
		return factored
	}

	// r?|s = (r|s)?, r|s? = (r|s)?
	if rest, ok := liftOpt(out); ok {
		return NewOpt(NewAlt(rest...))
	}

	out = absorbQuantified(out) // a|a* = a*, a|a+ = a+
	out = unionSymsets(out)     // [u]|[v] = [uv]
	out = sortDedupe(out)

	switch len(out) {
	case 0:
		return EmptyLanguage()
	case 1:
		return out[0]
	default:
		return NewAlt(out...)
	}
}

func sortDedupe(out []*Regex) []*Regex {
	sort.SliceStable(out, func(i, j int) bool { return Compare(out[i], out[j]) < 0 })
	return dedupe(out)
}

// extractEpsilon reports whether one of children is a bare epsilon branch,
// returning the remaining children (the caller wraps them in Opt).
func extractEpsilon(children []*Regex) ([]*Regex, bool) {
	for i, c := range children {
		if c.Kind == KindConcat && len(c.Children) == 0 {
			rest := make([]*Regex, 0, len(children)-1)
			rest = append(rest, children[:i]...)
			rest = append(rest, children[i+1:]...)
			return rest, true
		}
	}
	return nil, false
}

// splitAtom splits x into its leading (suffix == false) or trailing
// (suffix == true) atom and the remainder of x with that atom removed. A
// non-Concat x is a single atom whose remainder is epsilon.
func splitAtom(x *Regex, suffix bool) (atom, rest *Regex) {
	if x.Kind != KindConcat {
		return x, Epsilon()
	}

	n := len(x.Children)
	var remainder []*Regex
	if suffix {
		atom, remainder = x.Children[n-1], x.Children[:n-1]
	} else {
		atom, remainder = x.Children[0], x.Children[1:]
	}

	switch len(remainder) {
	case 0:
		rest = Epsilon()
	case 1:
		rest = remainder[0]
	default:
		rest = NewConcat(remainder...)
	}
	return atom, rest
}

// distributeFactor looks for a pair of Alt branches that share a leading or
// trailing atom and factors it out: rs|rt = r(s|t) (and the suffix/
// single-atom variants rs|ts, rs|r, r|rt, sr|r, r|tr).
func distributeFactor(children []*Regex) (*Regex, bool) {
	for _, suffix := range [...]bool{false, true} {
		for i := range children {
			for j := range children {
				if i == j {
					continue
				}
				atom1, rest1 := splitAtom(children[i], suffix)
				atom2, rest2 := splitAtom(children[j], suffix)
				if !Equal(atom1, atom2) {
					continue
				}

				alt := NewAlt(rest1, rest2)
				var merged *Regex
				if suffix {
					merged = NewConcat(alt, atom1)
				} else {
					merged = NewConcat(atom1, alt)
				}

				out := make([]*Regex, 0, len(children)-1)
				for k, c := range children {
					switch k {
					case i:
						out = append(out, merged)
					case j:
						// dropped: folded into merged above
					default:
						out = append(out, c)
					}
				}
				if len(out) == 1 {
					return out[0], true
				}
				return NewAlt(out...), true
			}
		}
	}
	return nil, false
}

// liftOpt finds the first Opt branch and unwraps it in place, returning the
// remaining children (the caller wraps the result in Opt): r?|s = (r|s)?.
func liftOpt(children []*Regex) ([]*Regex, bool) {
	for i, c := range children {
		if c.Kind != KindOpt {
			continue
		}
		rest := make([]*Regex, len(children))
		copy(rest, children)
		rest[i] = c.Child
		return rest, true
	}
	return nil, false
}

// absorbQuantified drops any branch that is exactly the inner child of a
// sibling Star or Plus branch, since the quantified sibling already covers
// that single repetition: a|a* = a*, a|a+ = a+.
func absorbQuantified(children []*Regex) []*Regex {
	drop := make([]bool, len(children))
	for i, q := range children {
		if q.Kind != KindStar && q.Kind != KindPlus {
			continue
		}
		for j, c := range children {
			if i == j || drop[j] {
				continue
			}
			if Equal(c, q.Child) {
				drop[j] = true
			}
		}
	}

	var out []*Regex
	for i, c := range children {
		if !drop[i] {
			out = append(out, c)
		}
	}
	return out
}

// unionSymsets merges every SymSet branch into a single branch covering
// their union: [u]|[v] = [uv].
func unionSymsets(children []*Regex) []*Regex {
	var rest []*Regex
	var union symset.Set
	count := 0
	for _, c := range children {
		if c.Kind == KindSymset {
			union = symset.Union(union, c.Symset)
			count++
			continue
		}
		rest = append(rest, c)
	}
	if count < 2 {
		return children
	}
	return append(rest, NewSymset(union))
}

func dedupe(sorted []*Regex) []*Regex {
	var out []*Regex
	for i, c := range sorted {
		if i > 0 && Equal(c, sorted[i-1]) {
			continue
		}
		out = append(out, c)
	}
	return out
}
