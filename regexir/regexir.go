// Package regexir implements an intermediate representation for regular
// expressions, used to decompile a dfa.DFA back into pattern syntax via
// GNFA state elimination.
//
// Epsilon (the empty string) is represented as an empty Concat, and the
// empty language (no string at all) as an empty Alt; this lets /()/ and
// /[]/ be expressed without a dedicated node kind, which keeps the
// rewrite-rule set in Simplify uniform across Alt/Concat arities.
package regexir

import "github.com/ltregex/ltregex/symset"

// Kind identifies a Regex node's shape.
type Kind int

const (
	KindAlt Kind = iota
	KindConcat
	KindStar
	KindPlus
	KindOpt
	KindSymset
)

func (k Kind) String() string {
	switch k {
	case KindAlt:
		return "Alt"
	case KindConcat:
		return "Concat"
	case KindStar:
		return "Star"
	case KindPlus:
		return "Plus"
	case KindOpt:
		return "Opt"
	case KindSymset:
		return "Symset"
	}
	return "Unknown"
}

// Regex is a node in the regex intermediate representation. Alt and Concat
// carry variable-arity Children; Star, Plus, and Opt carry a single Child;
// Symset carries a leaf symset.Set.
type Regex struct {
	Kind     Kind
	Children []*Regex
	Child    *Regex
	Symset   symset.Set
}

// Epsilon returns a Regex matching only the empty string.
func Epsilon() *Regex {
	return &Regex{Kind: KindConcat}
}

// EmptyLanguage returns a Regex matching no string at all.
func EmptyLanguage() *Regex {
	return &Regex{Kind: KindAlt}
}

// NewSymset returns a leaf Regex matching exactly one byte from s.
func NewSymset(s symset.Set) *Regex {
	return &Regex{Kind: KindSymset, Symset: s}
}

// NewConcat returns the concatenation of children, in order.
func NewConcat(children ...*Regex) *Regex {
	return &Regex{Kind: KindConcat, Children: children}
}

// NewAlt returns the alternation of children.
func NewAlt(children ...*Regex) *Regex {
	return &Regex{Kind: KindAlt, Children: children}
}

// NewStar returns child repeated zero or more times.
func NewStar(child *Regex) *Regex {
	return &Regex{Kind: KindStar, Child: child}
}

// NewPlus returns child repeated one or more times.
func NewPlus(child *Regex) *Regex {
	return &Regex{Kind: KindPlus, Child: child}
}

// NewOpt returns child, optionally.
func NewOpt(child *Regex) *Regex {
	return &Regex{Kind: KindOpt, Child: child}
}

// Clone returns a deep copy of r.
func (r *Regex) Clone() *Regex {
	if r == nil {
		return nil
	}
	out := &Regex{Kind: r.Kind, Symset: r.Symset}
	if r.Child != nil {
		out.Child = r.Child.Clone()
	}
	for _, c := range r.Children {
		out.Children = append(out.Children, c.Clone())
	}
	return out
}

// Compare returns an integer less than, equal to, or greater than zero if a
// sorts before, the same as, or after b, in an arbitrary but stable total
// order. The order deliberately ignores associativity and commutativity
// (e.g. it does not know that Alt(x,y) == Alt(y,x)), which keeps
// Simplify's fixed-point rewriting terminating: a rule cannot be undone by
// the ordering used to detect it's already in normal form.
func Compare(a, b *Regex) int {
	if a.Kind != b.Kind {
		return int(a.Kind) - int(b.Kind)
	}

	switch a.Kind {
	case KindAlt, KindConcat:
		for i := 0; i < len(a.Children) && i < len(b.Children); i++ {
			if cmp := Compare(a.Children[i], b.Children[i]); cmp != 0 {
				return cmp
			}
		}
		return len(a.Children) - len(b.Children)
	case KindStar, KindPlus, KindOpt:
		return Compare(a.Child, b.Child)
	case KindSymset:
		for chr := 0; chr < 256; chr++ {
			ab, bb := a.Symset.Get(byte(chr)), b.Symset.Get(byte(chr))
			if ab != bb {
				if ab {
					return 1
				}
				return -1
			}
		}
		return 0
	}
	return 0
}

// Equal reports whether a and b are identical under Compare.
func Equal(a, b *Regex) bool {
	return Compare(a, b) == 0
}
