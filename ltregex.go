// Package ltregex provides a byte-alphabet regular-expression engine: every
// pattern compiles to a minimal DFA for linear-time matching, and the
// algebraic operations (complement, intersection, reversal, case folding,
// partial matching, equivalence, and the DFA-to-pattern inverse) are all
// first-class, not bolted on.
//
// There are no capturing groups, no Unicode, and no submatch extraction:
// matching is whole-string by default (use Regex.Partial to opt into
// grep-style substring matching instead). The alphabet is the 256 byte
// values, not runes.
//
// Basic usage:
//
//	re, err := ltregex.Compile(`[a-z]+@[a-z]+\.[a-z]+`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if re.MatchString("user@example.com") {
//	    fmt.Println("matched!")
//	}
package ltregex

import (
	"github.com/ltregex/ltregex/dfa"
	"github.com/ltregex/ltregex/nfa"
	"github.com/ltregex/ltregex/parser"
	"github.com/ltregex/ltregex/regexir"
)

// Regex is a compiled pattern: an NFA retained for the algebraic operators,
// plus the minimal DFA derived from it for matching. A Regex is immutable
// and safe for concurrent use; the operator methods (Complement, Intersect,
// Reverse, IgnoreCase, Partial) return a new Regex rather than mutating the
// receiver.
type Regex struct {
	pattern string
	n       *nfa.NFA
	d       *dfa.DFA
}

// Compile parses pattern and compiles it to a minimal DFA.
//
//	re, err := ltregex.Compile(`a(b|c)*d`)
func Compile(pattern string) (*Regex, error) {
	n, err := parser.Parse(pattern)
	if err != nil {
		return nil, err
	}
	return fromNFA(pattern, n), nil
}

// MustCompile is like Compile but panics if pattern is invalid. Intended for
// patterns known to be valid at compile time, e.g. package-level variables.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("ltregex: Compile(" + pattern + "): " + err.Error())
	}
	return re
}

// CompileLiteral compiles s as a fixed literal string, bypassing the parser
// entirely: every metacharacter in s is treated as itself. It never returns
// an error.
func CompileLiteral(s string) *Regex {
	return fromNFA(s, parser.FixedString(s))
}

func fromNFA(pattern string, n *nfa.NFA) *Regex {
	return &Regex{pattern: pattern, n: n, d: dfa.Compile(n)}
}

// String returns the pattern text Compile was called with, or, for a Regex
// produced by an algebraic operator, its decompiled reconstruction.
func (r *Regex) String() string {
	return r.pattern
}

// Match reports whether b, taken as a whole, belongs to the language r
// accepts.
func (r *Regex) Match(b []byte) bool {
	return dfa.Matches(r.d, b)
}

// MatchString is Match for a string argument.
func (r *Regex) MatchString(s string) bool {
	return dfa.Matches(r.d, []byte(s))
}

// DFA returns the compiled minimal DFA backing r, for callers that need
// direct access (serialization, prefiltering, custom traversal).
func (r *Regex) DFA() *dfa.DFA {
	return r.d
}

// derive builds a new Regex from a clone of r's NFA mutated by transform,
// naming the result via Decompile since no surface pattern text describes
// it directly.
func (r *Regex) derive(transform func(*nfa.NFA)) *Regex {
	clone := r.n.Clone()
	transform(clone)
	d := dfa.Compile(clone)
	return &Regex{pattern: regexir.Decompile(d), n: clone, d: d}
}

// Complement returns the regex accepting every string r does not.
func (r *Regex) Complement() *Regex {
	return r.derive(func(n *nfa.NFA) { n.Complement() })
}

// Reverse returns the regex accepting every reversal of a string r accepts.
func (r *Regex) Reverse() *Regex {
	return r.derive(func(n *nfa.NFA) { n.Reverse() })
}

// IgnoreCase returns the regex accepting r's language under case-insensitive
// matching of ASCII letters.
func (r *Regex) IgnoreCase() *Regex {
	return r.derive(func(n *nfa.NFA) { dfa.IgnoreCase(n) })
}

// Partial returns the regex accepting any string containing a substring r
// accepts (grep-style "contains a match" rather than "is a match").
func (r *Regex) Partial() *Regex {
	return r.derive(func(n *nfa.NFA) { dfa.Partial(n) })
}

// Intersect returns the regex accepting exactly the strings both r and
// other accept, implemented via De Morgan's law (a&b = ¬(¬a|¬b)) over the
// two patterns' text, since intersection is a parser-level operator (the
// `&` operator), not an NFA-level one. Each operand is parenthesized since
// `|` and `&` share the lowest, right-associative precedence level.
func Intersect(r, other *Regex) (*Regex, error) {
	return Compile("(" + r.pattern + ")&(" + other.pattern + ")")
}

// Equivalent reports whether r and other accept exactly the same language.
func Equivalent(r, other *Regex) bool {
	return dfa.Equivalent(r.d, other.d)
}

// Decompile renders r's DFA back to pattern syntax via GNFA state
// elimination, algebraic simplification, and pretty-printing. The result is
// equivalent to r but not necessarily the original pattern text verbatim.
func (r *Regex) Decompile() string {
	return regexir.Decompile(r.d)
}
