package prefilter

import "github.com/coregx/ahocorasick"

// Scanner finds candidate offsets where a partial match could start, using
// an Aho-Corasick automaton over the literals a pattern's prefix/suffix
// requires. It is a skip ahead, not a verifier: every candidate offset it
// reports still needs confirming against the real DFA, but offsets it
// doesn't report cannot lead to a match.
type Scanner struct {
	auto *ahocorasick.Automaton
}

// NewScanner builds a Scanner over literals. It returns (nil, false) if
// literals is empty, signaling that no prefilter is available and callers
// should fall back to a plain DFA scan.
func NewScanner(literals [][]byte) (*Scanner, bool) {
	if len(literals) == 0 {
		return nil, false
	}

	builder := ahocorasick.NewBuilder()
	for _, lit := range literals {
		builder.AddPattern(lit)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, false
	}
	return &Scanner{auto: auto}, true
}

// Find returns the start of the first literal occurrence at or after at,
// or -1 if none of the Scanner's literals occur in haystack[at:].
func (s *Scanner) Find(haystack []byte, at int) int {
	if at >= len(haystack) {
		return -1
	}
	m := s.auto.Find(haystack, at)
	if m == nil {
		return -1
	}
	return m.Start
}

// IsMatch reports whether any of the Scanner's literals occur anywhere in
// haystack.
func (s *Scanner) IsMatch(haystack []byte) bool {
	return s.auto.IsMatch(haystack)
}

// RequiredLiterals collects the literal requirements usable to build a
// Scanner for a DFA: its required prefix and suffix, whichever are
// non-empty.
// A pattern with neither yields no literals, and callers should skip
// prefiltering entirely.
func RequiredLiterals(prefix, suffix []byte) [][]byte {
	var lits [][]byte
	if len(prefix) > 0 {
		lits = append(lits, prefix)
	}
	if len(suffix) > 0 && string(suffix) != string(prefix) {
		lits = append(lits, suffix)
	}
	return lits
}
