package parser

import (
	"testing"

	"github.com/ltregex/ltregex/dfa"
)

func compiles(t *testing.T, pattern string) *dfa.DFA {
	t.Helper()
	n, err := Parse(pattern)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", pattern, err)
	}
	return dfa.Compile(n)
}

func TestParseMatches(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		want    bool
	}{
		{"abc", "abc", true},
		{"abc", "abd", false},
		{"a*", "", true},
		{"a*", "aaaa", true},
		{"a+", "", false},
		{"a+", "a", true},
		{"a?", "", true},
		{"a?", "a", true},
		{"a?", "aa", false},
		{"[abc]", "b", true},
		{"[abc]", "d", false},
		{"[^abc]", "d", true},
		{"a-z", "m", true},
		{"a-z", "A", false},
		{"\\d", "5", true},
		{"\\d", "x", false},
		{"\\w+", "hello_123", true},
		{".", "\n", false},
		{".", "x", true},
		{"a|b", "a", true},
		{"a|b", "b", true},
		{"a|b", "c", false},
		{"a&~b", "a", true},
		{"~a", "b", true},
		{"~a", "a", false},
		{"a{2,4}", "aaa", true},
		{"a{2,4}", "a", false},
		{"a{2,4}", "aaaaa", false},
		{"a{3,}", "aaa", true},
		{"a{3,}", "aaaaaa", true},
		{"a{3,}", "aa", false},
		{"(ab)+", "ababab", true},
		{"(ab)+", "aba", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.input, func(t *testing.T) {
			d := compiles(t, tt.pattern)
			if got := dfa.Matches(d, []byte(tt.input)); got != tt.want {
				t.Errorf("Matches(%q, %q) = %v, want %v", tt.pattern, tt.input, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		pattern string
		wantTag string
	}{
		{"(abc", ErrExpectedCloseParen},
		{"[abc", ErrExpectedCloseBracket},
		{"<abc", ErrExpectedCloseAngle},
		{"a{5,2}", ErrMisboundedQuantifier},
		{"a{", ErrExpectedCloseBrace},
		{"abc)", ErrExpectedEndOfInput},
		{"\\q", ErrUnknownEscape},
		{"\\xg1", ErrExpectedHexDigit},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			_, err := Parse(tt.pattern)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", tt.pattern)
			}
			pe, ok := err.(*ParseError)
			if !ok {
				t.Fatalf("Parse(%q) error type = %T, want *ParseError", tt.pattern, err)
			}
			if pe.Tag != tt.wantTag {
				t.Errorf("Parse(%q) tag = %q, want %q", tt.pattern, pe.Tag, tt.wantTag)
			}
		})
	}
}

func TestFixedString(t *testing.T) {
	n := FixedString("a.b*c")
	d := dfa.Compile(n)
	if !dfa.Matches(d, []byte("a.b*c")) {
		t.Error("fixed string NFA should match its exact literal contents")
	}
	if dfa.Matches(d, []byte("axbyc")) {
		t.Error("fixed string NFA should not treat metacharacters specially")
	}
}
