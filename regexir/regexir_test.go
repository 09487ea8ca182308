package regexir

import (
	"testing"

	"github.com/ltregex/ltregex/dfa"
	"github.com/ltregex/ltregex/nfa"
	"github.com/ltregex/ltregex/parser"
	"github.com/ltregex/ltregex/symset"
)

func TestCompareTotalOrder(t *testing.T) {
	a := NewSymset(symset.Single('a'))
	b := NewSymset(symset.Single('b'))

	if Compare(a, a) != 0 {
		t.Error("a regex should compare equal to itself")
	}
	if Compare(a, b) <= 0 {
		t.Error("distinct symsets should not compare equal, and the set holding the first differing byte sorts after")
	}
	if Compare(a, b) != -Compare(b, a) {
		t.Error("Compare should be antisymmetric")
	}
}

func TestSimplifyFlattensAndDedupes(t *testing.T) {
	a := NewSymset(symset.Single('a'))
	nested := NewAlt(NewAlt(a.Clone(), a.Clone()), a.Clone())

	got := Simplify(nested)
	if got.Kind != KindSymset {
		t.Fatalf("Simplify(a|a|a) kind = %v, want Symset (deduped to just 'a')", got.Kind)
	}
}

func TestSimplifyQuantifierFusion(t *testing.T) {
	a := NewSymset(symset.Single('a'))
	star := NewStar(a.Clone())

	got := Simplify(NewStar(star.Clone()))
	if got.Kind != KindStar {
		t.Fatalf("Simplify((a*)*) kind = %v, want Star", got.Kind)
	}

	got = Simplify(NewOpt(NewPlus(a.Clone())))
	if got.Kind != KindStar {
		t.Fatalf("Simplify((a+)?) kind = %v, want Star", got.Kind)
	}
}

func TestSimplifyStarAbsorbsAlternative(t *testing.T) {
	a := NewSymset(symset.Single('a'))
	star := NewStar(a.Clone())

	got := Simplify(NewAlt(a.Clone(), star.Clone()))
	if !Equal(got, star) {
		t.Fatalf("Simplify(a|a*) = %q, want %q", Format(got), Format(star))
	}

	got = Simplify(NewAlt(NewPlus(a.Clone()), a.Clone()))
	want := NewPlus(a.Clone())
	if !Equal(got, want) {
		t.Fatalf("Simplify(a+|a) = %q, want %q", Format(got), Format(want))
	}
}

func TestSimplifySymsetUnion(t *testing.T) {
	a := NewSymset(symset.Single('a'))
	b := NewSymset(symset.Single('b'))

	got := Simplify(NewAlt(a.Clone(), b.Clone()))
	if got.Kind != KindSymset {
		t.Fatalf("Simplify([a]|[b]) kind = %v, want Symset", got.Kind)
	}
	if !got.Symset.Get('a') || !got.Symset.Get('b') {
		t.Errorf("Simplify([a]|[b]) = %q, want a symset covering both a and b", Format(got))
	}
}

func TestSimplifyAdjacentQuantifierFusion(t *testing.T) {
	a := NewSymset(symset.Single('a'))

	got := Simplify(NewConcat(NewStar(a.Clone()), NewStar(a.Clone())))
	want := NewStar(a.Clone())
	if !Equal(got, want) {
		t.Fatalf("Simplify(a*a*) = %q, want %q", Format(got), Format(want))
	}

	got = Simplify(NewConcat(NewPlus(a.Clone()), NewPlus(a.Clone())))
	want = NewConcat(a.Clone(), NewPlus(a.Clone()))
	if !Equal(got, want) {
		t.Fatalf("Simplify(a+a+) = %q, want %q", Format(got), Format(want))
	}

	got = Simplify(NewConcat(NewStar(a.Clone()), a.Clone()))
	want = NewPlus(a.Clone())
	if !Equal(got, want) {
		t.Fatalf("Simplify(a*a) = %q, want %q", Format(got), Format(want))
	}
}

func TestSimplifyEmptyInnerQuantifier(t *testing.T) {
	got := Simplify(NewStar(EmptyLanguage()))
	if !Equal(got, Epsilon()) {
		t.Fatalf("Simplify(([])*) = %q, want epsilon", Format(got))
	}

	got = Simplify(NewPlus(EmptyLanguage()))
	if !Equal(got, EmptyLanguage()) {
		t.Fatalf("Simplify(([])+) = %q, want the empty language", Format(got))
	}

	got = Simplify(NewOpt(Epsilon()))
	if !Equal(got, Epsilon()) {
		t.Fatalf("Simplify(()?) = %q, want epsilon", Format(got))
	}
}

func TestSimplifyAbsorbsStarredAlternationBranch(t *testing.T) {
	a := NewSymset(symset.Single('a'))
	b := NewSymset(symset.Single('b'))

	got := Simplify(NewStar(NewAlt(NewStar(a.Clone()), b.Clone())))
	want := Simplify(NewStar(NewAlt(a.Clone(), b.Clone())))
	if !Equal(got, want) {
		t.Fatalf("Simplify((a*|b)*) = %q, want %q", Format(got), Format(want))
	}
}

func TestSimplifyEpsilonInAltBecomesOpt(t *testing.T) {
	a := NewSymset(symset.Single('a'))

	got := Simplify(NewAlt(a.Clone(), Epsilon()))
	want := NewOpt(a.Clone())
	if !Equal(got, want) {
		t.Fatalf("Simplify(a|()) = %q, want %q", Format(got), Format(want))
	}
}

func TestSimplifyDistributeFactor(t *testing.T) {
	a := NewSymset(symset.Single('a'))
	b := NewSymset(symset.Single('b'))
	c := NewSymset(symset.Single('c'))

	// ab|ac = a(b|c)
	got := Simplify(NewAlt(NewConcat(a.Clone(), b.Clone()), NewConcat(a.Clone(), c.Clone())))
	want := Simplify(NewConcat(a.Clone(), NewAlt(b.Clone(), c.Clone())))
	if !Equal(got, want) {
		t.Fatalf("Simplify(ab|ac) = %q, want %q", Format(got), Format(want))
	}

	// ba|ca = (b|c)a
	got = Simplify(NewAlt(NewConcat(b.Clone(), a.Clone()), NewConcat(c.Clone(), a.Clone())))
	want = Simplify(NewConcat(NewAlt(b.Clone(), c.Clone()), a.Clone()))
	if !Equal(got, want) {
		t.Fatalf("Simplify(ba|ca) = %q, want %q", Format(got), Format(want))
	}
}

func TestSimplifyLiftOpt(t *testing.T) {
	a := NewSymset(symset.Single('a'))
	b := NewSymset(symset.Single('b'))

	got := Simplify(NewAlt(NewOpt(a.Clone()), b.Clone()))
	want := Simplify(NewOpt(NewAlt(a.Clone(), b.Clone())))
	if !Equal(got, want) {
		t.Fatalf("Simplify(a?|b) = %q, want %q", Format(got), Format(want))
	}
}

func TestFormatSymset(t *testing.T) {
	got := Format(NewSymset(symset.Single('a')))
	if got != "a" {
		t.Errorf("Format(Symset{a}) = %q, want %q", got, "a")
	}
}

func TestFormatRunFusion(t *testing.T) {
	a := NewSymset(symset.Single('a'))
	got := Format(NewConcat(a.Clone(), a.Clone(), a.Clone(), a.Clone(), a.Clone()))
	if got != "a{5}" {
		t.Errorf("Format(aaaaa) = %q, want %q", got, "a{5}")
	}
}

func TestDecompileRoundTrips(t *testing.T) {
	patterns := []string{"abc", "a*b+c?", "a|bc", "[a-z]+", "a{2,4}"}

	for _, pattern := range patterns {
		t.Run(pattern, func(t *testing.T) {
			n, err := parser.Parse(pattern)
			if err != nil {
				t.Fatalf("Parse(%q): %v", pattern, err)
			}
			d := dfa.Compile(n)

			decompiled := Decompile(d)

			n2, err := parser.Parse(decompiled)
			if err != nil {
				t.Fatalf("Parse(Decompile(%q) = %q): %v", pattern, decompiled, err)
			}
			d2 := dfa.Compile(n2)

			if !dfa.Equivalent(d, d2) {
				t.Errorf("Decompile(%q) = %q, which does not round-trip to an equivalent DFA", pattern, decompiled)
			}
		})
	}
}

func TestFromDFAEmptyLanguage(t *testing.T) {
	// A final state unreachable from initial matches no string at all,
	// not even the empty one.
	n := nfa.New()
	n.Final = n.Alloc()

	d := dfa.Compile(n)
	re := Simplify(FromDFA(d))
	if re.Kind != KindAlt || len(re.Children) != 0 {
		t.Errorf("FromDFA of the empty language should decompile to Alt{}, got kind %v", re.Kind)
	}
}
