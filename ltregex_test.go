package ltregex

import "testing"

func TestCompileMatch(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		want    bool
	}{
		{"abc", "abc", true},
		{"abc", "abcd", false},
		{"a*b", "aaab", true},
		{"a*b", "", false},
		{"[a-z]+@[a-z]+", "user@host", true},
		{"[a-z]+@[a-z]+", "USER@HOST", false},
	}

	for _, tc := range tests {
		re, err := Compile(tc.pattern)
		if err != nil {
			t.Fatalf("Compile(%q): %v", tc.pattern, err)
		}
		if got := re.MatchString(tc.input); got != tc.want {
			t.Errorf("Compile(%q).MatchString(%q) = %v, want %v", tc.pattern, tc.input, got, tc.want)
		}
	}
}

func TestMustCompilePanicsOnInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustCompile of an invalid pattern should panic")
		}
	}()
	MustCompile("(unterminated")
}

func TestCompileLiteral(t *testing.T) {
	re := CompileLiteral("a.b*c")
	if !re.MatchString("a.b*c") {
		t.Error("CompileLiteral should match its input byte-for-byte")
	}
	if re.MatchString("axbc") {
		t.Error("CompileLiteral should not treat '.' or '*' as metacharacters")
	}
}

func TestComplement(t *testing.T) {
	re := MustCompile("abc")
	comp := re.Complement()

	if comp.MatchString("abc") {
		t.Error("Complement should reject what the original accepts")
	}
	if !comp.MatchString("abcd") {
		t.Error("Complement should accept what the original rejects")
	}
}

func TestReverse(t *testing.T) {
	re := MustCompile("ab+c")
	rev := re.Reverse()

	if !rev.MatchString("cbba") {
		t.Error("Reverse of ab+c should match the reversal cbba")
	}
	if rev.MatchString("ab+c") {
		t.Error("Reverse should not match the original's own text as a string")
	}
}

func TestIgnoreCase(t *testing.T) {
	re := MustCompile("abc").IgnoreCase()
	for _, s := range []string{"abc", "ABC", "AbC"} {
		if !re.MatchString(s) {
			t.Errorf("IgnoreCase should match %q", s)
		}
	}
}

func TestPartial(t *testing.T) {
	re := MustCompile("cd")
	if re.MatchString("abcdef") {
		t.Error("without Partial, whole-string matching should reject abcdef against cd")
	}

	partial := re.Partial()
	if !partial.MatchString("abcdef") {
		t.Error("Partial should accept a string containing the pattern as a substring")
	}
	if partial.MatchString("abxyz") {
		t.Error("Partial should still reject a string with no matching substring")
	}
}

func TestIntersect(t *testing.T) {
	a := MustCompile("a*")
	b := MustCompile("a{2,4}")

	both, err := Intersect(a, b)
	if err != nil {
		t.Fatalf("Intersect: %v", err)
	}

	for _, tc := range []struct {
		s    string
		want bool
	}{
		{"aa", true},
		{"aaaa", true},
		{"a", false},
		{"aaaaa", false},
	} {
		if got := both.MatchString(tc.s); got != tc.want {
			t.Errorf("Intersect(a*, a{2,4}).MatchString(%q) = %v, want %v", tc.s, got, tc.want)
		}
	}
}

func TestEquivalent(t *testing.T) {
	a := MustCompile("(ab)*")

	c := MustCompile("a*|b*")
	d := MustCompile("b*|a*")
	if !Equivalent(c, d) {
		t.Error("a*|b* and b*|a* should be equivalent")
	}

	if Equivalent(a, c) {
		t.Error("(ab)* and a*|b* should not be equivalent")
	}
}

func TestDecompileRoundTrip(t *testing.T) {
	re := MustCompile("a(b|c)*d")
	decompiled := re.Decompile()

	re2, err := Compile(decompiled)
	if err != nil {
		t.Fatalf("Compile(Decompile(...)) = %q: %v", decompiled, err)
	}
	if !Equivalent(re, re2) {
		t.Errorf("Decompile round trip produced a non-equivalent pattern: %q", decompiled)
	}
}

func TestStringReturnsPattern(t *testing.T) {
	re := MustCompile("abc")
	if re.String() != "abc" {
		t.Errorf("String() = %q, want %q", re.String(), "abc")
	}
}
