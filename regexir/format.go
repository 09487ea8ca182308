package regexir

import (
	"strconv"
	"strings"

	"github.com/ltregex/ltregex/symset"
)

// precedence gives each Kind a slot in the grammar's precedence ladder,
// lowest first: Alt binds loosest, Concat next, quantifiers next, Symset
// tightest. A child is parenthesized when its own Kind would bind looser
// than the minimum precedence its parent requires.
func precedence(k Kind) int {
	return int(k)
}

// Format renders r as pattern syntax, using the minimum parenthesization
// needed for the result to parse back to (a Regex equal to, after
// Simplify) r, and fusing concatenated runs of identical factors into the
// `{n}` quantifier form when doing so shortens the output.
func Format(r *Regex) string {
	var buf strings.Builder
	format(&buf, r, KindAlt)
	return buf.String()
}

func format(buf *strings.Builder, r *Regex, minPrec Kind) {
	// (r|s)? is shorter written as |r|s when directly inside an
	// alternation, or as (|r|s) elsewhere when r|s is itself the direct
	// child of the `?`.
	if r.Kind == KindOpt && (minPrec == KindAlt || r.Child.Kind == KindAlt) {
		if minPrec != KindAlt {
			buf.WriteByte('(')
		}
		buf.WriteByte('|')
		format(buf, r.Child, KindAlt)
		if minPrec != KindAlt {
			buf.WriteByte(')')
		}
		return
	}

	paren := precedence(r.Kind) < precedence(minPrec)
	if paren {
		buf.WriteByte('(')
	}

	switch r.Kind {
	case KindAlt:
		if len(r.Children) == 0 {
			buf.WriteString("[]")
		}
		for i, c := range r.Children {
			format(buf, c, KindAlt)
			if i != len(r.Children)-1 {
				buf.WriteByte('|')
			}
		}

	case KindConcat:
		formatConcat(buf, r.Children)

	case KindStar, KindPlus, KindOpt:
		format(buf, r.Child, KindSymset)
		buf.WriteByte("*+?"[r.Kind-KindStar])

	case KindSymset:
		buf.WriteString(symset.Format(r.Symset))
	}

	if paren {
		buf.WriteByte(')')
	}
}

// formatConcat fuses runs of identical adjacent factors into the {n}
// quantifier, when that's shorter than spelling them out.
func formatConcat(buf *strings.Builder, children []*Regex) {
	for i := 0; i < len(children); {
		j := i
		for j+1 < len(children) && Equal(children[j], children[j+1]) {
			j++
		}
		run := j - i + 1

		if run > 1 {
			var factor, plain strings.Builder
			format(&factor, children[i], KindSymset)
			factor.WriteString("{" + strconv.Itoa(run) + "}")
			for k := i; k <= j; k++ {
				format(&plain, children[k], KindConcat)
			}
			if factor.Len() < plain.Len() {
				buf.WriteString(factor.String())
			} else {
				buf.WriteString(plain.String())
			}
			i = j + 1
			continue
		}

		format(buf, children[i], KindConcat)
		i++
	}
}
