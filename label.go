package gnfa

import "strings"

// NoPathSymbol is how String renders a label that denotes the empty language.
const NoPathSymbol = "∅"

// Label A transition label: either a regular-expression fragment or NoPath. The zero value is NoPath,
// which is distinct from the empty fragment NewLabel("") (the empty string, epsilon).
type Label struct {
	expr  string
	valid bool
}

// NoPath The empty language: no transition or derived path exists.
var NoPath = Label{}

// NewLabel Wraps a regular-expression fragment. The fragment is opaque and never validated.
func NewLabel(expr string) Label {
	return Label{expr: expr, valid: true}
}

// IsNoPath Returns true if this label denotes the empty language.
func (l Label) IsNoPath() bool {
	return !l.valid
}

// Expr Returns the fragment and true, or "" and false for NoPath.
func (l Label) Expr() (string, bool) {
	return l.expr, l.valid
}

func (l Label) String() string {
	if !l.valid {
		return NoPathSymbol
	}
	return l.expr
}

// Union Returns (a|b). NoPath is the identity of union, so a missing operand yields the other one
// unchanged. The result is never deduplicated: Union(x, x) is (x|x).
func Union(a, b Label) Label {
	if !a.valid {
		return b
	}
	if !b.valid {
		return a
	}
	return NewLabel("(" + a.expr + "|" + b.expr + ")")
}

// Concat Concatenates the fragments in order. Any NoPath operand makes the whole result NoPath.
func Concat(labels ...Label) Label {
	var b strings.Builder
	for _, l := range labels {
		if !l.valid {
			return NoPath
		}
		b.WriteString(l.expr)
	}
	return NewLabel(b.String())
}

// Star Returns (l)*. The star of the empty language is the empty fragment, which leaves a
// concatenation unchanged.
func Star(l Label) Label {
	if !l.valid {
		return NewLabel("")
	}
	return NewLabel("(" + l.expr + ")*")
}
