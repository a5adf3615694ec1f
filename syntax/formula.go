// Package syntax implements the concrete syntax of classical propositional
// logic used throughout a Fitch-style proof: formulas, inferences and
// justification phrases. It provides a lexer and recursive-descent parser
// for each, plus deterministic text and LaTeX printers.
package syntax

import "fmt"

// Kind distinguishes the eight closed variants of a Formula.
type Kind int

const (
	KindProp Kind = iota
	KindTop
	KindBottom
	KindNeg
	KindAnd
	KindOr
	KindImp
	KindIff
)

// Formula is an immutable propositional-logic formula. Formulas are values:
// two Formulas built independently compare equal via Equals whenever they
// have the same shape, regardless of identity, and may be freely shared.
type Formula struct {
	Kind Kind

	// Name holds the proposition letter when Kind == KindProp.
	Name byte

	// X holds the operand of a KindNeg formula.
	X *Formula

	// L and R hold the operands of a binary formula (KindAnd, KindOr,
	// KindImp, KindIff).
	L, R *Formula
}

// Prop builds an atomic proposition, e.g. Prop('A').
func Prop(name byte) *Formula { return &Formula{Kind: KindProp, Name: name} }

// Top is the constant true, rendered "⊤".
func Top() *Formula { return &Formula{Kind: KindTop} }

// Bottom is the constant false, rendered "⊥".
func Bottom() *Formula { return &Formula{Kind: KindBottom} }

// Neg builds a negation.
func Neg(x *Formula) *Formula { return &Formula{Kind: KindNeg, X: x} }

// And builds a conjunction. Order of l, r matters for AndIntro's citation
// discipline even though Equals treats And as it would any other node:
// structurally, not commutatively.
func And(l, r *Formula) *Formula { return &Formula{Kind: KindAnd, L: l, R: r} }

// Or builds a disjunction.
func Or(l, r *Formula) *Formula { return &Formula{Kind: KindOr, L: l, R: r} }

// Imp builds a conditional l -> r.
func Imp(l, r *Formula) *Formula { return &Formula{Kind: KindImp, L: l, R: r} }

// Iff builds a biconditional l <-> r.
func Iff(l, r *Formula) *Formula { return &Formula{Kind: KindIff, L: l, R: r} }

// Equals reports whether x and y have the same shape. Equality is purely
// structural: no two distinct Kind values are ever equal, and Prop equality
// additionally requires the same Name.
func Equals(x, y *Formula) bool {
	if x == y {
		return true
	}
	if x == nil || y == nil || x.Kind != y.Kind {
		return false
	}
	switch x.Kind {
	case KindProp:
		return x.Name == y.Name
	case KindTop, KindBottom:
		return true
	case KindNeg:
		return Equals(x.X, y.X)
	default: // KindAnd, KindOr, KindImp, KindIff
		return Equals(x.L, y.L) && Equals(x.R, y.R)
	}
}

// Propositions returns the set of proposition letters occurring in f.
func Propositions(f *Formula) map[byte]bool {
	out := map[byte]bool{}
	collectPropositions(f, out)
	return out
}

func collectPropositions(f *Formula, out map[byte]bool) {
	switch f.Kind {
	case KindProp:
		out[f.Name] = true
	case KindNeg:
		collectPropositions(f.X, out)
	case KindTop, KindBottom:
	default:
		collectPropositions(f.L, out)
		collectPropositions(f.R, out)
	}
}

// String renders f using the default text syntax. It satisfies
// fmt.Stringer so formulas print sensibly in logs and test failures.
func (f *Formula) String() string { return Render(f) }

// Render pretty-prints f using ASCII/Unicode operators, parenthesizing
// every binary child (atoms and negations are left bare as operands of a
// binary connective; a negation's operand is parenthesized unless atomic)
// and omitting the outermost parentheses.
func Render(f *Formula) string {
	var b []byte
	b = renderInto(b, f, false)
	return string(b)
}

// RenderTeX pretty-prints f as LaTeX math, suitable for embedding inside a
// logicproof environment cell.
func RenderTeX(f *Formula) string {
	var b []byte
	b = renderTeXInto(b, f, false)
	return string(b)
}

func isAtomic(f *Formula) bool {
	return f.Kind == KindProp || f.Kind == KindTop || f.Kind == KindBottom
}

func renderInto(b []byte, f *Formula, parenthesize bool) []byte {
	switch f.Kind {
	case KindProp:
		return append(b, f.Name)
	case KindTop:
		return append(b, "⊤"...)
	case KindBottom:
		return append(b, "⊥"...)
	case KindNeg:
		b = append(b, "¬"...)
		return renderInto(b, f.X, !isAtomic(f.X))
	}

	inner := func(buf []byte, op string) []byte {
		buf = renderInto(buf, f.L, !isAtomic(f.L) && f.L.Kind != KindNeg)
		buf = append(buf, ' ')
		buf = append(buf, op...)
		buf = append(buf, ' ')
		buf = renderInto(buf, f.R, !isAtomic(f.R) && f.R.Kind != KindNeg)
		return buf
	}

	var op string
	switch f.Kind {
	case KindAnd:
		op = "∧"
	case KindOr:
		op = "∨"
	case KindImp:
		op = "→"
	case KindIff:
		op = "↔"
	}

	if parenthesize {
		b = append(b, '(')
		b = inner(b, op)
		b = append(b, ')')
		return b
	}
	return inner(b, op)
}

func renderTeXInto(b []byte, f *Formula, parenthesize bool) []byte {
	switch f.Kind {
	case KindProp:
		return append(b, f.Name)
	case KindTop:
		return append(b, `\top`...)
	case KindBottom:
		return append(b, `\bot`...)
	case KindNeg:
		b = append(b, `\lnot `...)
		return renderTeXInto(b, f.X, !isAtomic(f.X))
	}

	inner := func(buf []byte, op string) []byte {
		buf = renderTeXInto(buf, f.L, !isAtomic(f.L) && f.L.Kind != KindNeg)
		buf = append(buf, ' ')
		buf = append(buf, op...)
		buf = append(buf, ' ')
		buf = renderTeXInto(buf, f.R, !isAtomic(f.R) && f.R.Kind != KindNeg)
		return buf
	}

	var op string
	switch f.Kind {
	case KindAnd:
		op = `\land`
	case KindOr:
		op = `\lor`
	case KindImp:
		op = `\to`
	case KindIff:
		op = `\leftrightarrow`
	}

	if parenthesize {
		b = append(b, '(')
		b = inner(b, op)
		b = append(b, ')')
		return b
	}
	return inner(b, op)
}

// GoString supports %#v debugging output with the formula's concrete shape
// rather than its pointer fields.
func (f *Formula) GoString() string {
	if f == nil {
		return "<nil formula>"
	}
	return fmt.Sprintf("Formula(%s)", Render(f))
}
