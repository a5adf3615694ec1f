package syntax

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func formulaEqualer() cmp.Option {
	return cmp.Comparer(func(x, y *Formula) bool { return Equals(x, y) })
}

func TestParseFormulaRoundTrip(t *testing.T) {
	cases := []string{
		"A",
		"~A",
		"¬A",
		"A & B",
		"A ∧ B",
		"A v B",
		"A | B",
		"A -> B",
		"A <-> B",
		"~~A",
		"(A & B) v C",
		"A v (B & C)",
		"~(A & B)",
		"~A & B",
		"A & ~B",
		"⊤",
		"true",
		"True",
		"TRUE",
		"⊥",
		"false",
		"False",
		"FALSE",
		"((A -> B) -> A) -> A",
	}
	for _, in := range cases {
		f, err := ParseFormula(in)
		if err != nil {
			t.Fatalf("ParseFormula(%q): %v", in, err)
		}
		rendered := Render(f)
		f2, err := ParseFormula(rendered)
		if err != nil {
			t.Fatalf("ParseFormula(render(%q)=%q): %v", in, rendered, err)
		}
		if !Equals(f, f2) {
			t.Errorf("round trip broke for %q: got %q then %q", in, rendered, Render(f2))
		}
	}
}

func TestParseFormulaAmbiguous(t *testing.T) {
	cases := []string{
		"A & B & C",
		"A & B v C",
		"A -> B <-> C",
	}
	for _, in := range cases {
		if _, err := ParseFormula(in); err == nil {
			t.Errorf("ParseFormula(%q): expected an ambiguity error, got none", in)
		}
	}
}

func TestFormulaEquals(t *testing.T) {
	a := And(Prop('A'), Prop('B'))
	b := And(Prop('A'), Prop('B'))
	if !Equals(a, b) {
		t.Fatal("structurally identical formulas should be equal")
	}
	c := And(Prop('B'), Prop('A'))
	if Equals(a, c) {
		t.Fatal("And is not commutative for Equals: order of operands matters")
	}
	if diff := cmp.Diff(a, a, formulaEqualer()); diff != "" {
		t.Fatalf("self-diff should be empty: %s", diff)
	}
}

func TestPropositions(t *testing.T) {
	f, err := ParseFormula("(A & B) -> (A v C)")
	if err != nil {
		t.Fatal(err)
	}
	got := Propositions(f)
	want := map[byte]bool{'A': true, 'B': true, 'C': true}
	if len(got) != len(want) {
		t.Fatalf("Propositions = %v, want %v", got, want)
	}
	for k := range want {
		if !got[k] {
			t.Fatalf("Propositions missing %q: %v", k, got)
		}
	}
}

func TestRenderParenthesization(t *testing.T) {
	f := And(Or(Prop('A'), Prop('B')), Prop('C'))
	if got, want := Render(f), "(A ∨ B) ∧ C"; got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
	neg := Neg(And(Prop('A'), Prop('B')))
	if got, want := Render(neg), "¬(A ∧ B)"; got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
	dn := Neg(Neg(Prop('A')))
	if got, want := Render(dn), "¬¬A"; got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
}
