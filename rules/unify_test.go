package rules

import (
	"testing"

	"github.com/Cubix1729/fitch-proof/syntax"
)

func theorem(src string) *syntax.Inference {
	i, err := syntax.ParseInference(src)
	if err != nil {
		panic(err)
	}
	return i
}

func TestApplyUnifiesMetaVariables(t *testing.T) {
	th := theorem("A ⊢ A ∨ A")
	if !Apply(th, []*syntax.Formula{f("C")}, f("C v C")) {
		t.Fatal("Apply should unify A with a concrete C")
	}
	if Apply(th, []*syntax.Formula{f("C")}, f("C v D")) {
		t.Fatal("Apply must bind every occurrence of a meta-variable to the same formula")
	}
}

func TestApplyRejectsWrongArity(t *testing.T) {
	th := theorem("A, B ⊢ A & B")
	if Apply(th, []*syntax.Formula{f("C")}, f("C & C")) {
		t.Fatal("Apply must reject a citation count mismatch")
	}
}

func TestApplyNoPremises(t *testing.T) {
	th := theorem("⊢ A v ~A")
	if !Apply(th, nil, f("B v ~B")) {
		t.Fatal("Apply should unify a zero-premise theorem")
	}
}

func TestApplyNestedSubformulas(t *testing.T) {
	th := theorem("A & B ⊢ B & A")
	if !Apply(th, []*syntax.Formula{f("(C v D) & ~C")}, f("~C & (C v D)")) {
		t.Fatal("Apply should unify meta-variables against nested compound formulas")
	}
}
