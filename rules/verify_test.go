package rules

import (
	"testing"

	"github.com/Cubix1729/fitch-proof/syntax"
)

func f(src string) *syntax.Formula {
	v, err := syntax.ParseFormula(src)
	if err != nil {
		panic(err)
	}
	return v
}

func TestVerifyAndIntroElim(t *testing.T) {
	if !Verify(syntax.AndIntro, []*syntax.Formula{f("A"), f("B")}, nil, f("A & B")) {
		t.Fatal("AndIntro should accept A, B -> A & B")
	}
	if Verify(syntax.AndIntro, []*syntax.Formula{f("A"), f("B")}, nil, f("B & A")) {
		t.Fatal("AndIntro must respect operand order")
	}
	if !Verify(syntax.AndElim, []*syntax.Formula{f("A & B")}, nil, f("B")) {
		t.Fatal("AndElim should extract the right conjunct")
	}
}

func TestVerifyImpElimSymmetric(t *testing.T) {
	imp, b := f("A -> B"), f("A")
	if !Verify(syntax.ImpElim, []*syntax.Formula{imp, b}, nil, f("B")) {
		t.Fatal("ImpElim(imp, a) should accept")
	}
	if !Verify(syntax.ImpElim, []*syntax.Formula{b, imp}, nil, f("B")) {
		t.Fatal("ImpElim should accept its arguments in either order (symmetry)")
	}
}

func TestVerifyNegElimSymmetric(t *testing.T) {
	a, na := f("A"), f("~A")
	if !Verify(syntax.NegElim, []*syntax.Formula{a, na}, nil, f("⊥")) {
		t.Fatal("NegElim(a, ~a) should accept")
	}
	if !Verify(syntax.NegElim, []*syntax.Formula{na, a}, nil, f("⊥")) {
		t.Fatal("NegElim should be symmetric in its arguments")
	}
}

func TestVerifyIffElimSymmetric(t *testing.T) {
	iff := f("A <-> B")
	if !Verify(syntax.IffElim, []*syntax.Formula{iff, f("A")}, nil, f("B")) {
		t.Fatal("IffElim(iff, A) -> B should accept")
	}
	if !Verify(syntax.IffElim, []*syntax.Formula{f("A"), iff}, nil, f("B")) {
		t.Fatal("IffElim should accept the biconditional in either position")
	}
	if !Verify(syntax.IffElim, []*syntax.Formula{iff, f("B")}, nil, f("A")) {
		t.Fatal("IffElim(iff, B) -> A should accept")
	}
}

func TestVerifyOrElim(t *testing.T) {
	disj := f("A v B")
	s1 := Subproof{Assumption: f("A"), Conclusion: f("C")}
	s2 := Subproof{Assumption: f("B"), Conclusion: f("C")}
	if !Verify(syntax.OrElim, []*syntax.Formula{disj}, []Subproof{s1, s2}, f("C")) {
		t.Fatal("OrElim should accept matching branch conclusions")
	}
	s2bad := Subproof{Assumption: f("B"), Conclusion: f("D")}
	if Verify(syntax.OrElim, []*syntax.Formula{disj}, []Subproof{s1, s2bad}, f("C")) {
		t.Fatal("OrElim must require both branches to reach the same conclusion")
	}
}

func TestVerifyImpIntroNegIntroIffIntro(t *testing.T) {
	s := Subproof{Assumption: f("A"), Conclusion: f("B")}
	if !Verify(syntax.ImpIntro, nil, []Subproof{s}, f("A -> B")) {
		t.Fatal("ImpIntro should accept")
	}
	bot := Subproof{Assumption: f("A"), Conclusion: f("⊥")}
	if !Verify(syntax.NegIntro, nil, []Subproof{bot}, f("~A")) {
		t.Fatal("NegIntro should accept when the subproof reaches bottom")
	}
	s1 := Subproof{Assumption: f("A"), Conclusion: f("B")}
	s2 := Subproof{Assumption: f("B"), Conclusion: f("A")}
	if !Verify(syntax.IffIntro, nil, []Subproof{s1, s2}, f("A <-> B")) {
		t.Fatal("IffIntro should accept matching halves")
	}
}

func TestVerifyDoubleNegElim(t *testing.T) {
	if !Verify(syntax.DoubleNegElim, []*syntax.Formula{f("~~A")}, nil, f("A")) {
		t.Fatal("DoubleNegElim should strip two negations")
	}
	if Verify(syntax.DoubleNegElim, []*syntax.Formula{f("~A")}, nil, f("A")) {
		t.Fatal("DoubleNegElim must require exactly two negations")
	}
}
