// Package rules holds the justification catalogue's verification
// predicates (§4.D) and the structural unifier behind theorem application
// (§4.E). It depends only on package syntax: it knows nothing about how a
// proof accumulates lines or scopes citations, only how to check one
// already-gathered set of cited formulas against a candidate conclusion.
package rules

import "github.com/Cubix1729/fitch-proof/syntax"

// Subproof is the assumption/conclusion pair of a cited, discharged
// subproof, e.g. the "sa"/"se" of §4.D.
type Subproof struct {
	Assumption *syntax.Formula
	Conclusion *syntax.Formula
}

// Verify checks the rule predicate for kind given its cited line formulas
// (in citation order) and cited subproofs (in citation order), against
// the candidate line's formula concl. Premise and Assumption carry no
// formula-level check: the proof state machine validates their position.
func Verify(kind syntax.RuleKind, lines []*syntax.Formula, subproofs []Subproof, concl *syntax.Formula) bool {
	switch kind {
	case syntax.Premise, syntax.Assumption:
		return true
	case syntax.Reiteration:
		a := lines[0]
		return syntax.Equals(concl, a)
	case syntax.AndIntro:
		a, b := lines[0], lines[1]
		return concl.Kind == syntax.KindAnd && syntax.Equals(concl.L, a) && syntax.Equals(concl.R, b)
	case syntax.AndElim:
		a := lines[0]
		return a.Kind == syntax.KindAnd && (syntax.Equals(concl, a.L) || syntax.Equals(concl, a.R))
	case syntax.OrIntro:
		a := lines[0]
		return concl.Kind == syntax.KindOr && (syntax.Equals(concl.L, a) || syntax.Equals(concl.R, a))
	case syntax.OrElim:
		a := lines[0]
		s1, s2 := subproofs[0], subproofs[1]
		return a.Kind == syntax.KindOr &&
			syntax.Equals(s1.Assumption, a.L) &&
			syntax.Equals(s2.Assumption, a.R) &&
			syntax.Equals(s1.Conclusion, s2.Conclusion) &&
			syntax.Equals(s1.Conclusion, concl)
	case syntax.ImpIntro:
		s := subproofs[0]
		return concl.Kind == syntax.KindImp && syntax.Equals(s.Assumption, concl.L) && syntax.Equals(s.Conclusion, concl.R)
	case syntax.ImpElim:
		a, b := lines[0], lines[1]
		if a.Kind == syntax.KindImp && syntax.Equals(b, a.L) && syntax.Equals(concl, a.R) {
			return true
		}
		return b.Kind == syntax.KindImp && syntax.Equals(a, b.L) && syntax.Equals(concl, b.R)
	case syntax.NegIntro:
		s := subproofs[0]
		return concl.Kind == syntax.KindNeg && syntax.Equals(concl.X, s.Assumption) && s.Conclusion.Kind == syntax.KindBottom
	case syntax.NegElim:
		a, b := lines[0], lines[1]
		if concl.Kind != syntax.KindBottom {
			return false
		}
		if a.Kind == syntax.KindNeg && syntax.Equals(a.X, b) {
			return true
		}
		return b.Kind == syntax.KindNeg && syntax.Equals(b.X, a)
	case syntax.IffIntro:
		s1, s2 := subproofs[0], subproofs[1]
		return concl.Kind == syntax.KindIff &&
			syntax.Equals(s1.Assumption, concl.L) && syntax.Equals(s1.Conclusion, concl.R) &&
			syntax.Equals(s2.Assumption, concl.R) && syntax.Equals(s2.Conclusion, concl.L)
	case syntax.IffElim:
		a, b := lines[0], lines[1]
		if a.Kind == syntax.KindIff {
			if syntax.Equals(b, a.L) && syntax.Equals(concl, a.R) {
				return true
			}
			if syntax.Equals(b, a.R) && syntax.Equals(concl, a.L) {
				return true
			}
		}
		if b.Kind == syntax.KindIff {
			if syntax.Equals(a, b.L) && syntax.Equals(concl, b.R) {
				return true
			}
			if syntax.Equals(a, b.R) && syntax.Equals(concl, b.L) {
				return true
			}
		}
		return false
	case syntax.DoubleNegElim:
		a := lines[0]
		return a.Kind == syntax.KindNeg && a.X.Kind == syntax.KindNeg && syntax.Equals(a.X.X, concl)
	default:
		return false
	}
}
