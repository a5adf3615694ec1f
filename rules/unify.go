package rules

import "github.com/Cubix1729/fitch-proof/syntax"

// Apply checks §4.E's theorem-application rule: theorem is treated as a
// derived rule by unifying its propositional variables against the
// concrete cited formulas and candidate conclusion. It returns valid iff
// at least one structural unifier exists.
//
// Reimplemented as direct structural recursion over the formula AST (see
// SPEC_FULL.md §4.E): the source's regex-based approach is explicitly
// called out as an implementation accident, not part of the contract.
// Because every proposition letter is bound eagerly at its first
// occurrence, this recursion either finds the unique unifier or fails —
// there is never a need to backtrack over alternative bindings.
func Apply(theorem *syntax.Inference, cited []*syntax.Formula, concl *syntax.Formula) bool {
	if len(cited) != len(theorem.Premises) {
		return false
	}
	bindings := map[byte]*syntax.Formula{}
	for i, pattern := range theorem.Premises {
		if !unify(pattern, cited[i], bindings) {
			return false
		}
	}
	return unify(theorem.Conclusion, concl, bindings)
}

// unify attempts to extend bindings so that substituting bindings into
// pattern yields a formula structurally equal to concrete.
func unify(pattern, concrete *syntax.Formula, bindings map[byte]*syntax.Formula) bool {
	if pattern.Kind == syntax.KindProp {
		if bound, ok := bindings[pattern.Name]; ok {
			return syntax.Equals(bound, concrete)
		}
		bindings[pattern.Name] = concrete
		return true
	}
	if pattern.Kind != concrete.Kind {
		return false
	}
	switch pattern.Kind {
	case syntax.KindTop, syntax.KindBottom:
		return true
	case syntax.KindNeg:
		return unify(pattern.X, concrete.X, bindings)
	default:
		return unify(pattern.L, concrete.L, bindings) && unify(pattern.R, concrete.R, bindings)
	}
}
