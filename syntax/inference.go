package syntax

import "strings"

// Inference pairs an ordered sequence of premises with a conclusion, e.g.
// the goal of a proof or a previously proved theorem available for
// Apply. Inferences are values: two Inferences with the same premises (in
// the same order) and the same conclusion are interchangeable.
type Inference struct {
	Premises   []*Formula
	Conclusion *Formula
}

// EqualsInference reports whether x and y have pointwise-equal premise
// sequences and equal conclusions.
func EqualsInference(x, y *Inference) bool {
	if len(x.Premises) != len(y.Premises) {
		return false
	}
	for i := range x.Premises {
		if !Equals(x.Premises[i], y.Premises[i]) {
			return false
		}
	}
	return Equals(x.Conclusion, y.Conclusion)
}

// Render renders i as "P1, P2, … ⊢ C".
func (i *Inference) Render() string {
	var b strings.Builder
	for idx, p := range i.Premises {
		if idx > 0 {
			b.WriteString(", ")
		}
		b.WriteString(Render(p))
	}
	if len(i.Premises) > 0 {
		b.WriteByte(' ')
	}
	b.WriteString("⊢ ")
	b.WriteString(Render(i.Conclusion))
	return b.String()
}

func (i *Inference) String() string { return i.Render() }

// ParseInference parses "premise (, premise)* (⊢|\|-) conclusion"; the
// premise list may be empty. Per §4.F, commas only ever separate premises
// (the formula grammar has none of its own), but each comma-separated
// fragment is still required to parse as a complete formula so that a
// malformed premise is reported precisely rather than silently merged
// with its neighbour.
func ParseInference(src string) (*Inference, error) {
	turnstile, rhs, ok := splitTurnstile(src)
	if !ok {
		return nil, parseErrf(ParseErrorInference, src, "missing ⊢ or |- separator")
	}
	lhs := src[:turnstile]

	var premises []*Formula
	lhsTrimmed := strings.TrimSpace(lhs)
	if lhsTrimmed != "" {
		for _, part := range strings.Split(lhsTrimmed, ",") {
			f, err := ParseFormula(strings.TrimSpace(part))
			if err != nil {
				return nil, parseErrf(ParseErrorInference, src, "bad premise %q: %v", part, err)
			}
			premises = append(premises, f)
		}
	}

	concl, err := ParseFormula(strings.TrimSpace(rhs))
	if err != nil {
		return nil, parseErrf(ParseErrorInference, src, "bad conclusion: %v", err)
	}
	return &Inference{Premises: premises, Conclusion: concl}, nil
}

// splitTurnstile locates the first "⊢" or "|-" in src and returns the byte
// offset of its start and the text following it.
func splitTurnstile(src string) (pos int, rhs string, ok bool) {
	if i := strings.Index(src, "⊢"); i >= 0 {
		return i, src[i+len("⊢"):], true
	}
	if i := strings.Index(src, "|-"); i >= 0 {
		return i, src[i+len("|-"):], true
	}
	return 0, "", false
}
