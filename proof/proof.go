// Package proof drives the line-by-line state machine of §4.G: a Proof
// accumulates ProofLines one at a time, tracking the current nesting depth
// and rejecting a line the moment it violates a structural invariant or
// fails its rule's verification predicate (§4.D/§4.E, delegated to package
// rules). It mirrors the teacher's interp package: a single stateful
// engine type driven by a small, explicit sequence of calls, one per
// source line, with every failure surfaced as a typed *Error rather than a
// bare string.
package proof

import (
	"github.com/Cubix1729/fitch-proof/rules"
	"github.com/Cubix1729/fitch-proof/syntax"
)

// ProofLine is one admitted line: its formula, the depth it was admitted
// at, and the justification that licensed it.
type ProofLine struct {
	Formula       *syntax.Formula
	Justification *syntax.Justification
	Depth         int
}

// Proof is the state for a single Fitch proof in progress. Zero value is
// not usable; construct with New. A Proof is not safe for concurrent use.
type Proof struct {
	Goal     *syntax.Inference
	Registry *Registry

	Steps        []ProofLine
	CurrentDepth int
}

// New returns an empty proof of goal. reg is consulted (and, once goal is
// reached, NOT automatically updated — callers add to it themselves via
// Registry.Add once they decide the proof is complete) by any Apply step.
func New(goal *syntax.Inference, reg *Registry) *Proof {
	return &Proof{Goal: goal, Registry: reg}
}

// AdmitPremise admits f as a premise. Per invariant 1, premises are only
// legal at depth 0 and only while every previously admitted line was
// itself a premise.
func (p *Proof) AdmitPremise(f *syntax.Formula) error {
	if p.CurrentDepth != 0 {
		return errf(MisplacedPremise, p.nextLine(), "a premise may only appear at depth 0")
	}
	for _, s := range p.Steps {
		if s.Justification.Kind != syntax.Premise {
			return errf(MisplacedPremise, p.nextLine(), "premises must precede every other line")
		}
	}
	p.Steps = append(p.Steps, ProofLine{Formula: f, Justification: &syntax.Justification{Kind: syntax.Premise}, Depth: 0})
	return nil
}

// OpenAssumption admits f as a fresh assumption, opening a new subproof
// one level deeper than the current one. Per §4.G this is allowed
// regardless of what the previous line was: invariant 2 (depth increases
// by at most one per line) holds automatically since the new line's depth
// is exactly CurrentDepth+1.
func (p *Proof) OpenAssumption(f *syntax.Formula) {
	p.CurrentDepth++
	p.Steps = append(p.Steps, ProofLine{Formula: f, Justification: &syntax.Justification{Kind: syntax.Assumption}, Depth: p.CurrentDepth})
}

// DischargeAssumption closes the innermost open subproof. It is the
// driver's responsibility to call this exactly once per subproof, after
// its final line and before the next line at the shallower depth.
func (p *Proof) DischargeAssumption() error {
	if p.CurrentDepth == 0 {
		return errf(UnopenedAssumptionDischarge, p.nextLine(), "no open assumption to discharge")
	}
	p.CurrentDepth--
	return nil
}

// AdmitStep validates j against the lines and subproofs it cites (per the
// scope policy below) and, if j's rule accepts, appends f at the current
// depth. j must not be Premise or Assumption; those are admitted through
// AdmitPremise/OpenAssumption instead, and a driver that mixes them up has
// violated its own contract with Proof.
func (p *Proof) AdmitStep(f *syntax.Formula, j *syntax.Justification) error {
	if j.Kind == syntax.Premise || j.Kind == syntax.Assumption {
		panic("proof: AdmitStep called with a Premise or Assumption justification")
	}

	line := p.nextLine()

	if j.Kind == syntax.Apply {
		if !p.Registry.Contains(j.Theorem) {
			return errf(TheoremNotProved, line, "theorem %s has not been proved", j.Theorem.Render())
		}
		cited, err := p.resolveLines(line, j.Cited)
		if err != nil {
			return err
		}
		if !rules.Apply(j.Theorem, cited, f) {
			return errf(RuleVerificationFailed, line, "apply %s does not justify %s", j.Theorem.Render(), syntax.Render(f))
		}
		p.appendStep(f, j)
		return nil
	}

	lineForms, err := p.resolveLines(line, j.Lines)
	if err != nil {
		return err
	}
	subproofs, err := p.resolveRanges(line, j.Ranges)
	if err != nil {
		return err
	}
	if !rules.Verify(j.Kind, lineForms, subproofs, f) {
		return errf(RuleVerificationFailed, line, "%s does not justify %s", j.Kind, syntax.Render(f))
	}
	p.appendStep(f, j)
	return nil
}

func (p *Proof) appendStep(f *syntax.Formula, j *syntax.Justification) {
	p.Steps = append(p.Steps, ProofLine{Formula: f, Justification: j, Depth: p.CurrentDepth})
}

func (p *Proof) nextLine() int { return len(p.Steps) + 1 }

// resolveLines resolves each 1-based cited line number to its formula,
// checking it is in scope at the point the line about to be admitted
// (which does not yet exist in p.Steps).
func (p *Proof) resolveLines(line int, nums []int) ([]*syntax.Formula, error) {
	out := make([]*syntax.Formula, 0, len(nums))
	for _, n := range nums {
		if n < 1 || n > len(p.Steps) {
			return nil, errf(CitedLineOutOfScope, line, "line %d does not exist", n)
		}
		if !p.isInScope(n) {
			return nil, errf(CitedLineOutOfScope, line, "line %d is not in scope here", n)
		}
		out = append(out, p.Steps[n-1].Formula)
	}
	return out, nil
}

// isInScope reports whether line n (1-based, already admitted) may be
// cited by a step about to be admitted at the current depth. Per §4.G: a
// line at depth 0 is always in scope; a line at depth d>0 is in scope
// only while the subproof containing it is still open (it need not be the
// innermost one), i.e. d <= CurrentDepth, no later admitted line has
// dipped below d, and no later admitted
// line at exactly depth d has opened a fresh sibling subproof in its
// place.
func (p *Proof) isInScope(n int) bool {
	d := p.Steps[n-1].Depth
	if d > p.CurrentDepth {
		return false
	}
	if d == 0 {
		return true
	}
	for i := n; i < len(p.Steps); i++ {
		ln := p.Steps[i]
		if ln.Depth < d {
			return false
		}
		if ln.Depth == d && ln.Justification.Kind == syntax.Assumption {
			return false
		}
	}
	return true
}

// resolveRanges resolves each cited subproof range to its rules.Subproof
// (assumption formula, conclusion formula), checking each is a validly
// discharged, still-relevant subproof.
func (p *Proof) resolveRanges(line int, ranges []syntax.SubproofRange) ([]rules.Subproof, error) {
	out := make([]rules.Subproof, 0, len(ranges))
	for _, r := range ranges {
		s, err := p.resolveRange(line, r)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// resolveRange validates a single cited subproof range a..b per §4.G:
//   - a exists and is an Assumption; a <= b <= len(Steps)
//   - lines a and b sit at the same depth d, and no line in [a,b] dips
//     below d (nested sub-subproofs may open and close within the range)
//   - d equals CurrentDepth+1: the subproof is discharged relative to the
//     point of citation, not still open
//   - no line strictly after b, up to the point of citation, has opened a
//     fresh assumption at a depth shallower than d — that would mean an
//     enclosing sibling branch has since started and the cited subproof
//     is stale. A fresh sibling assumption at exactly depth d (as when
//     OrElim or IffIntro cite two sibling subproofs side by side) is not
//     by itself disqualifying: it is the normal shape of such a citation,
//     not evidence of staleness.
func (p *Proof) resolveRange(line int, r syntax.SubproofRange) (rules.Subproof, error) {
	bad := func(format string, a ...interface{}) (rules.Subproof, error) {
		return rules.Subproof{}, errf(CitedSubproofInvalid, line, format, a...)
	}
	a, b := r.From, r.To
	if a < 1 || a > len(p.Steps) {
		return bad("subproof start %d does not exist", a)
	}
	if p.Steps[a-1].Justification.Kind != syntax.Assumption {
		return bad("line %d does not open an assumption", a)
	}
	if b < a || b > len(p.Steps) {
		return bad("subproof range %d-%d is not well formed", a, b)
	}
	d := p.Steps[a-1].Depth
	if p.Steps[b-1].Depth != d {
		return bad("subproof range %d-%d does not close at the same depth it opens", a, b)
	}
	for i := a; i <= b; i++ {
		if p.Steps[i-1].Depth < d {
			return bad("subproof range %d-%d dips out of its own nesting", a, b)
		}
	}
	if d != p.CurrentDepth+1 {
		return bad("subproof %d-%d is not the subproof discharged immediately before this step", a, b)
	}
	for i := b; i < len(p.Steps); i++ {
		ln := p.Steps[i]
		if ln.Depth < d && ln.Justification.Kind == syntax.Assumption {
			return bad("subproof %d-%d is stale: an enclosing branch has since reopened", a, b)
		}
	}
	return rules.Subproof{Assumption: p.Steps[a-1].Formula, Conclusion: p.Steps[b-1].Formula}, nil
}

// GoalAccomplished reports whether the proof as it stands satisfies its
// goal: its opening run of premises matches Goal.Premises as a multiset
// (order-independent, per the §9 resolution of the open question on
// premise comparison), the nesting has returned to depth 0, and the final
// admitted line's formula equals Goal.Conclusion.
func (p *Proof) GoalAccomplished() bool {
	if len(p.Steps) == 0 || p.CurrentDepth != 0 {
		return false
	}
	last := p.Steps[len(p.Steps)-1]
	if !syntax.Equals(last.Formula, p.Goal.Conclusion) {
		return false
	}
	var premises []*syntax.Formula
	for _, s := range p.Steps {
		if s.Justification.Kind != syntax.Premise {
			break
		}
		premises = append(premises, s.Formula)
	}
	return formulaMultisetEqual(premises, p.Goal.Premises)
}

// Check returns an error describing why the proof does not yet
// accomplish its goal, or nil if it does. It is meant for a driver to
// call once after the final line has been admitted and every assumption
// discharged.
func (p *Proof) Check() error {
	if p.CurrentDepth != 0 {
		return errf(GoalNotReached, len(p.Steps), "proof ends with an open assumption")
	}
	if !p.GoalAccomplished() {
		return errf(GoalNotReached, len(p.Steps), "final line does not match the goal %s", p.Goal.Render())
	}
	return nil
}

// formulaMultisetEqual reports whether a and b contain the same formulas
// with the same multiplicities, ignoring order.
func formulaMultisetEqual(a, b []*syntax.Formula) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
	for _, x := range a {
		found := false
		for i, y := range b {
			if used[i] {
				continue
			}
			if syntax.Equals(x, y) {
				used[i] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
