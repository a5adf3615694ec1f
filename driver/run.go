package driver

import (
	"fmt"

	"github.com/Cubix1729/fitch-proof/proof"
	"github.com/Cubix1729/fitch-proof/syntax"
)

// LineError wraps an error raised while admitting a specific source
// line, giving it the file/line context the core packages deliberately
// don't know about (§6 "Exit behaviour": `File "<path>", line <n>:
// <message>`).
type LineError struct {
	File string
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("File %q, line %d: %s", e.File, e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// Trace is called once per admitted line, after it succeeds, for
// --verbose-style diagnostic logging; a nil Trace disables this
// entirely with no extra cost.
type Trace func(file string, lineNum, depth int, kind syntax.RuleKind)

// RunBlock drives one "proof <inference>" block through a fresh
// proof.Proof, per the driver contract of §4.G/§6: for each line, excess
// open subproofs are discharged one level at a time until the line's
// target depth is reached (discharging one extra level first when the
// line is itself a sibling assumption at the same depth as the one just
// closed), then the line is admitted according to its justification
// kind. trace, if non-nil, is called after each line is successfully
// admitted.
func RunBlock(file string, b Block, reg *proof.Registry, trace Trace) (*proof.Proof, error) {
	goal, err := syntax.ParseInference(b.GoalText)
	if err != nil {
		return nil, &LineError{File: file, Line: b.GoalLine, Err: err}
	}
	p := proof.New(goal, reg)

	for _, ln := range b.Lines {
		formula, err := syntax.ParseFormula(ln.FormulaText)
		if err != nil {
			return nil, &LineError{File: file, Line: ln.SourceLine, Err: err}
		}
		just, err := syntax.ParseJustification(ln.Justification)
		if err != nil {
			return nil, &LineError{File: file, Line: ln.SourceLine, Err: err}
		}

		if just.Kind == syntax.Assumption {
			for p.CurrentDepth >= ln.Depth {
				if err := p.DischargeAssumption(); err != nil {
					return nil, &LineError{File: file, Line: ln.SourceLine, Err: err}
				}
			}
			p.OpenAssumption(formula)
			if trace != nil {
				trace(file, ln.SourceLine, ln.Depth, just.Kind)
			}
			continue
		}

		for p.CurrentDepth > ln.Depth {
			if err := p.DischargeAssumption(); err != nil {
				return nil, &LineError{File: file, Line: ln.SourceLine, Err: err}
			}
		}

		if just.Kind == syntax.Premise {
			if err := p.AdmitPremise(formula); err != nil {
				return nil, &LineError{File: file, Line: ln.SourceLine, Err: err}
			}
			if trace != nil {
				trace(file, ln.SourceLine, ln.Depth, just.Kind)
			}
			continue
		}
		if err := p.AdmitStep(formula, just); err != nil {
			return nil, &LineError{File: file, Line: ln.SourceLine, Err: err}
		}
		if trace != nil {
			trace(file, ln.SourceLine, ln.Depth, just.Kind)
		}
	}

	if err := p.Check(); err != nil {
		last := b.GoalLine
		if n := len(b.Lines); n > 0 {
			last = b.Lines[n-1].SourceLine
		}
		return p, &LineError{File: file, Line: last, Err: err}
	}
	return p, nil
}
