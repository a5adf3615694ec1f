package proof

import "fmt"

// ErrorKind distinguishes the proof-time error kinds of §7 (the parse-time
// kinds — ParseErrorFormula, ParseErrorJustification, ParseErrorInference,
// MissingJustificationKeyword — live on *syntax.ParseError instead, since
// they are raised before a Proof ever sees the line).
type ErrorKind int

const (
	MisplacedPremise ErrorKind = iota
	UnopenedAssumptionDischarge
	CitedLineOutOfScope
	CitedSubproofInvalid
	TheoremNotProved
	RuleVerificationFailed
	GoalNotReached
)

func (k ErrorKind) String() string {
	switch k {
	case MisplacedPremise:
		return "MisplacedPremise"
	case UnopenedAssumptionDischarge:
		return "UnopenedAssumptionDischarge"
	case CitedLineOutOfScope:
		return "CitedLineOutOfScope"
	case CitedSubproofInvalid:
		return "CitedSubproofInvalid"
	case TheoremNotProved:
		return "TheoremNotProved"
	case RuleVerificationFailed:
		return "RuleVerificationFailed"
	case GoalNotReached:
		return "GoalNotReached"
	default:
		return "UnknownProofError"
	}
}

// Error is raised by the proof state machine the first time a step cannot
// be admitted. Line is the 1-based line number the error concerns (the
// line about to be admitted, or the last line for GoalNotReached); it is
// 0 when the error concerns the proof as a whole before any line number
// applies.
type Error struct {
	Kind ErrorKind
	Line int
	Msg  string
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s: %s", e.Line, e.Kind, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func errf(kind ErrorKind, line int, format string, a ...interface{}) *Error {
	return &Error{Kind: kind, Line: line, Msg: fmt.Sprintf(format, a...)}
}
