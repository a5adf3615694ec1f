package syntax

import (
	"fmt"
	"strconv"
	"strings"
)

// RuleKind tags the closed set of justification kinds of §3/§4.F.
type RuleKind int

const (
	Premise RuleKind = iota
	Assumption
	Reiteration
	AndIntro
	OrElim
	AndElim
	OrIntro
	ImpIntro
	ImpElim
	NegIntro
	NegElim
	IffIntro
	IffElim
	DoubleNegElim
	Apply
)

func (k RuleKind) String() string {
	switch k {
	case Premise:
		return "Premise"
	case Assumption:
		return "Assumption"
	case Reiteration:
		return "R"
	case AndIntro:
		return "∧I"
	case OrElim:
		return "∨E"
	case AndElim:
		return "∧E"
	case OrIntro:
		return "∨I"
	case ImpIntro:
		return "→I"
	case ImpElim:
		return "→E"
	case NegIntro:
		return "¬I"
	case NegElim:
		return "¬E"
	case IffIntro:
		return "↔I"
	case IffElim:
		return "↔E"
	case DoubleNegElim:
		return "DNE"
	case Apply:
		return "apply"
	default:
		return "?"
	}
}

// SubproofRange cites a discharged subproof spanning lines [From, To].
type SubproofRange struct {
	From, To int
}

func (r SubproofRange) String() string { return fmt.Sprintf("%d-%d", r.From, r.To) }

// Justification is the tagged variant of §3: a rule kind plus the line
// numbers and/or subproof ranges it cites. Lines and Ranges hold exactly
// the arguments fixed by Kind's arity (see ruleArity); Theorem and Cited
// are populated only when Kind == Apply.
type Justification struct {
	Kind   RuleKind
	Lines  []int
	Ranges []SubproofRange

	Theorem *Inference // only for Apply
	Cited   []int      // only for Apply; ordered cited line numbers
}

// Render renders j using the canonical spelling of its keyword, e.g.
// "∧I 2, 3", "∨E 1, 2-3, 4-5", "PR", "apply A ⊢ A ∨ A, 1".
func (j *Justification) Render() string {
	switch j.Kind {
	case Premise:
		return "PR"
	case Assumption:
		return "AS"
	case Apply:
		var b strings.Builder
		b.WriteString("apply ")
		b.WriteString(j.Theorem.Render())
		for _, n := range j.Cited {
			b.WriteString(", ")
			b.WriteString(strconv.Itoa(n))
		}
		return b.String()
	}

	var args []string
	for _, n := range j.Lines {
		args = append(args, strconv.Itoa(n))
	}
	for _, r := range j.Ranges {
		args = append(args, r.String())
	}
	if len(args) == 0 {
		return j.Kind.String()
	}
	return j.Kind.String() + " " + strings.Join(args, ", ")
}

func (j *Justification) String() string { return j.Render() }

// keywordEntry pairs one accepted literal spelling with its RuleKind.
type keywordEntry struct {
	spelling string
	kind     RuleKind
}

// keywordTable lists every accepted spelling. matchKeyword always prefers
// the longest matching spelling, so order here does not matter for
// correctness (e.g. "~~E"/"¬¬E" is never confused with "~E"/"¬E").
var keywordTable = []keywordEntry{
	{"DNE", DoubleNegElim},
	{"~~E", DoubleNegElim},
	{"¬¬E", DoubleNegElim},
	{"<->I", IffIntro},
	{"↔I", IffIntro},
	{"<->E", IffElim},
	{"↔E", IffElim},
	{"->I", ImpIntro},
	{"→I", ImpIntro},
	{"->E", ImpElim},
	{"→E", ImpElim},
	{"&I", AndIntro},
	{"∧I", AndIntro},
	{"&E", AndElim},
	{"∧E", AndElim},
	{"vI", OrIntro},
	{"∨I", OrIntro},
	{"|I", OrIntro},
	{"vE", OrElim},
	{"∨E", OrElim},
	{"|E", OrElim},
	{"~I", NegIntro},
	{"¬I", NegIntro},
	{"~E", NegElim},
	{"¬E", NegElim},
	{"R", Reiteration},
	{"Premise", Premise},
	{"Pr", Premise},
	{"PR", Premise},
	{"Assumption", Assumption},
	{"As", Assumption},
	{"AS", Assumption},
	{"apply", Apply},
}

// ruleArity describes how many bare line numbers and how many subproof
// ranges a rule kind's payload fixes. Apply's arity is variable and
// checked separately.
type ruleArity struct {
	lines  int
	ranges int
}

var arities = map[RuleKind]ruleArity{
	Premise:       {0, 0},
	Assumption:    {0, 0},
	Reiteration:   {1, 0},
	AndIntro:      {2, 0},
	OrElim:        {1, 2},
	AndElim:       {1, 0},
	OrIntro:       {1, 0},
	ImpIntro:      {0, 1},
	ImpElim:       {2, 0},
	NegIntro:      {0, 1},
	NegElim:       {2, 0},
	IffIntro:      {0, 2},
	IffElim:       {2, 0},
	DoubleNegElim: {1, 0},
}

// ParseJustification parses one justification phrase per the grammar of
// §4.F.
func ParseJustification(src string) (*Justification, error) {
	trimmed := strings.TrimSpace(src)
	kind, rest, ok := matchKeyword(trimmed)
	if !ok {
		return nil, parseErrf(ParseErrorJustification, src, "unrecognised justification keyword")
	}
	rest = strings.TrimSpace(rest)

	if kind == Apply {
		return parseApply(src, rest)
	}
	if kind == Premise || kind == Assumption {
		if rest != "" {
			return nil, parseErrf(ParseErrorJustification, src, "%s takes no arguments", kind)
		}
		return &Justification{Kind: kind}, nil
	}

	want := arities[kind]
	args, err := splitArgs(src, rest)
	if err != nil {
		return nil, err
	}
	if len(args) != want.lines+want.ranges {
		return nil, parseErrf(ParseErrorJustification, src, "%s expects %d argument(s), got %d", kind, want.lines+want.ranges, len(args))
	}

	j := &Justification{Kind: kind}
	for idx, arg := range args {
		if idx < want.lines {
			n, err := strconv.Atoi(arg)
			if err != nil {
				return nil, parseErrf(ParseErrorJustification, src, "expected a line number, got %q", arg)
			}
			j.Lines = append(j.Lines, n)
			continue
		}
		r, err := parseRange(src, arg)
		if err != nil {
			return nil, err
		}
		j.Ranges = append(j.Ranges, r)
	}
	return j, nil
}

// matchKeyword finds the longest keyword spelling that is a whole-token
// prefix of trimmed (followed by whitespace or end of input) and returns
// its kind and the remainder of the string.
func matchKeyword(trimmed string) (RuleKind, string, bool) {
	best := -1
	var bestKind RuleKind
	for _, e := range keywordTable {
		if !strings.HasPrefix(trimmed, e.spelling) {
			continue
		}
		n := len(e.spelling)
		if n < len(trimmed) {
			next := trimmed[n]
			if next != ' ' && next != '\t' {
				continue
			}
		}
		if n > best {
			best, bestKind = n, e.kind
		}
	}
	if best < 0 {
		return 0, "", false
	}
	return bestKind, trimmed[best:], true
}

// splitArgs splits a flat, top-level comma-separated argument list. The
// justification grammar never nests commas inside an argument (arguments
// are bare integers or integer ranges), so a plain split suffices.
func splitArgs(src, rest string) ([]string, error) {
	if rest == "" {
		return nil, nil
	}
	parts := strings.Split(rest, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil, parseErrf(ParseErrorJustification, src, "empty argument")
		}
		out = append(out, p)
	}
	return out, nil
}

func parseRange(src, arg string) (SubproofRange, error) {
	i := strings.IndexByte(arg, '-')
	if i <= 0 || i == len(arg)-1 {
		return SubproofRange{}, parseErrf(ParseErrorJustification, src, "expected a subproof range a-b, got %q", arg)
	}
	from, err1 := strconv.Atoi(strings.TrimSpace(arg[:i]))
	to, err2 := strconv.Atoi(strings.TrimSpace(arg[i+1:]))
	if err1 != nil || err2 != nil {
		return SubproofRange{}, parseErrf(ParseErrorJustification, src, "expected a subproof range a-b, got %q", arg)
	}
	return SubproofRange{From: from, To: to}, nil
}

// parseApply parses "apply <inference>(, n)*". The inference's conclusion
// never contains a top-level comma, so the first comma-separated fragment
// after the turnstile is the conclusion and any further fragments are
// cited line numbers.
func parseApply(src, rest string) (*Justification, error) {
	turnstile, rhs, ok := splitTurnstile(rest)
	if !ok {
		return nil, parseErrf(ParseErrorJustification, src, "apply requires an inference")
	}
	lhs := rest[:turnstile]

	fields := strings.Split(rhs, ",")
	conclText := strings.TrimSpace(fields[0])
	concl, err := ParseFormula(conclText)
	if err != nil {
		return nil, parseErrf(ParseErrorJustification, src, "bad applied conclusion: %v", err)
	}

	var premises []*Formula
	lhsTrimmed := strings.TrimSpace(lhs)
	if lhsTrimmed != "" {
		for _, part := range strings.Split(lhsTrimmed, ",") {
			f, err := ParseFormula(strings.TrimSpace(part))
			if err != nil {
				return nil, parseErrf(ParseErrorJustification, src, "bad applied premise %q: %v", part, err)
			}
			premises = append(premises, f)
		}
	}

	var cited []int
	for _, f := range fields[1:] {
		f = strings.TrimSpace(f)
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, parseErrf(ParseErrorJustification, src, "expected a cited line number, got %q", f)
		}
		cited = append(cited, n)
	}

	return &Justification{
		Kind:    Apply,
		Theorem: &Inference{Premises: premises, Conclusion: concl},
		Cited:   cited,
	}, nil
}
