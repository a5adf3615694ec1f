package typeset

import (
	"strings"
	"testing"

	"github.com/Cubix1729/fitch-proof/proof"
	"github.com/Cubix1729/fitch-proof/syntax"
)

func f(src string) *syntax.Formula {
	v, err := syntax.ParseFormula(src)
	if err != nil {
		panic(err)
	}
	return v
}

func inf(src string) *syntax.Inference {
	i, err := syntax.ParseInference(src)
	if err != nil {
		panic(err)
	}
	return i
}

func arrowReflexivityProof(t *testing.T) *proof.Proof {
	t.Helper()
	p := proof.New(inf("⊢ A -> A"), proof.NewRegistry())
	p.OpenAssumption(f("A"))
	if err := p.AdmitStep(f("A"), &syntax.Justification{Kind: syntax.Reiteration, Lines: []int{1}}); err != nil {
		t.Fatalf("AdmitStep: %v", err)
	}
	if err := p.DischargeAssumption(); err != nil {
		t.Fatalf("DischargeAssumption: %v", err)
	}
	if err := p.AdmitStep(f("A -> A"), &syntax.Justification{Kind: syntax.ImpIntro, Ranges: []syntax.SubproofRange{{From: 1, To: 2}}}); err != nil {
		t.Fatalf("AdmitStep: %v", err)
	}
	if err := p.Check(); err != nil {
		t.Fatalf("Check: %v", err)
	}
	return p
}

func TestTextRendersOneLinePerStepWithDepthBars(t *testing.T) {
	p := arrowReflexivityProof(t)
	out := Text(p)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "| ") {
		t.Errorf("line 1 should be indented one level: %q", lines[0])
	}
	if strings.Contains(lines[2], "| ") {
		t.Errorf("line 3 should be back at depth 0: %q", lines[2])
	}
	if !strings.Contains(lines[2], "A → A") || !strings.Contains(lines[2], "→I 1-2") {
		t.Errorf("line 3 missing formula/justification: %q", lines[2])
	}
}

func TestTextDocumentPrintsEachGoal(t *testing.T) {
	p := arrowReflexivityProof(t)
	out := TextDocument([]Result{{Goal: inf("⊢ A -> A"), Proof: p}})
	if !strings.Contains(out, "proof ⊢ A → A") {
		t.Errorf("missing goal header: %q", out)
	}
}

func TestTeXWrapsLogicproofEnvironment(t *testing.T) {
	p := arrowReflexivityProof(t)
	out := TeX(p)
	if !strings.HasPrefix(out, "\\begin{logicproof}{1}") {
		t.Fatalf("missing environment header: %q", out)
	}
	if !strings.Contains(out, "\\end{logicproof}") {
		t.Fatalf("missing environment footer: %q", out)
	}
	if !strings.Contains(out, "\\to") {
		t.Errorf("expected the implication to render as \\to: %q", out)
	}
}

func TestTeXDocumentWrapsEachProof(t *testing.T) {
	p := arrowReflexivityProof(t)
	out := TeXDocument([]Result{{Goal: inf("⊢ A -> A"), Proof: p}})
	if !strings.Contains(out, "\\vdash") {
		t.Errorf("expected a turnstile command in the goal paragraph: %q", out)
	}
	if !strings.Contains(out, "\\begin{document}") || !strings.Contains(out, "\\end{document}") {
		t.Errorf("missing document wrapper: %q", out)
	}
}
