package typeset

import (
	"fmt"
	"strings"

	"github.com/google/renameio/v2"

	"github.com/Cubix1729/fitch-proof/proof"
	"github.com/Cubix1729/fitch-proof/syntax"
)

// TeX renders p as a body of LaTeX's logicproof environment (from the
// logicproof/fitch packages): one "formula & justification" row per step.
// Only the maximum nesting depth is passed to the environment; the rows
// carry no marker of where a subproof opens or closes.
func TeX(p *proof.Proof) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\\begin{logicproof}{%d}\n", maxDepth(p.Steps))
	for _, line := range p.Steps {
		fmt.Fprintf(&b, "%s & %s\\\\\n",
			syntax.RenderTeX(line.Formula),
			texJustification(line.Justification),
		)
	}
	b.WriteString("\\end{logicproof}\n")
	return b.String()
}

// TeXDocument renders a whole run's accepted proofs as a standalone
// LaTeX document, one logicproof environment per proof.
func TeXDocument(results []Result) string {
	var b strings.Builder
	b.WriteString("\\documentclass{article}\n\\usepackage{logicproof}\n\\begin{document}\n")
	for _, r := range results {
		fmt.Fprintf(&b, "\\paragraph{%s}\n", inferenceTeX(r.Goal))
		b.WriteString(TeX(r.Proof))
	}
	b.WriteString("\\end{document}\n")
	return b.String()
}

// WriteTeXFile atomically writes doc to path via renameio, so a reader
// never observes a partially-written LaTeX file.
func WriteTeXFile(path, doc string) error {
	return renameio.WriteFile(path, []byte(doc), 0o644)
}

func maxDepth(steps []proof.ProofLine) int {
	max := 0
	for _, s := range steps {
		if s.Depth > max {
			max = s.Depth
		}
	}
	return max
}

func texJustification(j *syntax.Justification) string {
	return texEscape(j.Render())
}

// inferenceTeX renders an Inference's premises and conclusion each via
// RenderTeX, joined with LaTeX's turnstile command rather than the
// Unicode glyph Inference.Render uses for terminal/plain-text output.
func inferenceTeX(i *syntax.Inference) string {
	parts := make([]string, len(i.Premises))
	for idx, p := range i.Premises {
		parts[idx] = syntax.RenderTeX(p)
	}
	if len(parts) == 0 {
		return "\\vdash " + syntax.RenderTeX(i.Conclusion)
	}
	return strings.Join(parts, ", ") + " \\vdash " + syntax.RenderTeX(i.Conclusion)
}

// texEscape escapes the handful of characters LaTeX treats specially
// that can appear in a rendered justification ("⊢" is already
// turned into Unicode text, never a LaTeX control sequence, by
// Inference.Render, so only ASCII specials need escaping here).
func texEscape(s string) string {
	r := strings.NewReplacer(
		"&", "\\&",
		"%", "\\%",
		"_", "\\_",
		"#", "\\#",
	)
	return r.Replace(s)
}
