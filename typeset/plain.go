// Package typeset renders a verified proof.Proof back out as text: a
// plain Fitch layout for terminals and files, and a LaTeX logicproof
// derivation for typesetting. It never re-verifies anything — a Proof
// reaching this package is already accepted.
package typeset

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Cubix1729/fitch-proof/proof"
	"github.com/Cubix1729/fitch-proof/syntax"
)

// Text renders p as a Fitch-style derivation: one vertical bar per open
// subproof nesting depth, a right-aligned line number, the formula, and
// its justification.
func Text(p *proof.Proof) string {
	var b strings.Builder
	width := len(strconv.Itoa(len(p.Steps)))
	for i, line := range p.Steps {
		fmt.Fprintf(&b, "%*d. %s%s  %s\n",
			width, i+1,
			strings.Repeat("| ", line.Depth),
			syntax.Render(line.Formula),
			line.Justification.Render(),
		)
	}
	return b.String()
}

// TextDocument renders every proof of results in sequence, each
// preceded by its goal, for a whole-document plain-text report.
func TextDocument(results []Result) string {
	var b strings.Builder
	for i, r := range results {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "proof %s\n", r.Goal.Render())
		b.WriteString(Text(r.Proof))
	}
	return b.String()
}

// Result pairs a goal with its verified proof, matching driver.Result's
// shape without importing driver (which would invert the dependency
// direction typeset otherwise keeps clean: typeset depends only on
// proof and syntax).
type Result struct {
	Goal  *syntax.Inference
	Proof *proof.Proof
}
