// Package driver splits a proof document's text into individual proofs,
// drives each through the proof package's state machine one physical
// line at a time, and resolves #import directives against a shared
// registry. It owns all I/O and all text-level parsing of the document
// shape; the proof package itself never reads a file or sees raw text.
package driver

import (
	"fmt"
	"strings"

	"github.com/Cubix1729/fitch-proof/proof"
	"github.com/Cubix1729/fitch-proof/syntax"
)

// indentUnit is the number of leading-whitespace columns that make up
// one unit of nesting depth: one column per space, four per tab.
const indentUnit = 4

// Result pairs a verified proof.Proof with the goal inference it was
// declared against, for reporting.
type Result struct {
	Goal  *syntax.Inference
	Proof *proof.Proof
}

// Document is a parsed but not-yet-verified proof file: a list of
// import paths and a list of raw proof blocks.
type Document struct {
	Imports []string
	Blocks  []Block
}

// Block is one "proof <inference>" declaration together with its body
// lines, each already split into depth/formula/justification text.
type Block struct {
	GoalText string
	GoalLine int
	Lines    []Line
}

// Line is one physical proof-body line after stripping numeric prefixes
// and comments: its target nesting depth and its formula/justification
// text.
type Line struct {
	Depth         int
	FormulaText   string
	Justification string
	SourceLine    int
}

// ParseDocument splits raw document text into import directives and
// proof blocks, per §6's "proof-line syntax".
func ParseDocument(text string) (*Document, error) {
	doc := &Document{}
	var current *Block

	for i, raw := range strings.Split(text, "\n") {
		lineNo := i + 1
		line, ok := stripComment(raw)
		if !ok {
			continue
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if strings.HasPrefix(trimmed, "#import") {
			path := strings.TrimSpace(strings.TrimPrefix(trimmed, "#import"))
			if path == "" {
				return nil, fmt.Errorf("line %d: #import requires a path", lineNo)
			}
			doc.Imports = append(doc.Imports, path)
			continue
		}

		if strings.HasPrefix(trimmed, "proof") {
			rest := strings.TrimSpace(strings.TrimPrefix(trimmed, "proof"))
			if current != nil {
				doc.Blocks = append(doc.Blocks, *current)
			}
			current = &Block{GoalText: rest, GoalLine: lineNo}
			continue
		}

		if current == nil {
			return nil, fmt.Errorf("line %d: proof line outside of a \"proof\" block", lineNo)
		}

		body := stripNumericPrefix(line)
		depth := depthOf(line)
		formulaText, justText, ok := splitBy(body)
		if !ok {
			return nil, fmt.Errorf("line %d: missing \"by\" justification separator", lineNo)
		}
		current.Lines = append(current.Lines, Line{
			Depth:         depth,
			FormulaText:   strings.TrimSpace(formulaText),
			Justification: strings.TrimSpace(justText),
			SourceLine:    lineNo,
		})
	}
	if current != nil {
		doc.Blocks = append(doc.Blocks, *current)
	}
	return doc, nil
}

// stripComment removes a trailing "%…" comment. ok is always true; a
// line that was nothing but a comment comes back empty, and callers skip
// it as a blank line.
func stripComment(raw string) (string, bool) {
	if i := strings.IndexByte(raw, '%'); i >= 0 {
		return raw[:i], true
	}
	return raw, true
}

// stripNumericPrefix removes a leading "<n>." line-number label,
// preserving the line's original indentation by re-prepending it.
func stripNumericPrefix(line string) string {
	indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
	body := strings.TrimLeft(line, " \t")
	i := 0
	for i < len(body) && body[i] >= '0' && body[i] <= '9' {
		i++
	}
	if i > 0 && i < len(body) && body[i] == '.' {
		return indent + strings.TrimLeft(body[i+1:], " \t")
	}
	return line
}

// depthOf computes the nesting depth of a line from its leading
// whitespace: indentUnit columns per unit, one column per space, four
// per tab.
func depthOf(line string) int {
	cols := 0
	for _, r := range line {
		switch r {
		case ' ':
			cols++
		case '\t':
			cols += 4
		default:
			return cols / indentUnit
		}
	}
	return cols / indentUnit
}

// splitBy splits "<formula> by <justification>" at the first top-level
// occurrence of the keyword "by" surrounded by whitespace.
func splitBy(body string) (formulaText, justText string, ok bool) {
	fields := strings.Fields(body)
	for i, w := range fields {
		if w == "by" {
			return strings.Join(fields[:i], " "), strings.Join(fields[i+1:], " "), true
		}
	}
	return "", "", false
}
