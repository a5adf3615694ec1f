package syntax

import "strings"

// lexer turns formula source text into a stream of tokens. It is a
// hand-written switch on the current rune rather than regular-expression
// based: each next call
// inspects the rune at the cursor and advances by exactly one token,
// which keeps the grammar's ambiguity decisions entirely inside the
// parser where §4.B asks for them to be documented.
type lexer struct {
	src []rune
	pos int

	tok token
	lit string // literal text of the current token, for error messages
}

func newLexer(src string) *lexer {
	l := &lexer{src: []rune(src)}
	l.next()
	return l
}

func (l *lexer) skipSpace() {
	for l.pos < len(l.src) && isSpace(l.src[l.pos]) {
		l.pos++
	}
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }

// next advances the lexer by one token, populating l.tok and l.lit.
func (l *lexer) next() {
	l.skipSpace()
	if l.pos >= len(l.src) {
		l.tok, l.lit = tokEOF, ""
		return
	}

	rest := string(l.src[l.pos:])
	for _, word := range []string{"True", "TRUE", "true"} {
		if hasWordPrefix(rest, word) {
			l.emit(tokTop, len(word))
			return
		}
	}
	for _, word := range []string{"False", "FALSE", "false"} {
		if hasWordPrefix(rest, word) {
			l.emit(tokBottom, len(word))
			return
		}
	}

	r := l.src[l.pos]
	switch r {
	case '⊤':
		l.emit(tokTop, 1)
	case '⊥':
		l.emit(tokBottom, 1)
	case '~', '¬':
		l.emit(tokNot, 1)
	case '&', '∧':
		l.emit(tokAnd, 1)
	case 'v', '∨', '|':
		l.emit(tokOr, 1)
	case '(':
		l.emit(tokLPar, 1)
	case ')':
		l.emit(tokRPar, 1)
	case '-':
		if l.pos+1 < len(l.src) && l.src[l.pos+1] == '>' {
			l.emit(tokImp, 2)
		} else {
			l.emit(tokIllegal, 1)
		}
	case '→':
		l.emit(tokImp, 1)
	case '<':
		if l.pos+2 < len(l.src) && l.src[l.pos+1] == '-' && l.src[l.pos+2] == '>' {
			l.emit(tokIff, 3)
		} else {
			l.emit(tokIllegal, 1)
		}
	case '↔':
		l.emit(tokIff, 1)
	default:
		if isUpper(r) {
			l.emit(tokProp, 1)
		} else {
			l.emit(tokIllegal, 1)
		}
	}
}

// hasWordPrefix reports whether rest begins with word, followed by
// something other than a letter (so "Truest" is not mistaken for "True").
func hasWordPrefix(rest, word string) bool {
	if !strings.HasPrefix(rest, word) {
		return false
	}
	runes := []rune(rest)
	if len(runes) == len([]rune(word)) {
		return true
	}
	next := runes[len([]rune(word))]
	return !(next >= 'a' && next <= 'z' || next >= 'A' && next <= 'Z')
}

func (l *lexer) emit(tok token, width int) {
	l.lit = string(l.src[l.pos : l.pos+width])
	l.tok = tok
	l.pos += width
}
