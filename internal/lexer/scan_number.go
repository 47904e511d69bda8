package lexer

import (
	"github.com/lememta/sage-lang/internal/token"
)

// scanNumber consumes digits with interior dots (1, 1.5, 1.2.3 for
// version-like literals). No exponent or sign support; values are not
// decoded here, Text is the exact source slice.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	for {
		b0, b1, ok := lx.cursor.Peek2()
		if !ok || b0 != '.' || !isDec(b1) {
			break
		}
		lx.cursor.Bump() // '.'
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.NumberLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
