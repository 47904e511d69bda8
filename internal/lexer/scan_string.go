package lexer

import (
	"github.com/lememta/sage-lang/internal/token"
)

// scanString consumes a double-quoted string. The notation's escaping
// is deliberately simple: a backslash makes the next character literal
// (so `\n` is the letter n, not a control character). Newlines do not
// terminate a string; an unterminated string runs to end of input and
// is still a StringLit. Token.Text holds the unescaped inner content,
// the span covers the quotes.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'

	var text []byte
	for !lx.cursor.EOF() {
		b := lx.cursor.Bump()
		if b == '"' {
			return token.Token{Kind: token.StringLit, Span: lx.cursor.SpanFrom(start), Text: string(text)}
		}
		if b == '\\' && !lx.cursor.EOF() {
			text = append(text, lx.cursor.Bump())
			continue
		}
		text = append(text, b)
	}

	// EOF without a closing quote: keep what we have.
	return token.Token{Kind: token.StringLit, Span: lx.cursor.SpanFrom(start), Text: string(text)}
}
