package lexer

import (
	"golang.org/x/text/unicode/norm"

	"github.com/lememta/sage-lang/internal/token"
)

// scanIdentOrKeyword scans an identifier and checks the plain keyword
// table. Keywords are case-sensitive, lowercase only. Non-ASCII
// identifiers are NFC-normalized so visually identical names intern to
// one string.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	ascii := true

	r, sz := lx.peekRune()
	if sz == 0 {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.EOF, Span: sp, Text: ""}
	}
	if r < utf8RuneSelf {
		lx.cursor.Bump()
	} else {
		ascii = false
		lx.bumpRune()
	}

	for {
		r2, sz2 := lx.peekRune()
		if sz2 == 0 {
			break
		}
		if r2 < utf8RuneSelf {
			if !isIdentContinueByte(byte(r2)) {
				break
			}
			lx.cursor.Bump()
		} else {
			if !isIdentContinueRune(r2) {
				break
			}
			ascii = false
			lx.bumpRune()
		}
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])
	if !ascii {
		text = norm.NFC.String(text)
	}

	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}

// scanAtKeyword scans '@' plus identifier characters and consults the
// closed at-keyword table. An unknown @word degrades to Ident (text
// keeps the '@') so future vocabulary does not break this parser; a
// bare '@' with no word also degrades to Ident.
func (lx *Lexer) scanAtKeyword() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '@'

	wordStart := lx.cursor.Off
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	word := string(lx.file.Content[wordStart:sp.End])
	full := string(lx.file.Content[sp.Start:sp.End])

	if k, ok := token.LookupAtKeyword(word); ok {
		return token.Token{Kind: k, Span: sp, Text: full}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: full}
}
