// Package lexer turns sage source bytes into tokens. It is a total,
// regular-language scanner: unrecognized bytes are skipped, strings
// left open run to end of input, and the stream always terminates in
// an EOF token.
package lexer

import (
	"github.com/lememta/sage-lang/internal/diag"
	"github.com/lememta/sage-lang/internal/source"
	"github.com/lememta/sage-lang/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // one-token lookahead buffer
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		look:   nil,
	}
}

// Tokenize scans the whole file. The returned slice always ends with
// an EOF token, whatever the input.
func Tokenize(file *source.File, opts Options) []token.Token {
	lx := New(file, opts)
	tokens := make([]token.Token, 0, len(file.Content)/4+1)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens
		}
	}
}

// Next returns the next token. Newlines and comments are tokens here,
// not trivia: the notation's grammar is line-oriented and the parser
// needs to see both. After EOF it keeps returning EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	for {
		lx.skipSpaces()

		if lx.cursor.EOF() {
			return token.Token{
				Kind: token.EOF,
				Span: lx.emptySpan(),
				Text: "",
			}
		}

		ch := lx.cursor.Peek()

		switch {
		case ch == '\n':
			start := lx.cursor.Mark()
			lx.cursor.Bump()
			return token.Token{Kind: token.Newline, Span: lx.cursor.SpanFrom(start), Text: "\n"}

		case ch == '#':
			return lx.scanComment()

		case ch == '"':
			return lx.scanString()

		case ch == '\'':
			start := lx.cursor.Mark()
			lx.cursor.Bump()
			return token.Token{Kind: token.Prime, Span: lx.cursor.SpanFrom(start), Text: "'"}

		case ch == '@':
			return lx.scanAtKeyword()

		case isDec(ch):
			return lx.scanNumber()

		case isIdentStartByte(ch):
			return lx.scanIdentOrKeyword()

		case ch >= utf8RuneSelf:
			// Either a reserved math symbol, a Unicode identifier,
			// or something to skip.
			if tok, ok := lx.scanMathSymbol(); ok {
				return tok
			}
			if r, _ := lx.peekRune(); isIdentStartRune(r) {
				return lx.scanIdentOrKeyword()
			}
			lx.skipUnknown()

		default:
			if tok, ok := lx.scanOperatorOrPunct(); ok {
				return tok
			}
			lx.skipUnknown()
		}
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// EmptySpan returns a zero-length span at the current position.
func (lx *Lexer) EmptySpan() source.Span {
	return lx.emptySpan()
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

// skipSpaces consumes ASCII space and tab. Newlines are significant.
func (lx *Lexer) skipSpaces() {
	for {
		b := lx.cursor.Peek()
		if b == ' ' || b == '\t' || b == '\r' {
			lx.cursor.Bump()
			continue
		}
		return
	}
}

// skipUnknown drops one rune and notes it. The tokenizer has no error
// channel; skipping keeps it total.
func (lx *Lexer) skipUnknown() {
	start := lx.cursor.Mark()
	lx.bumpRune()
	sp := lx.cursor.SpanFrom(start)
	lx.report(diag.LexSkippedChar, sp, "skipped unrecognized character")
}

// scanComment consumes '#' to end of line; the newline itself stays
// for the next token.
func (lx *Lexer) scanComment() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '#'
	textStart := lx.cursor.Off
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	text := trimASCIISpace(string(lx.file.Content[textStart:sp.End]))
	return token.Token{Kind: token.Comment, Span: sp, Text: text}
}
