package lexer

import (
	"github.com/lememta/sage-lang/internal/token"
)

// Greedy matching: section separators and three-dot ellipsis first,
// then two-character operators, then single characters. Unrecognized
// bytes return (zero, false) so Next can skip them.
func (lx *Lexer) scanOperatorOrPunct() (token.Token, bool) {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) (token.Token, bool) {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{
			Kind: k,
			Span: sp,
			Text: string(lx.file.Content[sp.Start:sp.End]),
		}, true
	}

	// '---' and longer runs of dashes collapse into one separator.
	if lx.try3('-', '-', '-') {
		for lx.cursor.Eat('-') {
		}
		return emit(token.SectionSep)
	}

	switch {
	case lx.try3('.', '.', '.'):
		return emit(token.Ellipsis)
	case lx.try2('!', '!'):
		return emit(token.BangBang)
	case lx.try2('!', '='):
		return emit(token.BangEq)
	case lx.try2('-', '>'):
		return emit(token.Arrow)
	case lx.try2('=', '>'):
		return emit(token.FatArrow)
	case lx.try2('=', '='):
		return emit(token.EqEq)
	case lx.try2('>', '='):
		return emit(token.GtEq)
	case lx.try2('<', '='):
		return emit(token.LtEq)
	case lx.try2('&', '&'):
		return emit(token.AndAnd)
	}

	ch := lx.cursor.Peek()
	var kind token.Kind
	switch ch {
	case '=':
		kind = token.Assign
	case '<':
		kind = token.Lt
	case '>':
		kind = token.Gt
	case '!':
		kind = token.Bang
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	case '{':
		kind = token.LBrace
	case '}':
		kind = token.RBrace
	case '[':
		kind = token.LBracket
	case ']':
		kind = token.RBracket
	case ',':
		kind = token.Comma
	case ':':
		kind = token.Colon
	case ';':
		kind = token.Semicolon
	case '.':
		kind = token.Dot
	case '+':
		kind = token.Plus
	case '-':
		kind = token.Minus
	case '*':
		kind = token.Star
	case '/':
		kind = token.Slash
	case '%':
		kind = token.Percent
	case '|':
		kind = token.Pipe
	default:
		return token.Token{}, false
	}
	lx.cursor.Bump()
	return emit(kind)
}

// mathSymbols maps the seven reserved Unicode symbols to their kinds.
var mathSymbols = map[rune]token.Kind{
	'∀': token.ForAll,
	'∃': token.Exists,
	'∈': token.ElemOf,
	'⟹': token.Implies,
	'∑': token.Sum,
	'✓': token.CheckMark,
	'←': token.ReasonArrow,
}

func (lx *Lexer) scanMathSymbol() (token.Token, bool) {
	r, _ := lx.peekRune()
	kind, ok := mathSymbols[r]
	if !ok {
		return token.Token{}, false
	}
	start := lx.cursor.Mark()
	lx.bumpRune()
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: string(r)}, true
}
