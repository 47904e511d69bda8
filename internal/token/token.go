package token

import (
	"github.com/lememta/sage-lang/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsLiteral reports whether the token is a number, string, or identifier.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case NumberLit, StringLit, Ident:
		return true
	default:
		return false
	}
}

// IsAtKeyword reports whether the token is an '@'-prefixed keyword.
func (t Token) IsAtKeyword() bool {
	return t.Kind >= AtMod && t.Kind <= AtInferredEff
}

// IsKeyword reports whether the token is a plain keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwLet, KwIf, KwElse, KwRet, KwAs:
		return true
	default:
		return false
	}
}

// IsMathSymbol reports whether the token is one of the seven reserved
// Unicode symbols.
func (t Token) IsMathSymbol() bool {
	switch t.Kind {
	case ForAll, Exists, ElemOf, Implies, Sum, CheckMark, ReasonArrow:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
