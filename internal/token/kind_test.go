package token_test

import (
	"testing"

	"github.com/lememta/sage-lang/internal/source"
	"github.com/lememta/sage-lang/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.Token{Kind: k, Span: source.Span{Start: 0, End: 0}}
}

func TestIsLiteral(t *testing.T) {
	lits := []token.Kind{token.NumberLit, token.StringLit, token.Ident}
	for _, k := range lits {
		if !tok(k).IsLiteral() {
			t.Fatalf("%v should be literal", k)
		}
	}
	non := []token.Kind{token.KwLet, token.AtMod, token.Plus, token.LParen, token.EOF}
	for _, k := range non {
		if tok(k).IsLiteral() {
			t.Fatalf("%v must NOT be literal", k)
		}
	}
}

func TestIsAtKeyword(t *testing.T) {
	ats := []token.Kind{
		token.AtMod, token.AtType, token.AtFn, token.AtSpec, token.AtOp,
		token.AtRefine, token.AtImpl, token.AtReq, token.AtEns, token.AtInv,
		token.AtProp, token.AtDecision, token.AtPreserves, token.AtState,
		token.AtMaps, token.AtCompareWith,
		token.AtInferredReq, token.AtInferredEns, token.AtInferredEff,
	}
	for _, k := range ats {
		if !tok(k).IsAtKeyword() {
			t.Fatalf("%v should be an @keyword", k)
		}
	}
	non := []token.Kind{token.Ident, token.KwLet, token.StringLit, token.BangBang}
	for _, k := range non {
		if tok(k).IsAtKeyword() {
			t.Fatalf("%v must NOT be an @keyword", k)
		}
	}
}

func TestIsKeyword(t *testing.T) {
	kws := []token.Kind{token.KwLet, token.KwIf, token.KwElse, token.KwRet, token.KwAs}
	for _, k := range kws {
		if !tok(k).IsKeyword() {
			t.Fatalf("%v should be a keyword", k)
		}
	}
	if tok(token.AtFn).IsKeyword() {
		t.Fatalf("AtFn must not be a plain keyword")
	}
	if tok(token.Ident).IsKeyword() {
		t.Fatalf("Ident must not be a keyword")
	}
}

func TestIsMathSymbol(t *testing.T) {
	syms := []token.Kind{
		token.ForAll, token.Exists, token.ElemOf, token.Implies,
		token.Sum, token.CheckMark, token.ReasonArrow,
	}
	for _, k := range syms {
		if !tok(k).IsMathSymbol() {
			t.Fatalf("%v should be a math symbol", k)
		}
	}
	if tok(token.Star).IsMathSymbol() {
		t.Fatalf("Star must not be a math symbol")
	}
}

func TestIsIdent(t *testing.T) {
	if !tok(token.Ident).IsIdent() {
		t.Fatalf("Ident should be ident")
	}
	if tok(token.KwLet).IsIdent() {
		t.Fatalf("KwLet must not be ident")
	}
}

func TestKindString(t *testing.T) {
	cases := map[token.Kind]string{
		token.EOF:           "EOF",
		token.AtCompareWith: "AtCompareWith",
		token.BangBang:      "BangBang",
		token.SectionSep:    "SectionSep",
		token.ReasonArrow:   "ReasonArrow",
		token.Kind(255):     "Unknown",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Fatalf("Kind(%d).String() = %q, want %q", uint8(k), got, want)
		}
	}
}
