package parser

import (
	"strings"

	"github.com/lememta/sage-lang/internal/token"
)

// reconstruct renders a token run back to text: string literals are
// re-quoted, everything else is its literal token text, space-joined.
// Lossy on whitespace but faithful on content; conditions and values
// stay human- and machine-readable without an expression grammar.
func reconstruct(toks []token.Token) string {
	if len(toks) == 0 {
		return ""
	}
	parts := make([]string, 0, len(toks))
	for _, t := range toks {
		parts = append(parts, renderToken(t))
	}
	return strings.Join(parts, " ")
}

func renderToken(t token.Token) string {
	if t.Kind == token.StringLit {
		return `"` + t.Text + `"`
	}
	return t.Text
}

// stripQuotes removes one pair of surrounding double quotes, if
// present. Used for the halves of an inferred annotation.
func stripQuotes(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}
	return s
}

// textOfRun collapses a run to plain text: a run that is exactly one
// string literal yields its content unquoted, anything else is the
// reconstruction.
func textOfRun(toks []token.Token) string {
	if len(toks) == 1 && toks[0].Kind == token.StringLit {
		return toks[0].Text
	}
	return reconstruct(toks)
}

// braceDelta returns the brace balance change across a run, counting
// '{' and '}' tokens only. Braces inside string literals are already
// part of a single StringLit token and never reach this count.
func braceDelta(toks []token.Token) int {
	delta := 0
	for _, t := range toks {
		switch t.Kind {
		case token.LBrace:
			delta++
		case token.RBrace:
			delta--
		}
	}
	return delta
}
