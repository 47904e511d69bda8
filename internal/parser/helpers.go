package parser

import (
	"github.com/lememta/sage-lang/internal/diag"
	"github.com/lememta/sage-lang/internal/source"
	"github.com/lememta/sage-lang/internal/token"
)

// peek returns the current token; past the end it synthesizes EOF so
// every loop terminates on the same condition.
func (p *Parser) peek() token.Token {
	if p.pos >= len(p.toks) {
		return token.Token{Kind: token.EOF, Span: p.lastSpan.ZeroideToEnd()}
	}
	return p.toks[p.pos]
}

// peekAt looks ahead n tokens without consuming.
func (p *Parser) peekAt(n int) token.Token {
	if p.pos+n >= len(p.toks) {
		return token.Token{Kind: token.EOF, Span: p.lastSpan.ZeroideToEnd()}
	}
	return p.toks[p.pos+n]
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

// advance consumes the current token and updates lastSpan.
func (p *Parser) advance() token.Token {
	tok := p.peek()
	if p.pos < len(p.toks) {
		p.pos++
	}
	if tok.Kind != token.EOF {
		p.lastSpan = tok.Span
	}
	return tok
}

// eat consumes the current token if it matches.
func (p *Parser) eat(k token.Kind) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	return token.Token{}, false
}

// skipNewlines consumes newline and comment tokens between top-level
// constructs.
func (p *Parser) skipNewlines() {
	for p.at(token.Newline) || p.at(token.Comment) {
		p.advance()
	}
}

// atLineEnd reports whether the cursor sits on a line boundary.
func (p *Parser) atLineEnd() bool {
	return p.at(token.Newline) || p.at(token.EOF)
}

// collectLine consumes tokens up to the next significant newline and
// the newline itself, leaving the cursor at the start of the next
// line. Comment tokens are dropped. The returned slice may be empty.
func (p *Parser) collectLine() []token.Token {
	var out []token.Token
	for !p.atLineEnd() {
		tok := p.advance()
		if tok.Kind == token.Comment {
			continue
		}
		out = append(out, tok)
	}
	p.eat(token.Newline)
	return out
}

// startsTopLevel reports whether kind begins a top-level construct;
// bodies and refinement clause loops stop on these.
func startsTopLevel(k token.Kind) bool {
	switch k {
	case token.AtMod, token.AtType, token.AtFn, token.AtSpec, token.AtOp,
		token.AtRefine, token.AtImpl, token.AtInferredReq,
		token.AtInferredEns, token.AtInferredEff:
		return true
	default:
		return false
	}
}

// spanOfRun covers a token run, falling back to the last consumed span
// for empty runs.
func (p *Parser) spanOfRun(toks []token.Token) source.Span {
	if len(toks) == 0 {
		return p.lastSpan.ZeroideToEnd()
	}
	return toks[0].Span.Cover(toks[len(toks)-1].Span)
}

func (p *Parser) note(code diag.Code, sp source.Span, msg string) {
	if p.opts.Reporter != nil {
		p.opts.Reporter.Report(code, diag.SevInfo, sp, msg, nil)
	}
}
