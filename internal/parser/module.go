package parser

import (
	"github.com/lememta/sage-lang/internal/ast"
	"github.com/lememta/sage-lang/internal/token"
)

// parseModule parses '@mod name' with an optional description string,
// on the same line or alone on the following one.
func (p *Parser) parseModule() (ast.NodeID, bool) {
	kw := p.advance() // '@mod'

	nameTok, ok := p.eat(token.Ident)
	if !ok {
		return ast.NoNodeID, false
	}

	mod := ast.ModuleNode{
		Name:     p.arenas.Intern(nameTok.Text),
		NameSpan: nameTok.Span,
	}
	span := kw.Span.Cover(nameTok.Span)

	if p.at(token.StringLit) {
		desc := p.advance()
		mod.Description = desc.Text
		mod.HasDesc = true
		span = span.Cover(desc.Span)
	} else {
		// The description may sit alone on the next line.
		mark := p.pos
		p.skipNewlines()
		if p.at(token.StringLit) && p.peekAt(1).Kind != token.BangBang {
			desc := p.advance()
			mod.Description = desc.Text
			mod.HasDesc = true
			span = span.Cover(desc.Span)
		} else {
			p.pos = mark
		}
	}

	payload := ast.PayloadID(p.arenas.Nodes.Modules.Allocate(mod))
	return p.arenas.Nodes.New(ast.NodeModule, span, payload), true
}
