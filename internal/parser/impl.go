package parser

import (
	"strings"

	"github.com/lememta/sage-lang/internal/ast"
	"github.com/lememta/sage-lang/internal/token"
)

// parseImpl parses '@impl [name]' with a fully raw body: source bytes,
// internal newlines included, captured until a top-level keyword, a
// section separator, or a comment marker. No structure is imposed on
// the body.
func (p *Parser) parseImpl() (ast.NodeID, bool) {
	kw := p.advance() // '@impl'

	impl := ast.ImplNode{}
	if nameTok, ok := p.eat(token.Ident); ok {
		impl.Name = p.arenas.Intern(nameTok.Text)
		impl.NameSpan = nameTok.Span
	}
	p.eat(token.Newline)

	bodyStart := -1
	for {
		k := p.peek().Kind
		if k == token.EOF || k == token.SectionSep || k == token.Comment || startsTopLevel(k) {
			break
		}
		if bodyStart < 0 {
			bodyStart = p.pos
		}
		p.advance()
	}

	if bodyStart >= 0 {
		// Slice the original bytes so the body survives verbatim.
		first := p.toks[bodyStart].Span
		impl.Body = strings.Trim(string(p.file.Content[first.Start:p.lastSpan.End]), " \t\n")
	}

	span := kw.Span.Cover(p.lastSpan)
	payload := ast.PayloadID(p.arenas.Nodes.Impls.Allocate(impl))
	return p.arenas.Nodes.New(ast.NodeImpl, span, payload), true
}
