package parser

import (
	"github.com/lememta/sage-lang/internal/ast"
	"github.com/lememta/sage-lang/internal/token"
)

// parseFnDecl parses '@fn' and '@op' declarations, which share one
// shape: name, optional parenthesized parameter list, optional
// '-> type', optional description string, interleaved @req/@ens lines
// in source order, then a statement body running until a top-level
// keyword, section separator, or end of input.
func (p *Parser) parseFnDecl(kind ast.NodeKind) (ast.NodeID, bool) {
	kw := p.advance() // '@fn' or '@op'

	nameTok, ok := p.eat(token.Ident)
	if !ok {
		return ast.NoNodeID, false
	}

	fn := ast.FnNode{
		Name:     p.arenas.Intern(nameTok.Text),
		NameSpan: nameTok.Span,
	}

	if p.at(token.LParen) {
		params, ok := p.parseParamList()
		if !ok {
			return ast.NoNodeID, false
		}
		fn.Params = params
	}

	if _, ok := p.eat(token.Arrow); ok {
		if p.atLineEnd() {
			return ast.NoNodeID, false
		}
		resultID, ok := p.parseTypeExpr()
		if !ok {
			return ast.NoNodeID, false
		}
		fn.Result = resultID
	}

	if p.at(token.StringLit) {
		desc := p.advance()
		fn.Description = desc.Text
		fn.HasDesc = true
	}
	p.eat(token.Newline)

	// Interleaved contracts, mixed order preserved.
	fn.Contracts = p.parseContractLines()

	// Body.
	fn.Body = p.parseBody()

	span := kw.Span.Cover(p.lastSpan)
	payload := ast.PayloadID(p.arenas.Nodes.Fns.Allocate(fn))
	return p.arenas.Nodes.New(kind, span, payload), true
}

// parseParamList parses '(name: type, name, ...)'. Untyped parameters
// are permitted.
func (p *Parser) parseParamList() ([]ast.ParamID, bool) {
	p.advance() // '('

	var params []ast.ParamID
	for {
		p.skipInsideType()
		if p.at(token.RParen) || p.at(token.EOF) {
			break
		}

		nameTok, ok := p.eat(token.Ident)
		if !ok {
			return nil, false
		}
		param := ast.Param{
			Name:     p.arenas.Intern(nameTok.Text),
			NameSpan: nameTok.Span,
			Span:     nameTok.Span,
		}
		if _, ok := p.eat(token.Colon); ok {
			typeID, ok := p.parseTypeExpr()
			if !ok {
				return nil, false
			}
			param.Type = typeID
			param.Span = param.Span.Cover(p.lastSpan)
		}
		params = append(params, p.arenas.Types.NewParam(param))

		p.skipInsideType()
		if _, ok := p.eat(token.Comma); !ok {
			break
		}
	}

	if _, ok := p.eat(token.RParen); !ok {
		return nil, false
	}
	return params, true
}

// parseContractLines consumes a run of @req/@ens lines. The condition
// is the reconstructed text of everything between the keyword and the
// line boundary.
func (p *Parser) parseContractLines() []ast.ContractID {
	var out []ast.ContractID
	for {
		p.skipNewlines()
		var kind ast.ContractKind
		switch p.peek().Kind {
		case token.AtReq:
			kind = ast.ContractReq
		case token.AtEns:
			kind = ast.ContractEns
		default:
			return out
		}
		kw := p.advance()
		line := p.collectLine()
		out = append(out, p.arenas.Contracts.New(ast.Contract{
			Kind: kind,
			Text: reconstruct(line),
			Span: kw.Span.Cover(p.spanOfRun(line)),
		}))
	}
}
