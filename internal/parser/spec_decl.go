package parser

import (
	"github.com/lememta/sage-lang/internal/ast"
	"github.com/lememta/sage-lang/internal/source"
	"github.com/lememta/sage-lang/internal/token"
)

// parseSpecDecl parses '@spec name' with an optional description
// string and a body of @inv/@prop/@req/@ens clauses in source order.
func (p *Parser) parseSpecDecl() (ast.NodeID, bool) {
	kw := p.advance() // '@spec'

	nameTok, ok := p.eat(token.Ident)
	if !ok {
		return ast.NoNodeID, false
	}

	spec := ast.SpecNode{
		Name:     p.arenas.Intern(nameTok.Text),
		NameSpan: nameTok.Span,
	}
	if p.at(token.StringLit) {
		desc := p.advance()
		spec.Description = desc.Text
		spec.HasDesc = true
	}
	p.eat(token.Newline)

	for {
		p.skipNewlines()
		var kind ast.ContractKind
		switch p.peek().Kind {
		case token.AtReq:
			kind = ast.ContractReq
		case token.AtEns:
			kind = ast.ContractEns
		case token.AtInv:
			kind = ast.ContractInv
		case token.AtProp:
			kind = ast.ContractProp
		case token.StringLit:
			if !spec.HasDesc && p.peekAt(1).Kind != token.BangBang {
				desc := p.advance()
				spec.Description = desc.Text
				spec.HasDesc = true
				continue
			}
			goto done
		default:
			goto done
		}

		{
			kwTok := p.advance()
			line := p.collectLine()
			text := reconstruct(line)
			span := kwTok.Span.Cover(p.spanOfRun(line))
			if kind == ast.ContractInv {
				// Invariants are the one construct allowed to wrap.
				cont, contSpan := p.collectContinuationLines()
				if cont != "" {
					text += " " + cont
					span = span.Cover(contSpan)
				}
			}
			spec.Contracts = append(spec.Contracts, p.arenas.Contracts.New(ast.Contract{
				Kind: kind,
				Text: text,
				Span: span,
			}))
		}
	}

done:
	span := kw.Span.Cover(p.lastSpan)
	payload := ast.PayloadID(p.arenas.Nodes.Specs.Allocate(spec))
	return p.arenas.Nodes.New(ast.NodeSpec, span, payload), true
}

// collectContinuationLines keeps appending reconstructed follow-up
// lines as long as the next line does not start a keyword, a string, a
// comment, a section separator, or a blank line. Space-joined, like
// the first line.
func (p *Parser) collectContinuationLines() (string, source.Span) {
	text := ""
	span := p.lastSpan.ZeroideToEnd()
	for {
		switch k := p.peek().Kind; {
		case k == token.Newline, k == token.EOF, k == token.Comment,
			k == token.SectionSep, k == token.StringLit,
			k == token.BangBang, startsTopLevel(k), isClauseKeyword(k), isPlainKeyword(k):
			return text, span
		}
		line := p.collectLine()
		if len(line) == 0 {
			return text, span
		}
		if text != "" {
			text += " "
		}
		text += reconstruct(line)
		span = span.Cover(p.spanOfRun(line))
	}
}

func isClauseKeyword(k token.Kind) bool {
	switch k {
	case token.AtReq, token.AtEns, token.AtInv, token.AtProp,
		token.AtDecision, token.AtPreserves, token.AtState,
		token.AtMaps, token.AtCompareWith:
		return true
	default:
		return false
	}
}

func isPlainKeyword(k token.Kind) bool {
	switch k {
	case token.KwLet, token.KwIf, token.KwElse, token.KwRet, token.KwAs:
		return true
	default:
		return false
	}
}
