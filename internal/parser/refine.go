package parser

import (
	"github.com/lememta/sage-lang/internal/ast"
	"github.com/lememta/sage-lang/internal/token"
)

// parseRefine parses '@refine parent [as child [tag]]' followed by a
// body of clauses in any order and any repetition: @decision, @state,
// @preserves, @maps, at most one @compare_with, plus loose strings.
// The loop ends on the first token matching none of these.
func (p *Parser) parseRefine() (ast.NodeID, bool) {
	kw := p.advance() // '@refine'

	parentTok, ok := p.eat(token.Ident)
	if !ok {
		return ast.NoNodeID, false
	}

	ref := ast.RefineNode{
		Parent:     p.arenas.Intern(parentTok.Text),
		ParentSpan: parentTok.Span,
	}

	if _, ok := p.eat(token.KwAs); ok {
		childTok, ok := p.eat(token.Ident)
		if !ok {
			return ast.NoNodeID, false
		}
		ref.Child = p.arenas.Intern(childTok.Text)
		if tagTok, ok := p.eat(token.Ident); ok {
			ref.AltTag = p.arenas.Intern(tagTok.Text)
		}
	}
	p.eat(token.Newline)

	p.parseRefineBody(&ref)

	span := kw.Span.Cover(p.lastSpan)
	payload := ast.PayloadID(p.arenas.Nodes.Refines.Allocate(ref))
	return p.arenas.Nodes.New(ast.NodeRefine, span, payload), true
}

func (p *Parser) parseRefineBody(ref *ast.RefineNode) {
	for {
		switch p.peek().Kind {
		case token.Newline, token.Comment:
			p.advance()

		case token.AtDecision:
			kw := p.advance()
			line := p.collectLine()
			line = dropTrailingBang(line)
			ref.Decisions = append(ref.Decisions, ast.DecisionClause{
				Text: textOfRun(line),
				Span: kw.Span.Cover(p.spanOfRun(line)),
			})

		case token.AtState:
			p.advance()
			fieldID, ok := p.parseField()
			if !ok {
				// Malformed state line: keep the refinement, drop the line.
				p.collectLine()
				continue
			}
			ref.State = append(ref.State, fieldID)
			p.eat(token.Newline)

		case token.AtPreserves:
			p.parsePreserves(ref)

		case token.AtMaps:
			kw := p.advance()
			line := p.collectLine()
			ref.Maps = append(ref.Maps, ast.MapsClause{
				Text: reconstruct(line),
				Span: kw.Span.Cover(p.spanOfRun(line)),
			})

		case token.AtCompareWith:
			if !p.parseCompareWith(ref) {
				return
			}

		case token.StringLit:
			strTok := p.advance()
			if _, ok := p.eat(token.BangBang); ok {
				// Prose immediately marked '!!' is an implicit decision.
				ref.Decisions = append(ref.Decisions, ast.DecisionClause{
					Text: strTok.Text,
					Span: strTok.Span.Cover(p.lastSpan),
				})
			} else if !ref.HasDesc {
				ref.Description = strTok.Text
				ref.HasDesc = true
			} else {
				ref.Decisions = append(ref.Decisions, ast.DecisionClause{
					Text: strTok.Text,
					Span: strTok.Span,
				})
			}

		default:
			return
		}
	}
}

// parsePreserves handles both claim forms: one bare string on the
// keyword line (informally stated) and a run of checkmark-prefixed
// lines (verified). Status is per claim, not per block.
func (p *Parser) parsePreserves(ref *ast.RefineNode) {
	p.advance() // '@preserves'

	if p.at(token.StringLit) {
		strTok := p.advance()
		ref.Preserves = append(ref.Preserves, ast.PreservesClaim{
			Text:    strTok.Text,
			Span:    strTok.Span,
			Checked: false,
		})
	}
	p.eat(token.Newline)

	for {
		mark := p.pos
		p.skipNewlines()
		if !p.at(token.CheckMark) {
			p.pos = mark
			return
		}
		check := p.advance()
		line := p.collectLine()
		ref.Preserves = append(ref.Preserves, ast.PreservesClaim{
			Text:    textOfRun(line),
			Span:    check.Span.Cover(p.spanOfRun(line)),
			Checked: true,
		})
	}
}

// parseCompareWith parses the at-most-one comparison block: a target
// name, then '+'-prefixed advantages and '-'-prefixed disadvantages,
// one per line. A second block ends the refinement body so the
// dispatcher surfaces it as fallback instead of silently merging.
func (p *Parser) parseCompareWith(ref *ast.RefineNode) bool {
	if ref.HasCompare {
		return false
	}
	kw := p.advance() // '@compare_with'

	targetTok, ok := p.eat(token.Ident)
	if !ok {
		p.collectLine()
		return true
	}
	cmp := ast.CompareBlock{
		Target:     p.arenas.Intern(targetTok.Text),
		TargetSpan: targetTok.Span,
		Span:       kw.Span.Cover(targetTok.Span),
	}
	p.eat(token.Newline)

	for {
		mark := p.pos
		p.skipNewlines()
		switch p.peek().Kind {
		case token.Plus:
			p.advance()
			line := p.collectLine()
			cmp.Advantages = append(cmp.Advantages, textOfRun(line))
			cmp.Span = cmp.Span.Cover(p.spanOfRun(line))
		case token.Minus:
			p.advance()
			line := p.collectLine()
			cmp.Disadvantages = append(cmp.Disadvantages, textOfRun(line))
			cmp.Span = cmp.Span.Cover(p.spanOfRun(line))
		default:
			p.pos = mark
			ref.Compare = cmp
			ref.HasCompare = true
			return true
		}
	}
}

// dropTrailingBang removes a trailing '!!' token from a line; the
// marker flags the clause, it is not part of the text.
func dropTrailingBang(line []token.Token) []token.Token {
	if n := len(line); n > 0 && line[n-1].Kind == token.BangBang {
		return line[:n-1]
	}
	return line
}
