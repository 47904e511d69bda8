package parser

import (
	"strings"

	"github.com/lememta/sage-lang/internal/ast"
	"github.com/lememta/sage-lang/internal/diag"
	"github.com/lememta/sage-lang/internal/token"
)

// parseInferred parses the three inferred-annotation kinds with one
// routine. The line splits on the first '←': condition before, reason
// after, surrounding quotes stripped from both halves. Without an
// arrow the whole line is the condition.
func (p *Parser) parseInferred(kind ast.InferredKind) (ast.NodeID, bool) {
	kw := p.advance()
	line := p.collectLine()

	node := ast.InferredNode{Kind: kind}
	arrowIdx := -1
	for i, t := range line {
		if t.Kind == token.ReasonArrow {
			arrowIdx = i
			break
		}
	}
	if arrowIdx >= 0 {
		node.Condition = stripQuotes(reconstruct(line[:arrowIdx]))
		node.Reason = stripQuotes(reconstruct(line[arrowIdx+1:]))
		node.HasReason = true
	} else {
		node.Condition = stripQuotes(reconstruct(line))
	}

	span := kw.Span.Cover(p.spanOfRun(line))
	payload := ast.PayloadID(p.arenas.Nodes.Inferred.Allocate(node))
	return p.arenas.Nodes.New(ast.NodeInferred, span, payload), true
}

// parseDecisionClause parses a top-level '@decision' line; a trailing
// '!!' is the marker position, not text.
func (p *Parser) parseDecisionClause() (ast.NodeID, bool) {
	kw := p.advance() // '@decision'
	line := dropTrailingBang(p.collectLine())

	node := ast.DecisionNode{Text: textOfRun(line)}
	span := kw.Span.Cover(p.spanOfRun(line))
	payload := ast.PayloadID(p.arenas.Nodes.Decisions.Allocate(node))
	return p.arenas.Nodes.New(ast.NodeDecision, span, payload), true
}

// parseStandaloneDecision parses a leading '!!' at the top level,
// capturing the rest of the line as the decision text.
func (p *Parser) parseStandaloneDecision() (ast.NodeID, bool) {
	bang := p.advance() // '!!'
	line := p.collectLine()

	node := ast.DecisionNode{Text: strings.TrimSpace(textOfRun(line))}
	span := bang.Span.Cover(p.spanOfRun(line))
	payload := ast.PayloadID(p.arenas.Nodes.Decisions.Allocate(node))
	return p.arenas.Nodes.New(ast.NodeDecision, span, payload), true
}

// parseNaturalText parses top-level prose. A '!!' suffix on the same
// line normalizes the prose into a decision node; the suffix marker,
// the standalone marker, and '@decision' all produce the same shape.
func (p *Parser) parseNaturalText() (ast.NodeID, bool) {
	strTok := p.advance()

	if p.at(token.BangBang) {
		bang := p.advance()
		node := ast.DecisionNode{Text: strTok.Text}
		span := strTok.Span.Cover(bang.Span)
		payload := ast.PayloadID(p.arenas.Nodes.Decisions.Allocate(node))
		return p.arenas.Nodes.New(ast.NodeDecision, span, payload), true
	}

	node := ast.TextNode{Text: strTok.Text}
	payload := ast.PayloadID(p.arenas.Nodes.Texts.Allocate(node))
	return p.arenas.Nodes.New(ast.NodeText, strTok.Span, payload), true
}

// parseRawLine is the fallback: consume tokens up to the next
// significant newline, space-joined, and keep the line as a raw node.
// This is what makes the parser total.
func (p *Parser) parseRawLine() (ast.NodeID, bool) {
	first := p.peek()
	line := p.collectLine()
	if len(line) == 0 {
		return ast.NoNodeID, false
	}

	span := first.Span.Cover(p.spanOfRun(line))
	p.note(diag.SynRawFallback, span, "line captured as raw fallback")

	node := ast.RawNode{Text: reconstruct(line)}
	payload := ast.PayloadID(p.arenas.Nodes.Raws.Allocate(node))
	return p.arenas.Nodes.New(ast.NodeRaw, span, payload), true
}
