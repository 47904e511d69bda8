// Package parser turns a token sequence into an ast.Document. Like the
// tokenizer it is total for malformed input: a token that begins no
// recognized construct is consumed as a raw fallback line, and a
// construct parse that aborts mid-way rewinds and falls back the same
// way. There is no fatal error path.
package parser

import (
	"github.com/lememta/sage-lang/internal/ast"
	"github.com/lememta/sage-lang/internal/diag"
	"github.com/lememta/sage-lang/internal/lexer"
	"github.com/lememta/sage-lang/internal/source"
	"github.com/lememta/sage-lang/internal/token"
)

type Options struct {
	// Reporter receives informational notes (raw fallbacks). May be nil.
	Reporter diag.Reporter
}

type Result struct {
	Doc ast.DocID
}

// Parser is the per-document parse state: a single forward cursor over
// the token slice with one-token lookahead and no backtracking beyond
// a failed construct's rewind.
type Parser struct {
	toks     []token.Token
	pos      int
	arenas   *ast.Builder
	doc      ast.DocID
	file     *source.File
	opts     Options
	lastSpan source.Span
}

// ParseTokens parses a pre-built token stream for file. The stream is
// expected to end with an EOF token (lexer.Tokenize guarantees that);
// a missing EOF terminates at the slice end anyway.
func ParseTokens(file *source.File, toks []token.Token, arenas *ast.Builder, opts Options) Result {
	startSpan := source.Span{File: file.ID}
	if len(toks) > 0 {
		startSpan = toks[0].Span
	}
	p := Parser{
		toks:     toks,
		pos:      0,
		arenas:   arenas,
		doc:      arenas.NewDoc(startSpan),
		file:     file,
		opts:     opts,
		lastSpan: startSpan,
	}

	p.parseNodes()
	return Result{Doc: p.doc}
}

// ParseFile tokenizes and parses file in one call.
func ParseFile(file *source.File, arenas *ast.Builder, opts Options) Result {
	toks := lexer.Tokenize(file, lexer.Options{Reporter: opts.Reporter})
	return ParseTokens(file, toks, arenas, opts)
}

// parseNodes is the top-level loop: dispatch until EOF, pushing nodes
// in reading order.
func (p *Parser) parseNodes() {
	startSpan := p.peek().Span
	for !p.at(token.EOF) {
		nodeID, ok := p.parseNode()
		if ok && nodeID != ast.NoNodeID {
			p.arenas.PushNode(p.doc, nodeID)
		}
	}
	d := p.arenas.Docs.Get(p.doc)
	d.Span = startSpan.Cover(p.lastSpan)
}

// parseNode dispatches on the current token kind. A false return means
// "nothing to push" (noise was skipped); unrecognized or aborted
// constructs never return false, they produce a raw fallback node.
func (p *Parser) parseNode() (ast.NodeID, bool) {
	switch p.peek().Kind {
	case token.Newline:
		p.advance()
		return ast.NoNodeID, false

	case token.Comment:
		// Comments are tokens so tools can see them, but structural
		// noise for the document.
		p.advance()
		return ast.NoNodeID, false

	case token.SectionSep:
		tok := p.advance()
		return p.arenas.Nodes.New(ast.NodeSectionSep, tok.Span, ast.NoPayloadID), true

	case token.AtMod:
		return p.recovering(p.parseModule)

	case token.AtType:
		return p.recovering(p.parseTypeDecl)

	case token.AtFn:
		return p.recovering(func() (ast.NodeID, bool) { return p.parseFnDecl(ast.NodeFn) })

	case token.AtOp:
		return p.recovering(func() (ast.NodeID, bool) { return p.parseFnDecl(ast.NodeOp) })

	case token.AtSpec:
		return p.recovering(p.parseSpecDecl)

	case token.AtRefine:
		return p.recovering(p.parseRefine)

	case token.AtImpl:
		return p.recovering(p.parseImpl)

	case token.AtInferredReq:
		return p.parseInferred(ast.InferredReq)

	case token.AtInferredEns:
		return p.parseInferred(ast.InferredEns)

	case token.AtInferredEff:
		return p.parseInferred(ast.InferredEff)

	case token.AtDecision:
		return p.parseDecisionClause()

	case token.BangBang:
		return p.parseStandaloneDecision()

	case token.StringLit:
		return p.parseNaturalText()

	default:
		return p.parseRawLine()
	}
}

// recovering runs a construct parser; on abort it rewinds to the
// construct's first token and consumes it as a raw fallback line.
// Failures stay local, never global.
func (p *Parser) recovering(parse func() (ast.NodeID, bool)) (ast.NodeID, bool) {
	mark := p.pos
	if id, ok := parse(); ok {
		return id, true
	}
	p.pos = mark
	return p.parseRawLine()
}
