package parser

import (
	"strings"

	"github.com/lememta/sage-lang/internal/ast"
	"github.com/lememta/sage-lang/internal/token"
)

// parseBody consumes statements until a top-level keyword, a section
// separator, or end of input.
func (p *Parser) parseBody() []ast.StmtID {
	var body []ast.StmtID
	for {
		switch {
		case p.at(token.EOF), p.at(token.SectionSep), startsTopLevel(p.peek().Kind),
			p.at(token.AtReq), p.at(token.AtEns), p.at(token.AtInv), p.at(token.AtProp),
			p.at(token.AtDecision), p.at(token.AtPreserves), p.at(token.AtState),
			p.at(token.AtMaps), p.at(token.AtCompareWith):
			return body
		case p.at(token.Newline), p.at(token.Comment):
			p.advance()
		default:
			if id, ok := p.parseStmt(); ok {
				body = append(body, id)
			}
		}
	}
}

// parseStmt parses one body statement. A leading '!!' in front of
// 'let' or 'if' flags that statement instead of becoming its own node.
func (p *Parser) parseStmt() (ast.StmtID, bool) {
	switch p.peek().Kind {
	case token.BangBang:
		switch p.peekAt(1).Kind {
		case token.KwLet:
			p.advance() // '!!'
			return p.parseLetStmt(true)
		case token.KwIf:
			p.advance() // '!!'
			return p.parseIfStmt(true)
		default:
			return p.parseDecisionStmt()
		}

	case token.KwLet:
		return p.parseLetStmt(false)

	case token.KwIf:
		return p.parseIfStmt(false)

	case token.KwRet:
		return p.parseRetStmt()

	case token.StringLit:
		return p.parseTextStmt()

	default:
		return p.parseRawStmt()
	}
}

// parseLetStmt parses 'let name = value'. The value is free text to
// the line boundary; when the first line leaves a '{' unbalanced, the
// capture switches to brace counting and keeps the embedded newlines
// until braces balance. This is the one place free-text capture tracks
// nesting depth.
func (p *Parser) parseLetStmt(decision bool) (ast.StmtID, bool) {
	kw := p.advance() // 'let'

	nameTok, ok := p.eat(token.Ident)
	if !ok {
		// Not a binding after all; re-consume from 'let' as raw text.
		p.pos--
		return p.parseRawStmt()
	}
	if _, ok := p.eat(token.Assign); !ok {
		p.pos -= 2
		return p.parseRawStmt()
	}

	line := p.collectLine()
	value := reconstruct(line)
	depth := braceDelta(line)
	for depth > 0 && !p.at(token.EOF) {
		more := p.collectLine()
		value += "\n" + reconstruct(more)
		depth += braceDelta(more)
	}

	stmt := ast.LetStmt{
		Name:     p.arenas.Intern(nameTok.Text),
		NameSpan: nameTok.Span,
		Value:    value,
		Decision: decision,
	}
	span := kw.Span.Cover(p.lastSpan)
	payload := ast.PayloadID(p.arenas.Stmts.Lets.Allocate(stmt))
	return p.arenas.Stmts.New(ast.StmtLet, span, payload), true
}

// parseIfStmt parses 'if cond => then [else alt]'; all three parts are
// free text. A missing '=>' downgrades the line to raw.
func (p *Parser) parseIfStmt(decision bool) (ast.StmtID, bool) {
	mark := p.pos
	kw := p.advance() // 'if'
	line := p.collectLine()

	arrowIdx := -1
	for i, t := range line {
		if t.Kind == token.FatArrow {
			arrowIdx = i
			break
		}
	}
	if arrowIdx < 0 {
		p.pos = mark
		return p.parseRawStmt()
	}

	stmt := ast.IfStmt{
		Cond:     reconstruct(line[:arrowIdx]),
		Decision: decision,
	}
	rest := line[arrowIdx+1:]
	elseIdx := -1
	for i, t := range rest {
		if t.Kind == token.KwElse {
			elseIdx = i
			break
		}
	}
	if elseIdx >= 0 {
		stmt.Then = reconstruct(rest[:elseIdx])
		stmt.Else = reconstruct(rest[elseIdx+1:])
		stmt.HasElse = true
	} else {
		stmt.Then = reconstruct(rest)
	}

	span := kw.Span.Cover(p.lastSpan)
	payload := ast.PayloadID(p.arenas.Stmts.Ifs.Allocate(stmt))
	return p.arenas.Stmts.New(ast.StmtIf, span, payload), true
}

// parseRetStmt parses 'ret value' with a free-text value.
func (p *Parser) parseRetStmt() (ast.StmtID, bool) {
	kw := p.advance() // 'ret'
	line := p.collectLine()

	stmt := ast.RetStmt{Value: reconstruct(line)}
	span := kw.Span.Cover(p.spanOfRun(line))
	payload := ast.PayloadID(p.arenas.Stmts.Rets.Allocate(stmt))
	return p.arenas.Stmts.New(ast.StmtRet, span, payload), true
}

// parseTextStmt parses prose inside a body; a '!!' suffix turns the
// prose into a decision, same normalization as at the top level.
func (p *Parser) parseTextStmt() (ast.StmtID, bool) {
	strTok := p.advance()
	span := strTok.Span

	if bang, ok := p.eat(token.BangBang); ok {
		span = span.Cover(bang.Span)
		p.eat(token.Newline)
		stmt := ast.DecisionStmt{Text: strTok.Text}
		payload := ast.PayloadID(p.arenas.Stmts.Decisions.Allocate(stmt))
		return p.arenas.Stmts.New(ast.StmtDecision, span, payload), true
	}

	p.eat(token.Newline)
	stmt := ast.TextStmt{Text: strTok.Text}
	payload := ast.PayloadID(p.arenas.Stmts.Texts.Allocate(stmt))
	return p.arenas.Stmts.New(ast.StmtText, span, payload), true
}

// parseDecisionStmt parses a standalone '!!' marker with whatever text
// follows on the line.
func (p *Parser) parseDecisionStmt() (ast.StmtID, bool) {
	bang := p.advance() // '!!'
	line := p.collectLine()

	stmt := ast.DecisionStmt{Text: strings.TrimSpace(textOfRun(line))}
	span := bang.Span.Cover(p.spanOfRun(line))
	payload := ast.PayloadID(p.arenas.Stmts.Decisions.Allocate(stmt))
	return p.arenas.Stmts.New(ast.StmtDecision, span, payload), true
}

// parseRawStmt preserves an unrecognized body line verbatim.
func (p *Parser) parseRawStmt() (ast.StmtID, bool) {
	first := p.peek()
	line := p.collectLine()
	if len(line) == 0 {
		// Degenerate case: nothing before the newline.
		return ast.NoStmtID, false
	}

	stmt := ast.RawStmt{Text: reconstruct(line)}
	span := first.Span.Cover(p.spanOfRun(line))
	payload := ast.PayloadID(p.arenas.Stmts.Raws.Allocate(stmt))
	return p.arenas.Stmts.New(ast.StmtRaw, span, payload), true
}
