package parser

import (
	"github.com/lememta/sage-lang/internal/ast"
	"github.com/lememta/sage-lang/internal/token"
)

// parseTypeDecl parses '@type Name = <type expression>'. A missing
// name or '=' aborts the construct; the dispatcher then re-consumes
// the tokens as a raw fallback line.
func (p *Parser) parseTypeDecl() (ast.NodeID, bool) {
	kw := p.advance() // '@type'

	nameTok, ok := p.eat(token.Ident)
	if !ok {
		return ast.NoNodeID, false
	}
	if _, ok := p.eat(token.Assign); !ok {
		return ast.NoNodeID, false
	}

	typeID, ok := p.parseTypeExpr()
	if !ok {
		return ast.NoNodeID, false
	}

	decl := ast.TypeNode{
		Name:     p.arenas.Intern(nameTok.Text),
		NameSpan: nameTok.Span,
		Type:     typeID,
	}
	span := kw.Span.Cover(p.lastSpan)
	payload := ast.PayloadID(p.arenas.Nodes.Types.Allocate(decl))
	return p.arenas.Nodes.New(ast.NodeType, span, payload), true
}

// parseTypeExpr parses a named type, a generic type with unbounded
// nesting, or an inline record. Newlines inside brackets are not
// significant.
func (p *Parser) parseTypeExpr() (ast.TypeID, bool) {
	p.skipInsideType()

	if p.at(token.LBrace) {
		return p.parseRecordType()
	}

	nameTok, ok := p.eat(token.Ident)
	if !ok {
		return ast.NoTypeID, false
	}

	te := ast.TypeExpr{
		Kind: ast.TypeExprName,
		Span: nameTok.Span,
		Name: p.arenas.Intern(nameTok.Text),
	}

	if !p.at(token.Lt) {
		return p.arenas.Types.New(te), true
	}

	// Generic arguments: Name<arg, arg, ...>
	p.advance() // '<'
	te.Kind = ast.TypeExprGeneric
	for {
		p.skipInsideType()
		if p.at(token.Gt) {
			break
		}
		argID, ok := p.parseTypeExpr()
		if !ok {
			return ast.NoTypeID, false
		}
		te.Args = append(te.Args, argID)
		p.skipInsideType()
		if _, ok := p.eat(token.Comma); !ok {
			break
		}
	}
	gtTok, ok := p.eat(token.Gt)
	if !ok {
		return ast.NoTypeID, false
	}
	te.Span = te.Span.Cover(gtTok.Span)
	return p.arenas.Types.New(te), true
}

// parseRecordType parses '{ name: type, ... }' using the shared field
// list routine, so inline records nest inside generic arguments.
func (p *Parser) parseRecordType() (ast.TypeID, bool) {
	open := p.advance() // '{'

	fields, ok := p.parseFieldList(token.RBrace)
	if !ok {
		return ast.NoTypeID, false
	}
	closeTok, ok := p.eat(token.RBrace)
	if !ok {
		return ast.NoTypeID, false
	}

	te := ast.TypeExpr{
		Kind:   ast.TypeExprRecord,
		Span:   open.Span.Cover(closeTok.Span),
		Fields: fields,
	}
	return p.arenas.Types.New(te), true
}

// parseFieldList parses 'name: type' pairs separated by commas until
// the terminator. Trailing commas are fine; a '...' marker stops field
// parsing early without error. Also used for '@state' fields in
// refinement bodies.
func (p *Parser) parseFieldList(end token.Kind) ([]ast.TypeFieldID, bool) {
	var fields []ast.TypeFieldID
	for {
		p.skipInsideType()
		if p.at(end) || p.at(token.EOF) {
			return fields, true
		}
		if p.at(token.Ellipsis) {
			// Explicit "elided rest": author chose not to list more.
			p.advance()
			p.skipInsideType()
			return fields, true
		}

		fieldID, ok := p.parseField()
		if !ok {
			return nil, false
		}
		fields = append(fields, fieldID)

		p.skipInsideType()
		if _, ok := p.eat(token.Comma); !ok {
			return fields, true
		}
	}
}

// parseField parses one 'name: type' pair; the type is optional.
func (p *Parser) parseField() (ast.TypeFieldID, bool) {
	nameTok, ok := p.eat(token.Ident)
	if !ok {
		return ast.NoTypeFieldID, false
	}

	field := ast.TypeField{
		Name:     p.arenas.Intern(nameTok.Text),
		NameSpan: nameTok.Span,
		Span:     nameTok.Span,
	}

	if _, ok := p.eat(token.Colon); ok {
		typeID, ok := p.parseTypeExpr()
		if !ok {
			return ast.NoTypeFieldID, false
		}
		field.Type = typeID
		field.Span = field.Span.Cover(p.lastSpan)
	}

	return p.arenas.Types.NewField(field), true
}

// skipInsideType drops newlines and comments inside bracketed type
// syntax, where line breaks carry no structure.
func (p *Parser) skipInsideType() {
	for p.at(token.Newline) || p.at(token.Comment) {
		p.advance()
	}
}
