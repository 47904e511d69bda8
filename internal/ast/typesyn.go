package ast

import (
	"github.com/lememta/sage-lang/internal/source"
)

// TypeExprKind discriminates type expressions.
type TypeExprKind uint8

const (
	// TypeExprName is a plain named type.
	TypeExprName TypeExprKind = iota
	// TypeExprGeneric is name + ordered argument list; nesting is
	// unbounded.
	TypeExprGeneric
	// TypeExprRecord is an ordered list of named, typed fields.
	TypeExprRecord
)

func (k TypeExprKind) String() string {
	switch k {
	case TypeExprName:
		return "Name"
	case TypeExprGeneric:
		return "Generic"
	case TypeExprRecord:
		return "Record"
	}
	return "Unknown"
}

// TypeExpr is one type expression. Name is set for Name and Generic,
// Args for Generic, Fields for Record.
type TypeExpr struct {
	Kind   TypeExprKind
	Span   source.Span
	Name   source.StringID
	Args   []TypeID
	Fields []TypeFieldID
}

// TypeField is one named field of a record type. Type is NoTypeID for
// untyped fields.
type TypeField struct {
	Name     source.StringID
	NameSpan source.Span
	Type     TypeID
	Span     source.Span
}

// Param is one function/operation parameter; the type annotation is
// optional.
type Param struct {
	Name     source.StringID
	NameSpan source.Span
	Type     TypeID // NoTypeID when untyped
	Span     source.Span
}

// ContractKind discriminates contract clauses.
type ContractKind uint8

const (
	// ContractReq is a '@req' precondition.
	ContractReq ContractKind = iota
	// ContractEns is an '@ens' postcondition.
	ContractEns
	// ContractInv is an '@inv' invariant.
	ContractInv
	// ContractProp is a '@prop' property.
	ContractProp
)

func (k ContractKind) String() string {
	switch k {
	case ContractReq:
		return "Req"
	case ContractEns:
		return "Ens"
	case ContractInv:
		return "Inv"
	case ContractProp:
		return "Prop"
	}
	return "Unknown"
}

// Contract is a (kind, free-text condition, span) triple. Text is a
// verbatim reconstruction of the source tokens between the keyword and
// the line boundary, string tokens re-quoted; it is never parsed into
// an expression tree here.
type Contract struct {
	Kind ContractKind
	Text string
	Span source.Span
}
