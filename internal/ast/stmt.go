package ast

import (
	"github.com/lememta/sage-lang/internal/source"
)

// StmtKind discriminates statements inside function and operation
// bodies.
type StmtKind uint8

const (
	// StmtText is natural-language prose.
	StmtText StmtKind = iota
	// StmtDecision is a standalone decision marker.
	StmtDecision
	// StmtLet is a let-binding with a free-text value.
	StmtLet
	// StmtIf is a conditional with free-text condition and branches.
	StmtIf
	// StmtRet is a return with a free-text value.
	StmtRet
	// StmtRaw is the fallback for an unrecognized body line.
	StmtRaw
)

var stmtKindNames = [...]string{
	StmtText:     "Text",
	StmtDecision: "Decision",
	StmtLet:      "Let",
	StmtIf:       "If",
	StmtRet:      "Ret",
	StmtRaw:      "Raw",
}

func (k StmtKind) String() string {
	if int(k) < len(stmtKindNames) {
		return stmtKindNames[k]
	}
	return "Unknown"
}

// Stmt is one body statement. Payload indexes the arena matching Kind.
type Stmt struct {
	Kind    StmtKind
	Span    source.Span
	Payload PayloadID
}

// LetStmt is 'let name = value'. Value is reconstructed text; when it
// opens an unbalanced '{' the capture continues across newlines until
// braces balance, preserving the embedded line breaks. Decision is set
// by a leading '!!'.
type LetStmt struct {
	Name     source.StringID
	NameSpan source.Span
	Value    string
	Decision bool
}

// IfStmt is 'if cond => then [else alt]', all three parts free text.
// Decision is set by a leading '!!'.
type IfStmt struct {
	Cond     string
	Then     string
	Else     string
	HasElse  bool
	Decision bool
}

// RetStmt is 'ret value' with a free-text value.
type RetStmt struct {
	Value string
}

// TextStmt is prose inside a body.
type TextStmt struct {
	Text string
}

// DecisionStmt is a standalone '!!' marker inside a body.
type DecisionStmt struct {
	Text string
}

// RawStmt preserves an unrecognized body line verbatim.
type RawStmt struct {
	Text string
}
