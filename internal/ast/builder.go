package ast

import (
	"github.com/lememta/sage-lang/internal/source"
)

type Hints struct{ Docs, Nodes, Stmts, Types uint }

// Builder owns every arena for one parse. A fresh parse gets a fresh
// Builder; nothing is mutated after ParseTokens returns.
type Builder struct {
	Docs      *Documents
	Nodes     *Nodes
	Stmts     *Stmts
	Types     *TypeExprs
	Contracts *Contracts
	Interner  *source.Interner
}

func NewBuilder(hints Hints, interner *source.Interner) *Builder {
	if hints.Docs == 0 {
		hints.Docs = 1 << 2
	}
	if hints.Nodes == 0 {
		hints.Nodes = 1 << 7
	}
	if hints.Stmts == 0 {
		hints.Stmts = 1 << 8
	}
	if hints.Types == 0 {
		hints.Types = 1 << 7
	}
	if interner == nil {
		interner = source.NewInterner()
	}
	return &Builder{
		Docs:      NewDocuments(hints.Docs),
		Nodes:     NewNodes(hints.Nodes),
		Stmts:     NewStmts(hints.Stmts),
		Types:     NewTypeExprs(hints.Types),
		Contracts: NewContracts(0),
		Interner:  interner,
	}
}

func (b *Builder) NewDoc(sp source.Span) DocID {
	return b.Docs.New(sp)
}

// PushNode appends a node to the document's ordered list.
func (b *Builder) PushNode(doc DocID, node NodeID) {
	d := b.Docs.Get(doc)
	d.Nodes = append(d.Nodes, node)
}

// Intern is shorthand for the builder's interner.
func (b *Builder) Intern(s string) source.StringID {
	return b.Interner.Intern(s)
}

// Name resolves an interned name, returning "" for NoStringID.
func (b *Builder) Name(id source.StringID) string {
	s, _ := b.Interner.Lookup(id)
	return s
}
