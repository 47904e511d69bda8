package ast

import (
	"github.com/lememta/sage-lang/internal/source"
)

// Document is the parse result for one source file: an ordered flat
// list of top-level nodes.
type Document struct {
	Span  source.Span
	Nodes []NodeID
}

type Documents struct {
	Arena *Arena[Document]
}

func NewDocuments(capHint uint) *Documents {
	return &Documents{
		Arena: NewArena[Document](capHint),
	}
}

func (d *Documents) New(sp source.Span) DocID {
	return DocID(d.Arena.Allocate(Document{
		Span:  sp,
		Nodes: make([]NodeID, 0),
	}))
}

func (d *Documents) Get(id DocID) *Document {
	return d.Arena.Get(uint32(id))
}
