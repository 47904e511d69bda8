package ast

import (
	"github.com/lememta/sage-lang/internal/source"
)

// Nodes aggregates the top-level node arena with one payload arena per
// node kind.
type Nodes struct {
	Arena     *Arena[Node]
	Modules   *Arena[ModuleNode]
	Types     *Arena[TypeNode]
	Fns       *Arena[FnNode]
	Specs     *Arena[SpecNode]
	Refines   *Arena[RefineNode]
	Impls     *Arena[ImplNode]
	Texts     *Arena[TextNode]
	Decisions *Arena[DecisionNode]
	Inferred  *Arena[InferredNode]
	Raws      *Arena[RawNode]
}

func NewNodes(capHint uint) *Nodes {
	if capHint == 0 {
		capHint = 1 << 7
	}
	return &Nodes{
		Arena:     NewArena[Node](capHint),
		Modules:   NewArena[ModuleNode](1 << 2),
		Types:     NewArena[TypeNode](capHint),
		Fns:       NewArena[FnNode](capHint),
		Specs:     NewArena[SpecNode](1 << 4),
		Refines:   NewArena[RefineNode](1 << 4),
		Impls:     NewArena[ImplNode](1 << 4),
		Texts:     NewArena[TextNode](capHint),
		Decisions: NewArena[DecisionNode](1 << 4),
		Inferred:  NewArena[InferredNode](1 << 4),
		Raws:      NewArena[RawNode](capHint),
	}
}

func (n *Nodes) New(kind NodeKind, span source.Span, payload PayloadID) NodeID {
	return NodeID(n.Arena.Allocate(Node{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

func (n *Nodes) Get(id NodeID) *Node {
	return n.Arena.Get(uint32(id))
}

// Stmts aggregates the statement arena with per-kind payload arenas.
type Stmts struct {
	Arena     *Arena[Stmt]
	Lets      *Arena[LetStmt]
	Ifs       *Arena[IfStmt]
	Rets      *Arena[RetStmt]
	Texts     *Arena[TextStmt]
	Decisions *Arena[DecisionStmt]
	Raws      *Arena[RawStmt]
}

func NewStmts(capHint uint) *Stmts {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Stmts{
		Arena:     NewArena[Stmt](capHint),
		Lets:      NewArena[LetStmt](capHint),
		Ifs:       NewArena[IfStmt](1 << 5),
		Rets:      NewArena[RetStmt](1 << 5),
		Texts:     NewArena[TextStmt](1 << 5),
		Decisions: NewArena[DecisionStmt](1 << 4),
		Raws:      NewArena[RawStmt](1 << 5),
	}
}

func (s *Stmts) New(kind StmtKind, span source.Span, payload PayloadID) StmtID {
	return StmtID(s.Arena.Allocate(Stmt{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

func (s *Stmts) Get(id StmtID) *Stmt {
	return s.Arena.Get(uint32(id))
}

// TypeExprs aggregates type expressions with their field and parameter
// sub-arenas.
type TypeExprs struct {
	Arena  *Arena[TypeExpr]
	Fields *Arena[TypeField]
	Params *Arena[Param]
}

func NewTypeExprs(capHint uint) *TypeExprs {
	if capHint == 0 {
		capHint = 1 << 7
	}
	return &TypeExprs{
		Arena:  NewArena[TypeExpr](capHint),
		Fields: NewArena[TypeField](capHint),
		Params: NewArena[Param](capHint),
	}
}

func (t *TypeExprs) New(te TypeExpr) TypeID {
	return TypeID(t.Arena.Allocate(te))
}

func (t *TypeExprs) Get(id TypeID) *TypeExpr {
	return t.Arena.Get(uint32(id))
}

func (t *TypeExprs) NewField(f TypeField) TypeFieldID {
	return TypeFieldID(t.Fields.Allocate(f))
}

func (t *TypeExprs) GetField(id TypeFieldID) *TypeField {
	return t.Fields.Get(uint32(id))
}

func (t *TypeExprs) NewParam(p Param) ParamID {
	return ParamID(t.Params.Allocate(p))
}

func (t *TypeExprs) GetParam(id ParamID) *Param {
	return t.Params.Get(uint32(id))
}

// Contracts stores requirement/ensures/invariant/property clauses.
type Contracts struct {
	Arena *Arena[Contract]
}

func NewContracts(capHint uint) *Contracts {
	if capHint == 0 {
		capHint = 1 << 6
	}
	return &Contracts{
		Arena: NewArena[Contract](capHint),
	}
}

func (c *Contracts) New(contract Contract) ContractID {
	return ContractID(c.Arena.Allocate(contract))
}

func (c *Contracts) Get(id ContractID) *Contract {
	return c.Arena.Get(uint32(id))
}
