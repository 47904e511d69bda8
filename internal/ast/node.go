package ast

import (
	"github.com/lememta/sage-lang/internal/source"
)

// NodeKind discriminates top-level document nodes.
type NodeKind uint8

const (
	// NodeModule is a '@mod' declaration.
	NodeModule NodeKind = iota
	// NodeType is a '@type' declaration.
	NodeType
	// NodeFn is a '@fn' declaration.
	NodeFn
	// NodeOp is an '@op' declaration; it shares the FnNode payload.
	NodeOp
	// NodeSpec is a '@spec' declaration.
	NodeSpec
	// NodeRefine is a '@refine' declaration.
	NodeRefine
	// NodeImpl is an '@impl' block with a raw body.
	NodeImpl
	// NodeText is free natural-language prose.
	NodeText
	// NodeDecision is a decision marker, whatever position it was
	// written in.
	NodeDecision
	// NodeSectionSep is a '---' separator.
	NodeSectionSep
	// NodeInferred is a tool-suggested annotation.
	NodeInferred
	// NodeRaw is the fallback for unrecognized input.
	NodeRaw
)

var nodeKindNames = [...]string{
	NodeModule:     "Module",
	NodeType:       "Type",
	NodeFn:         "Fn",
	NodeOp:         "Op",
	NodeSpec:       "Spec",
	NodeRefine:     "Refine",
	NodeImpl:       "Impl",
	NodeText:       "Text",
	NodeDecision:   "Decision",
	NodeSectionSep: "SectionSep",
	NodeInferred:   "Inferred",
	NodeRaw:        "Raw",
}

func (k NodeKind) String() string {
	if int(k) < len(nodeKindNames) {
		return nodeKindNames[k]
	}
	return "Unknown"
}

// Node is one top-level entry. Payload indexes the arena matching
// Kind; kinds without data (SectionSep) carry NoPayloadID.
type Node struct {
	Kind    NodeKind
	Span    source.Span
	Payload PayloadID
}

// ModuleNode is '@mod name' with an optional description string on the
// same or the following line.
type ModuleNode struct {
	Name        source.StringID
	NameSpan    source.Span
	Description string
	HasDesc     bool
}

// TypeNode is '@type Name = <type expression>'.
type TypeNode struct {
	Name     source.StringID
	NameSpan source.Span
	Type     TypeID
}

// FnNode is a '@fn' or '@op' declaration: name, optional parameters,
// optional result type, optional description string, interleaved
// requirement/ensures clauses in source order, then a statement body.
type FnNode struct {
	Name        source.StringID
	NameSpan    source.Span
	Params      []ParamID
	Result      TypeID // NoTypeID when absent
	Description string
	HasDesc     bool
	Contracts   []ContractID // @req and @ens, order preserved
	Body        []StmtID
}

// SpecNode is a '@spec' declaration: a named bundle of invariants and
// properties with an optional description.
type SpecNode struct {
	Name        source.StringID
	NameSpan    source.Span
	Description string
	HasDesc     bool
	Contracts   []ContractID // @inv, @prop, @req, @ens in source order
}

// RefineNode links a concrete spec to its abstract parent.
// Header: 'parent [as child [tag]]'. The body is an unordered,
// repeatable mix of clauses; each list keeps source order.
type RefineNode struct {
	Parent      source.StringID
	ParentSpan  source.Span
	Child       source.StringID // NoStringID when absent
	AltTag      source.StringID // NoStringID when absent
	Description string
	HasDesc     bool
	Decisions   []DecisionClause
	State       []TypeFieldID
	Preserves   []PreservesClaim
	Maps        []MapsClause
	Compare     CompareBlock
	HasCompare  bool
}

// DecisionClause is one decision inside a refinement body.
type DecisionClause struct {
	Text string
	Span source.Span
}

// PreservesClaim records one preserved property. Checked claims were
// written with a leading checkmark; bare string claims are informal.
type PreservesClaim struct {
	Text    string
	Span    source.Span
	Checked bool
}

// MapsClause is one '@maps abstract -> concrete' correspondence.
type MapsClause struct {
	Text string
	Span source.Span
}

// CompareBlock is the at-most-one '@compare_with' block: a target name
// plus free-text advantages/disadvantages.
type CompareBlock struct {
	Target        source.StringID
	TargetSpan    source.Span
	Advantages    []string
	Disadvantages []string
	Span          source.Span
}

// ImplNode is an '@impl' block; the body is raw text, internal
// newlines preserved, no further structure imposed.
type ImplNode struct {
	Name     source.StringID // NoStringID when absent
	NameSpan source.Span
	Body     string
}

// TextNode is natural-language prose at the top level.
type TextNode struct {
	Text string
}

// DecisionNode is a normalized decision marker. Three source
// positions produce it: a standalone '!!', a '!!' suffix after prose,
// and a '@decision' clause.
type DecisionNode struct {
	Text string
}

// InferredKind discriminates the three inferred annotation kinds.
type InferredKind uint8

const (
	InferredReq InferredKind = iota
	InferredEns
	InferredEff
)

func (k InferredKind) String() string {
	switch k {
	case InferredReq:
		return "InferredReq"
	case InferredEns:
		return "InferredEns"
	case InferredEff:
		return "InferredEff"
	}
	return "Unknown"
}

// InferredNode is a tool-suggested annotation: a condition and an
// optional free-text reason split on the first '←'.
type InferredNode struct {
	Kind      InferredKind
	Condition string
	Reason    string
	HasReason bool
}

// RawNode preserves an unrecognized line verbatim (space-joined token
// text up to the newline).
type RawNode struct {
	Text string
}
