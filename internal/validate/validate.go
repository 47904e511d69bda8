// Package validate is the semantic pass over a parsed document. It is
// a pure tree walk: no name resolution, no cross-file state. Every
// finding is a diagnostic; the walk itself never fails.
package validate

import (
	"fmt"
	"strings"

	"github.com/lememta/sage-lang/internal/ast"
	"github.com/lememta/sage-lang/internal/diag"
	"github.com/lememta/sage-lang/internal/source"
)

// Options configure a validation pass over a document.
type Options struct {
	Reporter diag.Reporter
}

// Check walks the document and reports findings through the reporter.
func Check(builder *ast.Builder, doc ast.DocID, opts Options) {
	if builder == nil || doc == ast.NoDocID {
		return
	}
	d := builder.Docs.Get(doc)
	if d == nil {
		return
	}

	v := validator{
		builder:  builder,
		reporter: opts.Reporter,
		declared: make(map[source.StringID]source.Span),
	}
	for _, id := range d.Nodes {
		v.checkNode(id)
	}
}

type validator struct {
	builder  *ast.Builder
	reporter diag.Reporter
	// declared maps top-level declaration names to their first site,
	// for duplicate detection across @type/@fn/@op/@spec.
	declared map[source.StringID]source.Span
}

func (v *validator) checkNode(id ast.NodeID) {
	node := v.builder.Nodes.Get(id)
	if node == nil {
		return
	}
	switch node.Kind {
	case ast.NodeModule:
		v.checkModule(node)
	case ast.NodeType:
		v.checkType(node)
	case ast.NodeFn, ast.NodeOp:
		v.checkFn(node)
	case ast.NodeSpec:
		v.checkSpec(node)
	case ast.NodeRefine:
		v.checkRefine(node)
	}
}

func (v *validator) checkModule(node *ast.Node) {
	mod := v.builder.Nodes.Modules.Get(uint32(node.Payload))
	if mod == nil {
		return
	}
	if v.nameEmpty(mod.Name) {
		v.errorf(diag.ValEmptyName, node.Span, "module declaration has no name")
	}
}

func (v *validator) checkType(node *ast.Node) {
	ty := v.builder.Nodes.Types.Get(uint32(node.Payload))
	if ty == nil {
		return
	}
	if v.nameEmpty(ty.Name) {
		v.errorf(diag.ValEmptyName, node.Span, "type declaration has no name")
	} else {
		v.checkDuplicate(ty.Name, ty.NameSpan, "type")
	}
	v.checkTypeExpr(ty.Type)
}

func (v *validator) checkTypeExpr(id ast.TypeID) {
	if id == ast.NoTypeID {
		return
	}
	te := v.builder.Types.Get(id)
	if te == nil {
		return
	}
	switch te.Kind {
	case ast.TypeExprGeneric:
		for _, arg := range te.Args {
			v.checkTypeExpr(arg)
		}
	case ast.TypeExprRecord:
		for _, fid := range te.Fields {
			field := v.builder.Types.GetField(fid)
			if field == nil {
				continue
			}
			if v.nameEmpty(field.Name) {
				v.errorf(diag.ValEmptyFieldName, field.Span, "record field has no name")
			}
			v.checkTypeExpr(field.Type)
		}
	}
}

func (v *validator) checkFn(node *ast.Node) {
	fn := v.builder.Nodes.Fns.Get(uint32(node.Payload))
	if fn == nil {
		return
	}
	what := "function"
	if node.Kind == ast.NodeOp {
		what = "operation"
	}
	if v.nameEmpty(fn.Name) {
		v.errorf(diag.ValEmptyName, node.Span, "%s declaration has no name", what)
	} else {
		v.checkDuplicate(fn.Name, fn.NameSpan, what)
	}
	for _, pid := range fn.Params {
		param := v.builder.Types.GetParam(pid)
		if param == nil {
			continue
		}
		v.checkTypeExpr(param.Type)
	}
	v.checkTypeExpr(fn.Result)
	v.checkContracts(fn.Contracts)
}

func (v *validator) checkSpec(node *ast.Node) {
	spec := v.builder.Nodes.Specs.Get(uint32(node.Payload))
	if spec == nil {
		return
	}
	if v.nameEmpty(spec.Name) {
		v.errorf(diag.ValEmptyName, node.Span, "spec declaration has no name")
	} else {
		v.checkDuplicate(spec.Name, spec.NameSpan, "spec")
	}
	v.checkContracts(spec.Contracts)
}

func (v *validator) checkRefine(node *ast.Node) {
	ref := v.builder.Nodes.Refines.Get(uint32(node.Payload))
	if ref == nil {
		return
	}
	if v.nameEmpty(ref.Parent) {
		v.errorf(diag.ValRefineNoParent, node.Span,
			"refinement names no parent spec")
	}
	for _, dc := range ref.Decisions {
		if strings.TrimSpace(dc.Text) == "" {
			v.errorf(diag.ValEmptyCondition, dc.Span, "decision has no text")
		}
	}
	for _, fid := range ref.State {
		field := v.builder.Types.GetField(fid)
		if field == nil {
			continue
		}
		if v.nameEmpty(field.Name) {
			v.errorf(diag.ValEmptyFieldName, field.Span, "state field has no name")
		}
		v.checkTypeExpr(field.Type)
	}
	for _, claim := range ref.Preserves {
		if strings.TrimSpace(claim.Text) == "" {
			v.errorf(diag.ValEmptyCondition, claim.Span,
				"preserves claim has no text")
		}
	}
	for _, m := range ref.Maps {
		if strings.TrimSpace(m.Text) == "" {
			v.errorf(diag.ValEmptyCondition, m.Span, "maps clause has no text")
		}
	}
	if ref.HasCompare {
		cb := ref.Compare
		if v.nameEmpty(cb.Target) {
			v.errorf(diag.ValEmptyName, cb.Span, "compare block names no target")
		}
		if len(cb.Advantages) == 0 && len(cb.Disadvantages) == 0 {
			v.errorf(diag.ValEmptyCompareBlock, cb.Span,
				"compare block lists no advantages or disadvantages")
		}
	}
}

func (v *validator) checkContracts(ids []ast.ContractID) {
	for _, cid := range ids {
		c := v.builder.Contracts.Get(cid)
		if c == nil {
			continue
		}
		if strings.TrimSpace(c.Text) == "" {
			v.errorf(diag.ValEmptyCondition, c.Span,
				"%s clause has no condition", contractWhat(c.Kind))
		}
	}
}

func contractWhat(k ast.ContractKind) string {
	switch k {
	case ast.ContractReq:
		return "requirement"
	case ast.ContractEns:
		return "ensures"
	case ast.ContractInv:
		return "invariant"
	case ast.ContractProp:
		return "property"
	}
	return "contract"
}

func (v *validator) checkDuplicate(name source.StringID, sp source.Span, what string) {
	if prev, ok := v.declared[name]; ok {
		v.report(diag.ValDuplicateDecl, sp,
			fmt.Sprintf("duplicate %s declaration %q", what, v.builder.Name(name)),
			[]diag.Note{{Span: prev, Msg: "first declared here"}})
		return
	}
	v.declared[name] = sp
}

func (v *validator) nameEmpty(name source.StringID) bool {
	if name == source.NoStringID {
		return true
	}
	return strings.TrimSpace(v.builder.Name(name)) == ""
}

func (v *validator) errorf(code diag.Code, sp source.Span, format string, args ...any) {
	v.report(code, sp, fmt.Sprintf(format, args...), nil)
}

func (v *validator) report(code diag.Code, sp source.Span, msg string, notes []diag.Note) {
	if v.reporter != nil {
		v.reporter.Report(code, diag.SevError, sp, msg, notes)
	}
}
