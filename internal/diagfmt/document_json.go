package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lememta/sage-lang/internal/ast"
	"github.com/lememta/sage-lang/internal/source"
)

// DocNodeOutput is one document node rendered for JSON. Fields carries
// the kind-specific payload with stable lower-case keys.
type DocNodeOutput struct {
	Kind   string         `json:"kind"`
	Span   source.Span    `json:"span"`
	Fields map[string]any `json:"fields,omitempty"`
}

// DocOutput is the root of the document JSON.
type DocOutput struct {
	Span  source.Span     `json:"span"`
	Nodes []DocNodeOutput `json:"nodes"`
}

// FormatDocumentJSON writes the document as an indented JSON tree.
func FormatDocumentJSON(w io.Writer, builder *ast.Builder, doc ast.DocID) error {
	d := builder.Docs.Get(doc)
	if d == nil {
		return fmt.Errorf("document not found")
	}

	nodes := make([]DocNodeOutput, 0, len(d.Nodes))
	for _, nodeID := range d.Nodes {
		node := builder.Nodes.Get(nodeID)
		if node == nil {
			continue
		}
		nodes = append(nodes, DocNodeOutput{
			Kind:   node.Kind.String(),
			Span:   node.Span,
			Fields: nodeJSONFields(builder, node),
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(DocOutput{Span: d.Span, Nodes: nodes})
}

func nodeJSONFields(builder *ast.Builder, node *ast.Node) map[string]any {
	fields := make(map[string]any)
	switch node.Kind {
	case ast.NodeModule:
		if mod := builder.Nodes.Modules.Get(uint32(node.Payload)); mod != nil {
			fields["name"] = builder.Name(mod.Name)
			if mod.HasDesc {
				fields["description"] = mod.Description
			}
		}
	case ast.NodeType:
		if ty := builder.Nodes.Types.Get(uint32(node.Payload)); ty != nil {
			fields["name"] = builder.Name(ty.Name)
			fields["type"] = typeExprJSON(builder, ty.Type)
		}
	case ast.NodeFn, ast.NodeOp:
		if fn := builder.Nodes.Fns.Get(uint32(node.Payload)); fn != nil {
			fields["name"] = builder.Name(fn.Name)
			if len(fn.Params) > 0 {
				params := make([]map[string]any, 0, len(fn.Params))
				for _, pid := range fn.Params {
					p := builder.Types.GetParam(pid)
					if p == nil {
						continue
					}
					pm := map[string]any{"name": builder.Name(p.Name)}
					if p.Type != ast.NoTypeID {
						pm["type"] = typeExprJSON(builder, p.Type)
					}
					params = append(params, pm)
				}
				fields["params"] = params
			}
			if fn.Result != ast.NoTypeID {
				fields["result"] = typeExprJSON(builder, fn.Result)
			}
			if fn.HasDesc {
				fields["description"] = fn.Description
			}
			if cs := contractsJSON(builder, fn.Contracts); len(cs) > 0 {
				fields["contracts"] = cs
			}
			if len(fn.Body) > 0 {
				stmts := make([]map[string]any, 0, len(fn.Body))
				for _, sid := range fn.Body {
					stmts = append(stmts, stmtJSON(builder, sid))
				}
				fields["body"] = stmts
			}
		}
	case ast.NodeSpec:
		if spec := builder.Nodes.Specs.Get(uint32(node.Payload)); spec != nil {
			fields["name"] = builder.Name(spec.Name)
			if spec.HasDesc {
				fields["description"] = spec.Description
			}
			if cs := contractsJSON(builder, spec.Contracts); len(cs) > 0 {
				fields["contracts"] = cs
			}
		}
	case ast.NodeRefine:
		if ref := builder.Nodes.Refines.Get(uint32(node.Payload)); ref != nil {
			refineJSONFields(builder, ref, fields)
		}
	case ast.NodeImpl:
		if impl := builder.Nodes.Impls.Get(uint32(node.Payload)); impl != nil {
			if impl.Name != source.NoStringID {
				fields["name"] = builder.Name(impl.Name)
			}
			fields["body"] = impl.Body
		}
	case ast.NodeText:
		if txt := builder.Nodes.Texts.Get(uint32(node.Payload)); txt != nil {
			fields["text"] = txt.Text
		}
	case ast.NodeDecision:
		if dec := builder.Nodes.Decisions.Get(uint32(node.Payload)); dec != nil {
			fields["text"] = dec.Text
		}
	case ast.NodeInferred:
		if inf := builder.Nodes.Inferred.Get(uint32(node.Payload)); inf != nil {
			fields["inferred_kind"] = inf.Kind.String()
			fields["condition"] = inf.Condition
			if inf.HasReason {
				fields["reason"] = inf.Reason
			}
		}
	case ast.NodeRaw:
		if raw := builder.Nodes.Raws.Get(uint32(node.Payload)); raw != nil {
			fields["text"] = raw.Text
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

func refineJSONFields(builder *ast.Builder, ref *ast.RefineNode, fields map[string]any) {
	fields["parent"] = builder.Name(ref.Parent)
	if ref.Child != source.NoStringID {
		fields["child"] = builder.Name(ref.Child)
	}
	if ref.AltTag != source.NoStringID {
		fields["tag"] = builder.Name(ref.AltTag)
	}
	if ref.HasDesc {
		fields["description"] = ref.Description
	}
	if len(ref.Decisions) > 0 {
		decisions := make([]string, 0, len(ref.Decisions))
		for _, dc := range ref.Decisions {
			decisions = append(decisions, dc.Text)
		}
		fields["decisions"] = decisions
	}
	if len(ref.State) > 0 {
		state := make([]map[string]any, 0, len(ref.State))
		for _, fid := range ref.State {
			f := builder.Types.GetField(fid)
			if f == nil {
				continue
			}
			fm := map[string]any{"name": builder.Name(f.Name)}
			if f.Type != ast.NoTypeID {
				fm["type"] = typeExprJSON(builder, f.Type)
			}
			state = append(state, fm)
		}
		fields["state"] = state
	}
	if len(ref.Preserves) > 0 {
		claims := make([]map[string]any, 0, len(ref.Preserves))
		for _, claim := range ref.Preserves {
			claims = append(claims, map[string]any{
				"text":    claim.Text,
				"checked": claim.Checked,
			})
		}
		fields["preserves"] = claims
	}
	if len(ref.Maps) > 0 {
		maps := make([]string, 0, len(ref.Maps))
		for _, m := range ref.Maps {
			maps = append(maps, m.Text)
		}
		fields["maps"] = maps
	}
	if ref.HasCompare {
		compare := map[string]any{"target": builder.Name(ref.Compare.Target)}
		if len(ref.Compare.Advantages) > 0 {
			compare["advantages"] = ref.Compare.Advantages
		}
		if len(ref.Compare.Disadvantages) > 0 {
			compare["disadvantages"] = ref.Compare.Disadvantages
		}
		fields["compare_with"] = compare
	}
}

func contractsJSON(builder *ast.Builder, ids []ast.ContractID) []map[string]any {
	out := make([]map[string]any, 0, len(ids))
	for _, cid := range ids {
		c := builder.Contracts.Get(cid)
		if c == nil {
			continue
		}
		out = append(out, map[string]any{
			"kind": c.Kind.String(),
			"text": c.Text,
		})
	}
	return out
}

func stmtJSON(builder *ast.Builder, id ast.StmtID) map[string]any {
	stmt := builder.Stmts.Get(id)
	if stmt == nil {
		return map[string]any{"kind": "nil"}
	}
	out := map[string]any{"kind": stmt.Kind.String()}
	switch stmt.Kind {
	case ast.StmtLet:
		if let := builder.Stmts.Lets.Get(uint32(stmt.Payload)); let != nil {
			out["name"] = builder.Name(let.Name)
			out["value"] = let.Value
			if let.Decision {
				out["decision"] = true
			}
		}
	case ast.StmtIf:
		if ifs := builder.Stmts.Ifs.Get(uint32(stmt.Payload)); ifs != nil {
			out["cond"] = ifs.Cond
			out["then"] = ifs.Then
			if ifs.HasElse {
				out["else"] = ifs.Else
			}
			if ifs.Decision {
				out["decision"] = true
			}
		}
	case ast.StmtRet:
		if ret := builder.Stmts.Rets.Get(uint32(stmt.Payload)); ret != nil {
			out["value"] = ret.Value
		}
	case ast.StmtText:
		if txt := builder.Stmts.Texts.Get(uint32(stmt.Payload)); txt != nil {
			out["text"] = txt.Text
		}
	case ast.StmtDecision:
		if dec := builder.Stmts.Decisions.Get(uint32(stmt.Payload)); dec != nil {
			out["text"] = dec.Text
		}
	case ast.StmtRaw:
		if raw := builder.Stmts.Raws.Get(uint32(stmt.Payload)); raw != nil {
			out["text"] = raw.Text
		}
	}
	return out
}

func typeExprJSON(builder *ast.Builder, id ast.TypeID) any {
	return typeExprString(builder, id)
}
