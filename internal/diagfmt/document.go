package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/lememta/sage-lang/internal/ast"
	"github.com/lememta/sage-lang/internal/source"
)

// FormatDocumentPretty renders the document as an indented tree, one
// top-level node per branch.
func FormatDocumentPretty(w io.Writer, builder *ast.Builder, doc ast.DocID, fs *source.FileSet) error {
	d := builder.Docs.Get(doc)
	if d == nil {
		return fmt.Errorf("document not found")
	}

	header := "Document"
	if fs != nil {
		if srcFile := fs.Get(d.Span.File); srcFile != nil {
			header = srcFile.FormatPath("auto", fs.BaseDir())
		}
	}
	fmt.Fprintf(w, "%s (span: %s)\n", header, formatSpan(d.Span, fs))

	for i, nodeID := range d.Nodes {
		isLast := i == len(d.Nodes)-1
		var prefix string
		if isLast {
			fmt.Fprintf(w, "└─ Node[%d]: ", i)
			prefix = "   "
		} else {
			fmt.Fprintf(w, "├─ Node[%d]: ", i)
			prefix = "│  "
		}
		formatNodePretty(w, builder, nodeID, fs, prefix)
	}
	return nil
}

func formatNodePretty(w io.Writer, builder *ast.Builder, nodeID ast.NodeID, fs *source.FileSet, prefix string) {
	node := builder.Nodes.Get(nodeID)
	if node == nil {
		fmt.Fprintf(w, "nil node\n")
		return
	}
	fmt.Fprintf(w, "%s (span: %s)\n", node.Kind.String(), formatSpan(node.Span, fs))

	var fields []field
	switch node.Kind {
	case ast.NodeModule:
		if mod := builder.Nodes.Modules.Get(uint32(node.Payload)); mod != nil {
			fields = append(fields, field{"Name", builder.Name(mod.Name)})
			if mod.HasDesc {
				fields = append(fields, field{"Description", quoted(mod.Description)})
			}
		}
	case ast.NodeType:
		if ty := builder.Nodes.Types.Get(uint32(node.Payload)); ty != nil {
			fields = append(fields, field{"Name", builder.Name(ty.Name)})
			fields = append(fields, field{"Type", typeExprString(builder, ty.Type)})
		}
	case ast.NodeFn, ast.NodeOp:
		if fn := builder.Nodes.Fns.Get(uint32(node.Payload)); fn != nil {
			fields = fnFields(builder, fn)
		}
	case ast.NodeSpec:
		if spec := builder.Nodes.Specs.Get(uint32(node.Payload)); spec != nil {
			fields = append(fields, field{"Name", builder.Name(spec.Name)})
			if spec.HasDesc {
				fields = append(fields, field{"Description", quoted(spec.Description)})
			}
			fields = append(fields, contractFields(builder, spec.Contracts)...)
		}
	case ast.NodeRefine:
		if ref := builder.Nodes.Refines.Get(uint32(node.Payload)); ref != nil {
			fields = refineFields(builder, ref)
		}
	case ast.NodeImpl:
		if impl := builder.Nodes.Impls.Get(uint32(node.Payload)); impl != nil {
			if impl.Name != source.NoStringID {
				fields = append(fields, field{"Name", builder.Name(impl.Name)})
			}
			fields = append(fields, field{"Body", quoted(impl.Body)})
		}
	case ast.NodeText:
		if txt := builder.Nodes.Texts.Get(uint32(node.Payload)); txt != nil {
			fields = append(fields, field{"Text", quoted(txt.Text)})
		}
	case ast.NodeDecision:
		if dec := builder.Nodes.Decisions.Get(uint32(node.Payload)); dec != nil {
			fields = append(fields, field{"Text", quoted(dec.Text)})
		}
	case ast.NodeInferred:
		if inf := builder.Nodes.Inferred.Get(uint32(node.Payload)); inf != nil {
			fields = append(fields, field{"Kind", inf.Kind.String()})
			fields = append(fields, field{"Condition", quoted(inf.Condition)})
			if inf.HasReason {
				fields = append(fields, field{"Reason", quoted(inf.Reason)})
			}
		}
	case ast.NodeRaw:
		if raw := builder.Nodes.Raws.Get(uint32(node.Payload)); raw != nil {
			fields = append(fields, field{"Text", quoted(raw.Text)})
		}
	}

	for i, f := range fields {
		branch := "├─"
		if i == len(fields)-1 {
			branch = "└─"
		}
		fmt.Fprintf(w, "%s%s %s: %s\n", prefix, branch, f.name, f.value)
	}
}

type field struct {
	name  string
	value string
}

func fnFields(builder *ast.Builder, fn *ast.FnNode) []field {
	fields := []field{{"Name", builder.Name(fn.Name)}}
	if len(fn.Params) > 0 {
		parts := make([]string, 0, len(fn.Params))
		for _, pid := range fn.Params {
			p := builder.Types.GetParam(pid)
			if p == nil {
				continue
			}
			s := builder.Name(p.Name)
			if p.Type != ast.NoTypeID {
				s += ": " + typeExprString(builder, p.Type)
			}
			parts = append(parts, s)
		}
		fields = append(fields, field{"Params", strings.Join(parts, ", ")})
	}
	if fn.Result != ast.NoTypeID {
		fields = append(fields, field{"Result", typeExprString(builder, fn.Result)})
	}
	if fn.HasDesc {
		fields = append(fields, field{"Description", quoted(fn.Description)})
	}
	fields = append(fields, contractFields(builder, fn.Contracts)...)
	for i, sid := range fn.Body {
		fields = append(fields, field{
			fmt.Sprintf("Stmt[%d]", i),
			stmtString(builder, sid),
		})
	}
	return fields
}

func refineFields(builder *ast.Builder, ref *ast.RefineNode) []field {
	fields := []field{{"Parent", builder.Name(ref.Parent)}}
	if ref.Child != source.NoStringID {
		fields = append(fields, field{"Child", builder.Name(ref.Child)})
	}
	if ref.AltTag != source.NoStringID {
		fields = append(fields, field{"Tag", builder.Name(ref.AltTag)})
	}
	if ref.HasDesc {
		fields = append(fields, field{"Description", quoted(ref.Description)})
	}
	for i, dc := range ref.Decisions {
		fields = append(fields, field{fmt.Sprintf("Decision[%d]", i), quoted(dc.Text)})
	}
	for i, fid := range ref.State {
		f := builder.Types.GetField(fid)
		if f == nil {
			continue
		}
		s := builder.Name(f.Name)
		if f.Type != ast.NoTypeID {
			s += ": " + typeExprString(builder, f.Type)
		}
		fields = append(fields, field{fmt.Sprintf("State[%d]", i), s})
	}
	for i, claim := range ref.Preserves {
		mark := ""
		if claim.Checked {
			mark = " [checked]"
		}
		fields = append(fields, field{
			fmt.Sprintf("Preserves[%d]", i),
			quoted(claim.Text) + mark,
		})
	}
	for i, m := range ref.Maps {
		fields = append(fields, field{fmt.Sprintf("Maps[%d]", i), quoted(m.Text)})
	}
	if ref.HasCompare {
		fields = append(fields, field{"CompareWith", builder.Name(ref.Compare.Target)})
		for i, adv := range ref.Compare.Advantages {
			fields = append(fields, field{fmt.Sprintf("Advantage[%d]", i), quoted(adv)})
		}
		for i, dis := range ref.Compare.Disadvantages {
			fields = append(fields, field{fmt.Sprintf("Disadvantage[%d]", i), quoted(dis)})
		}
	}
	return fields
}

func contractFields(builder *ast.Builder, ids []ast.ContractID) []field {
	var fields []field
	for i, cid := range ids {
		c := builder.Contracts.Get(cid)
		if c == nil {
			continue
		}
		fields = append(fields, field{
			fmt.Sprintf("%s[%d]", c.Kind.String(), i),
			quoted(c.Text),
		})
	}
	return fields
}

func stmtString(builder *ast.Builder, id ast.StmtID) string {
	stmt := builder.Stmts.Get(id)
	if stmt == nil {
		return "<nil>"
	}
	switch stmt.Kind {
	case ast.StmtLet:
		if let := builder.Stmts.Lets.Get(uint32(stmt.Payload)); let != nil {
			s := fmt.Sprintf("Let %s = %s", builder.Name(let.Name), quoted(let.Value))
			if let.Decision {
				s += " [decision]"
			}
			return s
		}
	case ast.StmtIf:
		if ifs := builder.Stmts.Ifs.Get(uint32(stmt.Payload)); ifs != nil {
			s := fmt.Sprintf("If %s => %s", quoted(ifs.Cond), quoted(ifs.Then))
			if ifs.HasElse {
				s += " else " + quoted(ifs.Else)
			}
			if ifs.Decision {
				s += " [decision]"
			}
			return s
		}
	case ast.StmtRet:
		if ret := builder.Stmts.Rets.Get(uint32(stmt.Payload)); ret != nil {
			return "Ret " + quoted(ret.Value)
		}
	case ast.StmtText:
		if txt := builder.Stmts.Texts.Get(uint32(stmt.Payload)); txt != nil {
			return "Text " + quoted(txt.Text)
		}
	case ast.StmtDecision:
		if dec := builder.Stmts.Decisions.Get(uint32(stmt.Payload)); dec != nil {
			return "Decision " + quoted(dec.Text)
		}
	case ast.StmtRaw:
		if raw := builder.Stmts.Raws.Get(uint32(stmt.Payload)); raw != nil {
			return "Raw " + quoted(raw.Text)
		}
	}
	return stmt.Kind.String()
}

// typeExprString renders a type expression back to source-like text.
func typeExprString(builder *ast.Builder, id ast.TypeID) string {
	if id == ast.NoTypeID {
		return "<none>"
	}
	te := builder.Types.Get(id)
	if te == nil {
		return "<nil>"
	}
	switch te.Kind {
	case ast.TypeExprName:
		return builder.Name(te.Name)
	case ast.TypeExprGeneric:
		args := make([]string, 0, len(te.Args))
		for _, arg := range te.Args {
			args = append(args, typeExprString(builder, arg))
		}
		return builder.Name(te.Name) + "<" + strings.Join(args, ", ") + ">"
	case ast.TypeExprRecord:
		parts := make([]string, 0, len(te.Fields))
		for _, fid := range te.Fields {
			f := builder.Types.GetField(fid)
			if f == nil {
				continue
			}
			s := builder.Name(f.Name)
			if f.Type != ast.NoTypeID {
				s += ": " + typeExprString(builder, f.Type)
			}
			parts = append(parts, s)
		}
		return "{ " + strings.Join(parts, ", ") + " }"
	}
	return "<unknown>"
}

func quoted(s string) string {
	return fmt.Sprintf("%q", s)
}
