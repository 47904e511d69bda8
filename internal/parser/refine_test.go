package parser

import (
	"testing"

	"github.com/lememta/sage-lang/internal/ast"
	"github.com/lememta/sage-lang/internal/source"
)

func TestParseRefineHeader(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantParent string
		wantChild  string
		wantTag    string
	}{
		{
			name:       "parent only",
			input:      "@refine Stack",
			wantParent: "Stack",
		},
		{
			name:       "parent and child",
			input:      "@refine Stack as FastStack",
			wantParent: "Stack",
			wantChild:  "FastStack",
		},
		{
			name:       "parent, child, and tag",
			input:      "@refine Stack as FastStack v2",
			wantParent: "Stack",
			wantChild:  "FastStack",
			wantTag:    "v2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			builder, doc, bag := parseSource(t, tt.input)
			if bag.HasErrors() {
				t.Fatalf("unexpected errors: %s", diagnosticsSummary(bag))
			}

			node := singleNode(t, builder, doc, ast.NodeRefine)
			ref := builder.Nodes.Refines.Get(uint32(node.Payload))

			if got := builder.Name(ref.Parent); got != tt.wantParent {
				t.Errorf("parent: got %q, want %q", got, tt.wantParent)
			}
			if got := builder.Name(ref.Child); got != tt.wantChild {
				t.Errorf("child: got %q, want %q", got, tt.wantChild)
			}
			if got := builder.Name(ref.AltTag); got != tt.wantTag {
				t.Errorf("tag: got %q, want %q", got, tt.wantTag)
			}
		})
	}
}

func TestRefineBodyClauses(t *testing.T) {
	input := `@refine Stack as FastStack
"array-backed variant"
@decision "use a growable array" !!
@state buf: Array<Int>
@state top: Int
@preserves
✓ push order
✓ pop order
@maps top -> buf length
`
	builder, doc, bag := parseSource(t, input)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %s", diagnosticsSummary(bag))
	}

	node := singleNode(t, builder, doc, ast.NodeRefine)
	ref := builder.Nodes.Refines.Get(uint32(node.Payload))

	if !ref.HasDesc || ref.Description != "array-backed variant" {
		t.Errorf("description: got %v %q", ref.HasDesc, ref.Description)
	}
	if len(ref.Decisions) != 1 || ref.Decisions[0].Text != "use a growable array" {
		t.Errorf("decisions: got %+v", ref.Decisions)
	}
	if len(ref.State) != 2 {
		t.Fatalf("state fields: got %d, want 2", len(ref.State))
	}
	buf := builder.Types.GetField(ref.State[0])
	if builder.Name(buf.Name) != "buf" {
		t.Errorf("state field 0: got %q", builder.Name(buf.Name))
	}
	if len(ref.Preserves) != 2 {
		t.Fatalf("preserves: got %d, want 2", len(ref.Preserves))
	}
	for i, claim := range ref.Preserves {
		if !claim.Checked {
			t.Errorf("claim %d not marked checked: %q", i, claim.Text)
		}
	}
	if len(ref.Maps) != 1 || ref.Maps[0].Text != "top -> buf length" {
		t.Errorf("maps: got %+v", ref.Maps)
	}
}

func TestRefineBareStringPreservesClaim(t *testing.T) {
	builder, doc, _ := parseSource(t, "@refine A as B\n@preserves \"amortized cost\"")
	node := singleNode(t, builder, doc, ast.NodeRefine)
	ref := builder.Nodes.Refines.Get(uint32(node.Payload))

	if len(ref.Preserves) != 1 {
		t.Fatalf("preserves: got %d, want 1", len(ref.Preserves))
	}
	claim := ref.Preserves[0]
	if claim.Checked {
		t.Error("bare string claim marked as checked")
	}
	if claim.Text != "amortized cost" {
		t.Errorf("claim text: got %q", claim.Text)
	}
}

func TestRefineCompareWith(t *testing.T) {
	input := `@refine Stack as FastStack
@compare_with LinkedStack
+ cache friendly
+ no per-node allocation
- resize cost
`
	builder, doc, _ := parseSource(t, input)
	node := singleNode(t, builder, doc, ast.NodeRefine)
	ref := builder.Nodes.Refines.Get(uint32(node.Payload))

	if !ref.HasCompare {
		t.Fatal("comparison block missing")
	}
	if builder.Name(ref.Compare.Target) != "LinkedStack" {
		t.Errorf("target: got %q", builder.Name(ref.Compare.Target))
	}
	if len(ref.Compare.Advantages) != 2 || ref.Compare.Advantages[0] != "cache friendly" {
		t.Errorf("advantages: got %+v", ref.Compare.Advantages)
	}
	if len(ref.Compare.Disadvantages) != 1 || ref.Compare.Disadvantages[0] != "resize cost" {
		t.Errorf("disadvantages: got %+v", ref.Compare.Disadvantages)
	}
}

func TestRefineSecondCompareBlockEndsBody(t *testing.T) {
	input := "@refine A as B\n@compare_with X\n+ fast\n@compare_with Y\n+ small"
	builder, doc, _ := parseSource(t, input)

	nodes := docNodes(t, builder, doc)
	if len(nodes) < 2 {
		t.Fatalf("expected refine plus fallback nodes, got %s", nodeKindsString(builder, nodes))
	}
	ref := builder.Nodes.Refines.Get(uint32(nodeOfKind(t, builder, nodes[0], ast.NodeRefine).Payload))
	if !ref.HasCompare || builder.Name(ref.Compare.Target) != "X" {
		t.Errorf("first block lost: %v %q", ref.HasCompare, builder.Name(ref.Compare.Target))
	}
	if nodeKind := builder.Nodes.Get(nodes[1]).Kind; nodeKind != ast.NodeRaw {
		t.Errorf("second block: got %s, want Raw", nodeKind)
	}
}

func TestParseImpl(t *testing.T) {
	input := "@impl FastStack\nfn push(x) {\n  buf.append(x)\n}\n"
	builder, doc, _ := parseSource(t, input)

	node := singleNode(t, builder, doc, ast.NodeImpl)
	impl := builder.Nodes.Impls.Get(uint32(node.Payload))

	if builder.Name(impl.Name) != "FastStack" {
		t.Errorf("name: got %q", builder.Name(impl.Name))
	}
	want := "fn push(x) {\n  buf.append(x)\n}"
	if impl.Body != want {
		t.Errorf("body: got %q, want %q", impl.Body, want)
	}
}

func TestImplBodyStopsAtTopLevel(t *testing.T) {
	builder, doc, _ := parseSource(t, "@impl\nsome body text\n@fn next")
	expectNodeKinds(t, builder, doc, []ast.NodeKind{ast.NodeImpl, ast.NodeFn})

	nodes := docNodes(t, builder, doc)
	impl := builder.Nodes.Impls.Get(uint32(builder.Nodes.Get(nodes[0]).Payload))
	if impl.Name != source.NoStringID {
		t.Errorf("anonymous impl got a name: %q", builder.Name(impl.Name))
	}
	if impl.Body != "some body text" {
		t.Errorf("body: got %q", impl.Body)
	}
}
