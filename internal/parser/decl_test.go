package parser

import (
	"testing"

	"github.com/lememta/sage-lang/internal/ast"
)

func TestParseModule(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantName string
		wantDesc string
		hasDesc  bool
	}{
		{
			name:     "bare",
			input:    "@mod cache",
			wantName: "cache",
		},
		{
			name:     "description on the same line",
			input:    `@mod cache "an LRU cache"`,
			wantName: "cache",
			wantDesc: "an LRU cache",
			hasDesc:  true,
		},
		{
			name:     "description on the next line",
			input:    "@mod cache\n\"an LRU cache\"",
			wantName: "cache",
			wantDesc: "an LRU cache",
			hasDesc:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			builder, doc, bag := parseSource(t, tt.input)
			if bag.HasErrors() {
				t.Fatalf("unexpected errors: %s", diagnosticsSummary(bag))
			}

			node := singleNode(t, builder, doc, ast.NodeModule)
			mod := builder.Nodes.Modules.Get(uint32(node.Payload))

			if got := builder.Name(mod.Name); got != tt.wantName {
				t.Errorf("name: got %q, want %q", got, tt.wantName)
			}
			if mod.HasDesc != tt.hasDesc {
				t.Errorf("has description: got %v, want %v", mod.HasDesc, tt.hasDesc)
			}
			if mod.Description != tt.wantDesc {
				t.Errorf("description: got %q, want %q", mod.Description, tt.wantDesc)
			}
		})
	}
}

func TestModuleNextLineStringWithBangIsNotDescription(t *testing.T) {
	// A string followed by '!!' on the next line is a decision, not
	// the module description.
	builder, doc, _ := parseSource(t, "@mod cache\n\"keep it simple\" !!")
	expectNodeKinds(t, builder, doc, []ast.NodeKind{ast.NodeModule, ast.NodeDecision})

	nodes := docNodes(t, builder, doc)
	mod := builder.Nodes.Modules.Get(uint32(builder.Nodes.Get(nodes[0]).Payload))
	if mod.HasDesc {
		t.Fatalf("module stole the decision text as description: %q", mod.Description)
	}
}

func TestParseTypeDecl(t *testing.T) {
	t.Run("plain name", func(t *testing.T) {
		builder, doc, _ := parseSource(t, "@type Size = Int")
		node := singleNode(t, builder, doc, ast.NodeType)
		decl := builder.Nodes.Types.Get(uint32(node.Payload))

		if got := builder.Name(decl.Name); got != "Size" {
			t.Errorf("name: got %q", got)
		}
		te := builder.Types.Get(decl.Type)
		if te.Kind != ast.TypeExprName || builder.Name(te.Name) != "Int" {
			t.Errorf("type: got %s %q", te.Kind, builder.Name(te.Name))
		}
	})

	t.Run("nested generic", func(t *testing.T) {
		builder, doc, _ := parseSource(t, "@type Index = Map<Str, Set<Int>>")
		node := singleNode(t, builder, doc, ast.NodeType)
		decl := builder.Nodes.Types.Get(uint32(node.Payload))

		outer := builder.Types.Get(decl.Type)
		if outer.Kind != ast.TypeExprGeneric || builder.Name(outer.Name) != "Map" {
			t.Fatalf("outer: got %s %q", outer.Kind, builder.Name(outer.Name))
		}
		if len(outer.Args) != 2 {
			t.Fatalf("outer args: got %d, want 2", len(outer.Args))
		}
		if k := builder.Types.Get(outer.Args[0]); k.Kind != ast.TypeExprName || builder.Name(k.Name) != "Str" {
			t.Errorf("key: got %s %q", k.Kind, builder.Name(k.Name))
		}
		inner := builder.Types.Get(outer.Args[1])
		if inner.Kind != ast.TypeExprGeneric || builder.Name(inner.Name) != "Set" {
			t.Fatalf("value: got %s %q", inner.Kind, builder.Name(inner.Name))
		}
		if len(inner.Args) != 1 || builder.Name(builder.Types.Get(inner.Args[0]).Name) != "Int" {
			t.Errorf("inner arg mismatch")
		}
	})

	t.Run("deep nesting", func(t *testing.T) {
		builder, doc, _ := parseSource(t, "@type Deep = A<B<C<D<E>>>>")
		node := singleNode(t, builder, doc, ast.NodeType)
		decl := builder.Nodes.Types.Get(uint32(node.Payload))

		names := []string{"A", "B", "C", "D"}
		id := decl.Type
		for _, want := range names {
			te := builder.Types.Get(id)
			if te.Kind != ast.TypeExprGeneric || builder.Name(te.Name) != want {
				t.Fatalf("level %s: got %s %q", want, te.Kind, builder.Name(te.Name))
			}
			if len(te.Args) != 1 {
				t.Fatalf("level %s: got %d args", want, len(te.Args))
			}
			id = te.Args[0]
		}
		leaf := builder.Types.Get(id)
		if leaf.Kind != ast.TypeExprName || builder.Name(leaf.Name) != "E" {
			t.Fatalf("leaf: got %s %q", leaf.Kind, builder.Name(leaf.Name))
		}
	})

	t.Run("record", func(t *testing.T) {
		builder, doc, _ := parseSource(t, "@type Pair = { first: Int, second: Str }")
		node := singleNode(t, builder, doc, ast.NodeType)
		decl := builder.Nodes.Types.Get(uint32(node.Payload))

		te := builder.Types.Get(decl.Type)
		if te.Kind != ast.TypeExprRecord {
			t.Fatalf("kind: got %s", te.Kind)
		}
		if len(te.Fields) != 2 {
			t.Fatalf("fields: got %d, want 2", len(te.Fields))
		}
		first := builder.Types.GetField(te.Fields[0])
		if builder.Name(first.Name) != "first" || builder.Name(builder.Types.Get(first.Type).Name) != "Int" {
			t.Errorf("first field mismatch")
		}
	})

	t.Run("multi-line record", func(t *testing.T) {
		builder, doc, _ := parseSource(t, "@type Conf = {\n  host: Str,\n  port: Int,\n}")
		node := singleNode(t, builder, doc, ast.NodeType)
		decl := builder.Nodes.Types.Get(uint32(node.Payload))
		te := builder.Types.Get(decl.Type)
		if te.Kind != ast.TypeExprRecord || len(te.Fields) != 2 {
			t.Fatalf("got %s with %d fields", te.Kind, len(te.Fields))
		}
	})

	t.Run("elided rest", func(t *testing.T) {
		builder, doc, _ := parseSource(t, "@type Big = { a: Int, ... }")
		node := singleNode(t, builder, doc, ast.NodeType)
		decl := builder.Nodes.Types.Get(uint32(node.Payload))
		te := builder.Types.Get(decl.Type)
		if te.Kind != ast.TypeExprRecord || len(te.Fields) != 1 {
			t.Fatalf("got %s with %d fields", te.Kind, len(te.Fields))
		}
	})
}

func TestParseFnDecl(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantName   string
		wantParams int
		hasResult  bool
		hasDesc    bool
	}{
		{
			name:     "bare",
			input:    "@fn tick",
			wantName: "tick",
		},
		{
			name:       "params and result",
			input:      "@fn insert(key: Str, value: Int) -> Bool",
			wantName:   "insert",
			wantParams: 2,
			hasResult:  true,
		},
		{
			name:       "untyped parameter",
			input:      "@fn touch(key)",
			wantName:   "touch",
			wantParams: 1,
		},
		{
			name:     "description",
			input:    `@fn clear "drops every entry"`,
			wantName: "clear",
			hasDesc:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			builder, doc, bag := parseSource(t, tt.input)
			if bag.HasErrors() {
				t.Fatalf("unexpected errors: %s", diagnosticsSummary(bag))
			}

			node := singleNode(t, builder, doc, ast.NodeFn)
			fn := builder.Nodes.Fns.Get(uint32(node.Payload))

			if got := builder.Name(fn.Name); got != tt.wantName {
				t.Errorf("name: got %q, want %q", got, tt.wantName)
			}
			if len(fn.Params) != tt.wantParams {
				t.Errorf("params: got %d, want %d", len(fn.Params), tt.wantParams)
			}
			if fn.Result.IsValid() != tt.hasResult {
				t.Errorf("has result: got %v, want %v", fn.Result.IsValid(), tt.hasResult)
			}
			if fn.HasDesc != tt.hasDesc {
				t.Errorf("has description: got %v, want %v", fn.HasDesc, tt.hasDesc)
			}
		})
	}
}

func TestFnContractsKeepSourceOrder(t *testing.T) {
	input := "@fn pop -> Int\n@req size > 0\n@ens size == old size - 1\n@req not frozen"
	builder, doc, _ := parseSource(t, input)

	node := singleNode(t, builder, doc, ast.NodeFn)
	fn := builder.Nodes.Fns.Get(uint32(node.Payload))

	want := []struct {
		kind ast.ContractKind
		text string
	}{
		{ast.ContractReq, "size > 0"},
		{ast.ContractEns, "size == old size - 1"},
		{ast.ContractReq, "not frozen"},
	}
	if len(fn.Contracts) != len(want) {
		t.Fatalf("contracts: got %d, want %d", len(fn.Contracts), len(want))
	}
	for i, w := range want {
		c := builder.Contracts.Get(fn.Contracts[i])
		if c.Kind != w.kind || c.Text != w.text {
			t.Errorf("contract %d: got %s %q, want %s %q", i, c.Kind, c.Text, w.kind, w.text)
		}
	}
}

func TestOpSharesFnShape(t *testing.T) {
	builder, doc, _ := parseSource(t, "@op merge(other: Cache) -> Cache\n@ens result contains both")
	node := singleNode(t, builder, doc, ast.NodeOp)
	fn := builder.Nodes.Fns.Get(uint32(node.Payload))

	if builder.Name(fn.Name) != "merge" || len(fn.Params) != 1 || !fn.Result.IsValid() {
		t.Fatalf("op shape mismatch: %q params=%d result=%v", builder.Name(fn.Name), len(fn.Params), fn.Result.IsValid())
	}
	if len(fn.Contracts) != 1 {
		t.Fatalf("contracts: got %d", len(fn.Contracts))
	}
}

func TestFnBodyEndsAtNextTopLevel(t *testing.T) {
	input := "@fn first\nret 1\n@fn second\nret 2"
	builder, doc, _ := parseSource(t, input)
	expectNodeKinds(t, builder, doc, []ast.NodeKind{ast.NodeFn, ast.NodeFn})

	nodes := docNodes(t, builder, doc)
	for i, id := range nodes {
		fn := builder.Nodes.Fns.Get(uint32(builder.Nodes.Get(id).Payload))
		if len(fn.Body) != 1 {
			t.Fatalf("fn %d body: got %d statements, want 1", i, len(fn.Body))
		}
	}
}

func TestParseSpecDecl(t *testing.T) {
	input := "@spec Stack \"LIFO discipline\"\n@inv size >= 0\n@prop push then pop is identity"
	builder, doc, bag := parseSource(t, input)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %s", diagnosticsSummary(bag))
	}

	node := singleNode(t, builder, doc, ast.NodeSpec)
	spec := builder.Nodes.Specs.Get(uint32(node.Payload))

	if builder.Name(spec.Name) != "Stack" {
		t.Errorf("name: got %q", builder.Name(spec.Name))
	}
	if !spec.HasDesc || spec.Description != "LIFO discipline" {
		t.Errorf("description: got %v %q", spec.HasDesc, spec.Description)
	}
	if len(spec.Contracts) != 2 {
		t.Fatalf("contracts: got %d, want 2", len(spec.Contracts))
	}
	inv := builder.Contracts.Get(spec.Contracts[0])
	if inv.Kind != ast.ContractInv || inv.Text != "size >= 0" {
		t.Errorf("invariant: got %s %q", inv.Kind, inv.Text)
	}
	prop := builder.Contracts.Get(spec.Contracts[1])
	if prop.Kind != ast.ContractProp || prop.Text != "push then pop is identity" {
		t.Errorf("property: got %s %q", prop.Kind, prop.Text)
	}
}

func TestSpecInvariantContinuationLines(t *testing.T) {
	input := "@spec Ordered\n@inv every element\nis smaller than\nits successor\n@prop done"
	builder, doc, _ := parseSource(t, input)

	node := singleNode(t, builder, doc, ast.NodeSpec)
	spec := builder.Nodes.Specs.Get(uint32(node.Payload))

	if len(spec.Contracts) != 2 {
		t.Fatalf("contracts: got %d, want 2", len(spec.Contracts))
	}
	inv := builder.Contracts.Get(spec.Contracts[0])
	want := "every element is smaller than its successor"
	if inv.Text != want {
		t.Errorf("invariant: got %q, want %q", inv.Text, want)
	}
}

func TestSpecDescriptionOnOwnLine(t *testing.T) {
	builder, doc, _ := parseSource(t, "@spec Cache\n\"bounded key-value store\"\n@inv size <= capacity")
	node := singleNode(t, builder, doc, ast.NodeSpec)
	spec := builder.Nodes.Specs.Get(uint32(node.Payload))

	if !spec.HasDesc || spec.Description != "bounded key-value store" {
		t.Errorf("description: got %v %q", spec.HasDesc, spec.Description)
	}
	if len(spec.Contracts) != 1 {
		t.Errorf("contracts: got %d", len(spec.Contracts))
	}
}
