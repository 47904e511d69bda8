package parser

import (
	"fmt"
	"strings"
	"testing"

	"github.com/lememta/sage-lang/internal/ast"
	"github.com/lememta/sage-lang/internal/diag"
	"github.com/lememta/sage-lang/internal/lexer"
	"github.com/lememta/sage-lang/internal/source"
)

func parseSource(t *testing.T, input string) (*ast.Builder, ast.DocID, *diag.Bag) {
	t.Helper()

	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.sage", []byte(input))
	file := fs.Get(fileID)

	bag := diag.NewBag(100)
	reporter := diag.BagReporter{Bag: bag}

	toks := lexer.Tokenize(file, lexer.Options{Reporter: reporter})
	builder := ast.NewBuilder(ast.Hints{}, nil)
	result := ParseTokens(file, toks, builder, Options{Reporter: reporter})

	return builder, result.Doc, bag
}

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}

func docNodes(t *testing.T, builder *ast.Builder, doc ast.DocID) []ast.NodeID {
	t.Helper()
	return builder.Docs.Get(doc).Nodes
}

// singleNode fetches the only top-level node and checks its kind.
func singleNode(t *testing.T, builder *ast.Builder, doc ast.DocID, kind ast.NodeKind) *ast.Node {
	t.Helper()
	nodes := docNodes(t, builder, doc)
	if len(nodes) != 1 {
		t.Fatalf("expected 1 node, got %d: %s", len(nodes), nodeKindsString(builder, nodes))
	}
	return nodeOfKind(t, builder, nodes[0], kind)
}

func nodeOfKind(t *testing.T, builder *ast.Builder, id ast.NodeID, kind ast.NodeKind) *ast.Node {
	t.Helper()
	node := builder.Nodes.Get(id)
	if node.Kind != kind {
		t.Fatalf("node kind: got %s, want %s", node.Kind, kind)
	}
	return node
}

func nodeKindsString(builder *ast.Builder, nodes []ast.NodeID) string {
	parts := make([]string, len(nodes))
	for i, id := range nodes {
		parts[i] = builder.Nodes.Get(id).Kind.String()
	}
	return strings.Join(parts, " ")
}

func expectNodeKinds(t *testing.T, builder *ast.Builder, doc ast.DocID, want []ast.NodeKind) {
	t.Helper()
	nodes := docNodes(t, builder, doc)
	if len(nodes) != len(want) {
		t.Fatalf("got %d nodes (%s), want %d", len(nodes), nodeKindsString(builder, nodes), len(want))
	}
	for i, id := range nodes {
		if got := builder.Nodes.Get(id).Kind; got != want[i] {
			t.Fatalf("node %d: got %s, want %s (doc: %s)", i, got, want[i], nodeKindsString(builder, nodes))
		}
	}
}
