package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lememta/sage-lang/internal/ast"
	"github.com/lememta/sage-lang/internal/parser"
	"github.com/lememta/sage-lang/internal/source"
)

func parseTestDocument(t *testing.T, input string) (*ast.Builder, ast.DocID, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("doc.sage", []byte(input)))
	builder := ast.NewBuilder(ast.Hints{}, nil)
	result := parser.ParseFile(file, builder, parser.Options{})
	return builder, result.Doc, fs
}

const documentInput = `@mod store "key-value store"
@type Entry = { key: Str, value: Int }
@fn get(key: Str) -> Int
@req key is present
ret entries[key]
@spec Store
@inv size >= 0
`

func TestFormatDocumentPretty(t *testing.T) {
	builder, doc, fs := parseTestDocument(t, documentInput)

	var buf bytes.Buffer
	if err := FormatDocumentPretty(&buf, builder, doc, fs); err != nil {
		t.Fatalf("FormatDocumentPretty: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"doc.sage (span:",
		"├─ Node[0]: Module",
		"Name: store",
		`Description: "key-value store"`,
		"Node[1]: Type",
		"Node[2]: Fn",
		"└─ Node[3]: Spec",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestFormatDocumentJSON(t *testing.T) {
	builder, doc, _ := parseTestDocument(t, documentInput)

	var buf bytes.Buffer
	if err := FormatDocumentJSON(&buf, builder, doc); err != nil {
		t.Fatalf("FormatDocumentJSON: %v", err)
	}

	var decoded DocOutput
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output does not round-trip: %v", err)
	}

	wantKinds := []string{"Module", "Type", "Fn", "Spec"}
	if len(decoded.Nodes) != len(wantKinds) {
		t.Fatalf("got %d nodes, want %d", len(decoded.Nodes), len(wantKinds))
	}
	for i, want := range wantKinds {
		if decoded.Nodes[i].Kind != want {
			t.Errorf("node %d: got %s, want %s", i, decoded.Nodes[i].Kind, want)
		}
	}
	if name := decoded.Nodes[0].Fields["name"]; name != "store" {
		t.Errorf("module name: got %v", name)
	}
}

func TestTypeExprString(t *testing.T) {
	builder, doc, _ := parseTestDocument(t, "@type Index = Map<Str, Set<Int>>")
	node := builder.Nodes.Get(builder.Docs.Get(doc).Nodes[0])
	decl := builder.Nodes.Types.Get(uint32(node.Payload))

	if got := typeExprString(builder, decl.Type); got != "Map<Str, Set<Int>>" {
		t.Errorf("got %q", got)
	}
}
