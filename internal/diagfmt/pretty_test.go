package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lememta/sage-lang/internal/diag"
	"github.com/lememta/sage-lang/internal/source"
)

func testBag(t *testing.T, input string, span source.Span) (*diag.Bag, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.sage", []byte(input))
	span.File = fileID

	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.ValEmptyName,
		Message:  "module declaration has no name",
		Primary:  span,
	})
	return bag, fs
}

func TestPrettyHeaderAndUnderline(t *testing.T) {
	// Span covers "cache" on line 1.
	bag, fs := testBag(t, "@mod cache\n", source.Span{Start: 5, End: 10})

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	out := buf.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines:\n%s", len(lines), out)
	}
	if lines[0] != "test.sage:1:6: ERROR VAL3001: module declaration has no name" {
		t.Errorf("header: %q", lines[0])
	}
	if lines[1] != "    1 | @mod cache" {
		t.Errorf("source line: %q", lines[1])
	}
	if lines[2] != strings.Repeat(" ", 8+5)+"^~~~~" {
		t.Errorf("underline: %q", lines[2])
	}
}

func TestPrettyTruncation(t *testing.T) {
	bag, fs := testBag(t, "@mod cache\n", source.Span{Start: 0, End: 4})
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.ValEmptyCondition,
		Message:  "second finding",
		Primary:  source.Span{Start: 5, End: 10},
	})

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Max: 1})
	out := buf.String()

	if !strings.Contains(out, "... and 1 more") {
		t.Errorf("truncation footer missing:\n%s", out)
	}
	if strings.Contains(out, "second finding") {
		t.Errorf("truncated diagnostic printed:\n%s", out)
	}
}

func TestPrettyShowNotes(t *testing.T) {
	bag, fs := testBag(t, "@type X = Int\n@type X = Str\n", source.Span{Start: 20, End: 21})
	items := bag.Items()
	items[0].Notes = []diag.Note{{
		Span: source.Span{File: items[0].Primary.File, Start: 6, End: 7},
		Msg:  "first declared here",
	}}

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{ShowNotes: true})
	if !strings.Contains(buf.String(), "note: first declared here") {
		t.Errorf("note missing:\n%s", buf.String())
	}

	buf.Reset()
	Pretty(&buf, bag, fs, PrettyOpts{})
	if strings.Contains(buf.String(), "first declared here") {
		t.Errorf("note printed without ShowNotes:\n%s", buf.String())
	}
}

func TestPrettyNilBag(t *testing.T) {
	var buf bytes.Buffer
	Pretty(&buf, nil, nil, PrettyOpts{})
	if buf.Len() != 0 {
		t.Errorf("nil bag produced output: %q", buf.String())
	}
}

func TestPathModes(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("specs/test.sage", []byte("@mod a\n"))
	f := fs.Get(fileID)

	if got := formatPath(f, fs, PathModeBasename); got != "test.sage" {
		t.Errorf("basename: got %q", got)
	}
	if got := formatPath(f, fs, PathModeAbsolute); !strings.HasSuffix(got, "specs/test.sage") {
		t.Errorf("absolute: got %q", got)
	}
	if got := formatPath(nil, fs, PathModeAuto); got != "<unknown>" {
		t.Errorf("nil file: got %q", got)
	}
}
