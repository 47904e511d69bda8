package source

import (
	"os"
	"path/filepath"
	"testing"
)

func loadTemp(t *testing.T, name string, content []byte) (*FileSet, FileID) {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	return fs, id
}

func TestAddVirtualAndResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.sage", []byte("@mod cache\nlet x = 1\n"))
	file := fs.Get(id)

	if file.Flags&FileVirtual == 0 {
		t.Error("virtual flag not set")
	}

	tests := []struct {
		name     string
		span     Span
		wantLine uint32
		wantCol  uint32
	}{
		{"start of file", Span{File: id, Start: 0, End: 0}, 1, 1},
		{"mid first line", Span{File: id, Start: 5, End: 5}, 1, 6},
		{"start of second line", Span{File: id, Start: 11, End: 11}, 2, 1},
		{"mid second line", Span{File: id, Start: 15, End: 15}, 2, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, _ := fs.Resolve(tt.span)
			if start.Line != tt.wantLine || start.Col != tt.wantCol {
				t.Errorf("got %d:%d, want %d:%d", start.Line, start.Col, tt.wantLine, tt.wantCol)
			}
		})
	}
}

func TestCRLFNormalization(t *testing.T) {
	fs, id := loadTemp(t, "crlf.sage", []byte("@mod a\r\nlet x = 1\r\n"))
	file := fs.Get(id)

	if file.Flags&FileNormalizedCRLF == 0 {
		t.Error("CRLF flag not set")
	}
	if string(file.Content) != "@mod a\nlet x = 1\n" {
		t.Errorf("content not normalized: %q", file.Content)
	}

	// Offsets refer to the normalized content.
	start, _ := fs.Resolve(Span{File: id, Start: 7, End: 7})
	if start.Line != 2 || start.Col != 1 {
		t.Errorf("got %d:%d, want 2:1", start.Line, start.Col)
	}
}

func TestBOMRemoval(t *testing.T) {
	fs, id := loadTemp(t, "bom.sage", []byte("\xEF\xBB\xBF@mod a"))
	file := fs.Get(id)

	if file.Flags&FileHadBOM == 0 {
		t.Error("BOM flag not set")
	}
	if string(file.Content) != "@mod a" {
		t.Errorf("BOM not stripped: %q", file.Content)
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("lines.sage", []byte("first\nsecond\nthird"))
	file := fs.Get(id)

	tests := []struct {
		line uint32
		want string
	}{
		{0, ""},
		{1, "first"},
		{2, "second"},
		{3, "third"},
		{4, ""},
	}
	for _, tt := range tests {
		if got := file.GetLine(tt.line); got != tt.want {
			t.Errorf("line %d: got %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestGetLatestTracksNewestVersion(t *testing.T) {
	fs := NewFileSet()
	first := fs.AddVirtual("doc.sage", []byte("v1"))
	second := fs.AddVirtual("doc.sage", []byte("v2"))

	latest, ok := fs.GetLatest("doc.sage")
	if !ok {
		t.Fatal("path not found")
	}
	if latest != second {
		t.Errorf("got %d, want %d (first was %d)", latest, second, first)
	}
	if string(fs.Get(latest).Content) != "v2" {
		t.Errorf("latest content: %q", fs.Get(latest).Content)
	}
}

func TestContentHashIsStable(t *testing.T) {
	fs := NewFileSet()
	a := fs.AddVirtual("a.sage", []byte("same bytes"))
	b := fs.AddVirtual("b.sage", []byte("same bytes"))
	c := fs.AddVirtual("c.sage", []byte("other bytes"))

	if fs.Get(a).Hash != fs.Get(b).Hash {
		t.Error("equal content produced different hashes")
	}
	if fs.Get(a).Hash == fs.Get(c).Hash {
		t.Error("different content produced equal hashes")
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 4, End: 8}
	b := Span{File: 1, Start: 6, End: 15}
	got := a.Cover(b)
	if got.Start != 4 || got.End != 15 {
		t.Errorf("got [%d,%d), want [4,15)", got.Start, got.End)
	}

	// Spans in different files never merge.
	if got := a.Cover(Span{File: 2, Start: 0, End: 100}); got != a {
		t.Errorf("cover across files changed the result: %+v", got)
	}
}
