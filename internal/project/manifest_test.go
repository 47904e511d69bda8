package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}
	return path
}

func TestLoadManifest(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "[package]\nname = \"inventory\"\n\n[check]\npaths = [\"specs\", \"docs\"]\n")

	m, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest returned error: %v", err)
	}
	if m.Name != "inventory" {
		t.Errorf("name: got %q", m.Name)
	}
	if len(m.Paths) != 2 || m.Paths[0] != "specs" || m.Paths[1] != "docs" {
		t.Errorf("paths: got %v", m.Paths)
	}
}

func TestLoadManifestWithoutCheckSection(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "[package]\nname = \"bare\"\n")

	m, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest returned error: %v", err)
	}
	if m.Name != "bare" || len(m.Paths) != 0 {
		t.Errorf("got %+v", m)
	}
}

func TestLoadManifestErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"missing package section", "[check]\npaths = [\".\"]\n", ErrPackageSectionMissing},
		{"missing name", "[package]\n", ErrPackageNameMissing},
		{"blank name", "[package]\nname = \"  \"\n", ErrPackageNameMissing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, t.TempDir(), tt.content)
			_, err := LoadManifest(path)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadManifestRejectsBadTOML(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "[package\nname =")
	if _, err := LoadManifest(path); err == nil {
		t.Fatal("malformed TOML accepted")
	}
}

func TestFindManifestWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[package]\nname = \"demo\"\n")

	nested := filepath.Join(root, "specs", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("failed to create nested dir: %v", err)
	}

	path, ok, err := FindManifest(nested)
	if err != nil {
		t.Fatalf("FindManifest returned error: %v", err)
	}
	if !ok {
		t.Fatal("manifest not found from nested dir")
	}
	if filepath.Dir(path) != root {
		t.Errorf("found %q, want it under %q", path, root)
	}

	gotRoot, ok, err := FindProjectRoot(nested)
	if err != nil || !ok {
		t.Fatalf("FindProjectRoot: ok=%v err=%v", ok, err)
	}
	if gotRoot != root {
		t.Errorf("root: got %q, want %q", gotRoot, root)
	}
}

func TestFindManifestMissing(t *testing.T) {
	_, ok, err := FindManifest(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("found a manifest in an empty dir")
	}
}

func TestDigestCombine(t *testing.T) {
	base := HashContent([]byte("content"))
	extra := HashContent([]byte("extra"))

	if Combine(base) == base {
		t.Error("combine must rehash even without extras")
	}
	if Combine(base, extra) != Combine(base, extra) {
		t.Error("combine is not deterministic")
	}
	if Combine(base, extra) == Combine(extra, base) {
		t.Error("combine ignores order")
	}
}
