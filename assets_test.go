package md2office

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFileAssetResolver(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "pic.png")
	if err := os.WriteFile(file, []byte("fake"), 0o600); err != nil {
		t.Fatal(err)
	}

	var r fileAssetResolver
	if !r.Resolve(file) {
		t.Errorf("Resolve(%q) = false, want true", file)
	}
	if r.Resolve(filepath.Join(dir, "missing.png")) {
		t.Error("Resolve() = true for a missing file")
	}
	if r.Resolve(dir) {
		t.Error("Resolve() = true for a directory")
	}
}

func TestServiceDefaultResolver(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "pic.png")
	if err := os.WriteFile(file, []byte("fake"), 0o600); err != nil {
		t.Fatal(err)
	}

	result, err := New().Convert(context.Background(), Input{
		Markdown: "![ok](" + file + ")\n\n![gone](" + filepath.Join(dir, "gone.png") + ")\n",
		Target:   TargetDocument,
	})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if len(result.Elements) != 2 {
		t.Fatalf("got %d elements, want 2", len(result.Elements))
	}
	if result.Elements[0].MissingAsset {
		t.Error("existing file flagged as missing")
	}
	if !result.Elements[1].MissingAsset {
		t.Error("missing file not flagged")
	}
}

func TestResolveAll(t *testing.T) {
	if !ResolveAll().Resolve("definitely/not/a/file.png") {
		t.Error("ResolveAll resolver rejected a path")
	}
}
