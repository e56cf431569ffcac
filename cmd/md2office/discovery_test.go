package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("# x\n"), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestDiscoverFilesSingleFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "doc.md")
	touch(t, input)

	files, err := discoverFiles([]string{input}, "")
	if err != nil {
		t.Fatalf("discoverFiles() error = %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("got %d files, want 1", len(files))
	}
	want := filepath.Join(dir, "doc.yaml")
	if files[0].outputPath != want {
		t.Errorf("outputPath = %q, want %q", files[0].outputPath, want)
	}
}

func TestDiscoverFilesDirectory(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.md"))
	touch(t, filepath.Join(dir, "sub", "b.markdown"))
	touch(t, filepath.Join(dir, "skip.txt"))

	files, err := discoverFiles([]string{dir}, "")
	if err != nil {
		t.Fatalf("discoverFiles() error = %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("got %d files, want 2", len(files))
	}
}

func TestDiscoverFilesErrors(t *testing.T) {
	t.Run("no inputs", func(t *testing.T) {
		_, err := discoverFiles(nil, "")
		if !errors.Is(err, ErrNoInput) {
			t.Errorf("error = %v, want %v", err, ErrNoInput)
		}
	})

	t.Run("wrong extension", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "notes.txt")
		touch(t, path)
		_, err := discoverFiles([]string{path}, "")
		if !errors.Is(err, ErrInvalidExtension) {
			t.Errorf("error = %v, want %v", err, ErrInvalidExtension)
		}
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := discoverFiles([]string{filepath.Join(t.TempDir(), "gone.md")}, "")
		if err == nil {
			t.Error("error = nil, want stat failure")
		}
	})
}

func TestResolveOutputPath(t *testing.T) {
	tests := []struct {
		name         string
		inputPath    string
		output       string
		baseInputDir string
		expected     string
	}{
		{
			name:      "next to input by default",
			inputPath: filepath.Join("docs", "a.md"),
			expected:  filepath.Join("docs", "a.yaml"),
		},
		{
			name:      "explicit yaml output used verbatim",
			inputPath: "a.md",
			output:    filepath.Join("out", "custom.yaml"),
			expected:  filepath.Join("out", "custom.yaml"),
		},
		{
			name:      "output directory",
			inputPath: filepath.Join("docs", "a.md"),
			output:    "out",
			expected:  filepath.Join("out", "a.yaml"),
		},
		{
			name:         "directory walk mirrors input tree",
			inputPath:    filepath.Join("docs", "sub", "a.md"),
			output:       "out",
			baseInputDir: "docs",
			expected:     filepath.Join("out", "sub", "a.yaml"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveOutputPath(tt.inputPath, tt.output, tt.baseInputDir)
			if got != tt.expected {
				t.Errorf("resolveOutputPath(%q, %q, %q) = %q, want %q",
					tt.inputPath, tt.output, tt.baseInputDir, got, tt.expected)
			}
		})
	}
}

func TestValidateWorkers(t *testing.T) {
	tests := []struct {
		name    string
		workers int
		wantErr bool
	}{
		{name: "auto", workers: 0, wantErr: false},
		{name: "one", workers: 1, wantErr: false},
		{name: "max", workers: maxWorkers, wantErr: false},
		{name: "negative", workers: -1, wantErr: true},
		{name: "above max", workers: maxWorkers + 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateWorkers(tt.workers)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateWorkers(%d) error = %v, wantErr %v", tt.workers, err, tt.wantErr)
			}
		})
	}
}
