package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2office/internal/fileutil"
)

// Sentinel errors for file discovery.
var (
	ErrNoInput            = errors.New("no input files given")
	ErrInvalidExtension   = errors.New("file must have .md or .markdown extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// descriptionExt is the extension of the serialized document description.
const descriptionExt = ".yaml"

// fileToConvert represents a single file to process.
type fileToConvert struct {
	inputPath  string
	outputPath string
}

// discoverFiles expands the positional arguments into the list of
// markdown files to convert. Directories are walked recursively.
func discoverFiles(inputs []string, output string) ([]fileToConvert, error) {
	if len(inputs) == 0 {
		return nil, ErrNoInput
	}

	var files []fileToConvert
	for _, input := range inputs {
		found, err := discoverPath(input, output)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}
	return files, nil
}

// discoverPath expands one input path.
func discoverPath(inputPath, output string) ([]fileToConvert, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if !fileutil.IsMarkdownFile(inputPath) {
			return nil, fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(inputPath))
		}
		return []fileToConvert{{
			inputPath:  inputPath,
			outputPath: resolveOutputPath(inputPath, output, ""),
		}}, nil
	}

	var files []fileToConvert
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !fileutil.IsMarkdownFile(path) {
			return nil
		}
		files = append(files, fileToConvert{
			inputPath:  path,
			outputPath: resolveOutputPath(path, output, inputPath),
		})
		return nil
	})

	return files, err
}

// resolveOutputPath determines the description output path for one
// markdown file. An output naming a .yaml file is used verbatim;
// anything else is treated as a directory, mirroring the input tree.
func resolveOutputPath(inputPath, output, baseInputDir string) string {
	base := fileutil.ReplaceExtension(filepath.Base(inputPath), descriptionExt)

	if output == "" {
		return filepath.Join(filepath.Dir(inputPath), base)
	}

	if strings.HasSuffix(output, descriptionExt) {
		return output
	}

	if baseInputDir != "" {
		if relPath, err := filepath.Rel(baseInputDir, inputPath); err == nil {
			return filepath.Join(output, filepath.Dir(relPath), base)
		}
	}

	return filepath.Join(output, base)
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > maxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, maxWorkers)
	}
	return nil
}
