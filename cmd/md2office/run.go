package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	md2office "github.com/alnah/go-md2office"
	"github.com/alnah/go-md2office/internal/config"
	"github.com/alnah/go-md2office/internal/fileutil"
)

// Worker bounds for batch conversion. Conversions are CPU-cheap, so the
// cap exists mostly to keep file handles and output interleaving sane.
const maxWorkers = 16

// run executes a batch conversion over the discovered files.
func run(flags *cliFlags, inputs []string) error {
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	cfg := config.DefaultConfig()
	if flags.config != "" {
		loaded, err := config.LoadConfig(flags.config)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	target, settings, err := resolveSettings(flags, cfg)
	if err != nil {
		return err
	}

	if len(inputs) == 0 && cfg.Input.DefaultDir != "" {
		inputs = []string{cfg.Input.DefaultDir}
	}
	output := flags.output
	if output == "" {
		output = cfg.Output.DefaultDir
	}

	files, err := discoverFiles(inputs, output)
	if err != nil {
		return err
	}

	svc := md2office.New(md2office.WithSettings(settings))
	preview := flags.htmlPreview || cfg.Preview.Enabled

	workers := flags.workers
	if workers == 0 {
		workers = resolveWorkerCount()
	}
	if workers > len(files) {
		workers = len(files)
	}
	if flags.verbose {
		fmt.Fprintf(os.Stderr, "Converting %d file(s) with %d worker(s)\n", len(files), workers)
	}

	return convertAll(svc, files, target, preview, flags, workers)
}

// convertAll fans the file list out over a bounded worker group.
// The Service is stateless, so one instance serves all workers.
func convertAll(svc *md2office.Service, files []fileToConvert, target string, preview bool, flags *cliFlags, workers int) error {
	jobs := make(chan fileToConvert)
	errCh := make(chan error, len(files))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for file := range jobs {
				if err := convertOne(svc, file, target, preview, flags); err != nil {
					errCh <- fmt.Errorf("%s: %w", file.inputPath, err)
				}
			}
		}()
	}

	for _, file := range files {
		jobs <- file
	}
	close(jobs)
	wg.Wait()
	close(errCh)

	var errs []error
	for err := range errCh {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// convertOne converts a single markdown file and writes its description.
func convertOne(svc *md2office.Service, file fileToConvert, target string, preview bool, flags *cliFlags) error {
	data, err := os.ReadFile(file.inputPath) // #nosec G304 -- input path is user-provided
	if err != nil {
		return err
	}

	ctx := context.Background()
	result, err := svc.Convert(ctx, md2office.Input{
		Markdown: string(data),
		Target:   target,
	})
	if err != nil {
		return err
	}

	if !flags.quiet {
		reportMissingAssets(file.inputPath, result)
	}

	desc, err := md2office.Describe(result, target)
	if err != nil {
		return err
	}

	if err := fileutil.EnsureDir(filepath.Dir(file.outputPath)); err != nil {
		return err
	}
	if err := os.WriteFile(file.outputPath, desc, 0o600); err != nil {
		return err
	}

	if preview {
		if err := writePreview(ctx, string(data), file.outputPath); err != nil {
			return err
		}
	}

	if flags.verbose {
		fmt.Fprintf(os.Stderr, "  %s -> %s\n", file.inputPath, file.outputPath)
	}
	return nil
}

// writePreview renders the source markdown to HTML next to the output.
func writePreview(ctx context.Context, markdown, outputPath string) error {
	html, err := md2office.NewPreviewer().Render(ctx, markdown)
	if err != nil {
		return err
	}
	previewPath := fileutil.ReplaceExtension(outputPath, ".html")
	return os.WriteFile(previewPath, []byte(html), 0o600)
}

// reportMissingAssets logs images that degraded to alt-text fallbacks.
// The conversion itself never fails on them; the log is the caller-side
// half of the degradation contract.
func reportMissingAssets(inputPath string, result *md2office.Result) {
	for _, e := range result.Elements {
		if !e.MissingAsset {
			continue
		}
		if img, ok := e.Block.(md2office.Image); ok {
			fmt.Fprintf(os.Stderr, "warning: %s: missing image asset %q (alt: %q)\n",
				inputPath, img.Path, img.Alt)
		}
	}
}

// resolveSettings merges settings from defaults, config file, and flags,
// in increasing priority.
func resolveSettings(flags *cliFlags, cfg *config.Config) (string, md2office.Settings, error) {
	target := cfg.Conversion.Target
	if flags.target != "" {
		target = flags.target
	}
	if target == "" {
		target = md2office.TargetDocument
	}
	if target != md2office.TargetDocument && target != md2office.TargetDeck {
		return "", md2office.Settings{}, fmt.Errorf("invalid target %q (must be document or deck)", target)
	}

	settings := md2office.DefaultSettings()
	if target == md2office.TargetDeck {
		settings = md2office.DeckSettings()
	}

	// Config file overrides.
	if cfg.Conversion.ContentWidth > 0 {
		settings.ContentWidth = cfg.Conversion.ContentWidth
	}
	if cfg.Conversion.ImageWidth > 0 {
		settings.ImageWidth = cfg.Conversion.ImageWidth
	}
	if cfg.Conversion.TableFont > 0 {
		settings.NominalTableFont = cfg.Conversion.TableFont
	}
	if cfg.Conversion.TableMinFont > 0 {
		settings.TableMinFont = cfg.Conversion.TableMinFont
	}
	if cfg.Conversion.MaxListDepth != nil {
		settings.MaxListDepth = *cfg.Conversion.MaxListDepth
	}
	if cfg.Conversion.HorizontalRules != nil {
		settings.EnableHorizontalRules = *cfg.Conversion.HorizontalRules
	}

	// Flag overrides.
	if flags.contentWidth > 0 {
		settings.ContentWidth = flags.contentWidth
	}
	if flags.imageWidth > 0 {
		settings.ImageWidth = flags.imageWidth
	}
	if flags.tableMinFont > 0 {
		settings.TableMinFont = flags.tableMinFont
	}
	if flags.maxListDepth >= 0 {
		settings.MaxListDepth = flags.maxListDepth
	}
	if flags.rules {
		settings.EnableHorizontalRules = true
	}

	if err := settings.Validate(); err != nil {
		return "", md2office.Settings{}, err
	}
	return target, settings, nil
}

// resolveWorkerCount picks a worker count from GOMAXPROCS (adjusted by
// automaxprocs in containers), bounded to [1, maxWorkers].
func resolveWorkerCount() int {
	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		return 1
	}
	if n > maxWorkers {
		return maxWorkers
	}
	return n
}
