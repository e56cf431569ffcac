package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all flags for the md2office command.
type cliFlags struct {
	output       string
	target       string
	config       string
	workers      int
	contentWidth float64
	imageWidth   float64
	tableMinFont float64
	maxListDepth int
	rules        bool
	htmlPreview  bool
	quiet        bool
	verbose      bool
	version      bool
}

// parseFlags parses command-line flags and returns the positional
// arguments (markdown files or directories).
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("md2office", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.StringVarP(&f.target, "target", "t", "", "conversion target: document, deck")
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")

	fs.Float64Var(&f.contentWidth, "content-width", 0, "available content width in inches")
	fs.Float64Var(&f.imageWidth, "image-width", 0, "fixed image width in inches")
	fs.Float64Var(&f.tableMinFont, "table-min-font", 0, "window-fit font floor in points")
	fs.IntVar(&f.maxListDepth, "max-list-depth", -1, "list nesting limit (0-2, -1 = default)")
	fs.BoolVar(&f.rules, "rules", false, "render horizontal rule lines as separators")
	fs.BoolVar(&f.htmlPreview, "html-preview", false, "write an HTML preview next to each output")

	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-file detail")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() { printUsage(os.Stderr, fs) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// printUsage writes the command help text.
func printUsage(w *os.File, fs *flag.FlagSet) {
	fmt.Fprintln(w, "Usage: md2office [flags] <file.md|directory>...")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Converts markdown into a word-document or slide-deck description")
	fmt.Fprintln(w, "consumable by office-format writers.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprint(w, fs.FlagUsages())
}
