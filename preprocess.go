package md2office

import (
	"regexp"
	"strings"
)

// Precompiled patterns for preprocessing.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Compress runs of blank lines to one blank line
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)

	// Fenced code block delimiter
	fencedDelimiter = regexp.MustCompile("^```")
)

// PreprocessMarkdown normalizes raw markdown before tokenizing.
// Order matters: line endings first, then whitespace fixes. A blank line
// is a structural boundary for the tokenizer, so runs of blanks collapse
// to a single one - except inside fenced code, which is kept verbatim.
func PreprocessMarkdown(content string) string {
	content = NormalizeLineEndings(content)
	content = TrimTrailingSpace(content)
	return content
}

// NormalizeLineEndings converts \r\n and \r to \n.
func NormalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// CompressBlankLines limits consecutive blank lines to one.
// Exposed for callers that want tighter input; not applied by
// PreprocessMarkdown since the tokenizer treats any run of blanks as a
// single boundary anyway.
func CompressBlankLines(content string) string {
	return multipleBlankLines.ReplaceAllString(content, "\n\n")
}

// TrimTrailingSpace strips trailing spaces and tabs per line, skipping
// lines inside fenced code blocks.
func TrimTrailingSpace(content string) string {
	lines := strings.Split(content, "\n")
	inCode := false
	for i, line := range lines {
		if fencedDelimiter.MatchString(strings.TrimLeft(line, " ")) {
			inCode = !inCode
			lines[i] = strings.TrimRight(line, " \t")
			continue
		}
		if !inCode {
			lines[i] = strings.TrimRight(line, " \t")
		}
	}
	return strings.Join(lines, "\n")
}
