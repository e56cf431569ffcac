package md2office

import (
	"regexp"
	"strings"
)

// Line classification patterns, in the priority order the tokenizer
// applies them. Tie-breaks between rules (e.g. table row vs paragraph
// line) are fixed by this order so parses are reproducible.
var (
	headingPattern = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	trailingHashes = regexp.MustCompile(`\s*#+\s*$`)
	rulePattern    = regexp.MustCompile(`^(-{3,}|\*{3,}|_{3,})$`)
	bulletPattern  = regexp.MustCompile(`^(\s*)([-*+])\s+(.+)$`)
	orderedPattern = regexp.MustCompile(`^(\s*)(\d+)[.)]\s+(.+)$`)
	fencePattern   = regexp.MustCompile("^```\\s*(\\S*)\\s*$")
	imagePattern   = regexp.MustCompile(`^!\[([^\]]*)\]\(([^)]+)\)$`)
	quotePrefix    = regexp.MustCompile(`^>\s?`)
	separatorCells = regexp.MustCompile(`^[|\-:\s]+$`)
)

// Tokenizer splits raw markdown into an ordered sequence of typed blocks.
// It is stateless across calls; Settings are captured at construction.
type Tokenizer struct {
	settings Settings
}

// NewTokenizer creates a tokenizer with the given settings.
func NewTokenizer(s Settings) *Tokenizer {
	return &Tokenizer{settings: s}
}

// Tokenize produces the ordered block sequence for the document text.
// Malformed markdown never errors; unrecognized or broken constructs
// degrade to paragraphs or literal text.
func (t *Tokenizer) Tokenize(content string) []Block {
	lines := strings.Split(content, "\n")
	var blocks []Block

	idx := 0
	for idx < len(lines) {
		stripped := strings.TrimSpace(lines[idx])

		// Blank lines are pure boundaries; accumulating constructs
		// below consume their own runs of lines, so here we just skip.
		if stripped == "" {
			idx++
			continue
		}

		if m := headingPattern.FindStringSubmatch(stripped); m != nil {
			text := trailingHashes.ReplaceAllString(m[2], "")
			blocks = append(blocks, Heading{Level: len(m[1]), Text: ParseInline(strings.TrimSpace(text))})
			idx++
			continue
		}

		if rulePattern.MatchString(stripped) {
			if t.settings.EnableHorizontalRules {
				blocks = append(blocks, Rule{})
			}
			idx++
			continue
		}

		if isListLine(lines[idx]) {
			var consumed int
			blocks, consumed = t.consumeList(blocks, lines[idx:])
			idx += consumed
			continue
		}

		if isPipeLine(stripped) {
			if table, consumed, ok := t.consumeTable(lines[idx:]); ok {
				blocks = append(blocks, table)
				idx += consumed
				continue
			}
			// No separator row follows: not a table. The line stays an
			// ungrouped paragraph of its own, never merged with
			// neighbors.
			blocks = append(blocks, Paragraph{Text: ParseInline(stripped)})
			idx++
			continue
		}

		if m := fencePattern.FindStringSubmatch(stripped); m != nil {
			code, consumed := consumeCode(lines[idx:], m[1])
			blocks = append(blocks, code)
			idx += consumed
			continue
		}

		if strings.HasPrefix(stripped, ">") {
			quote, consumed := consumeBlockquote(lines[idx:])
			blocks = append(blocks, quote)
			idx += consumed
			continue
		}

		if m := imagePattern.FindStringSubmatch(stripped); m != nil {
			blocks = append(blocks, Image{Alt: m[1], Path: m[2]})
			idx++
			continue
		}

		// Plain text: a line whose entire content is one bold span is a
		// label, everything else accumulates into a paragraph.
		if isLabelText(ParseInline(stripped), false) {
			blocks = append(blocks, Label{Text: ParseInline(stripped)})
			idx++
			continue
		}

		para, consumed := consumeParagraph(lines[idx:])
		blocks = append(blocks, para)
		idx += consumed
	}

	return blocks
}

// consumeList accumulates consecutive list-item lines into List blocks,
// emitting Label blocks for bullets whose content is label-form. A label
// bullet splits the surrounding list. When marker equivalence is off, a
// switch between bullet and ordinal markers also splits the list.
func (t *Tokenizer) consumeList(blocks []Block, lines []string) ([]Block, int) {
	var items []ListItem
	ordered := false
	haveMarker := false

	flush := func() {
		if len(items) > 0 {
			blocks = append(blocks, List{Ordered: ordered, Items: items})
			items = nil
			haveMarker = false
		}
	}

	idx := 0
	for idx < len(lines) {
		indent, itemOrdered, text, ok := splitListLine(lines[idx])
		if !ok {
			break
		}

		spans := ParseInline(text)
		if isLabelText(spans, true) {
			flush()
			blocks = append(blocks, Label{Text: spans})
			idx++
			continue
		}

		if haveMarker && !t.settings.ListMarkerEquivalence && itemOrdered != ordered {
			flush()
		}
		if !haveMarker {
			ordered = itemOrdered
			haveMarker = true
		}

		items = append(items, ListItem{
			Depth: ResolveListDepth(indent, t.settings.MaxListDepth),
			Text:  spans,
		})
		idx++
	}

	flush()
	return blocks, idx
}

// splitListLine decomposes a list-item line into its indentation, marker
// kind, and content. ok is false for non-list lines.
func splitListLine(line string) (indent int, ordered bool, text string, ok bool) {
	if m := bulletPattern.FindStringSubmatch(line); m != nil {
		return len(m[1]), false, strings.TrimSpace(m[3]), true
	}
	if m := orderedPattern.FindStringSubmatch(line); m != nil {
		return len(m[1]), true, strings.TrimSpace(m[3]), true
	}
	return 0, false, "", false
}

// consumeTable parses a pipe table. The candidate header line must be
// followed by a separator row (dashes with optional alignment colons) on
// the next non-blank line; otherwise ok is false and nothing is consumed.
// Rows end at the first non-pipe line, blank lines included.
func (t *Tokenizer) consumeTable(lines []string) (Table, int, bool) {
	header := splitCells(lines[0])

	// Find the separator on the next non-blank line.
	sepIdx := -1
	for j := 1; j < len(lines); j++ {
		s := strings.TrimSpace(lines[j])
		if s == "" {
			continue
		}
		if isSeparatorLine(s) {
			sepIdx = j
		}
		break
	}
	if sepIdx < 0 {
		return Table{}, 0, false
	}

	cols := len(header)
	alignments := parseAlignments(strings.TrimSpace(lines[sepIdx]), cols)

	table := Table{
		Header:     make([]StyledText, cols),
		Alignments: alignments,
	}
	for i, cell := range header {
		table.Header[i] = ParseInline(cell)
	}

	idx := sepIdx + 1
	for idx < len(lines) {
		s := strings.TrimSpace(lines[idx])
		if !isPipeLine(s) {
			break
		}
		cells := splitCells(lines[idx])
		row := make([]StyledText, cols)
		for i := 0; i < cols; i++ {
			// Ragged rows are right-padded with empty cells, never
			// an error; extra cells beyond the header are dropped.
			if i < len(cells) {
				row[i] = ParseInline(cells[i])
			}
		}
		table.Rows = append(table.Rows, row)
		idx++
	}

	return table, idx, true
}

// consumeCode collects fenced code content verbatim, blank lines
// included. An unterminated fence runs to end of input.
func consumeCode(lines []string, langTag string) (CodeBlock, int) {
	code := CodeBlock{Language: CanonicalLanguage(langTag)}
	idx := 1
	for idx < len(lines) {
		if strings.TrimSpace(lines[idx]) == "```" {
			idx++
			break
		}
		code.Lines = append(code.Lines, lines[idx])
		idx++
	}
	return code, idx
}

// consumeBlockquote merges consecutive > lines into one paragraph of
// text, stripping the marker and one following space per line. A blank
// line closes the quote.
func consumeBlockquote(lines []string) (Blockquote, int) {
	var parts []string
	idx := 0
	for idx < len(lines) {
		s := strings.TrimSpace(lines[idx])
		if !strings.HasPrefix(s, ">") {
			break
		}
		if text := quotePrefix.ReplaceAllString(s, ""); text != "" {
			parts = append(parts, text)
		}
		idx++
	}
	return Blockquote{Text: ParseInline(strings.Join(parts, " "))}, idx
}

// consumeParagraph merges consecutive plain-text lines, joined with a
// single space, until a blank line or a line matching any other rule.
func consumeParagraph(lines []string) (Paragraph, int) {
	parts := []string{strings.TrimSpace(lines[0])}
	idx := 1
	for idx < len(lines) {
		s := strings.TrimSpace(lines[idx])
		if s == "" || isSpecialLine(s) || isLabelText(ParseInline(s), false) {
			break
		}
		parts = append(parts, s)
		idx++
	}
	return Paragraph{Text: ParseInline(strings.Join(parts, " "))}, idx
}

// isSpecialLine reports whether a stripped line matches any non-paragraph
// rule. Pipe lines count as special even without a separator row, so they
// never merge into a neighboring paragraph.
func isSpecialLine(s string) bool {
	return headingPattern.MatchString(s) ||
		rulePattern.MatchString(s) ||
		isListLine(s) ||
		isPipeLine(s) ||
		fencePattern.MatchString(s) ||
		strings.HasPrefix(s, ">") ||
		imagePattern.MatchString(s)
}

// isListLine reports whether the line is a bullet or ordered list item.
func isListLine(line string) bool {
	return bulletPattern.MatchString(line) || orderedPattern.MatchString(line)
}

// isPipeLine reports whether a stripped line is a candidate table line:
// it starts with a pipe and contains at least one more.
func isPipeLine(s string) bool {
	return strings.HasPrefix(s, "|") && strings.Contains(s[1:], "|")
}

// isSeparatorLine reports whether a stripped line is a table separator
// row: pipes, dashes, colons and spaces only, with at least one dash.
func isSeparatorLine(s string) bool {
	return isPipeLine(s) && separatorCells.MatchString(s) && strings.Contains(s, "-")
}

// splitCells splits a pipe-delimited row into trimmed cell strings,
// tolerating a missing leading or trailing pipe.
func splitCells(line string) []string {
	s := strings.TrimSpace(line)
	s = strings.TrimPrefix(s, "|")
	s = strings.TrimSuffix(s, "|")
	parts := strings.Split(s, "|")
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells
}

// parseAlignments reads per-column alignment from separator cells:
// :---: is centered, ---: is right-aligned, anything else left. The
// result is padded with left alignment to the header column count.
func parseAlignments(sep string, cols int) []string {
	cells := splitCells(sep)
	alignments := make([]string, cols)
	for i := 0; i < cols; i++ {
		alignments[i] = AlignLeft
		if i >= len(cells) {
			continue
		}
		c := cells[i]
		switch {
		case strings.HasPrefix(c, ":") && strings.HasSuffix(c, ":"):
			alignments[i] = AlignCenter
		case strings.HasSuffix(c, ":"):
			alignments[i] = AlignRight
		}
	}
	return alignments
}
