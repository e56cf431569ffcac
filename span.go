package md2office

import (
	"regexp"
	"strings"
)

// SpanKind identifies the inline style of a Span.
type SpanKind int

// Span kinds.
const (
	SpanPlain SpanKind = iota
	SpanBold
	SpanItalic
	SpanCode
	SpanLink
)

// String returns the lowercase kind name used in serialized output.
func (k SpanKind) String() string {
	switch k {
	case SpanPlain:
		return "plain"
	case SpanBold:
		return "bold"
	case SpanItalic:
		return "italic"
	case SpanCode:
		return "code"
	case SpanLink:
		return "link"
	}
	return "unknown"
}

// Span is a contiguous run of text sharing one inline style.
// URL is set only for SpanLink.
type Span struct {
	Kind SpanKind
	Text string
	URL  string
}

// StyledText is an ordered sequence of styled spans.
type StyledText []Span

// PlainString joins the text of all spans, dropping style information.
func (t StyledText) PlainString() string {
	var b strings.Builder
	for _, s := range t {
		b.WriteString(s.Text)
	}
	return b.String()
}

// inlinePattern matches inline markers in precedence order: code spans
// first, then bold, italic, and links. Alternation order is what keeps a
// code span's content from being rescanned for other markers. Unterminated
// markers simply fail to match and stay literal text.
var inlinePattern = regexp.MustCompile("`([^`]+)`" +
	`|\*\*([^*]+)\*\*` +
	`|\*([^*]+)\*` +
	`|\[([^\]]+)\]\(([^)]+)\)`)

// ParseInline turns a raw line into styled spans with no residual
// markdown syntax. It never fails; malformed input degrades to plain
// text. Output is deterministic and order-preserving.
func ParseInline(text string) StyledText {
	if text == "" {
		return nil
	}

	var spans StyledText
	last := 0
	for _, m := range inlinePattern.FindAllStringSubmatchIndex(text, -1) {
		if m[0] > last {
			spans = append(spans, Span{Kind: SpanPlain, Text: text[last:m[0]]})
		}
		spans = append(spans, matchedSpan(text, m))
		last = m[1]
	}
	if last < len(text) {
		spans = append(spans, Span{Kind: SpanPlain, Text: text[last:]})
	}
	return spans
}

// matchedSpan builds the span for one inlinePattern match. Submatch index
// pairs follow the alternation order: 1=code, 2=bold, 3=italic, 4/5=link.
func matchedSpan(text string, m []int) Span {
	switch {
	case m[2] >= 0:
		return Span{Kind: SpanCode, Text: text[m[2]:m[3]]}
	case m[4] >= 0:
		return Span{Kind: SpanBold, Text: text[m[4]:m[5]]}
	case m[6] >= 0:
		return Span{Kind: SpanItalic, Text: text[m[6]:m[7]]}
	default:
		return Span{Kind: SpanLink, Text: text[m[8]:m[9]], URL: text[m[10]:m[11]]}
	}
}

// isLabelText reports whether spans form label content: exactly one bold
// span, optionally followed by a bare colon. Used for both plain-line and
// bullet-line label detection.
func isLabelText(spans StyledText, allowTrailingColon bool) bool {
	switch len(spans) {
	case 1:
		return spans[0].Kind == SpanBold
	case 2:
		return allowTrailingColon &&
			spans[0].Kind == SpanBold &&
			spans[1].Kind == SpanPlain &&
			strings.TrimSpace(spans[1].Text) == ":"
	}
	return false
}
