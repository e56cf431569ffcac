package md2office

// BlockKind identifies a Block variant for exhaustive switching.
type BlockKind int

// Block kinds, in no particular order.
const (
	KindHeading BlockKind = iota
	KindParagraph
	KindList
	KindTable
	KindCode
	KindBlockquote
	KindImage
	KindRule
	KindLabel
)

// String returns the lowercase kind name used in serialized output.
func (k BlockKind) String() string {
	switch k {
	case KindHeading:
		return "heading"
	case KindParagraph:
		return "paragraph"
	case KindList:
		return "list"
	case KindTable:
		return "table"
	case KindCode:
		return "code"
	case KindBlockquote:
		return "blockquote"
	case KindImage:
		return "image"
	case KindRule:
		return "rule"
	case KindLabel:
		return "label"
	}
	return "unknown"
}

// Block is one semantically distinct unit of parsed document content.
// Blocks are produced once per parse and are immutable afterwards; the
// mappers hold read-only views into the parsed sequence.
type Block interface {
	Kind() BlockKind
}

// Heading is an ATX heading. Level is whatever the input declared (1-6);
// skipped levels are accepted as-is.
type Heading struct {
	Level int
	Text  StyledText
}

// Paragraph is a run of consecutive plain-text lines merged with single
// spaces.
type Paragraph struct {
	Text StyledText
}

// ListItem is one entry of a List with its resolved nesting depth.
type ListItem struct {
	Depth int // 0..2, clamped by the nesting resolver
	Text  StyledText
}

// List is a run of consecutive list-item lines. Marker characters are not
// semantically meaningful; Ordered records whether the first item used an
// ordinal marker. Numbering restarts per List.
type List struct {
	Ordered bool
	Items   []ListItem
}

// Column alignments, from the table separator row.
const (
	AlignLeft   = "left"
	AlignCenter = "center"
	AlignRight  = "right"
)

// Table is a pipe table with a valid separator row. Column count is fixed
// by the header; ragged rows are right-padded with empty cells.
type Table struct {
	Header     []StyledText
	Rows       [][]StyledText
	Alignments []string // AlignLeft/AlignCenter/AlignRight per column
}

// CodeBlock holds fenced code content verbatim, blank lines included.
// Language is the canonicalized fence tag, empty if none was given.
type CodeBlock struct {
	Language string
	Lines    []string
}

// Blockquote merges consecutive > lines into one paragraph of text.
type Blockquote struct {
	Text StyledText
}

// Image is a block-level image (alone on its line).
type Image struct {
	Alt  string
	Path string
}

// Rule is a horizontal separator. Only emitted when
// Settings.EnableHorizontalRules is set.
type Rule struct{}

// Label is a bold line acting as an inline sub-heading: either a plain
// line whose entire content is one bold span, or a bullet whose content is
// exactly one bold span optionally followed by a colon.
type Label struct {
	Text StyledText
}

func (Heading) Kind() BlockKind    { return KindHeading }
func (Paragraph) Kind() BlockKind  { return KindParagraph }
func (List) Kind() BlockKind       { return KindList }
func (Table) Kind() BlockKind      { return KindTable }
func (CodeBlock) Kind() BlockKind  { return KindCode }
func (Blockquote) Kind() BlockKind { return KindBlockquote }
func (Image) Kind() BlockKind      { return KindImage }
func (Rule) Kind() BlockKind       { return KindRule }
func (Label) Kind() BlockKind      { return KindLabel }
