package md2office

import (
	"github.com/alnah/go-md2office/internal/yamlutil"
)

// Description is the serializable form of a conversion result. It is the
// hand-off shape for external writers that do not link this package:
// every element and slide is self-contained, with styled text spelled
// out span by span.
type Description struct {
	Target   string        `yaml:"target"`
	Elements []ElementDesc `yaml:"elements,omitempty"`
	Slides   []SlideDesc   `yaml:"slides,omitempty"`
}

// SpanDesc is one styled run of text.
type SpanDesc struct {
	Kind string `yaml:"kind"`
	Text string `yaml:"text"`
	URL  string `yaml:"url,omitempty"`
}

// LayoutDesc is a table layout decision.
type LayoutDesc struct {
	Mode         string    `yaml:"mode"`
	ColumnWidths []float64 `yaml:"columnWidths"`
	FontSize     float64   `yaml:"fontSize"`
	Scale        float64   `yaml:"scale"`
}

// TableDesc is a table's content with per-column alignment.
type TableDesc struct {
	Header     [][]SpanDesc   `yaml:"header"`
	Rows       [][][]SpanDesc `yaml:"rows,omitempty"`
	Alignments []string       `yaml:"alignments"`
}

// CodeDesc is a fenced code block's content.
type CodeDesc struct {
	Language string   `yaml:"language,omitempty"`
	Lines    []string `yaml:"lines"`
}

// ImageDesc is a block image reference.
type ImageDesc struct {
	Alt  string `yaml:"alt"`
	Path string `yaml:"path"`
}

// ItemDesc is one list item with its nesting depth.
type ItemDesc struct {
	Depth int        `yaml:"depth"`
	Text  []SpanDesc `yaml:"text"`
}

// BlockDesc is one serialized block. The content fields are set
// according to Kind.
type BlockDesc struct {
	Kind    string     `yaml:"kind"`
	Level   int        `yaml:"level,omitempty"`
	Depth   int        `yaml:"depth,omitempty"`
	Ordered bool       `yaml:"ordered,omitempty"`
	Text    []SpanDesc `yaml:"text,omitempty"`
	Items   []ItemDesc `yaml:"items,omitempty"`
	Table   *TableDesc `yaml:"table,omitempty"`
	Code    *CodeDesc  `yaml:"code,omitempty"`
	Image   *ImageDesc `yaml:"image,omitempty"`
}

// ElementDesc is one word-document element with its directives.
type ElementDesc struct {
	Style        string      `yaml:"style"`
	Alignment    string      `yaml:"alignment,omitempty"`
	ImageWidth   float64     `yaml:"imageWidth,omitempty"`
	MissingAsset bool        `yaml:"missingAsset,omitempty"`
	Layout       *LayoutDesc `yaml:"layout,omitempty"`
	Block        BlockDesc   `yaml:"block"`
}

// SlideBlockDesc is one slide content entry.
type SlideBlockDesc struct {
	Block  BlockDesc   `yaml:"block"`
	Layout *LayoutDesc `yaml:"layout,omitempty"`
}

// SlideDesc is one slide container.
type SlideDesc struct {
	Kind      string           `yaml:"kind"`
	Title     string           `yaml:"title"`
	Subtitle  string           `yaml:"subtitle,omitempty"`
	Continued bool             `yaml:"continued,omitempty"`
	Blocks    []SlideBlockDesc `yaml:"blocks,omitempty"`
}

// Describe serializes a conversion result to YAML for downstream
// writers. The YAML is a data-shape dump, not an office file; container
// serialization stays with external collaborators.
func Describe(result *Result, target string) ([]byte, error) {
	return yamlutil.Marshal(BuildDescription(result, target))
}

// BuildDescription converts a Result into its serializable form.
func BuildDescription(result *Result, target string) Description {
	desc := Description{Target: target}

	for _, e := range result.Elements {
		desc.Elements = append(desc.Elements, describeElement(e))
	}
	for _, slide := range result.Slides {
		desc.Slides = append(desc.Slides, describeSlide(slide))
	}

	return desc
}

func describeElement(e DocElement) ElementDesc {
	d := ElementDesc{
		Style:        e.Style,
		Alignment:    e.Alignment,
		ImageWidth:   e.ImageWidth,
		MissingAsset: e.MissingAsset,
	}
	if e.Layout != nil {
		d.Layout = describeLayout(e.Layout)
	}
	if e.Item != nil {
		d.Block = BlockDesc{
			Kind:    KindList.String(),
			Depth:   e.Item.Depth,
			Ordered: e.Block.(List).Ordered,
			Text:    describeSpans(e.Item.Text),
		}
		return d
	}
	d.Block = describeBlock(e.Block)
	return d
}

func describeSlide(s Slide) SlideDesc {
	d := SlideDesc{
		Kind:      s.Kind.String(),
		Title:     s.Title,
		Subtitle:  s.Subtitle,
		Continued: s.Continued,
	}
	for _, sb := range s.Blocks {
		entry := SlideBlockDesc{Block: describeBlock(sb.Block)}
		if sb.Layout != nil {
			entry.Layout = describeLayout(sb.Layout)
		}
		d.Blocks = append(d.Blocks, entry)
	}
	return d
}

func describeBlock(b Block) BlockDesc {
	d := BlockDesc{Kind: b.Kind().String()}

	switch v := b.(type) {
	case Heading:
		d.Level = v.Level
		d.Text = describeSpans(v.Text)
	case Paragraph:
		d.Text = describeSpans(v.Text)
	case List:
		// Lists inside slides stay whole; the writer iterates items.
		d.Ordered = v.Ordered
		for _, item := range v.Items {
			d.Items = append(d.Items, ItemDesc{Depth: item.Depth, Text: describeSpans(item.Text)})
		}
	case Table:
		d.Table = describeTable(v)
	case CodeBlock:
		d.Code = &CodeDesc{Language: v.Language, Lines: v.Lines}
	case Blockquote:
		d.Text = describeSpans(v.Text)
	case Image:
		d.Image = &ImageDesc{Alt: v.Alt, Path: v.Path}
	case Rule:
		// kind alone suffices
	case Label:
		d.Text = describeSpans(v.Text)
	}

	return d
}

func describeTable(t Table) *TableDesc {
	d := &TableDesc{Alignments: t.Alignments}
	for _, h := range t.Header {
		d.Header = append(d.Header, describeSpans(h))
	}
	for _, row := range t.Rows {
		var cells [][]SpanDesc
		for _, cell := range row {
			cells = append(cells, describeSpans(cell))
		}
		d.Rows = append(d.Rows, cells)
	}
	return d
}

func describeSpans(text StyledText) []SpanDesc {
	spans := make([]SpanDesc, len(text))
	for i, s := range text {
		spans[i] = SpanDesc{Kind: s.Kind.String(), Text: s.Text, URL: s.URL}
	}
	return spans
}

func describeLayout(l *TableLayout) *LayoutDesc {
	return &LayoutDesc{
		Mode:         l.Mode.String(),
		ColumnWidths: l.ColumnWidths,
		FontSize:     l.FontSize,
		Scale:        l.Scale,
	}
}
