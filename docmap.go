package md2office

import "fmt"

// Style names emitted for the word-document target. Writers key their
// formatting off these; the names follow word-processor conventions.
const (
	StyleBody          = "Body Text"
	StyleCode          = "Code Block"
	StyleQuote         = "Quote"
	StyleLabel         = "Label"
	StyleRule          = "Rule"
	StyleImage         = "Image"
	StyleImageFallback = "Image Fallback"
	StyleTable         = "Table Grid"
)

// DocElement is one word-document construct with its layout directives.
// Block is a read-only view into the parsed sequence; list blocks are
// split into one element per item without mutating the source block.
type DocElement struct {
	Block      Block
	Item       *ListItem // set for list-item elements only
	Style      string
	Alignment  string       // "" means writer default
	Layout     *TableLayout // set for tables only
	ImageWidth float64      // inches, set for images only

	// MissingAsset marks an image whose path did not resolve. The
	// element degrades to an alt-text fallback; callers should log it.
	MissingAsset bool
}

// DocumentMapper translates the block sequence into word-document
// constructs. It holds no mutable state and is safe for reuse.
type DocumentMapper struct {
	settings Settings
	assets   AssetResolver
}

// NewDocumentMapper creates a mapper for the word-document target.
// A nil resolver falls back to the local filesystem.
func NewDocumentMapper(s Settings, assets AssetResolver) *DocumentMapper {
	if assets == nil {
		assets = fileAssetResolver{}
	}
	return &DocumentMapper{settings: s, assets: assets}
}

// Map emits one or more elements per block, preserving read order.
// There are no page or slide limits in this target; every block maps.
func (m *DocumentMapper) Map(blocks []Block) []DocElement {
	var elements []DocElement

	for _, block := range blocks {
		switch b := block.(type) {
		case Heading:
			elements = append(elements, m.mapHeading(b))
		case Paragraph:
			elements = append(elements, DocElement{Block: b, Style: StyleBody})
		case List:
			elements = append(elements, m.mapList(b)...)
		case Table:
			elements = append(elements, m.mapTable(b))
		case CodeBlock:
			elements = append(elements, DocElement{Block: b, Style: StyleCode})
		case Blockquote:
			elements = append(elements, DocElement{Block: b, Style: StyleQuote})
		case Image:
			elements = append(elements, m.mapImage(b))
		case Rule:
			elements = append(elements, DocElement{Block: b, Style: StyleRule, Alignment: AlignCenter})
		case Label:
			elements = append(elements, DocElement{Block: b, Style: StyleLabel})
		}
	}

	return elements
}

// mapHeading maps heading levels 1:1; top-level headings are centered,
// matching title-page convention.
func (m *DocumentMapper) mapHeading(h Heading) DocElement {
	e := DocElement{Block: h, Style: HeadingStyle(h.Level)}
	if h.Level == 1 {
		e.Alignment = AlignCenter
	}
	return e
}

// mapList splits a list block into per-item elements styled by
// (ordered, depth).
func (m *DocumentMapper) mapList(l List) []DocElement {
	elements := make([]DocElement, len(l.Items))
	for i := range l.Items {
		elements[i] = DocElement{
			Block: l,
			Item:  &l.Items[i],
			Style: ListStyle(l.Ordered, l.Items[i].Depth),
		}
	}
	return elements
}

// mapTable annotates the table with its layout decision.
func (m *DocumentMapper) mapTable(t Table) DocElement {
	layout := LayoutTable(NaturalWidths(t), m.settings.ContentWidth,
		m.settings.NominalTableFont, m.settings.TableMinFont)
	return DocElement{Block: t, Style: StyleTable, Layout: &layout}
}

// mapImage places images at the configured fixed width, centered.
// Unresolved paths degrade to an italic alt-text fallback flagged for
// the caller to log.
func (m *DocumentMapper) mapImage(img Image) DocElement {
	if !m.assets.Resolve(img.Path) {
		return DocElement{
			Block:        img,
			Style:        StyleImageFallback,
			MissingAsset: true,
		}
	}
	return DocElement{
		Block:      img,
		Style:      StyleImage,
		Alignment:  AlignCenter,
		ImageWidth: m.settings.ImageWidth,
	}
}

// HeadingStyle returns the writer style name for a heading level.
func HeadingStyle(level int) string {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return fmt.Sprintf("Heading %d", level)
}

// ListStyle returns the writer style name for a list item keyed by
// (ordered, depth). Depth 0 uses the bare style name, deeper levels the
// numbered variants, following word-processor style conventions.
func ListStyle(ordered bool, depth int) string {
	base := "List Bullet"
	if ordered {
		base = "List Number"
	}
	if depth <= 0 {
		return base
	}
	if depth > 2 {
		depth = 2
	}
	return fmt.Sprintf("%s %d", base, depth+1)
}
