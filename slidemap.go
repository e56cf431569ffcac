package md2office

// SlideKind tags a slide container.
type SlideKind int

// Slide kinds, driven by heading level.
const (
	SlideTitle   SlideKind = iota // first H1
	SlideSection                  // H2
	SlideContent                  // H3
)

// String returns the lowercase kind name used in serialized output.
func (k SlideKind) String() string {
	switch k {
	case SlideTitle:
		return "title"
	case SlideSection:
		return "section"
	case SlideContent:
		return "content"
	}
	return "unknown"
}

// continuationSuffix marks slides that continue a split content flow.
const continuationSuffix = " (cont.)"

// SlideBlock pairs a content block with its layout decision. Layout is
// set for tables only.
type SlideBlock struct {
	Block  Block
	Layout *TableLayout
}

// Slide is one ordered container of the deck output. Content order
// within a slide follows document read order. The mapper enforces no
// bullet-count limit; overflow handling belongs to the caller.
type Slide struct {
	Kind      SlideKind
	Title     string
	Subtitle  string // title slides only
	Continued bool   // true for rule-split continuation slides
	Blocks    []SlideBlock
}

// SlideMapper segments the block sequence into slides:
//
//   - the first H1 starts the single title slide; later H1s demote to
//     emphasized text inside the current content flow,
//   - each H2 starts a section-divider slide,
//   - each H3 starts a content slide accumulating following non-heading
//     blocks,
//   - a Rule splits the current content slide, continuing under the same
//     title with a continuation suffix.
type SlideMapper struct {
	settings Settings
}

// NewSlideMapper creates a mapper for the slide-deck target.
func NewSlideMapper(s Settings) *SlideMapper {
	return &SlideMapper{settings: s}
}

// Map produces the ordered slide sequence for the block sequence.
func (m *SlideMapper) Map(blocks []Block) []Slide {
	state := &deckState{settings: m.settings}

	for i := 0; i < len(blocks); i++ {
		switch b := blocks[i].(type) {
		case Heading:
			i += state.heading(b, blocks[i+1:])
		case Rule:
			state.split()
		default:
			state.content(b)
		}
	}

	state.flush()
	return state.slides
}

// deckState carries the accumulation state of one mapping pass.
type deckState struct {
	settings  Settings
	slides    []Slide
	pending   *Slide // open content slide, nil when no H3 scope is open
	title     string // current H3 title, without continuation suffix
	seenTitle bool   // first H1 consumed
}

// heading handles one heading block and returns how many following
// blocks it consumed (a title subtitle swallows the next paragraph).
func (s *deckState) heading(h Heading, rest []Block) int {
	switch h.Level {
	case 1:
		if s.seenTitle {
			// First-H1-wins: later H1s demote to emphasized text in
			// the current flow instead of opening a second title slide.
			s.content(Label{Text: h.Text})
			return 0
		}
		s.flush()
		s.seenTitle = true
		slide := Slide{Kind: SlideTitle, Title: h.Text.PlainString()}
		if len(rest) > 0 {
			if p, ok := rest[0].(Paragraph); ok {
				slide.Subtitle = p.Text.PlainString()
				s.slides = append(s.slides, slide)
				return 1
			}
		}
		s.slides = append(s.slides, slide)
		return 0
	case 2:
		s.flush()
		s.slides = append(s.slides, Slide{Kind: SlideSection, Title: h.Text.PlainString()})
		return 0
	case 3:
		s.flush()
		s.title = h.Text.PlainString()
		s.pending = &Slide{Kind: SlideContent, Title: s.title}
		return 0
	default:
		// H4-H6 have no slide boundary of their own; they demote to
		// emphasized text inside the current content flow.
		s.content(Label{Text: h.Text})
		return 0
	}
}

// content appends a block to the open content slide. Blocks arriving
// before any H3 have no container and are dropped, matching the
// heading-driven segmentation contract.
func (s *deckState) content(b Block) {
	if s.pending == nil {
		return
	}
	sb := SlideBlock{Block: b}
	if t, ok := b.(Table); ok {
		layout := LayoutTable(NaturalWidths(t), s.settings.ContentWidth,
			s.settings.NominalTableFont, s.settings.TableMinFont)
		sb.Layout = &layout
	}
	s.pending.Blocks = append(s.pending.Blocks, sb)
}

// split ends the current content slide at a Rule and continues under the
// same title with the continuation suffix.
func (s *deckState) split() {
	if s.pending == nil {
		return
	}
	s.flush()
	s.pending = &Slide{
		Kind:      SlideContent,
		Title:     s.title + continuationSuffix,
		Continued: true,
	}
}

// flush closes the open content slide, if any. The slide is emitted even
// when it holds no blocks: an H3 always starts exactly one slide.
func (s *deckState) flush() {
	if s.pending == nil {
		return
	}
	s.slides = append(s.slides, *s.pending)
	s.pending = nil
}
