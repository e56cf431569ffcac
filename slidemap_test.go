package md2office

import "testing"

func mapDeck(t *testing.T, markdown string) []Slide {
	t.Helper()
	settings := DeckSettings()
	blocks := NewTokenizer(settings).Tokenize(markdown)
	return NewSlideMapper(settings).Map(blocks)
}

func TestSlideMapperSegmentation(t *testing.T) {
	input := "# Title\n\n## Section\n\n### Content\n- a\n- b\n"
	slides := mapDeck(t, input)

	if len(slides) != 3 {
		t.Fatalf("got %d slides, want 3", len(slides))
	}

	if slides[0].Kind != SlideTitle || slides[0].Title != "Title" {
		t.Errorf("slide 0 = %v %q, want title slide %q", slides[0].Kind, slides[0].Title, "Title")
	}
	if slides[1].Kind != SlideSection || slides[1].Title != "Section" {
		t.Errorf("slide 1 = %v %q, want section slide %q", slides[1].Kind, slides[1].Title, "Section")
	}
	if slides[2].Kind != SlideContent || slides[2].Title != "Content" {
		t.Errorf("slide 2 = %v %q, want content slide %q", slides[2].Kind, slides[2].Title, "Content")
	}

	if len(slides[2].Blocks) != 1 {
		t.Fatalf("content slide has %d blocks, want 1", len(slides[2].Blocks))
	}
	list, ok := slides[2].Blocks[0].Block.(List)
	if !ok {
		t.Fatalf("content block is %T, want List", slides[2].Blocks[0].Block)
	}
	if len(list.Items) != 2 {
		t.Errorf("list has %d items, want 2", len(list.Items))
	}
}

func TestSlideMapperSubtitle(t *testing.T) {
	slides := mapDeck(t, "# Deck Title\n\nA one-line subtitle.\n\n### First\ncontent\n")

	if len(slides) != 2 {
		t.Fatalf("got %d slides, want 2", len(slides))
	}
	if slides[0].Subtitle != "A one-line subtitle." {
		t.Errorf("Subtitle = %q, want %q", slides[0].Subtitle, "A one-line subtitle.")
	}
	// The subtitle paragraph is consumed, not duplicated into content.
	if len(slides[1].Blocks) != 1 {
		t.Errorf("content slide has %d blocks, want 1", len(slides[1].Blocks))
	}
}

func TestSlideMapperFirstTitleWins(t *testing.T) {
	slides := mapDeck(t, "# First\n\n### Body\n\n# Second\n\ntext\n")

	if len(slides) != 2 {
		t.Fatalf("got %d slides, want 2", len(slides))
	}
	if slides[0].Kind != SlideTitle || slides[0].Title != "First" {
		t.Errorf("slide 0 = %v %q, want title %q", slides[0].Kind, slides[0].Title, "First")
	}

	// The second H1 demotes to a label inside the open content slide.
	content := slides[1]
	if len(content.Blocks) != 2 {
		t.Fatalf("content slide has %d blocks, want 2", len(content.Blocks))
	}
	label, ok := content.Blocks[0].Block.(Label)
	if !ok {
		t.Fatalf("first content block is %T, want Label", content.Blocks[0].Block)
	}
	if got := label.Text.PlainString(); got != "Second" {
		t.Errorf("label text = %q, want %q", got, "Second")
	}
}

func TestSlideMapperRuleSplits(t *testing.T) {
	slides := mapDeck(t, "### Topic\n\nfirst part\n\n---\n\nsecond part\n")

	if len(slides) != 2 {
		t.Fatalf("got %d slides, want 2", len(slides))
	}
	if slides[0].Title != "Topic" || slides[0].Continued {
		t.Errorf("slide 0 = %q continued=%v, want %q continued=false",
			slides[0].Title, slides[0].Continued, "Topic")
	}
	if slides[1].Title != "Topic (cont.)" || !slides[1].Continued {
		t.Errorf("slide 1 = %q continued=%v, want %q continued=true",
			slides[1].Title, slides[1].Continued, "Topic (cont.)")
	}
}

func TestSlideMapperRepeatedRuleSplits(t *testing.T) {
	slides := mapDeck(t, "### T\n\na\n\n---\n\nb\n\n---\n\nc\n")

	if len(slides) != 3 {
		t.Fatalf("got %d slides, want 3", len(slides))
	}
	// The suffix does not compound across splits.
	for _, i := range []int{1, 2} {
		if slides[i].Title != "T (cont.)" {
			t.Errorf("slide %d title = %q, want %q", i, slides[i].Title, "T (cont.)")
		}
	}
}

func TestSlideMapperRuleOutsideContentIgnored(t *testing.T) {
	slides := mapDeck(t, "# Title\n\n---\n\n## Section\n")
	if len(slides) != 2 {
		t.Fatalf("got %d slides, want 2", len(slides))
	}
	if slides[0].Kind != SlideTitle || slides[1].Kind != SlideSection {
		t.Errorf("kinds = %v %v, want title, section", slides[0].Kind, slides[1].Kind)
	}
}

func TestSlideMapperDeepHeadingsDemote(t *testing.T) {
	slides := mapDeck(t, "### Content\n\n#### Sub\n\ntext\n")

	if len(slides) != 1 {
		t.Fatalf("got %d slides, want 1", len(slides))
	}
	if len(slides[0].Blocks) != 2 {
		t.Fatalf("content slide has %d blocks, want 2", len(slides[0].Blocks))
	}
	if _, ok := slides[0].Blocks[0].Block.(Label); !ok {
		t.Errorf("first block is %T, want Label", slides[0].Blocks[0].Block)
	}
}

func TestSlideMapperContentBeforeHeadingDropped(t *testing.T) {
	slides := mapDeck(t, "stray paragraph\n\n### First\nkept\n")

	if len(slides) != 1 {
		t.Fatalf("got %d slides, want 1", len(slides))
	}
	if len(slides[0].Blocks) != 1 {
		t.Errorf("content slide has %d blocks, want 1", len(slides[0].Blocks))
	}
}

func TestSlideMapperEmptyContentSlideEmitted(t *testing.T) {
	slides := mapDeck(t, "### Empty\n\n### Next\ntext\n")

	if len(slides) != 2 {
		t.Fatalf("got %d slides, want 2", len(slides))
	}
	if len(slides[0].Blocks) != 0 {
		t.Errorf("first slide has %d blocks, want 0", len(slides[0].Blocks))
	}
}

func TestSlideMapperIdenticalTitlesStaySeparate(t *testing.T) {
	slides := mapDeck(t, "### Same\na\n\n### Same\nb\n")

	if len(slides) != 2 {
		t.Fatalf("got %d slides, want 2", len(slides))
	}
	for i, s := range slides {
		if len(s.Blocks) != 1 {
			t.Errorf("slide %d has %d blocks, want 1", i, len(s.Blocks))
		}
	}
}

func TestSlideMapperTableLayout(t *testing.T) {
	slides := mapDeck(t, "### Data\n\n| A | B |\n| --- | --- |\n| 1 | 2 |\n")

	if len(slides) != 1 {
		t.Fatalf("got %d slides, want 1", len(slides))
	}
	sb := slides[0].Blocks[0]
	if _, ok := sb.Block.(Table); !ok {
		t.Fatalf("block is %T, want Table", sb.Block)
	}
	if sb.Layout == nil {
		t.Fatal("table block has nil Layout")
	}
	if sb.Layout.Mode != FitContents {
		t.Errorf("Mode = %v, want FitContents against the wide deck canvas", sb.Layout.Mode)
	}
}

func TestSlideMapperEmptyInput(t *testing.T) {
	if slides := mapDeck(t, ""); len(slides) != 0 {
		t.Errorf("got %d slides, want 0", len(slides))
	}
}
