package md2office

import "context"

// DocumentWriter serializes a word-document description into a concrete
// file format. Implementations live outside this package; the core only
// produces the element sequence.
type DocumentWriter interface {
	WriteDocument(ctx context.Context, elements []DocElement) error
}

// DeckWriter serializes a slide-deck description into a concrete file
// format.
type DeckWriter interface {
	WriteDeck(ctx context.Context, slides []Slide) error
}
