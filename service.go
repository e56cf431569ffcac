package md2office

import (
	"context"
	"fmt"
)

// Service orchestrates the markdown-to-description pipeline:
// preprocess, tokenize, annotate table layouts, map to target constructs.
// A Service is stateless beyond its settings; conversions are independent
// and re-entrant, so one Service may serve concurrent callers.
type Service struct {
	settings Settings
	assets   AssetResolver
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithSettings).
func New(opts ...Option) *Service {
	s := &Service{
		settings: DefaultSettings(),
		assets:   fileAssetResolver{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Settings returns the service's effective settings.
func (s *Service) Settings() Settings {
	return s.settings
}

// Convert runs the pipeline and returns the document description for the
// requested target. The context is checked between stages; the stages
// themselves are synchronous, total functions over their inputs.
func (s *Service) Convert(ctx context.Context, input Input) (*Result, error) {
	target := input.Target
	if target == "" {
		target = TargetDocument
	}

	if input.Markdown == "" {
		return nil, ErrEmptyMarkdown
	}
	if target != TargetDocument && target != TargetDeck {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTarget, target)
	}
	if err := s.settings.Validate(); err != nil {
		return nil, err
	}

	settings := s.settings
	if target == TargetDeck {
		// Rules are slide-break markers in the deck target, so the
		// tokenizer must emit them regardless of the document flag.
		settings.EnableHorizontalRules = true
	}

	content := PreprocessMarkdown(input.Markdown)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	blocks := NewTokenizer(settings).Tokenize(content)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &Result{Blocks: blocks}
	switch target {
	case TargetDocument:
		result.Elements = NewDocumentMapper(settings, s.assets).Map(blocks)
	case TargetDeck:
		result.Slides = NewSlideMapper(settings).Map(blocks)
	}

	return result, nil
}
