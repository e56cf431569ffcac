package md2office

import "fmt"

// Conversion targets.
const (
	TargetDocument = "document"
	TargetDeck     = "deck"
)

// Settings bounds and defaults. Widths are in inches, fonts in points.
const (
	DefaultContentWidth = 7.5   // letter page minus 0.5" margins
	DefaultDeckWidth    = 12.03 // 13.33" slide minus side margins
	DefaultImageWidth   = 5.5
	DefaultTableFont    = 12.0
	MinTableFont        = 8.0
	DefaultListDepth    = 2
	MaxContentWidth     = 48.0
)

// Settings configures a conversion run. The zero value is not usable;
// start from DefaultSettings. Settings are threaded explicitly through
// every entry point - the package holds no process-wide state.
type Settings struct {
	// EnableHorizontalRules emits Rule blocks for ---/***/___ lines.
	// Off by default for documents: such lines are silently dropped. The
	// deck mapper needs Rule blocks for slide breaks, so deck settings and
	// deck conversions turn this on.
	EnableHorizontalRules bool

	// ImageWidth is the fixed display width for block images, inches.
	ImageWidth float64

	// ListMarkerEquivalence treats -, *, + and 1./1) markers as visually
	// equivalent within a list. Numbering restarts per list block.
	ListMarkerEquivalence bool

	// NominalTableFont is the table font size before any window-fit
	// scaling, points.
	NominalTableFont float64

	// TableMinFont is the floor applied when window-fit shrinks the
	// table font, points.
	TableMinFont float64

	// MaxListDepth saturates list nesting. Indentation beyond the last
	// threshold clamps to this depth.
	MaxListDepth int

	// ContentWidth is the available content width the table layout
	// engine fits against, inches.
	ContentWidth float64
}

// DefaultSettings returns settings matching the word-document target.
func DefaultSettings() Settings {
	return Settings{
		EnableHorizontalRules: false,
		ImageWidth:            DefaultImageWidth,
		ListMarkerEquivalence: true,
		NominalTableFont:      DefaultTableFont,
		TableMinFont:          MinTableFont,
		MaxListDepth:          DefaultListDepth,
		ContentWidth:          DefaultContentWidth,
	}
}

// DeckSettings returns settings matching the slide-deck target. Rules
// are on: they are the slide-break marker.
func DeckSettings() Settings {
	s := DefaultSettings()
	s.ContentWidth = DefaultDeckWidth
	s.EnableHorizontalRules = true
	return s
}

// Validate checks that settings are usable. Content errors never reach
// here; these guard against programmer mistakes like negative widths.
func (s Settings) Validate() error {
	if s.ContentWidth <= 0 || s.ContentWidth > MaxContentWidth {
		return fmt.Errorf("%w: %.2f (must be in (0, %.0f])", ErrInvalidContentWidth, s.ContentWidth, MaxContentWidth)
	}
	if s.ImageWidth <= 0 || s.ImageWidth > s.ContentWidth {
		return fmt.Errorf("%w: %.2f (must be in (0, %.2f])", ErrInvalidImageWidth, s.ImageWidth, s.ContentWidth)
	}
	if s.NominalTableFont <= 0 {
		return fmt.Errorf("%w: nominal %.2f", ErrInvalidTableFont, s.NominalTableFont)
	}
	if s.TableMinFont <= 0 || s.TableMinFont > s.NominalTableFont {
		return fmt.Errorf("%w: floor %.2f (must be in (0, %.2f])", ErrInvalidTableFont, s.TableMinFont, s.NominalTableFont)
	}
	if s.MaxListDepth < 0 || s.MaxListDepth > 2 {
		return fmt.Errorf("%w: %d (must be 0, 1, or 2)", ErrInvalidListDepth, s.MaxListDepth)
	}
	return nil
}

// Input contains conversion parameters.
type Input struct {
	Markdown string // Markdown content (required)
	Target   string // TargetDocument or TargetDeck (default: TargetDocument)
}

// Result is the ordered document description produced by a conversion.
// Blocks is always populated; Elements or Slides is populated depending
// on the target.
type Result struct {
	Blocks   []Block
	Elements []DocElement // word-document target
	Slides   []Slide      // slide-deck target
}

// Option configures a Service.
type Option func(*Service)

// WithSettings replaces the default conversion settings.
// Panics on invalid settings (programmer error, like time.NewTicker).
func WithSettings(s Settings) Option {
	if err := s.Validate(); err != nil {
		panic("md2office: WithSettings: " + err.Error())
	}
	return func(svc *Service) {
		svc.settings = s
	}
}

// WithAssetResolver replaces the resolver used to check image paths.
// The default resolver checks the local filesystem.
func WithAssetResolver(r AssetResolver) Option {
	return func(svc *Service) {
		svc.assets = r
	}
}
