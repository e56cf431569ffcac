package md2office

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrPreviewRender indicates HTML preview rendering failed.
var ErrPreviewRender = errors.New("HTML preview rendering failed")

// previewTemplate wraps the rendered fragment in a complete HTML5
// document for in-browser review.
const previewTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Preview</title>
</head>
<body>
%s
</body>
</html>`

// Previewer renders source markdown to standalone HTML so reviewers can
// inspect content before a writer commits it to an office format. The
// preview reflects the source, not the mapped description; layout
// decisions like table autofit do not apply to it.
type Previewer struct {
	md goldmark.Markdown
}

// NewPreviewer creates a Previewer with GFM tables and syntax
// highlighting via chroma CSS classes.
func NewPreviewer() *Previewer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
		),
	)
	return &Previewer{md: md}
}

// Render converts markdown to a standalone HTML5 document. Goldmark has
// no native context support, so cancellation uses the goroutine + select
// pattern.
func (p *Previewer) Render(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := p.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrPreviewRender, err)}
			return
		}
		done <- result{html: fmt.Sprintf(previewTemplate, buf.String())}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}
