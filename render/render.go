// Package render turns a paginated layout tree (layout.PageContent) into
// PDF bytes. It is the renderer the core layout engine deliberately stays
// independent of: layout only produces positioned boxes, this
// package is the one place that knows about content streams, fonts, and
// XObjects.
package render

import (
	"fmt"

	"github.com/wudi/pdftree/builder"
	"github.com/wudi/pdftree/layout"
	"github.com/wudi/pdftree/observability"
)

// Options configures a Render call.
type Options struct {
	Logger observability.Logger
}

// Render draws every page in pages and serializes the result to PDF bytes.
func Render(pages []*layout.PageContent, opts Options) ([]byte, error) {
	logger := opts.Logger
	if logger == nil {
		logger = observability.NopLogger{}
	}

	b := builder.NewBuilder()
	for i, pc := range pages {
		p := b.NewPage(float64(pc.Width), float64(pc.Height))
		drawPageBackground(p, pc)
		for _, child := range pc.Children {
			drawBox(p, child, logger)
		}
		b.Finish(p)
		logger.Debug("render: drew page", observability.Int("page", i), observability.Int("children", len(pc.Children)))
	}

	doc, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	data, err := WriteDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	logger.Info("render: wrote document", observability.Int("pages", len(doc.Pages)), observability.Int("bytes", len(data)))
	return data, nil
}

func drawPageBackground(p *builder.Page, pc *layout.PageContent) {
	if pc.PageStyle == nil || pc.PageStyle.BackgroundColor == nil {
		return
	}
	p.DrawRect(0, 0, float64(pc.Width), float64(pc.Height), builder.RectOptions{
		Fill: true,
		FillColor: toBuilderColor(*pc.PageStyle.BackgroundColor),
	})
}
