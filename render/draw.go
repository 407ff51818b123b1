package render

import (
	"github.com/wudi/pdftree/builder"
	"github.com/wudi/pdftree/layout"
	nodepkg "github.com/wudi/pdftree/node"
	"github.com/wudi/pdftree/observability"
	"github.com/wudi/pdftree/style"
)

func toBuilderColor(c style.Color) builder.Color {
	return builder.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255, A: float64(c.A)}
}

// drawBox draws one placed box's own background/border plus its kind-
// specific content, then recurses into its children (rows/cells and
// generic containers never draw content of their own beyond background and
// border, so the same recursive walk covers every node kind).
func drawBox(p *builder.Page, b *layout.LayoutBox, logger observability.Logger) {
	st := b.Node.Style
	llx := float64(b.X)
	ury := float64(b.Y)
	w := float64(b.Width)
	h := float64(b.Height)
	lly := ury - h

	if w > 0 && h > 0 {
		if st.BackgroundColor != nil {
			p.DrawRect(llx, lly, w, h, builder.RectOptions{Fill: true, FillColor: toBuilderColor(*st.BackgroundColor)})
		}
		if st.HasBorder() {
			drawBorder(p, llx, lly, w, h, st.BorderWidths(), st.BorderColors())
		}
	}

	switch b.Node.Kind {
	case nodepkg.Text:
		drawText(p, b, llx, ury)
	case nodepkg.Image:
		drawImageNode(p, b, llx, lly, w, h, logger)
	case nodepkg.SVG:
		drawSVGPlaceholder(p, llx, lly, w, h)
	}

	for _, c := range b.Children {
		drawBox(p, c, logger)
	}
}

func drawBorder(p *builder.Page, llx, lly, w, h float64, widths style.Sides, colors style.ColorSides) {
	if widths.Top > 0 && colors.Top != nil {
		p.DrawRect(llx, lly+h-float64(widths.Top), w, float64(widths.Top),
			builder.RectOptions{Fill: true, FillColor: toBuilderColor(*colors.Top)})
	}
	if widths.Bottom > 0 && colors.Bottom != nil {
		p.DrawRect(llx, lly, w, float64(widths.Bottom),
			builder.RectOptions{Fill: true, FillColor: toBuilderColor(*colors.Bottom)})
	}
	if widths.Left > 0 && colors.Left != nil {
		p.DrawRect(llx, lly, float64(widths.Left), h,
			builder.RectOptions{Fill: true, FillColor: toBuilderColor(*colors.Left)})
	}
	if widths.Right > 0 && colors.Right != nil {
		p.DrawRect(llx+w-float64(widths.Right), lly, float64(widths.Right), h,
			builder.RectOptions{Fill: true, FillColor: toBuilderColor(*colors.Right)})
	}
}

func drawImageNode(p *builder.Page, b *layout.LayoutBox, llx, lly, w, h float64, logger observability.Logger) {
	src := b.Node.Src
	if src == "" {
		return
	}
	raw, err := decodeRawImage(src)
	if err != nil {
		if logger != nil {
			logger.Warn("render: image decode failed", observability.String("src", src), observability.Error("err", err))
		}
		return
	}
	bounds := raw.Bounds()
	dx, dy, dw, dh := fitImage(b.Node.Style.ObjectFit, float64(bounds.Dx()), float64(bounds.Dy()), w, h)
	img := toBuilderImage(downsampleToDisplay(raw, dw, dh))
	p.DrawImage(img, llx+dx, lly+dy, dw, dh, builder.ImageOptions{Opacity: float64(b.Node.Style.OpacityOr())})
}
