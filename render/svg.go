package render

import (
	"github.com/wudi/pdftree/builder"
)

// drawSVGPlaceholder draws an svg node as an opaque rectangle outline at its
// placed size. Full SVG path parsing and rasterization is explicitly out of
// scope for the core and is not reimplemented here; see DESIGN.md
// for the original's svg.rs, which this deliberately does not port.
func drawSVGPlaceholder(p *builder.Page, llx, lly, w, h float64) {
	p.DrawRect(llx, lly, w, h, builder.RectOptions{Stroke: true, StrokeColor: builder.Color{A: 1}, LineWidth: 0.5})
}
