package layout

import (
	nodepkg "github.com/wudi/pdftree/node"
	"github.com/wudi/pdftree/observability"
	"github.com/wudi/pdftree/style"
)

// Engine is the configured entry point for the measure/place/paginate
// pipeline, generalized from wudi-pdfkit's markdown-to-PDF Engine
// (layout/markdown.go in wudi-pdfkit) to this repository's JSON node
// tree.
type Engine struct {
	cfg Config
}

// NewEngine builds an Engine with A4 defaults, applying opts in order.
func NewEngine(opts ...EngineOption) *Engine {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Engine{cfg: cfg}
}

// Render runs build -> measure -> place -> paginate over root and returns
// the ordered pages ready for a renderer to draw.
func (e *Engine) Render(root *nodepkg.Node) []*PageContent {
	applyDefaultMargins(root, e.cfg)
	box := Build(root)
	Measure(box, e.cfg.PageWidth, e.cfg.PageHeight)
	Place(box, 0, e.cfg.PageHeight)

	logger := e.cfg.Logger
	if logger == nil {
		logger = observability.NopLogger{}
	}
	return Paginate(box, logger)
}

// applyDefaultMargins seeds the root page's padding from the engine's
// configured margins when the node declares none of its own.
func applyDefaultMargins(n *nodepkg.Node, cfg Config) {
	if n == nil || n.Kind != nodepkg.Page {
		return
	}
	if n.Style == nil {
		n.Style = &style.Style{}
	}
	st := n.Style
	if st.Padding.Set() || st.PaddingTop.Set() || st.PaddingRight.Set() ||
	st.PaddingBottom.Set() || st.PaddingLeft.Set() {
		return
	}
	st.PaddingTop = style.Pt(cfg.MarginTop)
	st.PaddingRight = style.Pt(cfg.MarginRight)
	st.PaddingBottom = style.Pt(cfg.MarginBottom)
	st.PaddingLeft = style.Pt(cfg.MarginLeft)
}
