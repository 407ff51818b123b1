package layout

import (
	"testing"

	nodepkg "github.com/wudi/pdftree/node"
	"github.com/wudi/pdftree/style"
)

func TestEngineDefaultsToA4(t *testing.T) {
	e := NewEngine()
	if e.cfg.PageWidth != A4.Width || e.cfg.PageHeight != A4.Height {
		t.Fatalf("default page size = %vx%v, want A4", e.cfg.PageWidth, e.cfg.PageHeight)
	}
}

func TestEngineWithPaperSizeOverridesDefault(t *testing.T) {
	e := NewEngine(WithPaperSize(Letter))
	if e.cfg.PageWidth != Letter.Width || e.cfg.PageHeight != Letter.Height {
		t.Fatalf("page size = %vx%v, want Letter", e.cfg.PageWidth, e.cfg.PageHeight)
	}
}

func TestEngineRenderProducesOnePage(t *testing.T) {
	root := &nodepkg.Node{
		Kind: nodepkg.Page,
		Children: []*nodepkg.Node{
			{Kind: nodepkg.Text, Text: "hello", Style: &style.Style{}},
		},
	}
	e := NewEngine()
	pages := e.Render(root)
	if len(pages) != 1 {
		t.Fatalf("pages = %d, want 1", len(pages))
	}
}

func TestEngineWithMarginsSeedsDefaultPagePadding(t *testing.T) {
	root := &nodepkg.Node{Kind: nodepkg.Page}
	e := NewEngine(WithMargins(40, 40, 40, 40))
	e.Render(root)
	if root.Style.PaddingTop.Resolve(0) != 40 {
		t.Fatalf("PaddingTop = %v, want 40", root.Style.PaddingTop.Resolve(0))
	}
}
