package render

import (
	"bytes"
	"testing"

	nodepkg "github.com/wudi/pdftree/node"
	"github.com/wudi/pdftree/style"

	"github.com/wudi/pdftree/layout"
)

func TestRenderProducesWellFormedPDF(t *testing.T) {
	root := &nodepkg.Node{
		Kind: nodepkg.Page,
		Style: &style.Style{},
		Children: []*nodepkg.Node{
			{Kind: nodepkg.Text, Style: &style.Style{}, Text: "Hello, world"},
		},
	}

	engine := layout.NewEngine()
	pages := engine.Render(root)
	if len(pages) == 0 {
		t.Fatalf("expected at least one page")
	}

	data, err := Render(pages, Options{})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	if !bytes.HasPrefix(data, []byte("%PDF-1.4")) {
		t.Fatalf("missing PDF header, got: %q", data[:minInt(20, len(data))])
	}
	if !bytes.Contains(data, []byte("xref")) {
		t.Fatalf("missing xref table")
	}
	if !bytes.Contains(data, []byte("trailer")) {
		t.Fatalf("missing trailer")
	}
	if !bytes.HasSuffix(bytes.TrimRight(data, "\n"), []byte("%%EOF")) {
		t.Fatalf("missing %%%%EOF trailer")
	}
}

func TestRenderHandlesMultiplePages(t *testing.T) {
	var children []*nodepkg.Node
	for i := 0; i < 30; i++ {
		h := float32(50)
		children = append(children, &nodepkg.Node{
			Kind: nodepkg.View,
			Style: &style.Style{Height: style.Pt(h)},
			Text: "row",
		})
	}
	root := &nodepkg.Node{Kind: nodepkg.Page, Style: &style.Style{}, Children: children}

	engine := layout.NewEngine()
	pages := engine.Render(root)
	if len(pages) < 2 {
		t.Fatalf("expected pagination to span multiple pages, got %d", len(pages))
	}

	data, err := Render(pages, Options{})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("expected non-empty PDF bytes")
	}
}

func TestFitImageContainPreservesAspectRatio(t *testing.T) {
	_, _, w, h := fitImage(style.FitContain, 200, 100, 50, 50)
	if w != 50 {
		t.Fatalf("expected width clamped to box width 50, got %v", w)
	}
	if h != 25 {
		t.Fatalf("expected height 25 to preserve 2:1 ratio, got %v", h)
	}
}

func TestFitImageFillIgnoresAspectRatio(t *testing.T) {
	_, _, w, h := fitImage(style.FitFill, 200, 100, 50, 50)
	if w != 50 || h != 50 {
		t.Fatalf("expected fill to stretch to box size, got %vx%v", w, h)
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
