package layout

import (
	"math"
	"testing"

	nodepkg "github.com/wudi/pdftree/node"
	"github.com/wudi/pdftree/style"
)

func almostEqual(a, b, eps float32) bool {
	return math.Abs(float64(a-b)) <= float64(eps)
}

// scenario 1.
func TestMeasureSingleTextLine(t *testing.T) {
	n := &nodepkg.Node{Kind: nodepkg.Text, Text: "Hello", Style: &style.Style{FontSize: 12}}
	b := Build(n)
	Measure(b, 595, 842)

	if len(b.Lines) != 1 || b.Lines[0] != "Hello" {
		t.Fatalf("Lines = %+v", b.Lines)
	}
	if want := float32(27.336); !almostEqual(b.Width, want, 0.01) {
		t.Fatalf("Width = %v, want %v", b.Width, want)
	}
	if want := float32(16.8); !almostEqual(b.Height, want, 0.01) {
		t.Fatalf("Height = %v, want %v", b.Height, want)
	}
}

func TestMeasureTextWrapRespectsMaxWidth(t *testing.T) {
	n := &nodepkg.Node{
		Kind: nodepkg.Text,
		Text: "one two three four five six seven eight",
		Style: &style.Style{
			FontSize: 12,
			Width: style.Pt(80),
		},
	}
	b := Build(n)
	Measure(b, 595, 842)

	if len(b.Lines) < 2 {
		t.Fatalf("expected wrapping into multiple lines, got %+v", b.Lines)
	}
	if b.Width != 80 {
		t.Fatalf("Width = %v, want 80", b.Width)
	}
}

func TestMeasureEmptyTextYieldsOneEmptyLine(t *testing.T) {
	n := &nodepkg.Node{Kind: nodepkg.Text, Style: &style.Style{}}
	b := Build(n)
	Measure(b, 595, 842)
	if len(b.Lines) != 1 || b.Lines[0] != "" {
		t.Fatalf("Lines = %+v, want one empty line", b.Lines)
	}
}

func TestMeasureImageDefaultsTo100(t *testing.T) {
	n := &nodepkg.Node{Kind: nodepkg.Image, Style: &style.Style{}}
	b := Build(n)
	Measure(b, 595, 842)
	if b.Width != 100 || b.Height != 100 {
		t.Fatalf("size = %vx%v, want 100x100", b.Width, b.Height)
	}
}

// scenario 4.
func TestMeasurePercentWidthOfParent(t *testing.T) {
	parent := &nodepkg.Node{Kind: nodepkg.View, Style: &style.Style{Width: style.Pt(400)}}
	child := &nodepkg.Node{Kind: nodepkg.View, Style: &style.Style{Width: style.Percent(50)}}
	parent.Children = []*nodepkg.Node{child}

	b := Build(parent)
	Measure(b, 595, 842)

	if b.Children[0].Width != 200 {
		t.Fatalf("child width = %v, want 200", b.Children[0].Width)
	}
}

// / §9: percent height collapses to 0 under an auto-height ancestor.
func TestMeasurePercentHeightCollapsesWithoutExplicitAncestorHeight(t *testing.T) {
	parent := &nodepkg.Node{Kind: nodepkg.View, Style: &style.Style{}}
	child := &nodepkg.Node{Kind: nodepkg.View, Style: &style.Style{Height: style.Percent(100)}}
	parent.Children = []*nodepkg.Node{child}

	b := Build(parent)
	Measure(b, 595, 842)

	if b.Children[0].Height != 0 {
		t.Fatalf("child height = %v, want 0 (collapsed)", b.Children[0].Height)
	}
}

func TestMeasurePercentHeightResolvesUnderPage(t *testing.T) {
	page := &nodepkg.Node{Kind: nodepkg.Page, Style: &style.Style{}}
	child := &nodepkg.Node{Kind: nodepkg.View, Style: &style.Style{Height: style.Percent(50)}}
	page.Children = []*nodepkg.Node{child}

	b := Build(page)
	Measure(b, 595, 842)

	if b.Children[0].Height != 421 {
		t.Fatalf("child height = %v, want 421 (50%% of 842)", b.Children[0].Height)
	}
}
