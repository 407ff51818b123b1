package layout

import (
	"testing"

	nodepkg "github.com/wudi/pdftree/node"
	"github.com/wudi/pdftree/style"
)

// scenario 2.
func TestPlaceRowFlexDistribution(t *testing.T) {
	a := &nodepkg.Node{Kind: nodepkg.View, Style: &style.Style{Flex: 1}}
	bb := &nodepkg.Node{Kind: nodepkg.View, Style: &style.Style{Flex: 2}}
	row := &nodepkg.Node{
		Kind: nodepkg.View,
		Style: &style.Style{Direction: style.Row, Width: style.Pt(300), Gap: 10},
		Children: []*nodepkg.Node{a, bb},
	}

	box := Build(row)
	Measure(box, 595, 842)
	Place(box, 0, 842)

	childA, childB := box.Children[0], box.Children[1]
	if want := float32(96.667); !almostEqual(childA.Width, want, 0.01) {
		t.Fatalf("A.Width = %v, want %v", childA.Width, want)
	}
	if want := float32(193.333); !almostEqual(childB.Width, want, 0.01) {
		t.Fatalf("B.Width = %v, want %v", childB.Width, want)
	}
	if childA.X != box.X {
		t.Fatalf("A.X = %v, want %v", childA.X, box.X)
	}
	if want := childA.X + childA.Width + 10; !almostEqual(childB.X, want, 0.01) {
		t.Fatalf("B.X = %v, want %v", childB.X, want)
	}
}

// scenario 3.
func TestPlaceColumnSpaceBetween(t *testing.T) {
	mk := func() *nodepkg.Node { return &nodepkg.Node{Kind: nodepkg.View, Style: &style.Style{Height: style.Pt(50)}} }
	container := &nodepkg.Node{
		Kind: nodepkg.View,
		Style: &style.Style{Height: style.Pt(300), MainAlign: style.MainSpaceBetween},
		Children: []*nodepkg.Node{mk(), mk(), mk()},
	}

	box := Build(container)
	Measure(box, 595, 842)
	Place(box, 0, 300)

	top := box.Y
	first, middle, last := box.Children[0], box.Children[1], box.Children[2]
	if first.Y != top {
		t.Fatalf("first.Y = %v, want %v", first.Y, top)
	}
	wantMiddle := top - (50 + (300-150)/2)
	if !almostEqual(middle.Y, wantMiddle, 0.01) {
		t.Fatalf("middle.Y = %v, want %v", middle.Y, wantMiddle)
	}
	lastBottom := last.Y - last.Height
	wantBottom := top - 300
	if !almostEqual(lastBottom, wantBottom, 0.01) {
		t.Fatalf("last bottom = %v, want %v", lastBottom, wantBottom)
	}
}

func TestPlaceColumnNoGapStartAlignsTopDown(t *testing.T) {
	mk := func(h float32) *nodepkg.Node {
		return &nodepkg.Node{Kind: nodepkg.View, Style: &style.Style{Height: style.Pt(h)}}
	}
	container := &nodepkg.Node{
		Kind: nodepkg.View,
		Children: []*nodepkg.Node{mk(10), mk(20), mk(30)},
	}
	box := Build(container)
	Measure(box, 595, 842)
	Place(box, 0, 842)

	top := box.Y
	if box.Children[0].Y != top {
		t.Fatalf("child0.Y = %v, want %v", box.Children[0].Y, top)
	}
	if want := top - 10; !almostEqual(box.Children[1].Y, want, 0.01) {
		t.Fatalf("child1.Y = %v, want %v", box.Children[1].Y, want)
	}
	if want := top - 30; !almostEqual(box.Children[2].Y, want, 0.01) {
		t.Fatalf("child2.Y = %v, want %v", box.Children[2].Y, want)
	}
}

func TestPlaceAbsoluteChildDoesNotAffectParentSize(t *testing.T) {
	top := float32(5)
	left := float32(5)
	abs := &nodepkg.Node{
		Kind: nodepkg.View,
		Style: &style.Style{Position: style.Absolute, Width: style.Pt(500), Height: style.Pt(500), Top: &top, Left: &left},
	}
	flowChild := &nodepkg.Node{Kind: nodepkg.View, Style: &style.Style{Height: style.Pt(10)}}
	container := &nodepkg.Node{
		Kind: nodepkg.View,
		Style: &style.Style{Padding: style.Pt(2)},
		Children: []*nodepkg.Node{flowChild, abs},
	}

	box := Build(container)
	Measure(box, 595, 842)
	Place(box, 0, 842)

	if box.Height != 14 { // 10 content + 2 top + 2 bottom padding, absolute child ignored
		t.Fatalf("parent height = %v, want 14", box.Height)
	}
	absBox := box.Children[1]
	if want := box.X + 2 + left; !almostEqual(absBox.X, want, 0.01) {
		t.Fatalf("absolute X = %v, want %v", absBox.X, want)
	}
	if want := box.Y - 2 - top; !almostEqual(absBox.Y, want, 0.01) {
		t.Fatalf("absolute Y = %v, want %v", absBox.Y, want)
	}
}

func TestPlaceIsIdempotentAcrossRepeatedCalls(t *testing.T) {
	a := &nodepkg.Node{Kind: nodepkg.View, Style: &style.Style{Flex: 1}}
	row := &nodepkg.Node{
		Kind: nodepkg.View,
		Style: &style.Style{Direction: style.Row, Width: style.Pt(200)},
		Children: []*nodepkg.Node{a},
	}
	box := Build(row)
	Measure(box, 595, 842)
	Place(box, 0, 842)
	firstWidth := box.Children[0].Width
	Place(box, 0, 842)
	secondWidth := box.Children[0].Width
	if !almostEqual(firstWidth, secondWidth, 0.001) {
		t.Fatalf("flex grow accumulated across place calls: %v != %v", firstWidth, secondWidth)
	}
}
