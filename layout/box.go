// Package layout implements the two-pass measure/place engine, the table
// grid solver, and the paginator: it turns a decoded node tree into
// absolutely-positioned rectangles on one or more fixed-size pages.
package layout

import (
	nodepkg "github.com/wudi/pdftree/node"
	"github.com/wudi/pdftree/style"
)

// LayoutBox mirrors one node of the input tree plus everything measure and
// place compute for it. Coordinates use the PDF convention:
// origin at the page's bottom-left, Y is a box's top edge, height grows
// downward (subtracted from Y).
type LayoutBox struct {
	Node *nodepkg.Node

	X, Y, Width, Height float32

	MarginTop, MarginRight, MarginBottom, MarginLeft float32
	PadTop, PadRight, PadBottom, PadLeft float32

	// MeasuredWidth/Height snapshot the size measure produced, before place's
	// flex-grow mutates Width/Height. Place resets from these on every call
	// so repeated placement never accumulates growth.
	MeasuredWidth, MeasuredHeight float32

	Children []*LayoutBox
	Lines []string
	Table *TableLayout
}

// TableLayout holds the table solver's column widths and row heights.
type TableLayout struct {
	ColumnWidths []float32
	RowHeights []float32
}

// PageContent is one paginated page's worth of already-offset children,
// emitted by Paginate.
type PageContent struct {
	Children []*LayoutBox
	PageStyle *style.Style
	Width float32
	Height float32
	PaddingTop, PaddingRight, PaddingBottom, PaddingLeft float32
}

// OuterWidth is the box's width plus its left/right margins.
func (b *LayoutBox) OuterWidth() float32 { return b.Width + b.MarginLeft + b.MarginRight }

// OuterHeight is the box's height plus its top/bottom margins.
func (b *LayoutBox) OuterHeight() float32 { return b.Height + b.MarginTop + b.MarginBottom }

// IsAbsolute reports whether this box's own style positions it absolutely.
func (b *LayoutBox) IsAbsolute() bool { return b.Node.Style.Position == style.Absolute }
