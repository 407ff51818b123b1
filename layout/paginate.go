package layout

import (
	"math"

	nodepkg "github.com/wudi/pdftree/node"
	"github.com/wudi/pdftree/observability"
)

// Paginate slices a placed tree into an ordered sequence of fixed-height
// pages. logger receives Debug-level per-child page-assignment
// traces, the leveled equivalent of the original's eprintln! diagnostics.
func Paginate(root *LayoutBox, logger observability.Logger) []*PageContent {
	if logger == nil {
		logger = observability.NopLogger{}
	}
	resolved := resolveContentRoot(root)
	if resolved == nil {
		return nil
	}
	if resolved.Node.Kind != nodepkg.Page {
		return []*PageContent{singlePage(resolved)}
	}

	contentTop := resolved.Height - resolved.PadTop
	contentBottom := resolved.PadBottom
	contentHeight := contentTop - contentBottom
	if contentHeight <= 0 {
		contentHeight = resolved.Height
		if contentHeight <= 0 {
			contentHeight = 1
		}
	}

	pageChildren := map[int][]*LayoutBox{}
	maxPage := 0
	for _, c := range resolved.Children {
		top := c.Y
		bottom := c.Y - c.Height
		var pageIdx int
		if bottom >= contentBottom {
			pageIdx = 0
		} else {
			pageIdx = int(math.Ceil(float64((contentBottom - bottom) / contentHeight)))
		}
		logger.Debug("paginate: assigned child to page",
			observability.Int("page", pageIdx),
			observability.Int("top", int(top)),
			observability.Int("bottom", int(bottom)),
		)

		clone := cloneSubtree(c)
		if pageIdx > 0 {
			translate(clone, float32(pageIdx)*contentHeight)
		}
		pageChildren[pageIdx] = append(pageChildren[pageIdx], clone)
		if pageIdx > maxPage {
			maxPage = pageIdx
		}
	}

	pages := make([]*PageContent, 0, maxPage+1)
	for i := 0; i <= maxPage; i++ {
		pages = append(pages, &PageContent{
			Children: pageChildren[i],
			PageStyle: resolved.Node.Style,
			Width: resolved.Width,
			Height: resolved.Height,
			PaddingTop: resolved.PadTop,
			PaddingRight: resolved.PadRight,
			PaddingBottom: resolved.PadBottom,
			PaddingLeft: resolved.PadLeft,
		})
	}
	return pages
}

// resolveContentRoot strips page/view wrapper nodes with exactly one
// page/view child.
func resolveContentRoot(b *LayoutBox) *LayoutBox {
	for b != nil {
		if b.Node.Kind != nodepkg.Page && b.Node.Kind != nodepkg.View {
			break
		}
		if len(b.Children) != 1 {
			break
		}
		only := b.Children[0]
		if only.Node.Kind != nodepkg.Page && only.Node.Kind != nodepkg.View {
			break
		}
		b = only
	}
	return b
}

func singlePage(b *LayoutBox) *PageContent {
	return &PageContent{
		Children: []*LayoutBox{b},
		Width: b.Width,
		Height: b.Height,
	}
}

func cloneSubtree(b *LayoutBox) *LayoutBox {
	if b == nil {
		return nil
	}
	clone := *b
	clone.Children = make([]*LayoutBox, len(b.Children))
	for i, c := range b.Children {
		clone.Children[i] = cloneSubtree(c)
	}
	return &clone
}

func translate(b *LayoutBox, dy float32) {
	if b == nil {
		return
	}
	b.Y += dy
	for _, c := range b.Children {
		translate(c, dy)
	}
}
