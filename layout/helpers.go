package layout

import "github.com/wudi/pdftree/style"

// flowChildren splits b's children into flow (non-absolute) order,
// preserving source order; absolute children are handled separately by the
// place pass and contribute nothing to measure.
func flowChildren(b *LayoutBox) []*LayoutBox {
	var out []*LayoutBox
	for _, c := range b.Children {
		if !c.IsAbsolute() {
			out = append(out, c)
		}
	}
	return out
}

func absoluteChildren(b *LayoutBox) []*LayoutBox {
	var out []*LayoutBox
	for _, c := range b.Children {
		if c.IsAbsolute() {
			out = append(out, c)
		}
	}
	return out
}

func applyMargin(b *LayoutBox, containerWidth float32) {
	m := b.Node.Style.MarginTRBL(containerWidth)
	b.MarginTop, b.MarginRight, b.MarginBottom, b.MarginLeft = m.Top, m.Right, m.Bottom, m.Left
}

// wrapLines greedily packs children into row-wrap lines.
func wrapLines(children []*LayoutBox, gap, max float32) [][]*LayoutBox {
	var lines [][]*LayoutBox
	var current []*LayoutBox
	var lineW float32
	for _, c := range children {
		cw := c.OuterWidth()
		tentative := cw
		if len(current) > 0 {
			tentative = lineW + gap + cw
		}
		if tentative > max && len(current) > 0 {
			lines = append(lines, current)
			current = []*LayoutBox{c}
			lineW = cw
		} else {
			current = append(current, c)
			lineW = tentative
		}
	}
	if len(current) > 0 {
		lines = append(lines, current)
	}
	return lines
}

func maxOuterHeight(children []*LayoutBox) float32 {
	var h float32
	for _, c := range children {
		if oh := c.OuterHeight(); oh > h {
			h = oh
		}
	}
	return h
}

// resetFlexSize restores a flow child's main-axis size to what measure
// produced, undoing any grow mutation from a prior place call.
func resetFlexSize(c *LayoutBox, isRow bool) {
	if isRow {
		c.Width = c.MeasuredWidth
	} else {
		c.Height = c.MeasuredHeight
	}
}

// crossDistance is the cross-axis offset from the inner start for a child
// of outerCross size within an inner extent of innerCross.
func crossDistance(align style.CrossAlign, innerCross, outerCross float32) float32 {
	switch align {
	case style.CrossCenter:
		return (innerCross - outerCross) / 2
	case style.CrossEnd:
		return innerCross - outerCross
	default: // start, stretch
		return 0
	}
}
