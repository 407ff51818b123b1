package layout

import (
	nodepkg "github.com/wudi/pdftree/node"
	"github.com/wudi/pdftree/style"
)

// Place recursively assigns absolute coordinates. (x,y) is the
// top-left corner outside this box's own margin; Place applies the margin,
// then any relative offset, before recursing into children.
func Place(b *LayoutBox, x, y float32) {
	if b == nil {
		return
	}
	b.X = x + b.MarginLeft
	b.Y = y - b.MarginTop
	applyRelativeOffset(b)

	switch b.Node.Kind {
	case nodepkg.Text, nodepkg.Image, nodepkg.SVG:
		return
	case nodepkg.Table:
		placeTable(b)
	default:
		placeContainer(b)
	}
}

func applyRelativeOffset(b *LayoutBox) {
	st := b.Node.Style
	if st.Position != style.Relative {
		return
	}
	if st.Top != nil {
		b.Y -= *st.Top
	}
	if st.Bottom != nil {
		b.Y += *st.Bottom
	}
	if st.Left != nil {
		b.X += *st.Left
	}
	if st.Right != nil {
		b.X -= *st.Right
	}
}

func placeContainer(b *LayoutBox) {
	st := b.Node.Style
	innerW := b.Width - b.PadLeft - b.PadRight
	innerH := b.Height - b.PadTop - b.PadBottom

	flow := flowChildren(b)
	absolute := absoluteChildren(b)

	innerX := b.X + b.PadLeft
	innerTop := b.Y - b.PadTop

	useWrap := st.Wrap && st.Direction == style.Row && st.Width.Set()
	switch {
	case useWrap:
		placeRowWrapLines(flow, st, innerX, innerTop, innerW, innerH)
	case st.Direction == style.Row:
		placeAxis(flow, st, true, innerX, innerTop, innerW, innerH)
	default:
		placeAxis(flow, st, false, innerX, innerTop, innerW, innerH)
	}

	placeAbsoluteChildren(b, absolute)
}

func outerMain(c *LayoutBox, isRow bool) float32 {
	if isRow {
		return c.OuterWidth()
	}
	return c.OuterHeight()
}

func mainStartAndGap(align style.MainAlign, free, gap float32, n int) (start, effGap float32) {
	switch align {
	case style.MainCenter:
		return free / 2, gap
	case style.MainEnd:
		return free, gap
	case style.MainSpaceBetween:
		if n > 1 {
			return 0, gap + free/float32(n-1)
		}
		return 0, gap
	case style.MainSpaceAround:
		return (free / float32(n)) / 2, gap + free/float32(n)
	case style.MainSpaceEvenly:
		return free / float32(n+1), gap + free/float32(n+1)
	default: // start
		return 0, gap
	}
}

// placeAxis applies flex distribution then main/cross positioning to a
// single run of flow children along one axis.
func placeAxis(children []*LayoutBox, st *style.Style, isRow bool, originX, originTop, innerW, innerH float32) {
	if len(children) == 0 {
		return
	}
	gap := st.Gap
	var innerMain, innerCross float32
	if isRow {
		innerMain, innerCross = innerW, innerH
	} else {
		innerMain, innerCross = innerH, innerW
	}

	for _, c := range children {
		resetFlexSize(c, isRow)
	}

	n := len(children)
	var totalFlex, sumOuterMain float32
	for _, c := range children {
		totalFlex += c.Node.Style.Flex
		sumOuterMain += outerMain(c, isRow)
	}
	free := innerMain - sumOuterMain - gap*float32(n-1)
	if free < 0 {
		free = 0
	}
	if totalFlex > 0 {
		perUnit := free / totalFlex
		for _, c := range children {
			grow := perUnit * c.Node.Style.Flex
			if isRow {
				c.Width += grow
			} else {
				c.Height += grow
			}
		}
		sumOuterMain = 0
		for _, c := range children {
			sumOuterMain += outerMain(c, isRow)
		}
		free = innerMain - sumOuterMain - gap*float32(n-1)
		if free < 0 {
			free = 0
		}
	}

	start, effGap := mainStartAndGap(st.MainAlign, free, gap, n)

	cursor := start
	for _, c := range children {
		placeOneInAxis(c, isRow, originX, originTop, innerCross, cursor, st.CrossAlign)
		cursor += outerMain(c, isRow) + effGap
	}
}

func placeOneInAxis(c *LayoutBox, isRow bool, originX, originTop, innerCross, mainCursor float32, crossAlign style.CrossAlign) {
	if crossAlign == style.CrossStretch {
		var before, after float32
		if isRow {
			before, after = c.MarginTop, c.MarginBottom
		} else {
			before, after = c.MarginLeft, c.MarginRight
		}
		size := innerCross - before - after
		if size < 0 {
			size = 0
		}
		if isRow {
			c.Height = size
		} else {
			c.Width = size
		}
	}

	var outerCross float32
	if isRow {
		outerCross = c.OuterHeight()
	} else {
		outerCross = c.OuterWidth()
	}
	crossDist := crossDistance(crossAlign, innerCross, outerCross)

	if isRow {
		Place(c, originX+mainCursor, originTop-crossDist)
	} else {
		Place(c, originX+crossDist, originTop-mainCursor)
	}
}

// placeRowWrapLines positions wrap=true row-direction children line by line.
func placeRowWrapLines(children []*LayoutBox, st *style.Style, originX, originTop, innerW, _ float32) {
	if len(children) == 0 {
		return
	}
	gap := st.Gap
	for _, c := range children {
		resetFlexSize(c, true)
	}
	lines := wrapLines(children, gap, innerW)

	cursorY := originTop
	for li, line := range lines {
		lineHeight := maxOuterHeight(line)

		n := len(line)
		var totalFlex, sumOuterW float32
		for _, c := range line {
			totalFlex += c.Node.Style.Flex
			sumOuterW += c.OuterWidth()
		}
		free := innerW - sumOuterW - gap*float32(n-1)
		if free < 0 {
			free = 0
		}
		if totalFlex > 0 {
			perUnit := free / totalFlex
			for _, c := range line {
				c.Width += perUnit * c.Node.Style.Flex
			}
			sumOuterW = 0
			for _, c := range line {
				sumOuterW += c.OuterWidth()
			}
			free = innerW - sumOuterW - gap*float32(n-1)
			if free < 0 {
				free = 0
			}
		}

		start, effGap := mainStartAndGap(st.MainAlign, free, gap, n)
		cursor := start
		for _, c := range line {
			placeOneInAxis(c, true, originX, cursorY, lineHeight, cursor, st.CrossAlign)
			cursor += c.OuterWidth() + effGap
		}

		cursorY -= lineHeight
		if li < len(lines)-1 {
			cursorY -= gap
		}
	}
}

func placeAbsoluteChildren(b *LayoutBox, absolute []*LayoutBox) {
	for _, c := range absolute {
		cs := c.Node.Style
		var x float32
		switch {
		case cs.Left != nil:
			x = b.X + b.PadLeft + *cs.Left
		case cs.Right != nil:
			x = b.X + b.Width - b.PadRight - c.Width - *cs.Right
		default:
			x = b.X + b.PadLeft
		}
		var y float32
		switch {
		case cs.Top != nil:
			y = b.Y - b.PadTop - *cs.Top
		case cs.Bottom != nil:
			y = b.Y - b.Height + b.PadBottom + c.Height + *cs.Bottom
		default:
			y = b.Y - b.PadTop
		}
		Place(c, x, y)
	}
}
