package layout

import (
	"github.com/wudi/pdftree/fontmetrics"
	nodepkg "github.com/wudi/pdftree/node"
	"github.com/wudi/pdftree/style"
)

// Measure recursively sizes box against the content box it was given by its
// parent. It sets Width, Height and, for text boxes, Lines.
func Measure(b *LayoutBox, parentW, parentH float32) {
	if b == nil {
		return
	}
	switch b.Node.Kind {
	case nodepkg.Text:
		measureText(b, parentW, parentH)
	case nodepkg.Image, nodepkg.SVG:
		measureMedia(b, parentW, parentH)
	case nodepkg.Table:
		measureTable(b, parentW, parentH)
	default: // Page, View, Row, Cell
		measureContainer(b, parentW, parentH)
	}
	b.MeasuredWidth, b.MeasuredHeight = b.Width, b.Height
}

func measureText(b *LayoutBox, parentW, _ float32) {
	st := b.Node.Style
	fontSize := st.FontSizeOr()
	lineHeight := st.LineHeightOr()
	table := fontmetrics.Select(st.FontWeight == style.WeightBold, st.FontStyle == style.StyleItalic)
	text := b.Node.Text

	maxW, hasMaxW := st.Width.ResolveOptional(parentW)
	if !hasMaxW || maxW <= 0 {
		b.Lines = []string{text}
		b.Width = table.StringWidth(text, fontSize)
		b.Height = lineHeight * fontSize
		return
	}

	words := splitWords(text)
	var lines []string
	if len(words) == 0 {
		lines = []string{""}
	} else {
		current := ""
		for _, w := range words {
			tentative := w
			if current != "" {
				tentative = current + " " + w
			}
			if table.StringWidth(tentative, fontSize) > maxW && current != "" {
				lines = append(lines, current)
				current = w
			} else {
				current = tentative
			}
		}
		lines = append(lines, current)
	}
	b.Lines = lines
	b.Width = maxW
	b.Height = lineHeight * fontSize * float32(len(lines))
}

func measureMedia(b *LayoutBox, parentW, parentH float32) {
	st := b.Node.Style
	w, ok := st.Width.ResolveOptional(parentW)
	if !ok || w <= 0 {
		w = 100
	}
	h, ok := st.Height.ResolveOptional(parentH)
	if !ok || h <= 0 {
		h = 100
	}
	b.Width, b.Height = w, h
}

func measureContainer(b *LayoutBox, parentW, parentH float32) {
	st := b.Node.Style
	pad := st.PaddingTRBL(parentW)
	b.PadTop, b.PadRight, b.PadBottom, b.PadLeft = pad.Top, pad.Right, pad.Bottom, pad.Left

	explicitW, hasW := st.Width.ResolveOptional(parentW)
	explicitH, hasH := st.Height.ResolveOptional(parentH)

	childParentW := parentW
	if hasW {
		childParentW = explicitW
	}
	childParentW -= pad.Left + pad.Right
	if childParentW < 0 {
		childParentW = 0
	}

	isPage := b.Node.Kind == nodepkg.Page
	var childParentH float32
	if hasH || isPage {
		base := parentH
		if hasH {
			base = explicitH
		}
		childParentH = base - pad.Top - pad.Bottom
		if childParentH < 0 {
			childParentH = 0
		}
	}

	for _, c := range b.Children {
		Measure(c, childParentW, childParentH)
		applyMargin(c, childParentW)
	}

	flow := flowChildren(b)
	direction := st.Direction
	wrap := st.Wrap
	gap := st.Gap

	var contentW, contentH float32
	switch {
	case direction == style.Row && wrap && hasW:
		contentW, contentH = packRowWrap(flow, gap, childParentW)
	case direction == style.Row:
		contentW, contentH = sumRow(flow, gap)
	default:
		contentW, contentH = sumColumn(flow, gap)
	}

	width := contentW + pad.Left + pad.Right
	if hasW {
		width = explicitW
	}
	height := contentH + pad.Top + pad.Bottom
	if hasH {
		height = explicitH
	}

	b.Width = style.ClampMinMax(width, st.MinWidth, st.MaxWidth, parentW)
	b.Height = style.ClampMinMax(height, st.MinHeight, st.MaxHeight, parentH)
}

func sumColumn(children []*LayoutBox, gap float32) (w, h float32) {
	for i, c := range children {
		if ow := c.OuterWidth(); ow > w {
			w = ow
		}
		h += c.OuterHeight()
		if i > 0 {
			h += gap
		}
	}
	return
}

func sumRow(children []*LayoutBox, gap float32) (w, h float32) {
	for i, c := range children {
		w += c.OuterWidth()
		if i > 0 {
			w += gap
		}
		if oh := c.OuterHeight(); oh > h {
			h = oh
		}
	}
	return
}

func packRowWrap(children []*LayoutBox, gap, max float32) (w, h float32) {
	lines := wrapLines(children, gap, max)
	for i, line := range lines {
		var lineW, lineH float32
		for j, c := range line {
			lineW += c.OuterWidth()
			if j > 0 {
				lineW += gap
			}
			if oh := c.OuterHeight(); oh > lineH {
				lineH = oh
			}
		}
		if lineW > w {
			w = lineW
		}
		h += lineH
		if i > 0 {
			h += gap
		}
	}
	return
}
