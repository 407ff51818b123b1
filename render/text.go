package render

import (
	"strings"

	"github.com/wudi/pdftree/builder"
	"github.com/wudi/pdftree/fontmetrics"
	"github.com/wudi/pdftree/layout"
	"github.com/wudi/pdftree/style"
)

func baseFontName(weight style.FontWeight, fontStyle style.FontStyle) string {
	bold := weight == style.WeightBold
	italic := fontStyle == style.StyleItalic
	switch {
	case bold && italic:
		return "Helvetica-BoldOblique"
	case bold:
		return "Helvetica-Bold"
	case italic:
		return "Helvetica-Oblique"
	default:
		return "Helvetica"
	}
}

// drawText draws a text box's already-wrapped lines, applying
// text_align per line; justify spreads inter-word space on every line except
// the last (or any single-word line).
func drawText(p *builder.Page, b *layout.LayoutBox, llx, ury float64) {
	st := b.Node.Style
	fontSize := float64(st.FontSizeOr())
	lineHeight := float64(st.LineHeightOr()) * fontSize
	table := fontmetrics.Select(st.FontWeight == style.WeightBold, st.FontStyle == style.StyleItalic)
	font := builder.Font{BaseFont: baseFontName(st.FontWeight, st.FontStyle)}

	color := style.Black()
	if st.Color != nil {
		color = *st.Color
	}
	bc := toBuilderColor(color)

	boxWidth := float64(b.Width)
	baseline := ury - fontSize*0.8

	for i, line := range b.Lines {
		y := baseline - float64(i)*lineHeight
		words := strings.Fields(line)
		isLast := i == len(b.Lines)-1

		if st.TextAlign == style.TextJustify && !isLast && len(words) > 1 {
			drawJustifiedLine(p, words, table, fontSize, llx, y, boxWidth, font, bc)
			continue
		}

		lineWidth := float64(table.StringWidth(line, float32(fontSize)))
		x := llx
		switch st.TextAlign {
		case style.TextCenter:
			x = llx + (boxWidth-lineWidth)/2
		case style.TextRight:
			x = llx + boxWidth - lineWidth
		}
		p.DrawText(line, x, y, builder.TextOptions{Font: font, FontSize: fontSize, Color: bc})
	}
}

func drawJustifiedLine(p *builder.Page, words []string, table *fontmetrics.Table, fontSize, llx, y, maxWidth float64, font builder.Font, color builder.Color) {
	var wordsWidth float64
	for _, w := range words {
		wordsWidth += float64(table.StringWidth(w, float32(fontSize)))
	}
	spaceWidth := float64(table.StringWidth(" ", float32(fontSize)))
	gaps := len(words) - 1
	naturalSpace := spaceWidth * float64(gaps)
	extra := maxWidth - wordsWidth - naturalSpace
	if extra < 0 {
		extra = 0
	}
	var perGap float64
	if gaps > 0 {
		perGap = (naturalSpace + extra) / float64(gaps)
	}

	x := llx
	for i, w := range words {
		p.DrawText(w, x, y, builder.TextOptions{Font: font, FontSize: fontSize, Color: color})
		x += float64(table.StringWidth(w, float32(fontSize)))
		if i < len(words)-1 {
			x += perGap
		}
	}
}
