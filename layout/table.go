package layout

import "github.com/wudi/pdftree/style"

// measureTable implements the table grid solver: column-width
// distribution, then row-height accumulation with col/row span bookkeeping.
func measureTable(b *LayoutBox, parentW, parentH float32) {
	st := b.Node.Style
	pad := st.PaddingTRBL(parentW)
	b.PadTop, b.PadRight, b.PadBottom, b.PadLeft = pad.Top, pad.Right, pad.Bottom, pad.Left

	explicitW, hasW := st.Width.ResolveOptional(parentW)
	inner := parentW
	if hasW {
		inner = explicitW
	}
	inner -= pad.Left + pad.Right
	if inner < 0 {
		inner = 0
	}

	rows := b.Children
	rowCount := len(rows)
	numCols := 0
	for _, row := range rows {
		sum := 0
		for _, cell := range row.Children {
			sum += cell.Node.Style.ColSpanOr()
		}
		if sum > numCols {
			numCols = sum
		}
	}

	explicitH, hasH := st.Height.ResolveOptional(parentH)

	if numCols == 0 || rowCount == 0 {
		b.Table = &TableLayout{}
		width := pad.Left + pad.Right
		if hasW {
			width = explicitW
		}
		height := pad.Top + pad.Bottom
		if hasH {
			height = explicitH
		}
		b.Width = style.ClampMinMax(width, st.MinWidth, st.MaxWidth, parentW)
		b.Height = style.ClampMinMax(height, st.MinHeight, st.MaxHeight, parentH)
		return
	}

	gap := st.Gap
	colWidths := make([]float32, numCols)
	declared := st.ColumnWidths
	for i := 0; i < numCols && i < len(declared); i++ {
		colWidths[i] = declared[i].Resolve(inner)
	}
	var specified float32
	unspecified := 0
	for _, w := range colWidths {
		if w == 0 {
			unspecified++
		} else {
			specified += w
		}
	}
	gaps := gap * float32(numCols-1)
	remaining := inner - specified - gaps
	if remaining < 0 {
		remaining = 0
	}
	var def float32
	if unspecified > 0 {
		def = remaining / float32(unspecified)
	}
	for i, w := range colWidths {
		if w == 0 {
			colWidths[i] = def
		}
	}

	rowHeights := make([]float32, rowCount)
	activeSpans := make([]int, numCols)

	for ri, row := range rows {
		col := 0
		for col < numCols && activeSpans[col] > 0 {
			col++
		}
		for _, cell := range row.Children {
			for col < numCols && activeSpans[col] > 0 {
				col++
			}
			cs := cell.Node.Style.ColSpanOr()
			if col+cs > numCols {
				cs = numCols - col
			}
			if cs < 1 {
				cs = 1
			}
			var spanW float32
			for k := col; k < col+cs && k < numCols; k++ {
				spanW += colWidths[k]
			}
			spanW += gap * float32(cs-1)

			Measure(cell, spanW, parentH)
			applyMargin(cell, spanW)
			cell.Width = spanW

			rs := cell.Node.Style.RowSpanOr()
			if rs < 1 {
				rs = 1
			}
			if rs == 1 {
				if oh := cell.OuterHeight(); oh > rowHeights[ri] {
					rowHeights[ri] = oh
				}
			} else {
				end := ri + rs
				if end > rowCount {
					end = rowCount
				}
				var sum float32
				for k := ri; k < end; k++ {
					sum += rowHeights[k]
				}
				if oh := cell.OuterHeight(); oh > sum {
					rowHeights[end-1] += oh - sum
				}
				for k := col; k < col+cs && k < numCols; k++ {
					if rs > activeSpans[k] {
						activeSpans[k] = rs
					}
				}
			}
			col += cs
		}
		for k := range activeSpans {
			if activeSpans[k] > 0 {
				activeSpans[k]--
			}
		}
	}

	var contentH float32
	for i, h := range rowHeights {
		contentH += h
		if i > 0 {
			contentH += gap
		}
	}
	var colSum float32
	for _, w := range colWidths {
		colSum += w
	}

	width := pad.Left + colSum + gap*float32(numCols-1) + pad.Right
	if hasW {
		width = explicitW
	}
	height := pad.Top + contentH + pad.Bottom
	if hasH {
		height = explicitH
	}

	b.Width = style.ClampMinMax(width, st.MinWidth, st.MaxWidth, parentW)
	b.Height = style.ClampMinMax(height, st.MinHeight, st.MaxHeight, parentH)
	b.Table = &TableLayout{ColumnWidths: colWidths, RowHeights: rowHeights}
}

// placeTable positions rows and cells per the table solver's own cursor
//: rows stack top to bottom by row_height+gap,
// cells advance column by column, skipping columns an earlier row-span still
// occupies.
func placeTable(b *LayoutBox) {
	if b.Table == nil || len(b.Table.ColumnWidths) == 0 {
		return
	}
	innerX := b.X + b.PadLeft
	innerWidth := b.Width - b.PadLeft - b.PadRight
	gap := b.Node.Style.Gap
	numCols := len(b.Table.ColumnWidths)

	colX := make([]float32, numCols)
	x := innerX
	for i, w := range b.Table.ColumnWidths {
		colX[i] = x
		x += w + gap
	}

	cursorY := b.Y - b.PadTop
	rows := b.Children
	activeSpans := make([]int, numCols)

	for ri, row := range rows {
		rowHeight := b.Table.RowHeights[ri]
		row.X = innerX
		row.Y = cursorY
		row.Width = innerWidth
		row.Height = rowHeight
		row.MarginTop, row.MarginRight, row.MarginBottom, row.MarginLeft = 0, 0, 0, 0

		col := 0
		for col < numCols && activeSpans[col] > 0 {
			col++
		}
		for _, cell := range row.Children {
			for col < numCols && activeSpans[col] > 0 {
				col++
			}
			cs := cell.Node.Style.ColSpanOr()
			if col+cs > numCols {
				cs = numCols - col
			}
			if cs < 1 {
				cs = 1
			}

			rs := cell.Node.Style.RowSpanOr()
			if rs < 1 {
				rs = 1
			}
			end := ri + rs
			if end > len(rows) {
				end = len(rows)
			}
			var cellHeight float32
			for k := ri; k < end; k++ {
				cellHeight += b.Table.RowHeights[k]
			}
			cellHeight += gap * float32(end-ri-1)
			cell.Height = cellHeight

			Place(cell, colX[col], cursorY)

			if rs > 1 {
				for k := col; k < col+cs && k < numCols; k++ {
					if rs > activeSpans[k] {
						activeSpans[k] = rs
					}
				}
			}
			col += cs
		}
		for k := range activeSpans {
			if activeSpans[k] > 0 {
				activeSpans[k]--
			}
		}
		cursorY -= rowHeight + gap
	}
}
