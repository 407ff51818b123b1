// Package fontmetrics provides static character-width tables for the four
// Helvetica variants, used by the measure pass to size text
// nodes without rasterizing or shaping them.
package fontmetrics

import (
	"sync"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Table is an immutable per-variant metrics table: character widths in
// 1/1000 em plus the font-wide constants the measure pass needs.
type Table struct {
	widths map[rune]uint16
	DefaultWidth uint16
	UnitsPerEm uint16
	Ascender int16
	Descender int16
}

// CharWidth returns c's advance width in em units, or DefaultWidth if c is
// not in the table.
func (t *Table) CharWidth(c rune) uint16 {
	if w, ok := t.widths[c]; ok {
		return w
	}
	return t.DefaultWidth
}

// StringWidth returns the width of text in points at fontSizePt. Widths are
// summed per grapheme cluster (github.com/rivo/uniseg), charging only the
// cluster's base rune against the AFM table and ignoring combining marks
// within it - a plain-ASCII string (no combining sequences) measures
// identically to a naive per-rune sum, but a base+combining-mark sequence
// no longer double-counts a phantom default-width glyph for the mark.
func (t *Table) StringWidth(text string, fontSizePt float32) float32 {
	var totalUnits uint32
	state := -1
	for len(text) > 0 {
		var cluster string
		cluster, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
		r, _ := utf8.DecodeRuneInString(cluster)
		totalUnits += uint32(t.CharWidth(r))
	}
	return float32(totalUnits) / float32(t.UnitsPerEm) * fontSizePt
}

const (
	unitsPerEm = 1000
	ascender = 718
	descender = -207
	// defaultWidth is the fallback width for glyphs missing from the
	// table (the width of Helvetica's digits).
	defaultWidth = 556
)

var (
	initOnce sync.Once
	regularTable, boldTable *Table
	obliqueTable, boldObliqueTable *Table
)

// tables lazily builds the four singleton tables under a one-shot
// guarantee: the first caller builds them, every later caller (from any
// goroutine) observes the same immutable tables.
func tables() (regular, bold, oblique, boldOblique *Table) {
	initOnce.Do(func() {
		regularTable = &Table{widths: helveticaWidths, DefaultWidth: defaultWidth, UnitsPerEm: unitsPerEm, Ascender: ascender, Descender: descender}
		boldTable = &Table{widths: helveticaBoldWidths, DefaultWidth: defaultWidth, UnitsPerEm: unitsPerEm, Ascender: ascender, Descender: descender}
		// Oblique is a sheared rendering of regular; AFM widths are identical.
		obliqueTable = &Table{widths: helveticaWidths, DefaultWidth: defaultWidth, UnitsPerEm: unitsPerEm, Ascender: ascender, Descender: descender}
		boldObliqueTable = &Table{widths: helveticaBoldWidths, DefaultWidth: defaultWidth, UnitsPerEm: unitsPerEm, Ascender: ascender, Descender: descender}
	})
	return regularTable, boldTable, obliqueTable, boldObliqueTable
}

// Select returns the metrics table for the (bold, italic) combination.
func Select(bold, italic bool) *Table {
	reg, b, obl, boldObl := tables()
	switch {
	case bold && italic:
		return boldObl
	case bold:
		return b
	case italic:
		return obl
	default:
		return reg
	}
}
