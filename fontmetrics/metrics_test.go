package fontmetrics

import "testing"

func TestStringWidthHello(t *testing.T) {
	// scenario 1: "Hello" at 12pt ≈ 27.336pt.
	got := Select(false, false).StringWidth("Hello", 12)
	want := float32(27.336)
	if diff := got - want; diff > 0.001 || diff < -0.001 {
		t.Fatalf("StringWidth(Hello, 12) = %v, want %v", got, want)
	}
}

func TestCharWidthDefaultForUnknown(t *testing.T) {
	tbl := Select(false, false)
	if got := tbl.CharWidth('漢'); got != defaultWidth {
		t.Fatalf("CharWidth(unknown) = %v, want %v", got, defaultWidth)
	}
}

func TestSelectVariants(t *testing.T) {
	reg := Select(false, false)
	bold := Select(true, false)
	obl := Select(false, true)
	boldObl := Select(true, true)
	if reg.CharWidth('A') != obl.CharWidth('A') {
		t.Fatalf("oblique should share widths with regular")
	}
	if bold.CharWidth('A') != boldObl.CharWidth('A') {
		t.Fatalf("bold-oblique should share widths with bold")
	}
	if reg.CharWidth('A') == bold.CharWidth('A') {
		t.Fatalf("bold should differ from regular for 'A'")
	}
}

func TestStringWidthIgnoresCombiningMarkWidth(t *testing.T) {
	tbl := Select(false, false)
	// "e" + combining acute (U+0301) is one grapheme cluster; the mark must
	// not be charged its own default-width glyph on top of "e"'s width.
	combining := tbl.StringWidth("é", 12)
	plain := tbl.StringWidth("e", 12)
	if combining != plain {
		t.Fatalf("StringWidth(e+combining) = %v, want %v (base rune only)", combining, plain)
	}
}

func TestSelectIsSingleton(t *testing.T) {
	a := Select(false, false)
	b := Select(false, false)
	if a != b {
		t.Fatalf("Select should return the same immutable table instance")
	}
}
