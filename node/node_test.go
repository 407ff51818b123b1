package node

import "testing"

func TestDecodeEnvelope(t *testing.T) {
	data := []byte(`{"root":{"type":"page","children":[{"type":"text","text":"Hello"}]}}`)
	root, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if root.Kind != Page {
		t.Fatalf("root.Kind = %v, want page", root.Kind)
	}
	if len(root.Children) != 1 || root.Children[0].Kind != Text {
		t.Fatalf("unexpected children: %+v", root.Children)
	}
	if root.Children[0].Text != "Hello" {
		t.Fatalf("text = %q", root.Children[0].Text)
	}
}

func TestDecodeMissingRoot(t *testing.T) {
	if _, err := Decode([]byte(`{}`)); err == nil {
		t.Fatalf("expected error for missing root")
	}
}

func TestDecodeSnakeCaseNodeFields(t *testing.T) {
	data := []byte(`{"root":{"type":"table","column_widths":["50%","50%"],"children":[]}}`)
	root, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(root.Style.ColumnWidths) != 2 {
		t.Fatalf("ColumnWidths = %+v", root.Style.ColumnWidths)
	}
}

func TestLegacyAttributesFallBackWhenStyleOmitsThem(t *testing.T) {
	data := []byte(`{"root":{"type":"text","text":"hi","fontSize":20,"fontWeight":"bold"}}`)
	root, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if root.Style.FontSize != 20 {
		t.Fatalf("FontSize = %v, want 20", root.Style.FontSize)
	}
	if root.Style.FontWeight != 1 { // style.WeightBold
		t.Fatalf("FontWeight = %v, want bold", root.Style.FontWeight)
	}
}

func TestStyleTakesPrecedenceOverLegacyAttribute(t *testing.T) {
	data := []byte(`{"root":{"type":"text","text":"hi","fontSize":20,"style":{"fontSize":8}}}`)
	root, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if root.Style.FontSize != 8 {
		t.Fatalf("FontSize = %v, want 8 (style wins)", root.Style.FontSize)
	}
}
