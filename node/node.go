// Package node decodes the JSON document tree POSTed to /render-pdf
// into a tree of *Node ready for the layout package to build
// LayoutBoxes from.
package node

import (
	"encoding/json"
	"fmt"

	"github.com/wudi/pdftree/style"
)

// Kind is the node's tag.
type Kind string

const (
	Page Kind = "page"
	View Kind = "view"
	Text Kind = "text"
	Image Kind = "image"
	SVG Kind = "svg"
	Table Kind = "table"
	Row Kind = "row"
	Cell Kind = "cell"
)

// Node is one decoded tree node.
type Node struct {
	Kind Kind
	Style *style.Style
	Children []*Node
	Text string
	Src string
	Content string
}

// wireNode mirrors the on-wire JSON shape; its legacy top-level
// font/text/table fields get merged into Style (which always wins when
// both are present) by Node.UnmarshalJSON.
type wireNode struct {
	Type string `json:"type"`
	Style *style.Style `json:"style"`
	Children []*Node `json:"children"`
	Text string `json:"text"`
	Src string `json:"src"`
	Content string `json:"content"`

	ColumnWidths []style.Dimension `json:"columnWidths"`
	ColSpan int `json:"colSpan"`
	RowSpan int `json:"rowSpan"`

	// Legacy top-level font/text attributes.
	FontSize float32 `json:"fontSize"`
	Color *style.Color `json:"color"`
	FontWeight style.FontWeight `json:"fontWeight"`
	FontStyle style.FontStyle `json:"fontStyle"`
}

// UnmarshalJSON decodes a node, accepting snake_case or camelCase keys
// and
// folding legacy top-level attributes into Style without overriding
// anything Style already set explicitly.
func (n *Node) UnmarshalJSON(data []byte) error {
	normalized, err := style.CanonicalizeKeys(data)
	if err != nil {
		return fmt.Errorf("node: %w", err)
	}
	var w wireNode
	if err := json.Unmarshal(normalized, &w); err != nil {
		return fmt.Errorf("node: %w", err)
	}

	out := Node{
		Kind: Kind(w.Type),
		Style: w.Style,
		Children: w.Children,
		Text: w.Text,
		Src: w.Src,
		Content: w.Content,
	}
	if out.Style == nil {
		out.Style = &style.Style{}
	}
	if len(out.Style.ColumnWidths) == 0 && len(w.ColumnWidths) > 0 {
		out.Style.ColumnWidths = w.ColumnWidths
	}
	if out.Style.ColSpan == 0 && w.ColSpan != 0 {
		out.Style.ColSpan = w.ColSpan
	}
	if out.Style.RowSpan == 0 && w.RowSpan != 0 {
		out.Style.RowSpan = w.RowSpan
	}
	if out.Style.FontSize == 0 && w.FontSize != 0 {
		out.Style.FontSize = w.FontSize
	}
	if out.Style.Color == nil && w.Color != nil {
		out.Style.Color = w.Color
	}
	if out.Style.FontWeight == style.WeightNormal && w.FontWeight != style.WeightNormal {
		out.Style.FontWeight = w.FontWeight
	}
	if out.Style.FontStyle == style.StyleNormal && w.FontStyle != style.StyleNormal {
		out.Style.FontStyle = w.FontStyle
	}
	*n = out
	return nil
}

// Decode parses the request body `{"root": <node>}`.
func Decode(data []byte) (*Node, error) {
	var payload struct {
		Root *Node `json:"root"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("decode node tree: %w", err)
	}
	if payload.Root == nil {
		return nil, fmt.Errorf("decode node tree: missing \"root\"")
	}
	return payload.Root, nil
}
