package layout

import (
	nodepkg "github.com/wudi/pdftree/node"
	"github.com/wudi/pdftree/style"
)

// Build mirrors a decoded node tree into an unplaced LayoutBox tree, ready
// for measure and place.
func Build(n *nodepkg.Node) *LayoutBox {
	if n == nil {
		return nil
	}
	if n.Style == nil {
		n.Style = &style.Style{}
	}
	b := &LayoutBox{Node: n}
	for _, c := range n.Children {
		if c == nil {
			continue
		}
		b.Children = append(b.Children, Build(c))
	}
	return b
}
