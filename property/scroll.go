package property

import (
	"fmt"

	"github.com/gogpu/paint/geom"
)

// ScrollNode is a node of the scroll tree: a scrollable container's
// viewport and its current offset.
type ScrollNode struct {
	parent *ScrollNode
	bounds geom.Rect
	offset geom.Vec2
}

var rootScroll = &ScrollNode{}

// RootScroll returns the root of the scroll tree.
func RootScroll() *ScrollNode { return rootScroll }

// NewScroll creates a scroll node. A nil parent means the root.
func NewScroll(parent *ScrollNode, bounds geom.Rect, offset geom.Vec2) *ScrollNode {
	if parent == nil {
		parent = rootScroll
	}
	return &ScrollNode{parent: parent, bounds: bounds, offset: offset}
}

func (n *ScrollNode) Parent() *ScrollNode { return n.parent }
func (n *ScrollNode) Bounds() geom.Rect   { return n.bounds }
func (n *ScrollNode) Offset() geom.Vec2   { return n.offset }

func (n *ScrollNode) String() string {
	return fmt.Sprintf("scroll %v %+v", n.bounds, n.offset)
}
