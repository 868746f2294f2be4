package property

import (
	"fmt"
	"math"

	"github.com/gogpu/paint/geom"
)

// ClipNode is a node of the clip tree. Rect is expressed in the space of
// its transform node; the effective clip is the intersection with all
// ancestors.
type ClipNode struct {
	parent    *ClipNode
	transform *TransformNode
	rect      geom.Rect
}

var rootClip = &ClipNode{transform: rootTransform, rect: geom.InfiniteRect}

// RootClip returns the root of the clip tree. It does not clip.
func RootClip() *ClipNode { return rootClip }

// NewClip creates a clip node. Nil parent and space mean the roots.
func NewClip(parent *ClipNode, space *TransformNode, rect geom.Rect) *ClipNode {
	if parent == nil {
		parent = rootClip
	}
	if space == nil {
		space = rootTransform
	}
	return &ClipNode{parent: parent, transform: space, rect: rect}
}

// Parent returns the parent node, or nil for the root.
func (n *ClipNode) Parent() *ClipNode { return n.parent }

// LocalTransformSpace returns the transform node Rect is expressed in.
func (n *ClipNode) LocalTransformSpace() *TransformNode { return n.transform }

// Rect returns the clip rect in local space.
func (n *ClipNode) Rect() geom.Rect { return n.rect }

// RectInRoot returns the bounding box of the effective clip in root space.
func (n *ClipNode) RectInRoot() geom.Rect {
	out := geom.InfiniteRect
	for c := n; c != nil && c != rootClip; c = c.parent {
		out = out.Intersect(mapRect(c.transform.ToRoot(), c.rect))
	}
	return out
}

func (n *ClipNode) String() string {
	return fmt.Sprintf("clip %v", n.rect)
}

// mapRect returns the bounding box of r mapped through m.
func mapRect(m [6]float64, r geom.Rect) geom.Rect {
	if r.IsInfinite() {
		return r
	}
	xs := [4]float64{r.MinX, r.MaxX, r.MaxX, r.MinX}
	ys := [4]float64{r.MinY, r.MinY, r.MaxY, r.MaxY}
	out := geom.Rect{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
	for i := range xs {
		x, y := Apply(m, xs[i], ys[i])
		out.MinX = math.Min(out.MinX, x)
		out.MinY = math.Min(out.MinY, y)
		out.MaxX = math.Max(out.MaxX, x)
		out.MaxY = math.Max(out.MaxY, y)
	}
	return out
}
