package property

import (
	"fmt"

	"github.com/gogpu/paint/recording"
)

// EffectNode is a node of the effect tree: opacity and blending applied to
// everything painted under it.
type EffectNode struct {
	parent    *EffectNode
	transform *TransformNode
	clip      *ClipNode
	opacity   float64
	blend     recording.BlendMode
}

var rootEffect = &EffectNode{transform: rootTransform, clip: rootClip, opacity: 1}

// RootEffect returns the root of the effect tree.
func RootEffect() *EffectNode { return rootEffect }

// NewEffect creates an effect node. Nil arguments mean the roots.
func NewEffect(parent *EffectNode, space *TransformNode, clip *ClipNode, opacity float64, blend recording.BlendMode) *EffectNode {
	if parent == nil {
		parent = rootEffect
	}
	if space == nil {
		space = rootTransform
	}
	if clip == nil {
		clip = rootClip
	}
	return &EffectNode{parent: parent, transform: space, clip: clip, opacity: opacity, blend: blend}
}

func (n *EffectNode) Parent() *EffectNode                 { return n.parent }
func (n *EffectNode) LocalTransformSpace() *TransformNode { return n.transform }
func (n *EffectNode) OutputClip() *ClipNode               { return n.clip }
func (n *EffectNode) Opacity() float64                    { return n.opacity }
func (n *EffectNode) BlendMode() recording.BlendMode      { return n.blend }

// AccumulatedOpacity multiplies the opacity of n and all its ancestors.
func (n *EffectNode) AccumulatedOpacity() float64 {
	o := 1.0
	for e := n; e != nil; e = e.parent {
		o *= e.opacity
	}
	return o
}

// HasEffect reports whether compositing n differs from painting directly.
func (n *EffectNode) HasEffect() bool {
	return n.opacity != 1 || n.blend != recording.BlendNormal
}

func (n *EffectNode) String() string {
	return fmt.Sprintf("effect %v %g", n.blend, n.opacity)
}
