package property

import (
	"fmt"

	"golang.org/x/image/math/f64"
)

// Identity is the identity affine transform.
var Identity = f64.Aff3{1, 0, 0, 0, 1, 0}

// TransformNode is a node of the transform tree. Matrix maps the node's
// local space into its parent's space.
type TransformNode struct {
	parent *TransformNode
	matrix f64.Aff3
	name   string
}

var rootTransform = &TransformNode{matrix: Identity, name: "root"}

// RootTransform returns the root of the transform tree.
func RootTransform() *TransformNode { return rootTransform }

// NewTransform creates a child of parent. A nil parent means the root.
func NewTransform(parent *TransformNode, m f64.Aff3, name string) *TransformNode {
	if parent == nil {
		parent = rootTransform
	}
	return &TransformNode{parent: parent, matrix: m, name: name}
}

// Parent returns the parent node, or nil for the root.
func (n *TransformNode) Parent() *TransformNode { return n.parent }

// Matrix returns the local-to-parent matrix.
func (n *TransformNode) Matrix() f64.Aff3 { return n.matrix }

// IsRoot reports whether n is the tree root.
func (n *TransformNode) IsRoot() bool { return n == rootTransform }

// ToRoot returns the matrix mapping n's space into root space.
func (n *TransformNode) ToRoot() f64.Aff3 {
	m := Identity
	for t := n; t != nil && !t.IsRoot(); t = t.parent {
		m = Concat(t.matrix, m)
	}
	return m
}

// Depth returns the number of ancestors.
func (n *TransformNode) Depth() int {
	d := 0
	for t := n.parent; t != nil; t = t.parent {
		d++
	}
	return d
}

func (n *TransformNode) String() string {
	return fmt.Sprintf("transform %s %v", n.name, n.matrix)
}

// Concat returns a*b: the transform that applies b first, then a.
func Concat(a, b f64.Aff3) f64.Aff3 {
	return f64.Aff3{
		a[0]*b[0] + a[1]*b[3],
		a[0]*b[1] + a[1]*b[4],
		a[0]*b[2] + a[1]*b[5] + a[2],
		a[3]*b[0] + a[4]*b[3],
		a[3]*b[1] + a[4]*b[4],
		a[3]*b[2] + a[4]*b[5] + a[5],
	}
}

// Apply maps the point (x, y) through m.
func Apply(m f64.Aff3, x, y float64) (float64, float64) {
	return m[0]*x + m[1]*y + m[2], m[3]*x + m[4]*y + m[5]
}
