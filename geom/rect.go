// Package geom provides the small set of geometry value types shared by the
// paint engine: axis-aligned rectangles and 2D offsets.
package geom

import (
	"fmt"
	"math"
)

// Vec2 is a 2D offset.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Neg returns -v.
func (v Vec2) Neg() Vec2 { return Vec2{-v.X, -v.Y} }

// IsZero reports whether v is the zero offset.
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Rect represents an axis-aligned rectangle.
// Min is the top-left corner (minimum coordinates).
// Max is the bottom-right corner (maximum coordinates).
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// InfiniteRect covers the whole plane. It is used as the raster
// invalidation of a chunk that has no counterpart in the previous commit.
var InfiniteRect = Rect{
	MinX: math.Inf(-1),
	MinY: math.Inf(-1),
	MaxX: math.Inf(1),
	MaxY: math.Inf(1),
}

// NewRect creates a rectangle from position and size.
func NewRect(x, y, width, height float64) Rect {
	return Rect{
		MinX: x,
		MinY: y,
		MaxX: x + width,
		MaxY: y + height,
	}
}

// X returns the left edge of the rectangle.
func (r Rect) X() float64 {
	return r.MinX
}

// Y returns the top edge of the rectangle.
func (r Rect) Y() float64 {
	return r.MinY
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.MaxY - r.MinY
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.MaxX <= r.MinX || r.MaxY <= r.MinY
}

// IsInfinite reports whether r is unbounded on every side.
func (r Rect) IsInfinite() bool {
	return math.IsInf(r.MinX, -1) && math.IsInf(r.MinY, -1) &&
		math.IsInf(r.MaxX, 1) && math.IsInf(r.MaxY, 1)
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.MinX && x <= r.MaxX && y >= r.MinY && y <= r.MaxY
}

// ContainsRect reports whether other lies entirely inside r.
// An empty rect is contained by everything.
func (r Rect) ContainsRect(other Rect) bool {
	if other.IsEmpty() {
		return true
	}
	return other.MinX >= r.MinX && other.MinY >= r.MinY &&
		other.MaxX <= r.MaxX && other.MaxY <= r.MaxY
}

// Intersects reports whether r and other overlap with positive area.
func (r Rect) Intersects(other Rect) bool {
	return !r.Intersect(other).IsEmpty()
}

// Union returns the smallest rectangle containing both r and other.
// Empty rectangles do not contribute: the union of an empty rect and x is x.
func (r Rect) Union(other Rect) Rect {
	if other.IsEmpty() {
		return r
	}
	if r.IsEmpty() {
		return other
	}
	return Rect{
		MinX: math.Min(r.MinX, other.MinX),
		MinY: math.Min(r.MinY, other.MinY),
		MaxX: math.Max(r.MaxX, other.MaxX),
		MaxY: math.Max(r.MaxY, other.MaxY),
	}
}

// Intersect returns the intersection of r and other.
// Returns an empty rectangle if they don't intersect.
func (r Rect) Intersect(other Rect) Rect {
	result := Rect{
		MinX: math.Max(r.MinX, other.MinX),
		MinY: math.Max(r.MinY, other.MinY),
		MaxX: math.Min(r.MaxX, other.MaxX),
		MaxY: math.Min(r.MaxY, other.MaxY),
	}
	if result.IsEmpty() {
		return Rect{}
	}
	return result
}

// Inset returns a new rectangle inset by the given amounts.
// Positive values shrink the rectangle, negative values expand it.
func (r Rect) Inset(dx, dy float64) Rect {
	return Rect{
		MinX: r.MinX + dx,
		MinY: r.MinY + dy,
		MaxX: r.MaxX - dx,
		MaxY: r.MaxY - dy,
	}
}

// Offset returns a new rectangle offset by the given amounts.
func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{
		MinX: r.MinX + dx,
		MinY: r.MinY + dy,
		MaxX: r.MaxX + dx,
		MaxY: r.MaxY + dy,
	}
}

// Translate returns r moved by v.
func (r Rect) Translate(v Vec2) Rect {
	return r.Offset(v.X, v.Y)
}

// String formats r as (x,y wxh), the same order NewRect takes.
func (r Rect) String() string {
	if r.IsInfinite() {
		return "(infinite)"
	}
	return fmt.Sprintf("(%g,%g %gx%g)", r.X(), r.Y(), r.Width(), r.Height())
}
