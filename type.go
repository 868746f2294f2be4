package paint

import "fmt"

// Type identifies what a display item paints and, together with the
// client, forms the item's cache key. Types are partitioned into ranges:
//
//	0x0000-0x0fff  drawing
//	0x1000-0x13ff  begin clip
//	0x1400-0x17ff  end clip (begin clip + 0x400)
//	0x2000-0x20ff  clip path, transform, compositing, subsequence pairs
//	0x3000-0x3fff  cached drawing (drawing + 0x3000)
type Type uint16

const (
	DrawingFirst Type = 0x0000
	DrawingLast  Type = 0x0fff

	ClipFirst Type = 0x1000
	ClipLast  Type = 0x13ff

	endClipOffset = 0x0400
	EndClipFirst  = ClipFirst + endClipOffset
	EndClipLast   = ClipLast + endClipOffset

	cachedDrawingOffset = 0x3000
	CachedDrawingFirst  = DrawingFirst + cachedDrawingOffset
	CachedDrawingLast   = DrawingLast + cachedDrawingOffset

	TypeUninitialized Type = 0xffff
)

// Named drawing phases.
const (
	TypeBackground Type = DrawingFirst + iota
	TypeBorder
	TypeFloat
	TypeForeground
	TypeOutline
	TypeSelection
	TypeCaret
	TypeScrollbar
	TypeResizer
	TypeMask
)

// Named clip types.
const (
	TypeClipBox Type = ClipFirst + iota
	TypeClipOverflow
	TypeClipColumnBounds
	TypeClipLayerBackground
	TypeClipLayerForeground
	TypeClipSelection
	TypeClipPopup
)

const (
	TypeBeginClipPath Type = 0x2000 + iota
	TypeEndClipPath
	TypeBeginTransform
	TypeEndTransform
	TypeBeginCompositing
	TypeEndCompositing
	TypeSubsequence
	TypeEndSubsequence
	TypeCachedSubsequence
)

var drawingNames = [...]string{
	"Background", "Border", "Float", "Foreground", "Outline",
	"Selection", "Caret", "Scrollbar", "Resizer", "Mask",
}

var clipNames = [...]string{
	"ClipBox", "ClipOverflow", "ClipColumnBounds", "ClipLayerBackground",
	"ClipLayerForeground", "ClipSelection", "ClipPopup",
}

var pairNames = [...]string{
	"BeginClipPath", "EndClipPath", "BeginTransform", "EndTransform",
	"BeginCompositing", "EndCompositing", "Subsequence", "EndSubsequence",
	"CachedSubsequence",
}

// DrawingType returns the n-th drawing type. It panics when n is out of
// the drawing range.
func DrawingType(n int) Type {
	if n < 0 || n > int(DrawingLast-DrawingFirst) {
		panic(fmt.Sprintf("paint: drawing type %d out of range", n))
	}
	return DrawingFirst + Type(n)
}

// ClipType returns the n-th clip type.
func ClipType(n int) Type {
	if n < 0 || n > int(ClipLast-ClipFirst) {
		panic(fmt.Sprintf("paint: clip type %d out of range", n))
	}
	return ClipFirst + Type(n)
}

// EndClipType returns the end type paired with the clip type t.
func EndClipType(t Type) Type {
	if !t.IsClip() {
		panic(fmt.Sprintf("paint: %v is not a clip type", t))
	}
	return t + endClipOffset
}

// CachedDrawingType returns the placeholder type for the drawing type t.
func CachedDrawingType(t Type) Type {
	if !t.IsDrawing() {
		panic(fmt.Sprintf("paint: %v is not a drawing type", t))
	}
	return t + cachedDrawingOffset
}

func (t Type) IsDrawing() bool       { return t <= DrawingLast }
func (t Type) IsClip() bool          { return t >= ClipFirst && t <= ClipLast }
func (t Type) IsEndClip() bool       { return t >= EndClipFirst && t <= EndClipLast }
func (t Type) IsCachedDrawing() bool { return t >= CachedDrawingFirst && t <= CachedDrawingLast }

// IsCached reports whether t is a placeholder type.
func (t Type) IsCached() bool {
	return t.IsCachedDrawing() || t == TypeCachedSubsequence
}

// Kind returns the structural variant of t.
func (t Type) Kind() Kind {
	switch {
	case t.IsDrawing():
		return KindDrawing
	case t.IsClip():
		return KindBeginClip
	case t.IsEndClip():
		return KindEndClip
	case t.IsCached():
		return KindCached
	}
	switch t {
	case TypeBeginClipPath:
		return KindBeginClipPath
	case TypeEndClipPath:
		return KindEndClipPath
	case TypeBeginTransform:
		return KindBeginTransform
	case TypeEndTransform:
		return KindEndTransform
	case TypeBeginCompositing:
		return KindBeginCompositing
	case TypeEndCompositing:
		return KindEndCompositing
	case TypeSubsequence:
		return KindBeginSubsequence
	case TypeEndSubsequence:
		return KindEndSubsequence
	}
	return KindInvalid
}

// endType returns the type that closes a begin type, or TypeUninitialized.
func (t Type) endType() Type {
	switch {
	case t.IsClip():
		return t + endClipOffset
	case t == TypeBeginClipPath, t == TypeBeginTransform,
		t == TypeBeginCompositing, t == TypeSubsequence:
		return t + 1
	}
	return TypeUninitialized
}

func (t Type) String() string {
	switch {
	case t.IsDrawing():
		if int(t-DrawingFirst) < len(drawingNames) {
			return drawingNames[t-DrawingFirst]
		}
		return fmt.Sprintf("Drawing%d", t-DrawingFirst)
	case t.IsClip():
		if int(t-ClipFirst) < len(clipNames) {
			return clipNames[t-ClipFirst]
		}
		return fmt.Sprintf("Clip%d", t-ClipFirst)
	case t.IsEndClip():
		return "End" + (t - endClipOffset).String()
	case t.IsCachedDrawing():
		return "Cached" + (t - cachedDrawingOffset).String()
	case t >= TypeBeginClipPath && t <= TypeCachedSubsequence:
		return pairNames[t-TypeBeginClipPath]
	case t == TypeUninitialized:
		return "Uninitialized"
	}
	return fmt.Sprintf("Type(%#04x)", uint16(t))
}

// Kind is the closed set of display item variants.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindDrawing
	KindBeginClip
	KindEndClip
	KindBeginClipPath
	KindEndClipPath
	KindBeginTransform
	KindEndTransform
	KindBeginCompositing
	KindEndCompositing
	KindBeginSubsequence
	KindEndSubsequence
	KindCached
)

var kindNames = [...]string{
	"Invalid", "Drawing", "BeginClip", "EndClip", "BeginClipPath",
	"EndClipPath", "BeginTransform", "EndTransform", "BeginCompositing",
	"EndCompositing", "BeginSubsequence", "EndSubsequence", "Cached",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// IsBegin reports whether k opens a scope.
func (k Kind) IsBegin() bool {
	switch k {
	case KindBeginClip, KindBeginClipPath, KindBeginTransform,
		KindBeginCompositing, KindBeginSubsequence:
		return true
	}
	return false
}

// IsEnd reports whether k closes a scope.
func (k Kind) IsEnd() bool {
	switch k {
	case KindEndClip, KindEndClipPath, KindEndTransform,
		KindEndCompositing, KindEndSubsequence:
		return true
	}
	return false
}
