package paint

import (
	"fmt"

	"golang.org/x/image/math/f64"

	"github.com/gogpu/paint/geom"
	"github.com/gogpu/paint/recording"
)

// itemHeaderSize approximates the fixed cost of a display item.
const itemHeaderSize = 48

// ItemID is the cache key of a display item.
type ItemID struct {
	Client uint64
	Type   Type
}

// Payload is the variant-specific content of a display item.
// The set of payloads is closed: Drawing, Clip, ClipPath, Transform and
// Compositing.
type Payload interface {
	fmt.Stringer
	equal(Payload) bool
	size() int
}

// Drawing is the payload of a drawing item.
type Drawing struct {
	Picture *recording.Picture
}

func (d Drawing) equal(o Payload) bool {
	other, ok := o.(Drawing)
	return ok && d.Picture.Equal(other.Picture)
}

func (d Drawing) size() int      { return d.Picture.ByteSize() }
func (d Drawing) String() string { return d.Picture.String() }

// Clip is the payload of a begin-clip item.
type Clip struct {
	Rect geom.Rect
}

func (c Clip) equal(o Payload) bool {
	other, ok := o.(Clip)
	return ok && c.Rect == other.Rect
}

func (c Clip) size() int      { return 32 }
func (c Clip) String() string { return fmt.Sprintf("clip %v", c.Rect) }

// ClipPath is the payload of a begin-clip-path item.
type ClipPath struct {
	Path *recording.Path
	Rule recording.FillRule
}

func (c ClipPath) equal(o Payload) bool {
	other, ok := o.(ClipPath)
	return ok && c.Rule == other.Rule && c.Path.Equal(other.Path)
}

func (c ClipPath) size() int {
	if c.Path == nil {
		return 8
	}
	return 8 + len(c.Path.Verbs) + 8*len(c.Path.Coords)
}

func (c ClipPath) String() string {
	if c.Path.IsEmpty() {
		return fmt.Sprintf("clip-path empty %v", c.Rule)
	}
	return fmt.Sprintf("clip-path %v %v", c.Path.Bounds(), c.Rule)
}

// Transform is the payload of a begin-transform item.
type Transform struct {
	Matrix f64.Aff3
}

func (t Transform) equal(o Payload) bool {
	other, ok := o.(Transform)
	return ok && t.Matrix == other.Matrix
}

func (t Transform) size() int      { return 48 }
func (t Transform) String() string { return fmt.Sprintf("transform %v", t.Matrix) }

// Compositing is the payload of a begin-compositing item. An empty Bounds
// means the layer is unbounded.
type Compositing struct {
	Blend   recording.BlendMode
	Opacity float64
	Bounds  geom.Rect
}

func (c Compositing) equal(o Payload) bool {
	other, ok := o.(Compositing)
	return ok && c == other
}

func (c Compositing) size() int { return 48 }

func (c Compositing) String() string {
	if c.Bounds.IsEmpty() {
		return fmt.Sprintf("compositing %v %g", c.Blend, c.Opacity)
	}
	return fmt.Sprintf("compositing %v %g %v", c.Blend, c.Opacity, c.Bounds)
}

// DisplayItem is one immutable entry of a display list. Construct items
// with the New* functions and hand them to a Controller.
type DisplayItem struct {
	client       DisplayItemClient
	typ          Type
	skippedCache bool
	payload      Payload
}

func newItem(client DisplayItemClient, t Type, p Payload) DisplayItem {
	if client == nil {
		panic("paint: display item without client")
	}
	return DisplayItem{client: client, typ: t, payload: p}
}

// NewDrawing returns a drawing item of drawing type t.
func NewDrawing(client DisplayItemClient, t Type, pic *recording.Picture) DisplayItem {
	if !t.IsDrawing() {
		panic(fmt.Sprintf("paint: NewDrawing with non-drawing type %v", t))
	}
	return newItem(client, t, Drawing{Picture: pic})
}

// NewBeginClip returns a begin-clip item of clip type t.
func NewBeginClip(client DisplayItemClient, t Type, rect geom.Rect) DisplayItem {
	if !t.IsClip() {
		panic(fmt.Sprintf("paint: NewBeginClip with non-clip type %v", t))
	}
	return newItem(client, t, Clip{Rect: rect})
}

// NewEndClip returns the end item for a clip of type clipType.
func NewEndClip(client DisplayItemClient, clipType Type) DisplayItem {
	return newItem(client, EndClipType(clipType), nil)
}

// NewBeginClipPath returns a begin item clipping to path with rule.
func NewBeginClipPath(client DisplayItemClient, path *recording.Path, rule recording.FillRule) DisplayItem {
	return newItem(client, TypeBeginClipPath, ClipPath{Path: path, Rule: rule})
}

// NewEndClipPath returns the end item of a clip path scope.
func NewEndClipPath(client DisplayItemClient) DisplayItem {
	return newItem(client, TypeEndClipPath, nil)
}

// NewBeginTransform returns a begin item applying m to its scope.
func NewBeginTransform(client DisplayItemClient, m f64.Aff3) DisplayItem {
	return newItem(client, TypeBeginTransform, Transform{Matrix: m})
}

// NewEndTransform returns the end item of a transform scope.
func NewEndTransform(client DisplayItemClient) DisplayItem {
	return newItem(client, TypeEndTransform, nil)
}

// NewBeginCompositing returns a begin item painting its scope into a layer
// blended with blend at opacity. bounds may be empty.
func NewBeginCompositing(client DisplayItemClient, blend recording.BlendMode, opacity float64, bounds geom.Rect) DisplayItem {
	return newItem(client, TypeBeginCompositing, Compositing{Blend: blend, Opacity: opacity, Bounds: bounds})
}

// NewEndCompositing returns the end item of a compositing scope.
func NewEndCompositing(client DisplayItemClient) DisplayItem {
	return newItem(client, TypeEndCompositing, nil)
}

// NewBeginSubsequence returns the begin marker of a cacheable subsequence.
func NewBeginSubsequence(client DisplayItemClient) DisplayItem {
	return newItem(client, TypeSubsequence, nil)
}

// NewEndSubsequence returns the end marker of a subsequence.
func NewEndSubsequence(client DisplayItemClient) DisplayItem {
	return newItem(client, TypeEndSubsequence, nil)
}

func newCachedDrawing(client DisplayItemClient, t Type) DisplayItem {
	return newItem(client, CachedDrawingType(t), nil)
}

func newCachedSubsequence(client DisplayItemClient) DisplayItem {
	return newItem(client, TypeCachedSubsequence, nil)
}

func (it *DisplayItem) Client() DisplayItemClient { return it.client }
func (it *DisplayItem) Type() Type                { return it.typ }
func (it *DisplayItem) Kind() Kind                { return it.typ.Kind() }
func (it *DisplayItem) Payload() Payload          { return it.payload }

// SkippedCache reports whether the item was recorded inside a
// BeginSkippingCache/EndSkippingCache scope.
func (it *DisplayItem) SkippedCache() bool { return it.skippedCache }

// ID returns the cache key (client, type).
func (it *DisplayItem) ID() ItemID {
	return ItemID{Client: it.client.Cache().ID(), Type: it.typ}
}

// cachedID returns the key a placeholder stands for.
func (it *DisplayItem) cachedID() ItemID {
	t := TypeSubsequence
	if it.typ.IsCachedDrawing() {
		t = it.typ - cachedDrawingOffset
	}
	return ItemID{Client: it.client.Cache().ID(), Type: t}
}

// Picture returns the recorded picture of a drawing item, or nil.
func (it *DisplayItem) Picture() *recording.Picture {
	if d, ok := it.payload.(Drawing); ok {
		return d.Picture
	}
	return nil
}

func (it *DisplayItem) IsBegin() bool  { return it.Kind().IsBegin() }
func (it *DisplayItem) IsEnd() bool    { return it.Kind().IsEnd() }
func (it *DisplayItem) IsCached() bool { return it.typ.IsCached() }

// IsEndAndPairedWith reports whether it closes a scope opened by an item
// of type begin.
func (it *DisplayItem) IsEndAndPairedWith(begin Type) bool {
	end := begin.endType()
	return end != TypeUninitialized && it.typ == end
}

// IsCacheable reports whether later passes may reuse the item.
func (it *DisplayItem) IsCacheable() bool {
	if it.skippedCache {
		return false
	}
	return it.typ.IsDrawing() || it.typ == TypeSubsequence
}

// DrawsContent reports whether the item is a drawing with at least one
// draw operation.
func (it *DisplayItem) DrawsContent() bool {
	return it.typ.IsDrawing() && it.Picture().DrawsContent()
}

// Equal reports whether it and other have the same client, type and
// payload. Pictures are compared by their encoded commands.
func (it *DisplayItem) Equal(other *DisplayItem) bool {
	if it.typ != other.typ || it.client.Cache().ID() != other.client.Cache().ID() {
		return false
	}
	if it.payload == nil || other.payload == nil {
		return it.payload == nil && other.payload == nil
	}
	return it.payload.equal(other.payload)
}

// Size returns the approximate memory footprint of the item in bytes.
func (it *DisplayItem) Size() int {
	if it.payload == nil {
		return itemHeaderSize
	}
	return itemHeaderSize + it.payload.size()
}

func (it *DisplayItem) String() string {
	s := it.client.DebugName() + ":" + it.typ.String()
	if it.skippedCache {
		s += " skipped-cache"
	}
	if it.payload != nil {
		s += " " + it.payload.String()
	}
	return s
}
