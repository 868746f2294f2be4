package paint

import (
	"golang.org/x/image/math/f64"

	"github.com/gogpu/paint/geom"
	"github.com/gogpu/paint/property"
	"github.com/gogpu/paint/recording"
)

// DrawingRecorder records one drawing item. Paint into Canvas and call
// End to append the item.
//
//	if !c.UseCachedDrawingIfPossible(box, paint.TypeBackground) {
//		r := paint.NewDrawingRecorder(c, box, paint.TypeBackground, bounds)
//		r.Canvas().FillRect(bounds, color)
//		r.End()
//	}
type DrawingRecorder struct {
	c      *Controller
	client DisplayItemClient
	typ    Type
	rec    *recording.Recorder
}

// NewDrawingRecorder starts recording a drawing of type t for client.
func NewDrawingRecorder(c *Controller, client DisplayItemClient, t Type, bounds geom.Rect) *DrawingRecorder {
	return &DrawingRecorder{c: c, client: client, typ: t, rec: recording.NewRecorder(bounds)}
}

// Canvas returns the recorder the drawing is painted into.
func (r *DrawingRecorder) Canvas() *recording.Recorder { return r.rec }

// End appends the drawing. It does nothing while display item
// construction is disabled.
func (r *DrawingRecorder) End() {
	if r.c.DisplayItemConstructionIsDisabled() {
		return
	}
	r.c.CreateAndAppend(NewDrawing(r.client, r.typ, r.rec.Finish()))
}

// ScopeRecorder closes a begin item appended by one of the Begin helpers.
type ScopeRecorder struct {
	c   *Controller
	end *DisplayItem
}

// End appends the matching end item, or drops the begin item when nothing
// was painted in between. Calling End on a nil recorder is a no-op.
func (r *ScopeRecorder) End() {
	if r == nil || r.end == nil {
		return
	}
	r.c.EndItem(*r.end)
	r.end = nil
}

func beginScope(c *Controller, begin, end DisplayItem) *ScopeRecorder {
	if c.DisplayItemConstructionIsDisabled() {
		return &ScopeRecorder{c: c}
	}
	c.CreateAndAppend(begin)
	return &ScopeRecorder{c: c, end: &end}
}

// BeginClip clips the following items to rect. t must be a clip type.
func BeginClip(c *Controller, client DisplayItemClient, t Type, rect geom.Rect) *ScopeRecorder {
	return beginScope(c, NewBeginClip(client, t, rect), NewEndClip(client, t))
}

// BeginClipPath clips the following items to path.
func BeginClipPath(c *Controller, client DisplayItemClient, path *recording.Path, rule recording.FillRule) *ScopeRecorder {
	return beginScope(c, NewBeginClipPath(client, path, rule), NewEndClipPath(client))
}

// BeginTransform applies m to the following items. An identity transform
// appends nothing.
func BeginTransform(c *Controller, client DisplayItemClient, m f64.Aff3) *ScopeRecorder {
	if m == property.Identity {
		return &ScopeRecorder{c: c}
	}
	return beginScope(c, NewBeginTransform(client, m), NewEndTransform(client))
}

// BeginCompositing groups the following items into a layer composited
// with blend and opacity.
func BeginCompositing(c *Controller, client DisplayItemClient, blend recording.BlendMode, opacity float64, bounds geom.Rect) *ScopeRecorder {
	return beginScope(c, NewBeginCompositing(client, blend, opacity, bounds), NewEndCompositing(client))
}

// SubsequenceRecorder brackets the items of a client so the whole range
// can be reused as one subsequence next time.
//
//	if !c.UseCachedSubsequenceIfPossible(container) {
//		r := paint.BeginSubsequence(c, container)
//		paintChildren()
//		r.End()
//	}
type SubsequenceRecorder struct {
	c      *Controller
	client DisplayItemClient
	done   bool
}

// BeginSubsequence appends the begin item of client's subsequence.
func BeginSubsequence(c *Controller, client DisplayItemClient) *SubsequenceRecorder {
	r := &SubsequenceRecorder{c: c, client: client, done: c.DisplayItemConstructionIsDisabled()}
	if !r.done {
		c.CreateAndAppend(NewBeginSubsequence(client))
	}
	return r
}

// End appends the end item of the subsequence.
func (r *SubsequenceRecorder) End() {
	if r.done {
		return
	}
	r.done = true
	r.c.EndItem(NewEndSubsequence(r.client))
}
