// Package paintest provides clients and assertions for tests of code that
// paints through a paint.Controller.
package paintest

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/gogpu/paint"
	"github.com/gogpu/paint/geom"
	"github.com/gogpu/paint/recording"
)

// FakeClient is a display item client with a settable visual rect.
type FakeClient struct {
	paint.ClientCache
	name string
	rect geom.Rect
}

// NewFakeClient returns a client named name covering rect.
func NewFakeClient(name string, rect geom.Rect) *FakeClient {
	return &FakeClient{name: name, rect: rect}
}

func (c *FakeClient) DebugName() string         { return c.name }
func (c *FakeClient) VisualRect() geom.Rect     { return c.rect }
func (c *FakeClient) SetVisualRect(r geom.Rect) { c.rect = r }

// DrawRect paints bounds for client as a drawing of type t, reusing the
// cached drawing when the controller allows it. The colour depends on t
// so different types never compare equal.
func DrawRect(c *paint.Controller, client paint.DisplayItemClient, t paint.Type, bounds geom.Rect) {
	if c.UseCachedDrawingIfPossible(client, t) {
		return
	}
	r := paint.NewDrawingRecorder(c, client, t, bounds)
	r.Canvas().FillRect(bounds, typeColor(t))
	r.End()
}

// DrawRectColor is DrawRect with an explicit colour, for tests that change
// a drawing without changing its type.
func DrawRectColor(c *paint.Controller, client paint.DisplayItemClient, t paint.Type, bounds geom.Rect, col recording.RGBA) {
	if c.UseCachedDrawingIfPossible(client, t) {
		return
	}
	r := paint.NewDrawingRecorder(c, client, t, bounds)
	r.Canvas().FillRect(bounds, col)
	r.End()
}

func typeColor(t paint.Type) recording.RGBA {
	v := float64(int(t)%7+1) / 8
	return recording.RGB(v, 1-v, 0.5)
}

// Item names a display item by client and type.
type Item struct {
	Client string
	Type   paint.Type
}

func (i Item) String() string { return fmt.Sprintf("%s:%v", i.Client, i.Type) }

// Items lists the client name and type of every item of l.
func Items(l *paint.DisplayItemList) []Item {
	out := make([]Item, 0, l.Len())
	for i := 0; i < l.Len(); i++ {
		it := l.Item(i)
		out = append(out, Item{Client: it.Client().DebugName(), Type: it.Type()})
	}
	return out
}

// ExpectDisplayList fails t unless l holds exactly want, in order.
func ExpectDisplayList(t testing.TB, l *paint.DisplayItemList, want ...Item) {
	t.Helper()
	if diff := cmp.Diff(want, Items(l), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("display list mismatch (-want +got):\n%s", diff)
	}
}

// ChunkIDs returns the id of every chunk as "client:type", "<nil>" for a
// nil id.
func ChunkIDs(chunks []paint.PaintChunk) []string {
	out := make([]string, len(chunks))
	for i := range chunks {
		if id := chunks[i].ID; id != nil {
			out[i] = Item{Client: id.Client().DebugName(), Type: id.Type()}.String()
		} else {
			out[i] = "<nil>"
		}
	}
	return out
}

// ExpectRects fails t unless got and want hold the same rects, in any
// order.
func ExpectRects(t testing.TB, got []geom.Rect, want ...geom.Rect) {
	t.Helper()
	less := func(a, b geom.Rect) bool {
		if a.MinX != b.MinX {
			return a.MinX < b.MinX
		}
		if a.MinY != b.MinY {
			return a.MinY < b.MinY
		}
		if a.MaxX != b.MaxX {
			return a.MaxX < b.MaxX
		}
		return a.MaxY < b.MaxY
	}
	if diff := cmp.Diff(want, got, cmpopts.SortSlices(less), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("rects mismatch (-want +got):\n%s", diff)
	}
}

// ExpectInfinite fails t unless rects is the single infinite rect a new
// chunk gets.
func ExpectInfinite(t testing.TB, rects []geom.Rect) {
	t.Helper()
	if len(rects) != 1 || !rects[0].IsInfinite() {
		t.Errorf("rects = %v, want [infinite]", rects)
	}
}
