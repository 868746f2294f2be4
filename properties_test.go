package paint_test

import (
	"fmt"
	"testing"

	"github.com/gogpu/paint"
	"github.com/gogpu/paint/geom"
	"github.com/gogpu/paint/paintest"
)

// scene paints rows of boxes, one chunk per row.
type scene struct {
	rows  []*paintest.FakeClient
	boxes [][]*paintest.FakeClient
}

func newScene(rows, cols int) *scene {
	s := &scene{}
	for r := 0; r < rows; r++ {
		s.rows = append(s.rows, paintest.NewFakeClient(fmt.Sprintf("row%d", r), rect(0, float64(r*20), float64(cols*20), 20)))
		var boxes []*paintest.FakeClient
		for c := 0; c < cols; c++ {
			boxes = append(boxes, paintest.NewFakeClient(fmt.Sprintf("box%d.%d", r, c), rect(float64(c*20), float64(r*20), 10, 10)))
		}
		s.boxes = append(s.boxes, boxes)
	}
	return s
}

func (s *scene) paint(c *paint.Controller) {
	for r, row := range s.rows {
		c.UpdateCurrentPaintChunkProperties(paint.NewChunkID(row, bg), effect(0.5))
		paintest.DrawRect(c, row, bg, row.VisualRect())
		for _, box := range s.boxes[r] {
			paintest.DrawRect(c, box, bg, box.VisualRect())
			paintest.DrawRect(c, box, fg, box.VisualRect())
		}
	}
}

func TestRepaintWithoutChangesIsIdempotent(t *testing.T) {
	forEachMode(t, func(ct *controllerTest) {
		s := newScene(3, 4)
		s.paint(ct.c)
		ct.commit()
		want := paintest.Items(ct.c.DisplayItemList())

		for pass := 0; pass < 3; pass++ {
			s.paint(ct.c)
			ct.commit()
			paintest.ExpectDisplayList(ct, ct.c.DisplayItemList(), want...)
			ct.expectStats(len(want), len(want), 0, 0)
			for i, chunk := range ct.expectChunks(3) {
				if len(chunk.RasterInvalidationRects) != 0 {
					ct.Errorf("pass %d chunk %d rects = %v, want none", pass, i, chunk.RasterInvalidationRects)
				}
			}
		}
	})
}

func TestInvalidateAll(t *testing.T) {
	forEachMode(t, func(ct *controllerTest) {
		s := newScene(2, 2)
		s.paint(ct.c)
		ct.commit()

		ct.c.InvalidateAll()
		for _, box := range s.boxes[0] {
			if ct.c.ClientCacheIsValid(box) {
				ct.Errorf("ClientCacheIsValid(%s) = true after InvalidateAll", box.DebugName())
			}
		}
		if ct.c.UseCachedDrawingIfPossible(s.rows[0], bg) {
			ct.Fatal("UseCachedDrawingIfPossible() = true after InvalidateAll")
		}
		s.paint(ct.c)
		ct.commit()
		ct.expectStats(0, 0, 0, 0)
		for _, chunk := range ct.expectChunks(2) {
			paintest.ExpectInfinite(ct, chunk.RasterInvalidationRects)
		}

		// The flag only covers one commit.
		s.paint(ct.c)
		ct.commit()
		for _, chunk := range ct.expectChunks(2) {
			paintest.ExpectRects(ct, chunk.RasterInvalidationRects)
		}
	})
}

func TestChunkIdentityAfterInvalidation(t *testing.T) {
	forEachMode(t, func(ct *controllerTest) {
		s := newScene(2, 1)
		s.paint(ct.c)
		ct.commit()

		s.rows[1].SetDisplayItemsUncached()
		s.paint(ct.c)
		ct.commit()
		chunks := ct.expectChunks(2)
		paintest.ExpectRects(ct, chunks[0].RasterInvalidationRects)
		paintest.ExpectInfinite(ct, chunks[1].RasterInvalidationRects)

		// A new client owning a chunk never matches an old chunk.
		s.rows[1] = paintest.NewFakeClient("row1", s.rows[1].VisualRect())
		s.paint(ct.c)
		ct.commit()
		chunks = ct.expectChunks(2)
		paintest.ExpectRects(ct, chunks[0].RasterInvalidationRects)
		paintest.ExpectInfinite(ct, chunks[1].RasterInvalidationRects)
	})
}

func TestDisjointSwapNeedsNoInvalidation(t *testing.T) {
	forEachMode(t, func(ct *controllerTest) {
		left := paintest.NewFakeClient("left", rect(0, 0, 10, 10))
		right := paintest.NewFakeClient("right", rect(20, 0, 10, 10))

		ct.rootChunk()
		ct.drawBoth(left)
		ct.drawBoth(right)
		ct.commit()

		ct.rootChunk()
		ct.drawBoth(right)
		ct.drawBoth(left)
		ct.commit()
		ct.expectList(item{Client: "right", Type: bg}, item{Client: "right", Type: fg}, item{Client: "left", Type: bg}, item{Client: "left", Type: fg})
		paintest.ExpectRects(ct, ct.expectChunks(1)[0].RasterInvalidationRects)
	})
}

func TestCommitOffsetAppliesToChunkBounds(t *testing.T) {
	c := paint.NewController()
	box := paintest.NewFakeClient("box", rect(10, 10, 10, 10))
	paintest.DrawRect(c, box, bg, rect(10, 10, 10, 10))
	c.CommitNewDisplayItems(geom.Vec2{X: 10, Y: 5})
	if got, want := c.PaintChunks()[0].Bounds, rect(0, 5, 10, 10); got != want {
		t.Errorf("Bounds = %v, want %v", got, want)
	}
}
