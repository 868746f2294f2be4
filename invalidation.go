package paint

import "github.com/gogpu/paint/geom"

// generateRasterInvalidations fills the invalidation rects of every new
// chunk and returns how many rects were produced.
func (c *Controller) generateRasterInvalidations(old *DisplayItemList, oldChunks []PaintChunk,
	merged *DisplayItemList, chunks []PaintChunk, from, movedTo []int) int {
	m := chunkMatcher{
		old:     oldChunks,
		matched: make([]bool, len(oldChunks)),
		index:   map[uint64][]int{},
	}
	total := 0
	for i := range chunks {
		nc := &chunks[i]
		oi := -1
		if !c.allInvalidated && nc.ID != nil {
			oi = m.match(nc)
		}
		if oi < 0 {
			nc.RasterInvalidationRects = []geom.Rect{geom.InfiniteRect}
		} else {
			nc.RasterInvalidationRects = invalidateChunk(old, &oldChunks[oi], merged, nc, from, movedTo)
		}
		total += len(nc.RasterInvalidationRects)
	}
	return total
}

// chunkMatcher pairs new chunks with old ones, trying the next old chunk
// first and falling back to an index of the old chunks skipped so far.
type chunkMatcher struct {
	old     []PaintChunk
	next    int
	matched []bool
	index   map[uint64][]int
}

func (m *chunkMatcher) match(nc *PaintChunk) int {
	for m.next < len(m.old) {
		i := m.next
		m.next++
		if !m.matched[i] && nc.Matches(&m.old[i]) {
			m.matched[i] = true
			return i
		}
		if id := m.old[i].ID; id != nil {
			m.index[id.token] = append(m.index[id.token], i)
		}
	}
	for _, i := range m.index[nc.ID.token] {
		if !m.matched[i] && nc.Matches(&m.old[i]) {
			m.matched[i] = true
			return i
		}
	}
	return -1
}

type placedItem struct {
	index int
	rect  geom.Rect
}

// invalidateChunk compares a new chunk with the old chunk it matched.
//
// Old side, over the old chunk's drawings: an item that was not reused
// invalidates its old rect; an item reused outside the new chunk
// invalidates its new rect; an item reused in front of fewer items than
// before invalidates its new rect where it overlaps an item it was moved
// behind. New side: drawings recorded fresh, or reused from outside the
// old chunk, invalidate their new rect. Each side reports a client once.
func invalidateChunk(old *DisplayItemList, oc *PaintChunk, merged *DisplayItemList, nc *PaintChunk, from, movedTo []int) []geom.Rect {
	rects := []geom.Rect{}
	add := func(seen map[uint64]struct{}, client DisplayItemClient, r geom.Rect) {
		token := client.Cache().ID()
		if _, ok := seen[token]; ok {
			return
		}
		seen[token] = struct{}{}
		rects = append(rects, r)
	}

	oldSeen := map[uint64]struct{}{}
	highest := -1
	var placed []placedItem
	for j := oc.Begin; j < oc.End; j++ {
		item := old.Item(j)
		if !item.DrawsContent() {
			continue
		}
		n := movedTo[j]
		switch {
		case n < 0:
			add(oldSeen, item.client, old.VisualRect(j))
		case n < nc.Begin || n >= nc.End:
			add(oldSeen, item.client, merged.VisualRect(n))
		default:
			r := merged.VisualRect(n)
			if n < highest {
				for _, p := range placed {
					if p.index > n && p.rect.Intersects(r) {
						add(oldSeen, item.client, r)
						break
					}
				}
			} else {
				highest = n
			}
			placed = append(placed, placedItem{index: n, rect: r})
		}
	}

	newSeen := map[uint64]struct{}{}
	for n := nc.Begin; n < nc.End; n++ {
		item := merged.Item(n)
		if !item.DrawsContent() {
			continue
		}
		if j := from[n]; j < oc.Begin || j >= oc.End {
			add(newSeen, item.client, merged.VisualRect(n))
		}
	}
	return rects
}
