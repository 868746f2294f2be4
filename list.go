package paint

import (
	"fmt"
	"strings"

	"github.com/gogpu/paint/geom"
	"github.com/gogpu/paint/recording"
)

// DisplayItemList is an append-only sequence of display items with one
// visual rect per item.
type DisplayItemList struct {
	items       []DisplayItem
	visualRects []geom.Rect
	// beginStack holds indices of begin items whose visual rect is
	// recorded and whose end is not yet.
	beginStack  []int
	// merges[i] holds the rects item i overwrote when its visual rect was
	// recorded, so RemoveLast can put them back.
	merges      []rectMerge
	maxItemSize int
}

// rectMerge records the begin rects changed by one AppendVisualRect call.
// scope is the rect of the begin closed by an end item before the end
// rect joined it; outer is the rect of the enclosing begin before the
// item's rect was merged into it. An index of -1 means nothing changed.
type rectMerge struct {
	scope     int
	scopeRect geom.Rect
	outer     int
	outerRect geom.Rect
}

// NewDisplayItemList returns an empty list with room for capacity items.
func NewDisplayItemList(capacity int) *DisplayItemList {
	return newDisplayItemList(capacity, DefaultMaxItemSize)
}

func newDisplayItemList(capacity, maxItemSize int) *DisplayItemList {
	return &DisplayItemList{
		items:       make([]DisplayItem, 0, capacity),
		visualRects: make([]geom.Rect, 0, capacity),
		merges:      make([]rectMerge, 0, capacity),
		maxItemSize: maxItemSize,
	}
}

// AllocateAndConstruct appends item and returns a pointer to the stored
// copy. The pointer is valid until the next append.
func (l *DisplayItemList) AllocateAndConstruct(item DisplayItem) *DisplayItem {
	if n := item.Size(); n > l.maxItemSize {
		panicf(ErrItemTooLarge, "%v is %d bytes, budget %d", &item, n, l.maxItemSize)
	}
	l.items = append(l.items, item)
	return &l.items[len(l.items)-1]
}

// AppendVisualRect records the visual rect of the last appended item.
// It must be called exactly once per item, in order.
//
// A begin item's rect grows to cover every rect recorded inside its
// scope. At the matching end both rects become the union of the begin
// rect, the children and the end rect, and that union flows into the
// enclosing scope.
func (l *DisplayItemList) AppendVisualRect(r geom.Rect) {
	i := len(l.visualRects)
	if i != len(l.items)-1 {
		panicf(ErrVisualRectOrder, "%d rects for %d items", i, len(l.items))
	}
	item := &l.items[i]
	m := rectMerge{scope: -1, outer: -1}
	switch {
	case item.IsBegin():
		l.visualRects = append(l.visualRects, r)
		l.merges = append(l.merges, m)
		l.beginStack = append(l.beginStack, i)
		return
	case item.IsEnd():
		if len(l.beginStack) == 0 {
			panicf(ErrMismatchedPair, "%v has no begin", item)
		}
		b := l.beginStack[len(l.beginStack)-1]
		if !item.IsEndAndPairedWith(l.items[b].typ) {
			panicf(ErrMismatchedPair, "%v closes %v", item, &l.items[b])
		}
		l.beginStack = l.beginStack[:len(l.beginStack)-1]
		m.scope, m.scopeRect = b, l.visualRects[b]
		r = l.visualRects[b].Union(r)
		l.visualRects[b] = r
	}
	l.visualRects = append(l.visualRects, r)
	if n := len(l.beginStack); n > 0 {
		top := l.beginStack[n-1]
		m.outer, m.outerRect = top, l.visualRects[top]
		l.visualRects[top] = l.visualRects[top].Union(r)
	}
	l.merges = append(l.merges, m)
}

// VisualRect returns the visual rect of item i.
func (l *DisplayItemList) VisualRect(i int) geom.Rect {
	if i < 0 || i >= len(l.visualRects) {
		panic(fmt.Sprintf("paint: visual rect index %d out of range [0,%d)", i, len(l.visualRects)))
	}
	return l.visualRects[i]
}

// Len returns the number of items.
func (l *DisplayItemList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.items)
}

// Item returns a pointer to item i.
func (l *DisplayItemList) Item(i int) *DisplayItem { return &l.items[i] }

// Items returns the items. The slice must not be modified.
func (l *DisplayItemList) Items() []DisplayItem {
	if l == nil {
		return nil
	}
	return l.items[:len(l.items):len(l.items)]
}

// Last returns the last item, or nil for an empty list.
func (l *DisplayItemList) Last() *DisplayItem {
	if len(l.items) == 0 {
		return nil
	}
	return &l.items[len(l.items)-1]
}

// RemoveLast removes the last item and its visual rect. Begin rects the
// item widened get their previous value back.
func (l *DisplayItemList) RemoveLast() {
	i := len(l.items) - 1
	if i < 0 {
		panic(ErrNothingToRemove)
	}
	if len(l.visualRects) > i {
		m := l.merges[i]
		if m.outer >= 0 {
			l.visualRects[m.outer] = m.outerRect
		}
		if m.scope >= 0 {
			l.visualRects[m.scope] = m.scopeRect
		}
		l.visualRects = l.visualRects[:i]
		l.merges = l.merges[:i]
		switch item := &l.items[i]; {
		case item.IsBegin():
			l.beginStack = l.beginStack[:len(l.beginStack)-1]
		case item.IsEnd():
			l.beginStack = append(l.beginStack, m.scope)
		}
	}
	l.items[i] = DisplayItem{}
	l.items = l.items[:i]
}

// Replay plays every item into b: drawings replay their pictures and
// scopes map to Save/Restore around the clip, transform or layer they
// open. Placeholders and subsequence markers emit nothing.
func (l *DisplayItemList) Replay(b recording.Backend) {
	l.replayRange(b, 0, l.Len())
}

func (l *DisplayItemList) replayRange(b recording.Backend, begin, end int) {
	for i := begin; i < end; i++ {
		item := &l.items[i]
		switch p := item.payload.(type) {
		case Drawing:
			p.Picture.Replay(b)
		case Clip:
			b.Save()
			b.ClipRect(p.Rect)
		case ClipPath:
			b.Save()
			b.ClipPath(p.Path, p.Rule)
		case Transform:
			b.Save()
			b.Concat(p.Matrix)
		case Compositing:
			b.Save()
			if !p.Bounds.IsEmpty() {
				b.ClipRect(p.Bounds)
			}
			b.PushLayer(p.Blend, p.Opacity)
		case nil:
			switch item.Kind() {
			case KindEndCompositing:
				b.PopLayer()
				b.Restore()
			case KindEndClip, KindEndClipPath, KindEndTransform:
				b.Restore()
			}
		}
	}
}

// String dumps one line per item with its visual rect, when recorded.
func (l *DisplayItemList) String() string {
	var sb strings.Builder
	for i := range l.items {
		fmt.Fprintf(&sb, "%d: %v", i, &l.items[i])
		if i < len(l.visualRects) {
			fmt.Fprintf(&sb, " %v", l.visualRects[i])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
