package paint

import (
	"github.com/gogpu/paint/geom"
)

// CommitNewDisplayItems ends the pass. Placeholders are replaced by the
// cached items they stand for, visual rects are taken from the clients
// translated by -offset, chunks are rebuilt and compared with the previous
// ones, and the result becomes the current list. Every client with items
// in the new list becomes valid, except clients that recorded items while
// skipping the cache.
//
// Commit panics with ErrUnclosedPair when a begin item is still open.
func (c *Controller) CommitNewDisplayItems(offset geom.Vec2) {
	if n := len(c.beginStack); n > 0 {
		panicf(ErrUnclosedPair, "%v", c.newList.Item(c.beginStack[n-1]))
	}

	old := c.current
	oldChunks := c.currentChunks
	stats := Stats{
		Commits:          c.stats.Commits + 1,
		ImplicitlyCached: len(c.implicitAt),
	}

	movedTo := make([]int, old.Len())
	for i := range movedTo {
		movedTo[i] = -1
	}
	f := &finder{old: old, movedTo: movedTo, index: map[ItemID][]int{}, stats: &stats}

	merged := newDisplayItemList(c.newList.Len(), c.opts.maxItemSize)
	from := make([]int, 0, c.newList.Len())
	ch := newChunker()
	shift := offset.Neg()
	appendItem := func(item DisplayItem, oldIndex int) {
		stored := merged.AllocateAndConstruct(item)
		merged.AppendVisualRect(stored.client.VisualRect().Translate(shift))
		from = append(from, oldIndex)
		if oldIndex >= 0 {
			movedTo[oldIndex] = merged.Len() - 1
		}
		ch.add(merged.Len()-1, stored)
	}

	marks := c.marks
	for k := range c.newList.items {
		for len(marks) > 0 && marks[0].index == k {
			ch.update(marks[0].id, marks[0].props, true)
			marks = marks[1:]
		}
		item := &c.newList.items[k]
		switch {
		case item.typ.IsCachedDrawing():
			j := f.find(item.cachedID())
			f.matched(j, j)
			appendItem(old.items[j], j)
			stats.CachedNewItems++
		case item.typ == TypeCachedSubsequence:
			b := f.find(item.cachedID())
			e := c.subsequenceEnd[b]
			f.matched(b, e)
			outer := ch.props
			for j := b; j <= e; j++ {
				if oc := c.currentChunkOf[j]; j == b || oc != c.currentChunkOf[j-1] {
					ch.update(oldChunks[oc].ID, oldChunks[oc].Properties, true)
				}
				appendItem(old.items[j], j)
			}
			ch.update(nil, outer, false)
			stats.CachedNewItems += e - b + 1
		default:
			appendItem(*item, c.newFrom[k])
		}
	}

	chunks := ch.chunks
	chunkOf := make([]int, merged.Len())
	for i := range chunks {
		pc := &chunks[i]
		for n := pc.Begin; n < pc.End; n++ {
			chunkOf[n] = i
			pc.Bounds = pc.Bounds.Union(merged.visualRects[n])
		}
	}
	stats.InvalidationRects = c.generateRasterInvalidations(old, oldChunks, merged, chunks, from, movedTo)

	log := c.logger()
	for j := range movedTo {
		item := old.Item(j)
		if movedTo[j] >= 0 || !item.IsCacheable() || !c.ClientCacheIsValid(item.client) {
			continue
		}
		stats.DroppedValidItems++
		if c.opts.checking {
			log.Warn("paint: cached item of valid client dropped", "item", item.String())
		} else {
			log.Debug("paint: cached item of valid client dropped", "item", item.String())
		}
	}

	gen := nextCacheGeneration()
	var skipped []*ClientCache
	for i := range merged.items {
		item := &merged.items[i]
		item.client.Cache().setCachedAt(gen)
		if item.skippedCache {
			skipped = append(skipped, item.client.Cache())
		}
	}
	for _, cache := range skipped {
		cache.SetDisplayItemsUncached()
	}
	c.cacheGeneration = gen
	c.allInvalidated = false

	c.current = merged
	c.currentChunks = chunks
	c.currentChunkOf = chunkOf
	c.indexCurrent()

	stats.NewItems = merged.Len()
	stats.Chunks = len(chunks)
	c.stats = stats
	log.Debug("paint: commit", "stats", stats)

	c.resetPass()
}

// indexCurrent rebuilds the cache key index and the subsequence ranges of
// the current list.
func (c *Controller) indexCurrent() {
	c.cachedKeys = make(map[ItemID]int, c.current.Len())
	c.subsequenceEnd = map[int]int{}
	var stack []int
	for i := range c.current.items {
		item := &c.current.items[i]
		switch {
		case item.IsBegin():
			stack = append(stack, i)
		case item.IsEnd():
			b := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if item.typ == TypeEndSubsequence {
				c.subsequenceEnd[b] = i
			}
		}
		if !item.IsCacheable() {
			continue
		}
		if _, dup := c.cachedKeys[item.ID()]; !dup {
			c.cachedKeys[item.ID()] = i
		}
	}
}

// finder locates the previous item a placeholder stands for. It first
// scans forward from the item after the last match, which is cheap when
// both lists share their order, then looks up an index of previous items
// skipped so far, and finally scans forward indexing every cacheable item
// it passes.
type finder struct {
	old         *DisplayItemList
	movedTo     []int
	nextToMatch int
	nextToIndex int
	index       map[ItemID][]int
	stats       *Stats
}

func (f *finder) find(key ItemID) int {
	items := f.old.items
	for i := f.nextToMatch; i < len(items); i++ {
		if f.movedTo[i] >= 0 {
			break
		}
		item := &items[i]
		if !item.IsCacheable() {
			continue
		}
		if item.ID() == key {
			f.stats.SequentialMatches++
			return i
		}
		break
	}
	for _, i := range f.index[key] {
		if f.movedTo[i] < 0 {
			f.stats.OutOfOrderMatches++
			return i
		}
	}
	for i := f.nextToIndex; i < len(items); i++ {
		item := &items[i]
		if !item.IsCacheable() {
			continue
		}
		id := item.ID()
		if id == key {
			f.stats.SequentialMatches++
			return i
		}
		f.index[id] = append(f.index[id], i)
		f.stats.IndexedItems++
	}
	panicf(ErrCachedItemNotFound, "client %d type %v", key.Client, key.Type)
	return -1
}

// matched advances the scan positions past the previous items [begin,end].
func (f *finder) matched(begin, end int) {
	f.nextToMatch = end + 1
	f.nextToIndex = max(f.nextToIndex, f.nextToMatch)
}
