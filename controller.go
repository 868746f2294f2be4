package paint

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/paint/property"
)

// Controller records display items for one paint pass at a time, reuses
// items cached from the previous pass and commits the result as the new
// current list.
//
// A pass starts implicitly after NewController or a commit. Clients
// either ask for their cached output (UseCachedDrawingIfPossible,
// UseCachedSubsequenceIfPossible) or append fresh items. The pass ends
// with CommitNewDisplayItems.
//
// A Controller is not safe for concurrent use.
type Controller struct {
	opts controllerOptions
	log  *slog.Logger

	// Committed state.
	current         *DisplayItemList
	currentChunks   []PaintChunk
	currentChunkOf  []int
	cachedKeys      map[ItemID]int
	subsequenceEnd  map[int]int
	cacheGeneration uint64
	allInvalidated  bool

	// Pass state.
	newList    *DisplayItemList
	newFrom    []int
	marks      []chunkMark
	used       map[ItemID]struct{}
	claimed    map[int][]ItemID
	implicitAt map[int]struct{}
	beginStack []int
	endBegin   map[int]int
	skipping   int
	check      subsequenceCheck

	constructionDisabled bool
	stats                Stats
}

// NewController returns a controller with an empty current list.
func NewController(opts ...Option) *Controller {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	c := &Controller{
		opts:            o,
		log:             o.logger,
		current:         newDisplayItemList(0, o.maxItemSize),
		cachedKeys:      map[ItemID]int{},
		subsequenceEnd:  map[int]int{},
		cacheGeneration: nextCacheGeneration(),
	}
	c.resetPass()
	return c
}

func (c *Controller) logger() *slog.Logger {
	if c.log != nil {
		return c.log
	}
	return Logger()
}

func (c *Controller) resetPass() {
	c.newList = newDisplayItemList(c.opts.initialCapacity, c.opts.maxItemSize)
	c.newFrom = c.newFrom[:0]
	c.marks = nil
	c.used = map[ItemID]struct{}{}
	c.claimed = map[int][]ItemID{}
	c.implicitAt = map[int]struct{}{}
	c.beginStack = c.beginStack[:0]
	c.endBegin = map[int]int{}
	c.skipping = 0
	c.check = subsequenceCheck{}
}

// ClientCacheIsValid reports whether client's items in the current list
// may be reused. A client is valid after a commit that contained its
// items, until it calls SetDisplayItemsUncached or InvalidateAll runs.
func (c *Controller) ClientCacheIsValid(client DisplayItemClient) bool {
	return client.Cache().isCachedAt(c.cacheGeneration)
}

// InvalidateAll makes every client invalid. The next commit matches
// nothing against the current list and invalidates every chunk fully.
func (c *Controller) InvalidateAll() {
	c.cacheGeneration = nextCacheGeneration()
	c.allInvalidated = true
}

// SetDisplayItemConstructionDisabled drops every append and refuses cache
// reuse while disabled.
func (c *Controller) SetDisplayItemConstructionDisabled(disabled bool) {
	c.constructionDisabled = disabled
}

// DisplayItemConstructionIsDisabled reports the current setting.
func (c *Controller) DisplayItemConstructionIsDisabled() bool {
	return c.constructionDisabled
}

// BeginSkippingCache marks every item appended until the matching
// EndSkippingCache as not cacheable. Calls nest.
func (c *Controller) BeginSkippingCache() { c.skipping++ }

// EndSkippingCache closes a BeginSkippingCache scope.
func (c *Controller) EndSkippingCache() {
	if c.skipping == 0 {
		panic("paint: EndSkippingCache without BeginSkippingCache")
	}
	c.skipping--
}

// IsSkippingCache reports whether a skip-cache scope is open.
func (c *Controller) IsSkippingCache() bool { return c.skipping > 0 }

// UnderInvalidationChecking reports whether the controller verifies cached
// content instead of reusing it.
func (c *Controller) UnderInvalidationChecking() bool { return c.opts.checking }

// cacheUsable reports whether any reuse can happen at all in this pass.
func (c *Controller) cacheUsable() bool {
	return !c.opts.cacheDisabled && !c.constructionDisabled &&
		c.skipping == 0 && !c.allInvalidated
}

// UseCachedDrawingIfPossible appends a placeholder for the cached drawing
// (client, t) and reports true, or reports false when the client has to
// paint it again.
func (c *Controller) UseCachedDrawingIfPossible(client DisplayItemClient, t Type) bool {
	if !t.IsDrawing() {
		panic(fmt.Sprintf("paint: UseCachedDrawingIfPossible with non-drawing type %v", t))
	}
	if c.opts.checking || !c.cacheUsable() || !c.ClientCacheIsValid(client) {
		return false
	}
	key := ItemID{Client: client.Cache().ID(), Type: t}
	if _, ok := c.cachedKeys[key]; !ok || c.isUsed(key) {
		return false
	}
	c.appendPlaceholder(newCachedDrawing(client, t), []ItemID{key})
	return true
}

// UseCachedSubsequenceIfPossible appends a placeholder standing for the
// whole cached subsequence of client and reports true, or reports false
// when the client has to paint it again.
//
// With under-invalidation checking enabled it always reports false; for a
// valid client the repainted subsequence is then compared item by item
// with the cached one.
func (c *Controller) UseCachedSubsequenceIfPossible(client DisplayItemClient) bool {
	if !c.cacheUsable() || !c.ClientCacheIsValid(client) {
		return false
	}
	key := ItemID{Client: client.Cache().ID(), Type: TypeSubsequence}
	begin, ok := c.cachedKeys[key]
	if !ok {
		return false
	}
	end := c.subsequenceEnd[begin]
	if c.opts.checking {
		if !c.check.active() {
			c.check = subsequenceCheck{
				begin:  begin,
				end:    end + 1,
				prefix: fmt.Sprintf("(In cached subsequence of %s)", client.DebugName()),
			}
		}
		return false
	}
	var keys []ItemID
	for j := begin; j <= end; j++ {
		item := c.current.Item(j)
		if !item.IsCacheable() {
			continue
		}
		k := item.ID()
		if c.isUsed(k) {
			return false
		}
		keys = append(keys, k)
	}
	c.appendPlaceholder(newCachedSubsequence(client), keys)
	return true
}

func (c *Controller) isUsed(k ItemID) bool {
	_, ok := c.used[k]
	return ok
}

func (c *Controller) claim(index int, keys ...ItemID) {
	for _, k := range keys {
		c.used[k] = struct{}{}
	}
	c.claimed[index] = append(c.claimed[index], keys...)
}

func (c *Controller) appendPlaceholder(item DisplayItem, keys []ItemID) {
	index := c.newList.Len()
	c.newList.AllocateAndConstruct(item)
	c.newFrom = append(c.newFrom, -1)
	c.claim(index, keys...)
}

// CreateAndAppend appends a freshly recorded item.
//
// A drawing equal to the cached item of a valid client is replaced by a
// placeholder, so the cached copy is kept. With under-invalidation
// checking enabled the item is verified against its cached copy instead.
func (c *Controller) CreateAndAppend(item DisplayItem) {
	if c.constructionDisabled {
		return
	}
	if item.typ.IsCached() {
		panic(fmt.Sprintf("paint: CreateAndAppend with placeholder type %v", item.typ))
	}
	if c.skipping > 0 {
		item.skippedCache = true
	}
	index := c.newList.Len()
	c.trackPair(&item, index)

	if !c.opts.checking && c.substituteCached(&item) {
		c.implicitAt[index] = struct{}{}
		return
	}
	c.newList.AllocateAndConstruct(item)
	c.newFrom = append(c.newFrom, -1)
	if c.opts.checking {
		c.checkUnderInvalidation(index)
	}
}

// trackPair maintains the stack of open begin items.
func (c *Controller) trackPair(item *DisplayItem, index int) {
	switch {
	case item.IsBegin():
		c.beginStack = append(c.beginStack, index)
	case item.IsEnd():
		n := len(c.beginStack)
		if n == 0 {
			panicf(ErrMismatchedPair, "%v has no open begin item", item)
		}
		begin := c.beginStack[n-1]
		if !item.IsEndAndPairedWith(c.newList.Item(begin).typ) {
			panicf(ErrMismatchedPair, "%v cannot close %v", item, c.newList.Item(begin))
		}
		c.beginStack = c.beginStack[:n-1]
		c.endBegin[index] = begin
	}
}

func (c *Controller) substituteCached(item *DisplayItem) bool {
	if !item.typ.IsDrawing() || item.skippedCache || !c.cacheUsable() || !c.ClientCacheIsValid(item.client) {
		return false
	}
	key := item.ID()
	j, ok := c.cachedKeys[key]
	if !ok || c.isUsed(key) || !item.Equal(c.current.Item(j)) {
		return false
	}
	c.appendPlaceholder(newCachedDrawing(item.client, item.typ), []ItemID{key})
	return true
}

// EndItem closes the scope opened by the last open begin item. When that
// begin item is the last item appended, the pair would be a no-op and the
// begin item is removed instead. A subsequence begin is only removed when
// it skipped the cache; empty cacheable subsequences are kept.
func (c *Controller) EndItem(end DisplayItem) {
	if c.constructionDisabled {
		return
	}
	if last := c.newList.Last(); last != nil && last.IsBegin() && end.IsEndAndPairedWith(last.typ) {
		if last.typ != TypeSubsequence || last.skippedCache {
			c.RemoveLastDisplayItem()
			return
		}
	}
	c.CreateAndAppend(end)
}

// RemoveLastDisplayItem removes the last appended item and undoes its
// bookkeeping.
func (c *Controller) RemoveLastDisplayItem() {
	index := c.newList.Len() - 1
	if index < 0 {
		panic(ErrNothingToRemove)
	}
	item := c.newList.Item(index)
	for _, k := range c.claimed[index] {
		delete(c.used, k)
	}
	delete(c.claimed, index)
	delete(c.implicitAt, index)
	switch {
	case item.IsBegin():
		c.beginStack = c.beginStack[:len(c.beginStack)-1]
	case item.IsEnd():
		c.beginStack = append(c.beginStack, c.endBegin[index])
		delete(c.endBegin, index)
	}
	if c.check.active() {
		c.check.removeLast()
	}
	c.newList.RemoveLast()
	c.newFrom = c.newFrom[:index]

	// Property changes recorded after the removed item now apply at its
	// index; the most recent one wins.
	n := 0
	for _, m := range c.marks {
		if m.index > index {
			m.index = index
		}
		if n > 0 && c.marks[n-1].index == m.index {
			c.marks[n-1] = m
			continue
		}
		c.marks[n] = m
		n++
	}
	c.marks = c.marks[:n]
}

// UpdateCurrentPaintChunkProperties sets the property state of the items
// appended next. A non-nil id names the chunk that starts with them; a
// nil id gives that chunk no identity, so it never matches an old chunk.
func (c *Controller) UpdateCurrentPaintChunkProperties(id *ChunkID, props property.State) {
	m := chunkMark{index: c.newList.Len(), id: id, props: props.Normalize()}
	if n := len(c.marks); n > 0 && c.marks[n-1].index == m.index {
		c.marks[n-1] = m
		return
	}
	c.marks = append(c.marks, m)
}

// DisplayItemList returns the committed list.
func (c *Controller) DisplayItemList() *DisplayItemList { return c.current }

// PaintChunks returns the committed chunks.
func (c *Controller) PaintChunks() []PaintChunk { return c.currentChunks }

// NewDisplayItemList returns the list of the pass in progress, with
// placeholders still unresolved.
func (c *Controller) NewDisplayItemList() *DisplayItemList { return c.newList }

// Stats returns the statistics of the last commit.
func (c *Controller) Stats() Stats { return c.stats }
