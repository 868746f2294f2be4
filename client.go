package paint

import (
	"sync/atomic"

	"github.com/gogpu/paint/geom"
)

var (
	nextToken      atomic.Uint64
	nextGeneration atomic.Uint64
)

// nextCacheGeneration returns a process-wide unique, never-zero
// generation. Controllers stamp validated clients with it.
func nextCacheGeneration() uint64 {
	return nextGeneration.Add(1)
}

// DisplayItemClient is anything that paints display items: a box, a text
// run, a scrollbar. The controller holds clients by reference only and
// never owns them.
type DisplayItemClient interface {
	DebugName() string
	// VisualRect is the client's paint bounds in the coordinates the
	// commit offset is applied to.
	VisualRect() geom.Rect
	// Cache returns the client's cache state. Embedding ClientCache
	// provides it.
	Cache() *ClientCache
}

// ClientCache holds the identity and cache bookkeeping of a client.
// Embed it in client types; the zero value is ready to use.
type ClientCache struct {
	token      uint64
	generation uint64
	cachedAt   uint64
}

// Cache returns c, so that embedding types satisfy DisplayItemClient.
func (c *ClientCache) Cache() *ClientCache { return c }

// ID returns the client's identity token, assigned on first use.
func (c *ClientCache) ID() uint64 {
	if c.token == 0 {
		c.token = nextToken.Add(1)
		c.generation = 1
	}
	return c.token
}

// Generation counts SetDisplayItemsUncached calls. Chunk ids capture it to
// tell a re-painted client apart from its earlier self.
func (c *ClientCache) Generation() uint64 {
	c.ID()
	return c.generation
}

// SetDisplayItemsUncached invalidates every cached display item of the
// client. The next paint records fresh items.
func (c *ClientCache) SetDisplayItemsUncached() {
	c.ID()
	c.generation++
	c.cachedAt = 0
}

func (c *ClientCache) setCachedAt(gen uint64) { c.cachedAt = gen }

func (c *ClientCache) isCachedAt(gen uint64) bool {
	return c.cachedAt != 0 && c.cachedAt == gen
}
