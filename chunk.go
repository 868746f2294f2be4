package paint

import (
	"fmt"

	"github.com/gogpu/paint/geom"
	"github.com/gogpu/paint/property"
)

// ChunkID identifies a paint chunk across commits. It captures the client's
// identity token and cache generation at creation, so an id taken before
// the client was invalidated or replaced never matches one taken after.
type ChunkID struct {
	client     DisplayItemClient
	token      uint64
	typ        Type
	generation uint64
}

// NewChunkID returns the id of a chunk started by client with type t.
func NewChunkID(client DisplayItemClient, t Type) *ChunkID {
	cache := client.Cache()
	return &ChunkID{
		client:     client,
		token:      cache.ID(),
		typ:        t,
		generation: cache.Generation(),
	}
}

// Client returns the client that owns the chunk.
func (id *ChunkID) Client() DisplayItemClient { return id.client }

// Type returns the type that tells the client's chunks apart.
func (id *ChunkID) Type() Type { return id.typ }

// Matches reports whether id and other name the same chunk. Both ids must
// be non-nil and their captured generation must still be the client's
// current one. A nil id matches nothing, not even another nil id.
func (id *ChunkID) Matches(other *ChunkID) bool {
	if id == nil || other == nil {
		return false
	}
	if id.token != other.token || id.typ != other.typ {
		return false
	}
	cache := id.client.Cache()
	if cache.ID() != id.token {
		return false
	}
	gen := cache.Generation()
	return id.generation == gen && other.generation == gen
}

func (id *ChunkID) String() string {
	if id == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s:%v@%d", id.client.DebugName(), id.typ, id.generation)
}

// PaintChunk is a run of consecutive display items painted under the
// same property state.
type PaintChunk struct {
	// Begin and End delimit the chunk's items, End exclusive.
	Begin, End int
	ID         *ChunkID
	Properties property.State
	// Bounds is the union of the visual rects of the chunk's items.
	Bounds geom.Rect
	// RasterInvalidationRects lists the areas that changed since the
	// previous commit. geom.InfiniteRect means the whole chunk.
	RasterInvalidationRects []geom.Rect
}

// Size returns the number of items in the chunk.
func (c *PaintChunk) Size() int { return c.End - c.Begin }

// Matches reports whether c can be compared with old for raster
// invalidation.
func (c *PaintChunk) Matches(old *PaintChunk) bool {
	return c.ID.Matches(old.ID)
}

func (c *PaintChunk) String() string {
	return fmt.Sprintf("[%d,%d) %v rects=%v", c.Begin, c.End, c.ID, c.RasterInvalidationRects)
}

// chunkMark is a property change requested at a new-list index.
type chunkMark struct {
	index int
	id    *ChunkID
	props property.State
}

// chunker groups items into chunks as they are appended.
type chunker struct {
	chunks     []PaintChunk
	props      property.State
	pendingID  *ChunkID
	hasPending bool
}

func newChunker() *chunker {
	return &chunker{props: property.RootState()}
}

// update sets the properties for the following items. An explicit id,
// including nil, names the next chunk that starts.
func (ch *chunker) update(id *ChunkID, props property.State, explicit bool) {
	ch.props = props.Normalize()
	ch.pendingID = id
	ch.hasPending = explicit
}

func (ch *chunker) add(index int, item *DisplayItem) {
	if n := len(ch.chunks); n > 0 && ch.chunks[n-1].Properties == ch.props {
		ch.chunks[n-1].End = index + 1
		return
	}
	id := ch.pendingID
	if !ch.hasPending {
		id = NewChunkID(item.client, item.typ)
	}
	ch.pendingID, ch.hasPending = nil, false
	ch.chunks = append(ch.chunks, PaintChunk{
		Begin:      index,
		End:        index + 1,
		ID:         id,
		Properties: ch.props,
	})
}
