package paint

import (
	"testing"

	"github.com/gogpu/paint/property"
)

func TestChunkIDMatches(t *testing.T) {
	a, b := newTestClient("a"), newTestClient("b")
	id := NewChunkID(a, TypeBackground)

	if !id.Matches(NewChunkID(a, TypeBackground)) {
		t.Error("ids of the same client and type should match")
	}
	if id.Matches(NewChunkID(a, TypeForeground)) {
		t.Error("ids of different types matched")
	}
	if id.Matches(NewChunkID(b, TypeBackground)) {
		t.Error("ids of different clients matched")
	}
	var none *ChunkID
	if none.Matches(none) || id.Matches(nil) {
		t.Error("nil id matched")
	}

	a.SetDisplayItemsUncached()
	fresh := NewChunkID(a, TypeBackground)
	if id.Matches(fresh) || fresh.Matches(id) {
		t.Error("id taken before invalidation matched a fresh one")
	}
	if !fresh.Matches(NewChunkID(a, TypeBackground)) {
		t.Error("fresh ids should match")
	}
}

func TestChunkerGroupsByProperties(t *testing.T) {
	c := newTestClient("c")
	other := property.RootState()
	other.Effect = property.NewEffect(nil, nil, nil, 0.5, 0)
	item := NewEndTransform(c)

	ch := newChunker()
	ch.add(0, &item)
	ch.add(1, &item)
	ch.update(nil, other, true)
	ch.add(2, &item)
	ch.update(NewChunkID(c, TypeForeground), property.RootState(), true)
	ch.add(3, &item)
	// Same properties: the chunk continues and the pending id is unused.
	ch.update(NewChunkID(c, TypeBackground), property.RootState(), true)
	ch.add(4, &item)

	if len(ch.chunks) != 3 {
		t.Fatalf("len(chunks) = %d, want 3: %v", len(ch.chunks), ch.chunks)
	}
	ranges := [][2]int{{0, 2}, {2, 3}, {3, 5}}
	for i, r := range ranges {
		if got := [2]int{ch.chunks[i].Begin, ch.chunks[i].End}; got != r {
			t.Errorf("chunk %d = %v, want %v", i, got, r)
		}
	}
	if got := ch.chunks[0].ID; got == nil || got.Type() != TypeEndTransform {
		t.Errorf("default chunk id = %v, want one taken from the first item", got)
	}
	if ch.chunks[1].ID != nil {
		t.Errorf("chunk 1 id = %v, want nil", ch.chunks[1].ID)
	}
	if got := ch.chunks[2].ID; got == nil || got.Type() != TypeForeground {
		t.Errorf("chunk 2 id = %v, want c:Foreground", got)
	}
	if size := ch.chunks[2].Size(); size != 2 {
		t.Errorf("Size() = %d, want 2", size)
	}
}
