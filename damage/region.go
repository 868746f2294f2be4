// Package damage accumulates raster invalidation rects into a tile bitmap,
// so a rasterizer can repaint only the tiles a commit touched.
//
// A Region is safe for concurrent use: marking and taking use atomic
// operations on the bitmap words.
package damage

import (
	"math"
	"math/bits"
	"sync/atomic"

	"github.com/gogpu/paint/geom"
)

// DefaultTileSize is the tile edge in pixels used when NewRegion is given
// a non-positive tile size.
const DefaultTileSize = 64

// Region tracks dirty tiles of a width x height pixel area.
//
// Bit index = ty*tilesX + tx, packed 64 tiles per word.
type Region struct {
	words    []atomic.Uint64
	tilesX   int
	tilesY   int
	tileSize int
}

// NewRegion returns a clean region covering width x height pixels, or nil
// if either dimension is not positive.
func NewRegion(width, height, tileSize int) *Region {
	if width <= 0 || height <= 0 {
		return nil
	}
	if tileSize <= 0 {
		tileSize = DefaultTileSize
	}
	tx := (width + tileSize - 1) / tileSize
	ty := (height + tileSize - 1) / tileSize
	return &Region{
		words:    make([]atomic.Uint64, (tx*ty+63)/64),
		tilesX:   tx,
		tilesY:   ty,
		tileSize: tileSize,
	}
}

// Mark marks tile (tx, ty). Out-of-range tiles are ignored.
func (d *Region) Mark(tx, ty int) {
	if tx < 0 || tx >= d.tilesX || ty < 0 || ty >= d.tilesY {
		return
	}
	idx := ty*d.tilesX + tx
	d.words[idx/64].Or(1 << (idx & 63))
}

// MarkRect marks every tile r touches. An infinite rect marks all tiles;
// an empty rect marks nothing.
func (d *Region) MarkRect(r geom.Rect) {
	if r.IsInfinite() {
		d.MarkAll()
		return
	}
	if r.IsEmpty() {
		return
	}
	ts := float64(d.tileSize)
	tx1 := clampTile(math.Floor(r.MinX/ts), d.tilesX)
	ty1 := clampTile(math.Floor(r.MinY/ts), d.tilesY)
	tx2 := clampTile(math.Ceil(r.MaxX/ts)-1, d.tilesX)
	ty2 := clampTile(math.Ceil(r.MaxY/ts)-1, d.tilesY)
	if r.MaxX <= 0 || r.MaxY <= 0 || r.MinX >= float64(d.tilesX)*ts || r.MinY >= float64(d.tilesY)*ts {
		return
	}
	for ty := ty1; ty <= ty2; ty++ {
		for tx := tx1; tx <= tx2; tx++ {
			d.Mark(tx, ty)
		}
	}
}

func clampTile(v float64, n int) int {
	switch {
	case v < 0:
		return 0
	case v >= float64(n):
		return n - 1
	}
	return int(v)
}

// MarkAll marks every tile.
func (d *Region) MarkAll() {
	total := d.tilesX * d.tilesY
	full := total / 64
	for i := 0; i < full; i++ {
		d.words[i].Store(^uint64(0))
	}
	if rem := total % 64; rem > 0 {
		d.words[full].Store(uint64(1)<<rem - 1)
	}
}

// Clear marks every tile clean.
func (d *Region) Clear() {
	for i := range d.words {
		d.words[i].Store(0)
	}
}

// IsDirty reports whether tile (tx, ty) is marked.
func (d *Region) IsDirty(tx, ty int) bool {
	if tx < 0 || tx >= d.tilesX || ty < 0 || ty >= d.tilesY {
		return false
	}
	idx := ty*d.tilesX + tx
	return d.words[idx/64].Load()&(1<<(idx&63)) != 0
}

// IsEmpty reports whether no tile is marked.
func (d *Region) IsEmpty() bool {
	for i := range d.words {
		if d.words[i].Load() != 0 {
			return false
		}
	}
	return true
}

// Count returns the number of marked tiles.
func (d *Region) Count() int {
	n := 0
	for i := range d.words {
		n += bits.OnesCount64(d.words[i].Load())
	}
	return n
}

// ForEachDirty calls fn for each marked tile in row-major order.
func (d *Region) ForEachDirty(fn func(tx, ty int)) {
	d.each(func(i int) uint64 { return d.words[i].Load() }, fn)
}

// Take returns the pixel rects of the marked tiles and clears them.
// Adjacent tiles of a row are merged into one rect.
func (d *Region) Take() []geom.Rect {
	var tiles [][2]int
	d.each(func(i int) uint64 { return d.words[i].Swap(0) }, func(tx, ty int) {
		tiles = append(tiles, [2]int{tx, ty})
	})
	return d.rowRects(tiles)
}

// Rects returns the pixel rects of the marked tiles, merged per row,
// without clearing them.
func (d *Region) Rects() []geom.Rect {
	var tiles [][2]int
	d.ForEachDirty(func(tx, ty int) { tiles = append(tiles, [2]int{tx, ty}) })
	return d.rowRects(tiles)
}

func (d *Region) each(load func(int) uint64, fn func(tx, ty int)) {
	total := d.tilesX * d.tilesY
	for wi := range d.words {
		word := load(wi)
		for word != 0 {
			b := bits.TrailingZeros64(word)
			idx := wi*64 + b
			if idx >= total {
				break
			}
			fn(idx%d.tilesX, idx/d.tilesX)
			word &^= 1 << b
		}
	}
}

// rowRects merges runs of tiles that are adjacent in a row. tiles must be
// in row-major order.
func (d *Region) rowRects(tiles [][2]int) []geom.Rect {
	var out []geom.Rect
	ts := float64(d.tileSize)
	for i := 0; i < len(tiles); {
		start := tiles[i]
		j := i + 1
		for j < len(tiles) && tiles[j][1] == start[1] && tiles[j][0] == tiles[j-1][0]+1 {
			j++
		}
		n := j - i
		out = append(out, geom.NewRect(float64(start[0])*ts, float64(start[1])*ts, float64(n)*ts, ts))
		i = j
	}
	return out
}

// TilesX returns the number of tile columns.
func (d *Region) TilesX() int { return d.tilesX }

// TilesY returns the number of tile rows.
func (d *Region) TilesY() int { return d.tilesY }

// TileSize returns the tile edge in pixels.
func (d *Region) TileSize() int { return d.tileSize }
