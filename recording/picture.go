package recording

import (
	"fmt"
	"math"
	"slices"

	"golang.org/x/image/math/f64"

	"github.com/gogpu/paint/geom"
)

// Picture is an immutable recorded command buffer.
// Pictures are produced by Recorder.Finish and are safe to share between
// display lists; nothing mutates them after creation.
type Picture struct {
	bounds  geom.Rect
	tags    []Tag
	data    []float64
	colors  []RGBA
	drawOps int
}

// Bounds returns the cull rect the picture was recorded with.
func (p *Picture) Bounds() geom.Rect {
	if p == nil {
		return geom.Rect{}
	}
	return p.bounds
}

// Len returns the number of tags in the picture.
func (p *Picture) Len() int {
	if p == nil {
		return 0
	}
	return len(p.tags)
}

// OpCount returns the number of draw commands.
func (p *Picture) OpCount() int {
	if p == nil {
		return 0
	}
	return p.drawOps
}

// DrawsContent reports whether replaying p can change any pixel.
func (p *Picture) DrawsContent() bool {
	return p.OpCount() > 0
}

// ByteSize returns the approximate encoded size in bytes.
func (p *Picture) ByteSize() int {
	if p == nil {
		return 0
	}
	return len(p.tags) + 8*len(p.data) + 32*len(p.colors)
}

// Tags returns a copy of the tag stream.
func (p *Picture) Tags() []Tag {
	if p == nil {
		return nil
	}
	return slices.Clone(p.tags)
}

// Equal reports whether p and other encode exactly the same commands
// with the same bounds. Floats are compared bit for bit.
func (p *Picture) Equal(other *Picture) bool {
	if p == other {
		return true
	}
	if p == nil || other == nil {
		return false
	}
	if p.bounds != other.bounds || p.drawOps != other.drawOps {
		return false
	}
	if !slices.Equal(p.tags, other.tags) || !slices.Equal(p.colors, other.colors) {
		return false
	}
	if len(p.data) != len(other.data) {
		return false
	}
	for i, v := range p.data {
		if math.Float64bits(v) != math.Float64bits(other.data[i]) {
			return false
		}
	}
	return true
}

// Hash computes a FNV-1a hash of the encoding.
// Equal pictures have equal hashes.
func (p *Picture) Hash() uint64 {
	const (
		fnvOffset = 14695981039346656037
		fnvPrime  = 1099511628211
	)
	hash := uint64(fnvOffset)
	if p == nil {
		return hash
	}
	mix := func(v uint64) {
		hash ^= v
		hash *= fnvPrime
	}
	for _, v := range [...]float64{p.bounds.MinX, p.bounds.MinY, p.bounds.MaxX, p.bounds.MaxY} {
		mix(math.Float64bits(v))
	}
	for _, t := range p.tags {
		mix(uint64(t))
	}
	for _, v := range p.data {
		mix(math.Float64bits(v))
	}
	for _, c := range p.colors {
		mix(math.Float64bits(c.R))
		mix(math.Float64bits(c.G))
		mix(math.Float64bits(c.B))
		mix(math.Float64bits(c.A))
	}
	return hash
}

// Playback replays the picture into b wrapped in Begin/End.
func (p *Picture) Playback(b Backend) error {
	if err := b.Begin(p.Bounds()); err != nil {
		return fmt.Errorf("recording: begin playback: %w", err)
	}
	p.Replay(b)
	if err := b.End(); err != nil {
		return fmt.Errorf("recording: end playback: %w", err)
	}
	return nil
}

// Replay emits the picture's commands into b without Begin/End.
// State pushed inside the picture is popped before Replay returns.
func (p *Picture) Replay(b Backend) {
	if p == nil {
		return
	}
	var (
		d     int
		c     int
		path  Path
		depth int
	)
	takePath := func() *Path {
		out := path.Clone()
		path.Verbs = path.Verbs[:0]
		path.Coords = path.Coords[:0]
		return out
	}
	for _, t := range p.tags {
		n := t.dataLen()
		args := p.data[d : d+n]
		d += n

		switch t {
		case TagSave:
			depth++
			b.Save()
		case TagRestore:
			if depth > 0 {
				depth--
				b.Restore()
			}
		case TagConcat:
			b.Concat(f64.Aff3{args[0], args[1], args[2], args[3], args[4], args[5]})
		case TagMoveTo, TagLineTo, TagQuadTo, TagCubicTo, TagClosePath:
			path.Verbs = append(path.Verbs, t.verb())
			path.Coords = append(path.Coords, args...)
		case TagFillPath:
			b.FillPath(takePath(), p.colors[c], FillRule(args[0]))
			c++
		case TagStrokePath:
			b.StrokePath(takePath(), p.colors[c], args[0])
			c++
		case TagFillRect:
			b.FillRect(geom.Rect{MinX: args[0], MinY: args[1], MaxX: args[2], MaxY: args[3]}, p.colors[c])
			c++
		case TagClipRect:
			b.ClipRect(geom.Rect{MinX: args[0], MinY: args[1], MaxX: args[2], MaxY: args[3]})
		case TagClipPath:
			b.ClipPath(takePath(), FillRule(args[0]))
		}
	}
	for ; depth > 0; depth-- {
		b.Restore()
	}
}

// String returns a short summary for debug dumps.
func (p *Picture) String() string {
	if p == nil {
		return "Picture(nil)"
	}
	return fmt.Sprintf("Picture(ops=%d bounds=%v hash=%016x)", p.drawOps, p.bounds, p.Hash())
}
