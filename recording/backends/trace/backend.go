// Package trace provides a recording backend that writes a textual trace of
// every command it receives. It is used to inspect what a display list or
// picture would draw without rasterizing it.
//
// # Example
//
//	import _ "github.com/gogpu/paint/recording/backends/trace"
//
//	b := recording.MustBackend("trace")
//	list.Replay(b)
//	b.(recording.WriterBackend).WriteTo(os.Stdout)
package trace

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/image/math/f64"

	"github.com/gogpu/paint/geom"
	"github.com/gogpu/paint/recording"
)

func init() {
	recording.Register("trace", func() recording.Backend {
		return NewBackend()
	})
}

// Backend implements recording.WriterBackend.
// Nested Save and PushLayer calls indent the trace.
type Backend struct {
	buf    bytes.Buffer
	depth  int
	layers int
	saves  []int
}

// NewBackend creates an empty trace backend.
func NewBackend() *Backend {
	return &Backend{}
}

func (b *Backend) line(format string, args ...any) {
	b.buf.WriteString(strings.Repeat("  ", b.depth))
	fmt.Fprintf(&b.buf, format, args...)
	b.buf.WriteByte('\n')
}

// Begin implements recording.Backend.
func (b *Backend) Begin(bounds geom.Rect) error {
	b.line("begin %v", bounds)
	return nil
}

// End implements recording.Backend.
// Unbalanced Save and PushLayer calls are closed first.
func (b *Backend) End() error {
	for b.layers > 0 {
		b.PopLayer()
	}
	for len(b.saves) > 0 {
		b.Restore()
	}
	b.line("end")
	return nil
}

// Save implements recording.Backend.
func (b *Backend) Save() {
	b.line("save")
	b.saves = append(b.saves, b.layers)
	b.depth++
}

// Restore implements recording.Backend.
func (b *Backend) Restore() {
	if len(b.saves) == 0 {
		return
	}
	layers := b.saves[len(b.saves)-1]
	b.saves = b.saves[:len(b.saves)-1]
	for b.layers > layers {
		b.PopLayer()
	}
	b.depth--
	b.line("restore")
}

// Concat implements recording.Backend.
func (b *Backend) Concat(m f64.Aff3) {
	b.line("concat [%g %g %g %g %g %g]", m[0], m[1], m[2], m[3], m[4], m[5])
}

// ClipRect implements recording.Backend.
func (b *Backend) ClipRect(r geom.Rect) {
	b.line("clip-rect %v", r)
}

// ClipPath implements recording.Backend.
func (b *Backend) ClipPath(p *recording.Path, rule recording.FillRule) {
	b.line("clip-path %v %v", p.Bounds(), rule)
}

// PushLayer implements recording.Backend.
func (b *Backend) PushLayer(blend recording.BlendMode, opacity float64) {
	b.line("layer %v %g", blend, opacity)
	b.layers++
	b.depth++
}

// PopLayer implements recording.Backend.
func (b *Backend) PopLayer() {
	if b.layers == 0 {
		return
	}
	b.layers--
	b.depth--
	b.line("end-layer")
}

// FillPath implements recording.Backend.
func (b *Backend) FillPath(p *recording.Path, c recording.RGBA, rule recording.FillRule) {
	b.line("fill-path %v %v %v", p.Bounds(), c, rule)
}

// StrokePath implements recording.Backend.
func (b *Backend) StrokePath(p *recording.Path, c recording.RGBA, width float64) {
	b.line("stroke-path %v %v %g", p.Bounds(), c, width)
}

// FillRect implements recording.Backend.
func (b *Backend) FillRect(r geom.Rect, c recording.RGBA) {
	b.line("fill-rect %v %v", r, c)
}

// String returns the trace so far.
func (b *Backend) String() string {
	return b.buf.String()
}

// WriteTo implements recording.WriterBackend.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.buf.Bytes())
	return int64(n), err
}

var _ recording.WriterBackend = (*Backend)(nil)
