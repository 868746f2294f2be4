package recording

import (
	"io"

	"golang.org/x/image/math/f64"

	"github.com/gogpu/paint/geom"
)

// Backend is the interface that all playback targets implement.
// Backends receive decoded picture commands and display-list state changes
// and translate them to their output (a trace, a rasterizer, a compositor
// layer builder).
//
// A Backend manages its own state stack for Save/Restore. Concat and the
// clip calls apply relative to the current state.
//
// Backends are created via the registry using NewBackend(name) and
// registered via Register() in their init() functions.
type Backend interface {
	// Begin starts output covering bounds.
	Begin(bounds geom.Rect) error
	// End finalizes the output.
	End() error

	// Save pushes transform, clip and layer depth.
	Save()
	// Restore pops the state pushed by the matching Save.
	// If the stack is empty, this is a no-op.
	Restore()

	// Concat multiplies the current transform by m.
	Concat(m f64.Aff3)

	// ClipRect intersects the current clip with r.
	ClipRect(r geom.Rect)
	// ClipPath intersects the current clip with path.
	ClipPath(path *Path, rule FillRule)

	// PushLayer starts an offscreen layer composited on PopLayer.
	PushLayer(blend BlendMode, opacity float64)
	// PopLayer composites the innermost layer.
	PopLayer()

	FillPath(path *Path, c RGBA, rule FillRule)
	StrokePath(path *Path, c RGBA, width float64)
	// FillRect is an optimized form of FillPath for axis-aligned rects.
	FillRect(r geom.Rect, c RGBA)
}

// WriterBackend extends Backend with the ability to write output to an io.Writer.
type WriterBackend interface {
	Backend

	// WriteTo writes the rendered content to the given writer.
	// This should only be called after End().
	WriteTo(w io.Writer) (int64, error)
}
