package recording

import (
	"golang.org/x/image/math/f64"

	"github.com/gogpu/paint/geom"
)

// Recorder captures drawing commands into a Picture.
//
// The path API mirrors a canvas: verbs accumulate a pending path which the
// next Fill, Stroke or ClipPath consumes. A pending path that is never
// consumed is dropped by Finish.
//
// A Recorder is not safe for concurrent use.
type Recorder struct {
	bounds geom.Rect

	tags    []Tag
	data    []float64
	colors  []RGBA
	drawOps int

	pathTags []Tag
	pathData []float64

	depth int
}

// NewRecorder creates a recorder whose pictures report bounds as their
// cull rect.
func NewRecorder(bounds geom.Rect) *Recorder {
	return &Recorder{bounds: bounds}
}

// Bounds returns the cull rect given to NewRecorder.
func (r *Recorder) Bounds() geom.Rect {
	return r.bounds
}

// Save pushes the current transform and clip.
func (r *Recorder) Save() {
	r.depth++
	r.tags = append(r.tags, TagSave)
}

// Restore pops the state pushed by the last Save.
// Unbalanced calls are ignored.
func (r *Recorder) Restore() {
	if r.depth == 0 {
		return
	}
	r.depth--
	r.tags = append(r.tags, TagRestore)
}

// Transform multiplies the current transform by m.
func (r *Recorder) Transform(m f64.Aff3) {
	if m == identity {
		return
	}
	r.tags = append(r.tags, TagConcat)
	r.data = append(r.data, m[:]...)
}

// Translate moves the origin by (x, y).
func (r *Recorder) Translate(x, y float64) {
	r.Transform(f64.Aff3{1, 0, x, 0, 1, y})
}

// Scale scales the coordinate system.
func (r *Recorder) Scale(sx, sy float64) {
	r.Transform(f64.Aff3{sx, 0, 0, 0, sy, 0})
}

var identity = f64.Aff3{1, 0, 0, 0, 1, 0}

// MoveTo starts a new subpath at (x, y).
func (r *Recorder) MoveTo(x, y float64) {
	r.pathTags = append(r.pathTags, TagMoveTo)
	r.pathData = append(r.pathData, x, y)
}

// LineTo adds a line to (x, y).
func (r *Recorder) LineTo(x, y float64) {
	r.pathTags = append(r.pathTags, TagLineTo)
	r.pathData = append(r.pathData, x, y)
}

// QuadTo adds a quadratic Bezier.
func (r *Recorder) QuadTo(cx, cy, x, y float64) {
	r.pathTags = append(r.pathTags, TagQuadTo)
	r.pathData = append(r.pathData, cx, cy, x, y)
}

// CubicTo adds a cubic Bezier.
func (r *Recorder) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	r.pathTags = append(r.pathTags, TagCubicTo)
	r.pathData = append(r.pathData, c1x, c1y, c2x, c2y, x, y)
}

// ClosePath closes the current subpath.
func (r *Recorder) ClosePath() {
	r.pathTags = append(r.pathTags, TagClosePath)
}

// Rect adds a closed rectangular subpath.
func (r *Recorder) Rect(rect geom.Rect) {
	r.MoveTo(rect.MinX, rect.MinY)
	r.LineTo(rect.MaxX, rect.MinY)
	r.LineTo(rect.MaxX, rect.MaxY)
	r.LineTo(rect.MinX, rect.MaxY)
	r.ClosePath()
}

// AppendPath adds the verbs of p to the pending path.
func (r *Recorder) AppendPath(p *Path) {
	if p.IsEmpty() {
		return
	}
	i := 0
	for _, v := range p.Verbs {
		n := v.points()
		if i+n > len(p.Coords) {
			return
		}
		c := p.Coords[i : i+n]
		i += n
		switch v {
		case VerbMoveTo:
			r.MoveTo(c[0], c[1])
		case VerbLineTo:
			r.LineTo(c[0], c[1])
		case VerbQuadTo:
			r.QuadTo(c[0], c[1], c[2], c[3])
		case VerbCubicTo:
			r.CubicTo(c[0], c[1], c[2], c[3], c[4], c[5])
		case VerbClose:
			r.ClosePath()
		}
	}
}

// flushPath moves the pending path into the command stream.
// It reports false when there is no pending path.
func (r *Recorder) flushPath() bool {
	if len(r.pathTags) == 0 {
		return false
	}
	r.tags = append(r.tags, r.pathTags...)
	r.data = append(r.data, r.pathData...)
	r.pathTags = r.pathTags[:0]
	r.pathData = r.pathData[:0]
	return true
}

// Fill fills the pending path with the non-zero rule.
func (r *Recorder) Fill(c RGBA) {
	r.FillWithRule(c, FillRuleNonZero)
}

// FillWithRule fills the pending path.
func (r *Recorder) FillWithRule(c RGBA, rule FillRule) {
	if !r.flushPath() {
		return
	}
	r.tags = append(r.tags, TagFillPath)
	r.data = append(r.data, float64(rule))
	r.colors = append(r.colors, c)
	r.drawOps++
}

// Stroke strokes the pending path.
func (r *Recorder) Stroke(c RGBA, width float64) {
	if !r.flushPath() {
		return
	}
	r.tags = append(r.tags, TagStrokePath)
	r.data = append(r.data, width)
	r.colors = append(r.colors, c)
	r.drawOps++
}

// FillRect fills rect without touching the pending path.
func (r *Recorder) FillRect(rect geom.Rect, c RGBA) {
	r.tags = append(r.tags, TagFillRect)
	r.data = append(r.data, rect.MinX, rect.MinY, rect.MaxX, rect.MaxY)
	r.colors = append(r.colors, c)
	r.drawOps++
}

// StrokeRect strokes the outline of rect.
func (r *Recorder) StrokeRect(rect geom.Rect, c RGBA, width float64) {
	saved, savedData := r.pathTags, r.pathData
	r.pathTags, r.pathData = nil, nil
	r.Rect(rect)
	r.Stroke(c, width)
	r.pathTags, r.pathData = saved, savedData
}

// ClipRect intersects the clip with rect.
func (r *Recorder) ClipRect(rect geom.Rect) {
	r.tags = append(r.tags, TagClipRect)
	r.data = append(r.data, rect.MinX, rect.MinY, rect.MaxX, rect.MaxY)
}

// ClipPath intersects the clip with the pending path.
func (r *Recorder) ClipPath(rule FillRule) {
	if !r.flushPath() {
		return
	}
	r.tags = append(r.tags, TagClipPath)
	r.data = append(r.data, float64(rule))
}

// Finish closes any open Save, returns the recorded picture and resets the
// recorder so it can be reused with the same bounds.
func (r *Recorder) Finish() *Picture {
	for r.depth > 0 {
		r.Restore()
	}
	p := &Picture{
		bounds:  r.bounds,
		tags:    r.tags,
		data:    r.data,
		colors:  r.colors,
		drawOps: r.drawOps,
	}
	*r = Recorder{bounds: r.bounds}
	return p
}
