package recording

// Tag identifies one entry in a picture's tag stream.
// Tags are grouped by their high nibble:
//
//	0x0X: state (save, restore, transform)
//	0x1X: path verbs
//	0x2X: draw commands
//	0x4X: clip commands
type Tag byte

const (
	// TagSave pushes the transform and clip. Data: none.
	TagSave Tag = 0x01
	// TagRestore pops the transform and clip. Data: none.
	TagRestore Tag = 0x02
	// TagConcat multiplies the current transform.
	// Data: 6 values, the rows of an f64.Aff3.
	TagConcat Tag = 0x03

	// TagMoveTo starts a subpath. Data: [x, y].
	TagMoveTo Tag = 0x11
	// TagLineTo adds a line. Data: [x, y].
	TagLineTo Tag = 0x12
	// TagQuadTo adds a quadratic Bezier. Data: [cx, cy, x, y].
	TagQuadTo Tag = 0x13
	// TagCubicTo adds a cubic Bezier. Data: [c1x, c1y, c2x, c2y, x, y].
	TagCubicTo Tag = 0x14
	// TagClosePath closes the current subpath. Data: none.
	TagClosePath Tag = 0x16

	// TagFillPath fills the pending path. Data: [rule]. Colour: 1.
	TagFillPath Tag = 0x21
	// TagStrokePath strokes the pending path. Data: [width]. Colour: 1.
	TagStrokePath Tag = 0x22
	// TagFillRect fills a rectangle. Data: [minX, minY, maxX, maxY]. Colour: 1.
	TagFillRect Tag = 0x23

	// TagClipRect intersects the clip with a rectangle.
	// Data: [minX, minY, maxX, maxY].
	TagClipRect Tag = 0x41
	// TagClipPath intersects the clip with the pending path. Data: [rule].
	TagClipPath Tag = 0x42
)

var tagNames = map[Tag]string{
	TagSave:       "Save",
	TagRestore:    "Restore",
	TagConcat:     "Concat",
	TagMoveTo:     "MoveTo",
	TagLineTo:     "LineTo",
	TagQuadTo:     "QuadTo",
	TagCubicTo:    "CubicTo",
	TagClosePath:  "ClosePath",
	TagFillPath:   "FillPath",
	TagStrokePath: "StrokePath",
	TagFillRect:   "FillRect",
	TagClipRect:   "ClipRect",
	TagClipPath:   "ClipPath",
}

// String returns the string representation of a Tag.
func (t Tag) String() string {
	if n, ok := tagNames[t]; ok {
		return n
	}
	return "Unknown"
}

// IsPathVerb reports whether t builds the pending path.
func (t Tag) IsPathVerb() bool {
	return t >= TagMoveTo && t <= TagClosePath
}

// IsDraw reports whether t paints pixels.
func (t Tag) IsDraw() bool {
	return t&0xF0 == 0x20
}

// IsClip reports whether t changes the clip.
func (t Tag) IsClip() bool {
	return t&0xF0 == 0x40
}

// dataLen returns how many data values follow t in the data stream.
func (t Tag) dataLen() int {
	switch t {
	case TagConcat, TagCubicTo:
		return 6
	case TagMoveTo, TagLineTo:
		return 2
	case TagQuadTo, TagFillRect, TagClipRect:
		return 4
	case TagFillPath, TagStrokePath, TagClipPath:
		return 1
	}
	return 0
}

func (t Tag) verb() Verb {
	switch t {
	case TagMoveTo:
		return VerbMoveTo
	case TagLineTo:
		return VerbLineTo
	case TagQuadTo:
		return VerbQuadTo
	case TagCubicTo:
		return VerbCubicTo
	}
	return VerbClose
}
