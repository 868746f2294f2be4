package recording

import (
	"math"
	"slices"

	"github.com/gogpu/paint/geom"
)

// Verb is a path construction verb.
type Verb uint8

const (
	VerbMoveTo Verb = iota
	VerbLineTo
	VerbQuadTo
	VerbCubicTo
	VerbClose
)

var verbNames = [...]string{
	VerbMoveTo:  "M",
	VerbLineTo:  "L",
	VerbQuadTo:  "Q",
	VerbCubicTo: "C",
	VerbClose:   "Z",
}

func (v Verb) String() string {
	if int(v) < len(verbNames) {
		return verbNames[v]
	}
	return "?"
}

// points returns how many coordinates (not points) the verb consumes.
func (v Verb) points() int {
	switch v {
	case VerbMoveTo, VerbLineTo:
		return 2
	case VerbQuadTo:
		return 4
	case VerbCubicTo:
		return 6
	}
	return 0
}

// Path is a decoded path handed to backends during replay.
// Coords holds the flattened coordinates of every verb in order.
type Path struct {
	Verbs  []Verb
	Coords []float64
}

// IsEmpty reports whether the path has no verbs.
func (p *Path) IsEmpty() bool {
	return p == nil || len(p.Verbs) == 0
}

// Bounds returns the bounding box of all control points.
func (p *Path) Bounds() geom.Rect {
	if p.IsEmpty() || len(p.Coords) < 2 {
		return geom.Rect{}
	}
	b := geom.Rect{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
	for i := 0; i+1 < len(p.Coords); i += 2 {
		x, y := p.Coords[i], p.Coords[i+1]
		b.MinX = math.Min(b.MinX, x)
		b.MinY = math.Min(b.MinY, y)
		b.MaxX = math.Max(b.MaxX, x)
		b.MaxY = math.Max(b.MaxY, y)
	}
	return b
}

// Equal reports whether p and other have the same verbs and bitwise equal
// coordinates. Nil and empty paths are equal.
func (p *Path) Equal(other *Path) bool {
	if p.IsEmpty() || other.IsEmpty() {
		return p.IsEmpty() && other.IsEmpty()
	}
	return slices.Equal(p.Verbs, other.Verbs) &&
		slices.EqualFunc(p.Coords, other.Coords, func(a, b float64) bool {
			return math.Float64bits(a) == math.Float64bits(b)
		})
}

// Clone returns a deep copy.
func (p *Path) Clone() *Path {
	if p == nil {
		return nil
	}
	return &Path{
		Verbs:  append([]Verb(nil), p.Verbs...),
		Coords: append([]float64(nil), p.Coords...),
	}
}

// RectPath returns a closed path around r.
func RectPath(r geom.Rect) *Path {
	return &Path{
		Verbs: []Verb{VerbMoveTo, VerbLineTo, VerbLineTo, VerbLineTo, VerbClose},
		Coords: []float64{
			r.MinX, r.MinY,
			r.MaxX, r.MinY,
			r.MaxX, r.MaxY,
			r.MinX, r.MaxY,
		},
	}
}

// FillRule determines how to handle self-intersecting paths.
type FillRule uint8

const (
	FillRuleNonZero FillRule = iota
	FillRuleEvenOdd
)

func (r FillRule) String() string {
	if r == FillRuleEvenOdd {
		return "evenodd"
	}
	return "nonzero"
}

// BlendMode is the compositing mode of a layer.
type BlendMode uint8

const (
	BlendNormal BlendMode = iota
	BlendMultiply
	BlendScreen
	BlendOverlay
	BlendDarken
	BlendLighten
	BlendColorDodge
	BlendColorBurn
	BlendHardLight
	BlendSoftLight
	BlendDifference
	BlendExclusion
	BlendHue
	BlendSaturation
	BlendColor
	BlendLuminosity
	BlendPlus
)

var blendNames = [...]string{
	BlendNormal:     "normal",
	BlendMultiply:   "multiply",
	BlendScreen:     "screen",
	BlendOverlay:    "overlay",
	BlendDarken:     "darken",
	BlendLighten:    "lighten",
	BlendColorDodge: "color-dodge",
	BlendColorBurn:  "color-burn",
	BlendHardLight:  "hard-light",
	BlendSoftLight:  "soft-light",
	BlendDifference: "difference",
	BlendExclusion:  "exclusion",
	BlendHue:        "hue",
	BlendSaturation: "saturation",
	BlendColor:      "color",
	BlendLuminosity: "luminosity",
	BlendPlus:       "plus",
}

// String returns the CSS name of the blend mode.
func (m BlendMode) String() string {
	if int(m) < len(blendNames) {
		return blendNames[m]
	}
	return "unknown"
}

// ParseBlendMode returns the blend mode with the given CSS name.
func ParseBlendMode(s string) (BlendMode, bool) {
	for i, n := range blendNames {
		if n == s {
			return BlendMode(i), true
		}
	}
	return BlendNormal, false
}
