package recording

import (
	"fmt"
	"image/color"
)

// RGBA is a non-premultiplied colour with components in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// RGB returns an opaque colour.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// FromColor converts any color.Color.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return RGBA{}
	}
	// color.Color is alpha-premultiplied.
	return RGBA{
		R: float64(r) / float64(a),
		G: float64(g) / float64(a),
		B: float64(b) / float64(a),
		A: float64(a) / 0xffff,
	}
}

// IsTransparent reports whether drawing with c has no visible effect.
func (c RGBA) IsTransparent() bool {
	return c.A <= 0
}

// String formats c as #rrggbbaa.
func (c RGBA) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B), to8(c.A))
}

func to8(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 0xff
	}
	return uint8(v*255 + 0.5)
}
