package recording

import (
	"errors"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/paint/geom"
)

func drawSample(bounds geom.Rect, c RGBA) *Picture {
	rec := NewRecorder(bounds)
	rec.Save()
	rec.Transform(f64.Aff3{2, 0, 1, 0, 2, 1})
	rec.ClipRect(geom.NewRect(0, 0, 50, 50))
	rec.MoveTo(0, 0)
	rec.QuadTo(1, 1, 2, 0)
	rec.CubicTo(3, 1, 4, 1, 5, 0)
	rec.ClosePath()
	rec.Fill(c)
	rec.Restore()
	rec.FillRect(geom.NewRect(1, 2, 3, 4), c)
	return rec.Finish()
}

func TestPictureEqual(t *testing.T) {
	bounds := geom.NewRect(0, 0, 100, 100)
	a := drawSample(bounds, RGB(1, 0, 0))

	tests := []struct {
		name string
		b    *Picture
		want bool
	}{
		{"identical", drawSample(bounds, RGB(1, 0, 0)), true},
		{"color", drawSample(bounds, RGB(0, 1, 0)), false},
		{"bounds", drawSample(geom.NewRect(0, 0, 10, 10), RGB(1, 0, 0)), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
			if tt.want && a.Hash() != tt.b.Hash() {
				t.Error("equal pictures have different hashes")
			}
		})
	}

	var nilPic *Picture
	if !nilPic.Equal(nil) {
		t.Error("nil.Equal(nil) = false")
	}
}

func TestPictureReplay(t *testing.T) {
	pic := drawSample(geom.NewRect(0, 0, 100, 100), RGB(1, 0, 0))
	b := newMockBackend("m")
	pic.Replay(b)

	want := []string{
		"Save",
		"Concat [2 0 1 0 2 1]",
		"ClipRect (0,0 50x50)",
		"FillPath [M Q C Z] #ff0000ff nonzero",
		"Restore",
		"FillRect (1,2 3x4) #ff0000ff",
	}
	if diff := cmp.Diff(want, b.calls); diff != "" {
		t.Errorf("Replay() mismatch (-want +got):\n%s", diff)
	}
}

type failingBackend struct{ *mockBackend }

func (failingBackend) Begin(geom.Rect) error { return errors.New("boom") }

func TestPicturePlayback(t *testing.T) {
	rec := NewRecorder(geom.NewRect(0, 0, 10, 10))
	rec.FillRect(geom.NewRect(0, 0, 1, 1), RGB(0, 0, 1))
	pic := rec.Finish()

	b := newMockBackend("m")
	if err := pic.Playback(b); err != nil {
		t.Fatalf("Playback() = %v", err)
	}
	want := []string{"Begin (0,0 10x10)", "FillRect (0,0 1x1) #0000ffff", "End"}
	if diff := cmp.Diff(want, b.calls); diff != "" {
		t.Errorf("Playback() mismatch (-want +got):\n%s", diff)
	}

	err := pic.Playback(failingBackend{newMockBackend("f")})
	if err == nil {
		t.Fatal("Playback(failing) = nil error")
	}
}

func TestPictureNilSafe(t *testing.T) {
	var p *Picture
	if p.DrawsContent() || p.Len() != 0 || p.ByteSize() != 0 {
		t.Error("nil picture reports content")
	}
	p.Replay(newMockBackend("m"))
	if p.String() != "Picture(nil)" {
		t.Errorf("String() = %q", p.String())
	}
}

func TestFromColor(t *testing.T) {
	got := FromColor(color.RGBA{R: 0xff, G: 0, B: 0, A: 0xff})
	if got != RGB(1, 0, 0) {
		t.Errorf("FromColor(red) = %v", got)
	}
	if c := FromColor(color.RGBA{}); !c.IsTransparent() {
		t.Errorf("FromColor(transparent) = %v", c)
	}
	if s := (RGBA{R: 0.5, G: 0, B: 1, A: 1}).String(); s != "#8000ffff" {
		t.Errorf("String() = %q", s)
	}
}

func TestParseBlendMode(t *testing.T) {
	m, ok := ParseBlendMode("multiply")
	if !ok || m != BlendMultiply {
		t.Errorf("ParseBlendMode(multiply) = %v, %v", m, ok)
	}
	if _, ok := ParseBlendMode("bogus"); ok {
		t.Error("ParseBlendMode(bogus) ok = true")
	}
}
