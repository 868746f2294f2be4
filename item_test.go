package paint

import (
	"testing"

	"github.com/gogpu/paint/geom"
	"github.com/gogpu/paint/recording"
)

func TestIsEndAndPairedWith(t *testing.T) {
	c := newTestClient("c")
	tests := []struct {
		end   DisplayItem
		begin Type
		want  bool
	}{
		{NewEndClip(c, TypeClipBox), TypeClipBox, true},
		{NewEndClip(c, TypeClipBox), TypeClipOverflow, false},
		{NewEndClipPath(c), TypeBeginClipPath, true},
		{NewEndTransform(c), TypeBeginTransform, true},
		{NewEndTransform(c), TypeBeginCompositing, false},
		{NewEndCompositing(c), TypeBeginCompositing, true},
		{NewEndSubsequence(c), TypeSubsequence, true},
		{NewEndSubsequence(c), TypeBackground, false},
	}
	for _, tt := range tests {
		if got := tt.end.IsEndAndPairedWith(tt.begin); got != tt.want {
			t.Errorf("%v.IsEndAndPairedWith(%v) = %t, want %t", &tt.end, tt.begin, got, tt.want)
		}
	}
}

func TestItemEqual(t *testing.T) {
	a, b := newTestClient("a"), newTestClient("b")
	r := geom.NewRect(0, 0, 10, 10)
	tests := []struct {
		name string
		x, y DisplayItem
		want bool
	}{
		{"SamePicture", NewDrawing(a, TypeBackground, testPicture(r)), NewDrawing(a, TypeBackground, testPicture(r)), true},
		{"DifferentPicture", NewDrawing(a, TypeBackground, testPicture(r)), NewDrawing(a, TypeBackground, testPicture(geom.NewRect(0, 0, 5, 5))), false},
		{"DifferentClient", NewDrawing(a, TypeBackground, testPicture(r)), NewDrawing(b, TypeBackground, testPicture(r)), false},
		{"DifferentType", NewDrawing(a, TypeBackground, testPicture(r)), NewDrawing(a, TypeForeground, testPicture(r)), false},
		{"Clip", NewBeginClip(a, TypeClipBox, r), NewBeginClip(a, TypeClipBox, r), true},
		{"ClipRect", NewBeginClip(a, TypeClipBox, r), NewBeginClip(a, TypeClipBox, geom.Rect{}), false},
		{"ClipPath", NewBeginClipPath(a, recording.RectPath(r), recording.FillRuleNonZero), NewBeginClipPath(a, recording.RectPath(r), recording.FillRuleNonZero), true},
		{"ClipPathRule", NewBeginClipPath(a, recording.RectPath(r), recording.FillRuleNonZero), NewBeginClipPath(a, recording.RectPath(r), recording.FillRuleEvenOdd), false},
		{"Transform", NewBeginTransform(a, [6]float64{1, 0, 1, 0, 1, 1}), NewBeginTransform(a, [6]float64{1, 0, 1, 0, 1, 2}), false},
		{"Compositing", NewBeginCompositing(a, recording.BlendNormal, 0.5, r), NewBeginCompositing(a, recording.BlendNormal, 0.5, r), true},
		{"CompositingOpacity", NewBeginCompositing(a, recording.BlendNormal, 0.5, r), NewBeginCompositing(a, recording.BlendNormal, 0.6, r), false},
		{"End", NewEndTransform(a), NewEndTransform(a), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.x.Equal(&tt.y); got != tt.want {
				t.Errorf("Equal() = %t, want %t", got, tt.want)
			}
		})
	}
}

func TestItemCacheable(t *testing.T) {
	c := newTestClient("c")
	drawing := NewDrawing(c, TypeBackground, testPicture(geom.NewRect(0, 0, 1, 1)))
	if !drawing.IsCacheable() || !drawing.DrawsContent() {
		t.Errorf("drawing: IsCacheable() = %t, DrawsContent() = %t, want true, true", drawing.IsCacheable(), drawing.DrawsContent())
	}
	empty := NewDrawing(c, TypeBackground, recording.NewRecorder(geom.Rect{}).Finish())
	if empty.DrawsContent() {
		t.Error("empty drawing: DrawsContent() = true")
	}
	sub := NewBeginSubsequence(c)
	if !sub.IsCacheable() {
		t.Error("subsequence: IsCacheable() = false")
	}
	if clip := NewBeginClip(c, TypeClipBox, geom.Rect{}); clip.IsCacheable() {
		t.Error("clip: IsCacheable() = true")
	}
	drawing.skippedCache = true
	if drawing.IsCacheable() {
		t.Error("skipped drawing: IsCacheable() = true")
	}
}

func TestItemSize(t *testing.T) {
	c := newTestClient("c")
	end := NewEndTransform(c)
	if got := end.Size(); got != itemHeaderSize {
		t.Errorf("end Size() = %d, want %d", got, itemHeaderSize)
	}
	pic := testPicture(geom.NewRect(0, 0, 1, 1))
	drawing := NewDrawing(c, TypeBackground, pic)
	if got, want := drawing.Size(), itemHeaderSize+pic.ByteSize(); got != want {
		t.Errorf("drawing Size() = %d, want %d", got, want)
	}
}

func TestItemString(t *testing.T) {
	c := newTestClient("box")
	item := NewBeginClip(c, TypeClipBox, geom.NewRect(1, 2, 3, 4))
	if got, want := item.String(), "box:ClipBox clip (1,2 3x4)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	item.skippedCache = true
	if got, want := item.String(), "box:ClipBox skipped-cache clip (1,2 3x4)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestNewItemPanics(t *testing.T) {
	c := newTestClient("c")
	for name, fn := range map[string]func(){
		"NilClient":       func() { NewEndTransform(nil) },
		"DrawingWithClip": func() { NewDrawing(c, TypeClipBox, nil) },
		"ClipWithDrawing": func() { NewBeginClip(c, TypeBackground, geom.Rect{}) },
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("%s did not panic", name)
				}
			}()
			fn()
		})
	}
}
