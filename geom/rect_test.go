package geom

import (
	"math"
	"testing"
)

func TestNewRect(t *testing.T) {
	r := NewRect(5, 6, 7, 8)
	if r.X() != 5 || r.Y() != 6 || r.Width() != 7 || r.Height() != 8 {
		t.Errorf("NewRect(5, 6, 7, 8) = %v", r)
	}
}

func TestRectUnion(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{"outside grows", NewRect(5, 6, 7, 8), NewRect(1, 2, 3, 4), NewRect(1, 2, 11, 12)},
		{"inside keeps", NewRect(5, 6, 7, 8), NewRect(5, 6, 1, 1), NewRect(5, 6, 7, 8)},
		{"empty other", NewRect(1, 1, 2, 2), Rect{}, NewRect(1, 1, 2, 2)},
		{"empty self", Rect{}, NewRect(1, 1, 2, 2), NewRect(1, 1, 2, 2)},
		{"zero-area self", NewRect(100, 100, 0, 0), NewRect(1, 1, 2, 2), NewRect(1, 1, 2, 2)},
		{"infinite", NewRect(1, 1, 2, 2), InfiniteRect, InfiniteRect},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Union(tt.b); got != tt.want {
				t.Errorf("%v.Union(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestRectIntersects(t *testing.T) {
	a := NewRect(100, 100, 100, 100)
	tests := []struct {
		b    Rect
		want bool
	}{
		{NewRect(100, 100, 50, 200), true},
		{NewRect(200, 100, 50, 50), false},
		{NewRect(150, 150, 10, 10), true},
		{Rect{}, false},
	}
	for _, tt := range tests {
		if got := a.Intersects(tt.b); got != tt.want {
			t.Errorf("%v.Intersects(%v) = %v, want %v", a, tt.b, got, tt.want)
		}
	}
}

func TestRectTranslate(t *testing.T) {
	got := NewRect(0, 0, 200, 100).Translate(Vec2{20, 30}.Neg())
	want := NewRect(-20, -30, 200, 100)
	if got != want {
		t.Errorf("Translate() = %v, want %v", got, want)
	}
}

func TestInfiniteRect(t *testing.T) {
	if !InfiniteRect.IsInfinite() {
		t.Error("InfiniteRect.IsInfinite() = false")
	}
	if InfiniteRect.IsEmpty() {
		t.Error("InfiniteRect.IsEmpty() = true")
	}
	if !math.IsInf(InfiniteRect.Width(), 1) {
		t.Errorf("InfiniteRect.Width() = %v, want +Inf", InfiniteRect.Width())
	}
	if got := InfiniteRect.Translate(Vec2{10, 10}); !got.IsInfinite() {
		t.Errorf("InfiniteRect.Translate() = %v, want infinite", got)
	}
	if got := InfiniteRect.String(); got != "(infinite)" {
		t.Errorf("String() = %q", got)
	}
}

func TestRectContainsRect(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	if !r.ContainsRect(NewRect(1, 1, 2, 2)) {
		t.Error("ContainsRect(inner) = false")
	}
	if r.ContainsRect(NewRect(5, 5, 10, 10)) {
		t.Error("ContainsRect(overlapping) = true")
	}
	if !r.ContainsRect(Rect{}) {
		t.Error("ContainsRect(empty) = false")
	}
}
