package paint

import "testing"

func TestTypeString(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{TypeBackground, "Background"},
		{TypeForeground, "Foreground"},
		{DrawingType(42), "Drawing42"},
		{TypeClipBox, "ClipBox"},
		{ClipType(100), "Clip100"},
		{EndClipType(TypeClipOverflow), "EndClipOverflow"},
		{CachedDrawingType(TypeBorder), "CachedBorder"},
		{TypeSubsequence, "Subsequence"},
		{TypeCachedSubsequence, "CachedSubsequence"},
		{TypeUninitialized, "Uninitialized"},
		{Type(0x2800), "Type(0x2800)"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("Type(%#04x).String() = %q, want %q", uint16(tt.typ), got, tt.want)
		}
	}
}

func TestTypeKind(t *testing.T) {
	tests := []struct {
		typ   Type
		kind  Kind
		begin bool
		end   bool
	}{
		{TypeBackground, KindDrawing, false, false},
		{DrawingLast, KindDrawing, false, false},
		{TypeClipPopup, KindBeginClip, true, false},
		{EndClipType(TypeClipPopup), KindEndClip, false, true},
		{TypeBeginClipPath, KindBeginClipPath, true, false},
		{TypeEndClipPath, KindEndClipPath, false, true},
		{TypeBeginTransform, KindBeginTransform, true, false},
		{TypeEndTransform, KindEndTransform, false, true},
		{TypeBeginCompositing, KindBeginCompositing, true, false},
		{TypeEndCompositing, KindEndCompositing, false, true},
		{TypeSubsequence, KindBeginSubsequence, true, false},
		{TypeEndSubsequence, KindEndSubsequence, false, true},
		{CachedDrawingType(TypeMask), KindCached, false, false},
		{TypeCachedSubsequence, KindCached, false, false},
		{TypeUninitialized, KindInvalid, false, false},
	}
	for _, tt := range tests {
		k := tt.typ.Kind()
		if k != tt.kind || k.IsBegin() != tt.begin || k.IsEnd() != tt.end {
			t.Errorf("%v.Kind() = %v (begin %t, end %t), want %v (begin %t, end %t)",
				tt.typ, k, k.IsBegin(), k.IsEnd(), tt.kind, tt.begin, tt.end)
		}
	}
}

func TestTypeConstructorsPanic(t *testing.T) {
	for name, fn := range map[string]func(){
		"DrawingType":       func() { DrawingType(0x1000) },
		"ClipType":          func() { ClipType(-1) },
		"EndClipType":       func() { EndClipType(TypeBackground) },
		"CachedDrawingType": func() { CachedDrawingType(TypeClipBox) },
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
