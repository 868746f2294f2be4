package trace

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/paint/geom"
	"github.com/gogpu/paint/recording"
)

func TestRegistered(t *testing.T) {
	b, err := recording.NewBackend("trace")
	if err != nil {
		t.Fatalf("NewBackend(trace) = %v", err)
	}
	if _, ok := b.(recording.WriterBackend); !ok {
		t.Errorf("trace backend %T is not a WriterBackend", b)
	}
}

func TestPlaybackTrace(t *testing.T) {
	rec := recording.NewRecorder(geom.NewRect(0, 0, 100, 100))
	rec.Save()
	rec.Translate(10, 20)
	rec.FillRect(geom.NewRect(0, 0, 5, 5), recording.RGB(1, 0, 0))
	rec.Restore()
	rec.Rect(geom.NewRect(1, 1, 2, 2))
	rec.Stroke(recording.RGB(0, 0, 0), 2)

	b := NewBackend()
	if err := rec.Finish().Playback(b); err != nil {
		t.Fatalf("Playback() = %v", err)
	}

	want := `begin (0,0 100x100)
save
  concat [1 0 10 0 1 20]
  fill-rect (0,0 5x5) #ff0000ff
restore
stroke-path (1,1 2x2) #000000ff 2
end
`
	if diff := cmp.Diff(want, b.String()); diff != "" {
		t.Errorf("trace mismatch (-want +got):\n%s", diff)
	}

	var out bytes.Buffer
	n, err := b.WriteTo(&out)
	if err != nil || n != int64(len(want)) {
		t.Errorf("WriteTo() = %d, %v", n, err)
	}
}

func TestEndClosesOpenState(t *testing.T) {
	b := NewBackend()
	b.Begin(geom.NewRect(0, 0, 1, 1))
	b.Save()
	b.PushLayer(recording.BlendMultiply, 0.5)
	b.End()

	want := `begin (0,0 1x1)
save
  layer multiply 0.5
  end-layer
restore
end
`
	if diff := cmp.Diff(want, b.String()); diff != "" {
		t.Errorf("trace mismatch (-want +got):\n%s", diff)
	}
}
