package main

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/paint"
	"github.com/gogpu/paint/geom"
	"github.com/gogpu/paint/recording"
)

func TestParseScenario(t *testing.T) {
	s, err := ParseScenario(strings.NewReader(`
viewport: {width: 10, height: 20}
clients:
  - name: a
    rect: [1, 2, 3, 4]
frames:
  - name: one
    invalidate: [a]
    move: {a: [5, 6, 7, 8]}
    offset: [1, 2]
    ops:
      - draw: {client: a}
`))
	if err != nil {
		t.Fatalf("ParseScenario() = %v", err)
	}
	if s.Viewport != (Size{Width: 10, Height: 20}) {
		t.Errorf("Viewport = %+v", s.Viewport)
	}
	if got, want := s.Clients[0].Rect.Rect, geom.NewRect(1, 2, 3, 4); got != want {
		t.Errorf("client rect = %v, want %v", got, want)
	}
	f := s.Frames[0]
	if diff := cmp.Diff([]string{"a"}, f.Invalidate); diff != "" {
		t.Errorf("Invalidate mismatch (-want +got):\n%s", diff)
	}
	if got, want := f.Move["a"].Rect, geom.NewRect(5, 6, 7, 8); got != want {
		t.Errorf("move = %v, want %v", got, want)
	}
	if f.Offset != (Point{X: 1, Y: 2}) {
		t.Errorf("Offset = %v", f.Offset)
	}
	if len(f.Ops) != 1 || f.Ops[0].Draw == nil || f.Ops[0].Draw.Client != "a" {
		t.Errorf("Ops = %+v", f.Ops)
	}
}

func TestParseScenarioErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"Empty", "", "empty document"},
		{"NoFrames", "clients: [{name: a}]", "no frames"},
		{"UnnamedClient", "clients: [{rect: [0, 0, 1, 1]}]\nframes: [{}]", "client without name"},
		{"DuplicateClient", "clients: [{name: a}, {name: a}]\nframes: [{}]", `duplicate client "a"`},
		{"ShortRect", "clients: [{name: a, rect: [1, 2]}]\nframes: [{}]", "rect wants"},
		{"BadOffset", "frames: [{offset: [1]}]", "point wants"},
		{"UnknownField", "frames: [{opz: []}]", "opz"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScenario(strings.NewReader(tt.doc))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("ParseScenario() = %v, want error containing %q", err, tt.want)
			}
		})
	}
}

func TestPlayErrors(t *testing.T) {
	tests := []struct {
		name string
		ops  string
		want string
	}{
		{"UnknownClient", "[{draw: {client: nobody}}]", `unknown client "nobody"`},
		{"TwoOps", "[{draw: {client: a}, chunk: {}}]", "want exactly one"},
		{"NoOp", "[{}]", "want exactly one"},
		{"BadType", "[{draw: {client: a, type: sideways}}]", `unknown drawing type "sideways"`},
		{"BadClipType", "[{clip: {client: a, type: background}}]", `unknown clip type "background"`},
		{"BadColor", "[{draw: {client: a, color: notacolor}}]", `unknown color "notacolor"`},
		{"BadMatrix", "[{transform: {client: a, matrix: [1, 2]}}]", "matrix wants 6 numbers"},
		{"BadBlend", "[{compositing: {client: a, blend: loud}}]", `unknown blend mode "loud"`},
		{"BadRule", "[{clip_path: {client: a, rule: odd}}]", `unknown fill rule "odd"`},
		{"Nested", "[{subsequence: {client: a, ops: [{draw: {client: b}}]}}]", `op 0: op 0: unknown client "b"`},
		{"UnclosedSkip", "[{skip_cache: {ops: [{draw: {client: zz}}]}}]", "unknown client"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ParseScenario(strings.NewReader("clients: [{name: a}]\nframes: [{ops: " + tt.ops + "}]"))
			if err != nil {
				t.Fatalf("ParseScenario() = %v", err)
			}
			p := newPlayer(paint.NewController(), s)
			err = p.play(&s.Frames[0])
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("play() = %v, want error containing %q", err, tt.want)
			}
		})
	}
}

func TestPlayRecoversControllerPanics(t *testing.T) {
	s, err := ParseScenario(strings.NewReader("clients: [{name: a}]\nframes: [{ops: [{draw: {client: a}}]}]"))
	if err != nil {
		t.Fatal(err)
	}
	c := paint.NewController()
	p := newPlayer(c, s)
	paint.BeginClip(c, p.clients["a"], paint.TypeClipBox, geom.Rect{})
	err = p.play(&s.Frames[0])
	if err == nil || !strings.Contains(err.Error(), "left open") {
		t.Errorf("play() = %v, want an unclosed pair error", err)
	}
}

func TestParseTypes(t *testing.T) {
	tests := []struct {
		in   string
		want paint.Type
	}{
		{"uninitialized", paint.TypeUninitialized},
		{"Background", paint.TypeBackground},
		{"foreground", paint.TypeForeground},
		{"drawing42", paint.DrawingType(42)},
		{"clipoverflow", paint.TypeClipOverflow},
	}
	for _, tt := range tests {
		got, err := parseType(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("parseType(%q) = %v, %v, want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := parseType("endclipbox"); err == nil {
		t.Error("parseType(endclipbox) succeeded")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want recording.RGBA
	}{
		{"red", recording.RGB(1, 0, 0)},
		{"Lime", recording.RGB(0, 1, 0)},
		{"#0000ff", recording.RGB(0, 0, 1)},
		{"#ffffff00", recording.RGBA{R: 1, G: 1, B: 1, A: 0}},
	}
	for _, tt := range tests {
		got, err := parseColor(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("parseColor(%q) = %v, %v, want %v", tt.in, got, err, tt.want)
		}
	}
	if got, err := parseColor(""); err != nil || got.String() != "#808080ff" {
		t.Errorf("parseColor(\"\") = %v, %v, want gray", got, err)
	}
	if _, err := parseColor("#12345"); err == nil {
		t.Error("parseColor(#12345) succeeded")
	}
}
