package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/image/math/f64"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/paint"
	"github.com/gogpu/paint/geom"
	"github.com/gogpu/paint/property"
	"github.com/gogpu/paint/recording"
)

// Scenario is a sequence of frames painted by a fixed set of clients.
type Scenario struct {
	Viewport Size         `yaml:"viewport"`
	Clients  []ClientSpec `yaml:"clients"`
	Frames   []Frame      `yaml:"frames"`
}

// Size is the viewport the damage region covers.
type Size struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ClientSpec declares a client and its initial visual rect.
type ClientSpec struct {
	Name string `yaml:"name"`
	Rect Rect   `yaml:"rect"`
}

// Frame is one paint pass. Invalidations and moves apply before painting.
type Frame struct {
	Name          string          `yaml:"name"`
	Invalidate    []string        `yaml:"invalidate"`
	InvalidateAll bool            `yaml:"invalidate_all"`
	Move          map[string]Rect `yaml:"move"`
	Offset        Point           `yaml:"offset"`
	Ops           []Op            `yaml:"ops"`
}

// Op is a single paint operation. Exactly one field must be set.
type Op struct {
	Draw        *DrawOp  `yaml:"draw"`
	Clip        *ScopeOp `yaml:"clip"`
	ClipPath    *ScopeOp `yaml:"clip_path"`
	Transform   *ScopeOp `yaml:"transform"`
	Compositing *ScopeOp `yaml:"compositing"`
	Subsequence *ScopeOp `yaml:"subsequence"`
	SkipCache   *ScopeOp `yaml:"skip_cache"`
	Chunk       *ChunkOp `yaml:"chunk"`
}

// DrawOp fills Rect, or the client's visual rect, with Color.
type DrawOp struct {
	Client string `yaml:"client"`
	Type   string `yaml:"type"`
	Rect   Rect   `yaml:"rect"`
	Color  string `yaml:"color"`
}

// ScopeOp paints Ops inside a clip, clip path, transform, layer,
// subsequence or skip-cache scope.
type ScopeOp struct {
	Client  string    `yaml:"client"`
	Type    string    `yaml:"type"`
	Rect    Rect      `yaml:"rect"`
	Matrix  []float64 `yaml:"matrix"`
	Opacity *float64  `yaml:"opacity"`
	Blend   string    `yaml:"blend"`
	Rule    string    `yaml:"rule"`
	Ops     []Op      `yaml:"ops"`
}

// ChunkOp changes the paint chunk properties. Without a client the chunk
// has no id.
type ChunkOp struct {
	Client  string    `yaml:"client"`
	Type    string    `yaml:"type"`
	Matrix  []float64 `yaml:"matrix"`
	Clip    Rect      `yaml:"clip"`
	Opacity *float64  `yaml:"opacity"`
	Blend   string    `yaml:"blend"`
}

// Rect is written as [x, y, width, height].
type Rect struct {
	geom.Rect
	Set bool
}

func (r *Rect) UnmarshalYAML(n *yaml.Node) error {
	var v []float64
	if err := n.Decode(&v); err != nil {
		return err
	}
	if len(v) != 4 {
		return fmt.Errorf("line %d: rect wants [x, y, width, height], got %d numbers", n.Line, len(v))
	}
	r.Rect = geom.NewRect(v[0], v[1], v[2], v[3])
	r.Set = true
	return nil
}

// Point is written as [x, y].
type Point geom.Vec2

func (p *Point) UnmarshalYAML(n *yaml.Node) error {
	var v []float64
	if err := n.Decode(&v); err != nil {
		return err
	}
	if len(v) != 2 {
		return fmt.Errorf("line %d: point wants [x, y], got %d numbers", n.Line, len(v))
	}
	*p = Point{X: v[0], Y: v[1]}
	return nil
}

// ParseScenario decodes a YAML scenario. Unknown keys are errors.
func ParseScenario(r io.Reader) (*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var s Scenario
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("scenario: empty document")
		}
		return nil, fmt.Errorf("scenario: %w", err)
	}
	seen := map[string]bool{}
	for _, c := range s.Clients {
		if c.Name == "" {
			return nil, errors.New("scenario: client without name")
		}
		if seen[c.Name] {
			return nil, fmt.Errorf("scenario: duplicate client %q", c.Name)
		}
		seen[c.Name] = true
	}
	if len(s.Frames) == 0 {
		return nil, errors.New("scenario: no frames")
	}
	return &s, nil
}

// client is a scenario client.
type client struct {
	paint.ClientCache
	name string
	rect geom.Rect
}

func (c *client) DebugName() string     { return c.name }
func (c *client) VisualRect() geom.Rect { return c.rect }

// player paints scenario frames into a controller.
type player struct {
	c       *paint.Controller
	clients map[string]*client
}

func newPlayer(c *paint.Controller, s *Scenario) *player {
	p := &player{c: c, clients: map[string]*client{}}
	for _, spec := range s.Clients {
		p.clients[spec.Name] = &client{name: spec.Name, rect: spec.Rect.Rect}
	}
	return p
}

func (p *player) client(name string) (*client, error) {
	c, ok := p.clients[name]
	if !ok {
		return nil, fmt.Errorf("unknown client %q", name)
	}
	return c, nil
}

// play paints and commits f. Structural misuse and under-invalidation
// panics of the controller are returned as errors; the controller must
// not be used after that.
func (p *player) play(f *Frame) (err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok {
				panic(r)
			}
			err = e
		}
	}()
	for _, name := range f.Invalidate {
		c, err := p.client(name)
		if err != nil {
			return err
		}
		c.SetDisplayItemsUncached()
	}
	for name, r := range f.Move {
		c, err := p.client(name)
		if err != nil {
			return err
		}
		c.rect = r.Rect
	}
	if f.InvalidateAll {
		p.c.InvalidateAll()
	}
	if err := p.run(f.Ops); err != nil {
		return err
	}
	p.c.CommitNewDisplayItems(geom.Vec2(f.Offset))
	return nil
}

func (p *player) run(ops []Op) error {
	for i := range ops {
		if err := p.op(&ops[i]); err != nil {
			return fmt.Errorf("op %d: %w", i, err)
		}
	}
	return nil
}

func (op *Op) count() int {
	n := 0
	for _, set := range []bool{
		op.Draw != nil, op.Clip != nil, op.ClipPath != nil, op.Transform != nil,
		op.Compositing != nil, op.Subsequence != nil, op.SkipCache != nil, op.Chunk != nil,
	} {
		if set {
			n++
		}
	}
	return n
}

func (p *player) op(op *Op) error {
	if op.count() != 1 {
		return errors.New("want exactly one of draw, clip, clip_path, transform, compositing, subsequence, skip_cache, chunk")
	}
	switch {
	case op.Draw != nil:
		return p.draw(op.Draw)
	case op.Chunk != nil:
		return p.chunk(op.Chunk)
	case op.SkipCache != nil:
		p.c.BeginSkippingCache()
		err := p.run(op.SkipCache.Ops)
		p.c.EndSkippingCache()
		return err
	}

	var s *ScopeOp
	for _, s = range []*ScopeOp{op.Clip, op.ClipPath, op.Transform, op.Compositing, op.Subsequence} {
		if s != nil {
			break
		}
	}
	c, err := p.client(s.Client)
	if err != nil {
		return err
	}
	if op.Subsequence != nil {
		if p.c.UseCachedSubsequenceIfPossible(c) {
			return nil
		}
		r := paint.BeginSubsequence(p.c, c)
		err := p.run(s.Ops)
		r.End()
		return err
	}

	var r *paint.ScopeRecorder
	switch {
	case op.Clip != nil:
		t, err := parseClipType(s.Type)
		if err != nil {
			return err
		}
		r = paint.BeginClip(p.c, c, t, s.rectOr(c.rect))
	case op.ClipPath != nil:
		rule, err := parseFillRule(s.Rule)
		if err != nil {
			return err
		}
		r = paint.BeginClipPath(p.c, c, recording.RectPath(s.rectOr(c.rect)), rule)
	case op.Transform != nil:
		m, err := parseMatrix(s.Matrix)
		if err != nil {
			return err
		}
		r = paint.BeginTransform(p.c, c, m)
	case op.Compositing != nil:
		blend, err := parseBlend(s.Blend)
		if err != nil {
			return err
		}
		r = paint.BeginCompositing(p.c, c, blend, opacity(s.Opacity), s.Rect.Rect)
	}
	err = p.run(s.Ops)
	r.End()
	return err
}

func (s *ScopeOp) rectOr(def geom.Rect) geom.Rect {
	if s.Rect.Set {
		return s.Rect.Rect
	}
	return def
}

func (p *player) draw(d *DrawOp) error {
	c, err := p.client(d.Client)
	if err != nil {
		return err
	}
	t, err := parseDrawingType(d.Type)
	if err != nil {
		return err
	}
	col, err := parseColor(d.Color)
	if err != nil {
		return err
	}
	if p.c.UseCachedDrawingIfPossible(c, t) {
		return nil
	}
	bounds := c.rect
	if d.Rect.Set {
		bounds = d.Rect.Rect
	}
	r := paint.NewDrawingRecorder(p.c, c, t, bounds)
	r.Canvas().FillRect(bounds, col)
	r.End()
	return nil
}

func (p *player) chunk(ch *ChunkOp) error {
	props := property.RootState()
	if ch.Matrix != nil {
		m, err := parseMatrix(ch.Matrix)
		if err != nil {
			return err
		}
		props.Transform = property.NewTransform(nil, m, ch.Client)
	}
	if ch.Clip.Set {
		props.Clip = property.NewClip(nil, props.Transform, ch.Clip.Rect)
	}
	if ch.Opacity != nil || ch.Blend != "" {
		blend, err := parseBlend(ch.Blend)
		if err != nil {
			return err
		}
		props.Effect = property.NewEffect(nil, props.Transform, props.Clip, opacity(ch.Opacity), blend)
	}

	var id *paint.ChunkID
	if ch.Client != "" {
		c, err := p.client(ch.Client)
		if err != nil {
			return err
		}
		t := paint.TypeUninitialized
		if ch.Type != "" {
			if t, err = parseType(ch.Type); err != nil {
				return err
			}
		}
		id = paint.NewChunkID(c, t)
	}
	p.c.UpdateCurrentPaintChunkProperties(id, props)
	return nil
}

func opacity(v *float64) float64 {
	if v == nil {
		return 1
	}
	return *v
}

// parseDrawingType accepts a drawing type name such as "background" or
// "drawing42". The empty string means background.
func parseDrawingType(s string) (paint.Type, error) {
	if s == "" {
		return paint.TypeBackground, nil
	}
	for n := 0; n <= int(paint.DrawingLast-paint.DrawingFirst); n++ {
		if t := paint.DrawingType(n); strings.EqualFold(t.String(), s) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown drawing type %q", s)
}

// parseClipType accepts a clip type name such as "clipbox". The empty
// string means clipbox.
func parseClipType(s string) (paint.Type, error) {
	if s == "" {
		return paint.TypeClipBox, nil
	}
	for n := 0; n <= int(paint.ClipLast-paint.ClipFirst); n++ {
		if t := paint.ClipType(n); strings.EqualFold(t.String(), s) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown clip type %q", s)
}

func parseType(s string) (paint.Type, error) {
	if strings.EqualFold(s, paint.TypeUninitialized.String()) {
		return paint.TypeUninitialized, nil
	}
	if t, err := parseDrawingType(s); err == nil {
		return t, nil
	}
	if t, err := parseClipType(s); err == nil {
		return t, nil
	}
	return 0, fmt.Errorf("unknown type %q", s)
}

func parseFillRule(s string) (recording.FillRule, error) {
	switch s {
	case "", "nonzero":
		return recording.FillRuleNonZero, nil
	case "evenodd":
		return recording.FillRuleEvenOdd, nil
	}
	return 0, fmt.Errorf("unknown fill rule %q", s)
}

func parseBlend(s string) (recording.BlendMode, error) {
	if s == "" {
		return recording.BlendNormal, nil
	}
	m, ok := recording.ParseBlendMode(s)
	if !ok {
		return 0, fmt.Errorf("unknown blend mode %q", s)
	}
	return m, nil
}

func parseMatrix(v []float64) (f64.Aff3, error) {
	var m f64.Aff3
	if len(v) != len(m) {
		return m, fmt.Errorf("matrix wants 6 numbers, got %d", len(v))
	}
	copy(m[:], v)
	return m, nil
}

// parseColor accepts an SVG colour name or #rrggbb / #rrggbbaa. The empty
// string means gray.
func parseColor(s string) (recording.RGBA, error) {
	if s == "" {
		s = "gray"
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return recording.FromColor(c), nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return recording.RGBA{}, fmt.Errorf("unknown color %q", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return recording.RGBA{}, fmt.Errorf("bad color %q: %w", s, err)
	}
	return recording.RGBA{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}
