package main

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/paint"
	"github.com/gogpu/paint/damage"
)

const (
	ansiBold  = "\x1b[1m"
	ansiRed   = "\x1b[31m"
	ansiReset = "\x1b[0m"
)

// reporter prints the committed state after each frame.
type reporter struct {
	p     *message.Printer
	w     io.Writer
	color bool
}

func newReporter(w io.Writer, lang language.Tag) *reporter {
	return &reporter{p: message.NewPrinter(lang), w: w, color: isTerminal(w)}
}

// isTerminal reports whether w is a terminal that accepts colour codes.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (r *reporter) style(code, s string) string {
	if !r.color {
		return s
	}
	return code + s + ansiReset
}

func (r *reporter) frame(name string, c *paint.Controller, region *damage.Region) {
	r.p.Fprintf(r.w, "%s\n", r.style(ansiBold, "== frame "+name+" =="))

	r.p.Fprintf(r.w, "items:\n")
	for _, line := range strings.Split(strings.TrimSuffix(c.DisplayItemList().String(), "\n"), "\n") {
		if line != "" {
			r.p.Fprintf(r.w, "  %s\n", line)
		}
	}

	r.p.Fprintf(r.w, "chunks:\n")
	for i := range c.PaintChunks() {
		ch := &c.PaintChunks()[i]
		rects := ""
		if len(ch.RasterInvalidationRects) > 0 {
			rects = " " + r.style(ansiRed, "invalidate "+rectList(ch))
		}
		r.p.Fprintf(r.w, "  [%d,%d) %v bounds %v%s\n", ch.Begin, ch.End, ch.ID, ch.Bounds, rects)
	}

	if region != nil {
		total := region.TilesX() * region.TilesY()
		r.p.Fprintf(r.w, "damage: %d of %d tiles\n", region.Count(), total)
		for _, rect := range region.Take() {
			r.p.Fprintf(r.w, "  %v\n", rect)
		}
	}

	s := c.Stats()
	r.p.Fprintf(r.w, "stats: %d items, %d cached (%d sequential, %d out of order, %d indexed), %d implicit, %d dropped\n",
		s.NewItems, s.CachedNewItems, s.SequentialMatches, s.OutOfOrderMatches, s.IndexedItems,
		s.ImplicitlyCached, s.DroppedValidItems)
}

func rectList(ch *paint.PaintChunk) string {
	parts := make([]string, len(ch.RasterInvalidationRects))
	for i, rect := range ch.RasterInvalidationRects {
		parts[i] = rect.String()
	}
	return strings.Join(parts, " ")
}
