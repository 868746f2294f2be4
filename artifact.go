package paint

import (
	"fmt"

	"github.com/gogpu/paint/damage"
	"github.com/gogpu/paint/geom"
	"github.com/gogpu/paint/recording"
)

// Replay plays the committed list into b, chunk by chunk. Each chunk is
// painted under its property state: the clip in root space, the transform
// to root and, when the effect changes the output, a layer.
func (c *Controller) Replay(b recording.Backend) error {
	var bounds geom.Rect
	for i := range c.currentChunks {
		bounds = bounds.Union(c.currentChunks[i].Bounds)
	}
	if err := b.Begin(bounds); err != nil {
		return fmt.Errorf("paint: replay: %w", err)
	}
	for i := range c.currentChunks {
		ch := &c.currentChunks[i]
		props := ch.Properties.Normalize()
		b.Save()
		if clip := props.Clip.RectInRoot(); !clip.IsInfinite() {
			b.ClipRect(clip)
		}
		if !props.Transform.IsRoot() {
			b.Concat(props.Transform.ToRoot())
		}
		layer := props.Effect.HasEffect()
		if layer {
			b.PushLayer(props.Effect.BlendMode(), props.Effect.AccumulatedOpacity())
		}
		c.current.replayRange(b, ch.Begin, ch.End)
		if layer {
			b.PopLayer()
		}
		b.Restore()
	}
	if err := b.End(); err != nil {
		return fmt.Errorf("paint: replay: %w", err)
	}
	return nil
}

// Damage marks the raster invalidation rects of the committed chunks in r.
func (c *Controller) Damage(r *damage.Region) {
	for i := range c.currentChunks {
		for _, rect := range c.currentChunks[i].RasterInvalidationRects {
			r.MarkRect(rect)
		}
	}
}
