// Package paint records, caches and replays display items.
//
// # Overview
//
// A paint pass appends display items to a [Controller]. Each item belongs
// to a [DisplayItemClient] (a box, a scrollbar, a caret) and is either a
// drawing holding a [recording.Picture] or one half of a begin/end pair
// (clip, clip path, transform, compositing, subsequence). When the pass
// ends, [Controller.CommitNewDisplayItems] turns the new items into the
// current list, reusing cached items of clients that did not change.
//
// # Quick Start
//
//	c := paint.NewController()
//
//	// Paint a client unless its cached drawing can be reused.
//	if !c.UseCachedDrawingIfPossible(box, paint.TypeBackground) {
//		r := paint.NewDrawingRecorder(c, box, paint.TypeBackground, bounds)
//		r.Canvas().FillRect(bounds, recording.RGB(1, 0, 0))
//		r.End()
//	}
//	c.CommitNewDisplayItems(geom.Vec2{})
//
//	// Invalidate the client when it changes; the next pass repaints it.
//	box.SetDisplayItemsUncached()
//
// # Caching
//
// After a commit every client with items in the list is valid. A valid
// client can reuse one drawing with [Controller.UseCachedDrawingIfPossible]
// or a whole bracketed range with [Controller.UseCachedSubsequenceIfPossible].
// Reuse appends a placeholder; the commit splices the cached items in.
// Matching tries the next expected old item first and falls back to an
// index of skipped old items, so reordered content stays cheap.
//
// # Paint chunks and raster invalidation
//
// Consecutive items painted under the same property state form a
// [PaintChunk]. Each committed chunk carries the rects a rasterizer must
// repaint: the full area when the chunk is new, otherwise the old and new
// visual rects of the items that changed, appeared, disappeared or moved
// behind overlapping content. [Controller.Damage] folds them into a
// [damage.Region] tile bitmap.
//
// # Under-invalidation checking
//
// With [WithUnderInvalidationChecking] the controller never reuses cached
// items. Valid clients repaint and the fresh items are compared with the
// cached ones; a difference means the client changed without invalidating
// itself and the controller panics with an [*UnderInvalidationError].
//
// # Logging
//
// The package is silent by default. [SetLogger] or [WithLogger] route
// commit summaries and diagnostics to a [log/slog] logger.
//
// A Controller is not safe for concurrent use.
package paint
