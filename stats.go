package paint

import "log/slog"

// Stats describes the most recent commit.
type Stats struct {
	// Commits counts every CommitNewDisplayItems call of the controller.
	Commits int
	// NewItems is the length of the committed list.
	NewItems int
	// CachedNewItems counts items copied from the previous list.
	CachedNewItems int
	// SequentialMatches counts placeholders resolved by scanning forward
	// from the last match.
	SequentialMatches int
	// OutOfOrderMatches counts placeholders resolved through the index of
	// skipped items.
	OutOfOrderMatches int
	// IndexedItems counts previous items added to that index.
	IndexedItems int
	// ImplicitlyCached counts freshly recorded drawings replaced by their
	// equal cached copy.
	ImplicitlyCached int
	// DroppedValidItems counts cacheable previous items of still-valid
	// clients that were not painted again.
	DroppedValidItems int
	Chunks            int
	InvalidationRects int
}

// LogValue implements slog.LogValuer.
func (s Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("items", s.NewItems),
		slog.Int("cached", s.CachedNewItems),
		slog.Int("sequential", s.SequentialMatches),
		slog.Int("out_of_order", s.OutOfOrderMatches),
		slog.Int("indexed", s.IndexedItems),
		slog.Int("implicit", s.ImplicitlyCached),
		slog.Int("dropped_valid", s.DroppedValidItems),
		slog.Int("chunks", s.Chunks),
		slog.Int("invalidations", s.InvalidationRects),
	)
}
