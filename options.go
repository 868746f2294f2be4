package paint

import "log/slog"

// DefaultMaxItemSize is the default per-item payload budget of a
// DisplayItemList, in bytes.
const DefaultMaxItemSize = 1 << 20

// Option configures a Controller during creation.
//
// Example:
//
//	// Default controller: caching on, no checking.
//	c := paint.NewController()
//
//	// Verify that cached content matches what a repaint would produce.
//	c := paint.NewController(paint.WithUnderInvalidationChecking(true))
type Option func(*controllerOptions)

type controllerOptions struct {
	checking        bool
	cacheDisabled   bool
	maxItemSize     int
	initialCapacity int
	logger          *slog.Logger
}

func defaultOptions() controllerOptions {
	return controllerOptions{
		maxItemSize:     DefaultMaxItemSize,
		initialCapacity: 64,
	}
}

// Config is the file form of the controller options.
// Zero values keep the defaults.
type Config struct {
	UnderInvalidationChecking bool `toml:"under_invalidation_checking"`
	DisableCache              bool `toml:"disable_cache"`
	MaxItemSize               int  `toml:"max_item_size"`
	InitialCapacity           int  `toml:"initial_capacity"`
}

// DefaultConfig returns the configuration NewController uses without options.
func DefaultConfig() Config {
	o := defaultOptions()
	return Config{
		MaxItemSize:     o.maxItemSize,
		InitialCapacity: o.initialCapacity,
	}
}

// WithConfig applies every field of cfg. Later options override it.
func WithConfig(cfg Config) Option {
	return func(o *controllerOptions) {
		o.checking = cfg.UnderInvalidationChecking
		o.cacheDisabled = cfg.DisableCache
		if cfg.MaxItemSize > 0 {
			o.maxItemSize = cfg.MaxItemSize
		}
		if cfg.InitialCapacity > 0 {
			o.initialCapacity = cfg.InitialCapacity
		}
	}
}

// WithUnderInvalidationChecking turns cache reuse into verification:
// clients with valid caches are repainted and the fresh items must equal
// the cached ones, otherwise the controller panics with an
// *UnderInvalidationError.
func WithUnderInvalidationChecking(enabled bool) Option {
	return func(o *controllerOptions) {
		o.checking = enabled
	}
}

// WithCaching enables or disables cache reuse. With caching disabled every
// UseCached call reports false and every item is recorded fresh.
func WithCaching(enabled bool) Option {
	return func(o *controllerOptions) {
		o.cacheDisabled = !enabled
	}
}

// WithMaxItemSize sets the payload budget for a single display item.
// Non-positive values keep the default.
func WithMaxItemSize(n int) Option {
	return func(o *controllerOptions) {
		if n > 0 {
			o.maxItemSize = n
		}
	}
}

// WithInitialCapacity presizes the in-progress display list.
func WithInitialCapacity(n int) Option {
	return func(o *controllerOptions) {
		if n > 0 {
			o.initialCapacity = n
		}
	}
}

// WithLogger sets a controller-specific logger. Without it the controller
// logs through the package logger (see [SetLogger]).
func WithLogger(l *slog.Logger) Option {
	return func(o *controllerOptions) {
		o.logger = l
	}
}
