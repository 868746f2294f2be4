package paint

import (
	"log/slog"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	c := NewController()
	if c.opts.checking {
		t.Error("checking = true, want false")
	}
	if c.opts.cacheDisabled {
		t.Error("cacheDisabled = true, want false")
	}
	if c.opts.maxItemSize != DefaultMaxItemSize {
		t.Errorf("maxItemSize = %d, want %d", c.opts.maxItemSize, DefaultMaxItemSize)
	}
	if c.UnderInvalidationChecking() {
		t.Error("UnderInvalidationChecking() = true, want false")
	}
}

func TestOptionsApplyInOrder(t *testing.T) {
	tests := []struct {
		name     string
		opts     []Option
		checking bool
		noCache  bool
		maxItem  int
		capacity int
	}{
		{"checking", []Option{WithUnderInvalidationChecking(true)}, true, false, DefaultMaxItemSize, 64},
		{"caching off", []Option{WithCaching(false)}, false, true, DefaultMaxItemSize, 64},
		{"caching back on", []Option{WithCaching(false), WithCaching(true)}, false, false, DefaultMaxItemSize, 64},
		{"sizes", []Option{WithMaxItemSize(128), WithInitialCapacity(8)}, false, false, 128, 8},
		{"non-positive sizes ignored", []Option{WithMaxItemSize(0), WithInitialCapacity(-1)}, false, false, DefaultMaxItemSize, 64},
		{
			"config then override",
			[]Option{WithConfig(Config{UnderInvalidationChecking: true, DisableCache: true, MaxItemSize: 256}), WithCaching(true)},
			true, false, 256, 64,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController(tt.opts...)
			if c.opts.checking != tt.checking {
				t.Errorf("checking = %v, want %v", c.opts.checking, tt.checking)
			}
			if c.opts.cacheDisabled != tt.noCache {
				t.Errorf("cacheDisabled = %v, want %v", c.opts.cacheDisabled, tt.noCache)
			}
			if c.opts.maxItemSize != tt.maxItem {
				t.Errorf("maxItemSize = %d, want %d", c.opts.maxItemSize, tt.maxItem)
			}
			if c.opts.initialCapacity != tt.capacity {
				t.Errorf("initialCapacity = %d, want %d", c.opts.initialCapacity, tt.capacity)
			}
		})
	}
}

func TestDefaultConfigRoundTrip(t *testing.T) {
	c := NewController(WithConfig(DefaultConfig()))
	if c.opts != defaultOptions() {
		t.Errorf("WithConfig(DefaultConfig()) = %+v, want %+v", c.opts, defaultOptions())
	}
}

func TestWithLoggerNil(t *testing.T) {
	c := NewController(WithLogger(nil))
	if c.logger() != Logger() {
		t.Error("nil WithLogger should fall back to the package logger")
	}
	l := slog.New(nopHandler{})
	c = NewController(WithLogger(l))
	if c.logger() != l {
		t.Error("logger() did not return the WithLogger logger")
	}
}
