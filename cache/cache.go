// Package cache keeps recently decoded addresses in memory.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/spacemeshos/go-cfxaddress/common/types/address"
	"github.com/spacemeshos/go-cfxaddress/metrics"
)

const subsystem = "cache"

var (
	lookups  = metrics.NewCounter("lookups", subsystem, "Number of address lookups by result", []string{"result"})
	hits     = lookups.WithLabelValues("hit")
	misses   = lookups.WithLabelValues("miss")
	failures = lookups.WithLabelValues("failure")
	evicted  = metrics.NewCounter("evicted", subsystem, "Number of addresses evicted from the cache", []string{}).WithLabelValues()
	entries  = metrics.NewGauge("entries", subsystem, "Number of addresses kept by the last updated cache", []string{}).WithLabelValues()

	warmupDuration = metrics.NewHistogramWithBuckets(
		"warmup_duration_seconds",
		subsystem,
		"Duration of cache warmups",
		[]string{"result"},
		prometheus.ExponentialBuckets(0.0001, 4, 10),
	)
)

// ErrInvalidSize is returned for a cache that can't hold a single address.
var ErrInvalidSize = errors.New("cache size must be positive")

// Config is the configuration of the decode cache.
type Config struct {
	Size int `mapstructure:"size"`
}

// DefaultConfig returns the default configuration of the decode cache.
func DefaultConfig() Config {
	return Config{Size: 4096}
}

type Opt func(*Decoder)

// WithLogger sets the logger of the decoder.
func WithLogger(logger *zap.Logger) Opt {
	return func(d *Decoder) {
		d.logger = logger
	}
}

// Decoder decodes addresses with a codec and keeps the results of the most
// recently decoded texts. Texts that fail to decode are not kept.
// It is safe for concurrent use.
type Decoder struct {
	logger *zap.Logger
	codec  *address.Codec
	cache  *lru.Cache[string, address.Address]
}

// New creates a decoder over codec.
func New(codec *address.Codec, cfg Config, opts ...Opt) (*Decoder, error) {
	if cfg.Size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, cfg.Size)
	}
	d := &Decoder{
		logger: zap.NewNop(),
		codec:  codec,
	}
	for _, opt := range opts {
		opt(d)
	}
	cache, err := lru.NewWithEvict(cfg.Size, func(string, address.Address) {
		evicted.Inc()
	})
	if err != nil {
		return nil, fmt.Errorf("create lru: %w", err)
	}
	d.cache = cache
	return d, nil
}

// Decode returns the address encoded by text, as address.Codec.Decode does
// without options.
func (d *Decoder) Decode(text string) (address.Address, error) {
	if a, ok := d.cache.Get(text); ok {
		hits.Inc()
		return a, nil
	}
	a, err := d.codec.Decode(text)
	if err != nil {
		failures.Inc()
		return address.Address{}, err
	}
	misses.Inc()
	d.cache.Add(text, a)
	entries.Set(float64(d.cache.Len()))
	return a, nil
}

// Contains reports whether the result of decoding text is kept.
func (d *Decoder) Contains(text string) bool {
	return d.cache.Contains(text)
}

// Len returns the number of kept addresses.
func (d *Decoder) Len() int {
	return d.cache.Len()
}

// Purge drops all kept addresses.
func (d *Decoder) Purge() {
	d.cache.Purge()
	entries.Set(0)
}

// Warmup decodes texts ahead of use. It stops at the first text that fails to
// decode or when ctx is done, and returns the number of texts decoded so far.
func (d *Decoder) Warmup(ctx context.Context, texts []string) (int, error) {
	start := time.Now()
	for i, text := range texts {
		select {
		case <-ctx.Done():
			warmupDuration.WithLabelValues("canceled").Observe(time.Since(start).Seconds())
			return i, ctx.Err()
		default:
		}
		if _, err := d.Decode(text); err != nil {
			warmupDuration.WithLabelValues("failure").Observe(time.Since(start).Seconds())
			return i, fmt.Errorf("warmup %q: %w", text, err)
		}
	}
	warmupDuration.WithLabelValues("success").Observe(time.Since(start).Seconds())
	d.logger.Debug("cache warmed up", zap.Int("addresses", len(texts)), zap.Int("kept", d.cache.Len()))
	return len(texts), nil
}
