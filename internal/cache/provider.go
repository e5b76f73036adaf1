package cache

import (
	"errors"
	"unsafe"

	"github.com/coocood/freecache"
	"github.com/rs/zerolog"

	"github.com/cristianadrielbraun/qrstudio/internal/config"
)

// Provider is a byte cache keyed by string.
type Provider interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
}

type FreeCache struct {
	cache  *freecache.Cache
	ttl    int
	size   int
	logger zerolog.Logger
}

func NewProvider(conf *config.Config, logger zerolog.Logger) Provider {
	if !conf.Cache.Enabled || conf.Cache.Size <= 0 {
		logger.Info().Msg("cache disabled")
		return &noopCache{}
	}

	sizeBytes := conf.Cache.Size * 1024 * 1024
	ttl := max(int(conf.Cache.TTL.Seconds()), 1)

	logger.Info().Int("size_mb", conf.Cache.Size).Int("ttl_s", ttl).Msg("cache initialized")

	return &FreeCache{
		cache:  freecache.NewCache(sizeBytes),
		ttl:    ttl,
		size:   sizeBytes,
		logger: logger.With().Str("component", "cache").Logger(),
	}
}

// unsafeStringToBytes converts without allocating. freecache copies keys,
// so the result is never written to.
func unsafeStringToBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

func (c *FreeCache) Get(key string) ([]byte, bool) {
	val, err := c.cache.Get(unsafeStringToBytes(key))
	if err != nil {
		return nil, false
	}
	return val, true
}

// MaxEntryBytes is the largest value the cache accepts. freecache refuses
// anything over 1/1024 of its size.
func (c *FreeCache) MaxEntryBytes() int {
	return c.size / 1024
}

// Set stores value. Oversized entries are not stored and are logged.
func (c *FreeCache) Set(key string, value []byte) {
	err := c.cache.Set(unsafeStringToBytes(key), value, c.ttl)
	switch {
	case errors.Is(err, freecache.ErrLargeEntry):
		c.logger.Warn().
			Str("key", key).
			Int("bytes", len(value)).
			Int("max_bytes", c.MaxEntryBytes()).
			Msg("entry too large to cache, raise cache.size")
	case err != nil:
		c.logger.Warn().Err(err).Str("key", key).Msg("cache set failed")
	}
}

type noopCache struct{}

func (n *noopCache) Get(_ string) ([]byte, bool) { return nil, false }
func (n *noopCache) Set(_ string, _ []byte)      {}
