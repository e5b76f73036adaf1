package render

import (
	"context"
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// ByteCache is the subset of the cache provider the renderer needs.
type ByteCache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
}

// CacheObserver is told about hits and misses.
type CacheObserver interface {
	IncCacheHits()
	IncCacheMisses()
}

// CachedRenderer renders one-off schemas and memoizes the encoded output.
type CachedRenderer struct {
	cache    ByteCache
	observer CacheObserver
}

func NewCachedRenderer(cache ByteCache, observer CacheObserver) *CachedRenderer {
	return &CachedRenderer{cache: cache, observer: observer}
}

// Render returns the encoded image and whether it came from the cache.
func (r *CachedRenderer) Render(ctx context.Context, s Schema, format Format) ([]byte, bool, error) {
	key := CacheKey(s, format)
	if data, ok := r.cache.Get(key); ok {
		if r.observer != nil {
			r.observer.IncCacheHits()
		}
		return data, true, nil
	}
	if r.observer != nil {
		r.observer.IncCacheMisses()
	}

	data, err := Render(ctx, s, format)
	if err != nil {
		return nil, false, err
	}
	r.cache.Set(key, data)
	return data, false, nil
}

// CacheKey fingerprints everything that affects the encoded bytes.
func CacheKey(s Schema, format Format) string {
	d := xxhash.New()

	logo := ""
	if s.Image != nil {
		logo = s.Image.Digest
	}
	var g Gradient
	if s.Dots.Gradient != nil {
		g = *s.Dots.Gradient
	}
	plain := s
	plain.Image, plain.Dots.Gradient = nil, nil

	fmt.Fprintf(d, "%s|%#v|%#v|%s", format, plain, g, logo)
	return "qr:" + strconv.FormatUint(d.Sum64(), 16)
}
