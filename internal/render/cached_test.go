package render

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cristianadrielbraun/qrstudio/internal/qrconfig"
)

type mapCache map[string][]byte

func (m mapCache) Get(key string) ([]byte, bool) {
	v, ok := m[key]
	return v, ok
}

func (m mapCache) Set(key string, value []byte) { m[key] = value }

type countingObserver struct{ hits, misses int }

func (c *countingObserver) IncCacheHits()   { c.hits++ }
func (c *countingObserver) IncCacheMisses() { c.misses++ }

func TestCachedRenderer(t *testing.T) {
	cache := mapCache{}
	obs := &countingObserver{}
	r := NewCachedRenderer(cache, obs)
	s := BuildSchema(qrconfig.Default(), nil)

	first, hit, err := r.Render(context.Background(), s, FormatPNG)
	require.NoError(t, err)
	assert.False(t, hit)

	second, hit, err := r.Render(context.Background(), s, FormatPNG)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, first, second)

	_, hit, err = r.Render(context.Background(), s, FormatSVG)
	require.NoError(t, err)
	assert.False(t, hit)

	assert.Equal(t, 1, obs.hits)
	assert.Equal(t, 2, obs.misses)
	assert.Len(t, cache, 2)
}

func TestCacheKey(t *testing.T) {
	cfg := qrconfig.Default()
	a := BuildSchema(cfg, &Logo{Digest: "x"})
	b := BuildSchema(cfg, &Logo{Digest: "x"})
	assert.Equal(t, CacheKey(a, FormatPNG), CacheKey(b, FormatPNG))
	assert.NotEqual(t, CacheKey(a, FormatPNG), CacheKey(a, FormatWebP))

	cfg.GradientEnabled = true
	assert.NotEqual(t, CacheKey(a, FormatPNG), CacheKey(BuildSchema(cfg, &Logo{Digest: "x"}), FormatPNG))
	assert.NotEqual(t, CacheKey(a, FormatPNG), CacheKey(BuildSchema(qrconfig.Default(), &Logo{Digest: "y"}), FormatPNG))
}
