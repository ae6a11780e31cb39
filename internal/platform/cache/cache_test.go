package cache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vantage-fin/vantage/internal/platform/cache"
)

func TestTagCache_GetSet(t *testing.T) {
	c, err := cache.New[string](8)
	require.NoError(t, err)

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Set("k1", "v1", cache.TagSettings)
	got, ok := c.Get("k1")
	assert.True(t, ok)
	assert.Equal(t, "v1", got)
}

func TestTagCache_InvalidateByTag(t *testing.T) {
	c, err := cache.New[int](8)
	require.NoError(t, err)

	c.Set("a", 1, cache.UserTag(cache.TagSettings, "u1"))
	c.Set("b", 2, cache.UserTag(cache.TagSettings, "u2"))

	c.Invalidate(cache.UserTag(cache.TagSettings, "u1"))

	_, ok := c.Get("a")
	assert.False(t, ok, "entry under the invalidated tag should be evicted")
	got, ok := c.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 2, got)
}

func TestTagCache_SetReplacesTags(t *testing.T) {
	c, err := cache.New[int](8)
	require.NoError(t, err)

	c.Set("k", 1, "old-tag")
	c.Set("k", 2, "new-tag")

	c.Invalidate("old-tag")
	got, ok := c.Get("k")
	assert.True(t, ok, "entry re-tagged on Set must survive old tag invalidation")
	assert.Equal(t, 2, got)

	c.Invalidate("new-tag")
	_, ok = c.Get("k")
	assert.False(t, ok)
}
