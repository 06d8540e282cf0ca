package data

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"osm-hvac-report/internal/osm"
)

func TestModelCache(t *testing.T) {
	c := NewModelCache(time.Minute)
	m := osm.NewModel(nil)

	_, ok := c.Get("k")
	assert.False(t, ok)

	c.Set("k", m)
	got, ok := c.Get("k")
	assert.True(t, ok)
	assert.Same(t, m, got)

	c.Prune(time.Now().Add(2 * time.Minute))
	assert.Zero(t, c.Len())

	c.Set("k", m)
	c.Clear()
	_, ok = c.Get("k")
	assert.False(t, ok)
}

func TestModelCache_Expired(t *testing.T) {
	c := NewModelCache(-time.Second)
	c.Set("k", osm.NewModel(nil))
	_, ok := c.Get("k")
	assert.False(t, ok)
}

func TestNilCacheIsNoop(t *testing.T) {
	var c *ModelCache
	c.Set("k", osm.NewModel(nil))
	_, ok := c.Get("k")
	assert.False(t, ok)
	assert.Zero(t, c.Len())
}

func TestGetCacheDisabledByDefault(t *testing.T) {
	t.Setenv("ENABLE_MODEL_CACHE", "")
	assert.Nil(t, GetCache())
}

func TestGenerateCacheKey(t *testing.T) {
	a := GenerateCacheKey([]byte("OS:Version,{h},3.7.0;"), true)
	assert.Len(t, a, 64)
	assert.Equal(t, a, GenerateCacheKey([]byte("OS:Version,{h},3.7.0;"), true))
	assert.NotEqual(t, a, GenerateCacheKey([]byte("OS:Version,{h},3.7.0;"), false))
}
