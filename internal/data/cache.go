package data

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"strconv"
	"sync"
	"time"

	"osm-hvac-report/internal/osm"
)

// CacheEntry is one parsed model held by the cache.
type CacheEntry struct {
	Model     *osm.Model
	ExpiresAt time.Time
}

// ModelCache keeps parsed models keyed by the hash of the uploaded file,
// so repeated report requests for the same model skip parsing.
//
// Cached models are shared between requests and must be treated as
// read-only.
type ModelCache struct {
	mu    sync.RWMutex
	store map[string]*CacheEntry
	ttl   time.Duration
}

var globalCache *ModelCache
var cacheOnce sync.Once

// GetCache returns the process-wide cache, or nil when caching is disabled.
// Caching is enabled with ENABLE_MODEL_CACHE=true; MODEL_CACHE_TTL sets
// the entry lifetime (default 1h).
func GetCache() *ModelCache {
	if os.Getenv("ENABLE_MODEL_CACHE") != "true" {
		return nil
	}

	cacheOnce.Do(func() {
		ttl := 1 * time.Hour
		if ttlStr := os.Getenv("MODEL_CACHE_TTL"); ttlStr != "" {
			if parsed, err := time.ParseDuration(ttlStr); err == nil {
				ttl = parsed
			}
		}
		globalCache = NewModelCache(ttl)
		go globalCache.cleanup(5 * time.Minute)
	})

	return globalCache
}

// NewModelCache returns an empty cache. No cleanup goroutine is started.
func NewModelCache(ttl time.Duration) *ModelCache {
	return &ModelCache{
		store: make(map[string]*CacheEntry),
		ttl:   ttl,
	}
}

// Get retrieves a cached model if present and not expired.
func (c *ModelCache) Get(key string) (*osm.Model, bool) {
	if c == nil {
		return nil, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.store[key]
	if !exists {
		return nil, false
	}
	if time.Now().After(entry.ExpiresAt) {
		return nil, false
	}
	return entry.Model, true
}

func (c *ModelCache) Set(key string, m *osm.Model) {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.store[key] = &CacheEntry{
		Model:     m,
		ExpiresAt: time.Now().Add(c.ttl),
	}
}

func (c *ModelCache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}

// Clear removes all entries.
func (c *ModelCache) Clear() {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.store = make(map[string]*CacheEntry)
}

// Prune drops expired entries.
func (c *ModelCache) Prune(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, entry := range c.store {
		if now.After(entry.ExpiresAt) {
			delete(c.store, key)
		}
	}
}

func (c *ModelCache) cleanup(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for now := range ticker.C {
		c.Prune(now)
	}
}

// GenerateCacheKey derives a key from the model bytes and the load
// options that change the parsed result.
func GenerateCacheKey(raw []byte, versionTranslator bool) string {
	h := sha256.New()
	h.Write(raw)
	h.Write([]byte(":translator=" + strconv.FormatBool(versionTranslator)))
	return hex.EncodeToString(h.Sum(nil))
}
