package profile

import (
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/leaguemind/LeagueMind_Go/internal/domain"
)

// CacheSchemaVersion is the current version of the cached profile shape.
// Increment when the profile structure changes to auto-invalidate old entries.
const CacheSchemaVersion = "1.0"

// EntryState is the per-key cache state. Expiry is a lazy read-side check,
// not a background sweep, so an EXPIRED entry stays resident until a
// successful rebuild overwrites it. That is deliberate: a failed rebuild
// degrades to serving stale, never to serving nothing.
type EntryState string

const (
	StateMissing    EntryState = "MISSING"
	StateFresh      EntryState = "FRESH"
	StateExpired    EntryState = "EXPIRED"
	StateRebuilding EntryState = "REBUILDING"
)

// cacheEntry wraps a profile with expiry and version metadata
type cacheEntry struct {
	Version   string
	Profile   *domain.UserIntelligenceProfile
	StoredAt  time.Time
	ExpiresAt time.Time
}

// profileCache is the bounded in-memory store for generated profiles,
// keyed by user:sport. Entries are overwritten wholesale, never patched.
type profileCache struct {
	lru *lru.Cache[string, *cacheEntry]
	ttl time.Duration

	mu         sync.Mutex
	rebuilding map[string]bool
}

// newProfileCache creates a profile cache. size bounds resident profiles;
// ttl is the freshness window checked lazily on read.
func newProfileCache(size int, ttl time.Duration) (*profileCache, error) {
	inner, err := lru.New[string, *cacheEntry](size)
	if err != nil {
		return nil, err
	}
	return &profileCache{
		lru:        inner,
		ttl:        ttl,
		rebuilding: make(map[string]bool),
	}, nil
}

// State reports the entry state for a key at the given instant
func (c *profileCache) State(key string, now time.Time) EntryState {
	c.mu.Lock()
	building := c.rebuilding[key]
	c.mu.Unlock()
	if building {
		return StateRebuilding
	}

	entry, ok := c.lru.Get(key)
	if !ok || entry.Version != CacheSchemaVersion {
		return StateMissing
	}
	if now.After(entry.ExpiresAt) {
		return StateExpired
	}
	return StateFresh
}

// Fresh returns the cached profile when present, version-current and unexpired
func (c *profileCache) Fresh(key string, now time.Time) (*domain.UserIntelligenceProfile, bool) {
	entry, ok := c.lru.Get(key)
	if !ok || entry.Version != CacheSchemaVersion {
		return nil, false
	}
	if now.After(entry.ExpiresAt) {
		return nil, false
	}
	return entry.Profile, true
}

// Stale returns whatever entry is resident, expired or not. Used as the
// fallback after a failed rebuild.
func (c *profileCache) Stale(key string) (*domain.UserIntelligenceProfile, bool) {
	entry, ok := c.lru.Get(key)
	if !ok || entry.Version != CacheSchemaVersion {
		return nil, false
	}
	return entry.Profile, true
}

// Store overwrites the entry for a key with a fresh expiry
func (c *profileCache) Store(key string, p *domain.UserIntelligenceProfile, now time.Time) {
	c.lru.Add(key, &cacheEntry{
		Version:   CacheSchemaVersion,
		Profile:   p,
		StoredAt:  now,
		ExpiresAt: now.Add(c.ttl),
	})
}

// Remove drops the entry for a key
func (c *profileCache) Remove(key string) {
	c.lru.Remove(key)
}

// markRebuilding flags a key as rebuilding; returns false if it already was
func (c *profileCache) markRebuilding(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.rebuilding[key] {
		return false
	}
	c.rebuilding[key] = true
	return true
}

// clearRebuilding clears the rebuilding flag for a key
func (c *profileCache) clearRebuilding(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.rebuilding, key)
}
