// Package cache stores generated artifacts between runs.
//
// Three backends implement [Cache]: [FileCache] for the CLI, [RedisCache]
// for a cache shared between machines, and [NullCache] when caching is off.
// Keys come from a [Keyer] so callers never build key strings by hand.
//
//	c, err := cache.NewFileCache(dir)
//	if err != nil {
//		return err
//	}
//	defer c.Close()
//	key := cache.NewDefaultKeyer().ArtifactKey(hash, cache.ArtifactKeyOpts{Format: "bba"})
//	data, hit, err := c.Get(ctx, key)
package cache

import (
	"context"
	"time"
)

// TTLArtifact is how long a generated artifact stays valid. Generation is
// deterministic, so the limit only bounds disk usage.
const TTLArtifact = 30 * 24 * time.Hour

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the value for key and whether it was found. A missing or
	// expired entry is a miss, not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases the backend.
	Close() error
}

// Clearer is implemented by caches that can drop every entry they own.
type Clearer interface {
	// Clear removes all entries and returns how many were removed.
	Clear(ctx context.Context) (int, error)
}

// Keyer builds cache keys.
type Keyer interface {
	// ArtifactKey is the key of one serialized artifact of a fabric whose
	// generation parameters hash to fabricHash.
	ArtifactKey(fabricHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts lists the inputs besides the fabric that change an
// artifact's bytes.
type ArtifactKeyOpts struct {
	Format   string `json:"format"`
	Detailed bool   `json:"detailed,omitempty"`
	Version  string `json:"version,omitempty"`
}

// DefaultKeyer produces "artifact:<sha256>" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(fabricHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", fabricHash, opts)
}
