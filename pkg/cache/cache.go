// Package cache stores rendered chart artifacts keyed by everything that
// went into producing them.
//
// Rendering is deterministic for a given dataset, option set, chart type and
// capture time, so the CLI can skip the whole rebuild when a previous run
// already produced the same bytes. Keys are built with [ArtifactKey]; the
// stored value is the raw sink output.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Cache is a byte store with optional per-entry expiry.
type Cache interface {
	// Get returns the stored bytes and whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// ArtifactOpts identifies one rendered output.
type ArtifactOpts struct {
	Version   string          `json:"version"`
	Kind      string          `json:"kind"`
	Selection string          `json:"selection"`
	Format    string          `json:"format"`
	At        time.Duration   `json:"at"`
	Static    bool            `json:"static"`
	Options   json.RawMessage `json:"options,omitempty"`
}

// ArtifactKey derives the cache key for a rendered artifact from the hash
// of its source data and the render parameters.
func ArtifactKey(dataHash string, opts ArtifactOpts) string {
	return hashKey("artifact", dataHash, opts)
}

// hashKey formats prefix:sha256(json(parts)).
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	sum := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(sum[:]))
}

// Hash returns the hex SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
