// Package cache stores rendered artifacts so repeated renders of an
// unchanged dataset with unchanged options are served without recomputing.
//
// Three backends implement [Cache]: [FileCache] for the CLI, [RedisCache]
// for a cache shared between machines, and [NullCache] when caching is
// disabled. Keys come from a [Keyer] so callers never hand-assemble them.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// TTLArtifact is how long rendered artifacts are kept.
const TTLArtifact = 7 * 24 * time.Hour

// Cache is a byte store with expiring entries.
type Cache interface {
	// Get returns the value and true on a hit, or nil and false on a miss.
	// A miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data; a ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key; deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases the backend's resources.
	Close() error
}

// Keyer derives cache keys.
type Keyer interface {
	// ArtifactKey identifies one rendered artifact of one dataset.
	ArtifactKey(datasetHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts holds everything besides the dataset that changes an
// artifact's bytes.
type ArtifactKeyOpts struct {
	Format      string  `json:"format"`
	Style       string  `json:"style"`
	Focus       string  `json:"focus,omitempty"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Radius      float64 `json:"radius"`
	LabelOffset float64 `json:"label_offset"`
	NodeRadius  float64 `json:"node_radius"`
	Arrows      bool    `json:"arrows,omitempty"`
	Title       bool    `json:"title,omitempty"`
	Static      bool    `json:"static,omitempty"`
	Detailed    bool    `json:"detailed,omitempty"`
	Scale       float64 `json:"scale,omitempty"`
}

// DefaultKeyer produces keys of the form "artifact:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer returns a [DefaultKeyer].
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// ArtifactKey hashes the dataset hash together with opts.
func (DefaultKeyer) ArtifactKey(datasetHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", datasetHash, opts)
}

// Hash returns the hex SHA-256 digest of data. Dataset hashes and file
// cache names both use it.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// hashKey joins namespace and the digest of the JSON encoding of parts.
// Struct fields marshal in declaration order, so equal options give equal keys.
func hashKey(namespace string, parts ...any) string {
	data, err := json.Marshal(parts)
	if err != nil {
		// NaN and Inf options are rejected before keying; fall back anyway.
		data = []byte(fmt.Sprintf("%#v", parts))
	}
	return namespace + ":" + Hash(data)
}
