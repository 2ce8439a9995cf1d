// Package cache provides pluggable byte caching for expensive pipeline
// stages: parsed topologies, computed layouts and rendered artifacts.
//
// Two backends are included: [FileCache] for persistent on-disk caching and
// [NullCache] for disabling caching entirely. Keys are built by a [Keyer] so
// that every input that affects an output is part of its cache key.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"
)

// Cache TTLs per pipeline stage. Parsed topologies follow their source logs,
// which rarely change once collected; layouts and artifacts are derived
// purely from cached inputs and can live longer.
const (
	TTLTopology = 24 * time.Hour
	TTLLayout   = 7 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache stores opaque byte values under string keys with optional TTLs.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// found and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// LayoutKeyOpts captures every layout input that affects box positions.
type LayoutKeyOpts struct {
	// ConfigHash fingerprints the layout configuration (spacings, colors,
	// collision settings).
	ConfigHash string

	// Collide records whether the collision resolution pass runs.
	Collide bool
}

// ArtifactKeyOpts captures every render input that affects output bytes.
type ArtifactKeyOpts struct {
	Format     string
	VizType    string
	Scale      float64
	ThumbWidth int
	Detailed   bool
}

// Keyer builds cache keys for the pipeline stages.
type Keyer interface {
	// TopologyKey keys a parsed topology by the content hash of its source
	// log.
	TopologyKey(contentHash string) string

	// LayoutKey keys a computed layout by the topology hash and the layout
	// options.
	LayoutKey(topologyHash string, opts LayoutKeyOpts) string

	// ArtifactKey keys a rendered artifact by the layout hash and the render
	// options.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes option structs into fixed-length keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// TopologyKey generates a key for topology caching.
func (k *DefaultKeyer) TopologyKey(contentHash string) string {
	return "topology:" + contentHash
}

// LayoutKey generates a key for layout caching.
func (k *DefaultKeyer) LayoutKey(topologyHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", topologyHash, opts)
}

// ArtifactKey generates a key for artifact caching.
func (k *DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)

// NullCache discards every write and misses every read. It backs --no-cache
// runs and keeps tests hermetic without a cache directory.
type NullCache struct{}

// NewNullCache returns a cache that never stores anything.
func NewNullCache() Cache { return NullCache{} }

func (NullCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (NullCache) Delete(context.Context, string) error { return nil }

func (NullCache) Close() error { return nil }

var _ Cache = NullCache{}

// Hash fingerprints content as a 64-character hex SHA-256 digest. Topology
// and layout hashes exposed in pipeline results use this form.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// hashKey derives a stage-prefixed key from the option values that affect
// the cached output. Full-length digests keep distinct option sets from
// colliding.
func hashKey(stage string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return stage + ":" + Hash(data)
}
