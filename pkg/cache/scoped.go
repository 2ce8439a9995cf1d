package cache

// ScopedKeyer wraps a Keyer with a prefix so key namespaces can coexist in
// one cache directory: a key-schema version (the CLI prefixes "v1:" so
// entries from older builds stop resolving after an encoding change), or
// separate log collections sharing a directory.
//
// Example usage:
//
//	// Keys scoped to one datacenter's log collection
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "dc1:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// TopologyKey generates a prefixed key for topology caching.
func (k *ScopedKeyer) TopologyKey(contentHash string) string {
	return k.prefix + k.inner.TopologyKey(contentHash)
}

// LayoutKey generates a prefixed key for layout caching.
func (k *ScopedKeyer) LayoutKey(topologyHash string, opts LayoutKeyOpts) string {
	return k.prefix + k.inner.LayoutKey(topologyHash, opts)
}

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(layoutHash, opts)
}
