package cache

// ScopedKeyer prefixes every key of another Keyer. It keeps artifacts of
// different device families apart when they share one cache.
//
//	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "pcbfpga:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix. A nil inner keyer means
// the default keyer.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// ArtifactKey implements Keyer.
func (k *ScopedKeyer) ArtifactKey(fabricHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(fabricHash, opts)
}
