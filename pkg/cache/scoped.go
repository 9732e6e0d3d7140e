package cache

// ScopedKeyer wraps a Keyer with a prefix so several applications or
// profiles can share one cache directory.
//
// Example usage:
//
//	// Keys for the demo table only
//	demoKeyer := NewScopedKeyer(NewDefaultKeyer(), "demo:")
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

// HeightKey generates a prefixed key for committed heights.
func (k *ScopedKeyer) HeightKey(table string, opts HeightKeyOpts) string {
	return k.prefix + k.inner.HeightKey(table, opts)
}
