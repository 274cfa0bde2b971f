package cache

// ScopedKeyer wraps a Keyer with a prefix so several callers can share one
// backend without colliding.
//
// Example usage:
//
//	// Keys written by the HTTP API
//	apiKeyer := NewScopedKeyer(NewDefaultKeyer(), "api:")
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

// RunKey generates a prefixed key for run results.
func (k *ScopedKeyer) RunKey(graphHash, source string) string {
	return k.prefix + k.inner.RunKey(graphHash, source)
}

// MatrixKey generates a prefixed key for matrix projections.
func (k *ScopedKeyer) MatrixKey(graphHash string) string {
	return k.prefix + k.inner.MatrixKey(graphHash)
}
