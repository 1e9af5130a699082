package cache

// ScopedKeyer prefixes every key from an inner Keyer. The CLI scopes keys
// by base directory so two catalogs sharing a layout name never collide.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "dir:"+Hash([]byte(baseDir))[:12]+":")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix. A nil inner uses
// DefaultKeyer.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// SpecKey generates a prefixed spec key.
func (k *ScopedKeyer) SpecKey(layout string, opts SpecKeyOpts) string {
	return k.prefix + k.inner.SpecKey(layout, opts)
}

// ArtifactKey generates a prefixed artifact key.
func (k *ScopedKeyer) ArtifactKey(specHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(specHash, opts)
}
