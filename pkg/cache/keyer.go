package cache

// Keyer derives cache keys. Implementations must be deterministic.
type Keyer interface {
	// SpecKey identifies a resolved spec by the names it was built from
	// and a hash of the loaded layout and theme content.
	SpecKey(layout string, opts SpecKeyOpts) string

	// ArtifactKey identifies one rendered output of a spec.
	ArtifactKey(specHash string, opts ArtifactKeyOpts) string
}

// SpecKeyOpts are the inputs besides the layout name that shape a spec.
type SpecKeyOpts struct {
	FrontTheme  string `json:"front_theme"`
	BackTheme   string `json:"back_theme"`
	ContentHash string `json:"content_hash"`
}

// ArtifactKeyOpts are the render options that change an artifact's bytes.
type ArtifactKeyOpts struct {
	Format     string  `json:"format"`
	Side       string  `json:"side,omitempty"`
	DPI        float64 `json:"dpi,omitempty"`
	Scale      float64 `json:"scale,omitempty"`
	Canvas     string  `json:"canvas,omitempty"`
	Ink        string  `json:"ink,omitempty"`
	Page       string  `json:"page,omitempty"`
	Dimensions bool    `json:"dimensions,omitempty"`
}

// DefaultKeyer hashes key inputs with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// SpecKey returns "spec:<sha256>".
func (DefaultKeyer) SpecKey(layout string, opts SpecKeyOpts) string {
	return hashKey("spec", layout, opts)
}

// ArtifactKey returns "artifact:<sha256>".
func (DefaultKeyer) ArtifactKey(specHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", specHash, opts)
}
