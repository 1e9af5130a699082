// Package pipeline runs the load → compose → render flow for one layout
// and theme pairing.
//
// # Architecture
//
//  1. Load: read the layout and both themes from a [catalog.Catalog]
//  2. Compose: resolve geometry and styles for the page (paper-local
//     origin) and, when a blueprint format is requested, for the canvas
//  3. Render: produce each requested artifact through the sink package,
//     consulting the artifact cache first
//
// # Usage
//
//	runner := pipeline.NewRunner(cat, config.Default(), cache, nil, logger)
//	res, err := runner.Execute(ctx, pipeline.Options{
//	    Layout:     "classic",
//	    FrontTheme: "harbor_light",
//	    BackTheme:  "harbor_dark",
//	    Formats:    []string{pipeline.FormatHTML, pipeline.FormatPNG},
//	})
//	html := res.Artifacts["page.html"]
package pipeline

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/printlayout/pkg/compose"
	"github.com/matzehuels/printlayout/pkg/errors"
	"github.com/matzehuels/printlayout/pkg/sink"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatHTML = "html"
	FormatSVG  = "svg"
	FormatPNG  = "png"
)

// Side selections for blueprint formats.
const (
	SideFront = "front"
	SideBack  = "back"
	SideBoth  = "both"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatJSON: true,
	FormatHTML: true,
	FormatSVG:  true,
	FormatPNG:  true,
}

// Options configure one pipeline run.
type Options struct {
	Layout     string   `json:"layout"`
	FrontTheme string   `json:"front_theme"`
	BackTheme  string   `json:"back_theme"`
	Formats    []string `json:"formats,omitempty"`

	// Side picks the blueprint face(s) for svg and png.
	Side string `json:"side,omitempty"`
	// Dimensions adds measurement lines to json output.
	Dimensions bool `json:"dimensions,omitempty"`
	// Scale resamples png output.
	Scale float64 `json:"scale,omitempty"`
	// FillFont substitutes the configured font family into html output.
	FillFont bool `json:"fill_font,omitempty"`
	// Refresh bypasses cached artifacts.
	Refresh bool `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`
}

// Result holds everything one run produced.
type Result struct {
	// RunID identifies the run in logs.
	RunID string

	// Page is the spec in paper-local coordinates.
	Page compose.Spec

	// Blueprint is the spec placed on the canvas. It is only composed
	// when a blueprint format was requested.
	Blueprint *compose.Spec

	// SpecKey is the cache key of the loaded inputs.
	SpecKey string

	// Artifacts maps an artifact name (see [ArtifactName]) to its bytes.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats holds stage timings.
type Stats struct {
	LoadTime    time.Duration
	ComposeTime time.Duration
	RenderTime  time.Duration
}

// CacheInfo counts artifact cache hits.
type CacheInfo struct {
	Hits   int
	Misses int
}

// RenderHit reports whether every artifact came from the cache.
func (c CacheInfo) RenderHit() bool { return c.Misses == 0 && c.Hits > 0 }

// ValidateFormat checks that a format is supported.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format %q (must be one of: json, html, svg, png)", format)
	}
	return nil
}

// ValidateFormats checks every format.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks required fields and applies defaults.
func (o *Options) Validate() error {
	if o.Layout == "" {
		return errors.New(errors.ErrCodeInvalidInput, "layout is required")
	}
	if o.FrontTheme == "" || o.BackTheme == "" {
		return errors.New(errors.ErrCodeInvalidInput, "front and back themes are required")
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatJSON}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	switch o.Side {
	case "":
		o.Side = SideBoth
	case SideFront, SideBack, SideBoth:
	default:
		return errors.New(errors.ErrCodeInvalidInput, "invalid side %q (must be one of: front, back, both)", o.Side)
	}
	if o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scale must not be negative")
	}
	return nil
}

// NeedsBlueprint reports whether any requested format draws the canvas.
func (o *Options) NeedsBlueprint() bool {
	for _, f := range o.Formats {
		if f == FormatSVG || f == FormatPNG {
			return true
		}
	}
	return false
}

// Sides returns the blueprint faces to render.
func (o *Options) Sides() []sink.Side {
	switch o.Side {
	case SideFront:
		return []sink.Side{sink.SideFront}
	case SideBack:
		return []sink.Side{sink.SideBack}
	}
	return []sink.Side{sink.SideFront, sink.SideBack}
}

// ArtifactName names one output: "spec.json", "page.html", or
// "<side>.svg" / "<side>.png" for blueprints.
func ArtifactName(format string, side sink.Side) string {
	switch format {
	case FormatJSON:
		return "spec.json"
	case FormatHTML:
		return "page.html"
	}
	return fmt.Sprintf("%s.%s", side, format)
}
