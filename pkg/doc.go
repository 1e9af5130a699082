// Package pkg provides the core libraries for printlayout.
//
// # Overview
//
// Printlayout resolves two-sided print layouts. A layout file carries only
// geometry (paper size, image and caption boxes, border widths); colors
// come from themes generated out of five-color palettes. Combining the two
// yields a fully styled element spec that sinks turn into an HTML print
// template, a JSON description or an annotated blueprint.
//
// # Architecture
//
// The data flow through printlayout:
//
//	Adobe Color CSS ──► [palette] (WCAG role assignment)
//	                        ↓
//	                    [theme] (slot → role → color)
//	                        ↓
//	layout JSON ──► [layout] ──► [geometry] (boxes, columns, dimensions)
//	                        ↓
//	                    [compose] (geometry + theme styles)
//	                        ↓
//	                    [sink] (HTML, JSON, SVG, PNG)
//
// # Quick Start
//
//	cat := catalog.New("./studio")
//	spec, _ := cat.Spec("classic", "harbor_light", "harbor_dark", geometry.Point{})
//	page := sink.RenderHTML(spec)
//
// # Main Packages
//
// ## Domain
//
// [palette] - Colors, WCAG relative luminance and contrast, and the
// assignment of background, base, accent, secondary and text roles to a
// five-color palette for light or dark mode.
//
// [theme] - Named color schemes: role→color plus slot→role, with the
// style builder that drops half-specified borders.
//
// [geometry] - Coordinate boxes, image and caption placement, double-column
// splitting, the blueprint canvas and its dimension lines.
//
// [layout] - Geometry-only layout definitions and migration from the
// legacy single-file format.
//
// [compose] - Merges a layout with a front and a back theme into a
// styled element spec.
//
// ## Output
//
// [sink] - Renderers: HTML print template with content placeholders, JSON
// spec, SVG blueprint and its PNG rasterization.
//
// ## Orchestration
//
// [catalog] - Base directory discovery: layouts/, themes/, palettes/.
//
// [pipeline] - Load → compose → render with artifact caching, used by the
// CLI for single renders and batches.
//
// [batch] - batch.json, random theme assignment and bounded concurrent
// execution.
//
// ## Infrastructure
//
// [cache] - Artifact cache interface with file and null implementations
// and content-addressed keys.
//
// [config] - printlayout.toml: canvas, ink, page and cache settings.
//
// [observability] - Optional hooks for pipeline stages and cache traffic.
//
// [errors] - Coded errors shared by every package.
//
// # Testing
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/geometry/...           # Specific package
//	go test -run Example                 # Examples only
package pkg
