// Package geometry resolves layout rules into absolute box positions.
//
// # Coordinate Systems
//
// Two conventions are used, both in inches:
//
//   - Canvas space ([Box]): origin at the bottom-left, y grows upward. All
//     placement math runs here, relative to a paper box whose origin is
//     either (0, 0) or wherever the blueprint [Canvas] puts the sheet.
//   - Page space ([PageBox]): origin at the paper's top-left, y grows
//     downward. This is what the HTML page target positions against.
//
// [ToPage] and [FromPage] convert between the two and are exact inverses.
//
// # Placement Rules
//
// Images follow a [Margins] rule whose keys are tried in order rather than
// combined: left, then right, then horizontal centering; top, then
// center_v, then vertical centering (center_v and the default agree).
// Captions are placed by absolute left/top offsets from the paper's
// top-left corner. Notes are always centered.
//
// # Annotations
//
// [Dimensions] produces the D1..D10 measurement lines drawn around the
// sheet on blueprints. Each [Dimension] is pure data; drawing is left to
// the sinks.
package geometry
