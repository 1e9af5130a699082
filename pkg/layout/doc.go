// Package layout defines the on-disk layout definition and its validation.
//
// A [Definition] is pure geometry: paper size, front image and caption
// rules, back note size, and per-box border widths. Colors come from
// themes and are joined with a definition later by the compose package.
//
// Definitions live one per file under <base>/layouts/. Older projects kept
// every layout in a single layouts.json with inline style objects;
// [Migrate] and [MigrateFile] convert that format.
package layout
