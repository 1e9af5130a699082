// Package palette assigns semantic color roles to five-color palettes.
//
// # Overview
//
// A [Palette] is exactly five hex colors, usually exported from a color
// picker such as Adobe Color. [Assign] maps the five entries onto the roles
// a print layout needs:
//
//   - background: the lightest color (light mode) or darkest (dark mode)
//   - base: always the palette's third entry
//   - text: the color with the highest WCAG contrast against background
//   - secondary, accent: the two leftovers, ordered by luminance
//
// # WCAG Math
//
// [Luminance] implements the WCAG 2.x relative luminance formula and
// [ContrastRatio] the matching contrast ratio, ranging from 1:1 to 21:1:
//
//	ratio := palette.ContrastRatio("#FFFFFF", "#000000") // 21
//
// # Importing
//
// [ParseAdobeCSS] reads the CSS swatch export produced by Adobe Color and
// returns the theme name and its five colors.
package palette
