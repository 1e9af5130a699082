// Package sink renders composed layout specs to output formats.
//
// # Formats
//
//   - [RenderJSON]: the page-space descriptor set, optionally with the
//     canvas-space boxes and blueprint dimensions.
//   - [RenderHTML]: a print page template with {{IMAGE}}, {{CAPTION}},
//     {{NOTE}} and {{FONT_FAMILY}} placeholders, filled by [Fill].
//   - [RenderSVG]: an annotated blueprint of one side on the design canvas.
//   - [RenderPNG]: the same blueprint rasterized.
//
// Blueprint renderers expect a spec composed at the canvas paper origin
// (geometry.Canvas.PaperOrigin); JSON and HTML work with any origin since
// they convert to page space.
//
// Every renderer treats a nil background as "use the default" and a nil
// border as "draw no border"; neither re-derives anything from the theme.
package sink
