package sink

import (
	"bytes"
	"fmt"
	"html"

	"github.com/matzehuels/printlayout/pkg/compose"
	"github.com/matzehuels/printlayout/pkg/geometry"
)

// DefaultDPI is the blueprint resolution in pixels per inch.
const DefaultDPI = 150

// SVGOption configures blueprint rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	canvas     geometry.Canvas
	ink        Ink
	dpi        float64
	side       Side
	fontFamily string
}

// WithCanvas sets the blueprint sheet. The spec must have been composed
// at this canvas's paper origin.
func WithCanvas(c geometry.Canvas) SVGOption { return func(r *svgRenderer) { r.canvas = c } }

// WithInk overrides the blueprint colors.
func WithInk(ink Ink) SVGOption { return func(r *svgRenderer) { r.ink = ink } }

// WithDPI sets pixels per inch. Non-positive values are ignored.
func WithDPI(dpi float64) SVGOption {
	return func(r *svgRenderer) {
		if dpi > 0 {
			r.dpi = dpi
		}
	}
}

// WithSide selects the front (default) or back face.
func WithSide(s Side) SVGOption { return func(r *svgRenderer) { r.side = s } }

// WithLabelFont sets the CSS font family for annotations.
func WithLabelFont(family string) SVGOption { return func(r *svgRenderer) { r.fontFamily = family } }

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{
		canvas:     geometry.DefaultCanvas(),
		ink:        DefaultInk(),
		dpi:        DefaultDPI,
		fontFamily: "Helvetica, Arial, sans-serif",
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// RenderSVG renders one side of spec as an annotated blueprint.
func RenderSVG(spec compose.Spec, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)
	bp := buildBlueprint(spec, r.side, r.canvas, r.ink, r.dpi)
	return writeSVG(bp, r.fontFamily)
}

func writeSVG(bp blueprint, fontFamily string) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		bp.width, bp.height, bp.width, bp.height)

	for _, s := range bp.shapes {
		writeShape(&buf, s)
	}

	if len(bp.labels) > 0 {
		fmt.Fprintf(&buf, `  <g font-family="%s">`+"\n", html.EscapeString(fontFamily))
		for _, l := range bp.labels {
			writeLabel(&buf, l)
		}
		buf.WriteString("  </g>\n")
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func writeShape(buf *bytes.Buffer, s shape) {
	stroke := fmt.Sprintf(`stroke="%s"`, s.stroke)
	if s.stroke != "none" && s.stroke != "" {
		stroke += fmt.Sprintf(` stroke-width="%.2f"`, s.width)
		if s.dash != "" {
			stroke += fmt.Sprintf(` stroke-dasharray="%s"`, s.dash)
		}
	}
	fill := s.fill
	if fill == "" {
		fill = "none"
	}

	switch s.kind {
	case shapeRect:
		fmt.Fprintf(buf, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" %s/>`+"\n",
			s.x, s.y, s.w, s.h, fill, stroke)
	case shapeLine:
		fmt.Fprintf(buf, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" %s/>`+"\n",
			s.points[0], s.points[1], s.points[2], s.points[3], stroke)
	case shapePolygon:
		buf.WriteString(`  <polygon points="`)
		for i := 0; i+1 < len(s.points); i += 2 {
			if i > 0 {
				buf.WriteByte(' ')
			}
			fmt.Fprintf(buf, "%.2f,%.2f", s.points[i], s.points[i+1])
		}
		fmt.Fprintf(buf, `" fill="%s" %s/>`+"\n", fill, stroke)
	}
}

func writeLabel(buf *bytes.Buffer, l label) {
	fmt.Fprintf(buf, `    <text x="%.2f" y="%.2f" font-size="%.1f" text-anchor="%s" fill="%s"`,
		l.x, l.y, l.size, l.anchor, l.color)
	if l.bold {
		buf.WriteString(` font-weight="bold"`)
	}
	if l.italic {
		buf.WriteString(` font-style="italic"`)
	}
	if l.opacity > 0 && l.opacity < 1 {
		fmt.Fprintf(buf, ` opacity="%.2f"`, l.opacity)
	}
	if l.rotate {
		fmt.Fprintf(buf, ` transform="rotate(-90 %.2f %.2f)"`, l.x, l.y)
	}
	fmt.Fprintf(buf, ">%s</text>\n", html.EscapeString(l.text))
}
