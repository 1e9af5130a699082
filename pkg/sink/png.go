package sink

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/matzehuels/printlayout/pkg/compose"
	"github.com/matzehuels/printlayout/pkg/palette"
)

// maxRasterDim caps either side of the rasterized blueprint.
const maxRasterDim = 8192

// PNGOption configures PNG rendering via [RenderPNG].
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	svgOpts []SVGOption
	scale   float64
}

// WithPNGSVGOptions passes options through to the blueprint builder.
func WithPNGSVGOptions(opts ...SVGOption) PNGOption {
	return func(r *pngRenderer) { r.svgOpts = append(r.svgOpts, opts...) }
}

// WithScale resamples the finished bitmap. Non-positive values are ignored.
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) {
		if s > 0 {
			r.scale = s
		}
	}
}

// RenderPNG renders one side of spec as a blueprint bitmap. Shapes go
// through the SVG rasterizer; annotations are drawn afterwards with a
// bitmap face since the rasterizer skips text.
func RenderPNG(spec compose.Spec, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 1}
	for _, opt := range opts {
		opt(&r)
	}
	sr := newSVGRenderer(r.svgOpts...)
	bp := buildBlueprint(spec, sr.side, sr.canvas, sr.ink, sr.dpi)

	img, err := rasterize(bp)
	if err != nil {
		return nil, err
	}
	for _, l := range bp.labels {
		drawLabel(img, l)
	}

	var out image.Image = img
	if r.scale != 1 {
		out = resample(img, r.scale)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func rasterize(bp blueprint) (*image.RGBA, error) {
	shapesOnly := bp
	shapesOnly.labels = nil
	data := writeSVG(shapesOnly, "")

	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("read svg: %w", err)
	}

	w := max(int(math.Ceil(bp.width)), 1)
	h := max(int(math.Ceil(bp.height)), 1)
	if w > maxRasterDim || h > maxRasterDim {
		return nil, fmt.Errorf("blueprint %dx%d exceeds %d pixels, lower the dpi", w, h, maxRasterDim)
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(w, h, dst, dst.Bounds())
	dasher := rasterx.NewDasher(w, h, scanner)
	icon.Draw(dasher, 1.0)
	return dst, nil
}

func labelColor(l label) color.Color {
	c, err := palette.ParseColor(l.color)
	if err != nil {
		return color.Black
	}
	r, g, b := c.RGB255()
	a := uint8(255)
	if l.opacity > 0 && l.opacity < 1 {
		a = uint8(math.Round(l.opacity * 255))
	}
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// drawLabel renders l with the 7x13 bitmap face. Size and style hints
// are dropped; anchor and rotation are honored.
func drawLabel(dst *image.RGBA, l label) {
	face := basicfont.Face7x13
	ascent := face.Metrics().Ascent.Ceil()
	height := face.Metrics().Height.Ceil()

	d := font.Drawer{Face: face}
	width := d.MeasureString(l.text).Ceil()
	if width == 0 {
		return
	}

	run := image.NewRGBA(image.Rect(0, 0, width, height))
	d.Dst = run
	d.Src = image.NewUniform(labelColor(l))
	d.Dot = fixed.P(0, ascent)
	d.DrawString(l.text)

	x, y := int(math.Round(l.x)), int(math.Round(l.y))
	if !l.rotate {
		x -= anchorOffset(l.anchor, width)
		r := image.Rect(x, y-ascent, x+width, y-ascent+height)
		draw.Draw(dst, r, run, image.Point{}, draw.Over)
		return
	}

	up := rotateCCW(run)
	y -= width - anchorOffset(l.anchor, width)
	r := image.Rect(x-ascent, y, x-ascent+height, y+width)
	draw.Draw(dst, r, up, image.Point{}, draw.Over)
}

func anchorOffset(a anchor, width int) int {
	switch a {
	case anchorMiddle:
		return width / 2
	case anchorEnd:
		return width
	}
	return 0
}

// rotateCCW turns src a quarter turn counterclockwise.
func rotateCCW(src *image.RGBA) *image.RGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewRGBA(image.Rect(0, 0, h, w))
	for y := range h {
		for x := range w {
			dst.SetRGBA(y, w-1-x, src.RGBAAt(x, y))
		}
	}
	return dst
}

func resample(src image.Image, scale float64) image.Image {
	b := src.Bounds()
	w := max(int(math.Round(float64(b.Dx())*scale)), 1)
	h := max(int(math.Round(float64(b.Dy())*scale)), 1)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Over, nil)
	return dst
}
