package sink

import (
	"fmt"
	"math"
	"strings"

	"github.com/matzehuels/printlayout/pkg/compose"
	"github.com/matzehuels/printlayout/pkg/geometry"
	"github.com/matzehuels/printlayout/pkg/palette"
)

// Side selects which face of the print a blueprint shows.
type Side int

const (
	SideFront Side = iota
	SideBack
)

func (s Side) String() string {
	if s == SideBack {
		return "back"
	}
	return "front"
}

// ParseSide parses "front" or "back".
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(s) {
	case "", "front":
		return SideFront, nil
	case "back":
		return SideBack, nil
	}
	return SideFront, fmt.Errorf("invalid side %q (must be 'front' or 'back')", s)
}

// Ink holds the blueprint's own drawing colors.
type Ink struct {
	Line    palette.Color // outlines, dimension lines, headings
	Canvas  palette.Color // sheet background behind the paper
	Muted   palette.Color // secondary text
	Paper   palette.Color // paper fill when the theme has none
	Image   palette.Color // image fill when the theme has none
	Surface palette.Color // title block fill
}

// DefaultInk matches the classic blue-on-grey blueprint.
func DefaultInk() Ink {
	return Ink{
		Line:    "#1E3D59",
		Canvas:  "#F2F2F2",
		Muted:   "#333333",
		Paper:   "#FFFFFF",
		Image:   "#E8EFF5",
		Surface: "#FFFFFF",
	}
}

type shapeKind int

const (
	shapeRect shapeKind = iota
	shapeLine
	shapePolygon
)

// shape is one drawable primitive in pixel space (y down).
type shape struct {
	kind    shapeKind
	x, y    float64
	w, h    float64
	points  []float64
	fill    string
	stroke  string
	width   float64
	dash    string
	opacity float64
}

type anchor string

const (
	anchorStart  anchor = "start"
	anchorMiddle anchor = "middle"
	anchorEnd    anchor = "end"
)

// label is one text run in pixel space; (x, y) is the baseline anchor.
type label struct {
	x, y    float64
	text    string
	size    float64
	anchor  anchor
	color   string
	bold    bool
	italic  bool
	rotate  bool
	opacity float64
}

// blueprint is a side of a composed spec reduced to primitives.
type blueprint struct {
	width, height float64
	shapes        []shape
	labels        []label
}

type blueprintBuilder struct {
	canvas geometry.Canvas
	ink    Ink
	dpi    float64
	bp     blueprint
}

// px converts a canvas x coordinate to pixels.
func (b *blueprintBuilder) px(x float64) float64 { return (x + 1) * b.dpi }

// py converts a canvas y coordinate to pixels, flipping the axis.
func (b *blueprintBuilder) py(y float64) float64 { return (b.canvas.Height - 1 - y) * b.dpi }

// pt converts typographic points to pixels.
func (b *blueprintBuilder) pt(v float64) float64 { return v * b.dpi / 72 }

func (b *blueprintBuilder) rect(box geometry.Box, fill, stroke string, width float64, dash string) {
	b.bp.shapes = append(b.bp.shapes, shape{
		kind: shapeRect,
		x:    b.px(box.Left()), y: b.py(box.Top()),
		w: box.W * b.dpi, h: box.H * b.dpi,
		fill: fill, stroke: stroke, width: width, dash: dash, opacity: 1,
	})
}

func (b *blueprintBuilder) line(x1, y1, x2, y2 float64, stroke string, width float64) {
	b.bp.shapes = append(b.bp.shapes, shape{
		kind:   shapeLine,
		points: []float64{b.px(x1), b.py(y1), b.px(x2), b.py(y2)},
		stroke: stroke, width: width, opacity: 1,
	})
}

func (b *blueprintBuilder) text(x, y float64, s string, size float64, a anchor, color palette.Color) *label {
	b.bp.labels = append(b.bp.labels, label{
		x: b.px(x), y: b.py(y), text: s, size: b.pt(size),
		anchor: a, color: string(color), opacity: 1,
	})
	return &b.bp.labels[len(b.bp.labels)-1]
}

// border draws a themed border inside box, so the stroke never spills
// past the element's edge.
func (b *blueprintBuilder) border(box geometry.Box, el compose.Element) {
	if el.Border == nil {
		return
	}
	inner := box.Inset(el.Border.Width / 2)
	b.rect(inner, "none", string(el.Border.Color), el.Border.Width*b.dpi, "")
}

func buildBlueprint(spec compose.Spec, side Side, canvas geometry.Canvas, ink Ink, dpi float64) blueprint {
	b := &blueprintBuilder{canvas: canvas, ink: ink, dpi: dpi}
	b.bp.width = canvas.Width * dpi
	b.bp.height = canvas.Height * dpi

	b.rect(canvas.Bounds(), string(ink.Canvas), "none", 0, "")
	b.rect(canvas.Frame(), "none", string(ink.Line), b.pt(1), "")

	var paperEl compose.Element
	if side == SideBack {
		paperEl = spec.Back.Paper
	} else {
		paperEl = spec.Front.Paper
	}
	b.rect(spec.Paper, string(paperEl.BackgroundOr(ink.Paper)), string(ink.Line), b.pt(3), "")
	b.border(spec.Paper, paperEl)

	if side == SideBack {
		b.drawBack(spec)
	} else {
		b.drawFront(spec)
	}
	b.drawTitleBlock(spec, side)
	return b.bp
}

func (b *blueprintBuilder) drawFront(spec compose.Spec) {
	ink := b.ink
	img := spec.Front.Image
	b.rect(img.Box, string(img.BackgroundOr(ink.Image)), string(ink.Line), b.pt(1.5), "")
	b.border(img.Box, img)
	b.text(img.Box.CenterX(), img.Box.CenterY()+0.1, "IMAGE", 10, anchorMiddle, ink.Line).bold = true
	b.text(img.Box.CenterX(), img.Box.CenterY()-0.15,
		fmt.Sprintf(`%s" x %s"`, trimFloat(img.Box.W), trimFloat(img.Box.H)), 10, anchorMiddle, ink.Line).bold = true

	dash := fmt.Sprintf("%.1f %.1f", b.pt(4), b.pt(2))
	columns := len(spec.Front.Caption) > 1
	for _, c := range spec.Front.Caption {
		fill := "none"
		if c.Background != nil {
			fill = string(*c.Background)
		}
		b.rect(c.Box, fill, string(ink.Line), b.pt(1), dash)
		b.border(c.Box, c)
		if columns {
			l := b.text(c.Box.CenterX(), c.Box.CenterY(), "TXT", 8, anchorMiddle, ink.Line)
			l.opacity = 0.5
			continue
		}
		l := b.text(c.Box.CenterX(), c.Box.CenterY()+0.07, "CAPTION TEXT", 8, anchorMiddle, ink.Line)
		l.italic, l.opacity = true, 0.6
		l = b.text(c.Box.CenterX(), c.Box.CenterY()-0.13, "(Greeked)", 8, anchorMiddle, ink.Line)
		l.italic, l.opacity = true, 0.6
	}

	for _, d := range spec.Dimensions() {
		b.dimension(d)
	}
}

func (b *blueprintBuilder) drawBack(spec compose.Spec) {
	ink := b.ink
	note := spec.Back.Note
	fill := "none"
	if note.Background != nil {
		fill = string(*note.Background)
	}
	b.rect(note.Box, fill, string(ink.Line), b.pt(1.5), fmt.Sprintf("%.1f %.1f", b.pt(4), b.pt(2)))
	b.border(note.Box, note)
	b.text(note.Box.CenterX(), note.Box.CenterY()+0.1, "NOTE", 10, anchorMiddle, ink.Line).bold = true
	b.text(note.Box.CenterX(), note.Box.CenterY()-0.15,
		fmt.Sprintf(`%s" x %s"`, trimFloat(note.Box.W), trimFloat(note.Box.H)), 10, anchorMiddle, ink.Line).bold = true

	for _, d := range geometry.PaperDimensions(spec.Paper) {
		b.dimension(d)
	}
}

func (b *blueprintBuilder) drawTitleBlock(spec compose.Spec, side Side) {
	ink := b.ink
	tb := b.canvas.TitleBlock()
	div := b.canvas.TitleDivider()

	b.rect(tb, string(ink.Surface), string(ink.Line), b.pt(2), "")
	b.line(div, tb.Bottom(), div, tb.Top(), string(ink.Line), b.pt(1.5))

	b.text(tb.Left()+0.2, tb.Top()-0.4, "LAYOUT", 8, anchorStart, ink.Line).bold = true
	b.text(tb.Left()+0.2, tb.Top()-0.8, strings.ToUpper(spec.Title), 12, anchorStart, ink.Line).bold = true
	b.text(tb.Left()+0.2, tb.Bottom()+0.8,
		fmt.Sprintf("Side: %s  ·  Theme: %s", strings.ToUpper(side.String()), sideTheme(spec, side)),
		8, anchorStart, ink.Muted)
	b.text(tb.Left()+0.2, tb.Bottom()+0.4,
		fmt.Sprintf(`Paper Size: %s" × %s"`, trimFloat(spec.Paper.W), trimFloat(spec.Paper.H)),
		8, anchorStart, ink.Muted)

	b.text(div+0.2, tb.Top()-0.4, "INSTALLATION DATA", 8, anchorStart, ink.Line).bold = true
	y := tb.Top() - 0.7 - 7.0/72
	for _, line := range wrap(spec.Notes, notesWrapWidth(tb.Right()-div-0.4)) {
		if y < tb.Bottom()+0.1 {
			break
		}
		b.text(div+0.2, y, line, 7, anchorStart, ink.Muted)
		y -= 0.15
	}
}

func sideTheme(spec compose.Spec, side Side) string {
	if side == SideBack {
		return spec.Back.Theme
	}
	return spec.Front.Theme
}

// arrowLen is the arrowhead length in inches.
const arrowLen = 0.12

// dimension draws a double-headed measurement line and its label.
func (b *blueprintBuilder) dimension(d geometry.Dimension) {
	ink := string(b.ink.Line)
	w := b.pt(0.8)

	if d.Orientation == geometry.Vertical {
		b.line(d.At, d.From, d.At, d.To, ink, w)
		b.arrowhead(d.At, d.From, 0, sign(d.From-d.To))
		b.arrowhead(d.At, d.To, 0, sign(d.To-d.From))
		l := b.text(d.At-0.1, d.Mid(), d.Text(), 7, anchorMiddle, b.ink.Line)
		l.rotate = true
		return
	}
	b.line(d.From, d.At, d.To, d.At, ink, w)
	b.arrowhead(d.From, d.At, sign(d.From-d.To), 0)
	b.arrowhead(d.To, d.At, sign(d.To-d.From), 0)
	b.text(d.Mid(), d.At+0.1, d.Text(), 7, anchorMiddle, b.ink.Line)
}

// arrowhead draws a filled triangle with its tip at (x, y) pointing along
// (dx, dy), one of which is zero.
func (b *blueprintBuilder) arrowhead(x, y, dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	const half = arrowLen / 3
	bx, by := x-dx*arrowLen, y-dy*arrowLen
	pts := []float64{
		b.px(x), b.py(y),
		b.px(bx - dy*half), b.py(by + dx*half),
		b.px(bx + dy*half), b.py(by - dx*half),
	}
	b.bp.shapes = append(b.bp.shapes, shape{
		kind: shapePolygon, points: pts,
		fill: string(b.ink.Line), stroke: "none", opacity: 1,
	})
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// notesWrapWidth estimates how many 7pt characters fit in w inches.
func notesWrapWidth(w float64) int {
	return max(int(math.Floor(w*72/(7*0.55))), 10)
}

// wrap breaks s into lines of at most n runes, splitting on spaces.
func wrap(s string, n int) []string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		var cur strings.Builder
		for _, word := range strings.Fields(para) {
			if cur.Len() > 0 && cur.Len()+1+len(word) > n {
				lines = append(lines, cur.String())
				cur.Reset()
			}
			if cur.Len() > 0 {
				cur.WriteByte(' ')
			}
			cur.WriteString(word)
		}
		if cur.Len() > 0 {
			lines = append(lines, cur.String())
		}
	}
	return lines
}
