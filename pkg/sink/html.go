package sink

import (
	"bytes"
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/matzehuels/printlayout/pkg/compose"
	"github.com/matzehuels/printlayout/pkg/geometry"
	"github.com/matzehuels/printlayout/pkg/palette"
)

// Template placeholders left in the page for the caller to fill.
const (
	PlaceholderImage      = "{{IMAGE}}"
	PlaceholderCaption    = "{{CAPTION}}"
	PlaceholderNote       = "{{NOTE}}"
	PlaceholderFontFamily = "{{FONT_FAMILY}}"
)

// HTMLOption configures page rendering via [RenderHTML].
type HTMLOption func(*htmlRenderer)

type htmlRenderer struct {
	background palette.Color
	font       palette.Color
}

// WithDefaultBackground sets the paper fill used when a theme has none.
func WithDefaultBackground(c palette.Color) HTMLOption {
	return func(r *htmlRenderer) { r.background = c }
}

// WithDefaultFont sets the text color used when a theme maps no font color.
func WithDefaultFont(c palette.Color) HTMLOption {
	return func(r *htmlRenderer) { r.font = c }
}

// RenderHTML renders spec as a printable two-page HTML template. The
// spec must be composed at the paper-local origin.
func RenderHTML(spec compose.Spec, opts ...HTMLOption) []byte {
	r := htmlRenderer{background: "#FFFFFF", font: "#000000"}
	for _, opt := range opts {
		opt(&r)
	}
	page := spec.Page()

	var buf bytes.Buffer
	buf.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&buf, "<title>%s</title>\n", html.EscapeString(page.Title))
	buf.WriteString("<style>\n")
	fmt.Fprintf(&buf, "@page { size: %sin %sin; margin: 0; }\n", inch(page.Paper.Width), inch(page.Paper.Height))
	buf.WriteString("body { margin: 0; }\n")
	fmt.Fprintf(&buf, ".page { position: relative; width: %sin; height: %sin; overflow: hidden; page-break-after: always; box-sizing: border-box; font-family: %s; }\n",
		inch(page.Paper.Width), inch(page.Paper.Height), PlaceholderFontFamily)
	buf.WriteString(".box { position: absolute; box-sizing: border-box; overflow: hidden; }\n")
	buf.WriteString("</style>\n</head>\n<body>\n")

	r.writeFront(&buf, page)
	r.writeBack(&buf, page)

	buf.WriteString("</body>\n</html>\n")
	return buf.Bytes()
}

func (r htmlRenderer) writeFront(buf *bytes.Buffer, page compose.PageSpec) {
	f := page.Front
	fmt.Fprintf(buf, "<div class=\"page front\" data-theme=\"%s\" style=\"%s\">\n",
		html.EscapeString(f.Theme), r.paperStyle(f.Paper, f.Font))
	writeBox(buf, "img", f.Image, "", PlaceholderImage)

	switch len(f.Caption) {
	case 0:
	case 1:
		writeBox(buf, "caption", f.Caption[0], "", PlaceholderCaption)
	default:
		area, gutter := columnArea(f.Caption)
		el := f.Caption[0]
		el.Box = area
		extra := fmt.Sprintf("column-count: %d; column-gap: %sin;", len(f.Caption), inch(gutter))
		writeBox(buf, "caption columns", el, extra, PlaceholderCaption)
	}
	buf.WriteString("</div>\n")
}

func (r htmlRenderer) writeBack(buf *bytes.Buffer, page compose.PageSpec) {
	b := page.Back
	fmt.Fprintf(buf, "<div class=\"page back\" data-theme=\"%s\" style=\"%s\">\n",
		html.EscapeString(b.Theme), r.paperStyle(b.Paper, b.Font))
	writeBox(buf, "note", b.Note, "", PlaceholderNote)
	buf.WriteString("</div>\n")
}

func (r htmlRenderer) paperStyle(el compose.PageElement, font *palette.Color) string {
	fg := r.font
	if font != nil {
		fg = *font
	}
	s := fmt.Sprintf("background: %s; color: %s;", el.BackgroundOr(r.background), fg)
	if el.HasBorder() {
		s += fmt.Sprintf(" border: %sin solid %s;", inch(el.Border.Width), el.Border.Color)
	}
	return s
}

func writeBox(buf *bytes.Buffer, class string, el compose.PageElement, extra, placeholder string) {
	var style strings.Builder
	fmt.Fprintf(&style, "left: %sin; top: %sin; width: %sin; height: %sin;",
		inch(el.Box.Left), inch(el.Box.Top), inch(el.Box.W), inch(el.Box.H))
	if el.Background != nil {
		fmt.Fprintf(&style, " background: %s;", *el.Background)
	}
	if el.HasBorder() {
		fmt.Fprintf(&style, " border: %sin solid %s;", inch(el.Border.Width), el.Border.Color)
	}
	if extra != "" {
		style.WriteString(" " + extra)
	}
	fmt.Fprintf(buf, "  <div class=\"box %s\" style=\"%s\">%s</div>\n", class, style.String(), placeholder)
}

// columnArea returns the page box spanning all columns and the gap
// between the first two.
func columnArea(cols []compose.PageElement) (geometry.PageBox, float64) {
	first, last := cols[0].Box, cols[len(cols)-1].Box
	area := geometry.PageBox{
		Left: first.Left,
		Top:  first.Top,
		W:    last.Left + last.W - first.Left,
		H:    first.H,
	}
	gutter := cols[1].Box.Left - (first.Left + first.W)
	return area, gutter
}

// Content fills the placeholders of a rendered template.
type Content struct {
	Image      string
	Caption    string
	Note       string
	FontFamily string
}

// Fill substitutes c into a template produced by [RenderHTML]. Values are
// inserted verbatim; empty fields leave their placeholder in place.
func Fill(template []byte, c Content) []byte {
	var pairs []string
	for _, kv := range [][2]string{
		{PlaceholderImage, c.Image},
		{PlaceholderCaption, c.Caption},
		{PlaceholderNote, c.Note},
		{PlaceholderFontFamily, c.FontFamily},
	} {
		if kv[1] != "" {
			pairs = append(pairs, kv[0], kv[1])
		}
	}
	if len(pairs) == 0 {
		return template
	}
	return []byte(strings.NewReplacer(pairs...).Replace(string(template)))
}

// inch formats v with up to four decimals.
func inch(v float64) string {
	s := strconv.FormatFloat(v, 'f', 4, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
