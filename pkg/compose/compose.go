// Package compose joins resolved geometry with resolved theme styles.
//
// [Compose] is the single place where a layout's double-column mode is
// dispatched: renderers receive one caption element or two column
// elements and never look at the mode again. Front and back are composed
// from their own themes with no shared state.
//
//	spec := compose.Compose(def, front, back, geometry.Point{})
//	page := spec.Page() // top-left-origin boxes for HTML
package compose

import (
	"github.com/matzehuels/printlayout/pkg/geometry"
	"github.com/matzehuels/printlayout/pkg/layout"
	"github.com/matzehuels/printlayout/pkg/palette"
	"github.com/matzehuels/printlayout/pkg/theme"
)

// Kind names the visual element an Element draws.
type Kind string

const (
	KindPaper   Kind = "paper"
	KindImage   Kind = "img"
	KindCaption Kind = "caption"
	KindNote    Kind = "note"
)

// Element is one renderer-ready box with its resolved style.
type Element struct {
	Kind Kind         `json:"kind"`
	Box  geometry.Box `json:"box"`
	theme.Style
}

// Front is the composed image side.
type Front struct {
	Theme   string         `json:"theme"`
	Paper   Element        `json:"paper"`
	Image   Element        `json:"img"`
	Caption []Element      `json:"caption"`
	Font    *palette.Color `json:"font_color"`

	// CaptionArea is the undivided caption box, also in double-column mode.
	CaptionArea geometry.Box `json:"-"`
}

// Back is the composed note side.
type Back struct {
	Theme string         `json:"theme"`
	Paper Element        `json:"paper"`
	Note  Element        `json:"note"`
	Font  *palette.Color `json:"font_color"`
}

// Spec is the complete descriptor set for one layout and theme pairing.
type Spec struct {
	Layout  string           `json:"layout"`
	Title   string           `json:"title"`
	Notes   string           `json:"notes,omitempty"`
	Mode    layout.Mode      `json:"special"`
	Paper   geometry.Box     `json:"paper"`
	Margins geometry.Margins `json:"-"`
	Front   Front            `json:"front"`
	Back    Back             `json:"back"`
}

// Compose resolves def against the front and back themes. origin is the
// bottom-left corner of the sheet: (0, 0) for the page target or
// Canvas.PaperOrigin for blueprints.
func Compose(def layout.Definition, front, back theme.Theme, origin geometry.Point) Spec {
	paper := def.Paper(origin)
	return Spec{
		Layout:  def.Name,
		Title:   def.Title,
		Notes:   def.Notes,
		Mode:    def.Front.Special,
		Paper:   paper,
		Margins: def.Front.ImgPos.Margins,
		Front:   composeFront(def.Front, paper, front),
		Back:    composeBack(def.Back, paper, back),
	}
}

func composeFront(f layout.Front, paper geometry.Box, th theme.Theme) Front {
	bw := f.BorderWidths

	img := geometry.PlaceImage(paper, f.ImgDims.Width, f.ImgDims.Height, f.ImgPos.Margins)
	area := geometry.PlaceCaption(paper, f.CaptionDims.Width, f.CaptionDims.Height,
		deref(f.CaptionPos.Left), deref(f.CaptionPos.Top))
	captionStyle := th.BuildStyle(theme.SlotCaptionBackground, theme.SlotCaptionBorder, bw.Caption)

	var captions []Element
	switch f.Special {
	case layout.ModeDoubleColumn:
		for _, col := range geometry.SplitColumns(area, f.GutterWidth()) {
			captions = append(captions, Element{Kind: KindCaption, Box: col, Style: captionStyle})
		}
	default:
		captions = []Element{{Kind: KindCaption, Box: area, Style: captionStyle}}
	}

	return Front{
		Theme: th.Name,
		Paper: Element{
			Kind:  KindPaper,
			Box:   paper,
			Style: th.BuildStyle(theme.SlotPaperBackground, theme.SlotPaperBorder, bw.Paper),
		},
		Image: Element{
			Kind:  KindImage,
			Box:   img,
			Style: th.BuildStyle(theme.SlotImgBackground, theme.SlotImgBorder, bw.Img),
		},
		Caption:     captions,
		CaptionArea: area,
		Font:        fontColor(th),
	}
}

func composeBack(b layout.Back, paper geometry.Box, th theme.Theme) Back {
	return Back{
		Theme: th.Name,
		Paper: Element{
			Kind:  KindPaper,
			Box:   paper,
			Style: th.BuildStyle(theme.SlotPaperBackground, theme.SlotPaperBorder, b.BorderWidths.Paper),
		},
		Note: Element{
			Kind:  KindNote,
			Box:   geometry.PlaceNote(paper, b.NoteDims.Width, b.NoteDims.Height),
			Style: th.BuildStyle(theme.SlotNoteBackground, theme.SlotNoteBorder, b.BorderWidths.Note),
		},
		Font: fontColor(th),
	}
}

func fontColor(th theme.Theme) *palette.Color {
	if c, ok := th.ResolveColor(theme.SlotFontColor); ok {
		return &c
	}
	return nil
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// Dimensions returns the front-side measurement lines for blueprints.
func (s Spec) Dimensions() []geometry.Dimension {
	return geometry.Dimensions(s.Paper, s.Front.Image.Box, s.Front.CaptionArea, s.Margins)
}
