package compose

import (
	"github.com/matzehuels/printlayout/pkg/geometry"
	"github.com/matzehuels/printlayout/pkg/layout"
	"github.com/matzehuels/printlayout/pkg/palette"
	"github.com/matzehuels/printlayout/pkg/theme"
)

// PageElement is an Element positioned in top-left-origin page space.
type PageElement struct {
	Kind Kind             `json:"kind"`
	Box  geometry.PageBox `json:"box"`
	theme.Style
}

// PageFront is the front side in page space.
type PageFront struct {
	Theme   string         `json:"theme"`
	Paper   PageElement    `json:"paper"`
	Image   PageElement    `json:"img"`
	Caption []PageElement  `json:"caption"`
	Font    *palette.Color `json:"font_color"`
}

// PageBack is the back side in page space.
type PageBack struct {
	Theme string         `json:"theme"`
	Paper PageElement    `json:"paper"`
	Note  PageElement    `json:"note"`
	Font  *palette.Color `json:"font_color"`
}

// PageSpec is a Spec converted for print targets. Every box is relative to
// the paper's top-left corner.
type PageSpec struct {
	Layout string      `json:"layout"`
	Title  string      `json:"title"`
	Notes  string      `json:"notes,omitempty"`
	Mode   layout.Mode `json:"special"`
	Paper  layout.Size `json:"paper_size"`
	Front  PageFront   `json:"front"`
	Back   PageBack    `json:"back"`
}

// Page converts every box in s to page space.
func (s Spec) Page() PageSpec {
	conv := func(e Element) PageElement {
		local := e.Box.Translate(-s.Paper.X, -s.Paper.Y)
		return PageElement{Kind: e.Kind, Box: geometry.ToPage(local, s.Paper.H), Style: e.Style}
	}

	captions := make([]PageElement, len(s.Front.Caption))
	for i, c := range s.Front.Caption {
		captions[i] = conv(c)
	}

	return PageSpec{
		Layout: s.Layout,
		Title:  s.Title,
		Notes:  s.Notes,
		Mode:   s.Mode,
		Paper:  layout.Size{Width: s.Paper.W, Height: s.Paper.H},
		Front: PageFront{
			Theme:   s.Front.Theme,
			Paper:   conv(s.Front.Paper),
			Image:   conv(s.Front.Image),
			Caption: captions,
			Font:    s.Front.Font,
		},
		Back: PageBack{
			Theme: s.Back.Theme,
			Paper: conv(s.Back.Paper),
			Note:  conv(s.Back.Note),
			Font:  s.Back.Font,
		},
	}
}
