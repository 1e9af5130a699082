package theme

import "github.com/matzehuels/printlayout/pkg/palette"

// Border is a resolved border: a color and a stroke width in inches.
type Border struct {
	Color palette.Color `json:"color"`
	Width float64       `json:"width"`
}

// Style is the resolved background and border of one visual element.
// A nil Background means the slot did not resolve; a nil Border means no
// border is drawn. Border is only ever set by BuildStyle.
type Style struct {
	Background *palette.Color `json:"background"`
	Border     *Border        `json:"border"`
}

// BuildStyle resolves a background slot and a border slot into a Style.
//
// The border is present only when width is positive and borderSlot resolves
// to a color; every renderer relies on this single rule to decide whether a
// box gets an outline.
func (t Theme) BuildStyle(backgroundSlot, borderSlot Slot, width float64) Style {
	var s Style
	if c, ok := t.ResolveColor(backgroundSlot); ok {
		s.Background = &c
	}
	if width > 0 {
		if c, ok := t.ResolveColor(borderSlot); ok {
			s.Border = &Border{Color: c, Width: width}
		}
	}
	return s
}

// BackgroundOr returns the resolved background or fallback when absent.
func (s Style) BackgroundOr(fallback palette.Color) palette.Color {
	if s.Background == nil {
		return fallback
	}
	return *s.Background
}

// HasBorder reports whether a border should be drawn.
func (s Style) HasBorder() bool { return s.Border != nil }
