package layout

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/matzehuels/printlayout/pkg/errors"
)

// LegacyBorder is the border object inside a legacy style.
type LegacyBorder struct {
	Color string   `json:"color,omitempty"`
	Width *float64 `json:"width"`
}

// LegacyStyle is an inline style object from the single-file format.
// Only the border width survives migration; colors now come from themes.
type LegacyStyle struct {
	Background *string       `json:"background,omitempty"`
	Border     *LegacyBorder `json:"border"`
}

// LegacyLayout is one entry of the legacy layouts array.
type LegacyLayout struct {
	File           string        `json:"file"`
	Title          string        `json:"title"`
	PaperSize      Size          `json:"paper_size"`
	ImgDims        Size          `json:"img_dims"`
	ImgPos         ImagePosition `json:"img_pos"`
	CaptionDims    Size          `json:"caption_dims"`
	CaptionPos     CaptionPos    `json:"caption_pos"`
	Special        Mode          `json:"special"`
	Gutter         *float64      `json:"gutter"`
	PaperStyle     *LegacyStyle  `json:"paper_style"`
	ImgStyle       *LegacyStyle  `json:"img_style"`
	CaptionStyle   *LegacyStyle  `json:"caption_style"`
	BackPaperStyle *LegacyStyle  `json:"back_paper_style"`
	BackNoteStyle  *LegacyStyle  `json:"back_note_style"`
	BackNoteDims   *Size         `json:"back_note_dims"`
	Notes          string        `json:"notes"`
}

// LegacyFile is the legacy layouts.json document.
type LegacyFile struct {
	Mode               string         `json:"mode"`
	ImagePathLandscape *string        `json:"image_path_landscape"`
	ImagePathPortrait  *string        `json:"image_path_portrait"`
	TextPath           *string        `json:"text_path"`
	PersonalNotePath   *string        `json:"personal_note_path"`
	Layouts            []LegacyLayout `json:"layouts"`
}

// ParseLegacy decodes a legacy layouts.json document.
func ParseLegacy(r io.Reader) (LegacyFile, error) {
	var f LegacyFile
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return LegacyFile{}, errors.Wrap(errors.ErrCodeInvalidLayout, err, "decode legacy layouts")
	}
	return f, nil
}

// LegacyGutter is the column gutter the legacy designer drew for every
// double_col layout. Migration applies it when an entry has no gutter.
const LegacyGutter = 0.5

// DefaultNoteDims returns the back note size used when a legacy layout
// has none: 6×9 on letter-width paper, 7×10 otherwise.
func DefaultNoteDims(paperWidth float64) Size {
	if paperWidth == 8.5 {
		return Size{Width: 6, Height: 9}
	}
	return Size{Width: 7, Height: 10}
}

// Migrate converts one legacy entry to a geometry-only Definition.
// The name is the entry's file with any .png suffix removed.
func Migrate(l LegacyLayout) Definition {
	name := strings.TrimSuffix(l.File, ".png")
	title := l.Title
	if title == "" {
		title = name
	}
	note := DefaultNoteDims(l.PaperSize.Width)
	if l.BackNoteDims != nil {
		note = *l.BackNoteDims
	}
	gutter := l.Gutter
	if gutter == nil && l.Special == ModeDoubleColumn {
		g := LegacyGutter
		gutter = &g
	}

	return Definition{
		Name:      name,
		Title:     title,
		PaperSize: l.PaperSize,
		Front: Front{
			ImgDims:     l.ImgDims,
			ImgPos:      l.ImgPos,
			CaptionDims: l.CaptionDims,
			CaptionPos:  l.CaptionPos,
			Special:     l.Special,
			Gutter:      gutter,
			BorderWidths: FrontBorders{
				Paper:   borderWidth(l.PaperStyle),
				Img:     borderWidth(l.ImgStyle),
				Caption: borderWidth(l.CaptionStyle),
			},
		},
		Back: Back{
			NoteDims: note,
			NotePos:  NotePosCentered,
			BorderWidths: BackBorders{
				Paper: borderWidth(l.BackPaperStyle),
				Note:  borderWidth(l.BackNoteStyle),
			},
		},
		Notes: l.Notes,
	}
}

// MigrateFile converts every entry of a legacy document.
func MigrateFile(f LegacyFile) []Definition {
	defs := make([]Definition, len(f.Layouts))
	for i, l := range f.Layouts {
		defs[i] = Migrate(l)
	}
	return defs
}

func borderWidth(s *LegacyStyle) float64 {
	if s == nil || s.Border == nil || s.Border.Width == nil {
		return 0
	}
	return *s.Border.Width
}
