package layout

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"go.uber.org/multierr"

	"github.com/matzehuels/printlayout/pkg/errors"
	"github.com/matzehuels/printlayout/pkg/geometry"
)

// NotePosCentered is the only supported back note position.
const NotePosCentered = "centered"

// Size is a width×height pair in inches.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// CaptionPos is the caption's offset from the paper's top-left corner.
// Both keys are required.
type CaptionPos struct {
	Left *float64 `json:"left"`
	Top  *float64 `json:"top"`
}

// FrontBorders holds front-side border widths. Zero means no border.
type FrontBorders struct {
	Paper   float64 `json:"paper"`
	Img     float64 `json:"img"`
	Caption float64 `json:"caption"`
}

// BackBorders holds back-side border widths. Zero means no border.
type BackBorders struct {
	Paper float64 `json:"paper"`
	Note  float64 `json:"note"`
}

// Front describes the image side.
type Front struct {
	ImgDims      Size          `json:"img_dims"`
	ImgPos       ImagePosition `json:"img_pos"`
	CaptionDims  Size          `json:"caption_dims"`
	CaptionPos   CaptionPos    `json:"caption_pos"`
	Special      Mode          `json:"special"`
	Gutter       *float64      `json:"gutter"`
	BorderWidths FrontBorders  `json:"border_widths"`
}

// Back describes the note side.
type Back struct {
	NoteDims     Size        `json:"note_dims"`
	NotePos      string      `json:"note_pos"`
	BorderWidths BackBorders `json:"border_widths"`
}

// Definition is a complete two-sided layout.
type Definition struct {
	Name      string `json:"name"`
	Title     string `json:"title"`
	PaperSize Size   `json:"paper_size"`
	Front     Front  `json:"front"`
	Back      Back   `json:"back"`
	Notes     string `json:"notes"`
}

// Paper returns the sheet as a box with its bottom-left corner at origin.
func (d Definition) Paper(origin geometry.Point) geometry.Box {
	return geometry.Box{X: origin.X, Y: origin.Y, W: d.PaperSize.Width, H: d.PaperSize.Height}
}

// GutterWidth returns the double-column gutter, or zero when unset.
func (f Front) GutterWidth() float64 {
	if f.Gutter == nil {
		return 0
	}
	return *f.Gutter
}

// Validate checks the definition and reports every problem at once,
// wrapped as ErrCodeInvalidLayout.
func (d Definition) Validate() error {
	var errs error
	add := func(format string, args ...any) {
		errs = multierr.Append(errs, fmt.Errorf(format, args...))
	}

	if err := errors.ValidateName(d.Name); err != nil {
		errs = multierr.Append(errs, err)
	}
	if !positive(d.PaperSize) {
		add("paper_size must be positive, got %gx%g", d.PaperSize.Width, d.PaperSize.Height)
	}
	if !positive(d.Front.ImgDims) {
		add("front.img_dims must be positive, got %gx%g", d.Front.ImgDims.Width, d.Front.ImgDims.Height)
	}
	if !positive(d.Front.CaptionDims) {
		add("front.caption_dims must be positive, got %gx%g", d.Front.CaptionDims.Width, d.Front.CaptionDims.Height)
	}
	if d.Front.CaptionPos.Left == nil || d.Front.CaptionPos.Top == nil {
		add("front.caption_pos requires both left and top")
	}
	if d.Front.Special == ModeDoubleColumn {
		switch g := d.Front.Gutter; {
		case g == nil:
			add("front.gutter is required for %s", ModeDoubleColumn)
		case *g < 0:
			add("front.gutter must not be negative, got %g", *g)
		case *g >= d.Front.CaptionDims.Width:
			add("front.gutter %g must be smaller than caption width %g", *g, d.Front.CaptionDims.Width)
		}
	}
	if !positive(d.Back.NoteDims) {
		add("back.note_dims must be positive, got %gx%g", d.Back.NoteDims.Width, d.Back.NoteDims.Height)
	}
	if d.Back.NotePos != "" && d.Back.NotePos != NotePosCentered {
		add("back.note_pos %q is not supported", d.Back.NotePos)
	}

	if errs != nil {
		return errors.Wrap(errors.ErrCodeInvalidLayout, errs, "layout %q", d.Name)
	}
	return nil
}

func positive(s Size) bool { return s.Width > 0 && s.Height > 0 }

// Parse decodes and validates a definition. A missing title defaults to
// the name.
func Parse(r io.Reader) (Definition, error) {
	var d Definition
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return Definition{}, errors.Wrap(errors.ErrCodeInvalidLayout, err, "decode layout")
	}
	if d.Title == "" {
		d.Title = d.Name
	}
	if err := d.Validate(); err != nil {
		return Definition{}, err
	}
	return d, nil
}

// Load reads and validates a layout file.
func Load(path string) (Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Definition{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "layout %s", path)
		}
		return Definition{}, errors.Wrap(errors.ErrCodeInvalidLayout, err, "open layout %s", path)
	}
	defer f.Close()

	d, err := Parse(f)
	if err != nil {
		return Definition{}, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Write encodes d as indented JSON.
func Write(w io.Writer, d Definition) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

// Save writes d to path.
func Save(path string, d Definition) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, d); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
