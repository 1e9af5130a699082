// Package theme resolves visual slots to concrete colors.
//
// A [Theme] carries two mappings: role→color (the output of
// [palette.Assign]) and slot→role (which semantic role each visual element
// uses). Resolution walks both; any gap yields "no color" rather than an
// error, so a sparse theme simply draws fewer borders.
//
//	style := th.BuildStyle(theme.SlotImgBackground, theme.SlotImgBorder, 0.02)
//	if style.Border != nil {
//	    // draw a border of style.Border.Width in style.Border.Color
//	}
package theme

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/matzehuels/printlayout/pkg/errors"
	"github.com/matzehuels/printlayout/pkg/palette"
)

// Slot names a visual element whose color is resolved through the theme.
type Slot string

const (
	SlotPaperBackground   Slot = "paper_background"
	SlotPaperBorder       Slot = "paper_border"
	SlotImgBackground     Slot = "img_background"
	SlotImgBorder         Slot = "img_border"
	SlotCaptionBackground Slot = "caption_background"
	SlotCaptionBorder     Slot = "caption_border"
	SlotNoteBackground    Slot = "note_background"
	SlotNoteBorder        Slot = "note_border"
	SlotFontColor         Slot = "font_color"
)

// SourceAdobeColor marks themes generated from Adobe Color exports.
const SourceAdobeColor = "adobe-color"

// DefaultStyles is the slot→role mapping given to generated themes.
var DefaultStyles = map[Slot]palette.Role{
	SlotPaperBackground:   palette.RoleBackground,
	SlotPaperBorder:       palette.RoleBase,
	SlotImgBackground:     palette.RoleSecondary,
	SlotImgBorder:         palette.RoleAccent,
	SlotCaptionBackground: palette.RoleSecondary,
	SlotCaptionBorder:     palette.RoleAccent,
	SlotNoteBackground:    palette.RoleSecondary,
	SlotNoteBorder:        palette.RoleAccent,
	SlotFontColor:         palette.RoleText,
}

// Theme is a named color scheme: role→color plus slot→role.
type Theme struct {
	Name   string                         `json:"name"`
	Source string                         `json:"source,omitempty"`
	Mode   palette.Mode                   `json:"mode"`
	Colors map[palette.Role]palette.Color `json:"colors"`
	Styles map[Slot]palette.Role          `json:"styles"`
}

// FromPalette generates a theme from a five-color palette using the WCAG
// role assignment for mode and the default slot mapping.
func FromPalette(name string, p palette.Palette, mode palette.Mode) Theme {
	styles := make(map[Slot]palette.Role, len(DefaultStyles))
	for k, v := range DefaultStyles {
		styles[k] = v
	}
	return Theme{
		Name:   name,
		Source: SourceAdobeColor,
		Mode:   mode,
		Colors: palette.Assign(p, mode).Map(),
		Styles: styles,
	}
}

// FileName returns the conventional file name for a generated theme,
// e.g. "harbor_light.json".
func FileName(name string, mode palette.Mode) string {
	return fmt.Sprintf("%s_%s.json", name, mode)
}

// ResolveColor looks up slot's role and returns that role's color.
// It reports false when the slot is unmapped or the role has no color.
func (t Theme) ResolveColor(slot Slot) (palette.Color, bool) {
	role, ok := t.Styles[slot]
	if !ok || role == "" {
		return "", false
	}
	c, ok := t.Colors[role]
	if !ok || c == "" {
		return "", false
	}
	return c, true
}

// Load reads and validates a theme JSON file.
func Load(path string) (Theme, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Theme{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "theme %s", path)
		}
		return Theme{}, errors.Wrap(errors.ErrCodeInvalidTheme, err, "open theme %s", path)
	}
	defer f.Close()

	t, err := Parse(f)
	if err != nil {
		return Theme{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Parse decodes and validates a theme from JSON. Colors are normalized to
// upper-case "#RRGGBB".
func Parse(r io.Reader) (Theme, error) {
	var t Theme
	if err := json.NewDecoder(r).Decode(&t); err != nil {
		return Theme{}, errors.Wrap(errors.ErrCodeInvalidTheme, err, "decode theme")
	}
	if err := t.normalize(); err != nil {
		return Theme{}, err
	}
	return t, nil
}

func (t *Theme) normalize() error {
	if strings.TrimSpace(t.Name) == "" {
		return errors.New(errors.ErrCodeInvalidTheme, "theme name is required")
	}
	mode, err := palette.ParseMode(string(t.Mode))
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidTheme, err, "theme %s", t.Name)
	}
	t.Mode = mode

	for role, hex := range t.Colors {
		if !role.Valid() {
			return errors.New(errors.ErrCodeInvalidTheme, "theme %s: unknown role %q", t.Name, role)
		}
		c, err := palette.ParseColor(string(hex))
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidTheme, err, "theme %s: role %s", t.Name, role)
		}
		t.Colors[role] = c
	}
	for slot, role := range t.Styles {
		if !role.Valid() {
			return errors.New(errors.ErrCodeInvalidTheme, "theme %s: slot %s maps to unknown role %q", t.Name, slot, role)
		}
	}
	return nil
}

// Write encodes t as indented JSON.
func Write(w io.Writer, t Theme) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(t)
}

// Save writes t to path, creating or truncating the file.
func Save(path string, t Theme) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, t); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Slots returns the theme's mapped slots in sorted order.
func (t Theme) Slots() []Slot {
	slots := make([]Slot, 0, len(t.Styles))
	for s := range t.Styles {
		slots = append(slots, s)
	}
	slices.Sort(slots)
	return slots
}
