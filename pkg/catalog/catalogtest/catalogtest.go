// Package catalogtest builds throwaway catalog directories for tests.
package catalogtest

import (
	"strings"
	"testing"

	"github.com/matzehuels/printlayout/pkg/catalog"
	"github.com/matzehuels/printlayout/pkg/layout"
	"github.com/matzehuels/printlayout/pkg/palette"
	"github.com/matzehuels/printlayout/pkg/theme"
)

// Palette is the palette behind the harbor_light and harbor_dark themes.
var Palette = palette.Palette{"#1E3D59", "#F2F2F2", "#4A90D9", "#E8EFF5", "#333333"}

// Sage is the palette behind the sage_light and sage_dark themes.
var Sage = palette.Palette{"#2F3E46", "#354F52", "#52796F", "#84A98C", "#CAD2C5"}

// LayoutJSON returns a valid letter-size layout named name.
func LayoutJSON(name string, doubleCol bool) string {
	special := "null"
	if doubleCol {
		special = `"double_col"`
	}
	return `{
  "name": "` + name + `",
  "title": "` + strings.ToUpper(name) + `",
  "paper_size": {"width": 8.5, "height": 11},
  "front": {
    "img_dims": {"width": 6, "height": 4},
    "img_pos": {"top": 1, "left": 1.25},
    "caption_dims": {"width": 6, "height": 2},
    "caption_pos": {"left": 1.25, "top": 6},
    "special": ` + special + `,
    "gutter": 0.5,
    "border_widths": {"paper": 0.1, "img": 0.02, "caption": 0}
  },
  "back": {
    "note_dims": {"width": 6, "height": 9},
    "note_pos": "centered",
    "border_widths": {"paper": 0, "note": 0.02}
  },
  "notes": "Mat to 11x14"
}`
}

// New returns a catalog in a temp dir holding the given layouts (standard
// mode unless the name contains "double") and light/dark harbor and sage
// themes.
func New(t testing.TB, layouts ...string) *catalog.Catalog {
	t.Helper()
	c := catalog.New(t.TempDir())

	for _, name := range layouts {
		d, err := layout.Parse(strings.NewReader(LayoutJSON(name, strings.Contains(name, "double"))))
		if err != nil {
			t.Fatalf("layout %s: %v", name, err)
		}
		if _, err := c.SaveLayout(d); err != nil {
			t.Fatalf("save layout %s: %v", name, err)
		}
	}
	for name, p := range map[string]palette.Palette{"harbor": Palette, "sage": Sage} {
		for _, m := range palette.Modes {
			if _, err := c.SaveTheme(theme.FromPalette(name, p, m)); err != nil {
				t.Fatalf("save theme %s: %v", name, err)
			}
		}
	}
	return c
}
