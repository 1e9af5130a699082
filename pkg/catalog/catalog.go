// Package catalog discovers and loads layouts and themes from a base
// directory.
//
// The directory is organized as:
//
//	<base>/layouts/<name>.json    layout definitions
//	<base>/themes/<name>.json     themes, usually <palette>_<mode>.json
//	<base>/palettes/*.css         Adobe Color exports to import
//	<base>/batch.json             batch definition
//	<base>/output/                rendered artifacts
//
// Layouts and themes are addressed by file stem, not by the name stored
// inside the file.
package catalog

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/matzehuels/printlayout/pkg/compose"
	"github.com/matzehuels/printlayout/pkg/errors"
	"github.com/matzehuels/printlayout/pkg/geometry"
	"github.com/matzehuels/printlayout/pkg/layout"
	"github.com/matzehuels/printlayout/pkg/palette"
	"github.com/matzehuels/printlayout/pkg/theme"
)

const (
	LayoutsDir  = "layouts"
	ThemesDir   = "themes"
	PalettesDir = "palettes"
	OutputDir   = "output"
	BatchFile   = "batch.json"
)

// Catalog is a base directory of layouts and themes.
type Catalog struct {
	Dir string
}

// New returns a Catalog rooted at dir.
func New(dir string) *Catalog {
	return &Catalog{Dir: dir}
}

// Path joins elem onto the base directory.
func (c *Catalog) Path(elem ...string) string {
	return filepath.Join(append([]string{c.Dir}, elem...)...)
}

// LayoutInfo summarizes a layout for listings.
type LayoutInfo struct {
	Name      string      `json:"name"`
	Title     string      `json:"title"`
	PaperSize layout.Size `json:"paper_size"`
	Mode      layout.Mode `json:"special"`
}

// ThemeInfo summarizes a theme for listings. Key is the file stem used to
// load it; Name is the palette name stored inside.
type ThemeInfo struct {
	Key    string       `json:"key"`
	Name   string       `json:"name"`
	Mode   palette.Mode `json:"mode"`
	Source string       `json:"source,omitempty"`
}

// LayoutNames returns the sorted layout file stems.
func (c *Catalog) LayoutNames() ([]string, error) {
	return stems(c.Path(LayoutsDir))
}

// ThemeNames returns the sorted theme file stems.
func (c *Catalog) ThemeNames() ([]string, error) {
	return stems(c.Path(ThemesDir))
}

// ListLayouts loads every layout and returns a summary of each.
func (c *Catalog) ListLayouts() ([]LayoutInfo, error) {
	names, err := c.LayoutNames()
	if err != nil {
		return nil, err
	}
	out := make([]LayoutInfo, 0, len(names))
	for _, n := range names {
		d, err := c.Layout(n)
		if err != nil {
			return nil, err
		}
		out = append(out, LayoutInfo{Name: n, Title: d.Title, PaperSize: d.PaperSize, Mode: d.Front.Special})
	}
	return out, nil
}

// ListThemes loads every theme and returns a summary of each.
func (c *Catalog) ListThemes() ([]ThemeInfo, error) {
	keys, err := c.ThemeNames()
	if err != nil {
		return nil, err
	}
	out := make([]ThemeInfo, 0, len(keys))
	for _, k := range keys {
		th, err := c.Theme(k)
		if err != nil {
			return nil, err
		}
		out = append(out, ThemeInfo{Key: k, Name: th.Name, Mode: th.Mode, Source: th.Source})
	}
	return out, nil
}

// Layout loads the layout stored as layouts/<name>.json.
func (c *Catalog) Layout(name string) (layout.Definition, error) {
	if err := errors.ValidateName(name); err != nil {
		return layout.Definition{}, err
	}
	path := c.Path(LayoutsDir, name+".json")
	d, err := layout.Load(path)
	if errors.Is(err, errors.ErrCodeFileNotFound) {
		return layout.Definition{}, errors.Wrap(errors.ErrCodeNotFound, err, "layout %q not found", name)
	}
	return d, err
}

// Theme loads the theme stored as themes/<key>.json.
func (c *Catalog) Theme(key string) (theme.Theme, error) {
	if err := errors.ValidateName(key); err != nil {
		return theme.Theme{}, err
	}
	path := c.Path(ThemesDir, key+".json")
	th, err := theme.Load(path)
	if errors.Is(err, errors.ErrCodeFileNotFound) {
		return theme.Theme{}, errors.Wrap(errors.ErrCodeNotFound, err, "theme %q not found", key)
	}
	return th, err
}

// Spec loads a layout and its two themes and composes them at origin.
func (c *Catalog) Spec(layoutName, frontTheme, backTheme string, origin geometry.Point) (compose.Spec, error) {
	def, err := c.Layout(layoutName)
	if err != nil {
		return compose.Spec{}, err
	}
	front, err := c.Theme(frontTheme)
	if err != nil {
		return compose.Spec{}, err
	}
	back, err := c.Theme(backTheme)
	if err != nil {
		return compose.Spec{}, err
	}
	return compose.Compose(def, front, back, origin), nil
}

// SaveLayout writes d to layouts/<d.Name>.json, creating the directory.
func (c *Catalog) SaveLayout(d layout.Definition) (string, error) {
	if err := errors.ValidateName(d.Name); err != nil {
		return "", err
	}
	if err := os.MkdirAll(c.Path(LayoutsDir), 0o755); err != nil {
		return "", err
	}
	path := c.Path(LayoutsDir, d.Name+".json")
	return path, layout.Save(path, d)
}

// SaveTheme writes th to themes/<name>_<mode>.json, creating the directory.
func (c *Catalog) SaveTheme(th theme.Theme) (string, error) {
	if err := errors.ValidateName(th.Name); err != nil {
		return "", err
	}
	if err := os.MkdirAll(c.Path(ThemesDir), 0o755); err != nil {
		return "", err
	}
	path := c.Path(ThemesDir, theme.FileName(th.Name, th.Mode))
	return path, theme.Save(path, th)
}

// Palettes returns the sorted CSS palette files under palettes/.
func (c *Catalog) Palettes() ([]string, error) {
	matches, err := filepath.Glob(c.Path(PalettesDir, "*.css"))
	if err != nil {
		return nil, err
	}
	slices.Sort(matches)
	return matches, nil
}

func stems(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var out []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") || filepath.Ext(name) != ".json" {
			continue
		}
		out = append(out, strings.TrimSuffix(name, ".json"))
	}
	slices.Sort(out)
	return out, nil
}
