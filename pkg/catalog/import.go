package catalog

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"

	"github.com/matzehuels/printlayout/pkg/errors"
	"github.com/matzehuels/printlayout/pkg/palette"
	"github.com/matzehuels/printlayout/pkg/theme"
)

// PaletteName derives a theme name from a palette file path:
// "palettes/Harbor Fog.css" becomes "harbor-fog".
func PaletteName(path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return slug.Make(stem)
}

// ImportPalette parses an Adobe Color CSS export and writes one theme per
// mode. It returns the written paths.
func (c *Catalog) ImportPalette(cssPath string) ([]string, error) {
	f, err := os.Open(cssPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "palette %s", cssPath)
		}
		return nil, err
	}
	defer f.Close()

	_, p, err := palette.ParseAdobeCSS(f)
	if err != nil {
		return nil, err
	}

	name := PaletteName(cssPath)
	var written []string
	for _, mode := range palette.Modes {
		path, err := c.SaveTheme(theme.FromPalette(name, p, mode))
		if err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}
