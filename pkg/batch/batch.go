package batch

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"

	"go.uber.org/multierr"

	"github.com/matzehuels/printlayout/pkg/catalog"
	"github.com/matzehuels/printlayout/pkg/errors"
)

// DefaultMode is the mode written to a fresh batch file.
const DefaultMode = "design"

// Entry pairs a layout with its front and back themes.
type Entry struct {
	Layout     string `json:"layout"`
	FrontTheme string `json:"front_theme"`
	BackTheme  string `json:"back_theme"`
}

func (e Entry) String() string {
	return fmt.Sprintf("%s [%s / %s]", e.Layout, e.FrontTheme, e.BackTheme)
}

// File is the batch.json document.
type File struct {
	Mode               string  `json:"mode"`
	ImagePathLandscape *string `json:"image_path_landscape"`
	ImagePathPortrait  *string `json:"image_path_portrait"`
	TextPath           *string `json:"text_path"`
	PersonalNotePath   *string `json:"personal_note_path"`
	Entries            []Entry `json:"batch"`
}

// New returns an empty batch file in the default mode.
func New() File { return File{Mode: DefaultMode} }

// Parse decodes a batch file. Entries must name a layout and both themes.
func Parse(r io.Reader) (File, error) {
	var f File
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return File{}, errors.Wrap(errors.ErrCodeInvalidBatch, err, "decode batch")
	}
	var errs error
	for i, e := range f.Entries {
		if e.Layout == "" || e.FrontTheme == "" || e.BackTheme == "" {
			errs = multierr.Append(errs, fmt.Errorf("entry %d: layout, front_theme and back_theme are required", i))
		}
	}
	if errs != nil {
		return File{}, errors.Wrap(errors.ErrCodeInvalidBatch, errs, "batch")
	}
	return f, nil
}

// Load reads a batch file.
func Load(path string) (File, error) {
	fh, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return File{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "batch %s", path)
		}
		return File{}, errors.Wrap(errors.ErrCodeInvalidBatch, err, "open batch %s", path)
	}
	defer fh.Close()

	f, err := Parse(fh)
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// LoadOrNew reads path, or returns [New] if it does not exist.
func LoadOrNew(path string) (File, error) {
	f, err := Load(path)
	if errors.Is(err, errors.ErrCodeFileNotFound) {
		return New(), nil
	}
	return f, err
}

// Write encodes f as indented JSON.
func Write(w io.Writer, f File) error {
	if f.Entries == nil {
		f.Entries = []Entry{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(f)
}

// Save writes f to path.
func Save(path string, f File) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(fh, f); err != nil {
		fh.Close()
		return err
	}
	return fh.Close()
}

// Validate checks every entry against the catalog and reports all missing
// layouts and themes in one INVALID_BATCH error.
func (f File) Validate(c *catalog.Catalog) error {
	layouts, err := c.LayoutNames()
	if err != nil {
		return err
	}
	themes, err := c.ThemeNames()
	if err != nil {
		return err
	}

	var errs error
	for i, e := range f.Entries {
		if !slices.Contains(layouts, e.Layout) {
			errs = multierr.Append(errs, fmt.Errorf("entry %d: layout %q not found", i, e.Layout))
		}
		if !slices.Contains(themes, e.FrontTheme) {
			errs = multierr.Append(errs, fmt.Errorf("entry %d: front theme %q not found", i, e.FrontTheme))
		}
		if !slices.Contains(themes, e.BackTheme) {
			errs = multierr.Append(errs, fmt.Errorf("entry %d: back theme %q not found", i, e.BackTheme))
		}
	}
	if errs != nil {
		return errors.Wrap(errors.ErrCodeInvalidBatch, errs, "%d problem(s) in batch", len(multierr.Errors(errs)))
	}
	return nil
}
