package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/matzehuels/printlayout/pkg/batch"
	"github.com/matzehuels/printlayout/pkg/catalog"
	"github.com/matzehuels/printlayout/pkg/errors"
	"github.com/matzehuels/printlayout/pkg/layout"
)

// migrateCommand splits a legacy single-file layouts document into one
// geometry-only definition per layout.
func (c *CLI) migrateCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "migrate <layouts.json>",
		Short: "Convert a legacy layouts.json into per-layout files",
		Long: `Migrate reads the legacy single-file format, keeps the geometry and the
border widths of each entry, drops inline colors (they now come from
themes) and writes layouts/<name>.json.

When batch.json does not exist yet it is created with the legacy mode and
content paths so "batch generate" can fill it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runMigrate(args[0], force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing layout files")

	return cmd
}

func (c *CLI) runMigrate(path string, force bool) error {
	fh, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrap(errors.ErrCodeFileNotFound, err, "legacy layouts %s", path)
		}
		return err
	}
	legacy, err := layout.ParseLegacy(fh)
	fh.Close()
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	cat := c.catalog()
	var (
		errs    error
		written int
		skipped int
	)
	for _, def := range layout.MigrateFile(legacy) {
		if err := def.Validate(); err != nil {
			printError("%v", err)
			errs = multierr.Append(errs, err)
			continue
		}
		target := cat.Path(catalog.LayoutsDir, def.Name+".json")
		if _, err := os.Stat(target); err == nil && !force {
			c.Logger.Debug("layout exists, skipping", "path", target)
			skipped++
			continue
		}
		p, err := cat.SaveLayout(def)
		if err != nil {
			return err
		}
		written++
		printFile(p)
	}

	if err := c.seedBatch(legacy); err != nil {
		errs = multierr.Append(errs, err)
	}

	printSuccess("Migrated %d of %d layouts", written, len(legacy.Layouts))
	if skipped > 0 {
		printWarning("%d existing layouts kept (use --force to overwrite)", skipped)
	}
	return errs
}

// seedBatch writes batch.json from the legacy header unless it exists.
func (c *CLI) seedBatch(legacy layout.LegacyFile) error {
	path := c.catalog().Path(catalog.BatchFile)
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	f := batch.New()
	if legacy.Mode != "" {
		f.Mode = legacy.Mode
	}
	f.ImagePathLandscape = legacy.ImagePathLandscape
	f.ImagePathPortrait = legacy.ImagePathPortrait
	f.TextPath = legacy.TextPath
	f.PersonalNotePath = legacy.PersonalNotePath
	if err := batch.Save(path, f); err != nil {
		return err
	}
	printInfo("Created %s", path)
	return nil
}
