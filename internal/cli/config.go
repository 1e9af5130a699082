package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/printlayout/pkg/config"
	"github.com/matzehuels/printlayout/pkg/errors"
)

// configCommand creates the config command.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and create printlayout.toml",
	}

	cmd.AddCommand(c.configInitCommand())
	cmd.AddCommand(c.configShowCommand())

	return cmd
}

// configInitCommand writes the defaults to <dir>/printlayout.toml.
func (c *CLI) configInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration to the base directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := filepath.Join(c.Dir, config.FileName)
			if _, err := os.Stat(path); err == nil && !force {
				return errors.New(errors.ErrCodeInvalidInput, "%s already exists (use --force to overwrite)", path)
			}
			if err := os.MkdirAll(c.Dir, 0o755); err != nil {
				return err
			}
			if err := config.Write(path, config.Default()); err != nil {
				return err
			}
			printSuccess("Wrote default configuration")
			printFile(path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	return cmd
}

// configShowCommand prints the effective configuration.
func (c *CLI) configShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			source := c.ConfigPath
			if source == "" {
				source = config.Find(c.Dir)
			}
			if source == "" {
				source = "defaults"
			}

			printKeyValue("Source", source)
			printKeyValue("Canvas", formatInches(cfg.Canvas.Width, cfg.Canvas.Height))
			printKeyValue("Inset", formatFloat(cfg.Canvas.Inset)+"in")
			printKeyValue("Title block", formatFloat(cfg.Canvas.TitleBlockHeight)+"in")
			printKeyValue("DPI", formatFloat(cfg.Canvas.DPI))
			printKeyValue("Ink", string(cfg.Ink.Color))
			printKeyValue("Canvas color", string(cfg.Ink.CanvasColor))
			printKeyValue("Muted", string(cfg.Ink.Muted))
			printKeyValue("Font family", cfg.Page.FontFamily)
			printKeyValue("Paper default", string(cfg.Page.DefaultBackground))
			printKeyValue("Cache TTL", cfg.Cache.TTL.String())
			return nil
		},
	}
}
