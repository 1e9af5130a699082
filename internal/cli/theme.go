package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/printlayout/pkg/catalog"
)

// themeCommand creates the theme command for importing and inspecting themes.
func (c *CLI) themeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Import and inspect themes",
	}

	cmd.AddCommand(c.themeImportCommand())
	cmd.AddCommand(c.themeShowCommand())

	return cmd
}

// themeImportCommand generates a light and a dark theme per palette file.
func (c *CLI) themeImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import [palette.css...]",
		Short: "Generate light and dark themes from Adobe Color CSS exports",
		Long: `Import parses Adobe Color CSS exports (five colors each), assigns the
background, base, accent, secondary and text roles by WCAG contrast, and
writes <name>_light.json and <name>_dark.json under themes/.

Without arguments every *.css file under palettes/ is imported.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := c.catalog()
			files := args
			if len(files) == 0 {
				var err error
				if files, err = cat.Palettes(); err != nil {
					return err
				}
			}
			if len(files) == 0 {
				printWarning("No palettes in %s", cat.Path(catalog.PalettesDir))
				return nil
			}

			prog := newProgress(c.Logger)
			var written []string
			for _, f := range files {
				paths, err := cat.ImportPalette(f)
				if err != nil {
					return err
				}
				c.Logger.Debug("imported palette", "file", f, "name", catalog.PaletteName(f))
				written = append(written, paths...)
			}
			prog.done("Imported palettes")

			printSuccess("Imported %d palettes", len(files))
			for _, p := range written {
				printFile(p)
			}
			return nil
		},
	}
}

// themeShowCommand prints a theme's role colors and resolved slots.
func (c *CLI) themeShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "show <theme>",
		Short:             "Show a theme's roles and resolved slot colors",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: c.completeTheme,
		RunE: func(cmd *cobra.Command, args []string) error {
			th, err := c.catalog().Theme(args[0])
			if err != nil {
				return err
			}

			printKeyValue("Name", th.Name)
			printKeyValue("Mode", string(th.Mode))
			if th.Source != "" {
				printKeyValue("Source", th.Source)
			}
			printNewline()

			rows := make([][]string, 0, len(th.Styles))
			for _, slot := range th.Slots() {
				color, ok := th.ResolveColor(slot)
				value := string(color)
				if !ok {
					value = "none"
				}
				rows = append(rows, []string{string(slot), string(th.Styles[slot]), value})
			}
			printTable([]string{"Slot", "Role", "Color"}, rows)
			return nil
		},
	}
}
