package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/printlayout/pkg/catalog"
)

// listCommand creates the list command with layouts and themes subcommands.
func (c *CLI) listCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List layouts and themes in the base directory",
	}

	cmd.AddCommand(c.listLayoutsCommand())
	cmd.AddCommand(c.listThemesCommand())

	return cmd
}

func (c *CLI) listLayoutsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "layouts",
		Aliases: []string{"layout"},
		Short:   "List layout definitions",
		RunE: func(cmd *cobra.Command, args []string) error {
			infos, err := c.catalog().ListLayouts()
			if err != nil {
				return err
			}
			if len(infos) == 0 {
				printWarning("No layouts in %s", c.catalog().Path(catalog.LayoutsDir))
				printNextStep("Migrate a legacy file", "printlayout migrate layouts.json")
				return nil
			}

			rows := make([][]string, 0, len(infos))
			for _, l := range infos {
				rows = append(rows, []string{
					l.Name,
					l.Title,
					formatInches(l.PaperSize.Width, l.PaperSize.Height),
					l.Mode.String(),
				})
			}
			printTable([]string{"Name", "Title", "Paper", "Caption"}, rows)
			printDetail("%d layouts", len(infos))
			return nil
		},
	}
}

func (c *CLI) listThemesCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "themes",
		Aliases: []string{"theme"},
		Short:   "List themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			infos, err := c.catalog().ListThemes()
			if err != nil {
				return err
			}
			if len(infos) == 0 {
				printWarning("No themes in %s", c.catalog().Path(catalog.ThemesDir))
				printNextStep("Import palettes", "printlayout theme import")
				return nil
			}

			rows := make([][]string, 0, len(infos))
			for _, th := range infos {
				source := th.Source
				if source == "" {
					source = "-"
				}
				rows = append(rows, []string{th.Key, th.Name, string(th.Mode), source})
			}
			printTable([]string{"Key", "Name", "Mode", "Source"}, rows)
			printDetail("%d themes", len(infos))
			return nil
		},
	}
}
