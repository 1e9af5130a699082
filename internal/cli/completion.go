package cli

import (
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/printlayout/pkg/pipeline"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for printlayout.

Completions are read from the base directory (--dir) at the time you press
TAB: layout names for render, spec and template, theme keys for --front,
--back and theme show, and the known values of --format and --side.

Bash:
  $ source <(printlayout completion bash)

Zsh:
  $ printlayout completion zsh > "${fpath[1]}/_printlayout"

Fish:
  $ printlayout completion fish > ~/.config/fish/completions/printlayout.fish

PowerShell:
  PS> printlayout completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(w, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(w)
			case "fish":
				return cmd.Root().GenFishCompletion(w, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(w)
			}
			return nil
		},
	}

	return cmd
}

// =============================================================================
// Dynamic completions
// =============================================================================

// completeLayout completes the single <layout> argument.
func (c *CLI) completeLayout(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	names, _ := c.catalog().LayoutNames()
	return names, cobra.ShellCompDirectiveNoFileComp
}

// completeTheme completes a single theme key argument.
func (c *CLI) completeTheme(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	names, _ := c.catalog().ThemeNames()
	return names, cobra.ShellCompDirectiveNoFileComp
}

// registerThemeFlags wires theme completion to --front and --back.
func (c *CLI) registerThemeFlags(cmd *cobra.Command) {
	complete := func(cmd *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return c.completeTheme(cmd, nil, "")
	}
	_ = cmd.RegisterFlagCompletionFunc("front", complete)
	_ = cmd.RegisterFlagCompletionFunc("back", complete)
}

// registerOutputFlags wires completion for --format and --side.
func registerOutputFlags(cmd *cobra.Command) {
	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)
	_ = cmd.RegisterFlagCompletionFunc("side", cobra.FixedCompletions(
		[]string{pipeline.SideFront, pipeline.SideBack, pipeline.SideBoth},
		cobra.ShellCompDirectiveNoFileComp,
	))
}

// completeFormats completes the comma-separated --format list, offering
// only formats not already given. "html,j" completes to "html,json".
func completeFormats(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	prefix, chosen := "", []string(nil)
	if i := strings.LastIndex(toComplete, ","); i >= 0 {
		prefix = toComplete[:i+1]
		chosen = strings.Split(toComplete[:i], ",")
	}

	var out []string
	for _, f := range formatOrder {
		if !slices.Contains(chosen, f) {
			out = append(out, prefix+f)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
}

var formatOrder = []string{pipeline.FormatHTML, pipeline.FormatJSON, pipeline.FormatSVG, pipeline.FormatPNG}
