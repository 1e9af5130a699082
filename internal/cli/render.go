package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/printlayout/pkg/catalog"
	"github.com/matzehuels/printlayout/pkg/geometry"
	"github.com/matzehuels/printlayout/pkg/pipeline"
	"github.com/matzehuels/printlayout/pkg/sink"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	frontTheme string
	backTheme  string
	formats    string
	side       string
	output     string // output directory, default <dir>/output/<layout>
	dimensions bool
	scale      float64
	fillFont   bool
	refresh    bool
	noCache    bool
}

// renderCommand creates the render command for resolving one layout.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <layout>",
		Short: "Render a layout with a front and back theme",
		Long: `Render resolves a layout against two themes and writes the requested
artifacts: page.html (print template), spec.json (element spec) and
front/back blueprints as svg or png.`,
		Example: `  printlayout render classic --front harbor_light --back harbor_dark
  printlayout render classic --front harbor_light --back harbor_dark -f svg,png --side front`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: c.completeLayout,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.frontTheme, "front", "", "front theme key (e.g. harbor_light)")
	cmd.Flags().StringVar(&opts.backTheme, "back", "", "back theme key (e.g. harbor_dark)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): html, json (default both), svg, png (comma-separated)")
	cmd.Flags().StringVar(&opts.side, "side", pipeline.SideBoth, "blueprint side(s): front, back, both")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output directory (default <dir>/output/<layout>)")
	cmd.Flags().BoolVar(&opts.dimensions, "dimensions", false, "include measurement lines in spec.json")
	cmd.Flags().Float64Var(&opts.scale, "scale", 1, "resample png output by this factor")
	cmd.Flags().BoolVar(&opts.fillFont, "fill-font", false, "substitute the configured font family into page.html")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached artifacts")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	_ = cmd.MarkFlagRequired("front")
	_ = cmd.MarkFlagRequired("back")

	c.registerThemeFlags(cmd)
	registerOutputFlags(cmd)

	return cmd
}

func (c *CLI) runRender(ctx context.Context, layoutName string, opts renderOpts) error {
	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	res, err := runner.Execute(ctx, pipeline.Options{
		Layout:     layoutName,
		FrontTheme: opts.frontTheme,
		BackTheme:  opts.backTheme,
		Formats:    parseFormats(opts.formats),
		Side:       opts.side,
		Dimensions: opts.dimensions,
		Scale:      opts.scale,
		FillFont:   opts.fillFont,
		Refresh:    opts.refresh,
	})
	if err != nil {
		return err
	}

	out := opts.output
	if out == "" {
		out = c.catalog().Path(catalog.OutputDir, layoutName)
	}
	paths, err := pipeline.WriteArtifacts(out, res.Artifacts)
	if err != nil {
		return fmt.Errorf("write artifacts: %w", err)
	}
	prog.done("Rendered " + layoutName)

	printSuccess("Rendered %s", StyleHighlight.Render(layoutName))
	printRenderStats(len(paths), res.CacheInfo.Hits, res.CacheInfo.RenderHit())
	for _, p := range paths {
		printFile(p)
	}
	return nil
}

// specCommand prints the JSON spec of a layout to stdout.
func (c *CLI) specCommand() *cobra.Command {
	var (
		frontTheme, backTheme string
		canvas, dimensions    bool
	)

	cmd := &cobra.Command{
		Use:               "spec <layout>",
		Short:             "Print the resolved JSON spec of a layout",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: c.completeLayout,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			var origin geometry.Point
			var jsonOpts []sink.JSONOption
			if canvas {
				def, err := c.catalog().Layout(args[0])
				if err != nil {
					return err
				}
				origin = cfg.Geometry().PaperOrigin(def.PaperSize.Width, def.PaperSize.Height)
				jsonOpts = append(jsonOpts, sink.WithJSONCanvas())
			}
			if dimensions {
				jsonOpts = append(jsonOpts, sink.WithJSONDimensions())
			}

			spec, err := c.catalog().Spec(args[0], frontTheme, backTheme, origin)
			if err != nil {
				return err
			}
			data, err := sink.RenderJSON(spec, jsonOpts...)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}

	cmd.Flags().StringVar(&frontTheme, "front", "", "front theme key")
	cmd.Flags().StringVar(&backTheme, "back", "", "back theme key")
	cmd.Flags().BoolVar(&canvas, "canvas", false, "emit blueprint canvas coordinates instead of page coordinates")
	cmd.Flags().BoolVar(&dimensions, "dimensions", false, "include measurement lines")
	_ = cmd.MarkFlagRequired("front")
	_ = cmd.MarkFlagRequired("back")
	c.registerThemeFlags(cmd)

	return cmd
}

// templateCommand prints the HTML print template of a layout to stdout.
func (c *CLI) templateCommand() *cobra.Command {
	var (
		frontTheme, backTheme string
		output                string
		fillFont              bool
	)

	cmd := &cobra.Command{
		Use:               "template <layout>",
		Short:             "Print the HTML print template of a layout",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: c.completeLayout,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := c.newRunner(true)
			if err != nil {
				return err
			}
			spec, err := c.catalog().Spec(args[0], frontTheme, backTheme, geometry.Point{})
			if err != nil {
				return err
			}
			data, err := runner.Render(spec, nil, pipeline.FormatHTML, sink.SideFront, pipeline.Options{FillFont: fillFont})
			if err != nil {
				return err
			}
			if output == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return err
			}
			printSuccess("Wrote template")
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVar(&frontTheme, "front", "", "front theme key")
	cmd.Flags().StringVar(&backTheme, "back", "", "back theme key")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	cmd.Flags().BoolVar(&fillFont, "fill-font", false, "substitute the configured font family")
	_ = cmd.MarkFlagRequired("front")
	_ = cmd.MarkFlagRequired("back")
	c.registerThemeFlags(cmd)

	return cmd
}
