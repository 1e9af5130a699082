package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/printlayout/pkg/batch"
	"github.com/matzehuels/printlayout/pkg/catalog"
	"github.com/matzehuels/printlayout/pkg/pipeline"
)

// batchCommand creates the batch command for generating and running batch.json.
func (c *CLI) batchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Generate and run batch.json",
	}

	cmd.AddCommand(c.batchGenerateCommand())
	cmd.AddCommand(c.batchRunCommand())

	return cmd
}

// batchGenerateCommand pairs every layout with a random front and back theme.
func (c *CLI) batchGenerateCommand() *cobra.Command {
	var seed uint64

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Assign random front and back themes to every layout",
		Long: `Generate rewrites the entries of batch.json so every layout gets a front
and a back theme. Themes are cycled to cover all layouts and shuffled per
side, so with at least as many layouts as themes each theme is used on
both sides. Mode and content paths of an existing batch.json are kept.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				seed = uint64(time.Now().UnixNano())
			}
			return c.runBatchGenerate(seed)
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed for reproducible assignments")

	return cmd
}

func (c *CLI) runBatchGenerate(seed uint64) error {
	cat := c.catalog()
	layouts, err := cat.LayoutNames()
	if err != nil {
		return err
	}
	themes, err := cat.ThemeNames()
	if err != nil {
		return err
	}

	entries, err := batch.Generate(layouts, themes, batch.NewRand(seed))
	if err != nil {
		return err
	}

	path := cat.Path(catalog.BatchFile)
	f, err := batch.LoadOrNew(path)
	if err != nil {
		return err
	}
	f.Entries = entries
	if err := batch.Save(path, f); err != nil {
		return err
	}
	c.Logger.Debug("generated batch", "layouts", len(layouts), "themes", len(themes), "seed", seed)

	printSuccess("Generated %d entries from %d themes", len(entries), len(themes))
	printFile(path)
	printNextStep("Render them", "printlayout batch run")
	return nil
}

// batchRunOpts holds the command-line flags for batch run.
type batchRunOpts struct {
	formats     string
	side        string
	output      string
	concurrency int
	failFast    bool
	fillFont    bool
	refresh     bool
	noCache     bool
}

// batchRunCommand renders every entry of batch.json.
func (c *CLI) batchRunCommand() *cobra.Command {
	var opts batchRunOpts

	cmd := &cobra.Command{
		Use:   "run [batch.json]",
		Short: "Render every entry of a batch file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := c.catalog().Path(catalog.BatchFile)
			if len(args) == 1 {
				path = args[0]
			}
			return c.runBatch(cmd.Context(), path, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): html, json (default both), svg, png (comma-separated)")
	cmd.Flags().StringVar(&opts.side, "side", pipeline.SideBoth, "blueprint side(s): front, back, both")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output directory (default <dir>/output)")
	cmd.Flags().IntVarP(&opts.concurrency, "concurrency", "j", 0, "parallel entries (default GOMAXPROCS)")
	cmd.Flags().BoolVar(&opts.failFast, "fail-fast", false, "stop at the first failed entry")
	cmd.Flags().BoolVar(&opts.fillFont, "fill-font", false, "substitute the configured font family into page.html")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached artifacts")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	registerOutputFlags(cmd)

	return cmd
}

func (c *CLI) runBatch(ctx context.Context, path string, opts batchRunOpts) error {
	f, err := batch.Load(path)
	if err != nil {
		return err
	}
	if len(f.Entries) == 0 {
		printWarning("%s has no entries", path)
		printNextStep("Fill it", "printlayout batch generate")
		return nil
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	out := opts.output
	if out == "" {
		out = c.catalog().Path(catalog.OutputDir)
	}

	prog := newProgress(c.Logger)
	results, runErr := runner.RunBatch(ctx, f, pipeline.BatchOptions{
		Render: pipeline.Options{
			Formats:  parseFormats(opts.formats),
			Side:     opts.side,
			FillFont: opts.fillFont,
			Refresh:  opts.refresh,
		},
		OutDir:      out,
		Concurrency: opts.concurrency,
		FailFast:    opts.failFast,
	})
	if results == nil && runErr != nil {
		return runErr
	}
	prog.done(fmt.Sprintf("Ran %d entries", len(f.Entries)))

	ok := 0
	for _, r := range results {
		switch {
		case r.Skipped:
			printWarning("%s skipped", r.Entry)
		case r.Err != nil:
			printError("%s", r.Err)
		default:
			ok++
			printSuccess("%s", r.Entry)
			if len(r.Files) > 0 {
				printDetail("%s", filepath.Dir(r.Files[0]))
			}
		}
	}

	printNewline()
	printInfo("%d of %d entries rendered", ok, len(f.Entries))
	if runErr != nil {
		if ctx.Err() != nil {
			return runErr
		}
		return fmt.Errorf("batch: %d of %d entries did not render", len(f.Entries)-ok, len(f.Entries))
	}
	return nil
}
