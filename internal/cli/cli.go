package cli

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/printlayout/pkg/buildinfo"
	"github.com/matzehuels/printlayout/pkg/cache"
	"github.com/matzehuels/printlayout/pkg/catalog"
	"github.com/matzehuels/printlayout/pkg/config"
	"github.com/matzehuels/printlayout/pkg/observability"
	"github.com/matzehuels/printlayout/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "printlayout"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Dir is the base directory holding layouts/, themes/ and palettes/.
	Dir string
	// ConfigPath overrides the printlayout.toml lookup in Dir.
	ConfigPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Dir:    ".",
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Printlayout resolves two-sided print layouts",
		Long: `Printlayout turns geometry-only layout definitions and palette-derived
themes into print templates, JSON specs and annotated blueprints.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().StringVarP(&c.Dir, "dir", "C", c.Dir, "base directory with layouts/, themes/ and palettes/")
	root.PersistentFlags().StringVar(&c.ConfigPath, "config", "", "config file (default <dir>/"+config.FileName+")")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.specCommand())
	root.AddCommand(c.templateCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.themeCommand())
	root.AddCommand(c.migrateCommand())
	root.AddCommand(c.batchCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

func (c *CLI) catalog() *catalog.Catalog {
	return catalog.New(c.Dir)
}

// loadConfig reads --config, or printlayout.toml in the base directory,
// or the built-in defaults.
func (c *CLI) loadConfig() (config.Config, error) {
	path := c.ConfigPath
	if path == "" {
		path = config.Find(c.Dir)
	}
	if path != "" {
		c.Logger.Debug("loading config", "path", path)
	}
	return config.Load(path)
}

// newRunner creates a pipeline runner for CLI use. Cache keys are scoped
// to the absolute base directory so two catalogs never share entries.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, err
	}
	store, err := newCache(noCache)
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(c.Dir)
	if err != nil {
		abs = c.Dir
	}
	keyer := cache.NewScopedKeyer(nil, "dir:"+cache.Hash([]byte(abs))[:12]+":")

	hooks := logHooks{logger: c.Logger}
	observability.SetPipelineHooks(hooks)
	observability.SetCacheHooks(hooks)

	return pipeline.NewRunner(c.catalog(), cfg, store, keyer, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/printlayout/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatHTML, pipeline.FormatJSON}
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(strings.ToLower(f)); f != "" {
			out = append(out, f)
		}
	}
	return out
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatInches renders a paper or canvas size, e.g. "8.5 × 11 in".
func formatInches(w, h float64) string {
	return formatFloat(w) + " × " + formatFloat(h) + " in"
}
