package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/printlayout/pkg/cache"
	"github.com/matzehuels/printlayout/pkg/catalog"
	"github.com/matzehuels/printlayout/pkg/compose"
	"github.com/matzehuels/printlayout/pkg/config"
	"github.com/matzehuels/printlayout/pkg/geometry"
	"github.com/matzehuels/printlayout/pkg/layout"
	"github.com/matzehuels/printlayout/pkg/observability"
	"github.com/matzehuels/printlayout/pkg/sink"
	"github.com/matzehuels/printlayout/pkg/theme"
)

// Runner executes pipeline runs against one catalog. It holds no per-run
// state, so batch workers share a single Runner.
type Runner struct {
	Catalog *catalog.Catalog
	Config  config.Config
	Cache   cache.Cache
	Keyer   cache.Keyer
	Logger  *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching, a nil keyer
// uses DefaultKeyer and a nil logger uses log.Default().
func NewRunner(cat *catalog.Catalog, cfg config.Config, c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Catalog: cat,
		Config:  cfg,
		Cache:   c,
		Keyer:   keyer,
		Logger:  logger,
	}
}

// inputs are the loaded files a spec is composed from.
type inputs struct {
	Layout layout.Definition `json:"layout"`
	Front  theme.Theme       `json:"front"`
	Back   theme.Theme       `json:"back"`
}

// Execute runs load → compose → render.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = r.Logger
	}

	res := &Result{
		RunID:     uuid.NewString(),
		Artifacts: make(map[string][]byte),
	}
	logger = logger.With("run", res.RunID[:8])
	hooks := observability.Pipeline()

	// Stage 1: Load
	loadStart := time.Now()
	in, err := r.load(opts)
	res.Stats.LoadTime = time.Since(loadStart)
	hooks.OnStage(ctx, observability.StageLoad, opts.Layout, res.Stats.LoadTime, err)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}

	contentHash, err := cache.HashJSON(in)
	if err != nil {
		return nil, fmt.Errorf("load: hash inputs: %w", err)
	}
	res.SpecKey = r.Keyer.SpecKey(opts.Layout, cache.SpecKeyOpts{
		FrontTheme:  opts.FrontTheme,
		BackTheme:   opts.BackTheme,
		ContentHash: contentHash,
	})
	logger.Debug("loaded inputs", "layout", opts.Layout, "front", opts.FrontTheme, "back", opts.BackTheme,
		"duration", res.Stats.LoadTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Compose
	composeStart := time.Now()
	res.Page = compose.Compose(in.Layout, in.Front, in.Back, geometry.Point{})
	if opts.NeedsBlueprint() {
		canvas := r.Config.Geometry()
		origin := canvas.PaperOrigin(in.Layout.PaperSize.Width, in.Layout.PaperSize.Height)
		bp := compose.Compose(in.Layout, in.Front, in.Back, origin)
		res.Blueprint = &bp
	}
	res.Stats.ComposeTime = time.Since(composeStart)
	hooks.OnStage(ctx, observability.StageCompose, opts.Layout, res.Stats.ComposeTime, nil)
	logger.Debug("composed spec", "mode", res.Page.Mode, "captions", len(res.Page.Front.Caption),
		"duration", res.Stats.ComposeTime)

	// Stage 3: Render
	renderStart := time.Now()
	err = r.render(ctx, res, opts)
	res.Stats.RenderTime = time.Since(renderStart)
	hooks.OnStage(ctx, observability.StageRender, opts.Layout, res.Stats.RenderTime, err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	logger.Info("rendered layout",
		"layout", opts.Layout,
		"formats", opts.Formats,
		"artifacts", len(res.Artifacts),
		"cached", res.CacheInfo.Hits,
		"duration", res.Stats.RenderTime)

	return res, nil
}

func (r *Runner) load(opts Options) (inputs, error) {
	def, err := r.Catalog.Layout(opts.Layout)
	if err != nil {
		return inputs{}, err
	}
	front, err := r.Catalog.Theme(opts.FrontTheme)
	if err != nil {
		return inputs{}, err
	}
	back, err := r.Catalog.Theme(opts.BackTheme)
	if err != nil {
		return inputs{}, err
	}
	return inputs{Layout: def, Front: front, Back: back}, nil
}

// job is one artifact to produce.
type job struct {
	format string
	side   sink.Side
}

func (o *Options) jobs() []job {
	var jobs []job
	for _, f := range o.Formats {
		if f == FormatSVG || f == FormatPNG {
			for _, s := range o.Sides() {
				jobs = append(jobs, job{format: f, side: s})
			}
			continue
		}
		jobs = append(jobs, job{format: f})
	}
	return jobs
}

func (r *Runner) render(ctx context.Context, res *Result, opts Options) error {
	hooks := observability.Cache()
	for _, j := range opts.jobs() {
		if err := ctx.Err(); err != nil {
			return err
		}
		name := ArtifactName(j.format, j.side)
		key := r.Keyer.ArtifactKey(res.SpecKey, r.artifactKeyOpts(opts, j))

		if !opts.Refresh {
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				res.Artifacts[name] = data
				res.CacheInfo.Hits++
				hooks.OnCacheHit(ctx, name)
				continue
			}
		}
		hooks.OnCacheMiss(ctx, name)

		data, err := r.Render(res.Page, res.Blueprint, j.format, j.side, opts)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		res.Artifacts[name] = data
		res.CacheInfo.Misses++
		if err := r.Cache.Set(ctx, key, data, r.Config.Cache.TTL.Duration); err != nil {
			r.Logger.Warn("cache write failed", "artifact", name, "err", err)
		} else {
			hooks.OnCacheSet(ctx, name, len(data))
		}
	}
	return nil
}

// Render produces one artifact without touching the cache. blueprint may
// be nil for json and html.
func (r *Runner) Render(page compose.Spec, blueprint *compose.Spec, format string, side sink.Side, opts Options) ([]byte, error) {
	switch format {
	case FormatJSON:
		var jsonOpts []sink.JSONOption
		if opts.Dimensions {
			jsonOpts = append(jsonOpts, sink.WithJSONDimensions())
		}
		return sink.RenderJSON(page, jsonOpts...)

	case FormatHTML:
		out := sink.RenderHTML(page, sink.WithDefaultBackground(r.Config.Page.DefaultBackground))
		if opts.FillFont {
			out = sink.Fill(out, sink.Content{FontFamily: r.Config.Page.FontFamily})
		}
		return out, nil

	case FormatSVG, FormatPNG:
		if blueprint == nil {
			return nil, fmt.Errorf("%s needs a blueprint spec", format)
		}
		svgOpts := r.svgOptions(side)
		if format == FormatSVG {
			return sink.RenderSVG(*blueprint, svgOpts...), nil
		}
		pngOpts := []sink.PNGOption{sink.WithPNGSVGOptions(svgOpts...)}
		if opts.Scale > 0 {
			pngOpts = append(pngOpts, sink.WithScale(opts.Scale))
		}
		return sink.RenderPNG(*blueprint, pngOpts...)
	}
	return nil, ValidateFormat(format)
}

func (r *Runner) svgOptions(side sink.Side) []sink.SVGOption {
	return []sink.SVGOption{
		sink.WithCanvas(r.Config.Geometry()),
		sink.WithDPI(r.Config.Canvas.DPI),
		sink.WithInk(r.ink()),
		sink.WithSide(side),
	}
}

// ink maps the configured colors onto the blueprint palette.
func (r *Runner) ink() sink.Ink {
	ink := sink.DefaultInk()
	cfg := r.Config
	if cfg.Ink.Color != "" {
		ink.Line = cfg.Ink.Color
	}
	if cfg.Ink.CanvasColor != "" {
		ink.Canvas = cfg.Ink.CanvasColor
	}
	if cfg.Ink.Muted != "" {
		ink.Muted = cfg.Ink.Muted
	}
	if cfg.Page.DefaultBackground != "" {
		ink.Paper = cfg.Page.DefaultBackground
	}
	return ink
}

func (r *Runner) artifactKeyOpts(opts Options, j job) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: j.format}
	switch j.format {
	case FormatJSON:
		k.Dimensions = opts.Dimensions
	case FormatHTML:
		k.Page = string(r.Config.Page.DefaultBackground)
		if opts.FillFont {
			k.Page += "|" + r.Config.Page.FontFamily
		}
	case FormatSVG, FormatPNG:
		k.Side = j.side.String()
		k.DPI = r.Config.Canvas.DPI
		k.Canvas = fmt.Sprintf("%+v", r.Config.Geometry())
		k.Ink = fmt.Sprintf("%+v", r.ink())
		if j.format == FormatPNG {
			k.Scale = opts.Scale
		}
	}
	return k
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
