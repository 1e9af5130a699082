package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/gosimple/slug"

	"github.com/matzehuels/printlayout/pkg/batch"
	"github.com/matzehuels/printlayout/pkg/observability"
)

// BatchOptions configure [Runner.RunBatch].
type BatchOptions struct {
	// Render holds the per-entry options. Layout and theme fields are
	// overwritten from each entry.
	Render Options
	// OutDir receives one subdirectory per entry.
	OutDir      string
	Concurrency int
	FailFast    bool
}

// EntryDir names an entry's output directory, e.g.
// "003_classic_harbor_light_sage_dark".
func EntryDir(index int, e batch.Entry) string {
	return fmt.Sprintf("%03d_%s_%s_%s", index+1, slug.Make(e.Layout), slug.Make(e.FrontTheme), slug.Make(e.BackTheme))
}

// RunBatch validates f against the catalog, then renders every entry
// concurrently and writes its artifacts under OutDir.
func (r *Runner) RunBatch(ctx context.Context, f batch.File, opts BatchOptions) ([]batch.Result, error) {
	if err := f.Validate(r.Catalog); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return nil, err
	}

	r.Logger.Info("running batch", "entries", len(f.Entries), "out", opts.OutDir)

	render := func(ctx context.Context, i int, e batch.Entry) ([]string, error) {
		o := opts.Render
		o.Layout, o.FrontTheme, o.BackTheme = e.Layout, e.FrontTheme, e.BackTheme
		o.Logger = r.Logger.With("entry", i+1)

		start := time.Now()
		res, err := r.Execute(ctx, o)
		if err != nil {
			observability.Pipeline().OnBatchEntry(ctx, i, e.Layout, time.Since(start), err)
			return nil, err
		}
		files, err := WriteArtifacts(filepath.Join(opts.OutDir, EntryDir(i, e)), res.Artifacts)
		observability.Pipeline().OnBatchEntry(ctx, i, e.Layout, time.Since(start), err)
		return files, err
	}

	return batch.Run(ctx, f.Entries, render, batch.Options{
		Concurrency: opts.Concurrency,
		FailFast:    opts.FailFast,
		Logger:      r.Logger,
	})
}

// WriteArtifacts writes each artifact to dir under its name and returns
// the written paths in a stable order.
func WriteArtifacts(dir string, artifacts map[string][]byte) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(artifacts))
	for name := range artifacts {
		names = append(names, name)
	}
	slices.Sort(names)

	paths := make([]string, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, artifacts[name], 0o644); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
