package batch

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome of one entry. Results are returned in entry order.
// An entry that never ran because of a fail-fast stop or cancellation has
// Skipped set and Err holding the cause.
type Result struct {
	Index    int
	Entry    Entry
	Files    []string
	Duration time.Duration
	Skipped  bool
	Err      error
}

// Func renders one entry and returns the files it wrote.
type Func func(ctx context.Context, index int, e Entry) ([]string, error)

// Options control [Run].
type Options struct {
	// Concurrency bounds parallel entries. Zero uses GOMAXPROCS.
	Concurrency int
	// FailFast cancels outstanding entries on the first failure.
	FailFast bool
	Logger   *log.Logger
}

// Run calls fn for every entry with bounded concurrency. Without FailFast
// every entry runs and the returned error combines all failures.
// Cancellation of ctx stops scheduling new entries.
func Run(ctx context.Context, entries []Entry, fn Func, opts Options) ([]Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	limit := opts.Concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(entries))
	for i, e := range entries {
		results[i] = Result{Index: i, Entry: e, Skipped: true}
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, e := range entries {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			results[i] = runOne(gctx, i, e, fn, logger)
			if opts.FailFast {
				return results[i].Err
			}
			return nil
		})
	}
	groupErr := g.Wait()

	for i := range results {
		if results[i].Skipped && results[i].Err == nil {
			results[i].Err = skipped(i, entries[i], context.Cause(gctx))
		}
	}

	if err := ctx.Err(); err != nil {
		return results, err
	}
	if opts.FailFast && groupErr != nil {
		return results, groupErr
	}

	var errs error
	for _, r := range results {
		if r.Err != nil && !r.Skipped {
			errs = multierr.Append(errs, r.Err)
		}
	}
	return results, errs
}

func runOne(ctx context.Context, i int, e Entry, fn Func, logger *log.Logger) Result {
	res := Result{Index: i, Entry: e}
	if ctx.Err() != nil {
		res.Skipped = true
		res.Err = skipped(i, e, context.Cause(ctx))
		return res
	}

	start := time.Now()
	files, err := fn(ctx, i, e)
	res.Files, res.Duration = files, time.Since(start)
	if err != nil {
		res.Err = fmt.Errorf("entry %d (%s): %w", i, e.Layout, err)
		logger.Warn("Entry failed", "index", i, "layout", e.Layout, "err", err)
		return res
	}
	logger.Debug("Entry rendered", "index", i, "layout", e.Layout, "files", len(files), "duration", res.Duration)
	return res
}

func skipped(i int, e Entry, cause error) error {
	return fmt.Errorf("entry %d (%s) skipped: %w", i, e.Layout, cause)
}
