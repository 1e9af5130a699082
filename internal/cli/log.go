// Package cli implements the printlayout command-line interface.
//
// Commands operate on a base directory (--dir, default ".") laid out as
// described in package catalog. Rendering goes through a
// [pipeline.Runner] backed by an on-disk artifact cache under
// $XDG_CACHE_HOME/printlayout.
//
// # Commands
//
// The main commands are:
//   - render: resolve one layout with a front and back theme to html, json, svg or png
//   - spec / template: print the JSON spec or the HTML template to stdout
//   - list: show available layouts and themes
//   - theme: import Adobe Color palettes, show resolved slots
//   - migrate: split a legacy layouts.json into per-layout files
//   - batch: generate and run batch.json
//   - cache: manage the artifact cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/printlayout/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Rendered classic (12ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// logHooks reports pipeline stages and cache traffic at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnStage(_ context.Context, stage observability.Stage, layout string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("stage failed", "stage", stage, "layout", layout, "err", err)
		return
	}
	h.logger.Debug("stage done", "stage", stage, "layout", layout, "duration", d)
}

func (h logHooks) OnBatchEntry(_ context.Context, index int, layout string, d time.Duration, err error) {
	h.logger.Debug("batch entry", "index", index, "layout", layout, "duration", d, "ok", err == nil)
}

func (h logHooks) OnCacheHit(_ context.Context, artifact string) {
	h.logger.Debug("cache hit", "artifact", artifact)
}

func (h logHooks) OnCacheMiss(_ context.Context, artifact string) {
	h.logger.Debug("cache miss", "artifact", artifact)
}

func (h logHooks) OnCacheSet(_ context.Context, artifact string, size int) {
	h.logger.Debug("cache set", "artifact", artifact, "bytes", size)
}
