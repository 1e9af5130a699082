package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/printlayout/pkg/batch"
	"github.com/matzehuels/printlayout/pkg/cache"
	"github.com/matzehuels/printlayout/pkg/catalog/catalogtest"
	"github.com/matzehuels/printlayout/pkg/config"
	"github.com/matzehuels/printlayout/pkg/errors"
	"github.com/matzehuels/printlayout/pkg/observability"
	"github.com/matzehuels/printlayout/pkg/sink"
)

func testRunner(t *testing.T, c cache.Cache) *Runner {
	t.Helper()
	cat := catalogtest.New(t, "classic", "double_wide")
	cfg := config.Default()
	cfg.Canvas.DPI = 20
	return NewRunner(cat, cfg, c, nil, log.New(&bytes.Buffer{}))
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"json", false},
		{"html", false},
		{"svg", false},
		{"png", false},
		{"pdf", true},
		{"SVG", true},
		{"", true},
	}
	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %s", tt.format, errors.GetCode(err))
		}
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{"complete", Options{Layout: "a", FrontTheme: "x", BackTheme: "y"}, false},
		{"no layout", Options{FrontTheme: "x", BackTheme: "y"}, true},
		{"no back", Options{Layout: "a", FrontTheme: "x"}, true},
		{"bad side", Options{Layout: "a", FrontTheme: "x", BackTheme: "y", Side: "top"}, true},
		{"bad format", Options{Layout: "a", FrontTheme: "x", BackTheme: "y", Formats: []string{"pdf"}}, true},
		{"negative scale", Options{Layout: "a", FrontTheme: "x", BackTheme: "y", Scale: -1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	o := Options{Layout: "a", FrontTheme: "x", BackTheme: "y"}
	if err := o.Validate(); err != nil {
		t.Fatal(err)
	}
	if len(o.Formats) != 1 || o.Formats[0] != FormatJSON || o.Side != SideBoth {
		t.Errorf("defaults = formats %v side %q", o.Formats, o.Side)
	}
}

func TestArtifactName(t *testing.T) {
	tests := []struct {
		format string
		side   sink.Side
		want   string
	}{
		{FormatJSON, sink.SideFront, "spec.json"},
		{FormatHTML, sink.SideBack, "page.html"},
		{FormatSVG, sink.SideFront, "front.svg"},
		{FormatPNG, sink.SideBack, "back.png"},
	}
	for _, tt := range tests {
		if got := ArtifactName(tt.format, tt.side); got != tt.want {
			t.Errorf("ArtifactName(%s, %v) = %q, want %q", tt.format, tt.side, got, tt.want)
		}
	}
}

func TestExecute(t *testing.T) {
	r := testRunner(t, nil)

	res, err := r.Execute(context.Background(), Options{
		Layout:     "classic",
		FrontTheme: "harbor_light",
		BackTheme:  "sage_dark",
		Formats:    []string{FormatJSON, FormatHTML, FormatSVG},
		Side:       SideFront,
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	if res.RunID == "" {
		t.Error("RunID should be set")
	}
	for _, name := range []string{"spec.json", "page.html", "front.svg"} {
		if len(res.Artifacts[name]) == 0 {
			t.Errorf("missing artifact %s", name)
		}
	}
	if _, ok := res.Artifacts["back.svg"]; ok {
		t.Error("back.svg rendered for front-only run")
	}
	if res.Blueprint == nil {
		t.Fatal("blueprint spec should be composed for svg")
	}
	if res.Page.Paper.X != 0 || res.Page.Paper.Y != 0 {
		t.Errorf("page spec should sit at the origin, got %+v", res.Page.Paper)
	}
	if res.Blueprint.Paper.X == 0 {
		t.Error("blueprint spec should be placed on the canvas")
	}

	var spec struct {
		Front struct{ Theme string } `json:"front"`
		Back  struct{ Theme string } `json:"back"`
	}
	if err := json.Unmarshal(res.Artifacts["spec.json"], &spec); err != nil {
		t.Fatal(err)
	}
	if spec.Front.Theme != "harbor_light" || spec.Back.Theme != "sage_dark" {
		t.Errorf("themes = %q / %q", spec.Front.Theme, spec.Back.Theme)
	}
}

func TestExecuteJSONOnlySkipsBlueprint(t *testing.T) {
	r := testRunner(t, nil)
	res, err := r.Execute(context.Background(), Options{Layout: "classic", FrontTheme: "harbor_light", BackTheme: "harbor_dark"})
	if err != nil {
		t.Fatal(err)
	}
	if res.Blueprint != nil {
		t.Error("json-only run should not compose a blueprint")
	}
}

func TestExecuteFillFont(t *testing.T) {
	r := testRunner(t, nil)
	res, err := r.Execute(context.Background(), Options{
		Layout: "classic", FrontTheme: "harbor_light", BackTheme: "harbor_dark",
		Formats: []string{FormatHTML}, FillFont: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	html := string(res.Artifacts["page.html"])
	if !strings.Contains(html, "font-family: Georgia, serif;") {
		t.Error("configured font family not filled")
	}
	if !strings.Contains(html, sink.PlaceholderCaption) {
		t.Error("content placeholders should remain")
	}
}

func TestExecuteNotFound(t *testing.T) {
	r := testRunner(t, nil)
	_, err := r.Execute(context.Background(), Options{Layout: "missing", FrontTheme: "harbor_light", BackTheme: "harbor_dark"})
	if !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("error = %v, want NOT_FOUND", err)
	}
	if !strings.HasPrefix(err.Error(), "load: ") {
		t.Errorf("error should carry the stage: %v", err)
	}
}

func TestExecuteCacheHit(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := testRunner(t, c)
	opts := Options{
		Layout: "double_wide", FrontTheme: "sage_light", BackTheme: "harbor_dark",
		Formats: []string{FormatJSON, FormatPNG},
	}

	first, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("first Execute() error: %v", err)
	}
	if first.CacheInfo.Hits != 0 || first.CacheInfo.Misses != 3 {
		t.Errorf("first run cache = %+v, want 3 misses", first.CacheInfo)
	}

	second, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("second Execute() error: %v", err)
	}
	if !second.CacheInfo.RenderHit() {
		t.Errorf("second run cache = %+v, want all hits", second.CacheInfo)
	}
	if !bytes.Equal(first.Artifacts["front.png"], second.Artifacts["front.png"]) {
		t.Error("cached png differs")
	}

	opts.Refresh = true
	third, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if third.CacheInfo.Hits != 0 {
		t.Error("Refresh should bypass the cache")
	}
}

func TestExecuteCacheInvalidatedByEdit(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := testRunner(t, c)
	opts := Options{Layout: "classic", FrontTheme: "harbor_light", BackTheme: "harbor_dark"}

	first, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}

	def, err := r.Catalog.Layout("classic")
	if err != nil {
		t.Fatal(err)
	}
	def.Notes = "Float mount"
	if _, err := r.Catalog.SaveLayout(def); err != nil {
		t.Fatal(err)
	}

	second, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if second.SpecKey == first.SpecKey {
		t.Error("editing the layout should change the spec key")
	}
	if second.CacheInfo.Hits != 0 {
		t.Error("edited layout should not hit stale artifacts")
	}
}

func TestRunBatch(t *testing.T) {
	r := testRunner(t, nil)
	out := t.TempDir()
	f := batch.File{Entries: []batch.Entry{
		{Layout: "classic", FrontTheme: "harbor_light", BackTheme: "sage_dark"},
		{Layout: "double_wide", FrontTheme: "sage_light", BackTheme: "harbor_dark"},
	}}

	results, err := r.RunBatch(context.Background(), f, BatchOptions{
		Render:      Options{Formats: []string{FormatJSON, FormatSVG}},
		OutDir:      out,
		Concurrency: 2,
	})
	if err != nil {
		t.Fatalf("RunBatch() error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}
	for i, res := range results {
		if len(res.Files) != 3 {
			t.Errorf("entry %d files = %v, want spec.json + 2 svgs", i, res.Files)
		}
	}

	dir := filepath.Join(out, EntryDir(1, f.Entries[1]))
	if dir != filepath.Join(out, "002_double_wide_sage_light_harbor_dark") {
		t.Errorf("entry dir = %s", dir)
	}
	for _, name := range []string{"spec.json", "front.svg", "back.svg"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
}

func TestRunBatchInvalid(t *testing.T) {
	r := testRunner(t, nil)
	f := batch.File{Entries: []batch.Entry{{Layout: "nope", FrontTheme: "harbor_light", BackTheme: "harbor_dark"}}}
	_, err := r.RunBatch(context.Background(), f, BatchOptions{OutDir: t.TempDir()})
	if !errors.Is(err, errors.ErrCodeInvalidBatch) {
		t.Errorf("error = %v, want INVALID_BATCH", err)
	}
}

func TestWriteArtifacts(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	paths, err := WriteArtifacts(dir, map[string][]byte{"b.svg": []byte("b"), "a.json": []byte("a")})
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 2 || filepath.Base(paths[0]) != "a.json" || filepath.Base(paths[1]) != "b.svg" {
		t.Errorf("paths = %v", paths)
	}
	data, _ := os.ReadFile(paths[1])
	if string(data) != "b" {
		t.Errorf("b.svg = %q", data)
	}
}

type recordingHooks struct {
	observability.NoopPipelineHooks
	observability.NoopCacheHooks

	mu     sync.Mutex
	stages []observability.Stage
	hits   []string
	misses []string
	sets   int
}

func (h *recordingHooks) OnStage(_ context.Context, s observability.Stage, _ string, _ time.Duration, _ error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.stages = append(h.stages, s)
}

func (h *recordingHooks) OnCacheHit(_ context.Context, artifact string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.hits = append(h.hits, artifact)
}

func (h *recordingHooks) OnCacheMiss(_ context.Context, artifact string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.misses = append(h.misses, artifact)
}

func (h *recordingHooks) OnCacheSet(context.Context, string, int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sets++
}

func TestExecuteEmitsHooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetPipelineHooks(hooks)
	observability.SetCacheHooks(hooks)
	t.Cleanup(observability.Reset)

	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := testRunner(t, c)
	opts := Options{Layout: "classic", FrontTheme: "harbor_light", BackTheme: "harbor_dark", Formats: []string{FormatHTML}}

	for range 2 {
		if _, err := r.Execute(context.Background(), opts); err != nil {
			t.Fatal(err)
		}
	}

	want := []observability.Stage{
		observability.StageLoad, observability.StageCompose, observability.StageRender,
		observability.StageLoad, observability.StageCompose, observability.StageRender,
	}
	if len(hooks.stages) != len(want) {
		t.Fatalf("stages = %v, want %v", hooks.stages, want)
	}
	for i := range want {
		if hooks.stages[i] != want[i] {
			t.Errorf("stage %d = %s, want %s", i, hooks.stages[i], want[i])
		}
	}
	if len(hooks.misses) != 1 || len(hooks.hits) != 1 || hooks.sets != 1 {
		t.Errorf("cache events = %d misses, %d hits, %d sets, want 1 each", len(hooks.misses), len(hooks.hits), hooks.sets)
	}
	if len(hooks.hits) == 1 && hooks.hits[0] != "page.html" {
		t.Errorf("hit artifact = %q, want page.html", hooks.hits[0])
	}
}

func TestExecuteLoadFailureReportsStage(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetPipelineHooks(hooks)
	t.Cleanup(observability.Reset)

	r := testRunner(t, nil)
	_, err := r.Execute(context.Background(), Options{Layout: "missing", FrontTheme: "harbor_light", BackTheme: "harbor_dark"})
	if err == nil {
		t.Fatal("expected error")
	}
	if len(hooks.stages) != 1 || hooks.stages[0] != observability.StageLoad {
		t.Errorf("stages = %v, want only load", hooks.stages)
	}
}
