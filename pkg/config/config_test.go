package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/printlayout/pkg/errors"
	"github.com/matzehuels/printlayout/pkg/geometry"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load(\"\") = %+v, want defaults", cfg)
	}
	if cfg.Geometry() != geometry.DefaultCanvas() {
		t.Errorf("Geometry() = %+v, want %+v", cfg.Geometry(), geometry.DefaultCanvas())
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
[canvas]
dpi = 72

[ink]
color = "#abc"

[cache]
ttl = "90m"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Canvas.DPI != 72 {
		t.Errorf("DPI = %v, want 72", cfg.Canvas.DPI)
	}
	if cfg.Canvas.Width != 18 {
		t.Errorf("Width = %v, want default 18", cfg.Canvas.Width)
	}
	if cfg.Ink.Color != "#AABBCC" {
		t.Errorf("Ink.Color = %v, want normalized #AABBCC", cfg.Ink.Color)
	}
	if cfg.Cache.TTL.Duration != 90*time.Minute {
		t.Errorf("TTL = %v, want 90m", cfg.Cache.TTL)
	}
	if cfg.Page.FontFamily != "Georgia, serif" {
		t.Errorf("FontFamily = %q, want default", cfg.Page.FontFamily)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		code errors.Code
		msg  string
	}{
		{"unknown key", "[canvas]\ndepth = 3\n", errors.ErrCodeInvalidConfig, "canvas.depth"},
		{"bad toml", "[canvas\n", errors.ErrCodeInvalidConfig, ""},
		{"bad color", "[ink]\ncolor = \"navy\"\n", errors.ErrCodeInvalidConfig, ""},
		{"zero dpi", "[canvas]\ndpi = 0\n", errors.ErrCodeInvalidConfig, "dpi"},
		{"bad duration", "[cache]\nttl = \"soon\"\n", errors.ErrCodeInvalidConfig, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if !errors.Is(err, tt.code) {
				t.Fatalf("Load() error = %v, want code %v", err, tt.code)
			}
			if tt.msg != "" && !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("Load() error = %q, want substring %q", err, tt.msg)
			}
		})
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load() error = %v, want %v", err, errors.ErrCodeFileNotFound)
	}
}

func TestFind(t *testing.T) {
	dir := t.TempDir()
	if got := Find(dir); got != "" {
		t.Errorf("Find() = %q, want empty", got)
	}
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if got := Find(dir); got != path {
		t.Errorf("Find() = %q, want %q", got, path)
	}
}

func TestWriteRoundTrip(t *testing.T) {
	want := Default()
	want.Canvas.DPI = 300
	want.Cache.TTL = Duration{time.Hour}

	path := filepath.Join(t.TempDir(), FileName)
	if err := Write(path, want); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}
