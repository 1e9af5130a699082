// Package config loads render settings from printlayout.toml.
//
// Every key is optional; absent keys keep the values from [Default].
//
//	[canvas]
//	width = 18
//	height = 24
//	inset = 0.25
//	title_block_height = 2.5
//	dpi = 150
//
//	[ink]
//	color = "#1E3D59"
//	canvas_color = "#F2F2F2"
//	muted = "#333333"
//
//	[page]
//	font_family = "Georgia, serif"
//	default_background = "#FFFFFF"
//
//	[cache]
//	ttl = "24h"
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/printlayout/pkg/errors"
	"github.com/matzehuels/printlayout/pkg/geometry"
	"github.com/matzehuels/printlayout/pkg/palette"
)

// FileName is the config file looked up in a base directory.
const FileName = "printlayout.toml"

// Canvas configures the blueprint sheet, in inches.
type Canvas struct {
	Width            float64 `toml:"width"`
	Height           float64 `toml:"height"`
	Inset            float64 `toml:"inset"`
	TitleBlockHeight float64 `toml:"title_block_height"`
	DPI              float64 `toml:"dpi"`
}

// Ink configures blueprint line and background colors.
type Ink struct {
	Color       palette.Color `toml:"color"`
	CanvasColor palette.Color `toml:"canvas_color"`
	Muted       palette.Color `toml:"muted"`
}

// Page configures the HTML page target.
type Page struct {
	FontFamily        string        `toml:"font_family"`
	DefaultBackground palette.Color `toml:"default_background"`
}

// Cache configures the artifact cache.
type Cache struct {
	TTL Duration `toml:"ttl"`
}

// Config is the full render configuration.
type Config struct {
	Canvas Canvas `toml:"canvas"`
	Ink    Ink    `toml:"ink"`
	Page   Page   `toml:"page"`
	Cache  Cache  `toml:"cache"`
}

// Duration decodes TOML strings such as "90m" via time.ParseDuration.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Canvas: Canvas{Width: 18, Height: 24, Inset: 0.25, TitleBlockHeight: 2.5, DPI: 150},
		Ink:    Ink{Color: "#1E3D59", CanvasColor: "#F2F2F2", Muted: "#333333"},
		Page:   Page{FontFamily: "Georgia, serif", DefaultBackground: "#FFFFFF"},
		Cache:  Cache{TTL: Duration{24 * time.Hour}},
	}
}

// Geometry returns the canvas as a geometry.Canvas.
func (c Config) Geometry() geometry.Canvas {
	return geometry.Canvas{
		Width:            c.Canvas.Width,
		Height:           c.Canvas.Height,
		Inset:            c.Canvas.Inset,
		TitleBlockHeight: c.Canvas.TitleBlockHeight,
	}
}

// Load reads path over the defaults. An empty path returns Default.
// Unknown keys are rejected so typos do not silently fall back.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Find returns dir/printlayout.toml when it exists, or "".
func Find(dir string) string {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}

// Validate checks sizes and normalizes colors.
func (c *Config) Validate() error {
	cv := c.Canvas
	if cv.Width <= 0 || cv.Height <= 0 || cv.DPI <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "canvas width, height and dpi must be positive")
	}
	if cv.Inset < 0 || cv.TitleBlockHeight < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "canvas inset and title_block_height must not be negative")
	}
	if c.Cache.TTL.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cache ttl must not be negative")
	}

	for _, f := range []*palette.Color{&c.Ink.Color, &c.Ink.CanvasColor, &c.Ink.Muted, &c.Page.DefaultBackground} {
		parsed, err := palette.ParseColor(string(*f))
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "color")
		}
		*f = parsed
	}
	return nil
}

// Write encodes c as TOML.
func Write(path string, c Config) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := toml.NewEncoder(f).Encode(c); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
