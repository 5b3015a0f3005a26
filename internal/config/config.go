// Package config loads skelrender settings from a YAML file and the
// environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"

	"github.com/gogpu/skeleton"
	"github.com/gogpu/skeleton/internal/imageio"
	"github.com/gogpu/skeleton/internal/raster"
)

// Config holds rendering and output settings.
type Config struct {
	// Width and Height fix the canvas size; zero derives it.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Offset, when set, replaces the fitted offset.
	Offset *Offset `yaml:"offset,omitempty"`

	Padding    int     `yaml:"padding"`
	BlurRadius float64 `yaml:"blur_radius"`
	LineCap    string  `yaml:"line_cap"`

	// Scale resizes both output images; 1 keeps the canvas size.
	Scale  float64 `yaml:"scale"`
	Format string  `yaml:"format"`

	Workers  int    `yaml:"workers"`
	LogLevel string `yaml:"log_level"`
}

// Offset is a translation applied to every pen position.
type Offset struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Padding:    skeleton.DefaultPadding,
		BlurRadius: skeleton.DefaultBlurRadius,
		LineCap:    raster.CapRound.String(),
		Scale:      1,
		Format:     string(imageio.PNG),
		Workers:    runtime.NumCPU(),
		LogLevel:   "info",
	}
}

// Load reads path on top of the defaults. An empty path returns the
// defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides settings from SKELETON_* environment variables.
func (c *Config) ApplyEnv() error {
	ints := map[string]*int{
		"SKELETON_WIDTH":   &c.Width,
		"SKELETON_HEIGHT":  &c.Height,
		"SKELETON_PADDING": &c.Padding,
		"SKELETON_WORKERS": &c.Workers,
	}
	for key, dst := range ints {
		if v := os.Getenv(key); v != "" {
			n, err := cast.ToIntE(v)
			if err != nil {
				return fmt.Errorf("config: %s: %w", key, err)
			}
			*dst = n
		}
	}

	floats := map[string]*float64{
		"SKELETON_BLUR_RADIUS": &c.BlurRadius,
		"SKELETON_SCALE":       &c.Scale,
	}
	for key, dst := range floats {
		if v := os.Getenv(key); v != "" {
			f, err := cast.ToFloat64E(v)
			if err != nil {
				return fmt.Errorf("config: %s: %w", key, err)
			}
			*dst = f
		}
	}

	c.LineCap = getEnv("SKELETON_LINE_CAP", c.LineCap)
	c.Format = getEnv("SKELETON_FORMAT", c.Format)
	c.LogLevel = getEnv("SKELETON_LOG_LEVEL", c.LogLevel)
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Width < 0 || c.Height < 0 || c.Width > skeleton.MaxCanvasSize || c.Height > skeleton.MaxCanvasSize {
		return fmt.Errorf("config: invalid size %dx%d", c.Width, c.Height)
	}
	if (c.Width == 0) != (c.Height == 0) {
		return fmt.Errorf("config: width and height must be set together")
	}
	if c.Padding < 0 {
		return fmt.Errorf("config: negative padding %d", c.Padding)
	}
	if !(c.BlurRadius >= 0 && c.BlurRadius <= skeleton.MaxBlurRadius) {
		return fmt.Errorf("config: blur radius %v outside [0, %v]", c.BlurRadius, skeleton.MaxBlurRadius)
	}
	if _, ok := raster.ParseLineCap(c.LineCap); !ok {
		return fmt.Errorf("config: unknown line cap %q", c.LineCap)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("config: scale must be positive, got %v", c.Scale)
	}
	if _, err := imageio.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Workers < 1 {
		return fmt.Errorf("config: workers must be at least 1, got %d", c.Workers)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Options converts the rendering settings to skeleton options.
func (c *Config) Options() []skeleton.Option {
	lineCap, _ := raster.ParseLineCap(c.LineCap)
	opts := []skeleton.Option{
		skeleton.WithPadding(c.Padding),
		skeleton.WithBlurRadius(c.BlurRadius),
		skeleton.WithLineCap(lineCap),
	}
	if c.Width > 0 && c.Height > 0 {
		opts = append(opts, skeleton.WithSize(c.Width, c.Height))
	}
	if c.Offset != nil {
		opts = append(opts, skeleton.WithOffset(c.Offset.X, c.Offset.Y))
	}
	return opts
}

// OutputFormat returns the parsed output format.
func (c *Config) OutputFormat() imageio.Format {
	f, err := imageio.ParseFormat(c.Format)
	if err != nil {
		return imageio.PNG
	}
	return f
}

// Level returns the configured slog level.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("config: log level: %w", err)
	}
	return l, nil
}
