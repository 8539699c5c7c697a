package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/phanxgames/barrk"
)

// Config holds window, timer and rendering parameters. Fields missing from a
// config file keep their Default values.
type Config struct {
	Title  string `json:"title" yaml:"title" toml:"title"`
	Width  int    `json:"width" yaml:"width" toml:"width"`
	Height int    `json:"height" yaml:"height" toml:"height"`

	TickSeconds float64  `json:"tick_seconds" yaml:"tick_seconds" toml:"tick_seconds"`
	Utterances  []string `json:"utterances" yaml:"utterances" toml:"utterances"`

	FontPath         string  `json:"font_path" yaml:"font_path" toml:"font_path"`
	FontSize         float64 `json:"font_size" yaml:"font_size" toml:"font_size"`
	ButtonWidth      float64 `json:"button_width" yaml:"button_width" toml:"button_width"`
	ButtonHeight     float64 `json:"button_height" yaml:"button_height" toml:"button_height"`
	ColorFadeSeconds float64 `json:"color_fade_seconds" yaml:"color_fade_seconds" toml:"color_fade_seconds"`

	Inspector          bool    `json:"inspector" yaml:"inspector" toml:"inspector"`
	Diagnostics        bool    `json:"diagnostics" yaml:"diagnostics" toml:"diagnostics"`
	DiagnosticsSeconds float64 `json:"diagnostics_seconds" yaml:"diagnostics_seconds" toml:"diagnostics_seconds"`

	ScreenshotDir string `json:"screenshot_dir" yaml:"screenshot_dir" toml:"screenshot_dir"`
	Seed          uint64 `json:"seed" yaml:"seed" toml:"seed"` // 0 = random
	LogLevel      string `json:"log_level" yaml:"log_level" toml:"log_level"`
}

// Default returns the stock configuration: a 1280x720 window, three dogs,
// and a two second console bark.
func Default() Config {
	return Config{
		Title:              "barrk",
		Width:              1280,
		Height:             720,
		TickSeconds:        barrk.DefaultTickInterval.Seconds(),
		Utterances:         append([]string(nil), barrk.DefaultUtterances...),
		FontSize:           60,
		ButtonWidth:        150,
		ButtonHeight:       65,
		ColorFadeSeconds:   0.08,
		DiagnosticsSeconds: 1,
		ScreenshotDir:      "screenshots",
		LogLevel:           "info",
	}
}

// Load reads a configuration file over Default based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, fmt.Errorf("config: empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &cfg)
	case ".json":
		err = json.Unmarshal(b, &cfg)
	case ".toml":
		err = toml.Unmarshal(b, &cfg)
	default:
		return cfg, fmt.Errorf("config: unsupported config extension: %s", ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every invalid field. An empty utterance list wraps
// barrk.ErrNoSpeakers.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height))
	}
	if c.TickSeconds <= 0 {
		errs = append(errs, fmt.Errorf("tick_seconds %v must be positive", c.TickSeconds))
	}
	if len(c.Utterances) == 0 {
		errs = append(errs, fmt.Errorf("utterances: %w", barrk.ErrNoSpeakers))
	}
	if c.FontSize <= 0 {
		errs = append(errs, fmt.Errorf("font_size %v must be positive", c.FontSize))
	}
	if c.ButtonWidth <= 0 || c.ButtonHeight <= 0 {
		errs = append(errs, fmt.Errorf("button size %vx%v must be positive", c.ButtonWidth, c.ButtonHeight))
	}
	if c.ColorFadeSeconds < 0 {
		errs = append(errs, fmt.Errorf("color_fade_seconds %v must not be negative", c.ColorFadeSeconds))
	}
	if c.DiagnosticsSeconds <= 0 {
		errs = append(errs, fmt.Errorf("diagnostics_seconds %v must be positive", c.DiagnosticsSeconds))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// TickInterval returns TickSeconds as a duration.
func (c Config) TickInterval() time.Duration {
	return seconds(c.TickSeconds)
}

// DiagnosticsInterval returns DiagnosticsSeconds as a duration.
func (c Config) DiagnosticsInterval() time.Duration {
	return seconds(c.DiagnosticsSeconds)
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
