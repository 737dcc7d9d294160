// Package config handles datagrid configuration: defaults, an optional YAML
// file and command-line overrides.
package config

import (
	"fmt"
	"image/color"

	"datagrid/pkg/engine/logger"
	"datagrid/pkg/game/grid"
)

// Config holds all settings.
type Config struct {
	Window   WindowConfig        `yaml:"window"`
	Grid     GridConfig          `yaml:"grid"`
	Terminal TerminalConfig      `yaml:"terminal"`
	Snapshot SnapshotConfig      `yaml:"snapshot"`
	Server   ServerConfig        `yaml:"server"`
	Keys     map[string][]string `yaml:"keys,omitempty"` // Action name -> key codes
	Logging  LoggingConfig       `yaml:"logging"`
	Language string              `yaml:"language"`
}

// WindowConfig holds the Ebiten window settings.
type WindowConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Fullscreen bool    `yaml:"fullscreen"`
	TPS        int     `yaml:"tps"`
	ShowHUD    bool    `yaml:"show_hud"`
	HUDSize    float64 `yaml:"hud_size"`
}

// GridConfig selects a preset and optionally overrides parts of it. Zero
// speed, spacing and rows leave the preset untouched. The vanishing point
// fractions are pointers because 0 is a valid position; nil means unset.
type GridConfig struct {
	Preset  string   `yaml:"preset"`
	Speed   float64  `yaml:"speed,omitempty"`
	Spacing float64  `yaml:"spacing,omitempty"`
	Rows    int      `yaml:"rows,omitempty"`
	VanishX *float64 `yaml:"vanish_x,omitempty"`
	VanishY *float64 `yaml:"vanish_y,omitempty"`
	Labels  []string `yaml:"labels,omitempty"`
	Colors  []string `yaml:"colors,omitempty"` // "#RRGGBB", cycled over Labels
}

// TerminalConfig holds the text host settings.
type TerminalConfig struct {
	FPS int `yaml:"fps"`
	// CellWidth and CellHeight are the virtual pixel size of one character
	// cell. Cells are roughly twice as tall as they are wide.
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
}

// SnapshotConfig holds the offscreen PNG export settings.
type SnapshotConfig struct {
	Out    string  `yaml:"out"` // Directory for frame_NNNN.png files
	Frames int     `yaml:"frames"`
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Step   float64 `yaml:"step"` // Scroll distance between frames, in cells
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Addr      string `yaml:"addr"`
	WebRoot   string `yaml:"web_root"` // Empty serves the embedded page
	MaxWidth  int    `yaml:"max_width"`
	MaxHeight int    `yaml:"max_height"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:   1280,
			Height:  720,
			TPS:     60,
			ShowHUD: true,
			HUDSize: 14,
		},
		Grid: GridConfig{
			Preset: grid.DefaultPreset,
		},
		Terminal: TerminalConfig{
			FPS:        30,
			CellWidth:  8,
			CellHeight: 16,
		},
		Snapshot: SnapshotConfig{
			Out:    "frames",
			Frames: 1,
			Width:  1280,
			Height: 720,
			Step:   0.25,
		},
		Server: ServerConfig{
			Addr:      "127.0.0.1:8000",
			MaxWidth:  3840,
			MaxHeight: 2160,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Language: "en",
	}
}

// BuildGrid resolves the preset and applies the overrides, returning a
// validated configuration and catalog.
func (c *Config) BuildGrid() (grid.Config, *grid.Catalog, error) {
	p, err := grid.Preset(c.Grid.Preset)
	if err != nil {
		return grid.Config{}, nil, err
	}
	gc := p.Config
	if c.Grid.Speed > 0 {
		gc.Speed = c.Grid.Speed
	}
	if c.Grid.Spacing > 0 {
		gc.Spacing = c.Grid.Spacing
	}
	if c.Grid.Rows > 0 {
		gc.Rows = c.Grid.Rows
	}
	if c.Grid.VanishX != nil {
		gc.VanishX = *c.Grid.VanishX
	}
	if c.Grid.VanishY != nil {
		gc.VanishY = *c.Grid.VanishY
	}
	if err := gc.Validate(); err != nil {
		return grid.Config{}, nil, err
	}

	catalog := p.Catalog
	if len(c.Grid.Labels) > 0 {
		catalog, err = c.customCatalog(p.Catalog)
		if err != nil {
			return grid.Config{}, nil, err
		}
	}
	return gc, catalog, nil
}

// customCatalog builds a catalog from the configured labels, taking colors
// from the config or, failing that, from the preset.
func (c *Config) customCatalog(preset *grid.Catalog) (*grid.Catalog, error) {
	var colors []color.RGBA
	for _, s := range c.Grid.Colors {
		col, err := grid.ParseHex(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", grid.ErrInvalidCatalog, err)
		}
		colors = append(colors, col)
	}
	if len(colors) == 0 {
		for i := 0; i < preset.Len(); i++ {
			colors = append(colors, preset.At(i).Color)
		}
	}
	return grid.NewCatalog(grid.Zip(c.Grid.Labels, colors))
}

// LoggerOptions maps the logging section to logger options. The console
// writer is left to the caller since it depends on the host.
func (c *Config) LoggerOptions() logger.Options {
	opts := logger.Options{Level: c.Logging.Level}
	if c.Logging.LogFile != "" {
		opts.File = logger.DefaultFileConfig(c.Logging.LogFile)
	}
	return opts
}
