// Package grid holds the perspective model for the scrolling data grid:
// configuration, the tile catalog, projection math, row/tile iteration,
// the checkerboard rule and label fitting. Everything in here is pure and
// recomputed every frame.
package grid

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

// Sentinel errors returned (wrapped) by validation.
var (
	ErrInvalidConfig  = errors.New("invalid grid config")
	ErrInvalidCatalog = errors.New("invalid tile catalog")
	ErrUnknownPreset  = errors.New("unknown preset")
)

// MaxColumnsPerSide caps how many columns are walked either side of the
// vanishing column in a single row.
const MaxColumnsPerSide = 256

// TextConfig controls label fitting inside a tile.
type TextConfig struct {
	VisibleScale       float64 // Labels are skipped below this tile scale
	SizeFactor         float64 // Font size per unit of scale
	FitFactor          float64 // Font size cap as a fraction of the smaller tile side
	MinSize            float64 // Font size floor (px)
	WidthFraction      float64 // Max label width relative to tile width before wrapping
	ShrinkFactor       float64 // Font shrink applied when a label overflows
	HeightFraction     float64 // Max two-line block height relative to tile height
	SingleLineFactor   float64 // Fallback font size as a fraction of tile height
	LineHeight         float64 // Line advance as a multiple of font size
	LuminanceThreshold float64 // Fills brighter than this get dark text
	DarkText           color.RGBA
	LightText          color.RGBA
}

// Config is the immutable per-session configuration of the grid.
// Depth increases moving away from the vanishing point, i.e. down the screen.
type Config struct {
	VanishX       float64 // Vanishing point X as a fraction of viewport width
	VanishY       float64 // Vanishing point Y (horizon) as a fraction of viewport height
	Spacing       float64 // Base cell spacing in pixels
	Speed         float64 // Scroll speed
	Rows          int     // Depth rows considered per frame
	Coverage      float64 // Horizontal overscan factor relative to viewport width
	ScaleFloor    float64 // Minimum scale, keeps cell sizes non-zero
	ScaleDivisor  float64 // K: how quickly tiles shrink toward the horizon
	CullMargin    float64 // Extra pixels kept around the viewport before culling
	GridLineWidth float64
	Background    color.RGBA
	GridLine      color.RGBA
	Text          TextConfig
}

// DefaultText returns the label fitting parameters used by every preset
// unless overridden.
func DefaultText() TextConfig {
	return TextConfig{
		VisibleScale:       0.3,
		SizeFactor:         16,
		FitFactor:          0.4,
		MinSize:            6,
		WidthFraction:      0.85,
		ShrinkFactor:       0.8,
		HeightFraction:     0.8,
		SingleLineFactor:   0.35,
		LineHeight:         1.2,
		LuminanceThreshold: 150,
		DarkText:           color.RGBA{20, 20, 28, 255},
		LightText:          color.RGBA{245, 245, 250, 255},
	}
}

// DefaultConfig returns the classic configuration: horizon at mid-screen,
// 100px spacing, speed 1.5 and 100 rows.
func DefaultConfig() Config {
	return Config{
		VanishX:       0.5,
		VanishY:       0.5,
		Spacing:       100,
		Speed:         1.5,
		Rows:          100,
		Coverage:      3,
		ScaleFloor:    0.05,
		ScaleDivisor:  0.8,
		CullMargin:    100,
		GridLineWidth: 1,
		Background:    color.RGBA{0, 0, 0, 255},
		GridLine:      color.RGBA{40, 60, 90, 255},
		Text:          DefaultText(),
	}
}

// Validate rejects degenerate configurations. These are programming errors and
// are caught at construction time rather than tolerated mid-animation.
func (c Config) Validate() error {
	finite := []struct {
		name string
		v    float64
	}{
		{"vanish_x", c.VanishX},
		{"vanish_y", c.VanishY},
		{"spacing", c.Spacing},
		{"speed", c.Speed},
		{"coverage", c.Coverage},
		{"scale_floor", c.ScaleFloor},
		{"scale_divisor", c.ScaleDivisor},
		{"cull_margin", c.CullMargin},
	}
	for _, f := range finite {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidConfig, f.name)
		}
	}

	switch {
	case c.Spacing <= 0:
		return fmt.Errorf("%w: spacing must be > 0, got %v", ErrInvalidConfig, c.Spacing)
	case c.Rows <= 0:
		return fmt.Errorf("%w: rows must be > 0, got %d", ErrInvalidConfig, c.Rows)
	case c.ScaleFloor <= 0:
		return fmt.Errorf("%w: scale_floor must be > 0, got %v", ErrInvalidConfig, c.ScaleFloor)
	case c.ScaleDivisor <= 0:
		return fmt.Errorf("%w: scale_divisor must be > 0, got %v", ErrInvalidConfig, c.ScaleDivisor)
	case c.Coverage < 1:
		return fmt.Errorf("%w: coverage must be >= 1, got %v", ErrInvalidConfig, c.Coverage)
	case c.VanishX < 0 || c.VanishX > 1:
		return fmt.Errorf("%w: vanish_x must be within [0,1], got %v", ErrInvalidConfig, c.VanishX)
	case c.VanishY < 0 || c.VanishY > 1:
		return fmt.Errorf("%w: vanish_y must be within [0,1], got %v", ErrInvalidConfig, c.VanishY)
	case c.Speed < 0:
		return fmt.Errorf("%w: speed must be >= 0, got %v", ErrInvalidConfig, c.Speed)
	case c.CullMargin < 0:
		return fmt.Errorf("%w: cull_margin must be >= 0, got %v", ErrInvalidConfig, c.CullMargin)
	}

	t := c.Text
	if t.MinSize <= 0 || t.SizeFactor <= 0 || t.FitFactor <= 0 {
		return fmt.Errorf("%w: text sizes must be > 0", ErrInvalidConfig)
	}
	if t.ShrinkFactor <= 0 || t.ShrinkFactor > 1 {
		return fmt.Errorf("%w: text shrink_factor must be within (0,1], got %v", ErrInvalidConfig, t.ShrinkFactor)
	}
	if t.WidthFraction <= 0 || t.HeightFraction <= 0 || t.LineHeight <= 0 || t.SingleLineFactor <= 0 {
		return fmt.Errorf("%w: text fractions must be > 0", ErrInvalidConfig)
	}
	return nil
}
