package renderer

import (
	"image/color"

	"datagrid/pkg/game/grid"
)

// Align is the horizontal anchoring of drawn text.
type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
)

// Baseline is the vertical anchoring of drawn text.
type Baseline int

const (
	BaselineTop Baseline = iota
	BaselineMiddle
	BaselineAlphabetic
)

// Surface defines the drawing operations the grid renderer needs from a
// backend. Implementations include the Ebiten window, the terminal cell
// buffer and the offscreen gg context. Point slices passed in are only valid
// for the duration of the call.
type Surface interface {
	// MeasureText returns the advance width of s at the given font size
	grid.Measurer

	// FillRect fills an axis-aligned rectangle
	FillRect(x, y, w, h float64, c color.RGBA)

	// StrokePath strokes an open polyline
	StrokePath(pts []grid.Point, width float64, c color.RGBA)

	// FillPath fills a closed polygon
	FillPath(pts []grid.Point, c color.RGBA)

	// DrawText draws a single line of text anchored at (x, y)
	DrawText(s string, x, y, size float64, align Align, baseline Baseline, c color.RGBA)
}
