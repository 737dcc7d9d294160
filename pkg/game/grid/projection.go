package grid

import "math"

// Point is a screen-space position in pixels.
type Point struct {
	X, Y float64
}

// Projection maps logical depth to screen space for one viewport.
// It is a value type and is rebuilt every frame.
type Projection struct {
	cfg    Config
	width  float64
	height float64
	vpX    float64
	vpY    float64
}

// NewProjection builds the projection for a viewport. Negative sizes are
// treated as zero.
func NewProjection(cfg Config, width, height int) Projection {
	w := math.Max(0, float64(width))
	h := math.Max(0, float64(height))
	return Projection{
		cfg:    cfg,
		width:  w,
		height: h,
		vpX:    cfg.VanishX * w,
		vpY:    cfg.VanishY * h,
	}
}

// VanishingPoint returns the screen position of the vanishing point.
func (p Projection) VanishingPoint() Point {
	return Point{p.vpX, p.vpY}
}

// Size returns the viewport size used by the projection.
func (p Projection) Size() (w, h float64) {
	return p.width, p.height
}

// ScreenY returns the screen Y of a depth.
func (p Projection) ScreenY(depth float64) float64 {
	return p.vpY + depth*p.cfg.Spacing
}

// Scale returns the size multiplier at a depth. It never drops below the
// configured floor, including for a zero-height viewport.
func (p Projection) Scale(depth float64) float64 {
	denom := p.height * p.cfg.ScaleDivisor
	if denom <= 0 {
		return p.cfg.ScaleFloor
	}
	s := math.Abs(p.ScreenY(depth)-p.vpY) / denom
	if math.IsNaN(s) || s < p.cfg.ScaleFloor {
		return p.cfg.ScaleFloor
	}
	return s
}

// CellSize returns the projected cell size at a depth.
func (p Projection) CellSize(depth float64) float64 {
	return p.cfg.Spacing * p.Scale(depth)
}

// ColumnX returns the screen X of column edge col at a depth.
func (p Projection) ColumnX(col int, depth float64) float64 {
	return p.vpX + float64(col)*p.CellSize(depth)
}

// Visible reports whether a screen Y lies within the culling band.
func (p Projection) Visible(y float64) bool {
	return y >= p.vpY-p.cfg.CullMargin && y <= p.height+p.cfg.CullMargin
}

// Below reports whether a screen Y lies past the bottom of the culling band.
func (p Projection) Below(y float64) bool {
	return y > p.height+p.cfg.CullMargin
}
