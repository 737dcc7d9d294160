package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"datagrid/pkg/game/grid"
	"datagrid/pkg/game/renderer"
)

// NewSurface creates a surface with its own font cache. Call SetTarget
// before drawing.
func NewSurface() (*Surface, error) {
	fonts, err := newFontCache()
	if err != nil {
		return nil, err
	}
	return &Surface{fonts: fonts}, nil
}

// SetTarget points the surface at the image to draw on.
func (s *Surface) SetTarget(dst *ebiten.Image) {
	s.dst = dst
}

// MeasureText returns the advance width of str at size.
func (s *Surface) MeasureText(str string, size float64) float64 {
	return text.Advance(str, s.fonts.Face(size))
}

// FillRect fills an axis-aligned rectangle.
func (s *Surface) FillRect(x, y, w, h float64, c color.RGBA) {
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

// StrokePath strokes an open polyline.
func (s *Surface) StrokePath(pts []grid.Point, width float64, c color.RGBA) {
	if len(pts) < 2 {
		return
	}
	s.tracePath(pts, false)

	strokeOpts := &vector.StrokeOptions{Width: float32(width), MiterLimit: 10}
	drawOpts := &vector.DrawPathOptions{AntiAlias: true}
	drawOpts.ColorScale.ScaleWithColor(c)
	vector.StrokePath(s.dst, &s.path, strokeOpts, drawOpts)
}

// FillPath fills a closed polygon.
func (s *Surface) FillPath(pts []grid.Point, c color.RGBA) {
	if len(pts) < 3 {
		return
	}
	s.tracePath(pts, true)

	drawOpts := &vector.DrawPathOptions{AntiAlias: true}
	drawOpts.ColorScale.ScaleWithColor(c)
	vector.FillPath(s.dst, &s.path, nil, drawOpts)
}

// DrawText draws one line of text anchored at (x, y).
func (s *Surface) DrawText(str string, x, y, size float64, align renderer.Align, baseline renderer.Baseline, c color.RGBA) {
	face := s.fonts.Face(size)

	op := &text.DrawOptions{}
	op.PrimaryAlign = textAlign(align)
	switch baseline {
	case renderer.BaselineMiddle:
		op.SecondaryAlign = text.AlignCenter
	case renderer.BaselineAlphabetic:
		// text/v2 anchors at the top of the line box; move up by the ascent.
		y -= face.Metrics().HAscent
	}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(s.dst, str, face, op)
}

func (s *Surface) tracePath(pts []grid.Point, closed bool) {
	s.path.Reset()
	s.path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		s.path.LineTo(float32(p.X), float32(p.Y))
	}
	if closed {
		s.path.Close()
	}
}

func textAlign(a renderer.Align) text.Align {
	switch a {
	case renderer.AlignCenter:
		return text.AlignCenter
	case renderer.AlignEnd:
		return text.AlignEnd
	default:
		return text.AlignStart
	}
}
