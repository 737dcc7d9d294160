// Package headless renders grid frames offscreen with gg and encodes them as
// PNG, for snapshots and the HTTP frame endpoint.
package headless

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"go.uber.org/zap"
	"golang.org/x/image/font/gofont/goregular"

	"datagrid/pkg/engine/logger"
	"datagrid/pkg/game/grid"
	"datagrid/pkg/game/renderer"
)

// loadFont parses the embedded label font once per process.
var loadFont = sync.OnceValues(func() (*text.FontSource, error) {
	return text.NewFontSource(goregular.TTF)
})

// Surface is a renderer.Surface drawing into a gg context.
type Surface struct {
	dc    *gg.Context
	fonts *renderer.FaceCache[text.Face]
}

// NewSurface creates an offscreen surface of the given size.
func NewSurface(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("surface size %dx%d: must be positive", width, height)
	}
	source, err := loadFont()
	if err != nil {
		return nil, fmt.Errorf("load label font: %w", err)
	}
	return &Surface{
		dc: gg.NewContext(width, height),
		fonts: renderer.NewFaceCache(renderer.FaceCacheSize, func(size float64) text.Face {
			return source.Face(size)
		}),
	}, nil
}

// Close releases the drawing context.
func (s *Surface) Close() error {
	return s.dc.Close()
}

// Size returns the surface size in pixels.
func (s *Surface) Size() (int, int) {
	return s.dc.Width(), s.dc.Height()
}

// Image returns the rendered pixels.
func (s *Surface) Image() image.Image {
	return s.dc.Image()
}

// EncodePNG writes the current pixels as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	return s.dc.EncodePNG(w)
}

// SavePNG writes the current pixels to a PNG file.
func (s *Surface) SavePNG(path string) error {
	return s.dc.SavePNG(path)
}

func (s *Surface) MeasureText(str string, size float64) float64 {
	w, _ := text.Measure(str, s.fonts.Face(size))
	return w
}

func (s *Surface) FillRect(x, y, w, h float64, c color.RGBA) {
	s.dc.DrawRectangle(x, y, w, h)
	s.dc.SetColor(c)
	s.check("fill rect", s.dc.Fill())
}

func (s *Surface) StrokePath(pts []grid.Point, width float64, c color.RGBA) {
	if len(pts) < 2 {
		return
	}
	s.trace(pts)
	s.dc.SetLineWidth(width)
	s.dc.SetColor(c)
	s.check("stroke", s.dc.Stroke())
}

func (s *Surface) FillPath(pts []grid.Point, c color.RGBA) {
	if len(pts) < 3 {
		return
	}
	s.trace(pts)
	s.dc.ClosePath()
	s.dc.SetColor(c)
	s.check("fill path", s.dc.Fill())
}

// DrawText draws str anchored at (x, y). gg draws from the alphabetic
// baseline, so other baselines are converted with the face metrics.
func (s *Surface) DrawText(str string, x, y, size float64, align renderer.Align, baseline renderer.Baseline, c color.RGBA) {
	face := s.fonts.Face(size)
	m := face.Metrics()
	switch baseline {
	case renderer.BaselineTop:
		y += m.Ascent
	case renderer.BaselineMiddle:
		y += (m.Ascent - m.Descent) / 2
	}

	var ax float64
	switch align {
	case renderer.AlignCenter:
		ax = 0.5
	case renderer.AlignEnd:
		ax = 1
	}

	s.dc.SetFont(face)
	s.dc.SetColor(c)
	s.dc.DrawStringAnchored(str, x, y, ax, 0)
}

func (s *Surface) trace(pts []grid.Point) {
	s.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		s.dc.LineTo(p.X, p.Y)
	}
}

// check logs a failed draw call. A bad primitive never aborts the frame.
func (s *Surface) check(op string, err error) {
	if err != nil {
		logger.Debug("draw failed", zap.String("op", op), zap.Error(err))
	}
}
