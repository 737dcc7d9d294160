package headless

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"datagrid/pkg/engine/logger"
	"datagrid/pkg/game/renderer"
)

// SnapshotOptions configures SaveFrames.
type SnapshotOptions struct {
	Dir    string
	Frames int
	Width  int
	Height int
	Step   float64 // Scroll distance between frames, in cells
	HUD    bool
}

// RenderPNG draws r at distance into a width x height image and writes it
// as PNG. The renderer's viewport and scroll position are overwritten.
func RenderPNG(r *renderer.Renderer, width, height int, distance float64, w io.Writer) error {
	s, err := NewSurface(width, height)
	if err != nil {
		return err
	}
	defer s.Close()

	r.OnResize(width, height)
	r.Seek(distance)
	r.Render(s)
	return s.EncodePNG(w)
}

// SaveFrames writes opts.Frames PNG files named frame_0000.png onward into
// opts.Dir, advancing the scroll by opts.Step between frames. It returns the
// written paths.
func SaveFrames(r *renderer.Renderer, opts SnapshotOptions) ([]string, error) {
	if opts.Frames <= 0 {
		opts.Frames = 1
	}
	if err := os.MkdirAll(opts.Dir, 0755); err != nil {
		return nil, err
	}

	s, err := NewSurface(opts.Width, opts.Height)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	r.OnResize(opts.Width, opts.Height)
	paths := make([]string, 0, opts.Frames)
	for i := 0; i < opts.Frames; i++ {
		r.Seek(float64(i) * opts.Step)
		r.Render(s)
		if opts.HUD {
			renderer.DrawHUD(s, r.HUDLines(true), 14)
		}

		path := filepath.Join(opts.Dir, fmt.Sprintf("frame_%04d.png", i))
		if err := s.SavePNG(path); err != nil {
			return paths, fmt.Errorf("save %s: %w", path, err)
		}
		paths = append(paths, path)

		stats := r.Stats()
		logger.Debug("frame saved",
			zap.String("path", path),
			zap.Int("rows", stats.Rows),
			zap.Int("tiles", stats.Tiles),
			zap.Int("labels", stats.Labels))
	}
	return paths, nil
}
