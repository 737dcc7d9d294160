package headless

import (
	"bytes"
	"image/png"
	"os"
	"testing"

	"datagrid/pkg/game/grid"
	"datagrid/pkg/game/renderer"
)

func newRenderer(t *testing.T) *renderer.Renderer {
	t.Helper()
	r, err := renderer.NewFromPreset(grid.DefaultPreset)
	if err != nil {
		t.Fatalf("NewFromPreset() error: %v", err)
	}
	return r
}

func TestNewSurface_InvalidSize(t *testing.T) {
	if _, err := NewSurface(0, 100); err == nil {
		t.Error("NewSurface(0, 100) error = nil, want error")
	}
}

func TestSurface_MeasureText(t *testing.T) {
	s, err := NewSurface(64, 64)
	if err != nil {
		t.Fatalf("NewSurface() error: %v", err)
	}
	defer s.Close()

	short := s.MeasureText("SQL", 16)
	long := s.MeasureText("Change Data Capture", 16)
	if short <= 0 || long <= short {
		t.Errorf("MeasureText: short %v, long %v, want 0 < short < long", short, long)
	}
	if bigger := s.MeasureText("SQL", 32); bigger <= short {
		t.Errorf("MeasureText at 32 = %v, want more than at 16 (%v)", bigger, short)
	}
}

func TestRenderPNG(t *testing.T) {
	var buf bytes.Buffer
	r := newRenderer(t)
	if err := RenderPNG(r, 320, 240, 0.5, &buf); err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decoding PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 320 || b.Dy() != 240 {
		t.Errorf("image size = %dx%d, want 320x240", b.Dx(), b.Dy())
	}

	// The row just below the vanishing point is covered by tiles, so the
	// bottom half cannot be plain background.
	bg := r.Config().Background
	colored := 0
	for y := 150; y < 240; y += 4 {
		for x := 0; x < 320; x += 4 {
			cr, cg, cb, _ := img.At(x, y).RGBA()
			if uint8(cr>>8) != bg.R || uint8(cg>>8) != bg.G || uint8(cb>>8) != bg.B {
				colored++
			}
		}
	}
	if colored == 0 {
		t.Error("rendered frame has no tile pixels")
	}
}

func TestSaveFrames(t *testing.T) {
	dir := t.TempDir()
	r := newRenderer(t)
	paths, err := SaveFrames(r, SnapshotOptions{Dir: dir, Frames: 3, Width: 160, Height: 120, Step: 0.3})
	if err != nil {
		t.Fatalf("SaveFrames() error: %v", err)
	}
	if len(paths) != 3 {
		t.Fatalf("SaveFrames wrote %d files, want 3", len(paths))
	}
	for _, p := range paths {
		if fi, err := os.Stat(p); err != nil || fi.Size() == 0 {
			t.Errorf("frame %s missing or empty: %v", p, err)
		}
	}
	if r.Cycle() != 0 || r.Offset() < 0.59 || r.Offset() > 0.61 {
		t.Errorf("last frame at cycle %d offset %v, want 0 / 0.6", r.Cycle(), r.Offset())
	}
}
