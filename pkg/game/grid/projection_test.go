package grid

import (
	"math"
	"testing"
)

func TestProjection_EndToEndScenario(t *testing.T) {
	cfg := DefaultConfig()
	p := NewProjection(cfg, 800, 600)

	if got := p.ScreenY(0); got != 300 {
		t.Errorf("ScreenY(0) = %v, want 300", got)
	}
	if got := p.Scale(0); got != cfg.ScaleFloor {
		t.Errorf("Scale(0) = %v, want floor %v", got, cfg.ScaleFloor)
	}
	if got := p.ScreenY(5); got != 800 {
		t.Errorf("ScreenY(5) = %v, want 800", got)
	}
	want := 500.0 / (600 * 0.8)
	if got := p.Scale(5); math.Abs(got-want) > 1e-9 {
		t.Errorf("Scale(5) = %v, want %v", got, want)
	}
	if got := p.Scale(5); math.Abs(got-1.04) > 0.01 {
		t.Errorf("Scale(5) = %v, want about 1.04", got)
	}
}

func TestProjection_ScaleMonotonic(t *testing.T) {
	for _, name := range PresetNames() {
		t.Run(name, func(t *testing.T) {
			pd, err := Preset(name)
			if err != nil {
				t.Fatal(err)
			}
			p := NewProjection(pd.Config, 1280, 720)
			prev := p.Scale(0)
			for d := 0.25; d <= 40; d += 0.25 {
				s := p.Scale(d)
				if s < prev {
					t.Fatalf("Scale(%v) = %v < Scale(%v) = %v", d, s, d-0.25, prev)
				}
				prev = s
			}
		})
	}
}

func TestProjection_ScaleContinuousAcrossRows(t *testing.T) {
	p := NewProjection(DefaultConfig(), 800, 600)
	for i := 1; i < 10; i++ {
		d := float64(i)
		below := p.Scale(d - 1e-9)
		above := p.Scale(d + 1e-9)
		if math.Abs(above-below) > 1e-6 {
			t.Errorf("Scale jumps at depth %v: %v -> %v", d, below, above)
		}
	}
}

func TestProjection_DegenerateViewport(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name          string
		width, height int
		spacing       float64
	}{
		{"zero height", 800, 0, 100},
		{"zero area", 0, 0, 100},
		{"negative size", -10, -10, 100},
		{"tiny spacing", 800, 600, 1e-9},
		{"tiny spacing zero height", 800, 0, 1e-9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := cfg
			c.Spacing = tt.spacing
			p := NewProjection(c, tt.width, tt.height)

			for _, d := range []float64{0, 0.5, 1, 10, 1000} {
				s := p.Scale(d)
				if s <= 0 || math.IsNaN(s) || math.IsInf(s, 0) {
					t.Fatalf("Scale(%v) = %v, want finite and > 0", d, s)
				}
			}

			rows := Rows(p, 0.5, 0)
			if len(rows) > c.Rows {
				t.Fatalf("len(rows) = %d, exceeds configured %d", len(rows), c.Rows)
			}
			visited := 0
			Walk(p, rows, 10, func(r Row, tile Tile) {
				visited++
				if r.Left > MaxColumnsPerSide || r.Right > MaxColumnsPerSide {
					t.Fatalf("span %d/%d exceeds cap", r.Left, r.Right)
				}
				for _, pt := range tile.Corners {
					if math.IsNaN(pt.X) || math.IsNaN(pt.Y) {
						t.Fatalf("NaN corner in tile %+v", tile)
					}
				}
			})
			if visited > c.Rows*2*MaxColumnsPerSide {
				t.Fatalf("visited %d tiles, iteration not bounded", visited)
			}
		})
	}
}
