package renderer

import (
	"errors"
	"image/color"
	"math"
	"testing"
	"time"

	"datagrid/pkg/game/grid"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewFromPreset(grid.DefaultPreset)
	if err != nil {
		t.Fatalf("NewFromPreset(%q) error: %v", grid.DefaultPreset, err)
	}
	return r
}

func TestNew_Errors(t *testing.T) {
	catalog := grid.MustCatalog([]grid.TileDef{{Label: "SQL", Color: color.RGBA{255, 0, 0, 255}}})

	bad := grid.DefaultConfig()
	bad.Spacing = 0
	if _, err := New(bad, catalog); !errors.Is(err, grid.ErrInvalidConfig) {
		t.Errorf("New(spacing 0) error = %v, want ErrInvalidConfig", err)
	}
	if _, err := New(grid.DefaultConfig(), nil); !errors.Is(err, grid.ErrInvalidCatalog) {
		t.Errorf("New(nil catalog) error = %v, want ErrInvalidCatalog", err)
	}
	if _, err := NewFromPreset("nope"); !errors.Is(err, grid.ErrUnknownPreset) {
		t.Errorf("NewFromPreset(nope) error = %v, want ErrUnknownPreset", err)
	}
}

func TestRenderer_InitialState(t *testing.T) {
	r := newTestRenderer(t)
	if r.State() != Playing {
		t.Errorf("State() = %v, want playing", r.State())
	}
	if r.Offset() != 0 || r.Cycle() != 0 {
		t.Errorf("Offset(), Cycle() = %v, %v, want 0, 0", r.Offset(), r.Cycle())
	}
}

func TestTogglePlayPause(t *testing.T) {
	r := newTestRenderer(t)
	if got := r.TogglePlayPause(); got != Paused {
		t.Errorf("first toggle = %v, want paused", got)
	}
	if got := r.TogglePlayPause(); got != Playing {
		t.Errorf("second toggle = %v, want playing", got)
	}
}

func TestReset_FromPaused(t *testing.T) {
	r := newTestRenderer(t)
	r.Seek(3.4)
	r.TogglePlayPause()

	r.Reset()
	if r.State() != Playing || r.Offset() != 0 || r.Cycle() != 0 {
		t.Errorf("after Reset: state %v offset %v cycle %v, want playing 0 0", r.State(), r.Offset(), r.Cycle())
	}
}

func TestTick_NominalFrame(t *testing.T) {
	r := newTestRenderer(t)
	r.Tick(NominalFrame)
	want := r.Config().Speed * PerFrameFactor
	if math.Abs(r.Offset()-want) > 1e-12 {
		t.Errorf("Offset() after one nominal frame = %v, want %v", r.Offset(), want)
	}
}

func TestTick_FrameRateIndependent(t *testing.T) {
	a := newTestRenderer(t)
	b := newTestRenderer(t)

	a.Tick(8 * time.Millisecond)
	a.Tick(8 * time.Millisecond)
	b.Tick(16 * time.Millisecond)

	if math.Abs(a.Offset()-b.Offset()) > 1e-12 {
		t.Errorf("two 8ms ticks = %v, one 16ms tick = %v", a.Offset(), b.Offset())
	}
}

func TestTick_Wraps(t *testing.T) {
	r := newTestRenderer(t)
	r.Seek(0.99)
	r.Tick(NominalFrame)

	if r.Cycle() != 1 {
		t.Errorf("Cycle() = %d, want 1", r.Cycle())
	}
	want := 0.99 + r.Config().Speed*PerFrameFactor - 1
	if math.Abs(r.Offset()-want) > 1e-9 {
		t.Errorf("Offset() = %v, want %v", r.Offset(), want)
	}
}

func TestTick_Paused(t *testing.T) {
	r := newTestRenderer(t)
	r.Seek(0.5)
	r.TogglePlayPause()
	for i := 0; i < 10; i++ {
		r.Tick(NominalFrame)
	}
	if r.Offset() != 0.5 {
		t.Errorf("Offset() while paused = %v, want 0.5", r.Offset())
	}
}

func TestTick_ClampsDelta(t *testing.T) {
	tests := []struct {
		name string
		dt   time.Duration
		want time.Duration
	}{
		{"negative", -time.Second, 0},
		{"zero", 0, 0},
		{"huge", 10 * time.Second, MaxFrameDelta},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestRenderer(t)
			b := newTestRenderer(t)
			a.Tick(tt.dt)
			b.Tick(tt.want)
			if a.Offset() != b.Offset() || a.Cycle() != b.Cycle() {
				t.Errorf("Tick(%v) = (%v, %d), want (%v, %d)", tt.dt, a.Offset(), a.Cycle(), b.Offset(), b.Cycle())
			}
		})
	}
}

func TestSeek(t *testing.T) {
	tests := []struct {
		distance   float64
		wantCycle  int
		wantOffset float64
	}{
		{0, 0, 0},
		{2.25, 2, 0.25},
		{-1, 0, 0},
		{math.NaN(), 0, 0},
		{math.Inf(1), 0, 0},
		{1e30, MaxDistance, 0},
	}
	for _, tt := range tests {
		r := newTestRenderer(t)
		r.Seek(tt.distance)
		if r.Cycle() != tt.wantCycle || r.Offset() != tt.wantOffset {
			t.Errorf("Seek(%v) = (%d, %v), want (%d, %v)", tt.distance, r.Cycle(), r.Offset(), tt.wantCycle, tt.wantOffset)
		}
	}
}

func TestSeek_HugeDistanceRenders(t *testing.T) {
	for _, d := range []float64{1e15, 1e30, math.MaxFloat64} {
		r := newTestRenderer(t)
		r.OnResize(800, 600)
		r.Seek(d)

		rec := NewRecorder()
		r.Render(rec)
		if got := rec.Count(OpFillPath); got == 0 {
			t.Errorf("Seek(%g): no tiles drawn", d)
		}
		if r.Cycle() < 0 {
			t.Errorf("Seek(%g): Cycle() = %d, want >= 0", d, r.Cycle())
		}
	}
}

func TestOnResize_ClampsNegative(t *testing.T) {
	r := newTestRenderer(t)
	r.OnResize(-10, 300)
	if w, h := r.Viewport(); w != 0 || h != 300 {
		t.Errorf("Viewport() = %d, %d, want 0, 300", w, h)
	}
}

func TestRender_ZeroViewport(t *testing.T) {
	tests := []struct{ w, h int }{{0, 0}, {800, 0}, {0, 600}}
	for _, tt := range tests {
		r := newTestRenderer(t)
		r.OnResize(tt.w, tt.h)
		rec := NewRecorder()
		r.Render(rec)
		if len(rec.Ops) != 0 {
			t.Errorf("Render(%dx%d) recorded %d ops, want 0", tt.w, tt.h, len(rec.Ops))
		}
	}
}

func TestRender_DrawsFrame(t *testing.T) {
	r := newTestRenderer(t)
	r.OnResize(800, 600)
	rec := NewRecorder()
	r.Render(rec)

	if len(rec.Ops) == 0 {
		t.Fatal("Render recorded nothing")
	}
	first := rec.Ops[0]
	if first.Kind != OpFillRect || first.Color != r.Config().Background {
		t.Errorf("first op = %v %v, want background FillRect %v", first.Kind, first.Color, r.Config().Background)
	}
	if rec.Count(OpStrokePath) == 0 {
		t.Error("no grid lines stroked")
	}

	colors := make(map[color.RGBA]bool)
	for i := 0; i < r.Catalog().Len(); i++ {
		colors[r.Catalog().At(i).Color] = true
	}
	for _, op := range rec.Ops {
		if op.Kind != OpFillPath {
			continue
		}
		if len(op.Points) != 4 {
			t.Errorf("FillPath with %d points, want 4", len(op.Points))
		}
		if !colors[op.Color] {
			t.Errorf("FillPath color %v not in catalog", op.Color)
		}
	}

	stats := r.Stats()
	if stats.Filled != rec.Count(OpFillPath) {
		t.Errorf("Stats().Filled = %d, FillPath ops = %d", stats.Filled, rec.Count(OpFillPath))
	}
	if stats.Filled == 0 || stats.Tiles < stats.Filled {
		t.Errorf("Stats() = %+v, want filled tiles", stats)
	}
	if stats.Labels == 0 || len(rec.Texts()) < stats.Labels {
		t.Errorf("Stats().Labels = %d, texts drawn = %d", stats.Labels, len(rec.Texts()))
	}
}

func TestRender_LayerOrder(t *testing.T) {
	r := newTestRenderer(t)
	r.OnResize(800, 600)
	rec := NewRecorder()
	r.Render(rec)

	lastStroke, firstFill, lastFill, firstText := -1, -1, -1, -1
	for i, op := range rec.Ops {
		switch op.Kind {
		case OpStrokePath:
			lastStroke = i
		case OpFillPath:
			if firstFill < 0 {
				firstFill = i
			}
			lastFill = i
		case OpDrawText:
			if firstText < 0 {
				firstText = i
			}
		}
	}
	if lastStroke > firstFill {
		t.Errorf("grid line at op %d drawn after first tile at op %d", lastStroke, firstFill)
	}
	if firstText >= 0 && firstText < lastFill {
		t.Errorf("label at op %d drawn before last tile at op %d", firstText, lastFill)
	}
}

func TestRender_DoesNotAdvance(t *testing.T) {
	r := newTestRenderer(t)
	r.OnResize(640, 480)
	r.Seek(0.3)
	rec := NewRecorder()
	r.Render(rec)
	r.Render(rec)
	if r.Offset() != 0.3 {
		t.Errorf("Offset() after Render = %v, want 0.3", r.Offset())
	}
}

func TestFrame_AdvancesThenDraws(t *testing.T) {
	r := newTestRenderer(t)
	r.OnResize(640, 480)
	rec := NewRecorder()
	r.Frame(NominalFrame, rec)
	if r.Offset() == 0 {
		t.Error("Frame did not advance the offset")
	}
	if len(rec.Ops) == 0 {
		t.Error("Frame did not draw")
	}
}

func TestRender_PausedFramesIdentical(t *testing.T) {
	r := newTestRenderer(t)
	r.OnResize(640, 480)
	r.TogglePlayPause()

	a, b := NewRecorder(), NewRecorder()
	r.Frame(NominalFrame, a)
	r.Frame(NominalFrame, b)
	if len(a.Ops) != len(b.Ops) {
		t.Fatalf("paused frames differ: %d vs %d ops", len(a.Ops), len(b.Ops))
	}
	for i := range a.Ops {
		if a.Ops[i].Kind != b.Ops[i].Kind || a.Ops[i].Text != b.Ops[i].Text {
			t.Fatalf("paused frames differ at op %d", i)
		}
	}
}
