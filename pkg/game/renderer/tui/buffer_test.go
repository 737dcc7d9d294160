package tui

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"datagrid/pkg/game/grid"
	"datagrid/pkg/game/renderer"
)

var (
	red  = color.RGBA{255, 0, 0, 255}
	blue = color.RGBA{0, 0, 255, 255}
)

func TestBuffer_FillRect(t *testing.T) {
	b := NewBuffer(10, 5, 8, 16)
	b.FillRect(0, 0, 80, 80, blue)
	for row := 0; row < 5; row++ {
		for col := 0; col < 10; col++ {
			if got := b.At(col, row).BG; got != blue {
				t.Fatalf("At(%d, %d).BG = %v, want %v", col, row, got, blue)
			}
		}
	}
}

func TestBuffer_FillPath(t *testing.T) {
	b := NewBuffer(10, 5, 8, 16)
	// Covers cells 2..5 on rows 1..2.
	b.FillPath([]grid.Point{{X: 16, Y: 16}, {X: 48, Y: 16}, {X: 48, Y: 48}, {X: 16, Y: 48}}, red)

	tests := []struct {
		col, row int
		want     bool
	}{
		{2, 1, true},
		{5, 2, true},
		{1, 1, false},
		{6, 1, false},
		{3, 0, false},
		{3, 3, false},
	}
	for _, tt := range tests {
		got := b.At(tt.col, tt.row).BG == red
		if got != tt.want {
			t.Errorf("cell (%d, %d) filled = %v, want %v", tt.col, tt.row, got, tt.want)
		}
	}
}

func TestBuffer_FillPathTrapezoid(t *testing.T) {
	b := NewBuffer(20, 4, 8, 16)
	// Narrow at the top, wide at the bottom.
	b.FillPath([]grid.Point{{X: 64, Y: 0}, {X: 96, Y: 0}, {X: 160, Y: 64}, {X: 0, Y: 64}}, red)

	if b.At(0, 0).BG == red {
		t.Error("top-left corner filled, want outside the trapezoid")
	}
	if b.At(1, 3).BG != red {
		t.Error("bottom-left cell not filled")
	}
}

func TestBuffer_DrawTextClipped(t *testing.T) {
	b := NewBuffer(6, 2, 8, 16)
	b.DrawText("HELLO", 8, 8, 16, renderer.AlignCenter, renderer.BaselineMiddle, red)
	if got := b.Lines()[0]; got != "ELLO  " {
		t.Errorf("row 0 = %q, want %q", got, "ELLO  ")
	}

	b.DrawText("off", 8, 100, 16, renderer.AlignStart, renderer.BaselineMiddle, red)
	if got := b.Lines()[1]; strings.TrimSpace(got) != "" {
		t.Errorf("row 1 = %q, want blank", got)
	}
}

func TestBuffer_StrokeHorizontal(t *testing.T) {
	b := NewBuffer(5, 3, 8, 16)
	b.StrokePath([]grid.Point{{X: 0, Y: 24}, {X: 40, Y: 24}}, 1, blue)
	if got := b.Lines()[1]; got != "─────" {
		t.Errorf("row 1 = %q, want a full horizontal line", got)
	}
}

func TestBuffer_RenderGrid(t *testing.T) {
	r, err := renderer.NewFromPreset("classic")
	if err != nil {
		t.Fatalf("NewFromPreset() error: %v", err)
	}
	b := NewBuffer(100, 30, 8, 16)
	w, h := b.PixelSize()
	r.OnResize(w, h)
	r.Render(b)

	filled := 0
	for row := 0; row < 30; row++ {
		for col := 0; col < 100; col++ {
			if b.At(col, row).BG != r.Config().Background {
				filled++
			}
		}
	}
	if filled == 0 {
		t.Error("no tile cells painted")
	}

	var out bytes.Buffer
	if err := b.Flush(&out); err != nil {
		t.Fatalf("Flush() error: %v", err)
	}
	if !strings.HasPrefix(out.String(), "\x1b[H") {
		t.Error("Flush output does not start with cursor home")
	}
}
