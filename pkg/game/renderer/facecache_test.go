package renderer

import "testing"

func TestQuantizeSize(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{12, 12},
		{12.2, 12},
		{12.3, 12.5},
		{0, 0.5},
		{-4, 0.5},
	}
	for _, tt := range tests {
		if got := QuantizeSize(tt.in); got != tt.want {
			t.Errorf("QuantizeSize(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFaceCache(t *testing.T) {
	builds := 0
	c := NewFaceCache(2, func(size float64) float64 {
		builds++
		return size * 10
	})

	if got := c.Face(12.1); got != 120 {
		t.Errorf("Face(12.1) = %v, want 120", got)
	}
	c.Face(12.2)
	if builds != 1 {
		t.Errorf("builds = %d after same quantized size, want 1", builds)
	}

	c.Face(14)
	c.Face(16)
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want capacity 2", c.Len())
	}
	c.Face(12)
	if builds != 4 {
		t.Errorf("builds = %d, want evicted size rebuilt (4)", builds)
	}
}
