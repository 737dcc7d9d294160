package grid

import (
	"image/color"
	"math"
	"strings"
)

// Measurer measures the advance width of a string at a font size.
type Measurer interface {
	MeasureText(s string, size float64) float64
}

// Label is a fitted label ready to draw, centered on Center.
type Label struct {
	Lines  []string
	Size   float64
	Center Point
	Color  color.RGBA
}

// LineAdvance returns the vertical distance between line baselines.
func (l Label) LineAdvance(lineHeight float64) float64 {
	return l.Size * lineHeight
}

// FitLabel fits text into a tile. ok is false when the tile is too small for a
// readable label. Text is always upright and centered, whatever the skew of
// the trapezoid.
func FitLabel(m Measurer, t TextConfig, tile Tile, text string, fill color.RGBA) (Label, bool) {
	if tile.Scale < t.VisibleScale {
		return Label{}, false
	}
	w, h := tile.Width(), tile.Height()
	if w <= 0 || h <= 0 {
		return Label{}, false
	}

	size := math.Max(t.MinSize, math.Min(tile.Scale*t.SizeFactor, math.Min(w, h)*t.FitFactor))
	lines := []string{text}

	if m.MeasureText(text, size) > t.WidthFraction*w {
		words := strings.Fields(text)
		if len(words) >= 2 {
			first, second := SplitMidpoint(words)
			lines = []string{first, second}
			size *= t.ShrinkFactor
			if 2*size*t.LineHeight > t.HeightFraction*h {
				lines = []string{text}
				size = math.Max(t.MinSize, h*t.SingleLineFactor)
			}
		} else {
			size *= t.ShrinkFactor
		}
	}

	return Label{
		Lines:  lines,
		Size:   size,
		Center: tile.Center(),
		Color:  TextColor(t, fill),
	}, true
}

// SplitMidpoint splits words into two lines at the middle word boundary.
// The first line gets the extra word for odd counts.
func SplitMidpoint(words []string) (string, string) {
	mid := (len(words) + 1) / 2
	return strings.Join(words[:mid], " "), strings.Join(words[mid:], " ")
}

// Luminance returns the perceptual luminance of c in [0,255].
func Luminance(c color.RGBA) float64 {
	return 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
}

// TextColor picks dark text on bright fills and light text otherwise.
func TextColor(t TextConfig, fill color.RGBA) color.RGBA {
	if Luminance(fill) > t.LuminanceThreshold {
		return t.DarkText
	}
	return t.LightText
}
