package renderer

import (
	"image/color"

	"datagrid/pkg/game/grid"
)

// OpKind identifies a recorded drawing operation.
type OpKind int

const (
	OpFillRect OpKind = iota
	OpStrokePath
	OpFillPath
	OpDrawText
)

// Op is one recorded drawing call.
type Op struct {
	Kind     OpKind
	Points   []grid.Point // Path points; FillRect records its four corners
	Width    float64      // Stroke width
	Text     string
	Size     float64
	Align    Align
	Baseline Baseline
	Color    color.RGBA
}

// Recorder is a Surface that records every call instead of drawing. Text is
// measured as a fixed fraction of the font size per rune.
type Recorder struct {
	Ops []Op

	// CharWidth is the advance per rune as a multiple of font size
	CharWidth float64
}

// NewRecorder returns an empty recorder with a 0.6em character width.
func NewRecorder() *Recorder {
	return &Recorder{CharWidth: 0.6}
}

// Reset drops all recorded operations.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// Count returns the number of recorded operations of a kind.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Texts returns the strings passed to DrawText, in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == OpDrawText {
			out = append(out, op.Text)
		}
	}
	return out
}

func (r *Recorder) MeasureText(s string, size float64) float64 {
	return float64(len([]rune(s))) * size * r.CharWidth
}

func (r *Recorder) FillRect(x, y, w, h float64, c color.RGBA) {
	r.Ops = append(r.Ops, Op{
		Kind:   OpFillRect,
		Points: []grid.Point{{X: x, Y: y}, {X: x + w, Y: y}, {X: x + w, Y: y + h}, {X: x, Y: y + h}},
		Color:  c,
	})
}

func (r *Recorder) StrokePath(pts []grid.Point, width float64, c color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpStrokePath, Points: append([]grid.Point(nil), pts...), Width: width, Color: c})
}

func (r *Recorder) FillPath(pts []grid.Point, c color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpFillPath, Points: append([]grid.Point(nil), pts...), Color: c})
}

func (r *Recorder) DrawText(s string, x, y, size float64, align Align, baseline Baseline, c color.RGBA) {
	r.Ops = append(r.Ops, Op{
		Kind:     OpDrawText,
		Points:   []grid.Point{{X: x, Y: y}},
		Text:     s,
		Size:     size,
		Align:    align,
		Baseline: baseline,
		Color:    c,
	})
}
