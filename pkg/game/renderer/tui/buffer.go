package tui

import (
	"image/color"
	"io"
	"math"
	"strings"

	gcolor "github.com/gookit/color"

	"datagrid/pkg/engine/terminal"
	"datagrid/pkg/game/grid"
	"datagrid/pkg/game/renderer"
)

// Cell is one character cell of the terminal.
type Cell struct {
	Ch rune
	FG color.RGBA
	BG color.RGBA
}

// Buffer is a renderer.Surface backed by a grid of character cells. Drawing
// happens in virtual pixels; each cell covers CellWidth x CellHeight of them
// and takes the color of whatever covers its center.
type Buffer struct {
	cols, rows int
	cellW      float64
	cellH      float64
	cells      []Cell

	out strings.Builder
}

// NewBuffer creates a buffer of cols x rows cells.
func NewBuffer(cols, rows, cellW, cellH int) *Buffer {
	b := &Buffer{cellW: float64(max(1, cellW)), cellH: float64(max(1, cellH))}
	b.Resize(cols, rows)
	return b
}

// Resize changes the cell grid size and clears it.
func (b *Buffer) Resize(cols, rows int) {
	b.cols, b.rows = max(0, cols), max(0, rows)
	b.cells = make([]Cell, b.cols*b.rows)
	b.Clear()
}

// Clear blanks every cell.
func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = Cell{Ch: ' '}
	}
}

// Size returns the grid size in cells.
func (b *Buffer) Size() (cols, rows int) {
	return b.cols, b.rows
}

// PixelSize returns the virtual pixel size the renderer should draw at.
func (b *Buffer) PixelSize() (w, h int) {
	return int(float64(b.cols) * b.cellW), int(float64(b.rows) * b.cellH)
}

// At returns the cell at (col, row).
func (b *Buffer) At(col, row int) Cell {
	return b.cells[row*b.cols+col]
}

// cellCenter returns the virtual pixel center of a cell.
func (b *Buffer) cellCenter(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * b.cellW, (float64(row) + 0.5) * b.cellH
}

// cellRange converts a pixel span to the clamped cell index range whose
// centers may lie inside it.
func cellRange(lo, hi, size float64, n int) (int, int) {
	first := max(0, int(math.Floor(lo/size-0.5)))
	last := min(n-1, int(math.Ceil(hi/size-0.5)))
	return first, last
}

// MeasureText returns the width of s in virtual pixels. Terminal text is one
// cell per rune whatever the requested size.
func (b *Buffer) MeasureText(s string, _ float64) float64 {
	return float64(len([]rune(s))) * b.cellW
}

// FillRect paints the background of every cell whose center lies inside the
// rectangle.
func (b *Buffer) FillRect(x, y, w, h float64, c color.RGBA) {
	c0, c1 := cellRange(x, x+w, b.cellW, b.cols)
	r0, r1 := cellRange(y, y+h, b.cellH, b.rows)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			cx, cy := b.cellCenter(col, row)
			if cx >= x && cx <= x+w && cy >= y && cy <= y+h {
				b.cells[row*b.cols+col] = Cell{Ch: ' ', BG: c}
			}
		}
	}
}

// FillPath paints every cell whose center lies inside the polygon.
func (b *Buffer) FillPath(pts []grid.Point, c color.RGBA) {
	if len(pts) < 3 {
		return
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	c0, c1 := cellRange(minX, maxX, b.cellW, b.cols)
	r0, r1 := cellRange(minY, maxY, b.cellH, b.rows)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if inside(pts, b.cellCenterPoint(col, row)) {
				b.cells[row*b.cols+col] = Cell{Ch: ' ', BG: c}
			}
		}
	}
}

func (b *Buffer) cellCenterPoint(col, row int) grid.Point {
	x, y := b.cellCenter(col, row)
	return grid.Point{X: x, Y: y}
}

// inside is the even-odd ray crossing test.
func inside(pts []grid.Point, p grid.Point) bool {
	in := false
	j := len(pts) - 1
	for i := range pts {
		a, c := pts[i], pts[j]
		if (a.Y > p.Y) != (c.Y > p.Y) && p.X < (c.X-a.X)*(p.Y-a.Y)/(c.Y-a.Y)+a.X {
			in = !in
		}
		j = i
	}
	return in
}

// StrokePath draws line characters along the polyline.
func (b *Buffer) StrokePath(pts []grid.Point, _ float64, c color.RGBA) {
	for i := 1; i < len(pts); i++ {
		b.strokeSegment(pts[i-1], pts[i], c)
	}
}

func (b *Buffer) strokeSegment(p, q grid.Point, c color.RGBA) {
	dx, dy := q.X-p.X, q.Y-p.Y
	ch := lineRune(dx/b.cellW, dy/b.cellH)

	steps := int(math.Ceil(math.Max(math.Abs(dx)/b.cellW, math.Abs(dy)/b.cellH) * 2))
	steps = min(max(steps, 1), 4*(b.cols+b.rows))
	for s := 0; s <= steps; s++ {
		t := float64(s) / float64(steps)
		col := int(math.Floor((p.X + dx*t) / b.cellW))
		row := int(math.Floor((p.Y + dy*t) / b.cellH))
		if col < 0 || col >= b.cols || row < 0 || row >= b.rows {
			continue
		}
		cell := &b.cells[row*b.cols+col]
		cell.Ch = ch
		cell.FG = c
	}
}

// lineRune picks a box-drawing character for a direction given in cells.
func lineRune(dc, dr float64) rune {
	switch {
	case math.Abs(dr) <= math.Abs(dc)*0.4:
		return '─'
	case math.Abs(dc) <= math.Abs(dr)*0.4:
		return '│'
	case (dc > 0) == (dr > 0):
		return '╲'
	default:
		return '╱'
	}
}

// DrawText writes s into the row containing y, clipped to the buffer.
func (b *Buffer) DrawText(s string, x, y, _ float64, align renderer.Align, baseline renderer.Baseline, c color.RGBA) {
	runes := []rune(s)
	row := int(math.Floor(y / b.cellH))
	if baseline == renderer.BaselineAlphabetic {
		row = int(math.Floor((y - 1) / b.cellH))
	}
	if row < 0 || row >= b.rows {
		return
	}

	col := int(math.Floor(x / b.cellW))
	switch align {
	case renderer.AlignCenter:
		col -= len(runes) / 2
	case renderer.AlignEnd:
		col -= len(runes)
	}
	for i, r := range runes {
		cc := col + i
		if cc < 0 || cc >= b.cols {
			continue
		}
		cell := &b.cells[row*b.cols+cc]
		cell.Ch = r
		cell.FG = c
	}
}

// Lines returns the characters of each row without styling.
func (b *Buffer) Lines() []string {
	lines := make([]string, b.rows)
	for row := 0; row < b.rows; row++ {
		var sb strings.Builder
		for col := 0; col < b.cols; col++ {
			sb.WriteRune(b.At(col, row).Ch)
		}
		lines[row] = sb.String()
	}
	return lines
}

// Flush writes the buffer to w as truecolor text, homing the cursor first.
// Runs of cells sharing colors are emitted with one style.
func (b *Buffer) Flush(w io.Writer) error {
	b.out.Reset()
	b.out.WriteString(terminal.CursorHome)

	var run []rune
	for row := 0; row < b.rows; row++ {
		if row > 0 {
			b.out.WriteString("\r\n")
		}
		start := b.At(0, row)
		run = run[:0]
		for col := 0; col < b.cols; col++ {
			cell := b.At(col, row)
			if cell.FG != start.FG || cell.BG != start.BG {
				b.writeRun(run, start)
				run, start = run[:0], cell
			}
			run = append(run, cell.Ch)
		}
		b.writeRun(run, start)
	}
	b.out.WriteString(terminal.ResetStyle)

	_, err := io.WriteString(w, b.out.String())
	return err
}

func (b *Buffer) writeRun(run []rune, style Cell) {
	if len(run) == 0 {
		return
	}
	fg := gcolor.RGB(style.FG.R, style.FG.G, style.FG.B)
	bg := gcolor.RGB(style.BG.R, style.BG.G, style.BG.B, true)
	b.out.WriteString(gcolor.NewRGBStyle(fg, bg).Sprint(string(run)))
}
