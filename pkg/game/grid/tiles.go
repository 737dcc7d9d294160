package grid

import "math"

// Content selection multipliers for TileIndexFor.
const (
	rowPrime = 13
	colPrime = 7
)

// Row is one projected depth row. A row spans from its far edge (nearer the
// vanishing point) to its near edge one unit of depth closer to the viewer.
type Row struct {
	Index     int // Iteration index within the frame
	World     int // World row index, stable across loop wraps
	FarDepth  float64
	NearDepth float64
	FarY      float64
	NearY     float64
	FarScale  float64
	NearScale float64
	FarCell   float64
	NearCell  float64
	Left      int // Columns walked left of the vanishing column
	Right     int // Columns walked right of the vanishing column
}

// Tile is one projected trapezoid.
type Tile struct {
	Row     int      // World row index
	Col     int      // Signed column offset from the vanishing column
	Corners [4]Point // Far-left, far-right, near-right, near-left
	Scale   float64  // Scale at the middle of the tile
	Filled  bool     // Checkerboard decision
	Index   int      // Catalog index, meaningful when Filled
}

// Bounds returns the axis-aligned bounding box of the tile.
func (t Tile) Bounds() (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, c := range t.Corners {
		minX = math.Min(minX, c.X)
		minY = math.Min(minY, c.Y)
		maxX = math.Max(maxX, c.X)
		maxY = math.Max(maxY, c.Y)
	}
	return minX, minY, maxX, maxY
}

// Center returns the centroid of the four corners.
func (t Tile) Center() Point {
	var x, y float64
	for _, c := range t.Corners {
		x += c.X
		y += c.Y
	}
	return Point{x / 4, y / 4}
}

// Width returns the width of the narrower (far) edge.
func (t Tile) Width() float64 {
	far := t.Corners[1].X - t.Corners[0].X
	near := t.Corners[2].X - t.Corners[3].X
	return math.Min(far, near)
}

// Height returns the vertical extent of the tile.
func (t Tile) Height() float64 {
	return t.Corners[3].Y - t.Corners[0].Y
}

// Filled reports whether the tile at (row, col) is drawn. The decision only
// depends on integer indices, so the pattern never drifts while scrolling.
func Filled(row, col int) bool {
	return (row+col)&1 == 0
}

// TileIndexFor returns the catalog index for the tile at (row, col): the
// absolute value of the row/column hash modulo n. The result is in [0, n)
// for every input, including hashes that wrap around.
func TileIndexFor(row, col, n int) int {
	if n <= 0 {
		return 0
	}
	h := (row*rowPrime + col*colPrime) % n
	if h < 0 {
		h = -h
	}
	return h
}

// Rows returns the visible rows for a frame. offset is the sub-cell scroll
// progress in [0,1) and cycle the number of completed wraps.
func Rows(p Projection, offset float64, cycle int) []Row {
	width, _ := p.Size()

	rows := make([]Row, 0, 32)
	for i := 0; i < p.cfg.Rows; i++ {
		far := float64(i) + offset
		near := far + 1
		farY := p.ScreenY(far)
		nearY := p.ScreenY(near)

		if p.Below(farY) {
			break
		}
		if !p.Visible(farY) && !p.Visible(nearY) {
			continue
		}

		farCell := p.CellSize(far)
		vp := p.VanishingPoint()
		left := columnSpan(p.cfg.Coverage*vp.X, farCell)
		right := columnSpan(p.cfg.Coverage*(width-vp.X), farCell)

		rows = append(rows, Row{
			Index:     i,
			World:     i - cycle,
			FarDepth:  far,
			NearDepth: near,
			FarY:      farY,
			NearY:     nearY,
			FarScale:  p.Scale(far),
			NearScale: p.Scale(near),
			FarCell:   farCell,
			NearCell:  p.CellSize(near),
			Left:      left,
			Right:     right,
		})
	}
	return rows
}

// columnSpan returns how many columns of size cell cover extent pixels, plus
// one for the partial column at the edge, capped at MaxColumnsPerSide.
func columnSpan(extent, cell float64) int {
	if extent <= 0 {
		return 1
	}
	n := math.Ceil(extent/cell) + 1
	if math.IsNaN(n) || n >= MaxColumnsPerSide {
		return MaxColumnsPerSide
	}
	return int(n)
}

// Walk visits every on-screen tile of the given rows, filled or not.
func Walk(p Projection, rows []Row, catalogSize int, visit func(Row, Tile)) {
	width, height := p.Size()
	vp := p.VanishingPoint()

	for _, r := range rows {
		mid := p.Scale((r.FarDepth + r.NearDepth) / 2)
		for c := -r.Left; c < r.Right; c++ {
			t := Tile{
				Row: r.World,
				Col: c,
				Corners: [4]Point{
					{vp.X + float64(c)*r.FarCell, r.FarY},
					{vp.X + float64(c+1)*r.FarCell, r.FarY},
					{vp.X + float64(c+1)*r.NearCell, r.NearY},
					{vp.X + float64(c)*r.NearCell, r.NearY},
				},
				Scale: mid,
			}

			minX, minY, maxX, maxY := t.Bounds()
			if maxX < 0 || minX > width || maxY < 0 || minY > height {
				continue
			}

			t.Filled = Filled(t.Row, t.Col)
			if t.Filled {
				t.Index = TileIndexFor(t.Row, t.Col, catalogSize)
			}
			visit(r, t)
		}
	}
}
