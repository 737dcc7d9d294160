// Package renderer owns the animated perspective grid: the play/pause state
// machine, the scroll offset and the per-frame render pass against a Surface.
package renderer

import (
	"fmt"
	"math"
	"time"

	"datagrid/pkg/game/grid"
)

// State is the animation state.
type State int

const (
	Playing State = iota
	Paused
)

// String returns the string representation of a state
func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	default:
		return "unknown"
	}
}

// Timing of the scroll offset. A tick of NominalFrame advances the offset by
// Speed*PerFrameFactor; other tick lengths scale proportionally.
const (
	NominalFrame   = time.Second / 60
	PerFrameFactor = 0.01
	MaxFrameDelta  = 250 * time.Millisecond
)

// MaxDistance is the furthest Seek goes, in cells. Larger distances are
// clamped so the wrap counter stays far from integer overflow.
const MaxDistance = 1 << 30

// Stats describes the last rendered frame.
type Stats struct {
	Rows   int // Visible rows
	Tiles  int // On-screen tiles, filled or not
	Filled int // Tiles filled by the checkerboard rule
	Labels int // Labels drawn
}

// Renderer is the perspective grid renderer. It is not safe for concurrent
// use; hosts serialize commands and ticks onto one goroutine.
type Renderer struct {
	cfg     grid.Config
	catalog *grid.Catalog

	state  State
	offset float64 // Sub-cell scroll progress in [0,1)
	cycle  int     // Completed wraps since the last reset

	width  int
	height int

	stats  Stats
	labels []grid.Label // Scratch buffer reused between frames
}

// New validates cfg and builds a renderer in the Playing state.
func New(cfg grid.Config, catalog *grid.Catalog) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if catalog == nil || catalog.Len() == 0 {
		return nil, fmt.Errorf("%w: catalog is empty", grid.ErrInvalidCatalog)
	}
	return &Renderer{
		cfg:     cfg,
		catalog: catalog,
		state:   Playing,
	}, nil
}

// NewFromPreset builds a renderer from a named preset.
func NewFromPreset(name string) (*Renderer, error) {
	p, err := grid.Preset(name)
	if err != nil {
		return nil, err
	}
	return New(p.Config, p.Catalog)
}

// Config returns the renderer's configuration.
func (r *Renderer) Config() grid.Config {
	return r.cfg
}

// Catalog returns the tile catalog.
func (r *Renderer) Catalog() *grid.Catalog {
	return r.catalog
}

// State returns the current animation state.
func (r *Renderer) State() State {
	return r.state
}

// Offset returns the scroll offset in [0,1).
func (r *Renderer) Offset() float64 {
	return r.offset
}

// Cycle returns the number of completed wraps since the last reset.
func (r *Renderer) Cycle() int {
	return r.cycle
}

// Viewport returns the current viewport size.
func (r *Renderer) Viewport() (w, h int) {
	return r.width, r.height
}

// Stats returns counters for the last rendered frame.
func (r *Renderer) Stats() Stats {
	return r.stats
}

// TogglePlayPause flips between Playing and Paused and returns the new state.
func (r *Renderer) TogglePlayPause() State {
	if r.state == Playing {
		r.state = Paused
	} else {
		r.state = Playing
	}
	return r.state
}

// Reset rewinds the scroll to zero and resumes playing.
func (r *Renderer) Reset() {
	r.offset = 0
	r.cycle = 0
	r.state = Playing
}

// OnResize records the new viewport size. Negative sizes clamp to zero.
func (r *Renderer) OnResize(width, height int) {
	r.width = max(0, width)
	r.height = max(0, height)
}

// Seek positions the scroll at an absolute distance travelled, in cells.
// Used for scripted frames (snapshots, the frame endpoint). Distances past
// MaxDistance are clamped to it.
func (r *Renderer) Seek(distance float64) {
	if math.IsNaN(distance) || math.IsInf(distance, 0) || distance < 0 {
		distance = 0
	}
	distance = min(distance, MaxDistance)
	whole := math.Floor(distance)
	r.cycle = int(whole)
	r.offset = distance - whole
}

// Tick advances the animation by dt. Paused renderers do not move.
func (r *Renderer) Tick(dt time.Duration) {
	if r.state != Playing {
		return
	}
	dt = min(max(dt, 0), MaxFrameDelta)

	r.offset += r.cfg.Speed * PerFrameFactor * float64(dt) / float64(NominalFrame)
	if r.offset >= 1 {
		whole := math.Floor(r.offset)
		r.cycle += int(whole)
		r.offset -= whole
	}
}

// Frame is one host tick: advance, then draw.
func (r *Renderer) Frame(dt time.Duration, s Surface) {
	r.Tick(dt)
	r.Render(s)
}

// Render draws the current frame: background, grid lines, tiles, labels.
// A zero-area viewport draws nothing.
func (r *Renderer) Render(s Surface) {
	r.stats = Stats{}
	if r.width <= 0 || r.height <= 0 {
		return
	}
	w, h := float64(r.width), float64(r.height)

	s.FillRect(0, 0, w, h, r.cfg.Background)

	p := grid.NewProjection(r.cfg, r.width, r.height)
	rows := grid.Rows(p, r.offset, r.cycle)
	r.stats.Rows = len(rows)
	if len(rows) == 0 {
		return
	}

	r.drawGridLines(s, p, rows)

	r.labels = r.labels[:0]
	grid.Walk(p, rows, r.catalog.Len(), func(_ grid.Row, t grid.Tile) {
		r.stats.Tiles++
		if !t.Filled {
			return
		}
		r.stats.Filled++

		def := r.catalog.At(t.Index)
		s.FillPath(t.Corners[:], def.Color)

		if label, ok := grid.FitLabel(s, r.cfg.Text, t, def.Label, def.Color); ok {
			r.labels = append(r.labels, label)
		}
	})

	for _, l := range r.labels {
		r.drawLabel(s, l)
	}
	r.stats.Labels = len(r.labels)
}

// drawGridLines strokes one horizontal line per row edge and one converging
// line per column edge that reaches the screen.
func (r *Renderer) drawGridLines(s Surface, p grid.Projection, rows []grid.Row) {
	w, _ := p.Size()
	width := r.cfg.GridLineWidth
	col := r.cfg.GridLine

	for _, row := range rows {
		s.StrokePath([]grid.Point{{X: 0, Y: row.FarY}, {X: w, Y: row.FarY}}, width, col)
	}
	last := rows[len(rows)-1]
	s.StrokePath([]grid.Point{{X: 0, Y: last.NearY}, {X: w, Y: last.NearY}}, width, col)

	// Cells only grow with depth, so a column edge off-screen at the first
	// row stays off-screen.
	vp := p.VanishingPoint()
	first := rows[0]
	lo := max(int(math.Floor(-vp.X/first.FarCell)), -first.Left)
	hi := min(int(math.Ceil((w-vp.X)/first.FarCell)), first.Right)

	pts := make([]grid.Point, 0, len(rows)+1)
	for c := lo; c <= hi; c++ {
		pts = pts[:0]
		for _, row := range rows {
			pts = append(pts, grid.Point{X: vp.X + float64(c)*row.FarCell, Y: row.FarY})
		}
		pts = append(pts, grid.Point{X: vp.X + float64(c)*last.NearCell, Y: last.NearY})
		s.StrokePath(pts, width, col)
	}
}

// drawLabel draws the label's lines centered on the tile.
func (r *Renderer) drawLabel(s Surface, l grid.Label) {
	advance := l.LineAdvance(r.cfg.Text.LineHeight)
	y := l.Center.Y - advance*float64(len(l.Lines)-1)/2
	for _, line := range l.Lines {
		s.DrawText(line, l.Center.X, y, l.Size, AlignCenter, BaselineMiddle, l.Color)
		y += advance
	}
}
