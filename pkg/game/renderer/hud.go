package renderer

import (
	"fmt"
	"image/color"

	"datagrid/pkg/game/i18n"
)

// HUD colors: a translucent panel with soft off-white text.
var (
	colorHUDPanel = color.RGBA{30, 30, 50, 220}
	colorHUDText  = color.RGBA{200, 210, 245, 255}
)

// HUDLines returns the status lines shown over the grid. debug adds frame
// counters.
func (r *Renderer) HUDLines(debug bool) []string {
	state := i18n.T("PLAYING")
	if r.state == Paused {
		state = i18n.T("PAUSED")
	}
	lines := []string{state, i18n.T("HINT_CONTROLS")}
	if debug {
		lines = append(lines, fmt.Sprintf("rows %d  tiles %d  filled %d  labels %d  offset %.3f",
			r.stats.Rows, r.stats.Tiles, r.stats.Filled, r.stats.Labels, r.offset))
	}
	return lines
}

// DrawHUD draws lines in a panel at the top-left corner.
func DrawHUD(s Surface, lines []string, size float64) {
	if len(lines) == 0 {
		return
	}
	const pad = 8.0
	advance := size * 1.4

	width := 0.0
	for _, l := range lines {
		width = max(width, s.MeasureText(l, size))
	}
	s.FillRect(pad, pad, width+2*pad, advance*float64(len(lines))+pad, colorHUDPanel)

	y := 2 * pad
	for _, l := range lines {
		s.DrawText(l, 2*pad, y, size, AlignStart, BaselineTop, colorHUDText)
		y += advance
	}
}
