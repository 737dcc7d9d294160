// Package ebiten hosts the grid renderer in an Ebiten window.
package ebiten

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"datagrid/pkg/engine/input"
	"datagrid/pkg/game/renderer"
)

// Options configures the window host.
type Options struct {
	Width      int
	Height     int
	Fullscreen bool
	TPS        int
	ShowHUD    bool
	HUDSize    float64
	Debug      bool // Adds frame counters to the HUD
	Bindings   *input.Bindings
}

// EbitenRenderer drives a grid Renderer from Ebiten's game loop. Update
// applies input and advances the scroll; Draw renders the current frame.
// Ebiten calls both on the same goroutine, so no locking is needed.
type EbitenRenderer struct {
	grid     *renderer.Renderer
	opts     Options
	bindings *input.Bindings
	log      *zap.Logger

	surface *Surface

	// Elapsed-time tick tracking
	lastUpdate time.Time

	showHUD bool
	quit    bool

	// Viewport as last reported by Layout
	width  int
	height int

	// Flag to track if we've logged window opening
	windowOpenedLogged bool
}

// Surface adapts an *ebiten.Image to renderer.Surface. The target image is
// swapped in before every Draw.
type Surface struct {
	dst   *ebiten.Image
	fonts *renderer.FaceCache[*text.GoTextFace]

	// Scratch path reused across draw calls
	path vector.Path
}
