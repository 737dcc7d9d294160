package ebiten

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	engineinput "datagrid/pkg/engine/input"
	"datagrid/pkg/engine/logger"
	"datagrid/pkg/game/i18n"
	"datagrid/pkg/game/renderer"
)

// New creates a window host for r.
func New(r *renderer.Renderer, opts Options) (*EbitenRenderer, error) {
	surface, err := NewSurface()
	if err != nil {
		return nil, err
	}
	if opts.TPS <= 0 {
		opts.TPS = ebiten.DefaultTPS
	}
	if opts.HUDSize <= 0 {
		opts.HUDSize = 14
	}
	bindings := opts.Bindings
	if bindings == nil {
		bindings = engineinput.DefaultBindings()
	}
	return &EbitenRenderer{
		grid:     r,
		opts:     opts,
		bindings: bindings,
		log:      logger.Named("window"),
		surface:  surface,
		showHUD:  opts.ShowHUD,
	}, nil
}

// Run opens the window and blocks until it is closed or a quit key is
// pressed.
func (e *EbitenRenderer) Run() error {
	ebiten.SetWindowSize(e.opts.Width, e.opts.Height)
	ebiten.SetWindowTitle(i18n.T("WINDOW_TITLE"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(e.opts.Fullscreen)
	ebiten.SetTPS(e.opts.TPS)

	err := ebiten.RunGame(e)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Update handles input and advances the animation (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	now := time.Now()

	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		e.log.Info("window opened", zap.Int("width", w), zap.Int("height", h))
	}

	for _, raw := range pollInput(now) {
		e.apply(e.bindings.Resolve(raw))
	}
	if e.quit || ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}

	var dt time.Duration
	if !e.lastUpdate.IsZero() {
		dt = now.Sub(e.lastUpdate)
	}
	e.lastUpdate = now
	e.grid.Tick(dt)
	return nil
}

// apply runs one action against the renderer.
func (e *EbitenRenderer) apply(action engineinput.Action) {
	switch action {
	case engineinput.ActionTogglePlay:
		state := e.grid.TogglePlayPause()
		e.log.Debug("toggle", zap.Stringer("state", state))
	case engineinput.ActionReset:
		e.grid.Reset()
		e.log.Debug("reset")
	case engineinput.ActionToggleHUD:
		e.showHUD = !e.showHUD
	case engineinput.ActionQuit:
		e.quit = true
	}
}

// Draw renders the current frame (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	e.surface.SetTarget(screen)
	e.grid.Render(e.surface)

	if e.showHUD {
		renderer.DrawHUD(e.surface, e.grid.HUDLines(e.opts.Debug), e.opts.HUDSize)
	}
}

// Layout follows the window size so the grid always fills it (Ebiten
// interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != e.width || outsideHeight != e.height {
		e.width, e.height = outsideWidth, outsideHeight
		e.grid.OnResize(outsideWidth, outsideHeight)
		e.log.Debug("resize", zap.Int("width", outsideWidth), zap.Int("height", outsideHeight))
	}
	return outsideWidth, outsideHeight
}
