// Package tui hosts the grid renderer in a terminal, drawing it as a grid of
// truecolor character cells.
package tui

import (
	"context"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"datagrid/pkg/engine/input"
	"datagrid/pkg/engine/logger"
	"datagrid/pkg/engine/terminal"
	"datagrid/pkg/game/renderer"
)

// readerStopTimeout bounds how long serve waits for the key reader on
// platforms where closing the terminal does not interrupt a read.
const readerStopTimeout = time.Second

// Options configures the terminal host.
type Options struct {
	FPS        int
	CellWidth  int // Virtual pixels per cell, horizontally
	CellHeight int // Virtual pixels per cell, vertically
	ShowHUD    bool
	Debug      bool
	Bindings   *input.Bindings
}

// TUIRenderer is the terminal-based host
type TUIRenderer struct {
	grid     *renderer.Renderer
	opts     Options
	bindings *input.Bindings
	buf      *Buffer
	log      *zap.Logger

	showHUD bool
}

// New creates a new terminal host for r
func New(r *renderer.Renderer, opts Options) *TUIRenderer {
	if opts.FPS <= 0 {
		opts.FPS = 30
	}
	if opts.CellWidth <= 0 {
		opts.CellWidth = 8
	}
	if opts.CellHeight <= 0 {
		opts.CellHeight = 16
	}
	bindings := opts.Bindings
	if bindings == nil {
		bindings = input.DefaultBindings()
	}
	return &TUIRenderer{
		grid:     r,
		opts:     opts,
		bindings: bindings,
		buf:      NewBuffer(0, 0, opts.CellWidth, opts.CellHeight),
		log:      logger.Named("tui"),
		showHUD:  opts.ShowHUD,
	}
}

// Run takes over the terminal until ctx is cancelled or a quit key is
// pressed.
func (t *TUIRenderer) Run(ctx context.Context) error {
	session, err := terminal.Open()
	if err != nil {
		return err
	}

	ticker := time.NewTicker(time.Second / time.Duration(t.opts.FPS))
	defer ticker.Stop()

	t.log.Info("terminal host started", zap.Int("fps", t.opts.FPS))
	return t.serve(ctx, session.Input(), session.Close, ticker.C, terminal.GetSize, os.Stdout)
}

// serve runs Loop with keys decoded from in. On return it calls release,
// which must unblock any pending read on in, and waits for the key reader
// to finish, so no goroutine outlives the call.
func (t *TUIRenderer) serve(ctx context.Context, in io.Reader, release func() error, ticks <-chan time.Time, size func() (int, int), out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	keys := make(chan input.RawInput, 16)
	readerDone := make(chan struct{})
	go func() {
		defer close(readerDone)
		if err := input.ReadKeys(ctx, in, keys); err != nil && ctx.Err() == nil {
			t.log.Warn("key reader stopped", zap.Error(err))
		}
	}()

	err := t.Loop(ctx, ticks, keys, size, out)
	cancel()
	if d, ok := in.(interface{ SetReadDeadline(time.Time) error }); ok {
		_ = d.SetReadDeadline(time.Now())
	}
	if rerr := release(); rerr != nil {
		t.log.Warn("releasing terminal", zap.Error(rerr))
	}

	select {
	case <-readerDone:
	case <-time.After(readerStopTimeout):
		t.log.Warn("key reader did not stop", zap.Duration("waited", readerStopTimeout))
	}
	return err
}

// Loop is the host's single goroutine: it applies key events and draws one
// frame per tick, polling size before each frame. It returns nil on quit or
// when keys is closed.
func (t *TUIRenderer) Loop(ctx context.Context, ticks <-chan time.Time, keys <-chan input.RawInput, size func() (int, int), out io.Writer) error {
	var last time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-keys:
			if !ok {
				return nil
			}
			if t.apply(t.bindings.Resolve(ev)) {
				return nil
			}
		case now := <-ticks:
			var dt time.Duration
			if !last.IsZero() {
				dt = now.Sub(last)
			}
			last = now
			if err := t.frame(dt, size, out); err != nil {
				return err
			}
		}
	}
}

// apply runs one action and reports whether the host should stop.
func (t *TUIRenderer) apply(action input.Action) bool {
	switch action {
	case input.ActionTogglePlay:
		state := t.grid.TogglePlayPause()
		t.log.Debug("toggle", zap.Stringer("state", state))
	case input.ActionReset:
		t.grid.Reset()
		t.log.Debug("reset")
	case input.ActionToggleHUD:
		t.showHUD = !t.showHUD
	case input.ActionQuit:
		return true
	}
	return false
}

func (t *TUIRenderer) frame(dt time.Duration, size func() (int, int), out io.Writer) error {
	cols, rows := size()
	if c, r := t.buf.Size(); c != cols || r != rows {
		t.buf.Resize(cols, rows)
		w, h := t.buf.PixelSize()
		t.grid.OnResize(w, h)
		t.log.Debug("resize", zap.Int("cols", cols), zap.Int("rows", rows))
	}

	t.buf.Clear()
	t.grid.Frame(dt, t.buf)
	if t.showHUD {
		renderer.DrawHUD(t.buf, t.grid.HUDLines(t.opts.Debug), float64(t.opts.CellHeight))
	}
	return t.buf.Flush(out)
}
