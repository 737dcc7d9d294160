package tui

import (
	"bytes"
	"context"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"datagrid/pkg/engine/input"
	"datagrid/pkg/game/renderer"
)

func newHost(t *testing.T) (*TUIRenderer, *renderer.Renderer) {
	t.Helper()
	r, err := renderer.NewFromPreset("terminal")
	if err != nil {
		t.Fatalf("NewFromPreset() error: %v", err)
	}
	return New(r, Options{FPS: 30}), r
}

func fixedSize() (int, int) { return 40, 12 }

func TestLoop_QuitKey(t *testing.T) {
	host, _ := newHost(t)

	keys := make(chan input.RawInput, 1)
	keys <- input.RawInput{Code: "q"}

	var out bytes.Buffer
	if err := host.Loop(context.Background(), nil, keys, fixedSize, &out); err != nil {
		t.Fatalf("Loop() error: %v", err)
	}
}

func TestLoop_FramesAndCommands(t *testing.T) {
	host, r := newHost(t)

	ticks := make(chan time.Time)
	keys := make(chan input.RawInput)
	var out bytes.Buffer

	done := make(chan error, 1)
	go func() {
		done <- host.Loop(context.Background(), ticks, keys, fixedSize, &out)
	}()

	start := time.Now()
	ticks <- start
	ticks <- start.Add(renderer.NominalFrame)
	keys <- input.RawInput{Code: "space"}
	ticks <- start.Add(2 * renderer.NominalFrame)
	close(keys)

	if err := <-done; err != nil {
		t.Fatalf("Loop() error: %v", err)
	}

	if r.State() != renderer.Paused {
		t.Errorf("State() = %v, want paused after space", r.State())
	}
	want := r.Config().Speed * renderer.PerFrameFactor
	if got := r.Offset(); got < want*0.999 || got > want*1.001 {
		t.Errorf("Offset() = %v, want one nominal frame (%v)", got, want)
	}
	if w, h := r.Viewport(); w != 40*8 || h != 12*16 {
		t.Errorf("Viewport() = %dx%d, want %dx%d", w, h, 40*8, 12*16)
	}
	if out.Len() == 0 {
		t.Error("no frames written")
	}
}

func TestLoop_ContextCancel(t *testing.T) {
	host, _ := newHost(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := host.Loop(ctx, nil, nil, fixedSize, &bytes.Buffer{}); err != nil {
		t.Errorf("Loop() after cancel = %v, want nil", err)
	}
}

// trackedReader counts reads that have not returned yet.
type trackedReader struct {
	r       io.Reader
	pending atomic.Int32
}

func (tr *trackedReader) Read(p []byte) (int, error) {
	tr.pending.Add(1)
	defer tr.pending.Add(-1)
	return tr.r.Read(p)
}

func TestServe_StopsKeyReader(t *testing.T) {
	tests := []struct {
		name  string
		input string // Typed once serve is running; empty cancels the context instead
	}{
		{"quit key", "q"},
		{"context cancel", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host, _ := newHost(t)
			pr, pw := io.Pipe()
			in := &trackedReader{r: pr}

			var released atomic.Bool
			release := func() error {
				released.Store(true)
				return pr.Close()
			}

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			done := make(chan error, 1)
			go func() {
				done <- host.serve(ctx, in, release, nil, fixedSize, &bytes.Buffer{})
			}()

			if tt.input != "" {
				if _, err := pw.Write([]byte(tt.input)); err != nil {
					t.Fatalf("writing keys: %v", err)
				}
			} else {
				cancel()
			}

			select {
			case err := <-done:
				if err != nil {
					t.Fatalf("serve() error: %v", err)
				}
			case <-time.After(2 * time.Second):
				t.Fatal("serve() did not return")
			}

			if !released.Load() {
				t.Error("terminal not released")
			}
			if n := in.pending.Load(); n != 0 {
				t.Errorf("%d key reads still blocked after serve returned", n)
			}
		})
	}
}
