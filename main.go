package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gookit/color"
	"go.uber.org/zap"

	"datagrid/pkg/engine/input"
	"datagrid/pkg/engine/logger"
	"datagrid/pkg/game/config"
	"datagrid/pkg/game/grid"
	"datagrid/pkg/game/i18n"
	"datagrid/pkg/game/renderer"
	"datagrid/pkg/game/renderer/ebiten"
	"datagrid/pkg/game/renderer/headless"
	"datagrid/pkg/game/renderer/tui"
	"datagrid/pkg/game/server"
)

const usage = `Usage: datagrid [flags] [command]

Commands:
  window     Open the animated grid in a window (default)
  tui        Draw the grid in the terminal
  snapshot   Write PNG frames to the -out directory
  serve      Serve the web page, /health and /frame.png
  presets    List the available presets

Flags:
`

func main() {
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	config.ParseFlags()

	if err := run(flag.Arg(0)); err != nil {
		logger.Error("exiting", zap.Error(err))
		logger.Sync()
		fmt.Fprintln(os.Stderr, "datagrid:", err)
		os.Exit(1)
	}
	logger.Sync()
}

func run(command string) error {
	if command == "" {
		command = "window"
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// The terminal host owns stdout; its logs only go to the log file.
	opts := cfg.LoggerOptions()
	if command != "tui" {
		opts.Console = os.Stderr
	}
	if err := logger.Init(opts); err != nil {
		return err
	}
	if err := i18n.Init(cfg.Language); err != nil {
		logger.Warn("language fallback", zap.Error(err))
	}

	if config.SaveRequested() {
		path, err := cfg.Save()
		if err != nil {
			return err
		}
		fmt.Println("config written to", path)
		return nil
	}

	if command == "presets" {
		listPresets()
		return nil
	}

	gridCfg, catalog, err := cfg.BuildGrid()
	if err != nil {
		return err
	}
	r, err := renderer.New(gridCfg, catalog)
	if err != nil {
		return err
	}
	bindings, err := input.NewBindings(cfg.Keys)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting",
		zap.String("command", command),
		zap.String("preset", cfg.Grid.Preset),
		zap.Int("tiles", catalog.Len()))

	switch command {
	case "window":
		host, err := ebiten.New(r, ebiten.Options{
			Width:      cfg.Window.Width,
			Height:     cfg.Window.Height,
			Fullscreen: cfg.Window.Fullscreen,
			TPS:        cfg.Window.TPS,
			ShowHUD:    cfg.Window.ShowHUD,
			HUDSize:    cfg.Window.HUDSize,
			Debug:      config.Debug(),
			Bindings:   bindings,
		})
		if err != nil {
			return err
		}
		return host.Run()

	case "tui":
		host := tui.New(r, tui.Options{
			FPS:        cfg.Terminal.FPS,
			CellWidth:  cfg.Terminal.CellWidth,
			CellHeight: cfg.Terminal.CellHeight,
			ShowHUD:    cfg.Window.ShowHUD,
			Debug:      config.Debug(),
			Bindings:   bindings,
		})
		return host.Run(ctx)

	case "snapshot":
		paths, err := headless.SaveFrames(r, headless.SnapshotOptions{
			Dir:    cfg.Snapshot.Out,
			Frames: cfg.Snapshot.Frames,
			Width:  cfg.Snapshot.Width,
			Height: cfg.Snapshot.Height,
			Step:   cfg.Snapshot.Step,
			HUD:    config.Debug(),
		})
		if err != nil {
			return err
		}
		logger.Info("snapshot done", zap.Int("frames", len(paths)), zap.String("dir", cfg.Snapshot.Out))
		return nil

	case "serve":
		srv, err := server.New(gridCfg, catalog, server.Options{
			Addr:      cfg.Server.Addr,
			WebRoot:   cfg.Server.WebRoot,
			MaxWidth:  cfg.Server.MaxWidth,
			MaxHeight: cfg.Server.MaxHeight,
		})
		if err != nil {
			return err
		}
		return srv.Run(ctx)

	default:
		flag.Usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

// listPresets prints every preset with its description.
func listPresets() {
	for _, name := range grid.PresetNames() {
		p, err := grid.Preset(name)
		if err != nil {
			continue
		}
		marker := " "
		if name == grid.DefaultPreset {
			marker = "*"
		}
		fmt.Printf("%s %s %s\n", marker, color.Cyan.Sprintf("%-10s", name), p.Description)
	}
}
