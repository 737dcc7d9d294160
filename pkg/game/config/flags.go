package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagPreset     = flag.String("preset", "", "Grid preset (see the presets command)")
	flagSpeed      = flag.Float64("speed", 0, "Scroll speed override")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging and HUD counters")
	flagWidth      = flag.Int("width", 0, "Window or frame width")
	flagHeight     = flag.Int("height", 0, "Window or frame height")
	flagFullscreen = flag.Bool("fullscreen", false, "Run the window fullscreen")
	flagFPS        = flag.Int("fps", 0, "Terminal frame rate")
	flagOut        = flag.String("out", "", "Snapshot output directory")
	flagFrames     = flag.Int("frames", 0, "Number of snapshot frames")
	flagAddr       = flag.String("addr", "", "HTTP listen address")
	flagWebRoot    = flag.String("web-root", "", "Directory served by the HTTP server")
	flagLang       = flag.String("lang", "", "Interface language")
	flagSaveConfig = flag.Bool("save-config", false, "Write the effective config and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via -config.
func ConfigPath() string {
	return *flagConfig
}

// SaveRequested reports whether -save-config was given.
func SaveRequested() bool {
	return *flagSaveConfig
}

// Debug reports whether -debug was given.
func Debug() bool {
	return *flagDebug
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.Window.ShowHUD = true
	}
	if *flagPreset != "" {
		cfg.Grid.Preset = *flagPreset
	}
	if *flagSpeed > 0 {
		cfg.Grid.Speed = *flagSpeed
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
		cfg.Snapshot.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
		cfg.Snapshot.Height = *flagHeight
	}
	if *flagFullscreen {
		cfg.Window.Fullscreen = true
	}
	if *flagFPS > 0 {
		cfg.Terminal.FPS = *flagFPS
	}
	if *flagOut != "" {
		cfg.Snapshot.Out = *flagOut
	}
	if *flagFrames > 0 {
		cfg.Snapshot.Frames = *flagFrames
	}
	if *flagAddr != "" {
		cfg.Server.Addr = *flagAddr
	}
	if *flagWebRoot != "" {
		cfg.Server.WebRoot = *flagWebRoot
	}
	if *flagLang != "" {
		cfg.Language = *flagLang
	}
}
