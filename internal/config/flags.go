package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file (.yaml or .toml)")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagModel      = flag.String("model", "", "OFF model to load")
	flagShape      = flag.String("shape", "", "Procedural mesh used when no model is set (box, cylinder, notched-box)")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagRaster     = flag.Bool("raster", false, "Start in rasterization mode")
	flagHotReload  = flag.Bool("hot-reload", false, "Reload the model and shaders when they change on disk")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagModel != "" {
		cfg.Assets.Model = *flagModel
	}
	if *flagShape != "" {
		cfg.Assets.Shape = *flagShape
		if *flagModel == "" {
			cfg.Assets.Model = ""
		}
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagRaster {
		cfg.Render.RayTracing = false
	}
	if *flagHotReload {
		cfg.Assets.HotReload = true
	}
}
