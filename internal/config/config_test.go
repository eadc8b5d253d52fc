package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/multierr"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 800 || cfg.Graphics.Height != 800 {
		t.Errorf("expected 800x800, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}

	if !cfg.Render.RayTracing || !cfg.Render.Shadows || !cfg.Render.Reflections {
		t.Error("expected ray tracing, shadows and reflections enabled by default")
	}
	if cfg.Render.MaxBounces != 3 {
		t.Errorf("expected max bounces 3, got %d", cfg.Render.MaxBounces)
	}
	if cfg.Render.Reflectivity != 0.5 {
		t.Errorf("expected reflectivity 0.5, got %f", cfg.Render.Reflectivity)
	}

	if cfg.Camera.Position != [3]float32{7, 7, 7} {
		t.Errorf("expected camera at (7,7,7), got %v", cfg.Camera.Position)
	}
	if cfg.Camera.FOV != 45 {
		t.Errorf("expected fov 45, got %f", cfg.Camera.FOV)
	}

	if cfg.Assets.Model != "models/cube.off" {
		t.Errorf("expected model models/cube.off, got %s", cfg.Assets.Model)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false

render:
  ray_tracing: false
  shadows: false
  max_bounces: 5
  reflectivity: 0.25

camera:
  position: [0, 2, 10]
  fov: 60

assets:
  model: "models/bunny.off"
  hot_reload: true

logging:
  level: "debug"
  log_file: "raytrace.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 || cfg.Graphics.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Render.RayTracing || cfg.Render.Shadows {
		t.Error("expected ray tracing and shadows disabled")
	}
	if !cfg.Render.Reflections {
		t.Error("reflections not in file, expected default true")
	}
	if cfg.Render.MaxBounces != 5 {
		t.Errorf("expected max bounces 5, got %d", cfg.Render.MaxBounces)
	}
	if cfg.Camera.Position != [3]float32{0, 2, 10} {
		t.Errorf("expected camera (0,2,10), got %v", cfg.Camera.Position)
	}
	if cfg.Camera.Target != [3]float32{0, 0, 0} {
		t.Errorf("expected default target, got %v", cfg.Camera.Target)
	}
	if cfg.Assets.Model != "models/bunny.off" || !cfg.Assets.HotReload {
		t.Errorf("unexpected assets %+v", cfg.Assets)
	}
	if cfg.Logging.LogFile != "raytrace.log" {
		t.Errorf("expected log file 'raytrace.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromTOML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")

	tomlContent := `
[graphics]
width = 1024
height = 768

[render]
max_bounces = 7
rotation_axis = "x"

[camera]
position = [3.0, 4.0, 5.0]
fov = 70.0

[screenshot]
format = "bmp"
`

	if err := os.WriteFile(configPath, []byte(tomlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1024 || cfg.Graphics.Height != 768 {
		t.Errorf("expected 1024x768, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if cfg.Render.MaxBounces != 7 || cfg.Render.RotationAxis != "x" {
		t.Errorf("unexpected render %+v", cfg.Render)
	}
	if cfg.Camera.Position != [3]float32{3, 4, 5} || cfg.Camera.FOV != 70 {
		t.Errorf("unexpected camera %+v", cfg.Camera)
	}
	if cfg.Screenshot.Format != "bmp" {
		t.Errorf("expected bmp screenshots, got %s", cfg.Screenshot.Format)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.yaml")

	invalidYAML := `
graphics:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Graphics.Width = 0
	cfg.Render.MaxBounces = 11
	cfg.Camera.FOV = 120
	cfg.Screenshot.Format = "gif"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if n := len(multierr.Errors(err)); n != 4 {
		t.Errorf("expected 4 errors, got %d: %v", n, err)
	}
	if !strings.Contains(err.Error(), "max_bounces 11") {
		t.Errorf("error should mention max_bounces, got %v", err)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	if err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("[graphics]\nwidth = 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path != "./config.toml" {
		t.Errorf("expected ./config.toml, got %q", path)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "model flag",
			setup: func() { *flagModel = "models/teapot.off" },
			verify: func(cfg *Config) {
				if cfg.Assets.Model != "models/teapot.off" {
					t.Errorf("expected model models/teapot.off, got %s", cfg.Assets.Model)
				}
			},
			teardown: func() { *flagModel = "" },
		},
		{
			name:  "shape flag clears default model",
			setup: func() { *flagShape = "cylinder" },
			verify: func(cfg *Config) {
				if cfg.Assets.Shape != "cylinder" || cfg.Assets.Model != "" {
					t.Errorf("unexpected assets %+v", cfg.Assets)
				}
			},
			teardown: func() { *flagShape = "" },
		},
		{
			name:  "raster flag",
			setup: func() { *flagRaster = true },
			verify: func(cfg *Config) {
				if cfg.Render.RayTracing {
					t.Error("expected ray tracing disabled with raster flag")
				}
			},
			teardown: func() { *flagRaster = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(cfg *Config) {
				if cfg.Graphics.Width != 2560 || cfg.Graphics.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("render:\n  max_bounces: 99\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected Load to reject max_bounces 99")
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	for _, name := range []string{"out.yaml", "out.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "sub", name)

			cfg := Default()
			cfg.Render.MaxBounces = 6
			cfg.Camera.Position = [3]float32{1, 2, 3}
			if err := cfg.SaveTo(path); err != nil {
				t.Fatalf("SaveTo failed: %v", err)
			}

			loaded := Default()
			if err := loadFromFile(loaded, path); err != nil {
				t.Fatalf("failed to reload: %v", err)
			}
			if loaded.Render.MaxBounces != 6 || loaded.Camera.Position != [3]float32{1, 2, 3} {
				t.Errorf("round trip lost values: %+v %+v", loaded.Render, loaded.Camera)
			}
		})
	}
}
