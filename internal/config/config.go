// Package config handles renderer configuration loading and management.
package config

import (
	"fmt"

	"go.uber.org/multierr"
)

// Config holds all renderer settings.
type Config struct {
	Graphics   GraphicsConfig   `yaml:"graphics" toml:"graphics"`
	Render     RenderConfig     `yaml:"render" toml:"render"`
	Camera     CameraConfig     `yaml:"camera" toml:"camera"`
	Assets     AssetsConfig     `yaml:"assets" toml:"assets"`
	Screenshot ScreenshotConfig `yaml:"screenshot" toml:"screenshot"`
	Logging    LoggingConfig    `yaml:"logging" toml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width" toml:"width"`
	Height     int  `yaml:"height" toml:"height"`
	Fullscreen bool `yaml:"fullscreen" toml:"fullscreen"`
	VSync      bool `yaml:"vsync" toml:"vsync"`
}

// RenderConfig holds the initial render toggles.
type RenderConfig struct {
	RayTracing    bool    `yaml:"ray_tracing" toml:"ray_tracing"`
	Shadows       bool    `yaml:"shadows" toml:"shadows"`
	Reflections   bool    `yaml:"reflections" toml:"reflections"`
	MaxBounces    int     `yaml:"max_bounces" toml:"max_bounces"`
	Reflectivity  float32 `yaml:"reflectivity" toml:"reflectivity"`
	AutoRotate    bool    `yaml:"auto_rotate" toml:"auto_rotate"`
	RotationSpeed float32 `yaml:"rotation_speed" toml:"rotation_speed"`
	RotationAxis  string  `yaml:"rotation_axis" toml:"rotation_axis"` // x, y or z
}

// CameraConfig holds the initial camera placement.
type CameraConfig struct {
	Position [3]float32 `yaml:"position" toml:"position"`
	Target   [3]float32 `yaml:"target" toml:"target"`
	Up       [3]float32 `yaml:"up" toml:"up"`
	FOV      float32    `yaml:"fov" toml:"fov"` // degrees
}

// AssetsConfig holds mesh and shader sources.
type AssetsConfig struct {
	// Model is an OFF file. When empty, Shape selects a procedural mesh.
	Model     string `yaml:"model" toml:"model"`
	Shape     string `yaml:"shape" toml:"shape"`
	MeshCells int    `yaml:"mesh_cells" toml:"mesh_cells"`

	// ShaderDir overrides the embedded shaders when set.
	ShaderDir string `yaml:"shader_dir" toml:"shader_dir"`
	HotReload bool   `yaml:"hot_reload" toml:"hot_reload"`
}

// ScreenshotConfig holds screenshot output settings.
type ScreenshotConfig struct {
	Dir    string `yaml:"dir" toml:"dir"`
	Format string `yaml:"format" toml:"format"` // png or bmp
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" toml:"level"`
	LogFile string `yaml:"log_file" toml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      800,
			Height:     800,
			Fullscreen: false,
			VSync:      true,
		},
		Render: RenderConfig{
			RayTracing:    true,
			Shadows:       true,
			Reflections:   true,
			MaxBounces:    3,
			Reflectivity:  0.5,
			AutoRotate:    true,
			RotationSpeed: 0.01,
			RotationAxis:  "y",
		},
		Camera: CameraConfig{
			Position: [3]float32{7, 7, 7},
			Target:   [3]float32{0, 0, 0},
			Up:       [3]float32{0, 1, 0},
			FOV:      45,
		},
		Assets: AssetsConfig{
			Model:     "models/cube.off",
			Shape:     "notched-box",
			MeshCells: 16,
		},
		Screenshot: ScreenshotConfig{
			Dir:    "screenshots",
			Format: "png",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports every out-of-range setting at once.
func (c *Config) Validate() error {
	var err error
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		err = multierr.Append(err, fmt.Errorf("graphics: invalid size %dx%d", c.Graphics.Width, c.Graphics.Height))
	}
	if c.Render.MaxBounces < 0 || c.Render.MaxBounces > 10 {
		err = multierr.Append(err, fmt.Errorf("render: max_bounces %d outside [0, 10]", c.Render.MaxBounces))
	}
	if c.Render.Reflectivity < 0 || c.Render.Reflectivity > 1 {
		err = multierr.Append(err, fmt.Errorf("render: reflectivity %g outside [0, 1]", c.Render.Reflectivity))
	}
	switch c.Render.RotationAxis {
	case "x", "y", "z":
	default:
		err = multierr.Append(err, fmt.Errorf("render: unknown rotation_axis %q", c.Render.RotationAxis))
	}
	if c.Camera.FOV < 30 || c.Camera.FOV > 90 {
		err = multierr.Append(err, fmt.Errorf("camera: fov %g outside [30, 90]", c.Camera.FOV))
	}
	if c.Camera.Position == c.Camera.Target {
		err = multierr.Append(err, fmt.Errorf("camera: position equals target"))
	}
	if c.Assets.Model == "" && c.Assets.Shape == "" {
		err = multierr.Append(err, fmt.Errorf("assets: neither model nor shape set"))
	}
	if c.Assets.MeshCells < 8 || c.Assets.MeshCells > 200 {
		err = multierr.Append(err, fmt.Errorf("assets: mesh_cells %d outside [8, 200]", c.Assets.MeshCells))
	}
	switch c.Screenshot.Format {
	case "png", "bmp":
	default:
		err = multierr.Append(err, fmt.Errorf("screenshot: unknown format %q", c.Screenshot.Format))
	}
	return err
}
