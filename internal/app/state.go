package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/Faultbox/raytrace-demo/internal/config"
	"github.com/Faultbox/raytrace-demo/internal/engine/camera"
	"github.com/Faultbox/raytrace-demo/internal/engine/input"
	"github.com/Faultbox/raytrace-demo/internal/engine/scene"
	"github.com/Faultbox/raytrace-demo/pkg/math"
)

// SettingsFromConfig builds the startup render toggles.
func SettingsFromConfig(cfg config.RenderConfig) (scene.Settings, error) {
	axis, err := scene.ParseAxis(cfg.RotationAxis)
	if err != nil {
		return scene.Settings{}, err
	}
	s := scene.DefaultSettings()
	s.RayTracing = cfg.RayTracing
	s.Shadows = cfg.Shadows
	s.Reflections = cfg.Reflections
	s.MaxBounces = cfg.MaxBounces
	s.Reflectivity = cfg.Reflectivity
	s.AutoRotate = cfg.AutoRotate
	s.RotationSpeed = cfg.RotationSpeed
	s.RotationAxis = axis
	return s, nil
}

// CameraFromConfig builds the startup camera.
func CameraFromConfig(cfg config.CameraConfig) *camera.Camera {
	c := camera.New()
	c.Position = math.FromArr(cfg.Position)
	c.Target = math.FromArr(cfg.Target)
	c.Up = math.FromArr(cfg.Up)
	c.FOV = cfg.FOV
	return c
}

// State is the per-frame mutable state the frame loop drives.
type State struct {
	Settings scene.Settings
	Scene    *scene.Registry
	Camera   *camera.Camera

	Quit             bool
	Screenshot       bool
	ToggleFullscreen bool
}

// Apply runs the actions of one frame. Screenshot and fullscreen requests
// stay set until the loop consumes them.
func (s *State) Apply(actions []input.Action) {
	for _, a := range actions {
		switch a {
		case input.ActionQuit:
			s.Quit = true
		case input.ActionToggleRayTracing:
			s.Settings.RayTracing = !s.Settings.RayTracing
		case input.ActionResetRotation:
			s.Settings.ResetRotation()
		case input.ActionScreenshot:
			s.Screenshot = true
		case input.ActionToggleFullscreen:
			s.ToggleFullscreen = true
		}
	}
}

// Orbit applies a mouse gesture to the camera.
func (s *State) Orbit(d input.Drag) {
	if d.DX != 0 || d.DY != 0 {
		s.Camera.HandleDrag(d.DX, d.DY)
	}
	if d.Wheel != 0 {
		s.Camera.HandleZoom(d.Wheel)
	}
}

// Mode names the active render path.
func (s *State) Mode() string {
	if s.Settings.RayTracing {
		return "ray tracing"
	}
	return "raster"
}

// Title is the window title prefix.
const Title = "Ray Tracing Demo"

// FormatTitle returns the window title showing fps.
func FormatTitle(fps float64) string {
	return fmt.Sprintf("%s [ FPS: %4.2f ]", Title, fps)
}

// FPSCounter averages frame rate over one-second windows.
type FPSCounter struct {
	frames  int
	elapsed time.Duration
}

// Tick records one frame of length dt. It reports the average rate once a
// full second has accumulated.
func (f *FPSCounter) Tick(dt time.Duration) (fps float64, ok bool) {
	f.frames++
	f.elapsed += dt
	if f.elapsed < time.Second {
		return 0, false
	}
	fps = float64(f.frames) / f.elapsed.Seconds()
	f.frames = 0
	f.elapsed = 0
	return fps, true
}

// Store writes the editable settings back into cfg so they can be saved.
func (s *State) Store(cfg *config.Config) {
	r := &cfg.Render
	r.RayTracing = s.Settings.RayTracing
	r.Shadows = s.Settings.Shadows
	r.Reflections = s.Settings.Reflections
	r.MaxBounces = s.Settings.MaxBounces
	r.Reflectivity = s.Settings.Reflectivity
	r.AutoRotate = s.Settings.AutoRotate
	r.RotationSpeed = s.Settings.RotationSpeed
	r.RotationAxis = strings.ToLower(s.Settings.RotationAxis.String())

	c := &cfg.Camera
	c.Position = s.Camera.Position.Arr()
	c.Target = s.Camera.Target.Arr()
	c.Up = s.Camera.Up.Arr()
	c.FOV = s.Camera.FOV
}
