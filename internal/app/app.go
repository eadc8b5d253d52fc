// Package app runs the interactive demo: window, input, scene state and
// the per-frame draw.
package app

import (
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/raytrace-demo/internal/assets"
	"github.com/Faultbox/raytrace-demo/internal/config"
	"github.com/Faultbox/raytrace-demo/internal/engine/debug"
	"github.com/Faultbox/raytrace-demo/internal/engine/framebuffer"
	"github.com/Faultbox/raytrace-demo/internal/engine/input"
	"github.com/Faultbox/raytrace-demo/internal/engine/renderer"
	"github.com/Faultbox/raytrace-demo/internal/engine/renderer/shaders"
	"github.com/Faultbox/raytrace-demo/internal/engine/scene"
	"github.com/Faultbox/raytrace-demo/internal/engine/window"
	"github.com/Faultbox/raytrace-demo/internal/logger"
)

// App is the demo instance.
type App struct {
	cfg *config.Config

	window      *window.Window
	renderer    *renderer.Renderer
	input       *input.Input
	assets      *assets.Manager
	screenshots *debug.ScreenshotCapture

	state State
	mesh  MeshSource
	fps   FPSCounter
}

// New creates the window and renderer, loads the mesh and builds the
// default scene.
func New(cfg *config.Config) (*App, error) {
	settings, err := SettingsFromConfig(cfg.Render)
	if err != nil {
		return nil, err
	}
	shots, err := debug.NewScreenshotCapture(cfg.Screenshot.Dir, "raytrace", cfg.Screenshot.Format)
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:         cfg,
		input:       input.New(),
		assets:      assets.NewManager("."),
		screenshots: shots,
		state: State{
			Settings: settings,
			Scene:    scene.NewRegistry(),
			Camera:   CameraFromConfig(cfg.Camera),
		},
	}

	src, err := shaders.FromDir(cfg.Assets.ShaderDir)
	if err != nil {
		return nil, fmt.Errorf("loading shaders: %w", err)
	}

	a.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The renderer needs the GL context the window created.
	w, h := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{Width: w, Height: h}, src)
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	mesh, source, err := LoadMesh(a.assets, cfg.Assets)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("loading mesh %s: %w", source, err)
	}
	a.mesh = source
	a.renderer.LoadMesh(mesh)
	a.state.Scene.Reset(true)

	if cfg.Assets.HotReload {
		a.watch()
	}

	logger.Info("demo initialized",
		zap.Stringer("mesh", source),
		zap.String("mode", a.state.Mode()),
		zap.Int("objects", a.state.Scene.NumObjects()),
		zap.Int("lights", a.state.Scene.NumLights()),
	)
	return a, nil
}

// watch subscribes to the model file and shader directory. Failures only
// disable hot reload.
func (a *App) watch() {
	var names []string
	if a.mesh.Path != "" {
		names = append(names, a.mesh.Path)
	}
	if dir := a.cfg.Assets.ShaderDir; dir != "" {
		for _, f := range []string{
			shaders.QuadVertexFile,
			shaders.RayTraceFragmentFile,
			shaders.MeshVertexFile,
			shaders.MeshFragmentFile,
		} {
			names = append(names, filepath.Join(dir, f))
		}
	}
	if len(names) == 0 {
		logger.Info("hot reload has nothing to watch")
		return
	}
	if err := a.assets.Watch(names...); err != nil {
		logger.Warn("hot reload disabled", zap.Error(err))
		return
	}
	logger.Info("hot reload enabled", zap.Strings("files", names))
}

// Run starts the frame loop and returns when the user quits.
func (a *App) Run() error {
	logger.Info("starting frame loop")
	last := time.Now()

	for !a.state.Quit {
		now := time.Now()
		dt := now.Sub(last)
		last = now

		if a.input.Update() {
			a.state.Quit = true
		}
		if _, _, ok := a.input.Resized(); ok {
			a.renderer.Resize(a.window.DrawableSize())
		}
		a.state.Apply(a.input.Actions())
		a.state.Orbit(a.input.Drag())
		if a.state.ToggleFullscreen {
			a.state.ToggleFullscreen = false
			a.window.ToggleFullscreen()
		}
		a.applyChanges()

		a.state.Settings.Advance()
		a.draw()

		if a.state.Screenshot {
			a.state.Screenshot = false
			a.capture()
		}
		a.window.SwapBuffers()

		if fps, ok := a.fps.Tick(dt); ok {
			a.window.SetTitle(FormatTitle(fps))
		}
	}

	logger.Info("frame loop stopped")
	return nil
}

func (a *App) draw() {
	w, h := a.window.DrawableSize()
	a.renderer.Draw(renderer.Frame{
		Camera:   a.state.Camera,
		Width:    w,
		Height:   h,
		Settings: &a.state.Settings,
		Scene:    a.state.Scene,
	})
}

// applyChanges drains file changes reported since the last frame.
func (a *App) applyChanges() {
	changes := a.assets.Changes()
	if changes == nil {
		return
	}
	reloadShaders := false
	for {
		select {
		case path := <-changes:
			if path == a.mesh.Path {
				a.reloadMesh()
			} else {
				reloadShaders = true
			}
		default:
			if reloadShaders {
				a.reloadShaders()
			}
			return
		}
	}
}

func (a *App) reloadMesh() {
	mesh, err := loadOFF(a.assets, a.mesh.Path)
	if err != nil {
		logger.Error("mesh reload failed, keeping previous mesh", zap.Error(err))
		return
	}
	a.renderer.LoadMesh(mesh)
	logger.Info("mesh reloaded", zap.String("path", a.mesh.Path))
}

func (a *App) reloadShaders() {
	src, err := shaders.FromDir(a.cfg.Assets.ShaderDir)
	if err == nil {
		err = a.renderer.ReloadShaders(src)
	}
	if err != nil {
		logger.Error("shader reload failed, keeping previous programs", zap.Error(err))
	}
}

func (a *App) capture() {
	pixels, w, h := a.renderer.ReadPixels()
	name, err := a.screenshots.Capture(framebuffer.FlipRGBA(pixels, w, h))
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("file", name))
}

// Close releases all resources.
func (a *App) Close() {
	logger.Info("closing demo")
	a.assets.Close()
	if a.renderer != nil {
		a.renderer.Close()
		a.renderer = nil
	}
	if a.window != nil {
		a.window.Close()
		a.window = nil
	}
}
