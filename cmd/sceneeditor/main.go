// Scene Editor - an imgui control panel for tuning the ray traced scene.
package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/raytrace-demo/internal/app"
	"github.com/Faultbox/raytrace-demo/internal/assets"
	"github.com/Faultbox/raytrace-demo/internal/config"
	"github.com/Faultbox/raytrace-demo/internal/engine/debug"
	"github.com/Faultbox/raytrace-demo/internal/engine/framebuffer"
	"github.com/Faultbox/raytrace-demo/internal/engine/model"
	"github.com/Faultbox/raytrace-demo/internal/engine/renderer"
	"github.com/Faultbox/raytrace-demo/internal/engine/renderer/shaders"
	"github.com/Faultbox/raytrace-demo/internal/engine/scene"
	"github.com/Faultbox/raytrace-demo/internal/engine/ui"
	"github.com/Faultbox/raytrace-demo/internal/logger"
)

func main() {
	runtime.LockOSThread()

	config.ParseFlags()
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ed, err := NewEditor(cfg)
	if err != nil {
		logger.Error("failed to start editor", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	defer ed.Close()

	ed.Run()
}

// meshInfo is shown in the raster panel.
type meshInfo struct {
	source    app.MeshSource
	vertices  int
	triangles int
	dropped   int
}

// Editor holds the editor state.
type Editor struct {
	cfg *config.Config

	backend     *ui.Backend
	renderer    *renderer.Renderer
	view        *framebuffer.Framebuffer
	assets      *assets.Manager
	screenshots *debug.ScreenshotCapture

	state    app.State
	mesh     meshInfo
	selected int // object index picked in the view, or -1
	fps      app.FPSCounter
	last     time.Time

	// Paths picked in the file dialog, consumed on the render thread.
	opened chan string

	status     string
	statusTime time.Time
}

// NewEditor creates the window, renderer and default scene.
func NewEditor(cfg *config.Config) (*Editor, error) {
	settings, err := app.SettingsFromConfig(cfg.Render)
	if err != nil {
		return nil, err
	}
	shots, err := debug.NewScreenshotCapture(cfg.Screenshot.Dir, "sceneeditor", cfg.Screenshot.Format)
	if err != nil {
		return nil, err
	}
	src, err := shaders.FromDir(cfg.Assets.ShaderDir)
	if err != nil {
		return nil, fmt.Errorf("loading shaders: %w", err)
	}

	ed := &Editor{
		cfg:         cfg,
		assets:      assets.NewManager("."),
		screenshots: shots,
		state: app.State{
			Settings: settings,
			Scene:    scene.NewRegistry(),
			Camera:   app.CameraFromConfig(cfg.Camera),
		},
		selected: -1,
		opened:   make(chan string, 1),
		last:     time.Now(),
	}

	ed.backend, err = ui.NewBackend(app.Title+" - Scene Editor", cfg.Graphics.Width+panelWidth, cfg.Graphics.Height)
	if err != nil {
		ed.Close()
		return nil, err
	}

	ed.renderer, err = renderer.New(renderer.Config{Width: cfg.Graphics.Width, Height: cfg.Graphics.Height}, src)
	if err != nil {
		ed.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	ed.view, err = framebuffer.New(cfg.Graphics.Width, cfg.Graphics.Height)
	if err != nil {
		ed.Close()
		return nil, err
	}

	n, source, err := app.LoadMesh(ed.assets, cfg.Assets)
	if err != nil {
		ed.Close()
		return nil, fmt.Errorf("loading mesh %s: %w", source, err)
	}
	ed.useMesh(n, source)
	ed.state.Scene.Reset(true)
	return ed, nil
}

func (ed *Editor) useMesh(n *model.Normalized, source app.MeshSource) {
	data := ed.renderer.LoadMesh(n)
	ed.mesh = meshInfo{
		source:    source,
		vertices:  len(n.Vertices),
		triangles: data.NumTriangles,
		dropped:   data.Dropped,
	}
}

// Run starts the imgui loop.
func (ed *Editor) Run() {
	ed.backend.Run(ed.render)
}

// Close releases GL resources and, when the editor never started running,
// the window. It is safe on a partially built editor.
func (ed *Editor) Close() {
	if ed.assets != nil {
		ed.assets.Close()
	}
	if ed.view != nil {
		ed.view.Destroy()
		ed.view = nil
	}
	if ed.renderer != nil {
		ed.renderer.Close()
		ed.renderer = nil
	}
	if ed.backend != nil {
		ed.backend.Close()
		ed.backend = nil
	}
}

func (ed *Editor) setStatus(msg string) {
	ed.status = msg
	ed.statusTime = time.Now()
}

// render is called each frame by the backend.
func (ed *Editor) render() {
	ed.openPending()

	now := time.Now()
	if fps, ok := ed.fps.Tick(now.Sub(ed.last)); ok {
		ed.backend.SetWindowTitle(app.FormatTitle(fps))
	}
	ed.last = now

	if ui.IsKeyPressed(keyScreenshot) {
		ed.state.Screenshot = true
	}
	if ui.IsKeyPressed(keyToggle) {
		ed.state.Settings.RayTracing = !ed.state.Settings.RayTracing
	}
	if ui.IsKeyPressed(keyResetRotation) {
		ed.state.Settings.ResetRotation()
	}

	ed.state.Settings.Advance()
	ed.renderMenu()
	ed.renderLayout()

	if ed.state.Screenshot {
		ed.state.Screenshot = false
		ed.capture()
	}
}

func (ed *Editor) capture() {
	name, err := ed.screenshots.Capture(ed.view.Image())
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		ed.setStatus("Screenshot failed: " + err.Error())
		return
	}
	logger.Info("screenshot saved", zap.String("file", name))
	ed.setStatus("Saved " + name)
}

func (ed *Editor) loadModel(path string) {
	assetsCfg := ed.cfg.Assets
	assetsCfg.Model = path

	n, source, err := app.LoadMesh(ed.assets, assetsCfg)
	if err != nil {
		logger.Error("failed to open model", zap.String("path", path), zap.Error(err))
		ed.setStatus("Open failed: " + err.Error())
		return
	}
	ed.cfg.Assets.Model = path
	ed.useMesh(n, source)
	if !ed.state.Scene.HasMesh() {
		ed.state.Scene.Reset(true)
	}
	ed.setStatus("Loaded " + source.String())
}

func (ed *Editor) saveConfig() {
	ed.state.Store(ed.cfg)
	path := config.ConfigPath()
	var err error
	if path != "" {
		err = ed.cfg.SaveTo(path)
	} else {
		err = ed.cfg.Save()
	}
	if err != nil {
		logger.Error("failed to save config", zap.Error(err))
		ed.setStatus("Save failed: " + err.Error())
		return
	}
	ed.setStatus("Config saved")
}
