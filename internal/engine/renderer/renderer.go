// Package renderer draws the scene either by ray tracing a full-screen quad
// or by rasterizing the loaded mesh, and owns the per-frame uniform
// protocol between the scene model and the shaders.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/raytrace-demo/internal/engine/model"
	"github.com/Faultbox/raytrace-demo/internal/engine/renderer/shaders"
	"github.com/Faultbox/raytrace-demo/internal/engine/shader"
	"github.com/Faultbox/raytrace-demo/internal/engine/texture"
	"github.com/Faultbox/raytrace-demo/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// programs is one compiled pair of ray-tracing and raster programs with
// their resolved uniform tables.
type programs struct {
	rayTrace uint32
	raster   uint32
	rayTable *UniformTable
	rasTable *RasterTable
}

func compilePrograms(src shaders.Set) (*programs, error) {
	rt, err := shader.CompileProgram(src.QuadVertex, src.RayTraceFragment)
	if err != nil {
		return nil, fmt.Errorf("ray tracing program: %w", err)
	}
	ras, err := shader.CompileProgram(src.MeshVertex, src.MeshFragment)
	if err != nil {
		gl.DeleteProgram(rt)
		return nil, fmt.Errorf("raster program: %w", err)
	}

	p := &programs{
		rayTrace: rt,
		raster:   ras,
		rayTable: ResolveRayTrace(shader.Locator(rt)),
		rasTable: ResolveRaster(shader.Locator(ras)),
	}
	if len(p.rayTable.Missing) > 0 {
		logger.Debug("ray tracing uniforms not active", zap.Strings("names", p.rayTable.Missing))
	}
	if len(p.rasTable.Missing) > 0 {
		logger.Debug("raster uniforms not active", zap.Strings("names", p.rasTable.Missing))
	}
	return p, nil
}

func (p *programs) delete() {
	gl.DeleteProgram(p.rayTrace)
	gl.DeleteProgram(p.raster)
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config

	progs    *programs
	uniforms Uniforms

	quadVAO, quadVBO uint32
	mesh             meshBuffers
	meshTex          *texture.MeshTexture

	lastError uint32
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config, src shaders.Set) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)

	progs, err := compilePrograms(src)
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		config:   cfg,
		progs:    progs,
		uniforms: glUniforms{},
	}
	r.quadVAO, r.quadVBO = createQuad()

	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0, 0, 0, 1)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	return r, nil
}

// ReloadShaders recompiles both programs. On failure the previous programs
// stay in use.
func (r *Renderer) ReloadShaders(src shaders.Set) error {
	progs, err := compilePrograms(src)
	if err != nil {
		return err
	}
	r.progs.delete()
	r.progs = progs
	logger.Info("shaders reloaded")
	return nil
}

// LoadMesh uploads n for both render paths, replacing any previous mesh.
// It returns the encoded texture data.
func (r *Renderer) LoadMesh(n *model.Normalized) texture.MeshData {
	r.mesh.upload(n)

	data := texture.Encode(n.Triangles)
	if r.meshTex == nil {
		r.meshTex = texture.Upload(data)
	} else {
		r.meshTex.Replace(data)
	}

	logger.Info("mesh uploaded",
		zap.Int("vertices", len(n.Vertices)),
		zap.Int("triangles", data.NumTriangles),
		zap.Int("dropped", data.Dropped),
		zap.String("texture", fmt.Sprintf("%dx%d", data.Width, data.Height)),
	)
	return data
}

// MeshTexture returns the uploaded mesh texture, or nil.
func (r *Renderer) MeshTexture() *texture.MeshTexture {
	return r.meshTex
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Draw renders one frame with the path selected by f.Settings.
func (r *Renderer) Draw(f Frame) {
	if f.Width == 0 || f.Height == 0 {
		f.Width, f.Height = r.config.Width, r.config.Height
	}

	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if f.Settings.RayTracing {
		gl.Disable(gl.DEPTH_TEST)
		gl.UseProgram(r.progs.rayTrace)
		f.Mesh = r.meshTex
		SyncRayTrace(r.uniforms, r.progs.rayTable, f)

		gl.BindVertexArray(r.quadVAO)
		gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
		gl.BindVertexArray(0)
	} else {
		gl.Enable(gl.DEPTH_TEST)
		gl.UseProgram(r.progs.raster)
		SyncRaster(r.uniforms, r.progs.rasTable, f)
		r.mesh.draw()
	}

	gl.UseProgram(0)
	r.checkError()
}

// checkError logs a GL error once per distinct code so a persistent fault
// does not flood the log every frame.
func (r *Renderer) checkError() {
	code := gl.GetError()
	if code == gl.NO_ERROR {
		r.lastError = 0
		return
	}
	if code != r.lastError {
		logger.Error("OpenGL rendering error", zap.Uint32("code", code))
	}
	r.lastError = code
}

// ReadPixels reads the RGBA contents of the bound framebuffer.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	r.mesh.delete()
	if r.meshTex != nil {
		r.meshTex.Delete()
	}
	if r.quadVAO != 0 {
		gl.DeleteVertexArrays(1, &r.quadVAO)
		gl.DeleteBuffers(1, &r.quadVBO)
	}
	if r.progs != nil {
		r.progs.delete()
	}
}
