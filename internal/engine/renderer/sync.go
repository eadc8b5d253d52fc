package renderer

import (
	"github.com/Faultbox/raytrace-demo/internal/engine/camera"
	"github.com/Faultbox/raytrace-demo/internal/engine/scene"
	"github.com/Faultbox/raytrace-demo/internal/engine/texture"
)

// MeshTextureUnit is the texture unit the mesh sampler reads from.
const MeshTextureUnit = 0

// Frame is everything one frame's uniforms are built from.
type Frame struct {
	Camera   *camera.Camera
	Width    int
	Height   int
	Settings *scene.Settings
	Scene    *scene.Registry

	// Mesh may be nil when no mesh is loaded.
	Mesh *texture.MeshTexture
}

func boolInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

// SyncRayTrace writes the complete ray-tracing uniform state for f.
func SyncRayTrace(u Uniforms, t *UniformTable, f Frame) {
	view := f.Camera.ViewMatrix()
	proj := f.Camera.ProjectionMatrix(f.Width, f.Height)

	u.Vec3(t.CameraPosition, f.Camera.Position)
	u.Mat4(t.ViewMatrix, &view)
	u.Mat4(t.ProjectionMatrix, &proj)
	u.Float(t.ScreenWidth, float32(f.Width))
	u.Float(t.ScreenHeight, float32(f.Height))

	s := f.Settings
	u.Int(t.EnableShadows, boolInt(s.Shadows))
	u.Int(t.EnableReflections, boolInt(s.Reflections))
	u.Int(t.MaxBounces, int32(s.MaxBounces))
	u.Float(t.Reflectivity, s.Reflectivity)

	objects := f.Scene.Objects()
	u.Int(t.NumObjects, int32(len(objects)))
	for i := range objects {
		o := &objects[i]
		slot := t.Objects[i]
		u.Int(slot.Type, int32(o.Kind()))
		u.Vec3(slot.Position, o.Position)
		u.Vec3(slot.Size, o.Shape.Size())
		u.Vec3(slot.Color, o.Color)
		u.Float(slot.Reflectivity, o.Reflectivity)
	}

	lights := f.Scene.Lights()
	u.Int(t.NumLights, int32(len(lights)))
	for i := range lights {
		l := &lights[i]
		slot := t.Lights[i]
		u.Vec3(slot.Position, l.Position)
		u.Vec3(slot.Color, l.Color)
		u.Float(slot.Intensity, l.Intensity)
	}
	u.Vec3(t.AmbientLight, f.Scene.Ambient)

	var texID uint32
	if f.Mesh != nil {
		texID = f.Mesh.ID
	}
	u.Texture2D(t.MeshDataTexture, MeshTextureUnit, texID)
	u.Int(t.NumTriangles, int32(f.Mesh.NumTriangles()))
	u.Int(t.MeshObjectIndex, int32(f.Scene.MeshIndex()))
	u.Int(t.MeshTextureSize, int32(f.Mesh.SizeInTexels()))
}

// SyncRaster writes the raster matrices. The world matrix rotates the
// model by the current raster rotation.
func SyncRaster(u Uniforms, t *RasterTable, f Frame) {
	world := f.Settings.RotationAxis.Rotation(f.Settings.Rotation)
	view := f.Camera.ViewMatrix()
	proj := f.Camera.ProjectionMatrix(f.Width, f.Height)

	u.Mat4(t.World, &world)
	u.Mat4(t.View, &view)
	u.Mat4(t.Projection, &proj)
}
