package renderer

import (
	"fmt"

	"github.com/Faultbox/raytrace-demo/internal/engine/scene"
	"github.com/Faultbox/raytrace-demo/pkg/math"
)

// Locator resolves a uniform name to a location, -1 when the program has no
// such active uniform.
type Locator interface {
	Location(name string) int32
}

// Uniforms writes uniform values into the program in use. Writes to
// location -1 are silently ignored, as GL does.
type Uniforms interface {
	Int(loc int32, v int32)
	Float(loc int32, v float32)
	Vec3(loc int32, v math.Vec3)
	Mat4(loc int32, m *math.Mat4)
	// Texture2D binds tex to texture unit and points the sampler at it.
	Texture2D(loc int32, unit uint32, tex uint32)
}

// ObjectSlot holds the locations of objects[i].
type ObjectSlot struct {
	Type, Position, Size, Color, Reflectivity int32
}

// LightSlot holds the locations of lights[i].
type LightSlot struct {
	Position, Color, Intensity int32
}

// UniformTable holds every ray-tracing uniform location, resolved once
// after linking. Each object and light slot up to capacity is resolved up
// front so frames never query names.
type UniformTable struct {
	CameraPosition   int32
	ViewMatrix       int32
	ProjectionMatrix int32
	ScreenWidth      int32
	ScreenHeight     int32

	EnableShadows     int32
	EnableReflections int32
	MaxBounces        int32
	Reflectivity      int32

	NumObjects   int32
	Objects      [scene.MaxObjects]ObjectSlot
	NumLights    int32
	Lights       [scene.MaxLights]LightSlot
	AmbientLight int32

	MeshDataTexture int32
	NumTriangles    int32
	MeshObjectIndex int32
	MeshTextureSize int32

	// Missing lists names that resolved to -1.
	Missing []string
}

type resolver struct {
	l       Locator
	missing []string
}

func (r *resolver) get(name string) int32 {
	loc := r.l.Location(name)
	if loc < 0 {
		r.missing = append(r.missing, name)
	}
	return loc
}

// ResolveRayTrace looks up the ray-tracing uniforms.
func ResolveRayTrace(l Locator) *UniformTable {
	r := &resolver{l: l}
	t := &UniformTable{
		CameraPosition:    r.get("cameraPosition"),
		ViewMatrix:        r.get("viewMatrix"),
		ProjectionMatrix:  r.get("projectionMatrix"),
		ScreenWidth:       r.get("screenWidth"),
		ScreenHeight:      r.get("screenHeight"),
		EnableShadows:     r.get("enableShadows"),
		EnableReflections: r.get("enableReflections"),
		MaxBounces:        r.get("maxBounces"),
		Reflectivity:      r.get("reflectivity"),
		NumObjects:        r.get("numObjects"),
		NumLights:         r.get("numLights"),
		AmbientLight:      r.get("ambientLight"),
		MeshDataTexture:   r.get("meshDataTexture"),
		NumTriangles:      r.get("numTriangles"),
		MeshObjectIndex:   r.get("meshObjectIndex"),
		MeshTextureSize:   r.get("meshTextureSize"),
	}
	for i := range t.Objects {
		prefix := fmt.Sprintf("objects[%d].", i)
		t.Objects[i] = ObjectSlot{
			Type:         r.get(prefix + "type"),
			Position:     r.get(prefix + "position"),
			Size:         r.get(prefix + "size"),
			Color:        r.get(prefix + "color"),
			Reflectivity: r.get(prefix + "reflectivity"),
		}
	}
	for i := range t.Lights {
		prefix := fmt.Sprintf("lights[%d].", i)
		t.Lights[i] = LightSlot{
			Position:  r.get(prefix + "position"),
			Color:     r.get(prefix + "color"),
			Intensity: r.get(prefix + "intensity"),
		}
	}
	t.Missing = r.missing
	return t
}

// RasterTable holds the raster program's matrix locations.
type RasterTable struct {
	World      int32
	View       int32
	Projection int32

	Missing []string
}

// ResolveRaster looks up the raster uniforms.
func ResolveRaster(l Locator) *RasterTable {
	r := &resolver{l: l}
	t := &RasterTable{
		World:      r.get("gWorld"),
		View:       r.get("gView"),
		Projection: r.get("gProjection"),
	}
	t.Missing = r.missing
	return t
}
