// Package texture packs mesh triangles into float textures the ray-tracing
// shader can sample, and uploads them to the GPU.
package texture

import (
	"go.uber.org/zap"

	"github.com/Faultbox/raytrace-demo/internal/engine/model"
	"github.com/Faultbox/raytrace-demo/internal/logger"
)

// Mesh texture layout. One triangle occupies one row: texels 0-2 hold
// v0, v1, v2 and the normal as 12 consecutive floats, texel 3 is padding.
const (
	MaxTriangles      = 5000
	FloatsPerTriangle = 12
	TexelsPerTriangle = 4
	Channels          = 4
)

// MeshData is the CPU side of a mesh texture: an RGBA32F grid of
// Width x Height texels stored row-major.
type MeshData struct {
	Texels       []float32
	Width        int
	Height       int
	NumTriangles int

	// Dropped counts triangles past MaxTriangles that were not encoded.
	Dropped int
}

// SizeInTexels returns Width*Height, the value the shader receives.
func (d MeshData) SizeInTexels() int {
	return d.Width * d.Height
}

// SizeInFloats returns the length of Texels.
func (d MeshData) SizeInFloats() int {
	return d.Width * d.Height * Channels
}

// NextPowerOfTwo returns the smallest power of two >= n, and 1 for n <= 1.
func NextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p *= 2
	}
	return p
}

// texelIndex returns the float offset of component j of triangle i.
func texelIndex(width, i, j int) int {
	return (i*width+j/Channels)*Channels + j%Channels
}

// Encode packs tris into a MeshData, keeping at most MaxTriangles. Each
// normal is recomputed from the triangle's own vertices.
func Encode(tris []model.Triangle) MeshData {
	n := len(tris)
	dropped := 0
	if n > MaxTriangles {
		logger.Warn("model has too many triangles, truncating",
			zap.Int("triangles", n),
			zap.Int("limit", MaxTriangles))
		dropped = n - MaxTriangles
		n = MaxTriangles
	}

	d := MeshData{
		Width:        TexelsPerTriangle,
		Height:       NextPowerOfTwo(n),
		NumTriangles: n,
		Dropped:      dropped,
	}
	d.Texels = make([]float32, d.SizeInFloats())

	for i := 0; i < n; i++ {
		t := tris[i]
		normal := model.FaceNormal(t.V0, t.V1, t.V2)
		floats := [FloatsPerTriangle]float32{
			t.V0.X, t.V0.Y, t.V0.Z,
			t.V1.X, t.V1.Y, t.V1.Z,
			t.V2.X, t.V2.Y, t.V2.Z,
			normal.X, normal.Y, normal.Z,
		}
		for j, f := range floats {
			d.Texels[texelIndex(d.Width, i, j)] = f
		}
	}

	return d
}

// DecodeTriangle reads triangle i back out of d.
func DecodeTriangle(d MeshData, i int) model.Triangle {
	var f [FloatsPerTriangle]float32
	for j := range f {
		f[j] = d.Texels[texelIndex(d.Width, i, j)]
	}
	t := model.Triangle{}
	t.V0.X, t.V0.Y, t.V0.Z = f[0], f[1], f[2]
	t.V1.X, t.V1.Y, t.V1.Z = f[3], f[4], f[5]
	t.V2.X, t.V2.Y, t.V2.Z = f[6], f[7], f[8]
	t.Normal.X, t.Normal.Y, t.Normal.Z = f[9], f[10], f[11]
	return t
}
