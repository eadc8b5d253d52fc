// Package model turns loaded polygon meshes into normalized, triangulated
// geometry for the raster and ray-tracing paths.
package model

import "github.com/Faultbox/raytrace-demo/pkg/math"

// Mesh is a polygon mesh as produced by a loader. Every polygon index is
// expected to be below len(Vertices); polygons with fewer than three
// indices are degenerate and skipped.
type Mesh struct {
	Vertices []math.Vec3
	Polygons [][]int
	Bounds   Bounds

	// Extent is the largest bounding-box dimension. Zero means derive it
	// from Bounds.
	Extent float32
}

// Bounds holds an axis-aligned bounding box.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Center returns the midpoint of the box.
func (b Bounds) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the box dimensions.
func (b Bounds) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// Triangle is a normalized triangle with its face normal. The normal
// follows the winding (V1-V0)x(V2-V0) and is zero for collinear points.
type Triangle struct {
	V0, V1, V2 math.Vec3
	Normal     math.Vec3
}

// Vertex is the interleaved layout of the raster vertex buffer.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
}

// Normalized bundles everything the GPU side needs from one mesh.
type Normalized struct {
	// Vertices and Indices feed the raster path.
	Vertices []Vertex
	Indices  []uint32

	// Triangles feed the mesh texture for the ray tracer.
	Triangles []Triangle

	Center math.Vec3
	Scale  float32

	// Bounds of the normalized vertices.
	Bounds Bounds
}
