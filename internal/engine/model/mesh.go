package model

import (
	"errors"

	"github.com/Faultbox/raytrace-demo/pkg/formats"
	"github.com/Faultbox/raytrace-demo/pkg/math"
)

// Normalization errors.
var (
	ErrNilMesh   = errors.New("model: nil mesh")
	ErrEmptyMesh = errors.New("model: mesh has no vertices")
)

// FromOFF wraps a parsed OFF file as a Mesh.
func FromOFF(off *formats.OFF) *Mesh {
	return &Mesh{
		Vertices: off.Vertices,
		Polygons: off.Faces,
		Bounds:   Bounds{Min: off.Min, Max: off.Max},
		Extent:   off.Extent(),
	}
}

// ComputeBounds returns the bounding box of points.
func ComputeBounds(points []math.Vec3) Bounds {
	if len(points) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		b.Min = b.Min.Min(p)
		b.Max = b.Max.Max(p)
	}
	return b
}

// Center returns the point mapped to the origin by normalization.
func Center(m *Mesh) math.Vec3 {
	return m.Bounds.Center()
}

// ScaleFactor returns 2/extent so the largest dimension spans [-1, 1].
// A flat or single-point mesh is left unscaled.
func ScaleFactor(m *Mesh) float32 {
	extent := m.Extent
	if extent <= 0 {
		extent = m.Bounds.Size().MaxComponent()
	}
	if extent <= 0 {
		return 1
	}
	return 2 / extent
}

// NormalizeVertices maps every vertex through (v - center) * scale.
func NormalizeVertices(m *Mesh) []math.Vec3 {
	c := Center(m)
	s := ScaleFactor(m)
	out := make([]math.Vec3, len(m.Vertices))
	for i, v := range m.Vertices {
		out[i] = v.Sub(c).Scale(s)
	}
	return out
}

// fan calls emit for each triangle (p0, p[j+1], p[j+2]) of every polygon
// with at least three sides whose indices are all in range.
func fan(m *Mesh, emit func(a, b, c int)) {
	n := len(m.Vertices)
	valid := func(i int) bool { return i >= 0 && i < n }

	for _, poly := range m.Polygons {
		if len(poly) < 3 {
			continue
		}
		for j := 0; j < len(poly)-2; j++ {
			a, b, c := poly[0], poly[j+1], poly[j+2]
			if !valid(a) || !valid(b) || !valid(c) {
				continue
			}
			emit(a, b, c)
		}
	}
}

// TriangleCount returns the number of triangles the fan triangulation
// produces.
func TriangleCount(m *Mesh) int {
	count := 0
	fan(m, func(_, _, _ int) { count++ })
	return count
}

// FanIndices returns the index buffer for the raster path.
func FanIndices(m *Mesh) []uint32 {
	indices := make([]uint32, 0, TriangleCount(m)*3)
	fan(m, func(a, b, c int) {
		indices = append(indices, uint32(a), uint32(b), uint32(c))
	})
	return indices
}

// FaceNormal returns normalize((b-a) x (c-a)).
func FaceNormal(a, b, c math.Vec3) math.Vec3 {
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}

// Triangulate returns the normalized triangle list for the ray tracer.
func Triangulate(m *Mesh) []Triangle {
	return triangulate(m, NormalizeVertices(m))
}

func triangulate(m *Mesh, verts []math.Vec3) []Triangle {
	tris := make([]Triangle, 0, TriangleCount(m))
	fan(m, func(a, b, c int) {
		v0, v1, v2 := verts[a], verts[b], verts[c]
		tris = append(tris, Triangle{V0: v0, V1: v1, V2: v2, Normal: FaceNormal(v0, v1, v2)})
	})
	return tris
}

// Normalize centers and scales m and triangulates it for both render paths.
func Normalize(m *Mesh) (*Normalized, error) {
	if m == nil {
		return nil, ErrNilMesh
	}
	if len(m.Vertices) == 0 {
		return nil, ErrEmptyMesh
	}

	positions := NormalizeVertices(m)
	tris := triangulate(m, positions)

	vertices := make([]Vertex, len(positions))
	for i, p := range positions {
		vertices[i].Position = p.Arr()
	}
	smoothNormals(vertices, m, positions)

	return &Normalized{
		Vertices:  vertices,
		Indices:   FanIndices(m),
		Triangles: tris,
		Center:    Center(m),
		Scale:     ScaleFactor(m),
		Bounds:    ComputeBounds(positions),
	}, nil
}

// smoothNormals sets each vertex normal to the area-weighted average of the
// faces sharing it. Vertices used by no face point up.
func smoothNormals(vertices []Vertex, m *Mesh, positions []math.Vec3) {
	sums := make([]math.Vec3, len(vertices))
	fan(m, func(a, b, c int) {
		n := positions[b].Sub(positions[a]).Cross(positions[c].Sub(positions[a]))
		sums[a] = sums[a].Add(n)
		sums[b] = sums[b].Add(n)
		sums[c] = sums[c].Add(n)
	})

	for i, s := range sums {
		n := s.Normalize()
		if n == (math.Vec3{}) {
			n = math.Vec3{Y: 1}
		}
		vertices[i].Normal = n.Arr()
	}
}
