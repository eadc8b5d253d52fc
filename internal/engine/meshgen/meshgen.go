// Package meshgen builds procedural meshes from signed distance functions
// so the demo can run without a model file.
package meshgen

import (
	"errors"
	"fmt"
	gomath "math"
	"sort"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/Faultbox/raytrace-demo/internal/engine/model"
	"github.com/Faultbox/raytrace-demo/pkg/math"
)

// Cell count limits for marching cubes along the longest axis.
const (
	MinCells = 8
	MaxCells = 200
)

var (
	ErrUnknownShape = errors.New("meshgen: unknown shape")
	ErrCells        = errors.New("meshgen: cell count out of range")
)

var shapes = map[string]func() (sdf.SDF3, error){
	"box":         box,
	"cylinder":    cylinder,
	"notched-box": notchedBox,
}

// Names returns the available shape names in sorted order.
func Names() []string {
	names := make([]string, 0, len(shapes))
	for name := range shapes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func box() (sdf.SDF3, error) {
	return sdf.Box3D(v3.Vec{X: 2, Y: 2, Z: 2}, 0.1)
}

func cylinder() (sdf.SDF3, error) {
	return sdf.Cylinder3D(2, 0.8, 0.1)
}

// notchedBox is a slab with a round hole bored along X.
func notchedBox() (sdf.SDF3, error) {
	slab, err := sdf.Box3D(v3.Vec{X: 2, Y: 1.2, Z: 1.6}, 0.05)
	if err != nil {
		return nil, err
	}
	bore, err := sdf.Cylinder3D(2.4, 0.4, 0)
	if err != nil {
		return nil, err
	}
	bore = sdf.Transform3D(bore, sdf.RotateY(gomath.Pi/2))
	return sdf.Difference3D(slab, bore), nil
}

// SDF returns the distance function for name.
func SDF(name string) (sdf.SDF3, error) {
	build, ok := shapes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, name)
	}
	s, err := build()
	if err != nil {
		return nil, fmt.Errorf("meshgen: building %s: %w", name, err)
	}
	return s, nil
}

// Generate tessellates the named shape with uniform marching cubes.
// Coincident vertices are welded so the result has shared vertices.
func Generate(name string, cells int) (*model.Mesh, error) {
	if cells < MinCells || cells > MaxCells {
		return nil, fmt.Errorf("%w: %d", ErrCells, cells)
	}
	s, err := SDF(name)
	if err != nil {
		return nil, err
	}

	triangles := render.ToTriangles(s, render.NewMarchingCubesUniform(cells))
	if len(triangles) == 0 {
		return nil, fmt.Errorf("meshgen: %s produced no triangles", name)
	}

	w := newWelder(len(triangles) * 3 / 2)
	polygons := make([][]int, 0, len(triangles))
	for _, tri := range triangles {
		a := w.index(tri[0])
		b := w.index(tri[1])
		c := w.index(tri[2])
		if a == b || b == c || a == c {
			continue
		}
		polygons = append(polygons, []int{a, b, c})
	}

	return &model.Mesh{
		Vertices: w.vertices,
		Polygons: polygons,
		Bounds:   model.ComputeBounds(w.vertices),
	}, nil
}

// weldEpsilon is the grid used to merge marching-cubes vertices.
const weldEpsilon = 1e-5

type weldKey [3]int64

type welder struct {
	seen     map[weldKey]int
	vertices []math.Vec3
}

func newWelder(capacity int) *welder {
	return &welder{
		seen:     make(map[weldKey]int, capacity),
		vertices: make([]math.Vec3, 0, capacity),
	}
}

func (w *welder) index(v v3.Vec) int {
	key := weldKey{
		int64(gomath.Round(v.X / weldEpsilon)),
		int64(gomath.Round(v.Y / weldEpsilon)),
		int64(gomath.Round(v.Z / weldEpsilon)),
	}
	if i, ok := w.seen[key]; ok {
		return i
	}
	i := len(w.vertices)
	w.seen[key] = i
	w.vertices = append(w.vertices, math.V3(float32(v.X), float32(v.Y), float32(v.Z)))
	return i
}
