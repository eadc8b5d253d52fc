package scene

import "github.com/Faultbox/raytrace-demo/pkg/math"

// Reset clears the registry and rebuilds the demo scene: two spheres, a
// cube, a floor slab and two lights, plus the mesh object when withMesh is
// set. The result is identical on every call. Ambient is left as is.
func (r *Registry) Reset(withMesh bool) {
	r.Clear()

	// Capacity cannot be exceeded here, so errors are ignored.
	_, _ = r.AddSphere(math.V3(0, 0, 0), 0.5, math.V3(1, 0.2, 0.2), WithReflectivity(0.7))
	_, _ = r.AddSphere(math.V3(1, 0, 1), 0.3, math.V3(0.2, 0.8, 0.2), WithReflectivity(0.9))
	_, _ = r.AddCube(math.V3(-1, -0.5, 0), math.Splat(0.5), math.V3(0.2, 0.2, 1), WithReflectivity(0.3))
	_, _ = r.AddCube(math.V3(0, -1, 0), math.V3(5, 0.1, 5), math.V3(0.8, 0.8, 0.8), WithReflectivity(0.2))

	if withMesh {
		_, _ = r.AddMesh(math.V3(0, 0.5, 0), math.V3(0.8, 0.5, 0.2), WithReflectivity(0.4))
	}

	_, _ = r.AddLight(math.V3(5, 5, 5), math.V3(1, 1, 1), 1.0)
	_, _ = r.AddLight(math.V3(-5, 3, -3), math.V3(0.5, 0.5, 0.8), 0.8)
}

// NewDefault returns a registry populated by Reset.
func NewDefault(withMesh bool) *Registry {
	r := NewRegistry()
	r.Reset(withMesh)
	return r
}
