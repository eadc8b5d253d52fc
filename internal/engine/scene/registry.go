// Package scene holds the fixed-capacity scene the ray tracer renders:
// primitive objects, at most one mesh reference, and point lights.
package scene

import (
	"errors"

	"github.com/Faultbox/raytrace-demo/pkg/math"
)

// Capacities match the uniform arrays declared by the ray-tracing shader.
const (
	MaxObjects = 16
	MaxLights  = 4
)

// NoMesh is the MeshIndex of a registry without a mesh object.
const NoMesh = -1

// Registry errors. A full registry leaves the scene unchanged; callers may
// treat these as informational.
var (
	ErrObjectsFull = errors.New("scene: object limit reached")
	ErrLightsFull  = errors.New("scene: light limit reached")
	ErrMeshExists  = errors.New("scene: mesh object already present")
)

// DefaultAmbient is the ambient light color of a new registry.
var DefaultAmbient = math.Vec3{X: 0.1, Y: 0.1, Z: 0.1}

// Registry is the scene: objects in insertion order, lights, the ambient
// term and the slot of the mesh object if any. Object slots never move, so
// an index returned by an Add method stays valid until Reset.
//
// The zero value is an empty registry with black ambient light; NewRegistry
// also sets DefaultAmbient.
type Registry struct {
	Ambient math.Vec3

	objects Bounded[Object]
	lights  Bounded[Light]

	// meshSlot is the mesh object's index plus one, zero when there is none.
	meshSlot int
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	r := &Registry{Ambient: DefaultAmbient}
	r.alloc()
	return r
}

// alloc sizes the object and light stores on first use.
func (r *Registry) alloc() {
	if r.objects.Cap() == 0 {
		r.objects = NewBounded[Object](MaxObjects)
	}
	if r.lights.Cap() == 0 {
		r.lights = NewBounded[Light](MaxLights)
	}
}

func (r *Registry) add(o Object) (int, error) {
	r.alloc()
	i, ok := r.objects.Push(o)
	if !ok {
		return -1, ErrObjectsFull
	}
	return i, nil
}

// AddSphere appends a sphere of the given radius.
func (r *Registry) AddSphere(pos math.Vec3, radius float32, color math.Vec3, opts ...ObjectOption) (int, error) {
	return r.add(newObject(pos, color, &Sphere{Radius: radius}, opts))
}

// AddCube appends an axis-aligned box with the given half-extents.
func (r *Registry) AddCube(pos, halfExtents, color math.Vec3, opts ...ObjectOption) (int, error) {
	return r.add(newObject(pos, color, &Cube{HalfExtents: halfExtents}, opts))
}

// AddMesh appends the mesh object. Only one may exist.
func (r *Registry) AddMesh(pos, color math.Vec3, opts ...ObjectOption) (int, error) {
	if r.HasMesh() {
		return -1, ErrMeshExists
	}
	i, err := r.add(newObject(pos, color, &MeshRef{}, opts))
	if err != nil {
		return -1, err
	}
	r.meshSlot = i + 1
	return i, nil
}

// AddLight appends a point light.
func (r *Registry) AddLight(pos, color math.Vec3, intensity float32) (int, error) {
	r.alloc()
	i, ok := r.lights.Push(Light{Position: pos, Color: color, Intensity: intensity})
	if !ok {
		return -1, ErrLightsFull
	}
	return i, nil
}

// Clear removes every object and light and forgets the mesh slot.
func (r *Registry) Clear() {
	r.objects.Clear()
	r.lights.Clear()
	r.meshSlot = 0
}

// Objects returns the live object slice; entries may be edited in place.
func (r *Registry) Objects() []Object { return r.objects.Items() }

// Object returns object i, or nil when out of range.
func (r *Registry) Object(i int) *Object { return r.objects.At(i) }

// Lights returns the live light slice; entries may be edited in place.
func (r *Registry) Lights() []Light { return r.lights.Items() }

// Light returns light i, or nil when out of range.
func (r *Registry) Light(i int) *Light { return r.lights.At(i) }

// NumObjects returns the number of objects.
func (r *Registry) NumObjects() int { return r.objects.Len() }

// NumLights returns the number of lights.
func (r *Registry) NumLights() int { return r.lights.Len() }

// MeshIndex returns the mesh object's slot, or NoMesh.
func (r *Registry) MeshIndex() int { return r.meshSlot - 1 }

// HasMesh reports whether a mesh object exists.
func (r *Registry) HasMesh() bool { return r.meshSlot != 0 }
