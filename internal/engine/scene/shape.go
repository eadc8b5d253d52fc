package scene

import (
	"fmt"

	"github.com/Faultbox/raytrace-demo/pkg/math"
)

// Kind is the object type tag the ray-tracing shader switches on.
type Kind int32

// Object kinds, numbered as the shader expects.
const (
	KindSphere Kind = 0
	KindCube   Kind = 1
	KindMesh   Kind = 2
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindSphere:
		return "Sphere"
	case KindCube:
		return "Cube"
	case KindMesh:
		return "Mesh"
	default:
		return fmt.Sprintf("Unknown(%d)", int32(k))
	}
}

// Shape is the geometry of an object. It is implemented only by *Sphere,
// *Cube and *MeshRef.
type Shape interface {
	Kind() Kind
	// Size is the vector sent as objects[i].size.
	Size() math.Vec3
	sealed()
}

// Sphere is a sphere centered on the object position.
type Sphere struct {
	Radius float32
}

// Cube is an axis-aligned box centered on the object position.
type Cube struct {
	HalfExtents math.Vec3
}

// MeshRef marks the object drawn from the mesh texture. Its geometry lives
// in the texture; the object only places and colors it.
type MeshRef struct{}

func (*Sphere) Kind() Kind  { return KindSphere }
func (*Cube) Kind() Kind    { return KindCube }
func (*MeshRef) Kind() Kind { return KindMesh }

func (s *Sphere) Size() math.Vec3 { return math.Splat(s.Radius) }
func (c *Cube) Size() math.Vec3   { return c.HalfExtents }
func (*MeshRef) Size() math.Vec3  { return math.Splat(1) }

func (*Sphere) sealed()  {}
func (*Cube) sealed()    {}
func (*MeshRef) sealed() {}
