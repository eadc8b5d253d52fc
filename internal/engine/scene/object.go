package scene

import "github.com/Faultbox/raytrace-demo/pkg/math"

// DefaultReflectivity is used when no WithReflectivity option is given.
const DefaultReflectivity = 0.5

// Object is one renderable scene entry. Position is the shape's center.
type Object struct {
	Position     math.Vec3
	Color        math.Vec3
	Reflectivity float32
	Shape        Shape
}

// Kind returns the type tag of the object's shape.
func (o *Object) Kind() Kind {
	return o.Shape.Kind()
}

// ObjectOption adjusts an object before it is added.
type ObjectOption func(*Object)

// WithReflectivity overrides DefaultReflectivity.
func WithReflectivity(r float32) ObjectOption {
	return func(o *Object) {
		o.Reflectivity = r
	}
}

func newObject(pos, color math.Vec3, shape Shape, opts []ObjectOption) Object {
	o := Object{
		Position:     pos,
		Color:        color,
		Reflectivity: DefaultReflectivity,
		Shape:        shape,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Light is a point light.
type Light struct {
	Position  math.Vec3
	Color     math.Vec3 // RGB, 0-1
	Intensity float32
}
