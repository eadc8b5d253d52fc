// Package picking casts rays from the view into the scene so the editor
// can select objects by clicking them.
package picking

import (
	gomath "math"

	"github.com/Faultbox/raytrace-demo/internal/engine/camera"
	"github.com/Faultbox/raytrace-demo/internal/engine/scene"
	"github.com/Faultbox/raytrace-demo/pkg/math"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3 // Normalized direction
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min math.Vec3
	Max math.Vec3
}

// BoxAround returns the box centered on center with the given half extents.
func BoxAround(center, half math.Vec3) AABB {
	return AABB{Min: center.Sub(half), Max: center.Add(half)}
}

// ScreenToRay returns the camera ray through pixel (screenX, screenY) of a
// viewport with its origin at the top left.
func ScreenToRay(c *camera.Camera, screenX, screenY float32, viewportW, viewportH int) Ray {
	forward := c.Target.Sub(c.Position).Normalize()
	right := forward.Cross(c.Up).Normalize()
	up := right.Cross(forward)

	ndcX := 2*screenX/float32(viewportW) - 1
	ndcY := 1 - 2*screenY/float32(viewportH)

	tanHalf := float32(gomath.Tan(float64(math.Radians(c.FOV)) / 2))
	aspect := camera.Aspect(viewportW, viewportH)

	dir := forward.
		Add(right.Scale(ndcX * tanHalf * aspect)).
		Add(up.Scale(ndcY * tanHalf))
	return Ray{Origin: c.Position, Direction: dir.Normalize()}
}

// IntersectSphere returns the nearest non-negative hit distance.
func (r Ray) IntersectSphere(center math.Vec3, radius float32) (t float32, hit bool) {
	oc := r.Origin.Sub(center)
	b := oc.Dot(r.Direction)
	c := oc.Dot(oc) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := float32(gomath.Sqrt(float64(disc)))
	t = -b - sq
	if t < 0 {
		t = -b + sq
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}

// IntersectAABB tests ray intersection with an axis-aligned bounding box.
// If the ray starts inside the box, returns the exit distance.
func (r Ray) IntersectAABB(box AABB) (t float32, hit bool) {
	tmin := float32(-gomath.MaxFloat32)
	tmax := float32(gomath.MaxFloat32)

	origin, dir := r.Origin.Arr(), r.Direction.Arr()
	lo, hi := box.Min.Arr(), box.Max.Arr()
	for axis := 0; axis < 3; axis++ {
		if dir[axis] == 0 {
			if origin[axis] < lo[axis] || origin[axis] > hi[axis] {
				return 0, false
			}
			continue
		}
		t1 := (lo[axis] - origin[axis]) / dir[axis]
		t2 := (hi[axis] - origin[axis]) / dir[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

// Intersect tests r against one scene object. Mesh objects are treated
// as their normalized bounding box, which spans one unit each side.
func (r Ray) Intersect(o *scene.Object) (t float32, hit bool) {
	switch s := o.Shape.(type) {
	case *scene.Sphere:
		return r.IntersectSphere(o.Position, s.Radius)
	case *scene.Cube:
		return r.IntersectAABB(BoxAround(o.Position, s.HalfExtents))
	default:
		return r.IntersectAABB(BoxAround(o.Position, o.Shape.Size()))
	}
}

// Pick returns the index of the nearest object hit by r.
func Pick(reg *scene.Registry, r Ray) (index int, ok bool) {
	best := float32(gomath.MaxFloat32)
	index = -1
	for i := 0; i < reg.NumObjects(); i++ {
		if t, hit := r.Intersect(reg.Object(i)); hit && t < best {
			best = t
			index = i
		}
	}
	return index, index >= 0
}
