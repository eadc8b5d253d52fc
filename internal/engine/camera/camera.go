// Package camera provides the look-at camera shared by both render paths.
package camera

import (
	gomath "math"

	"github.com/Faultbox/raytrace-demo/pkg/math"
)

// Clip planes used by ProjectionMatrix.
const (
	Near float32 = 0.1
	Far  float32 = 100
)

// Orbit limits.
const (
	MinDistance = 1.0
	MaxDistance = 40.0
	maxPitch    = 1.55 // just short of straight up
)

// Camera looks from Position at Target. FOV is the vertical field of view
// in degrees.
type Camera struct {
	Position math.Vec3
	Target   math.Vec3
	Up       math.Vec3
	FOV      float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32
}

// New creates a camera at (7,7,7) looking at the origin with a 45 degree
// field of view.
func New() *Camera {
	return &Camera{
		Position:        math.V3(7, 7, 7),
		Target:          math.Vec3{},
		Up:              math.V3(0, 1, 0),
		FOV:             45,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
}

// ViewMatrix returns the look-at view matrix.
func (c *Camera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.Target, c.Up)
}

// ProjectionMatrix returns the perspective projection for a viewport of
// the given size.
func (c *Camera) ProjectionMatrix(width, height int) math.Mat4 {
	return math.Perspective(math.Radians(c.FOV), Aspect(width, height), Near, Far)
}

// Aspect returns width/height, or 1 for a degenerate viewport.
func Aspect(width, height int) float32 {
	if width <= 0 || height <= 0 {
		return 1
	}
	return float32(width) / float32(height)
}

// spherical returns the offset from Target as distance, pitch and yaw.
func (c *Camera) spherical() (dist, pitch, yaw float64) {
	off := c.Position.Sub(c.Target)
	dist = float64(off.Length())
	if dist == 0 {
		return 0, 0, 0
	}
	pitch = gomath.Asin(float64(off.Y) / dist)
	yaw = gomath.Atan2(float64(off.X), float64(off.Z))
	return dist, pitch, yaw
}

func (c *Camera) setSpherical(dist, pitch, yaw float64) {
	x := dist * gomath.Cos(pitch) * gomath.Sin(yaw)
	y := dist * gomath.Sin(pitch)
	z := dist * gomath.Cos(pitch) * gomath.Cos(yaw)
	c.Position = c.Target.Add(math.V3(float32(x), float32(y), float32(z)))
}

// HandleDrag orbits the camera around Target by a mouse drag delta.
func (c *Camera) HandleDrag(deltaX, deltaY float32) {
	dist, pitch, yaw := c.spherical()
	if dist == 0 {
		return
	}
	yaw -= float64(deltaX * c.DragSensitivity)
	pitch += float64(deltaY * c.DragSensitivity)
	pitch = math.Clamp(pitch, -maxPitch, maxPitch)
	c.setSpherical(dist, pitch, yaw)
}

// HandleZoom moves the camera toward or away from Target.
func (c *Camera) HandleZoom(delta float32) {
	dist, pitch, yaw := c.spherical()
	if dist == 0 {
		return
	}
	dist -= float64(delta) * dist * float64(c.ZoomSensitivity)
	dist = math.Clamp(dist, MinDistance, MaxDistance)
	c.setSpherical(dist, pitch, yaw)
}

// Distance returns the distance from Position to Target.
func (c *Camera) Distance() float32 {
	return c.Position.Distance(c.Target)
}
