package scene

import (
	"fmt"

	"github.com/Faultbox/raytrace-demo/pkg/math"
)

// Axis selects the raster-mode model rotation axis.
type Axis int

// Rotation axes.
const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// ParseAxis converts "x", "y" or "z".
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "x", "X":
		return AxisX, nil
	case "y", "Y":
		return AxisY, nil
	case "z", "Z":
		return AxisZ, nil
	}
	return AxisY, fmt.Errorf("unknown axis %q", s)
}

// String returns the axis letter.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Rotation returns the rotation matrix for angle radians about a.
func (a Axis) Rotation(angle float32) math.Mat4 {
	switch a {
	case AxisX:
		return math.RotateX(angle)
	case AxisZ:
		return math.RotateZ(angle)
	default:
		return math.RotateY(angle)
	}
}

// MaxRotation is where Rotation wraps back to zero.
const MaxRotation = 6.28

// Settings are the global render toggles.
type Settings struct {
	RayTracing   bool
	Shadows      bool
	Reflections  bool
	MaxBounces   int
	Reflectivity float32

	// Raster mode model rotation.
	Rotation      float32
	RotationAxis  Axis
	AutoRotate    bool
	RotationSpeed float32
}

// DefaultSettings returns the startup toggles.
func DefaultSettings() Settings {
	return Settings{
		RayTracing:    true,
		Shadows:       true,
		Reflections:   true,
		MaxBounces:    3,
		Reflectivity:  0.5,
		RotationAxis:  AxisY,
		AutoRotate:    true,
		RotationSpeed: 0.01,
	}
}

// Advance steps the auto-rotation by one frame. It has no effect in ray
// tracing mode or when auto-rotate is off.
func (s *Settings) Advance() {
	if s.RayTracing || !s.AutoRotate {
		return
	}
	s.Rotation += s.RotationSpeed
	if s.Rotation > MaxRotation {
		s.Rotation = 0
	}
}

// ResetRotation puts the model back to its initial orientation.
func (s *Settings) ResetRotation() {
	s.Rotation = 0
}
