package math

import "golang.org/x/exp/constraints"

// Clamp limits f to [low, high].
func Clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}

// ClampVec3 clamps every component of v to [low, high].
func ClampVec3(v Vec3, low, high float32) Vec3 {
	return Vec3{Clamp(v.X, low, high), Clamp(v.Y, low, high), Clamp(v.Z, low, high)}
}
