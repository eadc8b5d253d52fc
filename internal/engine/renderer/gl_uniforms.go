package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/raytrace-demo/pkg/math"
)

// glUniforms writes into the currently bound program.
type glUniforms struct{}

func (glUniforms) Int(loc int32, v int32) {
	gl.Uniform1i(loc, v)
}

func (glUniforms) Float(loc int32, v float32) {
	gl.Uniform1f(loc, v)
}

func (glUniforms) Vec3(loc int32, v math.Vec3) {
	gl.Uniform3f(loc, v.X, v.Y, v.Z)
}

func (glUniforms) Mat4(loc int32, m *math.Mat4) {
	gl.UniformMatrix4fv(loc, 1, false, m.Ptr())
}

func (glUniforms) Texture2D(loc int32, unit uint32, tex uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.Uniform1i(loc, int32(unit))
}
