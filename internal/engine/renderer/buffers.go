package renderer

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/raytrace-demo/internal/engine/model"
)

// quadVertices is a full-screen triangle strip: position (x, y, z) + uv.
var quadVertices = []float32{
	-1, 1, 0, 0, 1,
	-1, -1, 0, 0, 0,
	1, 1, 0, 1, 1,
	1, -1, 0, 1, 0,
}

// createQuad uploads the full-screen quad the ray tracer is drawn on.
func createQuad() (vao, vbo uint32) {
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, unsafe.Pointer(&quadVertices[0]), gl.STATIC_DRAW)

	// Position attribute (location = 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 5*4, 0)
	gl.EnableVertexAttribArray(0)

	// UV attribute (location = 1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, 5*4, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return vao, vbo
}

// meshBuffers is the raster-path copy of the loaded mesh.
type meshBuffers struct {
	vao, vbo, ebo uint32
	indexCount    int32
}

// upload replaces the buffer contents with n.
func (m *meshBuffers) upload(n *model.Normalized) {
	if m.vao == 0 {
		gl.GenVertexArrays(1, &m.vao)
		gl.GenBuffers(1, &m.vbo)
		gl.GenBuffers(1, &m.ebo)
	}
	gl.BindVertexArray(m.vao)

	vertexSize := int32(unsafe.Sizeof(model.Vertex{}))
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	if len(n.Vertices) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(n.Vertices)*int(vertexSize), unsafe.Pointer(&n.Vertices[0]), gl.STATIC_DRAW)
	}

	// Position (location 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, vertexSize, 0)
	gl.EnableVertexAttribArray(0)

	// Normal (location 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, vertexSize, 12)
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	if len(n.Indices) > 0 {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(n.Indices)*4, unsafe.Pointer(&n.Indices[0]), gl.STATIC_DRAW)
	}
	m.indexCount = int32(len(n.Indices))

	gl.BindVertexArray(0)
}

func (m *meshBuffers) draw() {
	if m.indexCount == 0 {
		return
	}
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

func (m *meshBuffers) delete() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		gl.DeleteBuffers(1, &m.vbo)
		gl.DeleteBuffers(1, &m.ebo)
		*m = meshBuffers{}
	}
}
