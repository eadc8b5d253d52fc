package texture

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// MeshTexture is an uploaded mesh texture and the data it was built from.
type MeshTexture struct {
	ID   uint32
	Data MeshData
}

// Upload creates an RGBA32F texture from d. Filtering is NEAREST and
// wrapping CLAMP_TO_EDGE so texel fetches never blend two triangles.
func Upload(d MeshData) *MeshTexture {
	t := &MeshTexture{}
	gl.GenTextures(1, &t.ID)
	t.upload(d)
	return t
}

// Replace re-uploads the texture with new data, keeping the same handle.
func (t *MeshTexture) Replace(d MeshData) {
	if t.ID == 0 {
		gl.GenTextures(1, &t.ID)
	}
	t.upload(d)
}

func (t *MeshTexture) upload(d MeshData) {
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA32F, int32(d.Width), int32(d.Height), 0,
		gl.RGBA, gl.FLOAT, unsafe.Pointer(&d.Texels[0]))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	t.Data = d
}

// NumTriangles returns the encoded triangle count, 0 for a nil texture.
func (t *MeshTexture) NumTriangles() int {
	if t == nil {
		return 0
	}
	return t.Data.NumTriangles
}

// SizeInTexels returns the texel count, 0 for a nil texture.
func (t *MeshTexture) SizeInTexels() int {
	if t == nil {
		return 0
	}
	return t.Data.SizeInTexels()
}

// Delete releases the GPU texture.
func (t *MeshTexture) Delete() {
	if t.ID != 0 {
		gl.DeleteTextures(1, &t.ID)
		t.ID = 0
	}
}
