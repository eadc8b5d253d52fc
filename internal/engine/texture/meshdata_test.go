package texture

import (
	"testing"

	"github.com/Faultbox/raytrace-demo/internal/engine/model"
	"github.com/Faultbox/raytrace-demo/pkg/math"
)

func makeTriangles(n int) []model.Triangle {
	tris := make([]model.Triangle, n)
	for i := range tris {
		o := float32(i) * 0.001
		v0 := math.Vec3{X: o, Y: 0, Z: 0}
		v1 := math.Vec3{X: o + 1, Y: 0, Z: 0}
		v2 := math.Vec3{X: o, Y: 1, Z: float32(i%3) * 0.5}
		tris[i] = model.Triangle{V0: v0, V1: v1, V2: v2, Normal: model.FaceNormal(v0, v1, v2)}
	}
	return tris
}

func TestNextPowerOfTwo(t *testing.T) {
	tests := []struct {
		n, want int
	}{
		{0, 1}, {1, 1}, {2, 2}, {3, 4}, {12, 16}, {16, 16}, {17, 32}, {5000, 8192},
	}
	for _, tt := range tests {
		if got := NextPowerOfTwo(tt.n); got != tt.want {
			t.Errorf("NextPowerOfTwo(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestEncodeLayout(t *testing.T) {
	d := Encode(makeTriangles(12))

	if d.Width != 4 || d.Height != 16 {
		t.Errorf("size = %dx%d, want 4x16", d.Width, d.Height)
	}
	if d.NumTriangles != 12 || d.Dropped != 0 {
		t.Errorf("NumTriangles/Dropped = %d/%d, want 12/0", d.NumTriangles, d.Dropped)
	}
	if got := len(d.Texels); got != 4*16*4 {
		t.Errorf("len(Texels) = %d, want %d", got, 4*16*4)
	}
	if d.SizeInTexels() != 64 || d.SizeInFloats() != 256 {
		t.Errorf("SizeInTexels/SizeInFloats = %d/%d, want 64/256", d.SizeInTexels(), d.SizeInFloats())
	}

	// Triangle 1 starts at texel row 1: float offset 16.
	if got := d.Texels[16]; got != 0.001 {
		t.Errorf("triangle 1 v0.x = %f, want 0.001", got)
	}
	// Padding texel of every row and the unused rows stay zero.
	for i := 0; i < 16; i++ {
		for c := 0; c < Channels; c++ {
			if v := d.Texels[(i*4+3)*4+c]; v != 0 {
				t.Errorf("row %d padding channel %d = %f, want 0", i, c, v)
			}
		}
	}
	for k := 12 * 16; k < len(d.Texels); k++ {
		if d.Texels[k] != 0 {
			t.Fatalf("unused texel float %d = %f, want 0", k, d.Texels[k])
		}
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	tris := makeTriangles(37)
	d := Encode(tris)

	for i, want := range tris {
		got := DecodeTriangle(d, i)
		if got != want {
			t.Errorf("triangle %d: got %+v, want %+v", i, got, want)
		}
	}
}

func TestEncodeRecomputesNormal(t *testing.T) {
	tri := model.Triangle{
		V0:     math.Vec3{},
		V1:     math.Vec3{X: 1},
		V2:     math.Vec3{Y: 1},
		Normal: math.Vec3{X: 9, Y: 9, Z: 9},
	}
	d := Encode([]model.Triangle{tri})

	if got := DecodeTriangle(d, 0).Normal; got != (math.Vec3{Z: 1}) {
		t.Errorf("normal = %v, want (0, 0, 1)", got)
	}
	if d.Height != 1 {
		t.Errorf("Height = %d, want 1", d.Height)
	}
}

func TestEncodeEmpty(t *testing.T) {
	d := Encode(nil)
	if d.NumTriangles != 0 || d.Width != 4 || d.Height != 1 {
		t.Errorf("empty encode = %d tris %dx%d, want 0 tris 4x1", d.NumTriangles, d.Width, d.Height)
	}
	if len(d.Texels) != 16 {
		t.Errorf("len(Texels) = %d, want 16", len(d.Texels))
	}
}

func TestEncodeTruncates(t *testing.T) {
	tris := makeTriangles(MaxTriangles + 25)
	d := Encode(tris)

	if d.NumTriangles != MaxTriangles {
		t.Errorf("NumTriangles = %d, want %d", d.NumTriangles, MaxTriangles)
	}
	if d.Dropped != 25 {
		t.Errorf("Dropped = %d, want 25", d.Dropped)
	}
	if d.Height != 8192 {
		t.Errorf("Height = %d, want 8192", d.Height)
	}
	if got := DecodeTriangle(d, MaxTriangles-1); got != tris[MaxTriangles-1] {
		t.Errorf("last kept triangle = %+v, want %+v", got, tris[MaxTriangles-1])
	}
}

func TestNilMeshTextureAccessors(t *testing.T) {
	var mt *MeshTexture
	if mt.NumTriangles() != 0 || mt.SizeInTexels() != 0 {
		t.Error("nil MeshTexture should report zero triangles and size")
	}
}
