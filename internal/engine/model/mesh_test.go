package model

import (
	"errors"
	"testing"

	"github.com/Faultbox/raytrace-demo/pkg/formats"
	"github.com/Faultbox/raytrace-demo/pkg/math"
)

// cubeMesh returns an axis-aligned cube of edge 2 centered on c, with six
// outward-wound quads.
func cubeMesh(c math.Vec3, edge float32) *Mesh {
	h := edge / 2
	corners := []math.Vec3{
		{X: -h, Y: -h, Z: -h}, {X: h, Y: -h, Z: -h}, {X: h, Y: h, Z: -h}, {X: -h, Y: h, Z: -h},
		{X: -h, Y: -h, Z: h}, {X: h, Y: -h, Z: h}, {X: h, Y: h, Z: h}, {X: -h, Y: h, Z: h},
	}
	for i := range corners {
		corners[i] = corners[i].Add(c)
	}
	return &Mesh{
		Vertices: corners,
		Polygons: [][]int{
			{0, 3, 2, 1}, {4, 5, 6, 7}, {0, 1, 5, 4},
			{2, 3, 7, 6}, {1, 2, 6, 5}, {0, 4, 7, 3},
		},
		Bounds: ComputeBounds(corners),
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func TestUnitCubeIsUnchanged(t *testing.T) {
	m := cubeMesh(math.Vec3{}, 2)

	if s := ScaleFactor(m); s != 1 {
		t.Errorf("ScaleFactor() = %f, want 1", s)
	}
	if c := Center(m); c != (math.Vec3{}) {
		t.Errorf("Center() = %v, want origin", c)
	}

	got := NormalizeVertices(m)
	for i, v := range got {
		if v != m.Vertices[i] {
			t.Errorf("vertex %d moved: got %v, want %v", i, v, m.Vertices[i])
		}
	}
}

func TestCubeTriangulation(t *testing.T) {
	m := cubeMesh(math.Vec3{}, 2)

	if n := TriangleCount(m); n != 12 {
		t.Fatalf("TriangleCount() = %d, want 12", n)
	}
	tris := Triangulate(m)
	if len(tris) != 12 {
		t.Fatalf("len(Triangulate()) = %d, want 12", len(tris))
	}
	if idx := FanIndices(m); len(idx) != 36 {
		t.Errorf("len(FanIndices()) = %d, want 36", len(idx))
	}

	// Outward winding puts every normal on the side of its triangle's centroid.
	for i, tri := range tris {
		if l := tri.Normal.Length(); abs(l-1) > 1e-5 {
			t.Errorf("triangle %d normal length = %f, want 1", i, l)
		}
		centroid := tri.V0.Add(tri.V1).Add(tri.V2).Scale(1.0 / 3)
		if centroid.Dot(tri.Normal) <= 0 {
			t.Errorf("triangle %d normal %v points inward", i, tri.Normal)
		}
	}
}

func TestNormalizeFitsUnitBox(t *testing.T) {
	m := &Mesh{
		Vertices: []math.Vec3{
			{X: 10, Y: 20, Z: 30}, {X: 50, Y: 20, Z: 30}, {X: 10, Y: 35, Z: 30}, {X: 10, Y: 20, Z: 42},
		},
		Polygons: [][]int{{0, 1, 2}, {0, 3, 1}, {0, 2, 3}, {1, 3, 2}},
	}
	m.Bounds = ComputeBounds(m.Vertices)

	norm, err := Normalize(m)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}

	const eps = 1e-5
	for i, v := range norm.Vertices {
		for axis, c := range v.Position {
			if c < -1-eps || c > 1+eps {
				t.Errorf("vertex %d axis %d = %f, outside [-1, 1]", i, axis, c)
			}
		}
	}
	// The longest dimension (X, 40 units) spans exactly [-1, 1].
	if abs(norm.Bounds.Min.X+1) > eps || abs(norm.Bounds.Max.X-1) > eps {
		t.Errorf("normalized X range = [%f, %f], want [-1, 1]", norm.Bounds.Min.X, norm.Bounds.Max.X)
	}
	if abs(norm.Scale-0.05) > eps {
		t.Errorf("Scale = %f, want 0.05", norm.Scale)
	}
	if len(norm.Triangles) != 4 || len(norm.Indices) != 12 {
		t.Errorf("got %d triangles / %d indices, want 4 / 12", len(norm.Triangles), len(norm.Indices))
	}
}

func TestFanCounts(t *testing.T) {
	verts := make([]math.Vec3, 8)
	for i := range verts {
		verts[i] = math.Vec3{X: float32(i)}
	}

	tests := []struct {
		name     string
		polygons [][]int
		want     int
	}{
		{"triangle", [][]int{{0, 1, 2}}, 1},
		{"pentagon", [][]int{{0, 1, 2, 3, 4}}, 3},
		{"octagon", [][]int{{0, 1, 2, 3, 4, 5, 6, 7}}, 6},
		{"degenerate skipped", [][]int{{0, 1}, {2}, {}}, 0},
		{"mixed sum", [][]int{{0, 1, 2}, {0, 1, 2, 3}, {4, 5}}, 3},
		{"out of range skipped", [][]int{{0, 1, 9}, {0, 1, 2, 3}}, 2},
		{"out of range later in fan", [][]int{{0, 1, 2, 9}}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Mesh{Vertices: verts, Polygons: tt.polygons}
			if got := TriangleCount(m); got != tt.want {
				t.Errorf("TriangleCount() = %d, want %d", got, tt.want)
			}
			if got := len(FanIndices(m)); got != tt.want*3 {
				t.Errorf("len(FanIndices()) = %d, want %d", got, tt.want*3)
			}
		})
	}
}

func TestFanOrder(t *testing.T) {
	m := &Mesh{
		Vertices: make([]math.Vec3, 5),
		Polygons: [][]int{{4, 3, 2, 1, 0}},
	}
	got := FanIndices(m)
	want := []uint32{4, 3, 2, 4, 2, 1, 4, 1, 0}
	if len(got) != len(want) {
		t.Fatalf("FanIndices() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("FanIndices() = %v, want %v", got, want)
		}
	}
}

func TestFaceNormalDegenerate(t *testing.T) {
	n := FaceNormal(math.Vec3{}, math.Vec3{X: 1}, math.Vec3{X: 2})
	if n != (math.Vec3{}) {
		t.Errorf("collinear FaceNormal() = %v, want zero vector", n)
	}
}

func TestNormalizeErrors(t *testing.T) {
	if _, err := Normalize(nil); !errors.Is(err, ErrNilMesh) {
		t.Errorf("Normalize(nil) error = %v, want ErrNilMesh", err)
	}
	if _, err := Normalize(&Mesh{}); !errors.Is(err, ErrEmptyMesh) {
		t.Errorf("Normalize(empty) error = %v, want ErrEmptyMesh", err)
	}
}

func TestExtentOverride(t *testing.T) {
	m := cubeMesh(math.Vec3{}, 2)
	m.Extent = 4
	if s := ScaleFactor(m); s != 0.5 {
		t.Errorf("ScaleFactor() with extent 4 = %f, want 0.5", s)
	}
}

func TestFlatMeshUnscaled(t *testing.T) {
	m := &Mesh{Vertices: []math.Vec3{{X: 3, Y: 3, Z: 3}}}
	m.Bounds = ComputeBounds(m.Vertices)
	if s := ScaleFactor(m); s != 1 {
		t.Errorf("ScaleFactor() of a point = %f, want 1", s)
	}
}

func TestSmoothNormalsOnCube(t *testing.T) {
	norm, err := Normalize(cubeMesh(math.Vec3{X: 5}, 2))
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	// Each corner normal points away from the center along the diagonal.
	for i, v := range norm.Vertices {
		p := math.Vec3{X: v.Position[0], Y: v.Position[1], Z: v.Position[2]}
		n := math.Vec3{X: v.Normal[0], Y: v.Normal[1], Z: v.Normal[2]}
		if p.Dot(n) <= 0 {
			t.Errorf("vertex %d normal %v points inward", i, n)
		}
	}
}

func TestFromOFF(t *testing.T) {
	off, err := formats.ParseOFF([]byte("OFF\n4 1 0\n0 0 0\n4 0 0\n4 2 0\n0 2 0\n4 0 1 2 3\n"))
	if err != nil {
		t.Fatalf("ParseOFF failed: %v", err)
	}
	m := FromOFF(off)
	if m.Extent != 4 {
		t.Errorf("Extent = %f, want 4", m.Extent)
	}
	if c := Center(m); c != (math.Vec3{X: 2, Y: 1}) {
		t.Errorf("Center() = %v, want (2, 1, 0)", c)
	}
	if n := TriangleCount(m); n != 2 {
		t.Errorf("TriangleCount() = %d, want 2", n)
	}
}
