package math

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// The shaders were written against mgl32 conventions, so every builder here
// must produce the same column-major layout.

func sameMat(t *testing.T, name string, got Mat4, want mgl32.Mat4) {
	t.Helper()
	if !mgl32.Mat4(got).ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func TestMatchesMathGL(t *testing.T) {
	eye, center, up := V3(7, 7, 7), V3(0, 0.5, 0), V3(0, 1, 0)
	mglVec := func(v Vec3) mgl32.Vec3 { return mgl32.Vec3(v.Arr()) }

	sameMat(t, "Perspective",
		Perspective(Radians(45), 1.5, 0.1, 100),
		mgl32.Perspective(mgl32.DegToRad(45), 1.5, 0.1, 100))
	sameMat(t, "LookAt",
		LookAt(eye, center, up),
		mgl32.LookAtV(mglVec(eye), mglVec(center), mglVec(up)))
	sameMat(t, "Translate",
		Translate(V3(1, -2, 3)),
		mgl32.Translate3D(1, -2, 3))

	for _, angle := range []float32{0, 0.5, 1.7, -2.2} {
		sameMat(t, "RotateX", RotateX(angle), mgl32.HomogRotate3DX(angle))
		sameMat(t, "RotateY", RotateY(angle), mgl32.HomogRotate3DY(angle))
		sameMat(t, "RotateZ", RotateZ(angle), mgl32.HomogRotate3DZ(angle))
	}

	a := RotateY(0.7).Mul(Translate(V3(2, 0, 1)))
	b := mgl32.HomogRotate3DY(0.7).Mul4(mgl32.Translate3D(2, 0, 1))
	sameMat(t, "Mul", a, b)

	p := V3(0.3, -1, 4)
	got := a.TransformPoint(p)
	want := mgl32.TransformCoordinate(mglVec(p), b)
	if !mglVec(got).ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("TransformPoint = %v, want %v", got, want)
	}

	v, w := V3(1, 2, 3), V3(-4, 0.5, 2)
	if !mglVec(v.Cross(w)).ApproxEqualThreshold(mglVec(v).Cross(mglVec(w)), 1e-6) {
		t.Errorf("Cross disagrees with mgl32")
	}
}
