package math

import (
	"math"
	"testing"
)

const tolerance = 1e-4

func almostEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) <= tolerance
}

func vecsAlmostEqual(a, b Vec3) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y) && almostEqual(a.Z, b.Z)
}

func TestVec3Operations(t *testing.T) {
	v1 := NewVec3(1, 2, 3)
	v2 := NewVec3(4, 5, 6)

	if got, want := v1.Add(v2), NewVec3(5, 7, 9); got != want {
		t.Errorf("Add: expected %v, got %v", want, got)
	}
	if got, want := v2.Sub(v1), NewVec3(3, 3, 3); got != want {
		t.Errorf("Sub: expected %v, got %v", want, got)
	}
	if got, want := v1.Mul(2), NewVec3(2, 4, 6); got != want {
		t.Errorf("Mul: expected %v, got %v", want, got)
	}
	if got, want := v1.Dot(v2), float32(32); got != want {
		t.Errorf("Dot: expected %v, got %v", want, got)
	}
	// Right x Up = Front in the right-handed system
	if got := Vec3Right.Cross(Vec3Up); got != Vec3Front {
		t.Errorf("Cross: expected %v, got %v", Vec3Front, got)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := NewVec3(3, 0, 0)
	if got, want := v.Normalize(), NewVec3(1, 0, 0); got != want {
		t.Errorf("Normalize: expected %v, got %v", want, got)
	}
	if l := NewVec3(1, 2, 2).Normalize().Length(); !almostEqual(l, 1) {
		t.Errorf("Normalize: expected length 1, got %v", l)
	}
	// Zero vector stays zero instead of producing NaN
	if got := Vec3Zero.Normalize(); got != Vec3Zero {
		t.Errorf("Normalize zero: expected zero vector, got %v", got)
	}
}

func TestMat4Translation(t *testing.T) {
	translation := NewVec3(1, 2, 3)
	m := Mat4Translation(translation)

	point := NewVec4(0, 0, 0, 1)
	if got := point.MulMat(m).ToVec3(); got != translation {
		t.Errorf("Translation: expected %v, got %v", translation, got)
	}
}

func TestMat4TRSOrder(t *testing.T) {
	// Scale must apply before rotation before translation: a unit X point
	// scaled by 2, rotated 90 degrees around Y, then moved up, ends at
	// (0, 1, -2).
	rot := QuaternionFromAxisAngle(Vec3Up, float32(math.Pi/2))
	m := Mat4TRS(NewVec3(0, 1, 0), rot, NewVec3(2, 2, 2))

	got := m.MulPoint(NewVec3(1, 0, 0))
	if !vecsAlmostEqual(got, NewVec3(0, 1, -2)) {
		t.Errorf("TRS: expected (0,1,-2), got %v", got)
	}
}

func TestMat4LookAt(t *testing.T) {
	eye := NewVec3(0, 0, 5)
	m := Mat4LookAt(eye, Vec3Zero, Vec3Up)

	// The view matrix transforms the eye position to the origin
	got := m.MulVec(eye.ToVec4(1)).ToVec3()
	if !vecsAlmostEqual(got, Vec3Zero) {
		t.Errorf("LookAt: expected eye to transform to origin, got %v", got)
	}

	// A point in front of the camera lands on the negative view Z axis
	front := m.MulVec(NewVec4(0, 0, 0, 1)).ToVec3()
	if front.Z >= 0 {
		t.Errorf("LookAt: expected target in front of camera (z<0), got z=%v", front.Z)
	}
}

func TestMat4PerspectiveDepthRange(t *testing.T) {
	near, far := float32(0.1), float32(1000.0)
	m := Mat4Perspective(float32(math.Pi/4), 1, near, far)

	nearClip := m.MulVec(NewVec4(0, 0, -near, 1))
	if !almostEqual(nearClip.Z/nearClip.W, -1) {
		t.Errorf("Perspective: near plane should map to z=-1, got %v", nearClip.Z/nearClip.W)
	}
	farClip := m.MulVec(NewVec4(0, 0, -far, 1))
	if !almostEqual(farClip.Z/farClip.W, 1) {
		t.Errorf("Perspective: far plane should map to z=1, got %v", farClip.Z/farClip.W)
	}
	if nearClip.W <= 0 {
		t.Errorf("Perspective: point in front of camera should have w>0, got %v", nearClip.W)
	}
}

func TestMat4ViewportFlipsY(t *testing.T) {
	m := Mat4Viewport(800, 600)

	tests := []struct {
		name string
		ndc  Vec3
		want Vec3
	}{
		{"center", NewVec3(0, 0, 0.5), NewVec3(400, 300, 0.5)},
		{"top-left", NewVec3(-1, 1, 0), NewVec3(0, 0, 0)},
		{"bottom-right", NewVec3(1, -1, 0), NewVec3(800, 600, 0)},
	}
	for _, tc := range tests {
		got := m.MulVec(tc.ndc.ToVec4(1)).ToVec3()
		if !vecsAlmostEqual(got, tc.want) {
			t.Errorf("Viewport %s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestMat3InverseTranspose(t *testing.T) {
	// Under non-uniform scale the normal matrix must restore
	// perpendicularity: surface (1,0,0) normal on a plane squashed in X.
	model := Mat4Scale(NewVec3(1, 1, 4))
	normalMat := model.Mat3().Inverse().Transpose()

	// Tangent in the squashed plane
	tangent := model.Mat3().MulVec(NewVec3(0, 1, 1)).Normalize()
	normal := normalMat.MulVec(NewVec3(0, 1, -1)).Normalize()

	if d := tangent.Dot(normal); !almostEqual(d, 0) {
		t.Errorf("normal transform: expected perpendicularity, dot=%v", d)
	}
}

func TestMat3InverseRoundTrip(t *testing.T) {
	m := Mat4RotationY(0.7).Mul(Mat4Scale(NewVec3(2, 3, 0.5))).Mat3()
	inv := m.Inverse()

	v := NewVec3(1, -2, 3)
	got := inv.MulVec(m.MulVec(v))
	if !vecsAlmostEqual(got, v) {
		t.Errorf("Mat3 inverse round trip: expected %v, got %v", v, got)
	}
}

func TestQuaternionRotation(t *testing.T) {
	// 90 degrees around Y takes +X to -Z in this coordinate system
	q := QuaternionFromAxisAngle(Vec3Up, float32(math.Pi/2))
	got := q.RotateVector(Vec3Right)
	if !vecsAlmostEqual(got, Vec3Back) {
		t.Errorf("rotation: expected %v, got %v", Vec3Back, got)
	}
}

func TestQuaternionToMat4Agrees(t *testing.T) {
	q := QuaternionFromAxisAngle(NewVec3(1, 2, -1), 1.3)
	v := NewVec3(0.3, -2, 5)

	byQuat := q.RotateVector(v)
	byMat := q.ToMat4().MulPoint(v)
	if !vecsAlmostEqual(byQuat, byMat) {
		t.Errorf("ToMat4: quaternion and matrix rotation disagree: %v vs %v", byQuat, byMat)
	}
}

func TestQuaternionLookRotation(t *testing.T) {
	tests := []struct {
		name    string
		forward Vec3
	}{
		{"back", NewVec3(0, 0, -1)},
		{"right", NewVec3(1, 0, 0)},
		{"diagonal", NewVec3(1, 0.5, -1)},
	}
	for _, tc := range tests {
		q := QuaternionLookRotation(tc.forward, Vec3Up)
		got := q.RotateVector(Vec3Back)
		want := tc.forward.Normalize()
		if !vecsAlmostEqual(got, want) {
			t.Errorf("LookRotation %s: expected forward %v, got %v", tc.name, want, got)
		}
	}
}

func TestQuaternionSlerpEndpoints(t *testing.T) {
	a := QuaternionFromAxisAngle(Vec3Up, 0)
	b := QuaternionFromAxisAngle(Vec3Up, float32(math.Pi/2))

	if got := a.Slerp(b, 0); !vecsAlmostEqual(got.RotateVector(Vec3Right), a.RotateVector(Vec3Right)) {
		t.Errorf("Slerp t=0: expected start rotation, got %v", got)
	}
	if got := a.Slerp(b, 1); !vecsAlmostEqual(got.RotateVector(Vec3Right), b.RotateVector(Vec3Right)) {
		t.Errorf("Slerp t=1: expected end rotation, got %v", got)
	}

	// Halfway should be a 45 degree rotation
	mid := a.Slerp(b, 0.5)
	want := QuaternionFromAxisAngle(Vec3Up, float32(math.Pi/4))
	if !vecsAlmostEqual(mid.RotateVector(Vec3Right), want.RotateVector(Vec3Right)) {
		t.Errorf("Slerp t=0.5: expected 45 degree rotation")
	}
}

func TestSmoothstep(t *testing.T) {
	if got := Smoothstep(0); got != 0 {
		t.Errorf("Smoothstep(0): expected 0, got %v", got)
	}
	if got := Smoothstep(1); got != 1 {
		t.Errorf("Smoothstep(1): expected 1, got %v", got)
	}
	if got := Smoothstep(0.5); !almostEqual(got, 0.5) {
		t.Errorf("Smoothstep(0.5): expected 0.5, got %v", got)
	}
	// Clamped outside [0,1]
	if Smoothstep(-3) != 0 || Smoothstep(7) != 1 {
		t.Error("Smoothstep: expected clamping outside [0,1]")
	}
	// Monotonic non-decreasing
	prev := float32(0)
	for i := 0; i <= 100; i++ {
		v := Smoothstep(float32(i) / 100)
		if v < prev {
			t.Fatalf("Smoothstep not monotonic at t=%v: %v < %v", float32(i)/100, v, prev)
		}
		prev = v
	}
}

func BenchmarkMat4Mul(b *testing.B) {
	m1 := Mat4RotationY(0.3)
	m2 := Mat4Translation(NewVec3(1, 2, 3))

	for i := 0; i < b.N; i++ {
		_ = m1.Mul(m2)
	}
}

func BenchmarkQuaternionRotateVector(b *testing.B) {
	q := QuaternionFromAxisAngle(Vec3Up, 0.7)
	v := NewVec3(1, 2, 3)

	for i := 0; i < b.N; i++ {
		_ = q.RotateVector(v)
	}
}
