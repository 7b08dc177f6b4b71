package core

import (
	stdmath "math"
	"testing"

	"space-renderer/math"
)

const tolerance = 1e-4

func almostEqual(a, b float32) bool {
	return stdmath.Abs(float64(a-b)) <= tolerance
}

func vecsAlmostEqual(a, b math.Vec3) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y) && almostEqual(a.Z, b.Z)
}

func TestNewTransformIsIdentity(t *testing.T) {
	tr := NewTransform()

	point := math.NewVec3(1, 2, 3)
	if got := tr.GetMatrix().MulPoint(point); !vecsAlmostEqual(got, point) {
		t.Errorf("identity transform moved point: got %v, want %v", got, point)
	}
	if got := tr.GetForward(); !vecsAlmostEqual(got, math.Vec3Front) {
		t.Errorf("identity forward: got %v, want %v", got, math.Vec3Front)
	}
}

func TestTransformGetMatrixOrder(t *testing.T) {
	// Scale applies before rotation before translation: a point on the
	// local X axis under a 90 degree yaw and scale 2 lands on -Z shifted
	// by the position.
	tr := Transform{
		Position: math.NewVec3(5, 0, 0),
		Rotation: math.QuaternionFromAxisAngle(math.Vec3Up, float32(stdmath.Pi/2)),
		Scale:    math.NewVec3(2, 2, 2),
	}

	got := tr.GetMatrix().MulPoint(math.NewVec3(1, 0, 0))
	want := math.NewVec3(5, 0, -2)
	if !vecsAlmostEqual(got, want) {
		t.Errorf("GetMatrix: got %v, want %v", got, want)
	}
}

func TestTransformBasisVectors(t *testing.T) {
	yaw := float32(stdmath.Pi / 2)
	tr := Transform{
		Position: math.Vec3Zero,
		Rotation: math.QuaternionFromAxisAngle(math.Vec3Up, yaw),
		Scale:    math.Vec3One,
	}

	if got, want := tr.GetForward(), math.Vec3Right; !vecsAlmostEqual(got, want) {
		t.Errorf("GetForward: got %v, want %v", got, want)
	}
	if got, want := tr.GetRight(), math.Vec3Back; !vecsAlmostEqual(got, want) {
		t.Errorf("GetRight: got %v, want %v", got, want)
	}
	if got, want := tr.GetUp(), math.Vec3Up; !vecsAlmostEqual(got, want) {
		t.Errorf("GetUp: got %v, want %v", got, want)
	}

	f, r, u := tr.GetForward(), tr.GetRight(), tr.GetUp()
	if !almostEqual(f.Dot(r), 0) || !almostEqual(f.Dot(u), 0) || !almostEqual(r.Dot(u), 0) {
		t.Error("basis vectors are not orthogonal")
	}
}
