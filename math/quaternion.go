package math

import "math"

type Quaternion struct {
	X, Y, Z, W float32
}

func QuaternionIdentity() Quaternion {
	return Quaternion{X: 0, Y: 0, Z: 0, W: 1}
}

func QuaternionFromAxisAngle(axis Vec3, angle float32) Quaternion {
	halfAngle := angle / 2
	s := float32(math.Sin(float64(halfAngle)))
	c := float32(math.Cos(float64(halfAngle)))

	axis = axis.Normalize()
	return Quaternion{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: c,
	}
}

// QuaternionLookRotation builds the orientation of a camera whose forward
// axis points along forward. The convention here is that rotating Vec3Back
// (0,0,-1) by the result reproduces forward, matching Mat4LookAt.
func QuaternionLookRotation(forward, up Vec3) Quaternion {
	f := forward.Normalize()
	z := f.Negate()
	x := up.Cross(z).Normalize()
	if x.LengthSqr() == 0 {
		// forward is parallel to up; pick an arbitrary right axis
		x = Vec3Right
	}
	y := z.Cross(x)

	// Rows are the camera basis axes expressed in world space, which in the
	// row-vector convention rotates camera space into world space.
	m := Mat4{
		{x.X, x.Y, x.Z, 0},
		{y.X, y.Y, y.Z, 0},
		{z.X, z.Y, z.Z, 0},
		{0, 0, 0, 1},
	}
	return QuaternionFromMat4(m)
}

// QuaternionFromMat4 extracts a rotation from the upper 3x3 of m, which must
// be orthonormal. Shepperd's method: branch on the largest diagonal term.
func QuaternionFromMat4(m Mat4) Quaternion {
	trace := m[0][0] + m[1][1] + m[2][2]

	var q Quaternion
	switch {
	case trace > 0:
		s := float32(math.Sqrt(float64(trace+1))) * 2
		q.W = s / 4
		q.X = (m[1][2] - m[2][1]) / s
		q.Y = (m[2][0] - m[0][2]) / s
		q.Z = (m[0][1] - m[1][0]) / s
	case m[0][0] > m[1][1] && m[0][0] > m[2][2]:
		s := float32(math.Sqrt(float64(1+m[0][0]-m[1][1]-m[2][2]))) * 2
		q.W = (m[1][2] - m[2][1]) / s
		q.X = s / 4
		q.Y = (m[1][0] + m[0][1]) / s
		q.Z = (m[2][0] + m[0][2]) / s
	case m[1][1] > m[2][2]:
		s := float32(math.Sqrt(float64(1+m[1][1]-m[0][0]-m[2][2]))) * 2
		q.W = (m[2][0] - m[0][2]) / s
		q.X = (m[1][0] + m[0][1]) / s
		q.Y = s / 4
		q.Z = (m[2][1] + m[1][2]) / s
	default:
		s := float32(math.Sqrt(float64(1+m[2][2]-m[0][0]-m[1][1]))) * 2
		q.W = (m[0][1] - m[1][0]) / s
		q.X = (m[2][0] + m[0][2]) / s
		q.Y = (m[2][1] + m[1][2]) / s
		q.Z = s / 4
	}
	return q.Normalize()
}

func (q Quaternion) Mul(other Quaternion) Quaternion {
	return Quaternion{
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y - q.X*other.Z + q.Y*other.W + q.Z*other.X,
		Z: q.W*other.Z + q.X*other.Y - q.Y*other.X + q.Z*other.W,
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}

func (q Quaternion) Normalize() Quaternion {
	length := float32(math.Sqrt(float64(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)))
	if length > 0 {
		inv := 1 / length
		return Quaternion{X: q.X * inv, Y: q.Y * inv, Z: q.Z * inv, W: q.W * inv}
	}
	return q
}

func (q Quaternion) RotateVector(v Vec3) Vec3 {
	qVec := Vec3{X: q.X, Y: q.Y, Z: q.Z}
	t := qVec.Cross(v).Mul(2)
	return v.Add(t.Mul(q.W)).Add(qVec.Cross(t))
}

func (q Quaternion) ToMat4() Mat4 {
	xx := q.X * q.X
	yy := q.Y * q.Y
	zz := q.Z * q.Z
	xy := q.X * q.Y
	xz := q.X * q.Z
	yz := q.Y * q.Z
	wx := q.W * q.X
	wy := q.W * q.Y
	wz := q.W * q.Z

	return Mat4{
		{1 - 2*(yy+zz), 2 * (xy + wz), 2 * (xz - wy), 0},
		{2 * (xy - wz), 1 - 2*(xx+zz), 2 * (yz + wx), 0},
		{2 * (xz + wy), 2 * (yz - wx), 1 - 2*(xx+yy), 0},
		{0, 0, 0, 1},
	}
}

func (q Quaternion) Dot(other Quaternion) float32 {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

func (q Quaternion) Lerp(other Quaternion, t float32) Quaternion {
	return Quaternion{
		X: q.X + (other.X-q.X)*t,
		Y: q.Y + (other.Y-q.Y)*t,
		Z: q.Z + (other.Z-q.Z)*t,
		W: q.W + (other.W-q.W)*t,
	}.Normalize()
}

// Slerp interpolates along the shorter great-circle arc. Nearly parallel
// quaternions fall back to normalized lerp to avoid a vanishing divisor.
func (q Quaternion) Slerp(other Quaternion, t float32) Quaternion {
	dot := q.Dot(other)

	if dot < 0 {
		dot = -dot
		other = Quaternion{-other.X, -other.Y, -other.Z, -other.W}
	}

	if dot > 0.9995 {
		return q.Lerp(other, t)
	}

	theta0 := math.Acos(float64(dot))
	theta := theta0 * float64(t)
	sinTheta := math.Sin(theta)
	sinTheta0 := math.Sin(theta0)

	s0 := float32(math.Cos(theta) - float64(dot)*sinTheta/sinTheta0)
	s1 := float32(sinTheta / sinTheta0)

	return Quaternion{
		X: q.X*s0 + other.X*s1,
		Y: q.Y*s0 + other.Y*s1,
		Z: q.Z*s0 + other.Z*s1,
		W: q.W*s0 + other.W*s1,
	}
}
