package core

import (
	"space-renderer/math"
)

// RegionID tags a vertex with the mesh region it belongs to. Only the ship
// hull material dispatches on it; everything else leaves the zero value.
type RegionID uint8

const (
	RegionBody RegionID = iota
	RegionCockpit
	RegionThruster
)

// Vertex is one mesh vertex in model space. Immutable once loaded; owned by
// the mesh that contains it.
type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3
	UV       math.Vec2
	Region   RegionID
}

// MeshData holds CPU-side vertex/index data. Indices form triangles in
// groups of three.
type MeshData struct {
	Name     string
	Vertices []Vertex
	Indices  []uint32
}

type Transform struct {
	Position math.Vec3
	Rotation math.Quaternion
	Scale    math.Vec3
}

func NewTransform() Transform {
	return Transform{
		Position: math.Vec3Zero,
		Rotation: math.QuaternionIdentity(),
		Scale:    math.Vec3One,
	}
}

func (t Transform) GetMatrix() math.Mat4 {
	return math.Mat4TRS(t.Position, t.Rotation, t.Scale)
}

func (t Transform) GetForward() math.Vec3 {
	return t.Rotation.RotateVector(math.Vec3Front)
}

func (t Transform) GetRight() math.Vec3 {
	return t.Rotation.RotateVector(math.Vec3Right)
}

func (t Transform) GetUp() math.Vec3 {
	return t.Rotation.RotateVector(math.Vec3Up)
}
