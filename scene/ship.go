package scene

import (
	stdmath "math"

	"space-renderer/core"
	"space-renderer/math"
	"space-renderer/shading"
)

const (
	shipRadius   = 0.2
	shipBoundary = 10.0
	shipDrag     = 0.95
)

// Ship is the player-controlled vessel: thrust along its heading, velocity
// damped by drag, and a bounce off the scene boundary.
type Ship struct {
	Mesh     *core.MeshData
	Material *shading.Material

	Position math.Vec3
	Velocity math.Vec3
	Yaw      float32
	Scale    float32
}

func NewShip(mesh *core.MeshData) *Ship {
	return &Ship{
		Mesh:     mesh,
		Material: shading.NewMaterial(shading.KindShipHull, 77),
		Position: math.NewVec3(0, 0, 5),
		Scale:    0.3,
	}
}

// transform resolves the ship's pose for matrix and heading queries.
func (s *Ship) transform() core.Transform {
	return core.Transform{
		Position: s.Position,
		Rotation: math.QuaternionFromAxisAngle(math.Vec3Up, s.Yaw),
		Scale:    math.NewVec3(s.Scale, s.Scale, s.Scale),
	}
}

// Forward is the ship's heading in the XZ plane.
func (s *Ship) Forward() math.Vec3 {
	return s.transform().GetForward()
}

// ApplyThrust accelerates along the current heading.
func (s *Ship) ApplyThrust(amount float32) {
	s.Velocity = s.Velocity.Add(s.Forward().Mul(amount))
}

// Rotate turns the ship about its vertical axis, keeping yaw in [0, 2pi).
func (s *Ship) Rotate(deltaYaw float32) {
	s.Yaw += deltaYaw
	twoPi := float32(2 * stdmath.Pi)
	for s.Yaw >= twoPi {
		s.Yaw -= twoPi
	}
	for s.Yaw < 0 {
		s.Yaw += twoPi
	}
}

// Update integrates velocity, applies drag, and bounces off the scene
// boundary by reversing and halving the velocity.
func (s *Ship) Update(dt float32) {
	s.Position = s.Position.Add(s.Velocity.Mul(dt))
	s.Velocity = s.Velocity.Mul(shipDrag)

	if absf32(s.Position.X) > shipBoundary || absf32(s.Position.Z) > shipBoundary {
		s.Velocity = s.Velocity.Mul(-0.5)
	}
}

// CollidesWith reports whether the ship's bounding sphere intersects a
// body's bounding sphere.
func (s *Ship) CollidesWith(center math.Vec3, radius float32) bool {
	return s.Position.Distance(center) < radius+shipRadius
}

func (s *Ship) ModelMatrix() math.Mat4 {
	return s.transform().GetMatrix()
}

func absf32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
