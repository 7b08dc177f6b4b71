package scene

import (
	stdmath "math"

	"space-renderer/core"
	"space-renderer/math"
	"space-renderer/shading"
)

// Body is one celestial object: a mesh, its material, and simple circular
// orbit plus axial spin kinematics. A Body with a Parent orbits that
// body's current position instead of the scene origin.
type Body struct {
	Name     string
	Mesh     *core.MeshData
	Material *shading.Material
	Parent   *Body

	Position math.Vec3
	Scale    float32

	SpinSpeed   float32 // radians per second about local Y
	OrbitRadius float32
	OrbitSpeed  float32 // radians per second

	// ViewDistance is the comfortable camera distance when this body is
	// the warp/focus target.
	ViewDistance float32

	// TracksParent pins the body to its parent's position every update
	// (the ring annulus sharing the ringed planet's transform).
	TracksParent bool

	// NoCollision excludes the body from ship collision tests.
	NoCollision bool

	spin       float32
	orbitAngle float32
}

// Update advances spin and orbit by dt seconds.
func (b *Body) Update(dt float32) {
	b.spin += b.SpinSpeed * dt

	if b.OrbitRadius > 0 {
		b.orbitAngle += b.OrbitSpeed * dt

		center := math.Vec3Zero
		if b.Parent != nil {
			center = b.Parent.Position
		}
		b.Position.X = center.X + float32(stdmath.Cos(float64(b.orbitAngle)))*b.OrbitRadius
		b.Position.Z = center.Z + float32(stdmath.Sin(float64(b.orbitAngle)))*b.OrbitRadius
		b.Position.Y = center.Y
	}
}

// ModelMatrix composes the body's scale, spin, and position.
func (b *Body) ModelMatrix() math.Mat4 {
	return core.Transform{
		Position: b.Position,
		Rotation: math.QuaternionFromAxisAngle(math.Vec3Up, b.spin),
		Scale:    math.NewVec3(b.Scale, b.Scale, b.Scale),
	}.GetMatrix()
}
