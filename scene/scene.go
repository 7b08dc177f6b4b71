package scene

import (
	"space-renderer/core"
	"space-renderer/math"
	"space-renderer/shading"
)

// OrbitGuide is a dashed circle drawn in the orbital plane of a body. A
// guide with a Parent follows that body; otherwise it is centered on the
// scene origin.
type OrbitGuide struct {
	Mesh   *core.MeshData
	Parent *Body
}

// Scene owns every drawable and its kinematics. It satisfies the camera's
// TargetResolver so bodies can be warp targets by name.
type Scene struct {
	Bodies     []*Body
	Ship       *Ship
	Orbits     []*OrbitGuide
	ShowOrbits bool
}

// NewSolarSystem builds the default scene: a star at the origin, a rocky
// planet with a moon, a gas giant, and a ringed planet, plus the ship.
func NewSolarSystem() *Scene {
	sphere := CreateSphere(1, 32, 16)

	sun := &Body{
		Name:         "sun",
		Mesh:         sphere,
		Material:     shading.NewMaterial(shading.KindStar, 1),
		Scale:        1.5,
		SpinSpeed:    0.1,
		ViewDistance: 6,
	}

	rocky := &Body{
		Name:         "rocky",
		Mesh:         sphere,
		Material:     shading.NewMaterial(shading.KindRockyPlanet, 2),
		Scale:        0.5,
		SpinSpeed:    0.5,
		OrbitRadius:  3,
		OrbitSpeed:   0.5,
		ViewDistance: 2,
	}

	moon := &Body{
		Name:         "moon",
		Mesh:         sphere,
		Material:     shading.NewMaterial(shading.KindMoon, 3),
		Parent:       rocky,
		Scale:        0.15,
		SpinSpeed:    0.3,
		OrbitRadius:  0.8,
		OrbitSpeed:   1.2,
		ViewDistance: 1.5,
	}

	gasGiant := &Body{
		Name:         "gas-giant",
		Mesh:         sphere,
		Material:     shading.NewMaterial(shading.KindGasGiant, 4),
		Scale:        0.8,
		SpinSpeed:    0.8,
		OrbitRadius:  6,
		OrbitSpeed:   0.25,
		ViewDistance: 3.5,
	}

	ringed := &Body{
		Name:         "ringed",
		Mesh:         sphere,
		Material:     shading.NewMaterial(shading.KindGasGiant, 5),
		Scale:        0.6,
		SpinSpeed:    0.4,
		OrbitRadius:  9,
		OrbitSpeed:   0.15,
		ViewDistance: 3,
	}

	// The ring annulus shares the ringed planet's transform; its material
	// carves the bands out of the flat disc.
	rings := &Body{
		Name:         "rings",
		Mesh:         CreateRing(1.0, 1.5, 96),
		Material:     shading.NewMaterial(shading.KindPlanetRings, 6),
		Parent:       ringed,
		Scale:        0.6,
		SpinSpeed:    0.4,
		ViewDistance: 3,
		TracksParent: true,
		NoCollision:  true,
	}

	s := &Scene{
		Bodies:     []*Body{sun, rocky, moon, gasGiant, ringed, rings},
		Ship:       NewShip(CreateCube(1)),
		ShowOrbits: true,
	}

	s.Orbits = []*OrbitGuide{
		{Mesh: CreateOrbitRing(3, 200)},
		{Mesh: CreateOrbitRing(6, 200)},
		{Mesh: CreateOrbitRing(9, 200)},
		{Mesh: CreateOrbitRing(0.8, 100), Parent: rocky},
	}
	return s
}

// Update advances all body kinematics and the ship, then resolves
// ship-body collisions with a simple bounce.
func (s *Scene) Update(dt float32) {
	for _, b := range s.Bodies {
		b.Update(dt)
		if b.TracksParent && b.Parent != nil {
			b.Position = b.Parent.Position
		}
	}

	ship := s.Ship
	ship.Update(dt)
	for _, b := range s.Bodies {
		if b.NoCollision {
			continue
		}
		if ship.CollidesWith(b.Position, b.Scale) {
			// Push out along the contact normal and bounce.
			normal := ship.Position.Sub(b.Position).Normalize()
			ship.Position = b.Position.Add(normal.Mul(b.Scale + shipRadius))
			ship.Velocity = ship.Velocity.Mul(-0.5)
		}
	}
}

// ResolveTarget implements the camera's focus lookup. Body names and
// "ship" are valid targets.
func (s *Scene) ResolveTarget(id string) (math.Vec3, float32, bool) {
	if id == "ship" {
		return s.Ship.Position, 2, true
	}
	for _, b := range s.Bodies {
		if b.Name == id {
			return b.Position, b.ViewDistance, true
		}
	}
	return math.Vec3Zero, 0, false
}

// TargetNames lists the warp targets in presentation order.
func (s *Scene) TargetNames() []string {
	return []string{"sun", "rocky", "moon", "gas-giant", "ringed", "ship"}
}
