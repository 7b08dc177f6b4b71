package scene

import (
	"os"
	"path/filepath"
	"testing"

	"space-renderer/core"
	"space-renderer/math"
)

func TestMoonOrbitsItsParent(t *testing.T) {
	s := NewSolarSystem()

	var rocky, moon *Body
	for _, b := range s.Bodies {
		switch b.Name {
		case "rocky":
			rocky = b
		case "moon":
			moon = b
		}
	}
	if rocky == nil || moon == nil {
		t.Fatal("solar system missing rocky planet or moon")
	}

	for i := 0; i < 100; i++ {
		s.Update(0.1)
		d := moon.Position.Distance(rocky.Position)
		if d < 0.7 || d > 0.9 {
			t.Fatalf("step %d: moon drifted to %v from its parent, want ~0.8", i, d)
		}
	}
}

func TestRingsTrackRingedPlanet(t *testing.T) {
	s := NewSolarSystem()

	var ringed, rings *Body
	for _, b := range s.Bodies {
		switch b.Name {
		case "ringed":
			ringed = b
		case "rings":
			rings = b
		}
	}
	if ringed == nil || rings == nil {
		t.Fatal("solar system missing ringed planet or its rings")
	}

	for i := 0; i < 50; i++ {
		s.Update(0.1)
		if rings.Position != ringed.Position {
			t.Fatalf("step %d: rings at %v, planet at %v", i, rings.Position, ringed.Position)
		}
	}
}

func TestResolveTarget(t *testing.T) {
	s := NewSolarSystem()

	for _, name := range s.TargetNames() {
		if _, dist, ok := s.ResolveTarget(name); !ok || dist <= 0 {
			t.Errorf("target %q: ok=%v dist=%v", name, ok, dist)
		}
	}
	if _, _, ok := s.ResolveTarget("planet-x"); ok {
		t.Error("unknown target resolved")
	}
}

func TestShipThrustAndDrag(t *testing.T) {
	ship := NewShip(CreateCube(1))

	ship.ApplyThrust(1)
	fwd := ship.Forward()
	if ship.Velocity.Normalize().Dot(fwd) < 0.999 {
		t.Errorf("thrust not along heading: vel %v, fwd %v", ship.Velocity, fwd)
	}

	speed := ship.Velocity.Length()
	ship.Update(1.0 / 60.0)
	if ship.Velocity.Length() >= speed {
		t.Error("drag did not slow the ship")
	}
}

func TestShipBouncesAtBoundary(t *testing.T) {
	ship := NewShip(CreateCube(1))
	ship.Position = math.NewVec3(shipBoundary+0.5, 0, 0)
	ship.Velocity = math.NewVec3(2, 0, 0)

	ship.Update(1.0 / 60.0)
	if ship.Velocity.X >= 0 {
		t.Errorf("velocity not reversed at boundary: %v", ship.Velocity)
	}
}

func TestShipCollisionBounce(t *testing.T) {
	s := NewSolarSystem()
	sun := s.Bodies[0]

	s.Ship.Position = sun.Position.Add(math.NewVec3(sun.Scale*0.5, 0, 0))
	s.Ship.Velocity = math.NewVec3(-1, 0, 0)
	s.Update(1.0 / 60.0)

	d := s.Ship.Position.Distance(sun.Position)
	if d < sun.Scale+shipRadius-1e-3 {
		t.Errorf("ship left inside the sun: distance %v", d)
	}
	if s.Ship.Velocity.X <= 0 {
		t.Errorf("velocity not reflected: %v", s.Ship.Velocity)
	}
}

func TestShipPassesThroughNoCollisionBody(t *testing.T) {
	rings := &Body{
		Name:        "rings",
		Scale:       1,
		NoCollision: true,
	}
	s := &Scene{
		Bodies: []*Body{rings},
		Ship:   NewShip(CreateCube(1)),
	}

	s.Ship.Position = rings.Position
	s.Ship.Velocity = math.NewVec3(1, 0, 0)
	s.Update(1.0 / 60.0)

	if s.Ship.Velocity.X <= 0 {
		t.Errorf("ship bounced off a non-colliding body: velocity %v", s.Ship.Velocity)
	}
}

func TestShipYawWraps(t *testing.T) {
	ship := NewShip(CreateCube(1))
	ship.Rotate(7) // > 2pi
	if ship.Yaw < 0 || ship.Yaw >= 6.2832 {
		t.Errorf("yaw out of range: %v", ship.Yaw)
	}
	ship.Rotate(-10)
	if ship.Yaw < 0 || ship.Yaw >= 6.2832 {
		t.Errorf("yaw out of range after negative turn: %v", ship.Yaw)
	}
}

func TestCreateSphereGeometry(t *testing.T) {
	mesh := CreateSphere(2, 16, 8)

	if len(mesh.Indices)%3 != 0 {
		t.Fatal("index count not a multiple of 3")
	}
	for i, v := range mesh.Vertices {
		r := v.Position.Length()
		if r < 1.99 || r > 2.01 {
			t.Fatalf("vertex %d radius %v, want 2", i, r)
		}
		n := v.Normal.Length()
		if n < 0.99 || n > 1.01 {
			t.Fatalf("vertex %d normal length %v", i, n)
		}
	}
	for _, idx := range mesh.Indices {
		if int(idx) >= len(mesh.Vertices) {
			t.Fatalf("index %d out of range", idx)
		}
	}
}

func TestCreateRingSpansRadii(t *testing.T) {
	mesh := CreateRing(1.0, 1.5, 32)

	for i, v := range mesh.Vertices {
		r := math.NewVec3(v.Position.X, 0, v.Position.Z).Length()
		if r < 0.99 || r > 1.51 {
			t.Fatalf("vertex %d radius %v outside [1, 1.5]", i, r)
		}
		if v.Position.Y != 0 {
			t.Fatalf("vertex %d not in the XZ plane", i)
		}
	}
}

func TestCreateOrbitRingIsDashed(t *testing.T) {
	mesh := CreateOrbitRing(3, 200)

	// A solid ring would carry four vertices per segment; the dash pattern
	// drops roughly a third of them.
	if len(mesh.Vertices) >= 200*4 {
		t.Errorf("orbit ring has no gaps: %d vertices", len(mesh.Vertices))
	}
	if len(mesh.Vertices) == 0 {
		t.Fatal("orbit ring empty")
	}
}

func TestCreateCubeTagsThrusterFace(t *testing.T) {
	mesh := NewSolarSystem().Ship.Mesh

	var thrusters, bodies int
	for _, v := range mesh.Vertices {
		switch v.Region {
		case core.RegionThruster:
			thrusters++
			if v.Position.Z >= 0 {
				t.Errorf("thruster vertex on the wrong face: %v", v.Position)
			}
		case core.RegionBody:
			bodies++
		}
	}
	if thrusters == 0 {
		t.Error("fallback hull has no thruster region, engine glow unreachable")
	}
	if bodies == 0 {
		t.Error("fallback hull has no body region")
	}
}

func TestLoadOBJ(t *testing.T) {
	objSrc := `# simple wedge
v 0 0 0
v 1 0 0
v 0 1 0
v 0 0 1
vn 0 0 1
vt 0 0
vt 1 0
vt 0 1
f 1/1/1 2/2/1 3/3/1
f 1 2 4
f 1 99 3
`
	path := filepath.Join(t.TempDir(), "wedge.obj")
	if err := os.WriteFile(path, []byte(objSrc), 0o644); err != nil {
		t.Fatal(err)
	}

	mesh, err := LoadOBJ(path)
	if err != nil {
		t.Fatal(err)
	}

	// Two valid faces; the face referencing vertex 99 is skipped.
	if len(mesh.Indices) != 6 {
		t.Errorf("index count = %d, want 6", len(mesh.Indices))
	}
	if mesh.Vertices[0].Normal != (math.Vec3{Z: 1}) {
		t.Errorf("vertex normal = %v", mesh.Vertices[0].Normal)
	}
}

func TestLoadOBJMissingFile(t *testing.T) {
	if _, err := LoadOBJ("does-not-exist.obj"); err == nil {
		t.Error("expected an error for a missing file")
	}
}
