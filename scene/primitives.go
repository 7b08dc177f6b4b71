package scene

import (
	stdmath "math"

	"space-renderer/core"
	"space-renderer/math"
)

// CreateSphere generates a UV-sphere mesh. The mesh is unit-radius unless
// scaled; vertex positions double as outward normals.
func CreateSphere(radius float32, segments, rings int) *core.MeshData {
	if segments < 3 {
		segments = 3
	}
	if rings < 2 {
		rings = 2
	}

	var vertices []core.Vertex
	var indices []uint32

	for ring := 0; ring <= rings; ring++ {
		phi := float64(ring) * stdmath.Pi / float64(rings)
		sinPhi := float32(stdmath.Sin(phi))
		cosPhi := float32(stdmath.Cos(phi))

		for seg := 0; seg <= segments; seg++ {
			theta := float64(seg) * 2.0 * stdmath.Pi / float64(segments)
			sinTheta := float32(stdmath.Sin(theta))
			cosTheta := float32(stdmath.Cos(theta))

			normal := math.Vec3{X: sinPhi * cosTheta, Y: cosPhi, Z: sinPhi * sinTheta}
			position := normal.Mul(radius)
			uv := math.Vec2{X: float32(seg) / float32(segments), Y: float32(ring) / float32(rings)}

			vertices = append(vertices, core.Vertex{
				Position: position,
				Normal:   normal,
				UV:       uv,
			})
		}
	}

	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			current := uint32(ring*(segments+1) + seg)
			next := current + uint32(segments+1)

			indices = append(indices, current, next, current+1)
			indices = append(indices, current+1, next, next+1)
		}
	}

	return &core.MeshData{Name: "sphere", Vertices: vertices, Indices: indices}
}

// CreateRing generates a flat annulus in the local XZ plane, used as the
// carrier geometry for planetary rings. The ring material selects its own
// bands within [inner, outer] and discards the rest.
func CreateRing(inner, outer float32, segments int) *core.MeshData {
	if segments < 8 {
		segments = 8
	}

	var vertices []core.Vertex
	var indices []uint32
	normal := math.Vec3Up

	for i := 0; i <= segments; i++ {
		theta := float64(i) * 2.0 * stdmath.Pi / float64(segments)
		cosT := float32(stdmath.Cos(theta))
		sinT := float32(stdmath.Sin(theta))
		u := float32(i) / float32(segments)

		vertices = append(vertices, core.Vertex{
			Position: math.Vec3{X: cosT * inner, Z: sinT * inner},
			Normal:   normal,
			UV:       math.Vec2{X: u, Y: 0},
		})
		vertices = append(vertices, core.Vertex{
			Position: math.Vec3{X: cosT * outer, Z: sinT * outer},
			Normal:   normal,
			UV:       math.Vec2{X: u, Y: 1},
		})
	}

	for i := 0; i < segments; i++ {
		base := uint32(i * 2)
		indices = append(indices, base, base+1, base+2)
		indices = append(indices, base+2, base+1, base+3)
	}

	return &core.MeshData{Name: "ring", Vertices: vertices, Indices: indices}
}

// CreateOrbitRing builds a dashed circular guide line in the XZ plane as a
// strip of thin quads. Every third run of eight segments is skipped to make
// the dash pattern.
func CreateOrbitRing(radius float32, segments int) *core.MeshData {
	if segments < 16 {
		segments = 16
	}
	const lineWidth = 0.015

	var vertices []core.Vertex
	var indices []uint32
	normal := math.Vec3Up

	for i := 0; i < segments; i++ {
		if (i/8)%3 == 2 {
			continue
		}

		angle1 := float64(i) / float64(segments) * 2.0 * stdmath.Pi
		angle2 := float64(i+1) / float64(segments) * 2.0 * stdmath.Pi

		x1 := radius * float32(stdmath.Cos(angle1))
		z1 := radius * float32(stdmath.Sin(angle1))
		x2 := radius * float32(stdmath.Cos(angle2))
		z2 := radius * float32(stdmath.Sin(angle2))

		// Perpendicular in the plane gives the quad its width.
		dx := x2 - x1
		dz := z2 - z1
		length := float32(stdmath.Sqrt(float64(dx*dx + dz*dz)))
		if length == 0 {
			continue
		}
		px := -dz / length * lineWidth
		pz := dx / length * lineWidth

		base := uint32(len(vertices))
		vertices = append(vertices,
			core.Vertex{Position: math.Vec3{X: x1 + px, Z: z1 + pz}, Normal: normal},
			core.Vertex{Position: math.Vec3{X: x1 - px, Z: z1 - pz}, Normal: normal},
			core.Vertex{Position: math.Vec3{X: x2 - px, Z: z2 - pz}, Normal: normal},
			core.Vertex{Position: math.Vec3{X: x2 + px, Z: z2 + pz}, Normal: normal},
		)
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}

	return &core.MeshData{Name: "orbit-ring", Vertices: vertices, Indices: indices}
}

// CreateCube generates an axis-aligned cube, used as the fallback ship
// hull when no model file is available. The rear face is tagged as the
// thruster region so the engine glow works without a model file.
func CreateCube(size float32) *core.MeshData {
	h := size / 2

	faces := []struct {
		normal math.Vec3
		region core.RegionID
		quad   [4]math.Vec3
	}{
		{math.Vec3Front, core.RegionBody, [4]math.Vec3{{X: -h, Y: -h, Z: h}, {X: h, Y: -h, Z: h}, {X: h, Y: h, Z: h}, {X: -h, Y: h, Z: h}}},
		{math.Vec3Back, core.RegionThruster, [4]math.Vec3{{X: h, Y: -h, Z: -h}, {X: -h, Y: -h, Z: -h}, {X: -h, Y: h, Z: -h}, {X: h, Y: h, Z: -h}}},
		{math.Vec3Left, core.RegionBody, [4]math.Vec3{{X: -h, Y: -h, Z: -h}, {X: -h, Y: -h, Z: h}, {X: -h, Y: h, Z: h}, {X: -h, Y: h, Z: -h}}},
		{math.Vec3Right, core.RegionBody, [4]math.Vec3{{X: h, Y: -h, Z: h}, {X: h, Y: -h, Z: -h}, {X: h, Y: h, Z: -h}, {X: h, Y: h, Z: h}}},
		{math.Vec3Up, core.RegionBody, [4]math.Vec3{{X: -h, Y: h, Z: h}, {X: h, Y: h, Z: h}, {X: h, Y: h, Z: -h}, {X: -h, Y: h, Z: -h}}},
		{math.Vec3Down, core.RegionBody, [4]math.Vec3{{X: -h, Y: -h, Z: -h}, {X: h, Y: -h, Z: -h}, {X: h, Y: -h, Z: h}, {X: -h, Y: -h, Z: h}}},
	}

	var vertices []core.Vertex
	var indices []uint32
	uvs := [4]math.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}

	for _, f := range faces {
		base := uint32(len(vertices))
		for i, p := range f.quad {
			vertices = append(vertices, core.Vertex{Position: p, Normal: f.normal, UV: uvs[i], Region: f.region})
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}

	return &core.MeshData{Name: "cube", Vertices: vertices, Indices: indices}
}
