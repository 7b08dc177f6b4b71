package render

import (
	stdmath "math"

	"space-renderer/core"
	"space-renderer/math"
)

// Fragment is one candidate pixel produced by rasterizing a triangle. It
// lives only for the duration of the shading call.
type Fragment struct {
	X, Y     int
	Depth    float32
	LocalPos math.Vec3 // model-space position; rotates with the body
	WorldPos math.Vec3
	Normal   math.Vec3 // world space, normalized
	UV       math.Vec2
	Region   core.RegionID
}

// ShadeFunc turns a surviving fragment into a packed color. Returning
// ok=false discards the fragment entirely: neither plane is touched.
type ShadeFunc func(Fragment) (color uint32, ok bool)

// minW rejects vertices that sit on or behind the eye plane before the
// perspective divide can blow up.
const minW = 1e-6

// minArea is the doubled-area threshold below which a triangle is treated
// as degenerate and rejected before any barycentric division.
const minArea = 1e-6

type transformedVertex struct {
	sx, sy float32 // screen-space pixel coordinates
	z      float32 // NDC depth, smaller is nearer
	invW   float32 // reciprocal clip-space w for perspective correction
	local  math.Vec3
	world  math.Vec3
	normal math.Vec3
	uv     math.Vec2
	region core.RegionID
}

// Rasterizer converts transformed triangles into shaded pixels in a
// Framebuffer. Reuse one instance; the vertex scratch buffer is recycled
// across draw calls to keep the hot path allocation-free.
type Rasterizer struct {
	fb      *Framebuffer
	scratch []transformedVertex

	// Per-frame counters, reset by ResetStats.
	TrianglesDrawn    int
	TrianglesRejected int
	FragmentsShaded   int
}

func NewRasterizer(fb *Framebuffer) *Rasterizer {
	return &Rasterizer{fb: fb}
}

func (r *Rasterizer) ResetStats() {
	r.TrianglesDrawn = 0
	r.TrianglesRejected = 0
	r.FragmentsShaded = 0
}

// DrawMesh runs the vertex stage over the whole mesh, then rasterizes each
// index triple. Malformed triangles (out-of-range indices, degenerate area,
// vertices behind the eye) are skipped individually; one bad triangle never
// aborts the mesh.
func (r *Rasterizer) DrawMesh(ts TransformSet, mesh *core.MeshData, shade ShadeFunc) {
	if mesh == nil || len(mesh.Indices) < 3 {
		return
	}

	if cap(r.scratch) < len(mesh.Vertices) {
		r.scratch = make([]transformedVertex, len(mesh.Vertices))
	}
	verts := r.scratch[:len(mesh.Vertices)]
	for i := range mesh.Vertices {
		verts[i] = transformVertex(ts, &mesh.Vertices[i])
	}

	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		i0, i1, i2 := int(mesh.Indices[i]), int(mesh.Indices[i+1]), int(mesh.Indices[i+2])
		if i0 >= len(verts) || i1 >= len(verts) || i2 >= len(verts) {
			r.TrianglesRejected++
			continue
		}
		r.rasterizeTriangle(&verts[i0], &verts[i1], &verts[i2], shade)
	}
}

// transformVertex runs one vertex through model, view, projection and
// viewport, keeping the world-space position, world-space normal and the
// reciprocal w needed for perspective-correct interpolation.
func transformVertex(ts TransformSet, v *core.Vertex) transformedVertex {
	clip := v.Position.ToVec4(1).MulMat(ts.MVP)

	w := clip.W
	if w >= 0 && w < minW {
		w = minW
	} else if w < 0 && w > -minW {
		w = -minW
	}
	invW := 1 / w

	ndc := math.Vec3{X: clip.X * invW, Y: clip.Y * invW, Z: clip.Z * invW}
	screen := ts.Viewport.MulVec(ndc.ToVec4(1)).ToVec3()

	return transformedVertex{
		sx:     screen.X,
		sy:     screen.Y,
		z:      screen.Z,
		invW:   invW,
		local:  v.Position,
		world:  ts.Model.MulPoint(v.Position),
		normal: ts.Normal.MulVec(v.Normal).Normalize(),
		uv:     v.UV,
		region: v.Region,
	}
}

func (r *Rasterizer) rasterizeTriangle(v0, v1, v2 *transformedVertex, shade ShadeFunc) {
	// Vertices on or behind the eye plane would have been divided by a
	// clamped w; their screen coordinates are meaningless, so drop the
	// triangle rather than smear it across the frame.
	if v0.invW < 0 || v1.invW < 0 || v2.invW < 0 {
		r.TrianglesRejected++
		return
	}

	// Signed doubled area of the screen-space triangle.
	area := (v1.sx-v0.sx)*(v2.sy-v0.sy) - (v1.sy-v0.sy)*(v2.sx-v0.sx)
	if area > -minArea && area < minArea {
		r.TrianglesRejected++
		return
	}
	invArea := 1 / area

	minX := int(stdmath.Floor(float64(min3(v0.sx, v1.sx, v2.sx))))
	maxX := int(stdmath.Ceil(float64(max3(v0.sx, v1.sx, v2.sx))))
	minY := int(stdmath.Floor(float64(min3(v0.sy, v1.sy, v2.sy))))
	maxY := int(stdmath.Ceil(float64(max3(v0.sy, v1.sy, v2.sy))))

	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX > r.fb.Width-1 {
		maxX = r.fb.Width - 1
	}
	if maxY > r.fb.Height-1 {
		maxY = r.fb.Height - 1
	}
	if minX > maxX || minY > maxY {
		r.TrianglesRejected++
		return
	}
	r.TrianglesDrawn++

	for y := minY; y <= maxY; y++ {
		py := float32(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float32(x) + 0.5

			// Barycentric weights; dividing by the signed area makes the
			// all-non-negative inside test winding independent.
			l0 := ((v1.sx-px)*(v2.sy-py) - (v1.sy-py)*(v2.sx-px)) * invArea
			l1 := ((v2.sx-px)*(v0.sy-py) - (v2.sy-py)*(v0.sx-px)) * invArea
			l2 := 1 - l0 - l1
			if l0 < 0 || l1 < 0 || l2 < 0 {
				continue
			}

			// Depth interpolates linearly in screen space after the divide.
			depth := l0*v0.z + l1*v1.z + l2*v2.z
			if !r.fb.TestDepth(x, y, depth) {
				continue
			}

			// Perspective-correct attribute interpolation: attributes are
			// weighted by 1/w and renormalized, otherwise foreshortened
			// surfaces warp visibly.
			w0 := l0 * v0.invW
			w1 := l1 * v1.invW
			w2 := l2 * v2.invW
			wSum := w0 + w1 + w2
			if wSum <= 0 {
				continue
			}
			invWSum := 1 / wSum

			frag := Fragment{
				X:     x,
				Y:     y,
				Depth: depth,
				LocalPos: math.Vec3{
					X: (w0*v0.local.X + w1*v1.local.X + w2*v2.local.X) * invWSum,
					Y: (w0*v0.local.Y + w1*v1.local.Y + w2*v2.local.Y) * invWSum,
					Z: (w0*v0.local.Z + w1*v1.local.Z + w2*v2.local.Z) * invWSum,
				},
				WorldPos: math.Vec3{
					X: (w0*v0.world.X + w1*v1.world.X + w2*v2.world.X) * invWSum,
					Y: (w0*v0.world.Y + w1*v1.world.Y + w2*v2.world.Y) * invWSum,
					Z: (w0*v0.world.Z + w1*v1.world.Z + w2*v2.world.Z) * invWSum,
				},
				Normal: math.Vec3{
					X: (w0*v0.normal.X + w1*v1.normal.X + w2*v2.normal.X) * invWSum,
					Y: (w0*v0.normal.Y + w1*v1.normal.Y + w2*v2.normal.Y) * invWSum,
					Z: (w0*v0.normal.Z + w1*v1.normal.Z + w2*v2.normal.Z) * invWSum,
				}.Normalize(),
				UV: math.Vec2{
					X: (w0*v0.uv.X + w1*v1.uv.X + w2*v2.uv.X) * invWSum,
					Y: (w0*v0.uv.Y + w1*v1.uv.Y + w2*v2.uv.Y) * invWSum,
				},
				Region: nearestRegion(l0, l1, l2, v0.region, v1.region, v2.region),
			}

			color, ok := shade(frag)
			if !ok {
				continue
			}
			r.fb.Put(x, y, depth, color)
			r.FragmentsShaded++
		}
	}
}

// nearestRegion picks the region of the dominant vertex; region ids are
// categorical and cannot be interpolated.
func nearestRegion(l0, l1, l2 float32, r0, r1, r2 core.RegionID) core.RegionID {
	if l0 >= l1 && l0 >= l2 {
		return r0
	}
	if l1 >= l2 {
		return r1
	}
	return r2
}

func min3(a, b, c float32) float32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func max3(a, b, c float32) float32 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}
