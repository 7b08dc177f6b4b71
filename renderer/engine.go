package renderer

import (
	"space-renderer/camera"
	"space-renderer/core"
	"space-renderer/math"
	"space-renderer/render"
	"space-renderer/scene"
	"space-renderer/shading"
)

const orbitLineColor = 0x404080

// Engine owns the framebuffer and drives one full frame: clear, transform,
// rasterize and shade every drawable, in scene order. Depth testing makes
// the submission order irrelevant for opaque geometry.
type Engine struct {
	fb     *render.Framebuffer
	raster *render.Rasterizer

	Background uint32
	LightDir   math.Vec3 // unit vector pointing toward the light
}

func New(width, height int) *Engine {
	fb := render.NewFramebuffer(width, height)
	return &Engine{
		fb:         fb,
		raster:     render.NewRasterizer(fb),
		Background: 0x000011,
		LightDir:   math.Vec3Front,
	}
}

func (e *Engine) Framebuffer() *render.Framebuffer { return e.fb }

// Stats returns per-frame triangle and fragment counters, reset at the
// start of each RenderFrame.
func (e *Engine) Stats() (drawn, rejected, fragments int) {
	return e.raster.TrianglesDrawn, e.raster.TrianglesRejected, e.raster.FragmentsShaded
}

// Resize replaces the framebuffer. The old contents are dropped.
func (e *Engine) Resize(width, height int) {
	if width == e.fb.Width && height == e.fb.Height {
		return
	}
	e.fb = render.NewFramebuffer(width, height)
	e.raster = render.NewRasterizer(e.fb)
}

// RenderFrame draws the whole scene for one simulation instant.
func (e *Engine) RenderFrame(sc *scene.Scene, cam *camera.Camera, simTime float32) {
	e.fb.Clear(e.Background)
	e.raster.ResetStats()

	view := cam.ViewMatrix()
	proj := cam.ProjectionMatrix(float32(e.fb.Width) / float32(e.fb.Height))
	viewport := math.Mat4Viewport(float32(e.fb.Width), float32(e.fb.Height))

	ctx := shading.Context{
		Time:     simTime,
		Eye:      cam.Eye(),
		LightDir: e.LightDir.Normalize(),
	}

	for _, b := range sc.Bodies {
		ts := render.NewTransformSet(b.ModelMatrix(), view, proj, viewport)
		e.drawShaded(ts, b.Mesh, b.Material, ctx)
	}

	if sc.Ship != nil {
		ts := render.NewTransformSet(sc.Ship.ModelMatrix(), view, proj, viewport)
		e.drawShaded(ts, sc.Ship.Mesh, sc.Ship.Material, ctx)
	}

	if sc.ShowOrbits {
		for _, guide := range sc.Orbits {
			model := math.Mat4Identity()
			if guide.Parent != nil {
				model = math.Mat4Translation(guide.Parent.Position)
			}
			ts := render.NewTransformSet(model, view, proj, viewport)
			e.raster.DrawMesh(ts, guide.Mesh, func(render.Fragment) (uint32, bool) {
				return orbitLineColor, true
			})
		}
	}
}

func (e *Engine) drawShaded(ts render.TransformSet, mesh *core.MeshData, mat *shading.Material, ctx shading.Context) {
	e.raster.DrawMesh(ts, mesh, func(f render.Fragment) (uint32, bool) {
		c, ok := shading.Shade(mat, f, ctx)
		if !ok {
			return 0, false
		}
		return c.Pack(), true
	})
}
