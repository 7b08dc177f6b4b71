package render

import "math"

// DepthFar is the sentinel every depth cell is reset to at frame start.
// Any fragment inside the view frustum is strictly closer.
const DepthFar = float32(math.MaxFloat32)

// Framebuffer owns the color and depth planes for one frame. The color
// plane is packed 0xRRGGBB, row-major with the origin at the top-left;
// the depth plane stores one float per pixel, smaller is nearer.
type Framebuffer struct {
	Width  int
	Height int
	Color  []uint32
	Depth  []float32
}

func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Color:  make([]uint32, width*height),
		Depth:  make([]float32, width*height),
	}
}

// Clear resets the color plane to the background and the depth plane to
// DepthFar. Call once at the start of every frame; nothing carries over.
func (fb *Framebuffer) Clear(background uint32) {
	for i := range fb.Color {
		fb.Color[i] = background
	}
	for i := range fb.Depth {
		fb.Depth[i] = DepthFar
	}
}

func (fb *Framebuffer) inBounds(x, y int) bool {
	return x >= 0 && x < fb.Width && y >= 0 && y < fb.Height
}

// TestDepth reports whether depth is strictly closer than the stored value
// at (x, y). It does not write: the caller commits with Put only after the
// fragment survives shading, so a discarded fragment leaves no trace.
// A NaN depth never passes.
func (fb *Framebuffer) TestDepth(x, y int, depth float32) bool {
	if !fb.inBounds(x, y) {
		return false
	}
	return depth < fb.Depth[y*fb.Width+x]
}

// Put stores color and depth at (x, y). Out-of-bounds writes are dropped.
func (fb *Framebuffer) Put(x, y int, depth float32, color uint32) {
	if !fb.inBounds(x, y) {
		return
	}
	i := y*fb.Width + x
	fb.Depth[i] = depth
	fb.Color[i] = color
}

func (fb *Framebuffer) At(x, y int) uint32 {
	if !fb.inBounds(x, y) {
		return 0
	}
	return fb.Color[y*fb.Width+x]
}

func (fb *Framebuffer) DepthAt(x, y int) float32 {
	if !fb.inBounds(x, y) {
		return DepthFar
	}
	return fb.Depth[y*fb.Width+x]
}
