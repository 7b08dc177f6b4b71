package present

import (
	"fmt"
	"unsafe"

	gl "github.com/go-gl/gl/v2.1/gl"

	"space-renderer/render"
)

// Blitter hands the CPU-rendered color plane to the window each frame.
// All rasterization and shading happen on the CPU; OpenGL is only the
// presentation path, so the fixed-function pipeline is enough.
type Blitter struct {
	pixels []uint8 // reused RGBA staging buffer
}

// NewBlitter initializes OpenGL. An OpenGL context must be current on the
// calling goroutine.
func NewBlitter() (*Blitter, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl init: %w", err)
	}
	return &Blitter{}, nil
}

// Present draws the framebuffer's packed 0xRRGGBB color plane to the
// current viewport. The raster position trick flips Y, since the CPU
// buffer is top-left row-major while GL draws bottom-up.
func (b *Blitter) Present(fb *render.Framebuffer, windowWidth, windowHeight int) {
	need := fb.Width * fb.Height * 4
	if len(b.pixels) != need {
		b.pixels = make([]uint8, need)
	}
	for i, c := range fb.Color {
		o := i * 4
		b.pixels[o] = uint8(c >> 16)
		b.pixels[o+1] = uint8(c >> 8)
		b.pixels[o+2] = uint8(c)
		b.pixels[o+3] = 0xFF
	}

	gl.Viewport(0, 0, int32(windowWidth), int32(windowHeight))
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.RasterPos2f(-1, 1)
	gl.PixelZoom(float32(windowWidth)/float32(fb.Width), -float32(windowHeight)/float32(fb.Height))
	gl.DrawPixels(
		int32(fb.Width),
		int32(fb.Height),
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		unsafe.Pointer(&b.pixels[0]),
	)
}
