package core

// Color is a linear RGB triple in [0,1] per channel. Alpha is not stored:
// the pipeline either keeps a fragment or discards it entirely.
type Color struct {
	R, G, B float32
}

// ColorFromHex unpacks a 0xRRGGBB value.
func ColorFromHex(hex uint32) Color {
	return Color{
		R: float32((hex>>16)&0xFF) / 255,
		G: float32((hex>>8)&0xFF) / 255,
		B: float32(hex&0xFF) / 255,
	}
}

// Pack clamps each channel and packs to 0xRRGGBB, the framebuffer format.
func (c Color) Pack() uint32 {
	return uint32(clampChannel(c.R))<<16 |
		uint32(clampChannel(c.G))<<8 |
		uint32(clampChannel(c.B))
}

func clampChannel(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

func (c Color) Lerp(other Color, t float32) Color {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
	}
}

// Blend mixes overlay over c by factor, the shading engine's layer operator.
func (c Color) Blend(overlay Color, factor float32) Color {
	return c.Lerp(overlay, factor)
}

func (c Color) Scale(s float32) Color {
	return Color{R: c.R * s, G: c.G * s, B: c.B * s}
}
