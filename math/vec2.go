package math

// Vec2 carries texture coordinates through the pipeline. Interpolation
// happens component-wise in the rasterizer, so no arithmetic lives here.
type Vec2 struct {
	X, Y float32
}

func NewVec2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}
