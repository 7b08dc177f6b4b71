package render

import (
	"space-renderer/math"
)

// TransformSet is the per-drawable matrix stage, rebuilt every frame and
// owned exclusively by the render pass that computed it. Building one has
// no side effects, so drawables can compute their sets concurrently.
type TransformSet struct {
	Model      math.Mat4
	View       math.Mat4
	Projection math.Mat4
	Viewport   math.Mat4
	MVP        math.Mat4
	// Normal is the inverse-transpose of the model's upper 3x3. Normals
	// would shear under non-uniform scale if pushed through Model directly.
	// Shading happens in world space, so View is left out of this one.
	Normal math.Mat3
}

func NewTransformSet(model, view, projection, viewport math.Mat4) TransformSet {
	return TransformSet{
		Model:      model,
		View:       view,
		Projection: projection,
		Viewport:   viewport,
		MVP:        model.Mul(view).Mul(projection),
		Normal:     model.Mat3().Inverse().Transpose(),
	}
}
