package math

func Clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func Clamp01(v float32) float32 {
	return Clamp(v, 0, 1)
}

func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Smoothstep is the ease-in-ease-out curve 3t^2 - 2t^3 on clamped t.
// It is monotonic non-decreasing and hits 0 and 1 exactly at the endpoints.
func Smoothstep(t float32) float32 {
	t = Clamp01(t)
	return t * t * (3 - 2*t)
}
