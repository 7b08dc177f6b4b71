package shading

import (
	opensimplex "github.com/ojrac/opensimplex-go"

	"space-renderer/math"
)

// Kind selects the shading policy for a material.
type Kind int

const (
	KindStar Kind = iota
	KindRockyPlanet
	KindGasGiant
	KindMoon
	KindPlanetRings
	KindShipHull
)

// Material is a tagged variant: Kind picks the policy, the remaining
// fields parameterize it. The noise source is seeded once at construction
// so shading stays deterministic for a given (position, seed, time).
type Material struct {
	Kind       Kind
	Seed       int64
	NoiseScale float32 // multiplier on every layer's spatial frequency
	AnimSpeed  float32 // multiplier on the animation clock

	noise opensimplex.Noise
}

func NewMaterial(kind Kind, seed int64) *Material {
	return &Material{
		Kind:       kind,
		Seed:       seed,
		NoiseScale: 1,
		AnimSpeed:  1,
		noise:      opensimplex.New(seed),
	}
}

// Context carries the per-frame globals every policy may read.
type Context struct {
	Time     float32
	Eye      math.Vec3
	LightDir math.Vec3 // unit vector pointing toward the light
}

func (m *Material) noise3(x, y, z float32) float32 {
	return float32(m.noise.Eval3(float64(x), float64(y), float64(z)))
}

func (m *Material) noise2(x, y float32) float32 {
	return float32(m.noise.Eval2(float64(x), float64(y)))
}
