package shading

import (
	stdmath "math"

	"space-renderer/core"
	"space-renderer/math"
	"space-renderer/render"
)

// Shade runs the material's policy on one fragment. The second return
// value reports whether the fragment is kept; false means fully
// transparent (ring gaps) and the caller must not write color or depth.
func Shade(m *Material, frag render.Fragment, ctx Context) (core.Color, bool) {
	switch m.Kind {
	case KindStar:
		return shadeStar(m, frag, ctx), true
	case KindRockyPlanet:
		return shadeRockyPlanet(m, frag, ctx), true
	case KindGasGiant:
		return shadeGasGiant(m, frag, ctx), true
	case KindMoon:
		return shadeMoon(m, frag, ctx), true
	case KindPlanetRings:
		return shadeRings(m, frag, ctx)
	case KindShipHull:
		return shadeShipHull(m, frag, ctx), true
	}
	return core.ColorFromHex(0xFF00FF), true
}

func sinf(x float32) float32  { return float32(stdmath.Sin(float64(x))) }
func sqrtf(x float32) float32 { return float32(stdmath.Sqrt(float64(x))) }
func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func cube(x float32) float32 { return x * x * x }

// lambert is the diffuse term: cosine of the angle between the surface
// normal and the light direction, clamped to zero on the dark side.
func lambert(normal, lightDir math.Vec3) float32 {
	return math.Clamp01(normal.Dot(lightDir))
}

// shadeStar is emissive: no diffuse term. Layers are a radial warmth
// gradient, animated plasma, slow sunspots, and limb brightening from
// the view angle so silhouette pixels read brighter than the disk center.
func shadeStar(m *Material, frag render.Fragment, ctx Context) core.Color {
	p := frag.LocalPos
	t := ctx.Time * m.AnimSpeed
	z := m.NoiseScale

	coreColor := core.ColorFromHex(0xFFFACD)
	midColor := core.ColorFromHex(0xFFD700)
	edgeColor := core.ColorFromHex(0xFF8C00)

	r := p.Length()
	var base core.Color
	if r < 0.5 {
		base = coreColor.Lerp(midColor, r*2)
	} else {
		base = midColor.Lerp(edgeColor, (r-0.5)*2)
	}

	plasma := m.noise3(p.X*8*z+t*0.3, p.Y*8*z, p.Z*8*z+t*0.15)
	plasmaIntensity := (plasma + 1) * 0.5
	c := base.Blend(core.ColorFromHex(0xFFAA00), plasmaIntensity*0.3)

	spot := m.noise3(p.X*3*z, p.Y*3*z+t*0.1, p.Z*3*z)
	if spot > 0.5 {
		c = c.Blend(core.ColorFromHex(0x994400), (spot-0.5)*2*0.4)
	}

	view := ctx.Eye.Sub(frag.WorldPos).Normalize()
	facing := absf(frag.Normal.Dot(view))
	corona := cube(1 - facing)
	return c.Blend(core.ColorFromHex(0xFFFFAA), corona*0.8)
}

// shadeRockyPlanet builds a Mars-like surface: a terrain ladder on
// large-scale noise, a finer dune/rock detail layer, and an animated
// dust-storm overlay gated by a slow threshold.
func shadeRockyPlanet(m *Material, frag render.Fragment, ctx Context) core.Color {
	p := frag.LocalPos
	t := ctx.Time * m.AnimSpeed
	z := m.NoiseScale

	terrain := m.noise3(p.X*4*z, p.Y*4*z, p.Z*4*z)
	roughness := absf(terrain)*0.7 + 0.3

	rustRed := core.ColorFromHex(0xB22222)
	marsDust := core.ColorFromHex(0xCD853F)
	ironOxide := core.ColorFromHex(0x8B4513)

	var c core.Color
	if roughness > 0.6 {
		c = rustRed.Lerp(ironOxide, (roughness-0.6)/0.4)
	} else {
		c = marsDust.Lerp(rustRed, roughness/0.6)
	}

	detail := m.noise3(p.X*10*z+100, p.Y*10*z, p.Z*10*z)
	detailColor := core.ColorFromHex(0xA0522D)
	if detail > 0.3 {
		detailColor = core.ColorFromHex(0xF4A460)
	}
	c = c.Blend(detailColor, absf(detail)*0.4)

	dust := m.noise3(p.X*8*z+t*0.1, p.Y*8*z, p.Z*8*z+t*0.03)
	if dust > 0.6 {
		c = c.Blend(core.ColorFromHex(0xD2691E), (dust-0.6)/0.4*0.3)
	}

	light := lambert(frag.Normal, ctx.LightDir)*0.7 + 0.3
	return c.Scale(light)
}

// shadeGasGiant bands on local latitude, perturbs the band phase with a
// swirling noise field, and pins a persistent great spot to one spot of
// the body so it rotates with the surface.
func shadeGasGiant(m *Material, frag render.Fragment, ctx Context) core.Color {
	p := frag.LocalPos
	t := ctx.Time * m.AnimSpeed
	z := m.NoiseScale

	color1 := core.ColorFromHex(0xD4A574)
	color2 := core.ColorFromHex(0xC17F4A)
	color3 := core.ColorFromHex(0x8B6239)
	color4 := core.ColorFromHex(0xE6C9A8)

	bandPos := p.Y * 15
	bandValue := (sinf(bandPos) + 1) * 0.5

	var c core.Color
	switch {
	case bandValue < 0.25:
		c = color1.Lerp(color2, bandValue*4)
	case bandValue < 0.5:
		c = color2.Lerp(color3, (bandValue-0.25)*4)
	case bandValue < 0.75:
		c = color3.Lerp(color4, (bandValue-0.5)*4)
	default:
		c = color4.Lerp(color1, (bandValue-0.75)*4)
	}

	turbulence := m.noise3(p.X*8*z+t*0.3, p.Y*4*z, p.Z*8*z)
	turbulentBand := (sinf(bandPos+turbulence*0.3) + 1) * 0.5
	turbColor := core.ColorFromHex(0xE8D4B8)
	if turbulentBand > 0.6 {
		turbColor = core.ColorFromHex(0xA0785A)
	}
	c = c.Blend(turbColor, absf(turbulence)*0.4)

	// Great spot anchored at a fixed local position.
	dx := p.X - 0.3
	dy := p.Y - 0.2
	spotDist := sqrtf(dx*dx + dy*dy)
	if spotDist < 0.3 {
		spot := m.noise3(p.X*5*z+t*0.05, p.Y*5*z, p.Z*5*z)
		spotFactor := (1 - spotDist/0.3) * ((spot + 1) * 0.5)
		c = c.Blend(core.ColorFromHex(0xC74440), spotFactor*0.7)

		detail := m.noise3(p.X*20*z-t*0.2, p.Y*20*z, p.Z*20*z)
		c = c.Blend(core.ColorFromHex(0xF5E6D3), absf(detail)*0.2)
	}

	light := lambert(frag.Normal, ctx.LightDir)*0.7 + 0.3
	return c.Scale(light)
}

// shadeMoon layers gray albedo variation with a crater mask. The mask is
// banded so crater edges show as bright rims around darkened floors
// instead of solid blobs.
func shadeMoon(m *Material, frag render.Fragment, ctx Context) core.Color {
	p := frag.LocalPos
	z := m.NoiseScale

	base := core.ColorFromHex(0x9B9B9B)
	dark := core.ColorFromHex(0x6B6B6B)
	light := core.ColorFromHex(0xC5C5C5)

	terrain := m.noise3(p.X*8*z, p.Y*8*z, p.Z*8*z)
	var c core.Color
	if terrain > 0 {
		c = base.Lerp(light, terrain)
	} else {
		c = base.Lerp(dark, -terrain)
	}

	crater := m.noise3(p.X*10*z+500, p.Y*10*z, p.Z*10*z)
	switch {
	case crater > 0.65:
		depth := (crater - 0.65) / 0.35
		c = c.Blend(core.ColorFromHex(0x4A4A4A), depth*0.8)
	case crater > 0.55:
		// Rim band around the floor threshold, peaking mid-band.
		rim := 1 - absf(crater-0.6)/0.05
		c = c.Blend(core.ColorFromHex(0xD8D8D8), rim*0.5)
	}

	detail := m.noise3(p.X*25*z, p.Y*25*z, p.Z*25*z)
	c = c.Blend(core.ColorFromHex(0xB0B0B0), absf(detail)*0.15)

	intensity := lambert(frag.Normal, ctx.LightDir)*0.6 + 0.4
	return c.Scale(intensity)
}

// shadeRings is evaluated on a flat annulus in the body's local XZ plane.
// Radius intervals outside the ring bands and low-density pockets are
// discarded entirely so farther geometry shows through the gaps.
func shadeRings(m *Material, frag render.Fragment, ctx Context) (core.Color, bool) {
	p := frag.LocalPos
	t := ctx.Time * m.AnimSpeed
	z := m.NoiseScale

	radius := sqrtf(p.X*p.X + p.Z*p.Z)
	if radius < 1.1 || radius > 1.4 {
		return core.Color{}, false
	}

	ringPattern := sinf(radius*30)*0.5 + 0.5
	ringPattern *= ringPattern
	if ringPattern < 0.4 {
		return core.Color{}, false
	}

	ice := m.noise3(p.X*50*z+t*0.1, p.Y*50*z, p.Z*50*z-t*0.1)
	rock := m.noise3(p.X*20*z-t*0.05, p.Y*20*z, p.Z*20*z+t*0.05)

	iceColor := core.ColorFromHex(0xE6F3FF)
	rockColor := core.ColorFromHex(0x8B7355)
	dustColor := core.ColorFromHex(0xD2B48C)

	var c core.Color
	switch {
	case ice > 0.3:
		c = dustColor.Lerp(iceColor, (ice-0.3)/0.7)
	case rock > 0.1:
		c = dustColor.Lerp(rockColor, (rock-0.1)/0.9)
	default:
		c = dustColor
	}

	density := (m.noise2(radius*8*z, t*0.02) + 1) * 0.5
	alpha := ringPattern * density
	if alpha < 0.3 {
		return core.Color{}, false
	}

	space := core.ColorFromHex(0x000011)
	return space.Lerp(c, alpha*0.5), true
}

// shadeShipHull dispatches on the mesh region carried by the vertex:
// thrusters pulse, the cockpit gets a tinted glass look, and the hull
// gets a metallic noise ladder. All regions share one directional light.
func shadeShipHull(m *Material, frag render.Fragment, ctx Context) core.Color {
	p := frag.LocalPos
	t := ctx.Time * m.AnimSpeed
	z := m.NoiseScale

	baseMetal := core.ColorFromHex(0x8090A0)
	highlight := core.ColorFromHex(0xB0C0D0)
	shadow := core.ColorFromHex(0x506070)

	metallic := m.noise3(p.X*20*z, p.Y*20*z, p.Z*20*z)
	metalFactor := (metallic + 1) * 0.5
	var c core.Color
	switch {
	case metalFactor > 0.7:
		c = baseMetal.Lerp(highlight, (metalFactor-0.7)/0.3)
	case metalFactor < 0.3:
		c = shadow.Lerp(baseMetal, metalFactor/0.3)
	default:
		c = baseMetal
	}

	switch frag.Region {
	case core.RegionThruster:
		pulse := (sinf(t*4) + 1) * 0.5
		if pulse > 0.6 {
			c = c.Blend(core.ColorFromHex(0x00AAFF), (pulse-0.6)*2.5)
		}
	case core.RegionCockpit:
		c = c.Blend(core.ColorFromHex(0x1E3A5C), 0.6)
	}

	light := lambert(frag.Normal, ctx.LightDir)*0.7 + 0.3
	return c.Scale(light)
}
