package camera

import (
	"errors"
	"fmt"
	stdmath "math"

	"space-renderer/math"
)

// Mode is the camera's control scheme.
type Mode int

const (
	ModeOrbital Mode = iota
	ModeFreeLook
)

func (m Mode) String() string {
	if m == ModeFreeLook {
		return "freelook"
	}
	return "orbital"
}

// ErrUnknownTarget reports a warp request naming a target the resolver
// does not know. The camera state is left untouched.
var ErrUnknownTarget = errors.New("unknown warp target")

// TargetResolver maps a focus-target id to its current world position and
// a comfortable viewing distance. The scene satisfies this.
type TargetResolver interface {
	ResolveTarget(id string) (pos math.Vec3, distance float32, ok bool)
}

type Config struct {
	FOV          float32 // vertical field of view, radians
	Near         float32
	Far          float32
	MinDistance  float32
	MaxDistance  float32
	WarpDuration float32 // seconds
}

func DefaultConfig() Config {
	return Config{
		FOV:          stdmath.Pi / 4,
		Near:         0.1,
		Far:          1000,
		MinDistance:  1.5,
		MaxDistance:  50,
		WarpDuration: 2,
	}
}

// maxPitch stops just short of the poles so the look basis never
// degenerates against the world up vector.
const maxPitch = 1.55

// warpState is the in-flight transition record. Source and destination
// poses are resolved once when the warp starts and interpolated until
// elapsed reaches duration, at which point the destination parameters are
// committed exactly.
type warpState struct {
	srcEye math.Vec3
	dstEye math.Vec3
	srcRot math.Quaternion
	dstRot math.Quaternion

	elapsed  float32
	duration float32

	focus       string
	dstYaw      float32
	dstPitch    float32
	dstDistance float32
}

// Camera owns two mutually exclusive parameter sets, one per mode, plus
// an optional warp record that overrides the resolved pose while active.
type Camera struct {
	cfg      Config
	resolver TargetResolver
	mode     Mode

	// orbital parameters
	focus    string
	focusPos math.Vec3
	yaw      float32
	pitch    float32
	distance float32

	// freelook parameters
	eye       math.Vec3
	lookYaw   float32
	lookPitch float32

	warp *warpState
}

func New(cfg Config, resolver TargetResolver, initialFocus string) *Camera {
	c := &Camera{
		cfg:      cfg,
		resolver: resolver,
		mode:     ModeOrbital,
		focus:    initialFocus,
		distance: cfg.MaxDistance / 2,
	}
	if pos, dist, ok := resolver.ResolveTarget(initialFocus); ok {
		c.focusPos = pos
		c.distance = math.Clamp(dist, cfg.MinDistance, cfg.MaxDistance)
	}
	return c
}

func (c *Camera) Mode() Mode       { return c.mode }
func (c *Camera) Focus() string    { return c.focus }
func (c *Camera) IsWarping() bool  { return c.warp != nil }
func (c *Camera) Distance() float32 { return c.distance }

// orbitalOffset is the eye offset from the focus for given spherical
// parameters.
func orbitalOffset(yaw, pitch, distance float32) math.Vec3 {
	cy := float32(stdmath.Cos(float64(yaw)))
	sy := float32(stdmath.Sin(float64(yaw)))
	cp := float32(stdmath.Cos(float64(pitch)))
	sp := float32(stdmath.Sin(float64(pitch)))
	return math.NewVec3(distance*cp*sy, distance*sp, distance*cp*cy)
}

// lookForward is the freelook view direction for given yaw/pitch.
func lookForward(yaw, pitch float32) math.Vec3 {
	cy := float32(stdmath.Cos(float64(yaw)))
	sy := float32(stdmath.Sin(float64(yaw)))
	cp := float32(stdmath.Cos(float64(pitch)))
	sp := float32(stdmath.Sin(float64(pitch)))
	return math.NewVec3(cp*cy, sp, cp*sy)
}

func (c *Camera) warpProgress() float32 {
	if c.warp.duration <= 0 {
		return 1
	}
	return math.Smoothstep(c.warp.elapsed / c.warp.duration)
}

// Eye returns the resolved world-space eye position, accounting for an
// active warp.
func (c *Camera) Eye() math.Vec3 {
	if c.warp != nil {
		return c.warp.srcEye.Lerp(c.warp.dstEye, c.warpProgress())
	}
	if c.mode == ModeOrbital {
		return c.focusPos.Add(orbitalOffset(c.yaw, c.pitch, c.distance))
	}
	return c.eye
}

// Rotation returns the resolved orientation.
func (c *Camera) Rotation() math.Quaternion {
	if c.warp != nil {
		return c.warp.srcRot.Slerp(c.warp.dstRot, c.warpProgress())
	}
	if c.mode == ModeOrbital {
		forward := c.focusPos.Sub(c.Eye())
		return math.QuaternionLookRotation(forward, math.Vec3Up)
	}
	return math.QuaternionLookRotation(lookForward(c.lookYaw, c.lookPitch), math.Vec3Up)
}

func (c *Camera) Forward() math.Vec3 {
	return c.Rotation().RotateVector(math.Vec3Back)
}

func (c *Camera) ViewMatrix() math.Mat4 {
	eye := c.Eye()
	return math.Mat4LookAt(eye, eye.Add(c.Forward()), math.Vec3Up)
}

func (c *Camera) ProjectionMatrix(aspect float32) math.Mat4 {
	return math.Mat4Perspective(c.cfg.FOV, aspect, c.cfg.Near, c.cfg.Far)
}

// Orbit adjusts yaw and pitch around the focus. Only meaningful in
// orbital mode; ignored mid-warp.
func (c *Camera) Orbit(deltaYaw, deltaPitch float32) {
	if c.warp != nil || c.mode != ModeOrbital {
		return
	}
	c.yaw += deltaYaw
	c.pitch = math.Clamp(c.pitch+deltaPitch, -maxPitch, maxPitch)
}

// Zoom moves the orbital eye toward (negative delta) or away from the
// focus, clamped so the camera neither penetrates the body nor loses the
// scene framing.
func (c *Camera) Zoom(delta float32) {
	if c.warp != nil || c.mode != ModeOrbital {
		return
	}
	c.distance = math.Clamp(c.distance+delta, c.cfg.MinDistance, c.cfg.MaxDistance)
}

// Look rotates the freelook orientation directly.
func (c *Camera) Look(deltaYaw, deltaPitch float32) {
	if c.warp != nil || c.mode != ModeFreeLook {
		return
	}
	c.lookYaw += deltaYaw
	c.lookPitch = math.Clamp(c.lookPitch+deltaPitch, -maxPitch, maxPitch)
}

// Move translates the freelook eye along the camera's local axes.
func (c *Camera) Move(forward, right, up float32) {
	if c.warp != nil || c.mode != ModeFreeLook {
		return
	}
	rot := c.Rotation()
	f := rot.RotateVector(math.Vec3Back)
	r := rot.RotateVector(math.Vec3Right)
	u := rot.RotateVector(math.Vec3Up)
	c.eye = c.eye.Add(f.Mul(forward)).Add(r.Mul(right)).Add(u.Mul(up))
}

// ToggleMode switches between orbital and freelook, deriving the other
// mode's parameters from the current resolved pose so the framing does
// not jump.
func (c *Camera) ToggleMode() {
	if c.warp != nil {
		return
	}
	if c.mode == ModeOrbital {
		eye := c.Eye()
		f := c.focusPos.Sub(eye).Normalize()
		c.eye = eye
		c.lookYaw = float32(stdmath.Atan2(float64(f.Z), float64(f.X)))
		c.lookPitch = float32(stdmath.Asin(float64(math.Clamp(f.Y, -1, 1))))
		c.mode = ModeFreeLook
		return
	}

	offset := c.eye.Sub(c.focusPos)
	dist := offset.Length()
	if dist < c.cfg.MinDistance {
		dist = c.cfg.MinDistance
	}
	c.distance = math.Clamp(dist, c.cfg.MinDistance, c.cfg.MaxDistance)
	c.yaw = float32(stdmath.Atan2(float64(offset.X), float64(offset.Z)))
	c.pitch = float32(stdmath.Asin(float64(math.Clamp(offset.Y/dist, -1, 1))))
	c.mode = ModeOrbital
}

// WarpTo starts an eased transition toward the named target. A request
// arriving mid-warp restarts the transition from the current interpolated
// pose. An unknown target fails without mutating state.
func (c *Camera) WarpTo(id string) error {
	pos, dist, ok := c.resolver.ResolveTarget(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTarget, id)
	}

	srcEye := c.Eye()
	srcRot := c.Rotation()

	dstYaw, dstPitch := c.yaw, c.pitch
	if c.mode == ModeFreeLook {
		// Frame the target along the current view direction.
		f := lookForward(c.lookYaw, c.lookPitch)
		dstYaw = float32(stdmath.Atan2(float64(-f.X), float64(-f.Z)))
		dstPitch = float32(stdmath.Asin(float64(math.Clamp(-f.Y, -1, 1))))
	}
	dstDistance := math.Clamp(dist, c.cfg.MinDistance, c.cfg.MaxDistance)

	dstEye := pos.Add(orbitalOffset(dstYaw, dstPitch, dstDistance))
	dstRot := math.QuaternionLookRotation(pos.Sub(dstEye), math.Vec3Up)

	c.warp = &warpState{
		srcEye:      srcEye,
		dstEye:      dstEye,
		srcRot:      srcRot,
		dstRot:      dstRot,
		duration:    c.cfg.WarpDuration,
		focus:       id,
		dstYaw:      dstYaw,
		dstPitch:    dstPitch,
		dstDistance: dstDistance,
	}
	return nil
}

// Update advances the warp clock and tracks the focus body's motion.
// Commit happens exactly once, when progress reaches 1.
func (c *Camera) Update(dt float32) {
	if c.warp != nil {
		c.warp.elapsed += dt
		if c.warp.elapsed >= c.warp.duration {
			w := c.warp
			c.warp = nil
			c.mode = ModeOrbital
			c.focus = w.focus
			c.yaw = w.dstYaw
			c.pitch = w.dstPitch
			c.distance = w.dstDistance
		}
	}

	if c.mode == ModeOrbital && c.warp == nil {
		if pos, _, ok := c.resolver.ResolveTarget(c.focus); ok {
			c.focusPos = pos
		}
	}
}
