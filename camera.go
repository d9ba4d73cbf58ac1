package birthday

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// moveAnim holds active move-to tweens for the camera position.
type moveAnim struct {
	tweens [3]*gween.Tween
	done   [3]bool
}

// Camera is a perspective camera looking from Position at Target.
type Camera struct {
	Position Vec3
	Target   Vec3
	Up       Vec3
	// FovY is the vertical field of view in degrees.
	FovY      float64
	Near, Far float64
	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect
	// MinDistance and MaxDistance clamp Zoom. Zero MaxDistance disables the
	// upper bound.
	MinDistance, MaxDistance float64

	move *moveAnim

	swayAmplitude float64
	swaySpeed     float64
	swayClock     float64
}

// Pitch limits for Orbit, just short of the poles so Up stays valid.
const (
	minOrbitPitch = -1.45
	maxOrbitPitch = 1.45
)

// NewCamera creates a camera with a 50° field of view looking down -Z.
func NewCamera(viewport Rect) *Camera {
	return &Camera{
		Position: Vec3{0, 0, 5},
		Up:       Vec3{0, 1, 0},
		FovY:     50,
		Near:     0.1,
		Far:      200,
		Viewport: viewport,
	}
}

// MoveTo animates the camera position over duration seconds.
func (c *Camera) MoveTo(pos Vec3, duration float32, easeFn ease.TweenFunc) {
	m := &moveAnim{}
	for i := 0; i < 3; i++ {
		m.tweens[i] = gween.New(float32(c.Position[i]), float32(pos[i]), duration, easeFn)
	}
	c.move = m
}

// IsMoving reports whether a MoveTo animation is in progress.
func (c *Camera) IsMoving() bool {
	return c.move != nil
}

// SetSway makes the eye drift along world X by amplitude*sin(speed*t),
// where t is camera time since the call. A zero amplitude stops it.
func (c *Camera) SetSway(amplitude, speed float64) {
	c.swayAmplitude = amplitude
	c.swaySpeed = speed
	c.swayClock = 0
}

// SwayOffset returns the current sway displacement.
func (c *Camera) SwayOffset() Vec3 {
	if c.swayAmplitude == 0 {
		return Vec3{}
	}
	return Vec3{c.swayAmplitude * math.Sin(c.swayClock*c.swaySpeed), 0, 0}
}

// Eye returns the point the camera renders from: Position plus sway.
func (c *Camera) Eye() Vec3 {
	return c.Position.Add(c.SwayOffset())
}

// Distance returns the distance from Position to Target.
func (c *Camera) Distance() float64 {
	return c.Position.Sub(c.Target).Len()
}

// Orbit rotates Position around Target by yaw radians about world Y and
// pitch radians toward the pole, keeping the distance. It cancels MoveTo.
func (c *Camera) Orbit(yaw, pitch float64) {
	off := c.Position.Sub(c.Target)
	r := off.Len()
	if r == 0 {
		return
	}
	theta := math.Atan2(off[0], off[2]) + yaw
	phi := math.Asin(mgl64.Clamp(off[1]/r, -1, 1)) + pitch
	phi = mgl64.Clamp(phi, minOrbitPitch, maxOrbitPitch)
	c.Position = c.Target.Add(Vec3{
		r * math.Cos(phi) * math.Sin(theta),
		r * math.Sin(phi),
		r * math.Cos(phi) * math.Cos(theta),
	})
	c.move = nil
}

// Zoom moves Position along the view direction by delta world units
// (positive moves closer), clamped to [MinDistance, MaxDistance]. It
// cancels MoveTo.
func (c *Camera) Zoom(delta float64) {
	off := c.Position.Sub(c.Target)
	r := off.Len()
	if r == 0 {
		return
	}
	d := math.Max(r-delta, c.MinDistance)
	if c.MaxDistance > 0 {
		d = math.Min(d, c.MaxDistance)
	}
	c.Position = c.Target.Add(off.Mul(d / r))
	c.move = nil
}

// update advances MoveTo and sway. Called from Scene.Update.
func (c *Camera) update(dt float32) {
	c.swayClock += float64(dt)
	if c.move == nil {
		return
	}
	all := true
	for i := 0; i < 3; i++ {
		if c.move.done[i] {
			continue
		}
		v, finished := c.move.tweens[i].Update(dt)
		c.Position[i] = float64(v)
		c.move.done[i] = finished
		all = all && finished
	}
	if all {
		c.move = nil
	}
}

// View returns the world-to-camera matrix.
func (c *Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Eye(), c.Target, c.Up)
}

// Projection returns the perspective projection for the viewport aspect.
func (c *Camera) Projection() mgl64.Mat4 {
	aspect := 1.0
	if c.Viewport.Height > 0 {
		aspect = c.Viewport.Width / c.Viewport.Height
	}
	return mgl64.Perspective(mgl64.DegToRad(c.FovY), aspect, c.Near, c.Far)
}

// ViewProjection returns Projection * View.
func (c *Camera) ViewProjection() mgl64.Mat4 {
	return c.Projection().Mul4(c.View())
}

// Project maps a world point to screen coordinates. depth is the NDC z in
// [-1, 1]; ok is false for points behind the near plane.
func (c *Camera) Project(p Vec3) (x, y, depth float64, ok bool) {
	return projectWith(c.ViewProjection(), c.Viewport, p)
}

func projectWith(vp mgl64.Mat4, viewport Rect, p Vec3) (x, y, depth float64, ok bool) {
	clip := vp.Mul4x1(p.Vec4(1))
	w := clip[3]
	if w <= 1e-9 {
		return 0, 0, 0, false
	}
	ndcX, ndcY, ndcZ := clip[0]/w, clip[1]/w, clip[2]/w
	x = viewport.X + (ndcX+1)/2*viewport.Width
	y = viewport.Y + (1-ndcY)/2*viewport.Height
	return x, y, ndcZ, ndcZ <= 1
}

// PixelsPerUnit returns the screen size of one world unit at distance dist
// from the camera.
func (c *Camera) PixelsPerUnit(dist float64) float64 {
	if dist <= 0 {
		return 0
	}
	half := math.Tan(mgl64.DegToRad(c.FovY) / 2)
	return c.Viewport.Height / (2 * half * dist)
}
