package nebula

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// polarEpsilon keeps the orbit away from the poles, where the view basis
// would degenerate.
const polarEpsilon = 1e-3

// worldUp is the fixed up direction the camera orients against.
var worldUp = Vec3{0, 1, 0}

// Camera is a perspective camera orbiting the origin. It supports rotation
// and clamped zoom; panning is not supported, so the origin always stays at
// the center of the view.
type Camera struct {
	// FOV is the vertical field of view in degrees.
	FOV float64
	// Distance from the origin. Always within [MinDistance, MaxDistance].
	Distance float64
	// Azimuth is the horizontal orbit angle in radians, 0 on the +Z axis.
	Azimuth float64
	// Polar is the angle from +Y in radians, pi/2 on the horizon.
	Polar float64
	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect

	MinDistance float64
	MaxDistance float64
	Near, Far   float64

	// Damping is the fraction of pending orbit motion applied per update.
	// Zero applies orbit input immediately.
	Damping float64
	// RotateSpeed scales drag-to-angle conversion.
	RotateSpeed float64

	pendingAzimuth float64
	pendingPolar   float64

	zoomTween  *gween.Tween
	zoomTarget float64

	position Vec3
	forward  Vec3
	right    Vec3
	up       Vec3
	dirty    bool
}

// NewCamera creates a camera at CameraDistance on the +Z axis looking at the
// origin, with the default clamps and damping.
func NewCamera(viewport Rect) *Camera {
	return &Camera{
		FOV:         CameraFOV,
		Distance:    CameraDistance,
		Polar:       math.Pi / 2,
		Viewport:    viewport,
		MinDistance: MinDistance,
		MaxDistance: MaxDistance,
		Near:        CameraNear,
		Far:         CameraFar,
		Damping:     OrbitDamping,
		RotateSpeed: 1,
		zoomTarget:  CameraDistance,
		dirty:       true,
	}
}

// SetViewport changes the render rectangle, e.g. after a window resize.
func (c *Camera) SetViewport(r Rect) {
	if c.Viewport != r {
		c.Viewport = r
		c.dirty = true
	}
}

// Orbit queues a rotation from a pointer movement of (dx, dy) pixels.
// A drag across the full viewport height turns the view by a full circle.
func (c *Camera) Orbit(dx, dy float64) {
	h := c.Viewport.Height
	if h <= 0 {
		return
	}
	c.pendingAzimuth -= 2 * math.Pi * dx / h * c.RotateSpeed
	c.pendingPolar -= 2 * math.Pi * dy / h * c.RotateSpeed
}

// Wheel zooms by the given number of notches. Positive values zoom in.
func (c *Camera) Wheel(notches float64) {
	if notches == 0 {
		return
	}
	c.ZoomBy(math.Pow(ZoomStep, notches))
}

// ZoomBy multiplies the target distance by factor and animates toward it.
// The target is clamped to [MinDistance, MaxDistance].
func (c *Camera) ZoomBy(factor float64) {
	if factor <= 0 || !isFinite(factor) {
		return
	}
	c.ZoomTo(c.zoomTarget*factor, ZoomDuration, ease.OutCubic)
}

// ZoomTo animates the distance to d over duration seconds. d is clamped.
func (c *Camera) ZoomTo(d float64, duration float32, fn ease.TweenFunc) {
	c.zoomTarget = c.clampDistance(d)
	if duration <= 0 {
		c.zoomTween = nil
		c.setDistance(c.zoomTarget)
		return
	}
	c.zoomTween = gween.New(float32(c.Distance), float32(c.zoomTarget), duration, fn)
}

// SetDistance jumps to distance d (clamped), cancelling any zoom animation.
func (c *Camera) SetDistance(d float64) {
	c.ZoomTo(d, 0, nil)
}

// ZoomTarget returns the distance the camera is settling toward.
func (c *Camera) ZoomTarget() float64 {
	return c.zoomTarget
}

// Settled reports whether no orbit or zoom motion is pending.
func (c *Camera) Settled() bool {
	return c.zoomTween == nil &&
		math.Abs(c.pendingAzimuth) < 1e-6 && math.Abs(c.pendingPolar) < 1e-6
}

func (c *Camera) clampDistance(d float64) float64 {
	if !isFinite(d) {
		return c.Distance
	}
	return clamp(d, c.MinDistance, c.MaxDistance)
}

func (c *Camera) setDistance(d float64) {
	d = c.clampDistance(d)
	if d != c.Distance {
		c.Distance = d
		c.dirty = true
	}
}

// update applies damped orbit motion and advances the zoom tween.
func (c *Camera) update(dt float64) {
	if c.pendingAzimuth != 0 || c.pendingPolar != 0 {
		k := c.Damping
		if k <= 0 || k > 1 {
			k = 1
		}
		c.Azimuth += c.pendingAzimuth * k
		c.Polar += c.pendingPolar * k
		c.pendingAzimuth *= 1 - k
		c.pendingPolar *= 1 - k
		if math.Abs(c.pendingAzimuth) < 1e-9 {
			c.pendingAzimuth = 0
		}
		if math.Abs(c.pendingPolar) < 1e-9 {
			c.pendingPolar = 0
		}
		c.Polar = clamp(c.Polar, polarEpsilon, math.Pi-polarEpsilon)
		c.dirty = true
	}

	if c.zoomTween != nil {
		val, done := c.zoomTween.Update(float32(dt))
		if done {
			c.zoomTween = nil
			c.setDistance(c.zoomTarget)
		} else {
			c.setDistance(float64(val))
		}
	}
}

// computeBasis refreshes the cached position and view axes if dirty.
func (c *Camera) computeBasis() {
	if !c.dirty {
		return
	}
	c.dirty = false

	sinP, cosP := math.Sincos(c.Polar)
	sinA, cosA := math.Sincos(c.Azimuth)
	c.position = Vec3{
		X: c.Distance * sinP * sinA,
		Y: c.Distance * cosP,
		Z: c.Distance * sinP * cosA,
	}
	c.forward = c.position.Mul(-1).Normalize()
	c.right = c.forward.Cross(worldUp).Normalize()
	c.up = c.right.Cross(c.forward)
}

// Position returns the camera's world position.
func (c *Camera) Position() Vec3 {
	c.computeBasis()
	return c.position
}

// focalLength returns the distance in pixels from the eye to the image plane.
func (c *Camera) focalLength() float64 {
	half := c.FOV * math.Pi / 360
	return (c.Viewport.Height / 2) / math.Tan(half)
}

// Depth returns the view-space depth of p (distance along the view axis).
func (c *Camera) Depth(p Vec3) float64 {
	c.computeBasis()
	return p.Sub(c.position).Dot(c.forward)
}

// Project converts a world point to screen coordinates. ok is false when the
// point lies outside the near/far range.
func (c *Camera) Project(p Vec3) (sx, sy, depth float64, ok bool) {
	c.computeBasis()
	rel := p.Sub(c.position)
	depth = rel.Dot(c.forward)
	if depth <= c.Near || depth > c.Far {
		return 0, 0, depth, false
	}
	f := c.focalLength() / depth
	cx := c.Viewport.X + c.Viewport.Width/2
	cy := c.Viewport.Y + c.Viewport.Height/2
	sx = cx + rel.Dot(c.right)*f
	sy = cy - rel.Dot(c.up)*f
	return sx, sy, depth, true
}

// PixelsPerUnit returns how many screen pixels one world unit covers at the
// given depth. Returns 0 for non-positive depths.
func (c *Camera) PixelsPerUnit(depth float64) float64 {
	if depth <= 0 {
		return 0
	}
	return c.focalLength() / depth
}
