// Package camera provides the orbit camera used by the viewer.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/solidview/pkg/math"
)

// maxPitch keeps the camera from flipping over the poles.
const maxPitch = math32.Pi / 2

// OrbitCamera orbits the origin on a sphere. It holds no references to the
// window or input system; the viewer feeds it events and calls Update once
// per frame.
type OrbitCamera struct {
	// Active is true while the camera follows the mouse.
	Active bool

	// Zoom intents, held while the key is down
	ZoomIn  bool
	ZoomOut bool

	// Spherical coordinates
	Phi    float32 // Yaw (radians)
	Theta  float32 // Pitch (radians), clamped to ±π/2
	Radius float32 // Distance from the origin

	// Last seen cursor position
	LastX, LastY float32

	// Constraints
	MinRadius float32

	// Sensitivity
	MovementPerSecond float32 // radius change per second of held zoom
	MouseSensitivity  float32 // radians per pixel
}

// NewOrbitCamera creates a new orbit camera with default settings.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Radius:            10,
		MinRadius:         0.1,
		MovementPerSecond: 5,
		MouseSensitivity:  0.01,
	}
}

// Toggle switches mouse control on or off and returns the new state.
func (c *OrbitCamera) Toggle() bool {
	c.Active = !c.Active
	return c.Active
}

// SetZoom records the zoom intents. Both are ignored while inactive.
func (c *OrbitCamera) SetZoom(in, out bool) {
	if !c.Active {
		in, out = false, false
	}
	c.ZoomIn = in
	c.ZoomOut = out
}

// HandleMouseMove rotates the camera by the cursor delta while active.
// The cursor position is tracked even while inactive so that activation
// does not cause a jump.
func (c *OrbitCamera) HandleMouseMove(x, y float32) {
	if c.Active {
		c.Phi += (x - c.LastX) * c.MouseSensitivity
		c.Theta += (y - c.LastY) * c.MouseSensitivity
		c.Theta = clamp(c.Theta, -maxPitch, maxPitch)
	}
	c.LastX = x
	c.LastY = y
}

// HandleMouseDelta rotates the camera by a relative motion while active.
// Used when the window reports relative mouse motion.
func (c *OrbitCamera) HandleMouseDelta(dx, dy float32) {
	c.HandleMouseMove(c.LastX+dx, c.LastY+dy)
}

// Update applies held zoom for dt seconds.
func (c *OrbitCamera) Update(dt float32) {
	switch {
	case c.ZoomIn:
		c.Radius -= c.MovementPerSecond * dt
	case c.ZoomOut:
		c.Radius += c.MovementPerSecond * dt
	}
	if c.Radius < c.MinRadius {
		c.Radius = c.MinRadius
	}
}

// ViewMatrix returns the world-to-camera matrix.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.Translate(0, 0, -c.Radius).
		Mul(math.RotateX(c.Theta)).
		Mul(math.RotateY(c.Phi))
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	return c.ViewMatrix().Inverse().TransformPoint(math.Vec3{})
}

// FitRadius moves the camera far enough out to see a sphere of the given
// radius around the origin with the vertical field of view fovY (radians).
func (c *OrbitCamera) FitRadius(sphere, fovY float32) {
	if sphere <= 0 {
		return
	}
	c.Radius = max(sphere/math32.Sin(fovY/2), c.MinRadius)
}

func clamp(v, lo, hi float32) float32 {
	return min(max(v, lo), hi)
}
