package camera

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestInactiveCameraIgnoresMouse(t *testing.T) {
	c := NewOrbitCamera()
	c.HandleMouseMove(100, 50)

	if c.Phi != 0 || c.Theta != 0 {
		t.Errorf("inactive camera rotated: phi=%f theta=%f", c.Phi, c.Theta)
	}
	if c.LastX != 100 || c.LastY != 50 {
		t.Errorf("cursor not tracked: got (%f, %f)", c.LastX, c.LastY)
	}
}

func TestActiveCameraRotates(t *testing.T) {
	c := NewOrbitCamera()
	c.HandleMouseMove(10, 10)
	c.Toggle()
	c.HandleMouseMove(30, 20)

	assert.InDelta(t, 0.2, c.Phi, 1e-6)
	assert.InDelta(t, 0.1, c.Theta, 1e-6)
}

func TestPitchClamped(t *testing.T) {
	c := NewOrbitCamera()
	c.Toggle()
	c.HandleMouseDelta(0, 10000)
	assert.Equal(t, maxPitch, c.Theta)

	c.HandleMouseDelta(0, -20000)
	assert.Equal(t, -maxPitch, c.Theta)
}

func TestZoom(t *testing.T) {
	c := NewOrbitCamera()
	c.Toggle()

	c.SetZoom(true, false)
	c.Update(0.5)
	assert.InDelta(t, 7.5, c.Radius, 1e-6)

	c.SetZoom(false, true)
	c.Update(1)
	assert.InDelta(t, 12.5, c.Radius, 1e-6)
}

func TestZoomClampsToMinRadius(t *testing.T) {
	c := NewOrbitCamera()
	c.Toggle()
	c.SetZoom(true, false)
	c.Update(100)

	if c.Radius != c.MinRadius {
		t.Errorf("expected radius clamped to %f, got %f", c.MinRadius, c.Radius)
	}
}

func TestZoomIgnoredWhileInactive(t *testing.T) {
	c := NewOrbitCamera()
	c.SetZoom(true, false)
	c.Update(1)

	if c.Radius != 10 {
		t.Errorf("inactive camera zoomed to %f", c.Radius)
	}
}

func TestPositionAtDefault(t *testing.T) {
	c := NewOrbitCamera()
	p := c.Position()

	assert.InDelta(t, 0, p.X, 1e-5)
	assert.InDelta(t, 0, p.Y, 1e-5)
	assert.InDelta(t, 10, p.Z, 1e-5)
}

func TestPositionKeepsRadius(t *testing.T) {
	c := NewOrbitCamera()
	c.Phi = 0.7
	c.Theta = -0.4
	assert.InDelta(t, 10, c.Position().Length(), 1e-4)
}

func TestFitRadius(t *testing.T) {
	c := NewOrbitCamera()
	c.FitRadius(5, math32.Pi/3)
	assert.InDelta(t, 10, c.Radius, 1e-5)

	c.FitRadius(0, math32.Pi/3)
	assert.InDelta(t, 10, c.Radius, 1e-5)
}
