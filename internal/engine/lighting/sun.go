// Package lighting provides lighting utilities for 3D rendering.
package lighting

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/solidview/pkg/math"
)

// Directional is a single directional light plus the scene ambient term.
type Directional struct {
	Direction math.Vec3 // towards the light, normalized
	Diffuse   math.Vec3
	Ambient   math.Vec3
}

// SunDirection converts azimuth/elevation angles in degrees to a light direction vector.
// Azimuth is rotation around the Y axis measured from +Z, elevation is the angle above the XZ plane.
// Returns a normalized direction vector pointing towards the light.
func SunDirection(azimuthDeg, elevationDeg float32) math.Vec3 {
	az := azimuthDeg * math32.Pi / 180
	el := elevationDeg * math32.Pi / 180

	sinAz, cosAz := math32.Sincos(az)
	sinEl, cosEl := math32.Sincos(el)

	return math.Vec3{
		X: cosEl * sinAz,
		Y: sinEl,
		Z: cosEl * cosAz,
	}.Normalize()
}

// NewDirectional builds a light from angles and colors.
func NewDirectional(azimuthDeg, elevationDeg float32, diffuse, ambient math.Vec3) Directional {
	return Directional{
		Direction: SunDirection(azimuthDeg, elevationDeg),
		Diffuse:   diffuse,
		Ambient:   ambient,
	}
}
