// Package solid generates triangle meshes for solids of revolution around
// the local X axis.
package solid

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/solidview/pkg/math"
	"github.com/Faultbox/solidview/pkg/mesh"
)

// ErrUnknownKind is returned by Generate for an unrecognized solid kind.
var ErrUnknownKind = errors.New("solid: unknown kind")

// Kind names a generator.
type Kind string

const (
	KindCylinder Kind = "cylinder"
	KindCone     Kind = "cone"
)

// Params controls a generator call.
type Params struct {
	// Capped closes the open ends with flat disks.
	Capped bool
	// Subdivisions is the number of angular segments around the axis.
	// Values below 3 are not rejected and give degenerate geometry.
	Subdivisions int
	// Color is assigned to every generated vertex.
	Color math.Vec3
	// PreTransform maps the local-space solid into the caller's space.
	PreTransform math.Mat4
}

// DefaultParams returns a capped, white, untransformed 16-segment solid.
func DefaultParams() Params {
	return Params{
		Capped:       true,
		Subdivisions: 16,
		Color:        math.Vec3{X: 1, Y: 1, Z: 1},
		PreTransform: math.Identity(),
	}
}

// Generate builds the solid named by kind.
func Generate(kind Kind, p Params) (*mesh.SimpleMesh, error) {
	switch kind {
	case KindCylinder:
		return Cylinder(p), nil
	case KindCone:
		return Cone(p), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// Arrow joins a cylinder shaft and a cone head into one mesh.
// The cone has no normals, so neither does the result.
func Arrow(shaft, head Params) *mesh.SimpleMesh {
	return mesh.Concatenate(Cylinder(shaft), Cone(head))
}

// arc is one angular step of the unit circle in the YZ plane.
type arc struct {
	prevY, prevZ float32
	y, z         float32
}

// circle walks the unit circle in n steps, starting from angle 0 (y=1, z=0)
// and ending exactly at angle 2π.
func circle(n int) []arc {
	if n <= 0 {
		return nil
	}

	arcs := make([]arc, n)
	prevY, prevZ := float32(1), float32(0)
	for i := range arcs {
		angle := float32(i+1) / float32(n) * 2 * math32.Pi
		z, y := math32.Sincos(angle)
		arcs[i] = arc{prevY: prevY, prevZ: prevZ, y: y, z: z}
		prevY, prevZ = y, z
	}
	return arcs
}

func uniformColors(n int, c math.Vec3) []math.Vec3 {
	colors := make([]math.Vec3, n)
	for i := range colors {
		colors[i] = c
	}
	return colors
}
