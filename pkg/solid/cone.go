package solid

import (
	"github.com/Faultbox/solidview/pkg/math"
	"github.com/Faultbox/solidview/pkg/mesh"
)

// Cone builds a unit cone along the local X axis with its apex at (1,0,0)
// and a radius-1 base centred on the origin. Cones carry no normals.
//
// The result holds 3*n vertices, or 6*n when capped.
func Cone(p Params) *mesh.SimpleMesh {
	arcs := circle(p.Subdivisions)

	count := 3 * len(arcs)
	if p.Capped {
		count *= 2
	}
	pos := make([]math.Vec3, 0, count)

	apex := math.Vec3{X: 1}
	for _, a := range arcs {
		pos = append(pos,
			math.Vec3{X: 0, Y: a.prevY, Z: a.prevZ},
			math.Vec3{X: 0, Y: a.y, Z: a.z},
			apex,
		)
	}

	if p.Capped {
		for _, a := range arcs {
			pos = append(pos,
				math.Vec3{X: 0, Y: a.prevY, Z: a.prevZ},
				math.Vec3{X: 0, Y: a.y, Z: a.z},
				math.Vec3{},
			)
		}
	}

	mesh.TransformPositions(pos, p.PreTransform)

	return &mesh.SimpleMesh{
		Positions: pos,
		Colors:    uniformColors(len(pos), p.Color),
	}
}
