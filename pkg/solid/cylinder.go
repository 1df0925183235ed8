package solid

import (
	"github.com/Faultbox/solidview/pkg/math"
	"github.com/Faultbox/solidview/pkg/mesh"
)

// Cylinder builds a unit cylinder along the local X axis: radius 1,
// spanning x in [0, 1]. Each side quad is two triangles with radial
// normals; caps (when requested) face -X at x=0 and +X at x=1.
//
// The result holds 6*n vertices, or 12*n when capped.
func Cylinder(p Params) *mesh.SimpleMesh {
	arcs := circle(p.Subdivisions)

	count := 6 * len(arcs)
	if p.Capped {
		count *= 2
	}
	pos := make([]math.Vec3, 0, count)
	nrm := make([]math.Vec3, 0, count)

	emit := func(position, normal math.Vec3) {
		pos = append(pos, position)
		nrm = append(nrm, normal)
	}

	for _, a := range arcs {
		prev := math.Vec3{Y: a.prevY, Z: a.prevZ}
		cur := math.Vec3{Y: a.y, Z: a.z}

		emit(math.Vec3{X: 0, Y: a.prevY, Z: a.prevZ}, prev)
		emit(math.Vec3{X: 0, Y: a.y, Z: a.z}, cur)
		emit(math.Vec3{X: 1, Y: a.prevY, Z: a.prevZ}, prev)

		emit(math.Vec3{X: 0, Y: a.y, Z: a.z}, cur)
		emit(math.Vec3{X: 1, Y: a.y, Z: a.z}, cur)
		emit(math.Vec3{X: 1, Y: a.prevY, Z: a.prevZ}, prev)
	}

	if p.Capped {
		bottom := math.Vec3{X: -1}
		for _, a := range arcs {
			emit(math.Vec3{}, bottom)
			emit(math.Vec3{X: 0, Y: a.y, Z: a.z}, bottom)
			emit(math.Vec3{X: 0, Y: a.prevY, Z: a.prevZ}, bottom)
		}

		top := math.Vec3{X: 1}
		for _, a := range arcs {
			emit(math.Vec3{X: 1, Y: a.prevY, Z: a.prevZ}, top)
			emit(math.Vec3{X: 1, Y: a.y, Z: a.z}, top)
			emit(math.Vec3{X: 1}, top)
		}
	}

	m := &mesh.SimpleMesh{
		Positions:  pos,
		Normals:    nrm,
		HasNormals: true,
	}
	m.Transform(p.PreTransform)
	m.Colors = uniformColors(len(pos), p.Color)
	return m
}
