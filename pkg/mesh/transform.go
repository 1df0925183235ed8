package mesh

import "github.com/Faultbox/solidview/pkg/math"

// TransformPositions maps every position through m in place. Each point is
// extended to (x, y, z, 1), multiplied by m and divided by the resulting w,
// so projective matrices work as well as affine ones.
func TransformPositions(positions []math.Vec3, m math.Mat4) {
	for i, p := range positions {
		positions[i] = m.TransformPoint(p)
	}
}

// TransformNormals maps every normal through the inverse-transpose of m in
// place and renormalizes it. Normals are directions (w = 0), so translation
// has no effect. m must be invertible.
func TransformNormals(normals []math.Vec3, m math.Mat4) {
	if len(normals) == 0 {
		return
	}

	nm := m.NormalMatrix()
	for i, n := range normals {
		normals[i] = nm.TransformDirection(n).Normalize()
	}
}

// Transform applies m to the mesh in place: positions always, normals only
// when the mesh carries them.
func (m *SimpleMesh) Transform(t math.Mat4) {
	TransformPositions(m.Positions, t)
	if m.HasNormals {
		TransformNormals(m.Normals, t)
	}
}
