package viewer

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/solidview/internal/config"
	"github.com/Faultbox/solidview/pkg/math"
	"github.com/Faultbox/solidview/pkg/mesh"
	"github.com/Faultbox/solidview/pkg/solid"
)

// Axis arrow proportions: a thin shaft with a wider head on its tip.
const (
	axisLength     = 5
	axisRadius     = 0.1
	axisHeadLength = 1
	axisHeadRadius = 0.3
	axisSegments   = 16
)

// SceneObject is a named mesh ready for upload.
type SceneObject struct {
	Name string
	Mesh *mesh.SimpleMesh
}

// BuildScene generates the meshes described by the scene configuration.
func BuildScene(scene config.SceneConfig) ([]SceneObject, error) {
	objects := make([]SceneObject, 0, len(scene.Solids)+1)

	for i, s := range scene.Solids {
		m, err := solid.Generate(solid.Kind(s.Kind), s.Params())
		if err != nil {
			return nil, fmt.Errorf("scene solid %d: %w", i, err)
		}
		objects = append(objects, SceneObject{
			Name: fmt.Sprintf("%s#%d", s.Kind, i),
			Mesh: m,
		})
	}

	if scene.Axes {
		objects = append(objects, SceneObject{Name: "axes", Mesh: AxisArrows()})
	}

	return objects, nil
}

// AxisArrows returns red, green and blue arrows along +X, +Y and +Z,
// merged into a single mesh.
func AxisArrows() *mesh.SimpleMesh {
	x := axisArrow(math.Identity(), math.Vec3{X: 1})
	y := axisArrow(math.RotateZ(math32.Pi/2), math.Vec3{Y: 1})
	z := axisArrow(math.RotateY(-math32.Pi/2), math.Vec3{Z: 1})
	return mesh.Concatenate(mesh.Concatenate(x, y), z)
}

// axisArrow builds one arrow along local +X and maps it with orient.
func axisArrow(orient math.Mat4, color math.Vec3) *mesh.SimpleMesh {
	shaft := solid.Params{
		Capped:       true,
		Subdivisions: axisSegments,
		Color:        color,
		PreTransform: orient.Mul(math.Scale(axisLength, axisRadius, axisRadius)),
	}
	head := solid.Params{
		Capped:       true,
		Subdivisions: axisSegments,
		Color:        color,
		PreTransform: orient.
			Mul(math.Translate(axisLength, 0, 0)).
			Mul(math.Scale(axisHeadLength, axisHeadRadius, axisHeadRadius)),
	}
	return solid.Arrow(shaft, head)
}

// sceneRadius returns the distance from the origin to the farthest vertex.
func sceneRadius(objects []SceneObject) float32 {
	var r float32
	for _, o := range objects {
		if o.Mesh == nil {
			continue
		}
		for _, p := range o.Mesh.Positions {
			r = max(r, p.Length())
		}
	}
	return r
}
