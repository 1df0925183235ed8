package viewer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/solidview/internal/config"
	"github.com/Faultbox/solidview/pkg/math"
	"github.com/Faultbox/solidview/pkg/solid"
)

func TestBuildDefaultScene(t *testing.T) {
	objects, err := BuildScene(config.Default().Scene)
	require.NoError(t, err)
	require.Len(t, objects, 2)

	cyl := objects[0].Mesh
	assert.Equal(t, "cylinder#0", objects[0].Name)
	assert.Equal(t, 12*129, cyl.VertexCount())
	assert.True(t, cyl.HasNormals)
	assert.NoError(t, cyl.Validate())

	// scale (8,2,2), rotated onto +Y, moved to (5,0,1)
	// (129 segments never hit the circle's extremes exactly)
	b := cyl.Bounds()
	assert.InDelta(t, 3, b.Min.X, 1e-2)
	assert.InDelta(t, 7, b.Max.X, 1e-2)
	assert.InDelta(t, 0, b.Min.Y, 1e-4)
	assert.InDelta(t, 8, b.Max.Y, 1e-4)
	assert.InDelta(t, -1, b.Min.Z, 1e-2)
	assert.InDelta(t, 3, b.Max.Z, 1e-2)

	assert.Equal(t, "axes", objects[1].Name)
}

func TestBuildSceneWithoutAxes(t *testing.T) {
	scene := config.SceneConfig{
		Solids: []config.SolidConfig{
			{Kind: "cone", Subdivisions: 8, Color: [3]float32{1, 0, 0}},
			{Kind: "cylinder", Capped: true, Subdivisions: 8},
		},
	}

	objects, err := BuildScene(scene)
	require.NoError(t, err)
	require.Len(t, objects, 2)

	assert.Equal(t, 3*8, objects[0].Mesh.VertexCount())
	assert.False(t, objects[0].Mesh.HasNormals)
	assert.Equal(t, 12*8, objects[1].Mesh.VertexCount())
}

func TestBuildSceneUnknownKind(t *testing.T) {
	scene := config.SceneConfig{
		Solids: []config.SolidConfig{{Kind: "torus", Subdivisions: 8}},
	}

	_, err := BuildScene(scene)
	require.Error(t, err)
	assert.True(t, errors.Is(err, solid.ErrUnknownKind))
	assert.Contains(t, err.Error(), "scene solid 0")
}

func TestBuildEmptyScene(t *testing.T) {
	objects, err := BuildScene(config.SceneConfig{})
	require.NoError(t, err)
	assert.Empty(t, objects)
}

func TestAxisArrows(t *testing.T) {
	m := AxisArrows()

	perArrow := 12*axisSegments + 6*axisSegments
	assert.Equal(t, 3*perArrow, m.VertexCount())
	assert.False(t, m.HasNormals, "cone heads carry no normals")
	require.NoError(t, m.Validate())

	tip := float32(axisLength + axisHeadLength)
	b := m.Bounds()
	assert.InDelta(t, tip, b.Max.X, 1e-4)
	assert.InDelta(t, tip, b.Max.Y, 1e-4)
	assert.InDelta(t, tip, b.Max.Z, 1e-4)

	red := math.Vec3{X: 1}
	green := math.Vec3{Y: 1}
	blue := math.Vec3{Z: 1}
	assert.Equal(t, red, m.Colors[0])
	assert.Equal(t, green, m.Colors[perArrow])
	assert.Equal(t, blue, m.Colors[2*perArrow])
	assert.Equal(t, blue, m.Colors[len(m.Colors)-1])
}

func TestSceneRadius(t *testing.T) {
	objects := []SceneObject{
		{Name: "axes", Mesh: AxisArrows()},
		{Name: "nil"},
	}

	assert.InDelta(t, axisLength+axisHeadLength, sceneRadius(objects), 1e-3)
	assert.Zero(t, sceneRadius(nil))
}

func TestNewCameraFromConfig(t *testing.T) {
	cfg := config.CameraConfig{
		Radius:            20,
		MinRadius:         1,
		MovementPerSecond: 2,
		MouseSensitivity:  0.5,
	}

	c := newCamera(cfg)

	assert.Equal(t, float32(20), c.Radius)
	assert.Equal(t, float32(1), c.MinRadius)
	assert.Equal(t, float32(2), c.MovementPerSecond)
	assert.Equal(t, float32(0.5), c.MouseSensitivity)
	assert.False(t, c.Active)
}

func TestShaderFS(t *testing.T) {
	assert.Nil(t, shaderFS(""))
	assert.NotNil(t, shaderFS(t.TempDir()))
}

func TestLightFromConfig(t *testing.T) {
	cfg := config.Default().Render

	l := light(cfg)

	assert.InDelta(t, 1.0, l.Direction.Length(), 1e-5)
	assert.Equal(t, config.Vec3(cfg.Diffuse), l.Diffuse)
	assert.Equal(t, config.Vec3(cfg.Ambient), l.Ambient)
}
