package mesh

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/solidview/pkg/math"
)

func triangle(offset float32, color math.Vec3, withNormals bool) *SimpleMesh {
	m := &SimpleMesh{
		Positions: []math.Vec3{{X: offset}, {X: offset + 1}, {X: offset, Y: 1}},
		Colors:    []math.Vec3{color, color, color},
	}
	if withNormals {
		n := math.Vec3{Z: 1}
		m.Normals = []math.Vec3{n, n, n}
		m.HasNormals = true
	}
	return m
}

func TestConcatenateOrder(t *testing.T) {
	red := math.Vec3{X: 1}
	blue := math.Vec3{Z: 1}
	a := triangle(0, red, true)
	b := triangle(10, blue, true)

	got := Concatenate(a, b)

	require.Equal(t, a.VertexCount()+b.VertexCount(), got.VertexCount())
	assert.Equal(t, append(append([]math.Vec3{}, a.Positions...), b.Positions...), got.Positions)
	assert.Equal(t, append(append([]math.Vec3{}, a.Colors...), b.Colors...), got.Colors)
	assert.Equal(t, append(append([]math.Vec3{}, a.Normals...), b.Normals...), got.Normals)
	assert.True(t, got.HasNormals)
}

func TestConcatenateDoesNotAliasInputs(t *testing.T) {
	a := triangle(0, math.Vec3{}, false)
	b := triangle(5, math.Vec3{}, false)
	got := Concatenate(a, b)

	got.Positions[0] = math.Vec3{X: 99}
	if a.Positions[0].X != 0 {
		t.Errorf("Concatenate result shares storage with its first input")
	}
}

func TestConcatenateMixedNormals(t *testing.T) {
	a := triangle(0, math.Vec3{}, true)
	b := triangle(5, math.Vec3{}, false)

	got := Concatenate(a, b)

	// Sequences are joined as-is; the flag marks the normals unusable.
	assert.Len(t, got.Normals, 3)
	assert.Len(t, got.Positions, 6)
	assert.False(t, got.HasNormals)
	assert.NoError(t, got.Validate())
}

func TestConcatenateEmpty(t *testing.T) {
	got := Concatenate(&SimpleMesh{}, &SimpleMesh{})
	assert.True(t, got.IsEmpty())
	assert.Empty(t, got.Normals)
}

func TestValidate(t *testing.T) {
	m := triangle(0, math.Vec3{}, true)
	require.NoError(t, m.Validate())

	m.Colors = m.Colors[:2]
	if err := m.Validate(); !errors.Is(err, ErrColorCount) {
		t.Errorf("expected ErrColorCount, got %v", err)
	}

	m = triangle(0, math.Vec3{}, true)
	m.Normals = m.Normals[:1]
	if err := m.Validate(); !errors.Is(err, ErrNormalCount) {
		t.Errorf("expected ErrNormalCount, got %v", err)
	}

	m = triangle(0, math.Vec3{}, false)
	m.Positions = append(m.Positions, math.Vec3{})
	m.Colors = append(m.Colors, math.Vec3{})
	if err := m.Validate(); !errors.Is(err, ErrPartialTriangle) {
		t.Errorf("expected ErrPartialTriangle, got %v", err)
	}
}

func TestBounds(t *testing.T) {
	m := Concatenate(triangle(-2, math.Vec3{}, false), triangle(3, math.Vec3{}, false))
	b := m.Bounds()

	assert.Equal(t, math.Vec3{X: -2}, b.Min)
	assert.Equal(t, math.Vec3{X: 4, Y: 1}, b.Max)
	assert.Equal(t, math.Vec3{X: 1, Y: 0.5}, b.Center())
	assert.Equal(t, math.Vec3{X: 6, Y: 1}, b.Size())
}

func TestBoundsEmpty(t *testing.T) {
	if b := (&SimpleMesh{}).Bounds(); b != (Bounds{}) {
		t.Errorf("empty mesh bounds = %v, want zero", b)
	}
}

func TestTriangleCount(t *testing.T) {
	m := Concatenate(triangle(0, math.Vec3{}, false), triangle(1, math.Vec3{}, false))
	if m.TriangleCount() != 2 {
		t.Errorf("TriangleCount() = %d, want 2", m.TriangleCount())
	}
}
