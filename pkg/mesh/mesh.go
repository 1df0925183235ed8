// Package mesh holds unindexed triangle meshes as parallel per-vertex
// attribute sequences, ready for upload to a graphics pipeline.
package mesh

import (
	"errors"
	"fmt"

	"github.com/Faultbox/solidview/pkg/math"
)

var (
	// ErrColorCount is returned when colors and positions differ in length.
	ErrColorCount = errors.New("mesh: color count does not match position count")
	// ErrNormalCount is returned when normals are present but differ in length from positions.
	ErrNormalCount = errors.New("mesh: normal count does not match position count")
	// ErrPartialTriangle is returned when the vertex count is not a multiple of three.
	ErrPartialTriangle = errors.New("mesh: vertex count is not a multiple of 3")
)

// SimpleMesh is a flat triangle list. Index i refers to the same vertex in
// every attribute and each consecutive triple of vertices is one triangle.
//
// Normals is either empty or as long as Positions. HasNormals records
// whether the normal sequence is meant to be consumed.
type SimpleMesh struct {
	Positions  []math.Vec3
	Colors     []math.Vec3
	Normals    []math.Vec3
	HasNormals bool
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Center returns the midpoint of the box.
func (b Bounds) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the extent of the box along each axis.
func (b Bounds) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// Concatenate returns a new mesh holding a's vertices followed by b's, for
// each attribute independently. Neither input is modified and no count
// checks are made; callers keep normal presence consistent between inputs.
func Concatenate(a, b *SimpleMesh) *SimpleMesh {
	return &SimpleMesh{
		Positions:  concat(a.Positions, b.Positions),
		Colors:     concat(a.Colors, b.Colors),
		Normals:    concat(a.Normals, b.Normals),
		HasNormals: a.HasNormals && b.HasNormals,
	}
}

func concat(a, b []math.Vec3) []math.Vec3 {
	if len(a)+len(b) == 0 {
		return nil
	}
	out := make([]math.Vec3, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

// VertexCount returns the number of vertices.
func (m *SimpleMesh) VertexCount() int {
	return len(m.Positions)
}

// TriangleCount returns the number of complete triangles.
func (m *SimpleMesh) TriangleCount() int {
	return len(m.Positions) / 3
}

// IsEmpty returns true if the mesh has no geometry.
func (m *SimpleMesh) IsEmpty() bool {
	return len(m.Positions) == 0
}

// Validate checks the attribute count invariants.
func (m *SimpleMesh) Validate() error {
	if len(m.Colors) != len(m.Positions) {
		return fmt.Errorf("%w: %d colors, %d positions", ErrColorCount, len(m.Colors), len(m.Positions))
	}
	if m.HasNormals && len(m.Normals) != len(m.Positions) {
		return fmt.Errorf("%w: %d normals, %d positions", ErrNormalCount, len(m.Normals), len(m.Positions))
	}
	if len(m.Positions)%3 != 0 {
		return fmt.Errorf("%w: %d vertices", ErrPartialTriangle, len(m.Positions))
	}
	return nil
}

// Bounds returns the bounding box of all positions.
// An empty mesh has a zero box.
func (m *SimpleMesh) Bounds() Bounds {
	if len(m.Positions) == 0 {
		return Bounds{}
	}

	b := Bounds{Min: m.Positions[0], Max: m.Positions[0]}
	for _, p := range m.Positions[1:] {
		b.Min.X = min(b.Min.X, p.X)
		b.Min.Y = min(b.Min.Y, p.Y)
		b.Min.Z = min(b.Min.Z, p.Z)
		b.Max.X = max(b.Max.X, p.X)
		b.Max.Y = max(b.Max.Y, p.Y)
		b.Max.Z = max(b.Max.Z, p.Z)
	}
	return b
}
