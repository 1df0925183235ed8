package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/solidview/pkg/math"
	"github.com/Faultbox/solidview/pkg/mesh"
)

// Fixed attribute slots shared with the vertex shader.
const (
	SlotPosition uint32 = 0
	SlotColor    uint32 = 1
	SlotNormal   uint32 = 2
)

const vec3Size = int(unsafe.Sizeof(math.Vec3{}))

// attribute is one vertex buffer bound to a shader slot.
type attribute struct {
	slot uint32
	data []math.Vec3
}

// layout lists the buffers a mesh needs: positions and colors always,
// normals only when the mesh carries them.
func layout(m *mesh.SimpleMesh) []attribute {
	attrs := []attribute{
		{slot: SlotPosition, data: m.Positions},
		{slot: SlotColor, data: m.Colors},
	}
	if m.HasNormals {
		attrs = append(attrs, attribute{slot: SlotNormal, data: m.Normals})
	}
	return attrs
}

// GPUMesh is a mesh uploaded as static geometry: one VBO per attribute,
// each 3 tightly packed float32s, collected in a VAO.
type GPUMesh struct {
	vao        uint32
	vbos       []uint32
	count      int32
	hasNormals bool
}

// Upload validates m and copies its attributes to the GPU.
// Must be called with a current GL context.
func Upload(m *mesh.SimpleMesh) (*GPUMesh, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("upload: %w", err)
	}

	g := &GPUMesh{
		count:      int32(m.VertexCount()),
		hasNormals: m.HasNormals,
	}

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	for _, a := range layout(m) {
		var vbo uint32
		gl.GenBuffers(1, &vbo)
		gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
		if len(a.data) > 0 {
			gl.BufferData(gl.ARRAY_BUFFER, len(a.data)*vec3Size, unsafe.Pointer(&a.data[0]), gl.STATIC_DRAW)
		}

		// 3 floats, not normalized, no stride, offset 0
		gl.VertexAttribPointer(a.slot, 3, gl.FLOAT, false, 0, nil)
		gl.EnableVertexAttribArray(a.slot)

		g.vbos = append(g.vbos, vbo)
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	return g, nil
}

// VertexCount returns the number of uploaded vertices.
func (g *GPUMesh) VertexCount() int32 {
	return g.count
}

// Draw issues the triangle list. The program must already be bound.
func (g *GPUMesh) Draw() {
	if g.count == 0 {
		return
	}
	if !g.hasNormals {
		// Slot 2 reads the generic attribute value when its array is disabled.
		gl.VertexAttrib3f(SlotNormal, 0, 0, 0)
	}
	gl.BindVertexArray(g.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, g.count)
	gl.BindVertexArray(0)
}

// Delete releases the VAO and its buffers.
func (g *GPUMesh) Delete() {
	if len(g.vbos) > 0 {
		gl.DeleteBuffers(int32(len(g.vbos)), &g.vbos[0])
		g.vbos = nil
	}
	if g.vao != 0 {
		gl.DeleteVertexArrays(1, &g.vao)
		g.vao = 0
	}
}
