package libscn

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"learn-gl/libgl"
)

const FloatSize = int(unsafe.Sizeof(float32(0)))

// Attribute is one float vector attribute of an interleaved vertex.
type Attribute struct {
	// shader location
	Index int
	// component count, 1 to 4
	Size int
}

// Mesh is interleaved float32 vertex data, optionally indexed.
type Mesh struct {
	Name     string
	Vertices []float32
	Indices  []uint32
	Layout   []Attribute
}

// Components is the number of floats per vertex.
func (m *Mesh) Components() int {
	n := 0
	for _, attr := range m.Layout {
		n += attr.Size
	}
	return n
}

// Stride is the vertex size in bytes.
func (m *Mesh) Stride() int {
	return m.Components() * FloatSize
}

// Offsets returns the byte offset of each attribute within a vertex.
func (m *Mesh) Offsets() []int {
	offsets := make([]int, len(m.Layout))
	offset := 0
	for i, attr := range m.Layout {
		offsets[i] = offset
		offset += attr.Size * FloatSize
	}
	return offsets
}

func (m *Mesh) VertexCount() int {
	components := m.Components()
	if components == 0 {
		return 0
	}
	return len(m.Vertices) / components
}

// DrawCount is the number of elements a draw call has to submit.
func (m *Mesh) DrawCount() int {
	if len(m.Indices) > 0 {
		return len(m.Indices)
	}
	return m.VertexCount()
}

// Upload creates buffers for the mesh and a vertex array describing them.
func (m *Mesh) Upload() *libgl.VertexArray {
	vbo := libgl.NewBuffer(gl.ARRAY_BUFFER)
	vbo.Allocate(m.Vertices, gl.STATIC_DRAW)
	vbo.SetDebugLabel(m.Name + " vertices")

	var ebo *libgl.Buffer
	if len(m.Indices) > 0 {
		ebo = libgl.NewBuffer(gl.ELEMENT_ARRAY_BUFFER)
		ebo.Allocate(m.Indices, gl.STATIC_DRAW)
		ebo.SetDebugLabel(m.Name + " indices")
	}
	return m.VertexArray(vbo, ebo)
}

// VertexArray describes the mesh layout over existing buffers, so several
// vertex arrays can share one vertex buffer. ebo may be nil.
func (m *Mesh) VertexArray(vbo, ebo *libgl.Buffer) *libgl.VertexArray {
	vao := libgl.NewVertexArray()
	stride := m.Stride()
	for i, offset := range m.Offsets() {
		attr := m.Layout[i]
		vao.Layout(vbo, attr.Index, attr.Size, gl.FLOAT, false, stride, offset)
	}
	if ebo != nil {
		vao.BindElementBuffer(ebo)
	}
	vao.Count = int32(m.DrawCount())
	vao.SetDebugLabel(m.Name)
	return vao
}
