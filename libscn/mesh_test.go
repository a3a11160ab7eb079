package libscn_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"learn-gl/libscn"
)

func TestMeshLayoutMath(t *testing.T) {
	tests := []struct {
		mesh       *libscn.Mesh
		stride     int
		offsets    []int
		vertices   int
		drawCount  int
		indexCount int
	}{
		{libscn.Triangle(), 12, []int{0}, 3, 3, 0},
		{libscn.Rectangle(), 12, []int{0}, 4, 6, 6},
		{libscn.ColoredRectangle(), 24, []int{0, 12}, 4, 6, 6},
		{libscn.TexturedRectangle(), 32, []int{0, 12, 24}, 4, 6, 6},
		{libscn.TexturedCube(), 20, []int{0, 12}, 36, 36, 0},
		{libscn.Cube(), 12, []int{0}, 36, 36, 0},
	}

	for _, test := range tests {
		t.Run(test.mesh.Name, func(t *testing.T) {
			assert.Equal(t, test.stride, test.mesh.Stride())
			assert.Equal(t, test.offsets, test.mesh.Offsets())
			assert.Equal(t, test.vertices, test.mesh.VertexCount())
			assert.Equal(t, test.drawCount, test.mesh.DrawCount())
			assert.Len(t, test.mesh.Indices, test.indexCount)
			assert.Zero(t, len(test.mesh.Vertices)%test.mesh.Components(), "partial vertex")
			for _, i := range test.mesh.Indices {
				assert.Less(t, int(i), test.mesh.VertexCount())
			}
		})
	}
}

func TestMeshEmptyLayout(t *testing.T) {
	m := &libscn.Mesh{Vertices: []float32{1, 2, 3}}
	assert.Zero(t, m.Stride())
	assert.Zero(t, m.VertexCount())
	assert.Empty(t, m.Offsets())
}

func TestMeshIndicesAreNotShared(t *testing.T) {
	a, b := libscn.Rectangle(), libscn.Rectangle()
	a.Indices[0] = 99
	assert.Equal(t, uint32(0), b.Indices[0])
}

func TestTexturedCubeFacesPointOutwards(t *testing.T) {
	m := libscn.TexturedCube()
	n := m.Components()
	pos := func(i int) mgl32.Vec3 {
		return mgl32.Vec3{m.Vertices[i*n], m.Vertices[i*n+1], m.Vertices[i*n+2]}
	}
	for tri := 0; tri < m.VertexCount(); tri += 3 {
		a, b, c := pos(tri), pos(tri+1), pos(tri+2)
		normal := b.Sub(a).Cross(c.Sub(a))
		centroid := a.Add(b).Add(c).Mul(1.0 / 3.0)
		assert.Greater(t, normal.Dot(centroid), float32(0), "triangle %d winds clockwise", tri/3)
	}
}
