package libscn

import "github.com/go-gl/mathgl/mgl32"

// Attribute locations shared by the tutorial shaders.
const (
	PositionAttribute = 0
	ColorAttribute    = 1
	UvAttribute       = 2
)

func Triangle() *Mesh {
	return &Mesh{
		Name: "triangle",
		Vertices: []float32{
			-0.5, -0.5, 0.0,
			0.5, -0.5, 0.0,
			0.0, 0.5, 0.0,
		},
		Layout: []Attribute{{PositionAttribute, 3}},
	}
}

var quadIndices = []uint32{
	0, 1, 3,
	1, 2, 3,
}

func Rectangle() *Mesh {
	return &Mesh{
		Name: "rectangle",
		Vertices: []float32{
			0.5, 0.5, 0.0, // top right
			0.5, -0.5, 0.0, // bottom right
			-0.5, -0.5, 0.0, // bottom left
			-0.5, 0.5, 0.0, // top left
		},
		Indices: append([]uint32(nil), quadIndices...),
		Layout:  []Attribute{{PositionAttribute, 3}},
	}
}

func ColoredRectangle() *Mesh {
	return &Mesh{
		Name: "colored rectangle",
		Vertices: []float32{
			// position      color
			0.5, 0.5, 0.0, 1.0, 0.0, 0.0,
			0.5, -0.5, 0.0, 0.0, 1.0, 0.0,
			-0.5, -0.5, 0.0, 0.0, 0.0, 1.0,
			-0.5, 0.5, 0.0, 0.0, 0.0, 0.0,
		},
		Indices: append([]uint32(nil), quadIndices...),
		Layout:  []Attribute{{PositionAttribute, 3}, {ColorAttribute, 3}},
	}
}

func TexturedRectangle() *Mesh {
	return &Mesh{
		Name: "textured rectangle",
		Vertices: []float32{
			// position      color          uv
			0.5, 0.5, 0.0, 1.0, 0.0, 0.0, 1.0, 1.0,
			0.5, -0.5, 0.0, 0.0, 1.0, 0.0, 1.0, 0.0,
			-0.5, -0.5, 0.0, 0.0, 0.0, 1.0, 0.0, 0.0,
			-0.5, 0.5, 0.0, 1.0, 1.0, 0.0, 0.0, 1.0,
		},
		Indices: append([]uint32(nil), quadIndices...),
		Layout:  []Attribute{{PositionAttribute, 3}, {ColorAttribute, 3}, {UvAttribute, 2}},
	}
}

// TexturedCube is a unit cube of 36 vertices with counter clockwise front
// faces.
func TexturedCube() *Mesh {
	return &Mesh{
		Name: "textured cube",
		Vertices: []float32{
			// front
			-0.5, 0.5, 0.5, 0.0, 1.0,
			0.5, -0.5, 0.5, 1.0, 0.0,
			0.5, 0.5, 0.5, 1.0, 1.0,
			-0.5, 0.5, 0.5, 0.0, 1.0,
			-0.5, -0.5, 0.5, 0.0, 0.0,
			0.5, -0.5, 0.5, 1.0, 0.0,
			// back
			0.5, -0.5, -0.5, 0.0, 0.0,
			-0.5, 0.5, -0.5, 1.0, 1.0,
			0.5, 0.5, -0.5, 0.0, 1.0,
			0.5, -0.5, -0.5, 0.0, 0.0,
			-0.5, -0.5, -0.5, 1.0, 0.0,
			-0.5, 0.5, -0.5, 1.0, 1.0,
			// top
			0.5, 0.5, 0.5, 0.0, 0.0,
			-0.5, 0.5, -0.5, 1.0, 1.0,
			-0.5, 0.5, 0.5, 0.0, 1.0,
			0.5, 0.5, 0.5, 0.0, 0.0,
			0.5, 0.5, -0.5, 1.0, 0.0,
			-0.5, 0.5, -0.5, 1.0, 1.0,
			// bottom
			0.5, -0.5, 0.5, 0.0, 1.0,
			-0.5, -0.5, 0.5, 0.0, 0.0,
			-0.5, -0.5, -0.5, 1.0, 0.0,
			0.5, -0.5, 0.5, 0.0, 1.0,
			-0.5, -0.5, -0.5, 1.0, 0.0,
			0.5, -0.5, -0.5, 1.0, 1.0,
			// right
			0.5, -0.5, 0.5, 1.0, 0.0,
			0.5, 0.5, -0.5, 0.0, 1.0,
			0.5, 0.5, 0.5, 0.0, 0.0,
			0.5, -0.5, 0.5, 1.0, 0.0,
			0.5, -0.5, -0.5, 1.0, 1.0,
			0.5, 0.5, -0.5, 0.0, 1.0,
			// left
			-0.5, 0.5, 0.5, 1.0, 0.0,
			-0.5, -0.5, -0.5, 0.0, 1.0,
			-0.5, -0.5, 0.5, 0.0, 0.0,
			-0.5, 0.5, 0.5, 1.0, 0.0,
			-0.5, 0.5, -0.5, 1.0, 1.0,
			-0.5, -0.5, -0.5, 0.0, 1.0,
		},
		Layout: []Attribute{{PositionAttribute, 3}, {UvAttribute, 2}},
	}
}

// Cube is a unit cube of 36 positions.
func Cube() *Mesh {
	return &Mesh{
		Name: "cube",
		Vertices: []float32{
			-0.5, -0.5, -0.5,
			0.5, -0.5, -0.5,
			0.5, 0.5, -0.5,
			0.5, 0.5, -0.5,
			-0.5, 0.5, -0.5,
			-0.5, -0.5, -0.5,

			-0.5, -0.5, 0.5,
			0.5, -0.5, 0.5,
			0.5, 0.5, 0.5,
			0.5, 0.5, 0.5,
			-0.5, 0.5, 0.5,
			-0.5, -0.5, 0.5,

			-0.5, 0.5, 0.5,
			-0.5, 0.5, -0.5,
			-0.5, -0.5, -0.5,
			-0.5, -0.5, -0.5,
			-0.5, -0.5, 0.5,
			-0.5, 0.5, 0.5,

			0.5, 0.5, 0.5,
			0.5, 0.5, -0.5,
			0.5, -0.5, -0.5,
			0.5, -0.5, -0.5,
			0.5, -0.5, 0.5,
			0.5, 0.5, 0.5,

			-0.5, -0.5, -0.5,
			0.5, -0.5, -0.5,
			0.5, -0.5, 0.5,
			0.5, -0.5, 0.5,
			-0.5, -0.5, 0.5,
			-0.5, -0.5, -0.5,

			-0.5, 0.5, -0.5,
			0.5, 0.5, -0.5,
			0.5, 0.5, 0.5,
			0.5, 0.5, 0.5,
			-0.5, 0.5, 0.5,
			-0.5, 0.5, -0.5,
		},
		Layout: []Attribute{{PositionAttribute, 3}},
	}
}

// CubePositions places the cubes of the cube field.
var CubePositions = []mgl32.Vec3{
	{0.0, 0.0, 0.0},
	{2.0, 5.0, -15.0},
	{-1.5, -2.2, -2.5},
	{-3.8, -2.0, -12.3},
	{2.4, -0.4, -3.5},
	{-1.7, 3.0, -7.5},
	{1.3, -2.0, -2.5},
	{1.5, 2.0, -2.5},
	{1.5, 0.2, -1.5},
	{-1.3, 1.0, -1.5},
}
