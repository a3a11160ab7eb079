package libgl

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/exp/slices"
)

type Environment struct {
	Vendor           string
	Renderer         string
	Version          string
	GLSLVersion      string
	Major, Minor     int
	MaxVertexAttribs int
	Extensions       []string
	BinaryFormats    int
}

func GetEnvironment() *Environment {
	env := &Environment{
		Vendor:      gl.GoStr(gl.GetString(gl.VENDOR)),
		Renderer:    gl.GoStr(gl.GetString(gl.RENDERER)),
		Version:     gl.GoStr(gl.GetString(gl.VERSION)),
		GLSLVersion: gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)),
	}

	var major, minor, attribs, numExt, formats int32
	gl.GetIntegerv(gl.MAJOR_VERSION, &major)
	gl.GetIntegerv(gl.MINOR_VERSION, &minor)
	gl.GetIntegerv(gl.MAX_VERTEX_ATTRIBS, &attribs)
	gl.GetIntegerv(gl.NUM_EXTENSIONS, &numExt)
	gl.GetIntegerv(gl.NUM_PROGRAM_BINARY_FORMATS, &formats)
	env.Major, env.Minor = int(major), int(minor)
	env.MaxVertexAttribs = int(attribs)
	env.BinaryFormats = int(formats)

	env.Extensions = make([]string, 0, numExt)
	for i := uint32(0); i < uint32(numExt); i++ {
		env.Extensions = append(env.Extensions, gl.GoStr(gl.GetStringi(gl.EXTENSIONS, i)))
	}
	slices.Sort(env.Extensions)

	return env
}

func (env *Environment) HasExtension(name string) bool {
	_, found := slices.BinarySearch(env.Extensions, name)
	return found
}

func (env *Environment) AtLeast(major, minor int) bool {
	return env.Major > major || (env.Major == major && env.Minor >= minor)
}

func (env *Environment) SupportsProgramBinary() bool {
	if env.BinaryFormats <= 0 {
		return false
	}
	return env.AtLeast(4, 1) || env.HasExtension("GL_ARB_get_program_binary")
}

// DriverIdent identifies the driver build; program binaries are only valid
// for the exact driver that produced them.
func (env *Environment) DriverIdent() string {
	return env.Vendor + "\n" + env.Renderer + "\n" + env.Version
}

func (env *Environment) String() string {
	sb := strings.Builder{}
	sb.WriteString("OpenGL data:")
	fmt.Fprintf(&sb, "\n    Version: %v", env.Version)
	fmt.Fprintf(&sb, "\n    Vendor: %v", env.Vendor)
	fmt.Fprintf(&sb, "\n    Renderer: %v", env.Renderer)
	fmt.Fprintf(&sb, "\n    GLSL version: %v", env.GLSLVersion)
	fmt.Fprintf(&sb, "\n    Max. attributes supported: %v", env.MaxVertexAttribs)
	return sb.String()
}
