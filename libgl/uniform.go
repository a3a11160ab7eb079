package libgl

import (
	"log"
	"reflect"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Uniform setters look the location up on every call and write to the
// program that is currently in use, so Use must be called first.
// Names the program does not know resolve to -1 and are ignored.

func (s *Shader) GetUniformLocation(name string) int32 {
	if s.glId == 0 {
		return -1
	}
	return gl.GetUniformLocation(s.glId, gl.Str(name+"\x00"))
}

func (s *Shader) SetBool(name string, value bool) {
	var i int32
	if value {
		i = 1
	}
	gl.Uniform1i(s.GetUniformLocation(name), i)
}

func (s *Shader) SetInt(name string, value int) {
	gl.Uniform1i(s.GetUniformLocation(name), int32(value))
}

func (s *Shader) SetFloat(name string, value float32) {
	gl.Uniform1f(s.GetUniformLocation(name), value)
}

func (s *Shader) SetVec2(name string, x, y float32) {
	gl.Uniform2f(s.GetUniformLocation(name), x, y)
}

func (s *Shader) SetVec3(name string, x, y, z float32) {
	gl.Uniform3f(s.GetUniformLocation(name), x, y, z)
}

func (s *Shader) SetVec4(name string, x, y, z, w float32) {
	gl.Uniform4f(s.GetUniformLocation(name), x, y, z, w)
}

func (s *Shader) SetMat3(name string, m mgl32.Mat3) {
	gl.UniformMatrix3fv(s.GetUniformLocation(name), 1, false, &m[0])
}

func (s *Shader) SetMat4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(s.GetUniformLocation(name), 1, false, &m[0])
}

func (s *Shader) SetUniform(name string, value any) {
	location := s.GetUniformLocation(name)
	if location == -1 {
		return
	}
	setUniformAny(location, value)
}

func setUniformAny(location int32, value any) {
	for refVal := reflect.ValueOf(value); refVal.Kind() == reflect.Ptr; refVal = reflect.ValueOf(value) {
		value = refVal.Elem().Interface()
	}

	switch v := value.(type) {
	case bool:
		if v {
			gl.Uniform1i(location, 1)
		} else {
			gl.Uniform1i(location, 0)
		}
	case float64:
		gl.Uniform1f(location, float32(v))
	case float32:
		gl.Uniform1f(location, v)
	case int:
		gl.Uniform1i(location, int32(v))
	case int32:
		gl.Uniform1i(location, v)
	case uint:
		gl.Uniform1ui(location, uint32(v))
	case uint32:
		gl.Uniform1ui(location, v)
	case mgl32.Vec2:
		gl.Uniform2f(location, v.X(), v.Y())
	case mgl32.Vec3:
		gl.Uniform3f(location, v.X(), v.Y(), v.Z())
	case mgl32.Vec4:
		gl.Uniform4f(location, v.X(), v.Y(), v.Z(), v.W())
	case mgl32.Mat3:
		gl.UniformMatrix3fv(location, 1, false, &v[0])
	case mgl32.Mat4:
		gl.UniformMatrix4fv(location, 1, false, &v[0])
	default:
		log.Panicf("Unsupported uniform type %T", value)
	}
}
