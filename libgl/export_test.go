package libgl

import (
	"time"

	"learn-gl/libio"
)

func (cache *ProgramCache) SetClock(now func() time.Time) {
	cache.now = now
}

func (cache *ProgramCache) ReadBinary(key string) (*libio.ProgramBinary, bool) {
	return cache.read(key)
}

func (cache *ProgramCache) WriteBinary(key string, prog *libio.ProgramBinary) error {
	return cache.write(key, prog)
}

func (cache *ProgramCache) Path(key string) string {
	return cache.path(key)
}

var ShaderName = shaderName

func NewFileShaderWith(vertexPath, fragmentPath, name, vertexSource, fragmentSource string) *Shader {
	return &Shader{
		name:           name,
		VertexPath:     vertexPath,
		FragmentPath:   fragmentPath,
		vertexSource:   vertexSource,
		fragmentSource: fragmentSource,
	}
}

func (s *Shader) Sources() (vertex, fragment string) {
	return s.vertexSource, s.fragmentSource
}
