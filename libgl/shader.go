package libgl

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/exp/slices"
)

var shaderMetaPattern = regexp.MustCompile(`(?m)^\/\/meta:(\w+)(.+)$`)

// Shader is a linked vertex + fragment program.
//
// Compilation problems are never fatal: a shader whose sources fail to
// compile or link still exists, its handle may just be zero or unlinked,
// and drawing with it produces undefined output.
type Shader struct {
	glId           uint32
	name           string
	VertexPath     string
	FragmentPath   string
	vertexSource   string
	fragmentSource string
}

func NewShader(name, vertexSource, fragmentSource string) *Shader {
	s := &Shader{
		vertexSource:   vertexSource,
		fragmentSource: fragmentSource,
	}
	s.name = shaderName(name, vertexSource, fragmentSource)
	return s
}

// LoadShader reads both stage sources from disk, compiles and links them.
// Any failure is logged and the possibly invalid shader is returned anyway.
func LoadShader(vertexPath, fragmentPath string) *Shader {
	s := &Shader{
		VertexPath:   vertexPath,
		FragmentPath: fragmentPath,
	}
	src, err := readSources(vertexPath, fragmentPath)
	if err != nil {
		log.Printf("could not read shader sources: %v\n", err)
	}
	s.setSources(src)
	if err := s.Compile(); err != nil {
		log.Printf("%v\n", err)
	}
	return s
}

type shaderSources struct {
	name, vertex, fragment string
}

// readSources returns whatever could be read, even on error.
func readSources(vertexPath, fragmentPath string) (shaderSources, error) {
	base := strings.TrimSuffix(filepath.Base(vertexPath), filepath.Ext(vertexPath))
	vs, verr := os.ReadFile(vertexPath)
	fs, ferr := os.ReadFile(fragmentPath)
	src := shaderSources{vertex: string(vs), fragment: string(fs)}
	src.name = shaderName(base, src.vertex, src.fragment)
	return src, errors.Join(verr, ferr)
}

func (s *Shader) setSources(src shaderSources) {
	s.name = src.name
	s.vertexSource = src.vertex
	s.fragmentSource = src.fragment
}

// shaderName prefers a `//meta:name` line in either source over the fallback.
func shaderName(fallback string, sources ...string) string {
	for _, src := range sources {
		for _, match := range shaderMetaPattern.FindAllStringSubmatch(src, -1) {
			key, value := match[1], strings.TrimSpace(match[2])
			if strings.EqualFold(key, "name") && value != "" {
				return value
			}
		}
	}
	if fallback == "" {
		return "untitled"
	}
	return fallback
}

func (s *Shader) ID() uint32 {
	return s.glId
}

func (s *Shader) Name() string {
	return s.name
}

// Compile builds the program from the current sources. When a previously
// linked program exists and the new build fails, the old program is kept.
func (s *Shader) Compile() error {
	id, err := buildProgram(s.name, s.vertexSource, s.fragmentSource)
	if err != nil {
		if s.glId == 0 {
			s.glId = id
		} else if id != 0 {
			gl.DeleteProgram(id)
		}
		return err
	}

	if s.glId != 0 {
		s.Delete()
	}
	s.glId = id
	s.SetDebugLabel(s.name)

	if options.Verbose {
		log.Printf("%v shader: active uniforms %v\n", s.name, s.ActiveUniforms())
	}
	return nil
}

// Reload re-reads the source files and recompiles.
func (s *Shader) Reload() error {
	if s.VertexPath == "" || s.FragmentPath == "" {
		return fmt.Errorf("%v shader was not loaded from files", s.name)
	}
	src, err := readSources(s.VertexPath, s.FragmentPath)
	if err != nil {
		return fmt.Errorf("could not reload %v shader: %w", s.name, err)
	}
	s.setSources(src)
	return s.Compile()
}

func (s *Shader) Use() {
	State.UseProgram(s.glId)
}

func (s *Shader) Delete() {
	if State != nil && State.Program == s.glId {
		State.Program = 0
	}
	gl.DeleteProgram(s.glId)
	s.glId = 0
}

func (s *Shader) ActiveUniforms() []string {
	if s.glId == 0 {
		return nil
	}
	var count, maxLength int32
	gl.GetProgramiv(s.glId, gl.ACTIVE_UNIFORMS, &count)
	gl.GetProgramiv(s.glId, gl.ACTIVE_UNIFORM_MAX_LENGTH, &maxLength)

	names := make([]string, 0, count)
	buf := make([]uint8, maxLength+1)
	for i := uint32(0); i < uint32(count); i++ {
		var length, size int32
		var xtype uint32
		gl.GetActiveUniform(s.glId, i, maxLength+1, &length, &size, &xtype, &buf[0])
		names = append(names, string(buf[:length]))
	}
	slices.Sort(names)
	return names
}

func buildProgram(name, vertexSource, fragmentSource string) (uint32, error) {
	var key string
	if Cache != nil {
		key = Cache.Key(vertexSource, fragmentSource)
		if id, ok := Cache.Load(key); ok {
			return id, nil
		}
	}

	vertexId, vertexErr := compileStage(name, gl.VERTEX_SHADER, vertexSource)
	fragmentId, fragmentErr := compileStage(name, gl.FRAGMENT_SHADER, fragmentSource)

	id := gl.CreateProgram()
	gl.AttachShader(id, vertexId)
	gl.AttachShader(id, fragmentId)
	if Cache != nil {
		gl.ProgramParameteri(id, gl.PROGRAM_BINARY_RETRIEVABLE_HINT, gl.TRUE)
	}
	gl.LinkProgram(id)

	var linkErr error
	var ok int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &ok)
	if ok == gl.FALSE {
		linkErr = fmt.Errorf("failed to link %v shader, log: %v", name, readProgramInfoLog(id))
	}

	gl.DetachShader(id, vertexId)
	gl.DetachShader(id, fragmentId)
	gl.DeleteShader(vertexId)
	gl.DeleteShader(fragmentId)

	err := errors.Join(vertexErr, fragmentErr, linkErr)
	if err == nil && Cache != nil {
		Cache.Store(key, id)
	}
	return id, err
}

func compileStage(name string, stage uint32, source string) (uint32, error) {
	id := gl.CreateShader(stage)
	cStrs, free := gl.Strs(source + "\x00")
	gl.ShaderSource(id, 1, cStrs, nil)
	free()
	gl.CompileShader(id)

	var ok int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &ok)
	if ok == gl.FALSE {
		return id, fmt.Errorf("failed to compile %v %v shader, log: %v", name, stageName(stage), readShaderInfoLog(id))
	}
	return id, nil
}

func stageName(stage uint32) string {
	switch stage {
	case gl.VERTEX_SHADER:
		return "vertex"
	case gl.FRAGMENT_SHADER:
		return "fragment"
	}
	return fmt.Sprintf("0x%04x", stage)
}

func readShaderInfoLog(id uint32) string {
	var logLength int32
	gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &logLength)

	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(id, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00\n")
}

func readProgramInfoLog(id uint32) string {
	var logLength int32
	gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLength)

	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(id, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00\n")
}
