package libgl_test

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"learn-gl/libgl"
)

const validVertex = `#version 330 core
//meta:name solid color
layout (location = 0) in vec3 aPos;
uniform mat4 model;
void main() {
    gl_Position = model * vec4(aPos, 1.0);
}
`

const validFragment = `#version 330 core
out vec4 FragColor;
uniform vec3 color;
void main() {
    FragColor = vec4(color, 1.0);
}
`

const brokenFragment = `#version 330 core
out vec4 FragColor;
void main() {
    FragColor = vec4(undefinedThing, 1.0)
}
`

func TestShaderName(t *testing.T) {
	assert.Equal(t, "solid color", libgl.ShaderName("fallback", validVertex, validFragment))
	assert.Equal(t, "fallback", libgl.ShaderName("fallback", validFragment))
	assert.Equal(t, "untitled", libgl.ShaderName("", validFragment))
}

func TestShaderCompileValid(t *testing.T) {
	var err error
	var id uint32
	var uniforms []string
	onGL(t, func() {
		s := libgl.NewShader("test", validVertex, validFragment)
		err = s.Compile()
		id = s.ID()
		uniforms = s.ActiveUniforms()
		s.Use()
		s.SetMat4("model", mgl32.Ident4())
		s.SetVec3("color", 1, 0.5, 0.31)
		s.SetUniform("color", mgl32.Vec3{1, 1, 1})
		s.SetFloat("doesNotExist", 1)
		libgl.CheckError(t.Name())
		s.Delete()
	})
	require.NoError(t, err)
	assert.NotZero(t, id)
	assert.Equal(t, []string{"color", "model"}, uniforms)
}

func TestShaderCompileInvalidLogs(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	dir := t.TempDir()
	vPath := filepath.Join(dir, "broken.vs")
	fPath := filepath.Join(dir, "broken.fs")
	require.NoError(t, os.WriteFile(vPath, []byte(validVertex), 0644))
	require.NoError(t, os.WriteFile(fPath, []byte(brokenFragment), 0644))

	var compileErr error
	onGL(t, func() {
		assert.NotPanics(t, func() {
			s := libgl.LoadShader(vPath, fPath)
			s.Use()
			s.SetInt("anything", 1)
			compileErr = s.Compile()
			s.Delete()
		})
	})
	require.Error(t, compileErr)
	assert.Contains(t, compileErr.Error(), "fragment")
	assert.Contains(t, buf.String(), "failed to compile")
}

func TestShaderMissingFileLogs(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	onGL(t, func() {
		assert.NotPanics(t, func() {
			s := libgl.LoadShader("does/not/exist.vs", "does/not/exist.fs")
			s.Delete()
		})
	})
	assert.Contains(t, buf.String(), "could not read shader sources")
}

func TestShaderReloadKeepsProgramOnFailure(t *testing.T) {
	dir := t.TempDir()
	vPath := filepath.Join(dir, "reload.vs")
	fPath := filepath.Join(dir, "reload.fs")
	require.NoError(t, os.WriteFile(vPath, []byte(validVertex), 0644))
	require.NoError(t, os.WriteFile(fPath, []byte(validFragment), 0644))

	var before, after uint32
	var reloadErr error
	onGL(t, func() {
		s := libgl.LoadShader(vPath, fPath)
		before = s.ID()
		assert.NoError(t, os.WriteFile(fPath, []byte(brokenFragment), 0644))
		reloadErr = s.Reload()
		after = s.ID()
		s.Delete()
	})
	require.Error(t, reloadErr)
	assert.NotZero(t, before)
	assert.Equal(t, before, after)
}

func TestShaderReloadKeepsSourcesWhenFileIsMissing(t *testing.T) {
	dir := t.TempDir()
	vPath := filepath.Join(dir, "moved.vs")
	fPath := filepath.Join(dir, "moved.fs")
	require.NoError(t, os.WriteFile(vPath, []byte(validVertex), 0644))

	s := libgl.NewFileShaderWith(vPath, fPath, "solid color", validVertex, validFragment)
	err := s.Reload()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not reload solid color shader")

	assert.Equal(t, "solid color", s.Name())
	vs, fs := s.Sources()
	assert.Equal(t, validVertex, vs)
	assert.Equal(t, validFragment, fs)
	assert.Zero(t, s.ID())
}
