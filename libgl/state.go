package libgl

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

type Capability uint32

const (
	DepthTest         Capability = gl.DEPTH_TEST
	Blend             Capability = gl.BLEND
	ScissorTest       Capability = gl.SCISSOR_TEST
	CullFace          Capability = gl.CULL_FACE
	Multisample       Capability = gl.MULTISAMPLE
	PolygonOffsetFill Capability = gl.POLYGON_OFFSET_FILL
)

type BlendFactor uint32

const (
	BlendZero             BlendFactor = gl.ZERO
	BlendOne              BlendFactor = gl.ONE
	BlendSrcAlpha         BlendFactor = gl.SRC_ALPHA
	BlendOneMinusSrcAlpha BlendFactor = gl.ONE_MINUS_SRC_ALPHA
)

type DepthFunc uint32

const (
	DepthFuncLess   DepthFunc = gl.LESS
	DepthFuncLEqual DepthFunc = gl.LEQUAL
	DepthFuncAlways DepthFunc = gl.ALWAYS
)

// StateManager shadows the bits of GL state the tutorials touch, so that
// redundant state changes are skipped.
type StateManager struct {
	Caps                              map[Capability]bool
	TextureUnits                      []uint32
	ActiveTextureUnit                 int
	Program, VertexArray              uint32
	ArrayBuffer                       uint32
	ViewportRect, ScissorRect         [4]int
	BlendFactorSrc, BlendFactorDst    BlendFactor
	DepthFuncFn                       DepthFunc
	PolygonModeFront, PolygonModeBack uint32
	ClearColorRGBA                    [4]float32
	FrontFaceMode                     uint32
}

func NewStateManager() *StateManager {
	return &StateManager{
		Caps:             map[Capability]bool{},
		TextureUnits:     make([]uint32, 32),
		DepthFuncFn:      DepthFuncLess,
		PolygonModeFront: gl.FILL,
		PolygonModeBack:  gl.FILL,
		FrontFaceMode:    gl.CCW,
		BlendFactorSrc:   BlendOne,
		BlendFactorDst:   BlendZero,
	}
}

func (s *StateManager) Enable(cap Capability) {
	if s.Caps[cap] {
		return
	}
	gl.Enable(uint32(cap))
	s.Caps[cap] = true
}

func (s *StateManager) Disable(cap Capability) {
	if enabled, known := s.Caps[cap]; known && !enabled {
		return
	}
	gl.Disable(uint32(cap))
	s.Caps[cap] = false
}

// SetEnabled enables exactly the given capabilities and disables every
// other capability that is currently enabled.
func (s *StateManager) SetEnabled(caps ...Capability) {
	want := make(map[Capability]bool, len(caps))
	for _, c := range caps {
		want[c] = true
	}
	for c, v := range s.Caps {
		if v && !want[c] {
			s.Disable(c)
		}
	}
	for c := range want {
		s.Enable(c)
	}
}

// EnabledCaps lists the capabilities that are currently enabled.
func (s *StateManager) EnabledCaps() []Capability {
	var caps []Capability
	for c, v := range s.Caps {
		if v {
			caps = append(caps, c)
		}
	}
	return caps
}

func (s *StateManager) BlendFunc(sfactor, dfactor BlendFactor) {
	if s.BlendFactorSrc == sfactor && s.BlendFactorDst == dfactor {
		return
	}
	gl.BlendFunc(uint32(sfactor), uint32(dfactor))
	s.BlendFactorSrc = sfactor
	s.BlendFactorDst = dfactor
}

func (s *StateManager) DepthFunc(fn DepthFunc) {
	if s.DepthFuncFn == fn {
		return
	}
	gl.DepthFunc(uint32(fn))
	s.DepthFuncFn = fn
}

func (s *StateManager) FrontFace(mode uint32) {
	if s.FrontFaceMode == mode {
		return
	}
	gl.FrontFace(mode)
	s.FrontFaceMode = mode
}

// Core profiles only accept gl.FRONT_AND_BACK for face.
func (s *StateManager) PolygonMode(face, mode uint32) {
	if s.PolygonModeFront == mode && s.PolygonModeBack == mode {
		return
	}
	gl.PolygonMode(face, mode)
	s.PolygonModeFront = mode
	s.PolygonModeBack = mode
}

func (s *StateManager) UseProgram(program uint32) {
	if s.Program == program {
		return
	}
	gl.UseProgram(program)
	s.Program = program
}

func (s *StateManager) BindVertexArray(array uint32) {
	if s.VertexArray == array {
		return
	}
	gl.BindVertexArray(array)
	s.VertexArray = array
}

func (s *StateManager) BindArrayBuffer(buffer uint32) {
	if s.ArrayBuffer == buffer {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, buffer)
	s.ArrayBuffer = buffer
}

func (s *StateManager) ActiveTexture(unit int) {
	if s.ActiveTextureUnit == unit {
		return
	}
	gl.ActiveTexture(uint32(gl.TEXTURE0 + unit))
	s.ActiveTextureUnit = unit
}

func (s *StateManager) BindTexture(unit int, texture uint32) {
	if s.TextureUnits[unit] == texture {
		return
	}
	s.ActiveTexture(unit)
	gl.BindTexture(gl.TEXTURE_2D, texture)
	s.TextureUnits[unit] = texture
}

func (s *StateManager) Viewport(x, y, w, h int) {
	rect := [4]int{x, y, w, h}
	if s.ViewportRect == rect {
		return
	}
	gl.Viewport(int32(x), int32(y), int32(w), int32(h))
	s.ViewportRect = rect
}

func (s *StateManager) Scissor(x, y, w, h int) {
	rect := [4]int{x, y, w, h}
	if s.ScissorRect == rect {
		return
	}
	gl.Scissor(int32(x), int32(y), int32(w), int32(h))
	s.ScissorRect = rect
}

func (s *StateManager) ClearColor(r, g, b, a float32) {
	rgba := [4]float32{r, g, b, a}
	if s.ClearColorRGBA == rgba {
		return
	}
	gl.ClearColor(r, g, b, a)
	s.ClearColorRGBA = rgba
}

// Forget drops the cached bindings after foreign code touched GL state
// directly.
func (s *StateManager) Forget() {
	s.Program = 0
	s.VertexArray = 0
	s.ArrayBuffer = 0
	for i := range s.TextureUnits {
		s.TextureUnits[i] = 0
	}
}
