package libgl

import (
	"fmt"
	"log"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

var debugLabels bool

// 131185: "buffer will use video memory", reported by nvidia for every buffer
var ignoredMessages = []uint32{131185}

func setObjectLabel(namespace, id uint32, label string) {
	if !debugLabels || id == 0 || label == "" {
		return
	}
	bytes := []byte(label)
	gl.ObjectLabel(namespace, id, int32(len(bytes)), (*uint8)(unsafe.Pointer(&bytes[0])))
}

func supportsDebugOutput(env *Environment) bool {
	return env.AtLeast(4, 3) || env.HasExtension("GL_KHR_debug")
}

// enableDebugOutput routes driver messages to the log. The context should be
// created with a debug hint, otherwise most drivers stay silent.
func enableDebugOutput() bool {
	if !supportsDebugOutput(Env) {
		log.Printf("debug output is not supported by %v\n", Env.Renderer)
		return false
	}
	gl.Enable(gl.DEBUG_OUTPUT)
	gl.Enable(gl.DEBUG_OUTPUT_SYNCHRONOUS)
	gl.DebugMessageCallback(func(source, gltype, id, severity uint32, length int32, message string, userParam unsafe.Pointer) {
		if gltype == gl.DEBUG_TYPE_PUSH_GROUP || gltype == gl.DEBUG_TYPE_POP_GROUP {
			return
		}
		log.Println(formatDebugMessage(source, gltype, id, severity, message))
	}, nil)
	gl.DebugMessageControl(gl.DONT_CARE, gl.DONT_CARE, gl.DONT_CARE, int32(len(ignoredMessages)), &ignoredMessages[0], false)
	return true
}

func formatDebugMessage(source, gltype, id, severity uint32, message string) string {
	var severityStr, typeStr, sourceStr string
	switch severity {
	case gl.DEBUG_SEVERITY_HIGH:
		severityStr = "CRITICAL_ERROR"
	case gl.DEBUG_SEVERITY_MEDIUM:
		severityStr = "ERROR"
	case gl.DEBUG_SEVERITY_LOW:
		severityStr = "WARNING"
	default:
		severityStr = "INFO"
	}
	switch gltype {
	case gl.DEBUG_TYPE_ERROR:
		typeStr = "ERROR"
	case gl.DEBUG_TYPE_DEPRECATED_BEHAVIOR:
		typeStr = "DEPRECATED_BEHAVIOR"
	case gl.DEBUG_TYPE_UNDEFINED_BEHAVIOR:
		typeStr = "UNDEFINED_BEHAVIOR"
	case gl.DEBUG_TYPE_PERFORMANCE:
		typeStr = "PERFORMANCE"
	case gl.DEBUG_TYPE_PORTABILITY:
		typeStr = "PORTABILITY"
	case gl.DEBUG_TYPE_MARKER:
		typeStr = "MARKER"
	default:
		typeStr = "OTHER"
	}
	switch source {
	case gl.DEBUG_SOURCE_API:
		sourceStr = "GRAPHICS_LIBRARY"
	case gl.DEBUG_SOURCE_SHADER_COMPILER:
		sourceStr = "SHADER_COMPILER"
	case gl.DEBUG_SOURCE_WINDOW_SYSTEM:
		sourceStr = "WINDOW_SYSTEM"
	case gl.DEBUG_SOURCE_THIRD_PARTY:
		sourceStr = "THIRD_PARTY"
	case gl.DEBUG_SOURCE_APPLICATION:
		sourceStr = "APPLICATION"
	default:
		sourceStr = "OTHER"
	}
	return fmt.Sprintf("[%v] %v #%v from %v: %v", severityStr, typeStr, id, sourceStr, message)
}

func (s *Shader) SetDebugLabel(label string) {
	setObjectLabel(gl.PROGRAM, s.glId, label)
}

func (buf *Buffer) SetDebugLabel(label string) {
	setObjectLabel(gl.BUFFER, buf.glId, label)
}

func (vao *VertexArray) SetDebugLabel(label string) {
	setObjectLabel(gl.VERTEX_ARRAY, vao.glId, label)
}

func (tex *Texture) SetDebugLabel(label string) {
	if tex == nil {
		return
	}
	setObjectLabel(gl.TEXTURE, tex.glId, label)
}
