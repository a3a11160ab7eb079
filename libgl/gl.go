// Package libgl wraps the handful of OpenGL objects the tutorials need:
// shader programs, buffers, vertex arrays and 2D textures. Every function in
// this package must be called on the thread that owns the GL context.
package libgl

import (
	"fmt"
	"log"
	"reflect"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

var (
	State *StateManager
	Env   *Environment
	Cache *ProgramCache
)

type Options struct {
	// Empty disables the on-disk program binary cache.
	ShaderCacheDir string
	// Log active uniforms of every linked program.
	Verbose bool
	// Forward driver debug messages to the log and label GL objects.
	Debug bool
}

var options Options

// Setup queries the current context and initializes the package state.
// It must be called once after the GL function pointers were loaded.
func Setup(opts Options) {
	options = opts
	Env = GetEnvironment()
	State = NewStateManager()
	debugLabels = false
	if opts.Debug {
		debugLabels = enableDebugOutput()
	}
	Cache = nil
	if opts.ShaderCacheDir != "" {
		if Env.SupportsProgramBinary() {
			Cache = NewProgramCache(opts.ShaderCacheDir, Env.DriverIdent())
		} else {
			log.Printf("program binaries are not supported by %v, shader cache disabled\n", Env.Renderer)
		}
	}
}

func Pointer(data any) unsafe.Pointer {
	if data == nil {
		return unsafe.Pointer(nil)
	}
	var addr unsafe.Pointer
	v := reflect.ValueOf(data)
	switch v.Type().Kind() {
	case reflect.Ptr:
		e := v.Elem()
		addr = unsafe.Pointer(e.UnsafeAddr())
	case reflect.Uintptr:
		addr = unsafe.Pointer(data.(uintptr))
	case reflect.Slice:
		if v.Len() == 0 {
			return unsafe.Pointer(nil)
		}
		addr = unsafe.Pointer(v.Index(0).UnsafeAddr())
	default:
		panic(fmt.Errorf("unsupported type %s; must be a slice, uintptr or pointer to a value", v.Type()))
	}
	return addr
}

var errorNames = map[uint32]string{
	gl.INVALID_ENUM:                  "INVALID_ENUM",
	gl.INVALID_VALUE:                 "INVALID_VALUE",
	gl.INVALID_OPERATION:             "INVALID_OPERATION",
	gl.INVALID_FRAMEBUFFER_OPERATION: "INVALID_FRAMEBUFFER_OPERATION",
	gl.OUT_OF_MEMORY:                 "OUT_OF_MEMORY",
}

// CheckError logs every pending GL error and reports whether there was any.
func CheckError(where string) bool {
	found := false
	for code := gl.GetError(); code != gl.NO_ERROR; code = gl.GetError() {
		name, ok := errorNames[code]
		if !ok {
			name = "UNKNOWN"
		}
		log.Printf("%v: GL error 0x%04x %v\n", where, code, name)
		found = true
	}
	return found
}
