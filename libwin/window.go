// Package libwin opens the tutorial window, creates its GL context and turns
// GLFW callbacks and polled state into per-frame input.
package libwin

import (
	"fmt"
	"log"
	"runtime"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"learn-gl/libgl"
	"learn-gl/libutil"
)

type Window struct {
	Handle *glfw.Window
	Config Config

	onResize      []func(width, height int)
	onScroll      []func(xoff, yoff float64)
	onCursor      []func(x, y float64)
	onKey         []func(key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey)
	onChar        []func(char rune)
	onMouseButton []func(button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey)
}

// Open creates the window and makes its context current on the calling
// thread, which has to be locked with runtime.LockOSThread.
func Open(cfg Config) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GLMinor)
	if cfg.EnableCompatibilityProfile {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCompatProfile)
	} else {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
		if runtime.GOOS == "darwin" {
			glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
		}
	}
	if cfg.Samples > 0 {
		glfw.WindowHint(glfw.Samples, cfg.Samples)
	}
	if cfg.Debug {
		glfw.WindowHint(glfw.OpenGLDebugContext, glfw.True)
	}

	handle, err := createWindow(cfg)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}
	handle.MakeContextCurrent()

	err = gl.InitWithProcAddrFunc(func(name string) unsafe.Pointer {
		addr := glfw.GetProcAddress(name)
		if addr == nil {
			// functions above the context version stay unresolved
			return unsafe.Pointer(libutil.InvalidAddress)
		}
		return addr
	})
	if err != nil {
		handle.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize GL loader: %w", err)
	}

	libgl.Setup(libgl.Options{
		ShaderCacheDir: cfg.CacheDir(),
		Verbose:        cfg.Debug,
		Debug:          cfg.Debug,
	})
	log.Print(libgl.Env)

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	handle.SetInputMode(glfw.StickyKeysMode, glfw.True)
	if cfg.Samples > 0 {
		libgl.State.Enable(libgl.Multisample)
	}

	w := &Window{
		Handle: handle,
		Config: cfg,
	}
	w.installCallbacks()

	fbWidth, fbHeight := handle.GetFramebufferSize()
	libgl.State.Viewport(0, 0, fbWidth, fbHeight)
	w.OnResize(func(width, height int) {
		libgl.State.Viewport(0, 0, width, height)
	})

	return w, nil
}

// createWindow converts the panic glfw raises when Init silently failed,
// e.g. without a display, into an error.
func createWindow(cfg Config) (handle *glfw.Window, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	return glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
}

func (w *Window) installCallbacks() {
	w.Handle.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		for _, fn := range w.onResize {
			fn(width, height)
		}
	})
	w.Handle.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		for _, fn := range w.onScroll {
			fn(xoff, yoff)
		}
	})
	w.Handle.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		for _, fn := range w.onCursor {
			fn(x, y)
		}
	})
	w.Handle.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		for _, fn := range w.onKey {
			fn(key, scancode, action, mods)
		}
	})
	w.Handle.SetCharCallback(func(_ *glfw.Window, char rune) {
		for _, fn := range w.onChar {
			fn(char)
		}
	})
	w.Handle.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		for _, fn := range w.onMouseButton {
			fn(button, action, mods)
		}
	})
}

func (w *Window) OnResize(fn func(width, height int)) {
	w.onResize = append(w.onResize, fn)
}

func (w *Window) OnScroll(fn func(xoff, yoff float64)) {
	w.onScroll = append(w.onScroll, fn)
}

func (w *Window) OnCursor(fn func(x, y float64)) {
	w.onCursor = append(w.onCursor, fn)
}

func (w *Window) OnKey(fn func(key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey)) {
	w.onKey = append(w.onKey, fn)
}

func (w *Window) OnChar(fn func(char rune)) {
	w.onChar = append(w.onChar, fn)
}

func (w *Window) OnMouseButton(fn func(button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey)) {
	w.onMouseButton = append(w.onMouseButton, fn)
}

func (w *Window) ShouldClose() bool {
	return w.Handle.ShouldClose()
}

func (w *Window) SetShouldClose(value bool) {
	w.Handle.SetShouldClose(value)
}

func (w *Window) SwapAndPoll() {
	w.Handle.SwapBuffers()
	glfw.PollEvents()
}

func (w *Window) FramebufferSize() (int, int) {
	return w.Handle.GetFramebufferSize()
}

func (w *Window) AspectRatio() float32 {
	width, height := w.Handle.GetFramebufferSize()
	if height == 0 {
		return 1
	}
	return float32(width) / float32(height)
}

func (w *Window) CaptureCursor(capture bool) {
	if capture {
		w.Handle.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	} else {
		w.Handle.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
}

func (w *Window) CursorCaptured() bool {
	return w.Handle.GetInputMode(glfw.CursorMode) == glfw.CursorDisabled
}

func (w *Window) Close() {
	w.Handle.Destroy()
	glfw.Terminate()
}
