package libgl_test

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"testing"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"learn-gl/libgl"
	"learn-gl/libutil"
)

var onMain chan func()
var onMainDone chan struct{}

// glReason is empty when a context could be created.
var glReason string

func TestMain(m *testing.M) {
	runtime.LockOSThread()

	if err := setupContext(); err != nil {
		glReason = err.Error()
		log.Printf("GL tests disabled: %v\n", err)
	}

	onMain = make(chan func())
	onMainDone = make(chan struct{})

	go func() {
		code := m.Run()
		if glReason == "" {
			onMain <- glfw.Terminate
		}
		os.Exit(code)
	}()

	for fn := range onMain {
		fn()
		onMainDone <- struct{}{}
	}
}

func setupContext() (err error) {
	defer func() {
		// glfw panics instead of failing Init when there is no display
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	if err := glfw.Init(); err != nil {
		return err
	}
	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	ctx, err := glfw.CreateWindow(64, 64, "Testing Window", nil, nil)
	if err != nil {
		glfw.Terminate()
		return err
	}
	ctx.MakeContextCurrent()

	err = gl.InitWithProcAddrFunc(func(name string) unsafe.Pointer {
		addr := glfw.GetProcAddress(name)
		if addr == nil {
			return unsafe.Pointer(uintptr(libutil.InvalidAddress))
		}
		return addr
	})
	if err != nil {
		glfw.Terminate()
		return err
	}

	libgl.Setup(libgl.Options{})
	return nil
}

// onGL runs fn on the thread owning the context, or skips the test when
// there is none.
func onGL(t *testing.T, fn func()) {
	t.Helper()
	if glReason != "" {
		t.Skipf("no GL context: %v", glReason)
	}
	onMain <- fn
	<-onMainDone
}
