package libwin

import (
	"io"

	"github.com/go-gl/glfw/v3.3/glfw"
)

type InputSource interface {
	GetCursorPos() (x, y float64)
	GetKey(key glfw.Key) glfw.Action
	GetMouseButton(button glfw.MouseButton) glfw.Action
}

func NewInputManagerWith(src InputSource, clock func() float64) *InputManager {
	return newInputManager(src, clock)
}

func (cfg *Config) ParseArgsTo(name string, args []string, out io.Writer) (code int, exit bool) {
	return cfg.parseArgs(name, args, out)
}
