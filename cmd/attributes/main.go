package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"learn-gl/libgl"
	"learn-gl/libscn"
	"learn-gl/libutil"
	"learn-gl/libwin"
)

const vertexShaderSource = `#version 330 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aColor;
out vec3 ourColor;
void main()
{
    gl_Position = vec4(aPos, 1.0);
    ourColor = aColor;
}
`

const fragmentShaderSource = `#version 330 core
out vec4 FragColor;
in vec3 ourColor;
uniform vec4 nonUsed;
void main()
{
    FragColor = vec4(ourColor, 1.0f);
}
`

func init() {
	runtime.LockOSThread()
}

func main() {
	cfg := libwin.DefaultConfig("More attributes")
	cfg.ParseArgs()

	win, err := libwin.Open(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(-1)
	}
	defer win.Close()

	shader := libgl.NewShader("attributes", vertexShaderSource, fragmentShaderSource)
	if err := shader.Compile(); err != nil {
		log.Printf("%v\n", err)
	}
	defer shader.Delete()

	rectangle := libscn.ColoredRectangle().Upload()
	defer rectangle.Delete()

	fps := libutil.NewFpsCounter()
	for !win.ShouldClose() {
		if win.Handle.GetKey(glfw.KeyEscape) == glfw.Press {
			win.SetShouldClose(true)
		}

		libgl.State.ClearColor(0.2, 0.3, 0.3, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		shader.Use()
		// optimized out by the compiler, so this is a no-op
		shader.SetVec4("nonUsed", 0, 0, 0, 1)
		rectangle.Draw()

		fmt.Printf("FPS: %d    \r", fps.Tick())

		win.SwapAndPoll()
	}
	fmt.Println()
}
