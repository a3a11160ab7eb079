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
	"learn-gl/libwin"
)

const vertexShaderSource = `#version 330 core
layout (location = 0) in vec3 aPos;
void main()
{
    gl_Position = vec4(aPos.x, aPos.y, aPos.z, 1.0);
}
`

const fragmentShaderSource = `#version 330 core
out vec4 FragColor;
void main()
{
    FragColor = vec4(1.0f, 0.5f, 0.2f, 1.0f);
}
`

func init() {
	runtime.LockOSThread()
}

func main() {
	cfg := libwin.DefaultConfig("Triangle")
	cfg.ParseArgs()

	win, err := libwin.Open(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(-1)
	}
	defer win.Close()

	shader := libgl.NewShader("triangle", vertexShaderSource, fragmentShaderSource)
	if err := shader.Compile(); err != nil {
		log.Printf("%v\n", err)
	}
	defer shader.Delete()

	triangle := libscn.Triangle().Upload()
	defer triangle.Delete()

	counter := 0
	for !win.ShouldClose() {
		if win.Handle.GetKey(glfw.KeyEscape) == glfw.Press {
			win.SetShouldClose(true)
		}

		libgl.State.ClearColor(0.2, 0.3, 0.3, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		shader.Use()
		triangle.Draw()

		counter++
		fmt.Printf("frame %d\r", counter)

		win.SwapAndPoll()
	}
	fmt.Println()
}
