package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"learn-gl/libgl"
	"learn-gl/libscn"
	"learn-gl/libutil"
	"learn-gl/libwin"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	cfg := libwin.DefaultConfig("Textures")
	cfg.ParseArgs()

	win, err := libwin.Open(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(-1)
	}
	defer win.Close()

	shader := libgl.LoadShader(cfg.ShaderPath("textures", "shader.vs"), cfg.ShaderPath("textures", "shader.fs"))
	defer shader.Delete()

	rectangle := libscn.TexturedRectangle().Upload()
	defer rectangle.Delete()

	// failures are logged, drawing continues with texture 0
	box, _ := libgl.LoadTexture(cfg.TexturePath("box1.png"), libgl.DefaultTextureOptions)
	defer box.Delete()
	note, _ := libgl.LoadTexture(cfg.TexturePath("note.png"), libgl.DefaultTextureOptions)
	defer note.Delete()

	shader.Use()
	shader.SetInt("texture1", 0)
	shader.SetInt("texture2", 1)

	input := libwin.NewInputManager(win)
	mixValue := float32(0.8)
	fps := libutil.NewFpsCounter()
	for !win.ShouldClose() {
		input.Update()
		if input.IsKeyDown(glfw.KeyEscape) {
			win.SetShouldClose(true)
		}
		if input.IsKeyDown(glfw.KeyUp) {
			mixValue += input.TimeDelta()
		}
		if input.IsKeyDown(glfw.KeyDown) {
			mixValue -= input.TimeDelta()
		}
		mixValue = libutil.Clamp(mixValue, 0, 1)

		libgl.State.ClearColor(0.2, 0.3, 0.3, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		box.Bind(0)
		note.Bind(1)
		shader.Use()
		shader.SetFloat("mixValue", mixValue)
		rectangle.Draw()

		fmt.Printf("FPS: %d    \r", fps.Tick())

		win.SwapAndPoll()
	}
	fmt.Println()
}
