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

func init() {
	runtime.LockOSThread()
}

func main() {
	cfg := libwin.DefaultConfig("Shader class")
	cfg.ParseArgs()

	win, err := libwin.Open(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(-1)
	}
	defer win.Close()

	shader := libgl.LoadShader(cfg.ShaderPath("shaderclass", "shader.vs"), cfg.ShaderPath("shaderclass", "shader.fs"))
	defer shader.Delete()

	var watcher *libgl.ShaderWatcher
	if cfg.HotReload {
		watcher, err = libgl.NewShaderWatcher()
		check(err)
		defer watcher.Close()
		check(watcher.Watch(shader))
	}

	rectangle := libscn.ColoredRectangle().Upload()
	defer rectangle.Delete()

	clock := libutil.NewClock()
	fps := libutil.NewFpsCounter()
	for !win.ShouldClose() {
		if win.Handle.GetKey(glfw.KeyEscape) == glfw.Press {
			win.SetShouldClose(true)
		}
		watcher.Poll()

		libgl.State.ClearColor(0.2, 0.3, 0.3, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		shader.Use()
		shader.SetVec4("nonUsed", 0, 0, 0, 1)
		shader.SetFloat("time", float32(clock.Elapsed()))
		rectangle.Draw()

		fmt.Printf("FPS: %d    \r", fps.Tick())

		win.SwapAndPoll()
	}
	fmt.Println()
}

func check(err error) {
	if err != nil {
		log.Panic(err)
	}
}
