package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"learn-gl/libgl"
	"learn-gl/libscn"
	"learn-gl/libutil"
	"learn-gl/libwin"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	cfg := libwin.DefaultConfig("3D cube")
	cfg.ParseArgs()

	win, err := libwin.Open(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(-1)
	}
	defer win.Close()

	shader := libgl.LoadShader(cfg.ShaderPath("cube", "shader.vs"), cfg.ShaderPath("cube", "shader.fs"))
	defer shader.Delete()

	cube := libscn.TexturedCube().Upload()
	defer cube.Delete()

	box, _ := libgl.LoadTexture(cfg.TexturePath("box1.png"), libgl.DefaultTextureOptions)
	defer box.Delete()
	note, _ := libgl.LoadTexture(cfg.TexturePath("note.png"), libgl.DefaultTextureOptions)
	defer note.Delete()

	shader.Use()
	shader.SetInt("texture1", 0)
	shader.SetInt("texture2", 1)

	libgl.State.Enable(libgl.DepthTest)

	view := mgl32.Translate3D(0, 0, -3)
	clock := libutil.NewClock()
	fps := libutil.NewFpsCounter()
	for !win.ShouldClose() {
		if win.Handle.GetKey(glfw.KeyEscape) == glfw.Press {
			win.SetShouldClose(true)
		}
		t := float32(clock.Elapsed())

		libgl.State.ClearColor(0.2, 0.3, 0.3, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		box.Bind(0)
		note.Bind(1)
		shader.Use()

		projection := mgl32.Perspective(mgl32.DegToRad(45), win.AspectRatio(), 0.1, 100)
		shader.SetMat4("projection", projection)
		shader.SetMat4("view", view)

		for i, pos := range libscn.CubePositions {
			angle := (t*50 + 20*float32(i)) * libutil.Deg2Rad
			model := mgl32.Translate3D(pos.X(), pos.Y(), pos.Z()).
				Mul4(mgl32.HomogRotate3D(angle, mgl32.Vec3{0.5, 1, 0}.Normalize()))
			shader.SetMat4("model", model)
			cube.Draw()
		}

		fmt.Printf("FPS: %d    \r", fps.Tick())

		win.SwapAndPoll()
	}
	fmt.Println()
}
