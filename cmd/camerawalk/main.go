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
	cfg := libwin.DefaultConfig("Camera walk")
	cfg.ParseArgs()

	win, err := libwin.Open(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(-1)
	}
	defer win.Close()

	shader := libgl.LoadShader(cfg.ShaderPath("camerawalk", "shader.vs"), cfg.ShaderPath("camerawalk", "shader.fs"))
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

	cam := libscn.NewCamera(mgl32.Vec3{0, 0, 3})
	input := libwin.NewInputManager(win)
	win.CaptureCursor(true)
	input.ResetCursor()

	clock := libutil.NewClock()
	fps := libutil.NewFpsCounter()
	for !win.ShouldClose() {
		input.Update()
		if input.IsKeyDown(glfw.KeyEscape) {
			win.SetShouldClose(true)
		}
		dt := float32(clock.Lap())

		movement := input.GetMovement(glfw.KeyW, glfw.KeyS, glfw.KeyA, glfw.KeyD, glfw.KeySpace, glfw.KeyLeftControl)
		cam.ProcessMovement(movement, dt)
		delta := input.CursorDelta()
		cam.ProcessMouse(delta.X(), delta.Y())
		cam.ProcessScroll(input.ScrollDelta().Y())

		libgl.State.ClearColor(0.2, 0.3, 0.3, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		box.Bind(0)
		note.Bind(1)
		shader.Use()
		shader.SetMat4("projection", cam.ProjectionMatrix(win.AspectRatio(), 0.1, 100))
		shader.SetMat4("view", cam.ViewMatrix())

		t := float32(clock.Elapsed())
		for i, pos := range libscn.CubePositions {
			angle := t * 20 * float32(i) * libutil.Deg2Rad
			model := mgl32.Translate3D(pos.X(), pos.Y(), pos.Z()).
				Mul4(mgl32.HomogRotate3D(angle, mgl32.Vec3{1, 0.3, 0.5}.Normalize()))
			shader.SetMat4("model", model)
			cube.Draw()
		}

		fmt.Printf("FPS: %d    \r", fps.Tick())

		win.SwapAndPoll()
	}
	fmt.Println()
}
