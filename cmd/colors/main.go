package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/inkyblackness/imgui-go/v4"
	"learn-gl/libgl"
	"learn-gl/libgui"
	"learn-gl/libscn"
	"learn-gl/libutil"
	"learn-gl/libwin"
)

func init() {
	runtime.LockOSThread()
}

type scene struct {
	LightPos    mgl32.Vec3
	LightColor  mgl32.Vec3
	ObjectColor mgl32.Vec3
	LampScale   float32
	Wireframe   bool
}

func main() {
	cfg := libwin.DefaultConfig("Colors")
	cfg.ParseArgs()

	win, err := libwin.Open(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(-1)
	}
	defer win.Close()

	lightingShader := libgl.LoadShader(cfg.ShaderPath("colors", "lighting.vs"), cfg.ShaderPath("colors", "lighting.fs"))
	defer lightingShader.Delete()
	lampShader := libgl.LoadShader(cfg.ShaderPath("colors", "lamp.vs"), cfg.ShaderPath("colors", "lamp.fs"))
	defer lampShader.Delete()

	var watcher *libgl.ShaderWatcher
	if cfg.HotReload {
		watcher, err = libgl.NewShaderWatcher()
		check(err)
		defer watcher.Close()
		check(watcher.Watch(lightingShader))
		check(watcher.Watch(lampShader))
	}

	// the lamp reuses the vertex buffer of the lit cube
	mesh := libscn.Cube()
	vbo := libgl.NewBuffer(gl.ARRAY_BUFFER)
	vbo.Allocate(mesh.Vertices, gl.STATIC_DRAW)
	cubeVao := mesh.VertexArray(vbo, nil)
	defer cubeVao.Delete()
	lampVao := mesh.VertexArray(vbo, nil)
	defer lampVao.Delete()

	var gui *libgui.ImGui
	if cfg.GUI {
		gui, err = libgui.NewImGui(win)
		check(err)
		defer gui.Delete()
	}

	state := &scene{
		LightPos:    mgl32.Vec3{1.2, 1, 2},
		LightColor:  mgl32.Vec3{1, 1, 1},
		ObjectColor: mgl32.Vec3{1, 0.5, 0.31},
		LampScale:   0.2,
	}

	libgl.State.Enable(libgl.DepthTest)

	cam := libscn.NewCamera(mgl32.Vec3{0, 0, 3})
	input := libwin.NewInputManager(win)
	captured := true
	win.CaptureCursor(captured)
	input.ResetCursor()

	clock := libutil.NewClock()
	fps := libutil.NewFpsCounter()
	for !win.ShouldClose() {
		input.Update()
		dt := float32(clock.Lap())
		if input.IsKeyDown(glfw.KeyEscape) {
			win.SetShouldClose(true)
		}
		if input.IsKeyTap(glfw.KeyTab) {
			captured = !captured
			win.CaptureCursor(captured)
			input.ResetCursor()
		}
		watcher.Poll()

		keyboardFree := gui == nil || !gui.WantsKeyboard()
		if keyboardFree {
			movement := input.GetMovement(glfw.KeyW, glfw.KeyS, glfw.KeyA, glfw.KeyD, glfw.KeySpace, glfw.KeyLeftControl)
			cam.ProcessMovement(movement, dt)
		}
		if captured {
			delta := input.CursorDelta()
			cam.ProcessMouse(delta.X(), delta.Y())
		}
		if captured || gui == nil || !gui.WantsMouse() {
			cam.ProcessScroll(input.ScrollDelta().Y())
		}

		if state.Wireframe {
			libgl.State.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		} else {
			libgl.State.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
		}

		libgl.State.ClearColor(0.2, 0.3, 0.3, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		projection := cam.ProjectionMatrix(win.AspectRatio(), 0.1, 100)
		view := cam.ViewMatrix()

		lightingShader.Use()
		lightingShader.SetUniform("objectColor", state.ObjectColor)
		lightingShader.SetUniform("lightColor", state.LightColor)
		lightingShader.SetMat4("projection", projection)
		lightingShader.SetMat4("view", view)
		lightingShader.SetMat4("model", mgl32.Ident4())
		cubeVao.Draw()

		lampShader.Use()
		lampShader.SetUniform("lightColor", state.LightColor)
		lampShader.SetMat4("projection", projection)
		lampShader.SetMat4("view", view)
		model := mgl32.Translate3D(state.LightPos.X(), state.LightPos.Y(), state.LightPos.Z()).
			Mul4(mgl32.Scale3D(state.LampScale, state.LampScale, state.LampScale))
		lampShader.SetMat4("model", model)
		lampVao.Draw()
		if cfg.Debug {
			libgl.CheckError("colors")
		}

		frameRate := fps.Tick()
		if gui != nil {
			libgl.State.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
			gui.BeginFrame()
			drawPanel(state, cam, frameRate, captured)
			gui.Draw()
		}

		fmt.Printf("FPS: %d    \r", frameRate)

		win.SwapAndPoll()
	}
	fmt.Println()
}

func drawPanel(state *scene, cam *libscn.Camera, frameRate int, captured bool) {
	imgui.Begin("Colors")
	imgui.Text(fmt.Sprintf("FPS: %d", frameRate))
	imgui.Text(fmt.Sprintf("Camera: %.2f %.2f %.2f", cam.Position.X(), cam.Position.Y(), cam.Position.Z()))
	imgui.Text(fmt.Sprintf("Yaw %.1f  Pitch %.1f  Fov %.1f", cam.Yaw, cam.Pitch, cam.Zoom))
	imgui.Separator()
	imgui.DragFloat3("Light position", (*[3]float32)(&state.LightPos))
	imgui.ColorEdit3("Light color", (*[3]float32)(&state.LightColor))
	imgui.ColorEdit3("Object color", (*[3]float32)(&state.ObjectColor))
	imgui.SliderFloat("Lamp scale", &state.LampScale, 0.05, 1)
	imgui.Checkbox("Wireframe", &state.Wireframe)
	imgui.Separator()
	if captured {
		imgui.Text("Tab releases the cursor")
	} else {
		imgui.Text("Tab captures the cursor")
	}
	imgui.End()
}

func check(err error) {
	if err != nil {
		log.Panic(err)
	}
}
