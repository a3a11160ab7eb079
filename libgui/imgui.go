// Package libgui draws Dear ImGui with the tutorial GL wrappers and feeds it
// the window's input.
package libgui

import (
	_ "embed"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/inkyblackness/imgui-go/v4"
	"learn-gl/libgl"
	"learn-gl/libwin"
)

//go:embed imgui.vert
var vertexSource string

//go:embed imgui.frag
var fragmentSource string

type ImGui struct {
	IO        imgui.IO
	FrameTime float32
	context   *imgui.Context
	win       *libwin.Window
	vao       *libgl.VertexArray
	vbo       *libgl.Buffer
	ebo       *libgl.Buffer
	atlas     *libgl.Texture
	shader    *libgl.Shader
}

func NewImGui(win *libwin.Window) (*ImGui, error) {
	context := imgui.CreateContext(nil)

	io := imgui.CurrentIO()
	dispWidth, dispHeight := win.Handle.GetSize()
	io.SetDisplaySize(imgui.Vec2{X: float32(dispWidth), Y: float32(dispHeight)})
	imgui.StyleColorsDark()

	shader := libgl.NewShader("imgui", vertexSource, fragmentSource)
	if err := shader.Compile(); err != nil {
		context.Destroy()
		return nil, err
	}

	vertexSize, vertexOffsetPos, vertexOffsetUv, vertexOffsetCol := imgui.VertexBufferLayout()
	vbo := libgl.NewBuffer(gl.ARRAY_BUFFER)
	vbo.AllocateEmpty(1<<16, gl.STREAM_DRAW)
	ebo := libgl.NewBuffer(gl.ELEMENT_ARRAY_BUFFER)
	ebo.AllocateEmpty(1<<15, gl.STREAM_DRAW)

	vao := libgl.NewVertexArray()
	vao.Layout(vbo, 0, 2, gl.FLOAT, false, vertexSize, vertexOffsetPos)
	vao.Layout(vbo, 1, 2, gl.FLOAT, false, vertexSize, vertexOffsetUv)
	vao.Layout(vbo, 2, 4, gl.UNSIGNED_BYTE, true, vertexSize, vertexOffsetCol)
	vao.BindElementBuffer(ebo)

	atlas := libgl.NewTexture2D(fontAtlas(io), libgl.TextureOptions{
		WrapS:     gl.CLAMP_TO_EDGE,
		WrapT:     gl.CLAMP_TO_EDGE,
		MinFilter: gl.LINEAR,
		MagFilter: gl.LINEAR,
	})
	io.Fonts().SetTextureID(imgui.TextureID(atlas.Id()))

	gui := &ImGui{
		IO:        io,
		FrameTime: float32(glfw.GetTime()),
		context:   context,
		win:       win,
		vao:       vao,
		vbo:       vbo,
		ebo:       ebo,
		atlas:     atlas,
		shader:    shader,
	}
	gui.installCallbacks()
	mapKeys(io)
	return gui, nil
}

// fontAtlas wraps the atlas pixels owned by imgui, no copy is made.
func fontAtlas(io imgui.IO) *image.RGBA {
	data := io.Fonts().TextureDataRGBA32()
	pixels := unsafe.Slice((*byte)(data.Pixels), data.Width*data.Height*4)
	return &image.RGBA{
		Pix:    pixels,
		Stride: data.Width * 4,
		Rect:   image.Rect(0, 0, data.Width, data.Height),
	}
}

func (gui *ImGui) installCallbacks() {
	io := gui.IO
	gui.win.OnCursor(func(mx, my float64) {
		io.SetMousePosition(imgui.Vec2{X: float32(mx), Y: float32(my)})
	})
	gui.win.OnMouseButton(func(button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		io.SetMouseButtonDown(int(button), action == glfw.Press)
	})
	gui.win.OnScroll(func(x, y float64) {
		io.AddMouseWheelDelta(float32(x), float32(y))
	})
	gui.win.OnChar(func(char rune) {
		io.AddInputCharacters(string(char))
	})
	gui.win.OnKey(func(key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyUnknown {
			return
		}
		if action == glfw.Press {
			io.KeyPress(int(key))
		}
		if action == glfw.Release {
			io.KeyRelease(int(key))
		}

		// Modifiers are not reliable across systems
		io.KeyCtrl(int(glfw.KeyLeftControl), int(glfw.KeyRightControl))
		io.KeyShift(int(glfw.KeyLeftShift), int(glfw.KeyRightShift))
		io.KeyAlt(int(glfw.KeyLeftAlt), int(glfw.KeyRightAlt))
		io.KeySuper(int(glfw.KeyLeftSuper), int(glfw.KeyRightSuper))
	})
}

// navigation and shortcut keys imgui needs to know about
var keyMap = []struct {
	gui  int
	glfw glfw.Key
}{
	{imgui.KeyTab, glfw.KeyTab},
	{imgui.KeyLeftArrow, glfw.KeyLeft},
	{imgui.KeyRightArrow, glfw.KeyRight},
	{imgui.KeyUpArrow, glfw.KeyUp},
	{imgui.KeyDownArrow, glfw.KeyDown},
	{imgui.KeyPageUp, glfw.KeyPageUp},
	{imgui.KeyPageDown, glfw.KeyPageDown},
	{imgui.KeyHome, glfw.KeyHome},
	{imgui.KeyEnd, glfw.KeyEnd},
	{imgui.KeyInsert, glfw.KeyInsert},
	{imgui.KeyDelete, glfw.KeyDelete},
	{imgui.KeyBackspace, glfw.KeyBackspace},
	{imgui.KeySpace, glfw.KeySpace},
	{imgui.KeyEnter, glfw.KeyEnter},
	{imgui.KeyEscape, glfw.KeyEscape},
	{imgui.KeyA, glfw.KeyA},
	{imgui.KeyC, glfw.KeyC},
	{imgui.KeyV, glfw.KeyV},
	{imgui.KeyX, glfw.KeyX},
	{imgui.KeyY, glfw.KeyY},
	{imgui.KeyZ, glfw.KeyZ},
}

func mapKeys(io imgui.IO) {
	for _, k := range keyMap {
		io.KeyMap(k.gui, int(k.glfw))
	}
}

// WantsMouse reports whether imgui uses the mouse this frame, in which case
// the application should ignore it.
func (gui *ImGui) WantsMouse() bool {
	return gui.IO.WantCaptureMouse()
}

func (gui *ImGui) WantsKeyboard() bool {
	return gui.IO.WantCaptureKeyboard()
}

// BeginFrame starts recording widgets for the current frame.
func (gui *ImGui) BeginFrame() {
	dispWidth, dispHeight := gui.win.Handle.GetSize()
	gui.IO.SetDisplaySize(imgui.Vec2{X: float32(dispWidth), Y: float32(dispHeight)})

	time := float32(glfw.GetTime())
	delta := time - gui.FrameTime
	if delta <= 0 {
		delta = 1. / 60.
	}
	gui.IO.SetDeltaTime(delta)
	gui.FrameTime = time

	imgui.NewFrame()
}

// Draw renders the recorded widgets on top of the frame. The previously
// enabled capabilities are restored afterwards.
func (gui *ImGui) Draw() {
	imgui.Render()
	drawData := imgui.RenderedDrawData()

	dispWidth, dispHeight := gui.win.Handle.GetSize()
	fbWidth, fbHeight := gui.win.Handle.GetFramebufferSize()
	if dispWidth <= 0 || dispHeight <= 0 || fbWidth <= 0 || fbHeight <= 0 {
		return
	}
	ortho := mgl32.Ortho2D(0, float32(dispWidth), float32(dispHeight), 0)

	caps := libgl.State.EnabledCaps()
	defer libgl.State.SetEnabled(caps...)

	libgl.State.SetEnabled(libgl.Blend, libgl.ScissorTest)
	libgl.State.BlendFunc(libgl.BlendSrcAlpha, libgl.BlendOneMinusSrcAlpha)
	libgl.State.Viewport(0, 0, fbWidth, fbHeight)

	gui.shader.Use()
	gui.shader.SetMat4("u_proj_mat", ortho)
	gui.shader.SetInt("u_texture", 0)
	gui.vao.Bind()

	drawData.ScaleClipRects(imgui.Vec2{
		X: float32(fbWidth) / float32(dispWidth),
		Y: float32(fbHeight) / float32(dispHeight),
	})

	indexSize := imgui.IndexBufferLayout()
	indexType := indexTypeFor(indexSize)

	for _, list := range drawData.CommandLists() {
		vertexBuffer, vertexBufferSize := list.VertexBuffer()
		gui.vbo.Grow(vertexBufferSize)
		if vertexBufferSize > 0 {
			gui.vbo.WritePointer(0, vertexBufferSize, vertexBuffer)
		}

		indexBuffer, indexBufferSize := list.IndexBuffer()
		gui.ebo.Grow(indexBufferSize)
		if indexBufferSize > 0 {
			gui.ebo.WritePointer(0, indexBufferSize, indexBuffer)
		}

		for _, cmd := range list.Commands() {
			if cmd.HasUserCallback() {
				cmd.CallUserCallback(list)
				continue
			}
			libgl.State.BindTexture(0, uint32(cmd.TextureID()))
			x, y, w, h := scissorRect(cmd.ClipRect(), fbHeight)
			libgl.State.Scissor(x, y, w, h)
			gl.DrawElementsBaseVertexWithOffset(gl.TRIANGLES, int32(cmd.ElementCount()), indexType, uintptr(cmd.IndexOffset()*indexSize), int32(cmd.VertexOffset()))
		}
	}
}

func indexTypeFor(size int) uint32 {
	switch size {
	case 1:
		return gl.UNSIGNED_BYTE
	case 2:
		return gl.UNSIGNED_SHORT
	}
	return gl.UNSIGNED_INT
}

// scissorRect converts an imgui clip rectangle (min x, min y, max x, max y
// with y down) to a GL scissor box with y up.
func scissorRect(clip imgui.Vec4, fbHeight int) (x, y, w, h int) {
	x, y = int(clip.X), fbHeight-int(clip.W)
	if y <= 0 {
		y = 0
	}
	return x, y, int(clip.Z - clip.X), int(clip.W - clip.Y)
}

func (gui *ImGui) Delete() {
	gui.vao.Delete()
	gui.atlas.Delete()
	gui.shader.Delete()
	gui.context.Destroy()
}
