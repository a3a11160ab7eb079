package libwin_test

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"learn-gl/libwin"
)

type fakeSource struct {
	x, y    float64
	keys    map[glfw.Key]bool
	buttons map[glfw.MouseButton]bool
	time    float64
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		keys:    map[glfw.Key]bool{},
		buttons: map[glfw.MouseButton]bool{},
	}
}

func (f *fakeSource) GetCursorPos() (float64, float64) {
	return f.x, f.y
}

func (f *fakeSource) GetKey(key glfw.Key) glfw.Action {
	if f.keys[key] {
		return glfw.Press
	}
	return glfw.Release
}

func (f *fakeSource) GetMouseButton(button glfw.MouseButton) glfw.Action {
	if f.buttons[button] {
		return glfw.Press
	}
	return glfw.Release
}

func (f *fakeSource) clock() float64 {
	return f.time
}

func TestInputFirstFrame(t *testing.T) {
	src := newFakeSource()
	src.x, src.y = 400, 300
	src.time = 10
	in := libwin.NewInputManagerWith(src, src.clock)

	assert.Equal(t, mgl32.Vec2{}, in.CursorDelta())
	assert.Greater(t, in.TimeDelta(), float32(0))
}

func TestInputCursorAndTimeDelta(t *testing.T) {
	src := newFakeSource()
	in := libwin.NewInputManagerWith(src, src.clock)

	src.x, src.y = 10, -5
	src.time = 0.5
	in.Update()
	assert.Equal(t, mgl32.Vec2{10, -5}, in.CursorDelta())
	assert.InDelta(t, 0.5, in.TimeDelta(), 1e-6)

	in.Update()
	assert.Equal(t, mgl32.Vec2{}, in.CursorDelta())

	src.x = 50
	in.Update()
	in.ResetCursor()
	assert.Equal(t, mgl32.Vec2{}, in.CursorDelta())
}

func TestInputResetCursorSkipsCaptureJump(t *testing.T) {
	src := newFakeSource()
	src.x, src.y = 10, 20
	in := libwin.NewInputManagerWith(src, src.clock)

	// capturing the cursor moves it before the next frame is polled
	src.x, src.y = 400, 300
	in.ResetCursor()
	in.Update()
	assert.Equal(t, mgl32.Vec2{}, in.CursorDelta())

	src.x, src.y = 405, 298
	in.Update()
	assert.Equal(t, mgl32.Vec2{5, -2}, in.CursorDelta())
}

func TestInputKeyTap(t *testing.T) {
	src := newFakeSource()
	in := libwin.NewInputManagerWith(src, src.clock)

	src.keys[glfw.KeyTab] = true
	in.Update()
	assert.True(t, in.IsKeyDown(glfw.KeyTab))
	assert.True(t, in.IsKeyTap(glfw.KeyTab))

	in.Update()
	assert.True(t, in.IsKeyDown(glfw.KeyTab))
	assert.False(t, in.IsKeyTap(glfw.KeyTab))

	src.keys[glfw.KeyTab] = false
	src.buttons[glfw.MouseButtonLeft] = true
	in.Update()
	assert.False(t, in.IsKeyDown(glfw.KeyTab))
	assert.True(t, in.IsMouseTap(glfw.MouseButtonLeft))
	assert.True(t, in.IsMouseDown(glfw.MouseButtonLeft))
}

func TestInputMovement(t *testing.T) {
	src := newFakeSource()
	in := libwin.NewInputManagerWith(src, src.clock)

	movement := func() mgl32.Vec3 {
		return in.GetMovement(glfw.KeyW, glfw.KeyS, glfw.KeyA, glfw.KeyD, glfw.KeySpace, glfw.KeyLeftControl)
	}

	assert.Equal(t, mgl32.Vec3{}, movement())

	src.keys[glfw.KeyW] = true
	src.keys[glfw.KeyD] = true
	in.Update()
	assert.Equal(t, mgl32.Vec3{1, 0, -1}, movement())

	src.keys[glfw.KeyS] = true
	src.keys[glfw.KeySpace] = true
	in.Update()
	assert.Equal(t, mgl32.Vec3{1, 1, 0}, movement())

	assert.Equal(t, mgl32.Vec3{}, in.GetMovement(0, 0, 0, 0, 0, 0))
}

func TestInputScrollAccumulates(t *testing.T) {
	src := newFakeSource()
	in := libwin.NewInputManagerWith(src, src.clock)

	in.AddScroll(0, 1)
	in.AddScroll(0, 2)
	assert.Equal(t, mgl32.Vec2{}, in.ScrollDelta())

	in.Update()
	assert.Equal(t, mgl32.Vec2{0, 3}, in.ScrollDelta())

	in.Update()
	assert.Equal(t, mgl32.Vec2{}, in.ScrollDelta())
}
