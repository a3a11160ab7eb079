package libwin

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// inputSource is the polled part of a GLFW window.
type inputSource interface {
	GetCursorPos() (x, y float64)
	GetKey(key glfw.Key) glfw.Action
	GetMouseButton(button glfw.MouseButton) glfw.Action
}

// InputManager keeps the input state of the current and the previous frame,
// so taps and deltas can be derived. Update has to be called once per frame
// after polling events.
type InputManager struct {
	src     inputSource
	clock   func() float64
	curr    inputState
	prev    inputState
	scrollX float64
	scrollY float64
	// drop the cursor jump seen by the next Update
	resetCursor bool
}

type inputState struct {
	time         float32
	cursorPos    mgl32.Vec2
	scroll       mgl32.Vec2
	keys         []bool
	mousebuttons []bool
}

func NewInputManager(w *Window) *InputManager {
	i := newInputManager(w.Handle, glfw.GetTime)
	w.OnScroll(i.AddScroll)
	return i
}

func newInputManager(src inputSource, clock func() float64) *InputManager {
	i := &InputManager{
		src:   src,
		clock: clock,
		curr: inputState{
			keys:         make([]bool, glfw.KeyLast+1),
			mousebuttons: make([]bool, glfw.MouseButtonLast+1),
		},
		prev: inputState{
			keys:         make([]bool, glfw.KeyLast+1),
			mousebuttons: make([]bool, glfw.MouseButtonLast+1),
		},
	}

	i.Update()
	i.prev.cursorPos = i.curr.cursorPos
	// Make sure dTime != 0 to avoid possible errors
	i.prev.time = i.curr.time - 1./60.
	copy(i.prev.keys, i.curr.keys)
	copy(i.prev.mousebuttons, i.curr.mousebuttons)

	return i
}

// AddScroll accumulates scroll offsets until the next Update.
func (i *InputManager) AddScroll(xoff, yoff float64) {
	i.scrollX += xoff
	i.scrollY += yoff
}

// ResetCursor zeroes the current cursor delta and the one computed by the
// next Update, e.g. after the cursor was captured and jumped.
func (i *InputManager) ResetCursor() {
	i.prev.cursorPos = i.curr.cursorPos
	i.resetCursor = true
}

func (i *InputManager) CursorDelta() mgl32.Vec2 {
	return i.curr.cursorPos.Sub(i.prev.cursorPos)
}

func (i *InputManager) CursorPos() mgl32.Vec2 {
	return i.curr.cursorPos
}

func (i *InputManager) ScrollDelta() mgl32.Vec2 {
	return i.curr.scroll
}

func (i *InputManager) TimeDelta() float32 {
	return i.curr.time - i.prev.time
}

func (i *InputManager) IsKeyDown(key glfw.Key) bool {
	return i.curr.keys[key]
}

func (i *InputManager) IsKeyTap(key glfw.Key) bool {
	return i.curr.keys[key] && !i.prev.keys[key]
}

func (i *InputManager) IsMouseDown(button glfw.MouseButton) bool {
	return i.curr.mousebuttons[button]
}

func (i *InputManager) IsMouseTap(button glfw.MouseButton) bool {
	return i.curr.mousebuttons[button] && !i.prev.mousebuttons[button]
}

// GetMovement maps key states to a direction in camera space: -z is
// forward, +x right and +y up. A zero key is ignored.
func (i *InputManager) GetMovement(forward, backward, left, right, up, down glfw.Key) mgl32.Vec3 {
	var x, y, z float32
	if forward != 0 && i.IsKeyDown(forward) {
		z -= 1
	}
	if backward != 0 && i.IsKeyDown(backward) {
		z += 1
	}
	if left != 0 && i.IsKeyDown(left) {
		x -= 1
	}
	if right != 0 && i.IsKeyDown(right) {
		x += 1
	}
	if up != 0 && i.IsKeyDown(up) {
		y += 1
	}
	if down != 0 && i.IsKeyDown(down) {
		y -= 1
	}
	return mgl32.Vec3{x, y, z}
}

func (i *InputManager) Update() {
	keys := i.prev.keys
	mousebuttons := i.prev.mousebuttons
	i.prev = i.curr
	cursorX, cursorY := i.src.GetCursorPos()

	for key := int(glfw.KeySpace); key <= int(glfw.KeyLast); key++ {
		keys[key] = i.src.GetKey(glfw.Key(key)) != glfw.Release
	}

	for button := 0; button <= int(glfw.MouseButtonLast); button++ {
		mousebuttons[button] = i.src.GetMouseButton(glfw.MouseButton(button)) != glfw.Release
	}

	i.curr = inputState{
		time:         float32(i.clock()),
		cursorPos:    mgl32.Vec2{float32(cursorX), float32(cursorY)},
		scroll:       mgl32.Vec2{float32(i.scrollX), float32(i.scrollY)},
		keys:         keys,
		mousebuttons: mousebuttons,
	}
	i.scrollX, i.scrollY = 0, 0
	if i.resetCursor {
		i.prev.cursorPos = i.curr.cursorPos
		i.resetCursor = false
	}
}
