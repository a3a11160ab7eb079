package libscn_test

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"learn-gl/libscn"
)

const epsilon = 1e-4

func assertOrthonormal(t *testing.T, cam *libscn.Camera) {
	t.Helper()
	assert.InDelta(t, 1, cam.Front.Len(), epsilon)
	assert.InDelta(t, 1, cam.Right.Len(), epsilon)
	assert.InDelta(t, 1, cam.Up.Len(), epsilon)
	assert.InDelta(t, 0, cam.Front.Dot(cam.Right), epsilon)
	assert.InDelta(t, 0, cam.Front.Dot(cam.Up), epsilon)
	assert.InDelta(t, 0, cam.Right.Dot(cam.Up), epsilon)
}

func assertVecNear(t *testing.T, want, got mgl32.Vec3, name string) {
	t.Helper()
	for c := range want {
		assert.InDelta(t, want[c], got[c], epsilon, "%v %v", name, got)
	}
}

func assertMatNear(t *testing.T, want, got mgl32.Mat4) {
	t.Helper()
	for c := range want {
		assert.InDelta(t, want[c], got[c], epsilon, "element %d of %v", c, got)
	}
}

func TestCameraDefaults(t *testing.T) {
	cam := libscn.NewCamera(mgl32.Vec3{0, 0, 3})

	assertVecNear(t, mgl32.Vec3{0, 0, -1}, cam.Front, "front")
	assertVecNear(t, mgl32.Vec3{1, 0, 0}, cam.Right, "right")
	assertVecNear(t, mgl32.Vec3{0, 1, 0}, cam.Up, "up")
	assert.Equal(t, float32(45), cam.Zoom)
	assertOrthonormal(t, cam)
}

func TestCameraPitchStaysBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(0))
	cam := libscn.NewCamera(mgl32.Vec3{})

	for i := 0; i < 10_000; i++ {
		dx := (rng.Float32()*2 - 1) * 500
		dy := (rng.Float32()*2 - 1) * 500
		cam.ProcessMouse(dx, dy)
		if cam.Pitch > cam.PitchLimit || cam.Pitch < -cam.PitchLimit {
			t.Fatalf("pitch %v out of bounds after %d updates", cam.Pitch, i+1)
		}
	}
	assertOrthonormal(t, cam)
}

func TestCameraPitchClampsAtLimit(t *testing.T) {
	cam := libscn.NewCamera(mgl32.Vec3{})

	cam.ProcessMouse(0, -1e6)
	assert.Equal(t, float32(89), cam.Pitch)
	assertOrthonormal(t, cam)

	cam.ProcessMouse(0, 1e6)
	assert.Equal(t, float32(-89), cam.Pitch)
	assertOrthonormal(t, cam)
}

func TestCameraZoomStaysBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	cam := libscn.NewCamera(mgl32.Vec3{})

	for i := 0; i < 10_000; i++ {
		cam.ProcessScroll((rng.Float32()*2 - 1) * 20)
		if cam.Zoom > cam.MaxZoom || cam.Zoom < cam.MinZoom {
			t.Fatalf("zoom %v out of bounds after %d scrolls", cam.Zoom, i+1)
		}
	}

	cam.ProcessScroll(1000)
	assert.Equal(t, float32(1), cam.Zoom)
	cam.ProcessScroll(-1000)
	assert.Equal(t, float32(45), cam.Zoom)
}

func TestCameraScrollUpZoomsIn(t *testing.T) {
	cam := libscn.NewCamera(mgl32.Vec3{})
	cam.ProcessScroll(2)
	assert.Equal(t, float32(43), cam.Zoom)
}

func TestCameraMovement(t *testing.T) {
	cam := libscn.NewCamera(mgl32.Vec3{0, 0, 3})

	cam.ProcessMovement(mgl32.Vec3{0, 0, -1}, 1)
	assertVecNear(t, mgl32.Vec3{0, 0, 0.5}, cam.Position, "position")

	cam.ProcessMovement(mgl32.Vec3{1, 0, 0}, 0.4)
	assertVecNear(t, mgl32.Vec3{1, 0, 0.5}, cam.Position, "position")

	cam.ProcessMovement(mgl32.Vec3{0, 1, 0}, 0.4)
	assertVecNear(t, mgl32.Vec3{1, 1, 0.5}, cam.Position, "position")

	before := cam.Position
	cam.ProcessMovement(mgl32.Vec3{}, 1)
	assert.Equal(t, before, cam.Position)
}

func TestCameraViewMatrix(t *testing.T) {
	cam := libscn.NewCamera(mgl32.Vec3{1, 2, 3})
	cam.ProcessMouse(120, -40)

	expected := mgl32.LookAtV(cam.Position, cam.Position.Add(cam.Front), cam.Up)
	assertMatNear(t, expected, cam.ViewMatrix())

	// the camera position maps to the view space origin
	origin := cam.ViewMatrix().Mul4x1(cam.Position.Vec4(1))
	assertVecNear(t, mgl32.Vec3{}, origin.Vec3(), "origin")
}

func TestCameraProjectionUsesZoom(t *testing.T) {
	cam := libscn.NewCamera(mgl32.Vec3{})
	cam.Zoom = 30
	expected := mgl32.Perspective(mgl32.DegToRad(30), 4.0/3.0, 0.1, 100)
	assertMatNear(t, expected, cam.ProjectionMatrix(4.0/3.0, 0.1, 100))
}
