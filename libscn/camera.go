package libscn

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"learn-gl/libutil"
)

const (
	DefaultYaw         = -90
	DefaultPitch       = 0
	DefaultSpeed       = 2.5
	DefaultSensitivity = 0.1
	DefaultZoom        = 45
)

// Camera is a fly camera driven by Euler angles. Yaw -90° looks down -z.
type Camera struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3
	Right    mgl32.Vec3
	WorldUp  mgl32.Vec3
	// in degrees
	Yaw, Pitch       float32
	MovementSpeed    float32
	MouseSensitivity float32
	// vertical field of view in degrees
	Zoom             float32
	PitchLimit       float32
	MinZoom, MaxZoom float32
}

func NewCamera(position mgl32.Vec3) *Camera {
	cam := &Camera{
		Position:         position,
		WorldUp:          mgl32.Vec3{0, 1, 0},
		Yaw:              DefaultYaw,
		Pitch:            DefaultPitch,
		MovementSpeed:    DefaultSpeed,
		MouseSensitivity: DefaultSensitivity,
		Zoom:             DefaultZoom,
		PitchLimit:       89,
		MinZoom:          1,
		MaxZoom:          45,
	}
	cam.updateVectors()
	return cam
}

func (cam *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(cam.Position, cam.Position.Add(cam.Front), cam.Up)
}

func (cam *Camera) ProjectionMatrix(aspect, near, far float32) mgl32.Mat4 {
	return mgl32.Perspective(cam.Zoom*libutil.Deg2Rad, aspect, near, far)
}

// ProcessMovement moves along the camera axes. direction is in camera space
// as returned by InputManager.GetMovement: -z forward, +x right, +y world up.
func (cam *Camera) ProcessMovement(direction mgl32.Vec3, deltaTime float32) {
	if direction.LenSqr() == 0 {
		return
	}
	velocity := cam.MovementSpeed * deltaTime
	offset := cam.Front.Mul(-direction.Z()).
		Add(cam.Right.Mul(direction.X())).
		Add(cam.WorldUp.Mul(direction.Y()))
	cam.Position = cam.Position.Add(offset.Mul(velocity))
}

// ProcessMouse turns the camera by a cursor delta in screen pixels. Screen y
// grows downwards, so moving the mouse up looks up.
func (cam *Camera) ProcessMouse(dx, dy float32) {
	cam.Yaw += dx * cam.MouseSensitivity
	cam.Pitch -= dy * cam.MouseSensitivity
	cam.Pitch = libutil.Clamp(cam.Pitch, -cam.PitchLimit, cam.PitchLimit)
	cam.Yaw = math32.Mod(cam.Yaw, 360)
	cam.updateVectors()
}

func (cam *Camera) ProcessScroll(yoffset float32) {
	cam.Zoom = libutil.Clamp(cam.Zoom-yoffset, cam.MinZoom, cam.MaxZoom)
}

func (cam *Camera) updateVectors() {
	yaw, pitch := cam.Yaw*libutil.Deg2Rad, cam.Pitch*libutil.Deg2Rad
	front := mgl32.Vec3{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}
	cam.Front = front.Normalize()
	cam.Right = cam.Front.Cross(cam.WorldUp).Normalize()
	cam.Up = cam.Right.Cross(cam.Front).Normalize()
}
