package player

import "github.com/go-gl/mathgl/mgl32"

// CameraMode is the perspective the player views the world from.
type CameraMode uint8

const (
	ThirdPerson CameraMode = iota
	FirstPerson
)

// String ...
func (m CameraMode) String() string {
	if m == FirstPerson {
		return "first_person"
	}
	return "third_person"
}

// CameraComponent holds the camera rig of a player.
type CameraComponent interface {
	// Rotate rotates the camera by the mouse delta passed, in pixels.
	Rotate(dx, dy float32)
	ToggleMode()
	Mode() CameraMode
	// Yaw and Pitch return the camera rotation in degrees.
	Yaw() float32
	Pitch() float32
	// Facing returns the unit vector the camera looks along.
	Facing() mgl32.Vec3
}

func (p *Player) SetCamera(c CameraComponent) {
	p.camera = c
}

func (p *Player) Camera() CameraComponent {
	return p.camera
}
