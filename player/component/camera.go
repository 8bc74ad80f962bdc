package component

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/groundwork/game"
	"github.com/oomph-ac/groundwork/player"
)

type CameraComponent struct {
	mode        player.CameraMode
	yaw, pitch  float32
	sensitivity mgl32.Vec2
}

// NewCameraComponent returns a third person camera looking along +Z.
func NewCameraComponent() *CameraComponent {
	return &CameraComponent{
		mode:        player.ThirdPerson,
		sensitivity: mgl32.Vec2{game.CameraSensitivityX, game.CameraSensitivityY},
	}
}

// Rotate turns the camera by a mouse delta. Moving the mouse right turns right, moving it down looks down.
func (c *CameraComponent) Rotate(dx, dy float32) {
	c.yaw = game.WrapYaw(c.yaw - mgl32.RadToDeg(dx*c.sensitivity.X()))
	c.pitch = game.ClampFloat32(c.pitch+mgl32.RadToDeg(dy*c.sensitivity.Y()), -game.MaxPitch, game.MaxPitch)
}

func (c *CameraComponent) ToggleMode() {
	if c.mode == player.ThirdPerson {
		c.mode = player.FirstPerson
	} else {
		c.mode = player.ThirdPerson
	}
}

func (c *CameraComponent) Mode() player.CameraMode {
	return c.mode
}

func (c *CameraComponent) Yaw() float32 {
	return c.yaw
}

func (c *CameraComponent) Pitch() float32 {
	return c.pitch
}

func (c *CameraComponent) Facing() mgl32.Vec3 {
	return game.DirectionVector(c.yaw, c.pitch)
}
