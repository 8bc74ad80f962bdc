package player

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// LocomotionComponent turns movement intent into requests for the host's physics engine.
type LocomotionComponent interface {
	// Move returns the displacement for the intent passed over a step of dt.
	Move(intent mgl32.Vec2, speed float32, dt time.Duration) mgl32.Vec3
	// Jump returns the upward velocity of a jump. False is returned if the player cannot jump.
	Jump() (float32, bool)
}

func (p *Player) SetLocomotion(c LocomotionComponent) {
	p.locomotion = c
}

func (p *Player) Locomotion() LocomotionComponent {
	return p.locomotion
}
