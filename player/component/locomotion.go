package component

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/groundwork/player"
)

// LocomotionComponent converts movement intent into displacement requests. It never integrates physics;
// the host applies the displacement and jump velocity it returns.
type LocomotionComponent struct {
	mPlayer *player.Player
}

func NewLocomotionComponent(p *player.Player) *LocomotionComponent {
	return &LocomotionComponent{mPlayer: p}
}

// Move ...
func (c *LocomotionComponent) Move(intent mgl32.Vec2, speed float32, dt time.Duration) mgl32.Vec3 {
	if intent.Len() == 0 {
		return mgl32.Vec3{}
	}
	dir := intent.Normalize().Mul(speed * float32(dt.Seconds()))
	return mgl32.Vec3{dir.X(), 0, dir.Y()}
}

// Jump ...
func (c *LocomotionComponent) Jump() (float32, bool) {
	g := c.mPlayer.Grounding()
	if !g.Grounded() {
		return 0, false
	}
	g.SetJumping(true)
	return float32(c.mPlayer.Settings().Movement.JumpVelocity), true
}
