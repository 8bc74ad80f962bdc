package player

import "github.com/oomph-ac/groundwork/world"

// GroundingComponent decides whether the player is standing on a ground surface.
type GroundingComponent interface {
	// Update recomputes the ground state from the pose and surfaces given. It must be called every tick;
	// the state is never carried over from earlier ticks.
	Update(pose Pose, surfaces []world.Surface) GroundState
	// State returns the ground state computed by the last Update.
	State() GroundState
	// Grounded returns true if the last Update found the player on the ground.
	Grounded() bool
	// Landed returns true if the last Update moved the player from Airborne to Grounded.
	Landed() bool

	// Jumping returns true if the player jumped and has not landed since.
	Jumping() bool
	// SetJumping sets the jumping flag of the player.
	SetJumping(bool)
}

func (p *Player) SetGrounding(c GroundingComponent) {
	p.grounding = c
}

func (p *Player) Grounding() GroundingComponent {
	return p.grounding
}
