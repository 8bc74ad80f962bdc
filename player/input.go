package player

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/groundwork/entity"
)

// Input holds the discrete input events of a player for a single tick.
type Input struct {
	// Pose, if not nil, is the pose the host's physics engine produced for the player this tick.
	Pose *Pose

	// Move is the movement intent, with X mapping to world X and Y mapping to world Z.
	Move mgl32.Vec2
	Jump bool

	// Look is the mouse delta in pixels.
	Look         mgl32.Vec2
	ToggleCamera bool

	SelectNext     bool
	SelectPrevious bool
	UseSelected    bool
	Melee          bool
}

// Activation is the context an item effect is activated in.
type Activation struct {
	Owner entity.ID
	// Pose is the pose of the activating actor, nil if unknown.
	Pose *Pose
	// Facing is the direction the actor is looking in. A zero vector means the direction is unknown.
	Facing mgl32.Vec3
}

// TickResult is the outcome of ticking a single player.
type TickResult struct {
	ID entity.ID

	Ground GroundState
	// ZeroVerticalVelocity is set when the host should zero the downward velocity of the player, which
	// happens when it lands.
	ZeroVerticalVelocity bool
	// Displacement is the movement the host should apply to the player this tick.
	Displacement mgl32.Vec3
	// JumpVelocity is the upward velocity the host should apply. It is zero if the player did not jump.
	JumpVelocity float32

	Stats     Stats
	Inventory InventoryView
	// InventoryChanged is true if the inventory view differs from the one of the previous tick.
	InventoryChanged bool

	// PickedUp holds the world items that moved into the inventory this tick.
	PickedUp []entity.ID
	// MeleeUsed is true if a melee attack used the equipped weapon.
	MeleeUsed bool
}
