package game

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// PlayerHalfHeight is half the height of a player's collision cuboid.
	PlayerHalfHeight = float32(0.5)
	// RayLength is the furthest a surface may be below an actor's feet for the actor to count as
	// grounded. It must not exceed PlayerHalfHeight.
	RayLength = float32(0.5)
	// InsideEpsilon is the tolerance used when checking if a ray origin lies inside a box.
	InsideEpsilon = float32(0.001)
	// SlabEpsilon is how far behind the probe origin a slab exit may lie while still counting as a hit.
	SlabEpsilon = float32(0.001)
	// ProbeStep is the spacing of the sample grid used by multi-ray probes.
	ProbeStep = float32(0.25)
	// MinGroundingStep is the smallest sample spacing the grid grounding test may be configured with.
	MinGroundingStep = float32(0.01)

	ThrowSpeed          = float32(30)
	ThrowVerticalOffset = float32(1)
	ProjectileLifetime  = 5 * time.Second

	// CameraSensitivityX and CameraSensitivityY are the camera rotation in radians per pixel of mouse
	// movement.
	CameraSensitivityX = float32(0.003)
	CameraSensitivityY = float32(0.002)
	// MaxPitch is the furthest the camera may look up or down, in degrees.
	MaxPitch = float32(89)

	DefaultMovementSpeed = float32(10)
	DefaultJumpVelocity  = float32(5)
	DefaultHealth        = float32(100)

	// InventorySize is the amount of general item slots an inventory has. The equipped weapon is kept
	// separately.
	InventorySize = 5
)

// Down is the direction grounding probes are cast in.
var Down = mgl32.Vec3{0, -1, 0}
