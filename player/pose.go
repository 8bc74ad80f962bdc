package player

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/groundwork/game"
)

// DefaultHalfExtents are the half extents of a player's collision cuboid.
var DefaultHalfExtents = mgl32.Vec3{0.5, game.PlayerHalfHeight, 0.5}

// Pose is the position, rotation and collision shape of an actor as reported by the host.
type Pose struct {
	Position    mgl32.Vec3
	Rotation    mgl32.Quat
	HalfExtents mgl32.Vec3
}

// BBox returns the world-space bounding box of the pose.
func (p Pose) BBox() cube.BBox {
	return game.BBoxFromCenter(p.Position, p.HalfExtents)
}

// Feet returns the centre of the bottom face of the pose.
func (p Pose) Feet() mgl32.Vec3 {
	return p.Position.Sub(mgl32.Vec3{0, p.HalfExtents.Y()})
}

// Stats are the mutable statistics of a player.
type Stats struct {
	Health float32
	Speed  float32
}

// GroundState is whether an actor is standing on a ground surface.
type GroundState uint8

const (
	Airborne GroundState = iota
	Grounded
)

// String ...
func (s GroundState) String() string {
	if s == Grounded {
		return "grounded"
	}
	return "airborne"
}
