package world

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/groundwork/entity"
	"github.com/oomph-ac/groundwork/event"
	"github.com/oomph-ac/groundwork/game"
)

// SurfaceKind is the kind of a static surface.
type SurfaceKind uint8

const (
	// SurfaceGround is a surface actors can stand on.
	SurfaceGround SurfaceKind = iota
	// SurfaceWall is a surface that blocks movement but never grounds an actor.
	SurfaceWall
)

// String ...
func (k SurfaceKind) String() string {
	if k == SurfaceWall {
		return "wall"
	}
	return "ground"
}

// Surface is a static axis-aligned box in the world.
type Surface struct {
	ID          entity.ID
	Kind        SurfaceKind
	Center      mgl32.Vec3
	HalfExtents mgl32.Vec3
}

// BBox returns the bounding box of the surface.
func (s Surface) BBox() cube.BBox {
	return game.BBoxFromCenter(s.Center, s.HalfExtents)
}

// Top returns the height of the top face of the surface.
func (s Surface) Top() float32 {
	return s.Center.Y() + s.HalfExtents.Y()
}

// EntityKind returns the entity kind collisions with the surface are routed as.
func (s Surface) EntityKind() entity.Kind {
	if s.Kind == SurfaceWall {
		return entity.KindWall
	}
	return entity.KindGround
}

// Groups returns the collision groups of the surface.
func (s Surface) Groups() event.Groups {
	if s.Kind == SurfaceWall {
		return event.Groups{Memberships: event.GroupWall, Filter: event.GroupPlayer | event.GroupProjectile}
	}
	return event.Groups{Memberships: event.GroupGround, Filter: event.GroupPlayer | event.GroupProjectile | event.GroupItem}
}
