package event

import "github.com/oomph-ac/groundwork/entity"

// Collision is a contact event reported by the host's physics engine. A and B are unordered.
type Collision struct {
	A, B entity.ID
	// Sensor is true if at least one of the colliders is a sensor, such as a pickup volume.
	Sensor bool
	// Stopped is true when the contact ended rather than started.
	Stopped bool
}

// Other returns the collider that is not id. If id is not part of the collision, false is returned.
func (c Collision) Other(id entity.ID) (entity.ID, bool) {
	switch id {
	case c.A:
		return c.B, true
	case c.B:
		return c.A, true
	}
	return entity.Nil, false
}

// CollisionGroup is a bitmask of collision layers. A collider interacts with another only if its
// membership intersects the other's filter and vice versa.
type CollisionGroup uint32

const (
	GroupPlayer CollisionGroup = 1 << iota
	GroupItem
	GroupProjectile
	GroupGround
	GroupWall
)

// Groups holds the membership and filter of a collider.
type Groups struct {
	Memberships CollisionGroup
	Filter      CollisionGroup
}

// Interacts reports whether two colliders with the given groups can collide.
func (g Groups) Interacts(o Groups) bool {
	return g.Memberships&o.Filter != 0 && o.Memberships&g.Filter != 0
}

// Has reports whether every group in o is set in g.
func (g CollisionGroup) Has(o CollisionGroup) bool {
	return g&o == o
}
