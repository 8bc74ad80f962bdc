package entity

import (
	"github.com/google/uuid"
)

// ID is an opaque identifier for anything the simulation tracks: players, world items, projectiles and
// surfaces. The host engine maps its own entity handles to IDs.
type ID uuid.UUID

// Nil is the zero ID. It never identifies a live entity.
var Nil ID

// NewID returns a new random ID.
func NewID() ID {
	return ID(uuid.New())
}

// String ...
func (id ID) String() string {
	return uuid.UUID(id).String()
}

// Kind is the category of an entity, used to route collision events.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindPlayer
	KindItem
	KindProjectile
	KindGround
	KindWall
)

// String ...
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindItem:
		return "item"
	case KindProjectile:
		return "projectile"
	case KindGround:
		return "ground"
	case KindWall:
		return "wall"
	}
	return "unknown"
}
