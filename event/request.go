package event

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/groundwork/entity"
	"github.com/oomph-ac/groundwork/item"
)

// Request is an output of a simulation tick that the host must carry out, such as spawning or
// despawning an entity.
type Request interface {
	request()
}

// SpawnProjectile asks the host to spawn a thrown projectile.
type SpawnProjectile struct {
	// ID is assigned once the projectile is registered with the world. It is nil in emitted requests.
	ID entity.ID
	// Owner is the actor that threw the projectile. The projectile never collides with it.
	Owner    entity.ID
	Position mgl32.Vec3
	Velocity mgl32.Vec3
	// Lifetime is how long the projectile may exist before it is destroyed.
	Lifetime time.Duration
	Groups   Groups
	// Visual is the name of the model the host should render the projectile with.
	Visual string
}

// DespawnReason is the reason an entity is despawned.
type DespawnReason uint8

const (
	DespawnTimeout DespawnReason = iota
	DespawnCollision
	DespawnPickup
)

// String ...
func (r DespawnReason) String() string {
	switch r {
	case DespawnTimeout:
		return "timeout"
	case DespawnCollision:
		return "collision"
	case DespawnPickup:
		return "pickup"
	}
	return "unknown"
}

// Despawn asks the host to remove an entity from the scene.
type Despawn struct {
	ID     entity.ID
	Reason DespawnReason
}

// DropItem asks the host to place an item back into the world.
type DropItem struct {
	// ID is the ID of the world item, assigned once the item is placed back into the world.
	ID       entity.ID
	Owner    entity.ID
	Item     item.Item
	Position mgl32.Vec3
}

// WeaponBroken notifies the host that an actor's equipped weapon broke and was unequipped.
type WeaponBroken struct {
	Owner  entity.ID
	Weapon item.Weapon
}

func (SpawnProjectile) request() {}
func (Despawn) request()         {}
func (DropItem) request()        {}
func (WeaponBroken) request()    {}
