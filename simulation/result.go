package simulation

import (
	"time"

	"github.com/oomph-ac/groundwork/entity"
	"github.com/oomph-ac/groundwork/event"
	"github.com/oomph-ac/groundwork/player"
)

// Result is the outcome of a single simulation tick.
type Result struct {
	// Now is the simulation time at the end of the tick.
	Now time.Duration
	// Players holds the result of every player ticked, in the order the players were added.
	Players []player.TickResult

	// Spawned holds the projectiles the host should spawn. Their IDs are already assigned.
	Spawned []event.SpawnProjectile
	// Despawned holds the entities the host should remove.
	Despawned []event.Despawn
	// Dropped holds the items placed back into the world.
	Dropped []event.DropItem
	// Broken holds the weapons that broke this tick.
	Broken []event.WeaponBroken
}

// Player returns the tick result of the player with the ID passed.
func (r Result) Player(id entity.ID) (player.TickResult, bool) {
	for _, res := range r.Players {
		if res.ID == id {
			return res, true
		}
	}
	return player.TickResult{}, false
}

// Despawns returns true if the result despawns the entity with the ID passed for the reason passed.
func (r Result) Despawns(id entity.ID, reason event.DespawnReason) bool {
	for _, d := range r.Despawned {
		if d.ID == id && d.Reason == reason {
			return true
		}
	}
	return false
}
